package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"runtime"

	"github.com/Parallax73/rufium/contracts"
	"github.com/Parallax73/rufium/shell"
)

const mirrorOverrideVariable = "RUFIUM_PDFIUM_MIRROR"

type Config struct {
	Target            contracts.Target
	WorkingDirectory  string
	Mirror            url.URL
	MaxRetry          int
	QuickVerification bool
	SkipExisting      bool
}

func parseConfig(name string, args []string) (config Config, err error) {
	var rawOS, rawArch string

	flags := flag.NewFlagSet(name, flag.ExitOnError)
	flags.StringVar(&rawOS,
		"os",
		runtime.GOOS,
		"Raw operating system name. Accepts uname -s output (Linux, Darwin, MINGW64_NT-...) as well as Go runtime names.",
	)
	flags.StringVar(&rawArch,
		"arch",
		runtime.GOARCH,
		"Raw machine architecture name. Accepts uname -m output (x86_64, aarch64) as well as Go runtime names.",
	)
	flags.StringVar(&config.WorkingDirectory,
		"dir",
		".",
		"Directory that receives the installed library.",
	)
	flags.IntVar(&config.MaxRetry,
		"max-retry",
		0,
		"How many times to retry a failed download.",
	)
	flags.BoolVar(&config.QuickVerification,
		"quick",
		true,
		"When set to false, verify the checksum of the placed library against the extracted original.",
	)
	flags.BoolVar(&config.SkipExisting,
		"skip-existing",
		false,
		"When set, leave an already installed library alone instead of reinstalling.",
	)

	flags.Usage = func() {
		output := flags.Output()
		_, _ = fmt.Fprintf(output, "Usage of %s:\n", os.Args[0])
		flags.PrintDefaults()
		_, _ = fmt.Fprintln(output)
		_, _ = fmt.Fprintln(output, "  The rufium-install tool also provides 2 additional subcommands:")
		_, _ = fmt.Fprintln(output, "	check	Is the pdfium library for this platform already installed?")
		_, _ = fmt.Fprintln(output, "	version	Print the version of this tool.")
		_, _ = fmt.Fprintln(output)
	}

	err = flags.Parse(args)
	if err != nil {
		return Config{}, err
	}

	config.Target, err = contracts.NewTarget(rawOS, rawArch)
	if err != nil {
		return Config{}, err
	}

	config.Mirror, err = resolveMirror(shell.NewEnvironment())
	if err != nil {
		return Config{}, err
	}

	return config, nil
}

func resolveMirror(environment *shell.Environment) (url.URL, error) {
	address := contracts.DefaultMirror
	if override, set := environment.LookupEnv(mirrorOverrideVariable); set {
		address = override
	}
	parsed, err := url.Parse(address)
	if err != nil {
		return url.URL{}, fmt.Errorf("malformed mirror address %q: %w", address, err)
	}
	return *parsed, nil
}
