package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	if isSubCommand("check") {
		checkMain(os.Args[2:])
	} else if isSubCommand("version") {
		versionMain()
	} else if isSubCommand("install") {
		installMain(os.Args[2:])
	} else {
		installMain(os.Args[1:])
	}
}

func isSubCommand(name string) bool {
	return len(os.Args) > 1 && os.Args[1] == name
}

func installMain(args []string) {
	config, err := parseConfig("install", args)
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(NewInstallApp(config).Run())
}

func checkMain(args []string) {
	config, err := parseConfig("check", args)
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(NewCheckApp(config).Run())
}

func versionMain() {
	fmt.Printf("rufium-install [%s]\n", ldflagsSoftwareVersion)
}

var ldflagsSoftwareVersion = "debug"
