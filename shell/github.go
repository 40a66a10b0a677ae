package shell

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/Parallax73/rufium/contracts"
)

// GitHubReleaseClient performs a single redirect-following GET against a
// release asset address. Transport errors and server-side failures are
// marked retryable; a missing asset is permanent.
type GitHubReleaseClient struct {
	client       *http.Client
	showProgress bool
}

func NewGitHubReleaseClient(client *http.Client, showProgress bool) *GitHubReleaseClient {
	return &GitHubReleaseClient{client: client, showProgress: showProgress}
}

func (this *GitHubReleaseClient) Download(request url.URL) (io.ReadCloser, error) {
	response, err := this.client.Get(request.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contracts.RetryErr, err)
	}
	if response.StatusCode == http.StatusOK {
		return this.wrapProgress(response), nil
	}
	this.dump(response)
	_ = response.Body.Close()
	if response.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: unexpected status code: %s", contracts.RetryErr, response.Status)
	}
	return nil, fmt.Errorf("unexpected status code: %s", response.Status)
}

func (this *GitHubReleaseClient) wrapProgress(response *http.Response) io.ReadCloser {
	if !this.showProgress || !isatty.IsTerminal(os.Stderr.Fd()) {
		return response.Body
	}
	bar := progressbar.DefaultBytes(response.ContentLength, "downloading")
	reader := progressbar.NewReader(response.Body, bar)
	return &reader
}

func (this *GitHubReleaseClient) dump(response *http.Response) {
	requestDump, _ := httputil.DumpRequestOut(response.Request, false)
	responseDump, _ := httputil.DumpResponse(response, false)
	log.Printf("unexpected status code: \nrequest: \n%s\nresponse:\n%s", requestDump, responseDump)
}
