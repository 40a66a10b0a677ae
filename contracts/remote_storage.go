package contracts

import (
	"errors"
	"io"
	"net/url"
)

// RetryErr marks transfer failures that are safe to attempt again.
var RetryErr = errors.New("retryable transfer error")

type Downloader interface {
	Download(request url.URL) (io.ReadCloser, error)
}
