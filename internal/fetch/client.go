package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"branchdiff/internal/models"
)

// ArchAll asks the export API for every architecture in the branch.
const ArchAll = "all"

// Client downloads branch manifests from the package database export API.
type Client struct {
	endpoint string
	http     *http.Client
	progress bool
}

// NewClient creates a client for the given endpoint. With progress set,
// downloads with a known content length render a progress bar on stderr.
func NewClient(endpoint string, timeout time.Duration, progress bool) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     &http.Client{Timeout: timeout},
		progress: progress,
	}
}

// URL builds the manifest URL for a branch, adding an arch query when the
// caller wants a single architecture.
func (c *Client) URL(branch, arch string) string {
	u := c.endpoint + "/" + url.PathEscape(branch)
	if arch != "" && arch != ArchAll {
		u += "?arch=" + url.QueryEscape(arch)
	}
	return u
}

// Fetch streams the manifest for a branch into dst. HTTP and connection
// failures come back as OpError with a message the user can act on; dst
// may have been partially written and is the caller's to discard.
func (c *Client) Fetch(ctx context.Context, branch, arch string, dst io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(branch, arch), nil)
	if err != nil {
		return &models.OpError{Type: models.ErrDownload, Branch: branch, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &models.OpError{
			Type:   models.ErrDownload,
			Branch: branch,
			Err:    fmt.Errorf("connection failed, make sure you are connected to the Internet: %w", err),
		}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return &models.OpError{
			Type:   models.ErrDownload,
			Branch: branch,
			Err:    fmt.Errorf("request parameters rejected by the server (HTTP 400)"),
		}
	case http.StatusNotFound:
		return &models.OpError{
			Type:   models.ErrDownload,
			Branch: branch,
			Err:    fmt.Errorf("branch not found in the package database (HTTP 404)"),
		}
	default:
		return &models.OpError{
			Type:   models.ErrDownload,
			Branch: branch,
			Err:    fmt.Errorf("unexpected HTTP status %s", resp.Status),
		}
	}

	out := dst
	if c.progress && resp.ContentLength > 0 {
		bar := progressbar.DefaultBytes(resp.ContentLength, "downloading "+branch)
		defer bar.Finish()
		out = io.MultiWriter(dst, bar)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		return &models.OpError{Type: models.ErrDownload, Branch: branch, Err: err}
	}
	return nil
}
