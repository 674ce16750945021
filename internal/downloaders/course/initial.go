// Package course implements the per-course download flow: fetch the course
// page with the authenticated session, extract manifest URLs, and hand each
// one to the external tool in its own numbered output directory.
package course

import (
	"fmt"
	"net/url"

	"github.com/tanq16/cwdl/internal/utils"
)

// PageFetcher is the slice of the session client the downloader needs.
type PageFetcher interface {
	FetchPage(pageURL string) (string, error)
}

// ToolRunner invokes the external media downloader on one manifest.
type ToolRunner interface {
	Ensure() error
	Download(manifestURL, outputDir string) error
}

type Downloader struct {
	client PageFetcher
	runner ToolRunner
}

func New(client PageFetcher, runner ToolRunner) *Downloader {
	return &Downloader{client: client, runner: runner}
}

func (d *Downloader) ValidateJob(job *utils.Job) error {
	parsed, err := url.Parse(job.URL)
	if err != nil {
		return fmt.Errorf("invalid course URL: %w", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("invalid course URL: %s", job.URL)
	}
	return nil
}

func (d *Downloader) BuildJob(job *utils.Job) error {
	if job.OutputPath == "" {
		job.OutputPath = "careerwill_out"
	}
	if err := d.runner.Ensure(); err != nil {
		return fmt.Errorf("preparing download tool: %w", err)
	}
	return nil
}
