package course

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/tanq16/cwdl/internal/scrape"
	"github.com/tanq16/cwdl/internal/utils"
)

// Download fetches the course page and drives one download attempt per
// discovered manifest. A page-fetch failure is fatal for this course; a
// single manifest failing is logged and never stops its siblings. Zero
// manifests is an expected outcome, not an error.
func (d *Downloader) Download(job *utils.Job) error {
	log.Info().Str("op", "course/download").Msgf("Fetching course page: %s", job.URL)
	body, err := d.client.FetchPage(job.URL)
	if err != nil {
		return fmt.Errorf("fetching course page: %w", err)
	}
	manifests, err := scrape.ExtractManifests(body, job.URL)
	if err != nil {
		return fmt.Errorf("extracting manifests: %w", err)
	}
	if len(manifests) == 0 {
		log.Warn().Str("op", "course/download").Str("url", job.URL).Msg("No manifest URLs found; the course may be API-driven or DRM-protected")
		return nil
	}
	log.Info().Str("op", "course/download").Msgf("Found %d manifest(s)", len(manifests))

	succeeded := 0
	for i, manifest := range manifests {
		outDir := filepath.Join(job.OutputPath, fmt.Sprintf("manifest_%d", i+1))
		if err := os.MkdirAll(outDir, 0755); err != nil {
			log.Error().Str("op", "course/download").Err(err).Str("url", manifest).Msg("Failed to create output directory")
			continue
		}
		if err := d.runner.Download(manifest, outDir); err != nil {
			log.Error().Str("op", "course/download").Err(err).Str("url", manifest).Msg("Failed to download manifest")
			continue
		}
		succeeded++
	}
	log.Info().Str("op", "course/download").Msgf("Downloaded %d/%d manifest(s) for %s", succeeded, len(manifests), job.URL)
	return nil
}
