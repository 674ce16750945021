// Package scheduler runs jobs through their registered downloaders, one at a
// time. Fetches and tool invocations block until they finish; deadlines are
// the HTTP client's and the external tool's business.
package scheduler

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tanq16/cwdl/internal/output"
	"github.com/tanq16/cwdl/internal/utils"
)

// Run processes jobs sequentially. Failures are isolated at the job
// boundary: a course whose page cannot be fetched is logged and counted, and
// the loop moves on. The returned error only reports the final tally so the
// CLI can exit non-zero.
func Run(jobs []utils.Job, registry map[string]utils.Downloader) error {
	failed := 0
	for i := range jobs {
		job := &jobs[i]
		if job.ID == "" {
			job.ID = uuid.NewString()[:8]
		}
		logger := log.With().Str("op", "scheduler/run").Str("job", job.ID).Logger()

		downloader, ok := registry[job.JobType]
		if !ok {
			logger.Error().Msgf("Unknown job type: %s", job.JobType)
			failed++
			continue
		}
		if err := downloader.ValidateJob(job); err != nil {
			logger.Error().Err(err).Msgf("Validation failed for %s", job.URL)
			failed++
			continue
		}
		if err := downloader.BuildJob(job); err != nil {
			logger.Error().Err(err).Msgf("Build failed for %s", job.URL)
			failed++
			continue
		}
		if err := downloader.Download(job); err != nil {
			logger.Error().Err(err).Msgf("Download failed for %s", job.URL)
			output.PrintError(fmt.Sprintf("Failed %s", job.URL))
			failed++
			continue
		}
		output.PrintSuccess(fmt.Sprintf("Completed %s", job.URL))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d job(s) failed", failed, len(jobs))
	}
	return nil
}
