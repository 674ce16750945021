package scheduler

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tanq16/cwdl/internal/utils"
)

type fakeDownloader struct {
	validated  []string
	downloaded []string
}

func (d *fakeDownloader) ValidateJob(job *utils.Job) error {
	d.validated = append(d.validated, job.URL)
	return nil
}

func (d *fakeDownloader) BuildJob(job *utils.Job) error {
	return nil
}

func (d *fakeDownloader) Download(job *utils.Job) error {
	d.downloaded = append(d.downloaded, job.URL)
	if strings.Contains(job.URL, "unreachable") {
		return fmt.Errorf("fetching course page: connection refused")
	}
	return nil
}

func TestRunIsolatesCourseFailures(t *testing.T) {
	dl := &fakeDownloader{}
	jobs := []utils.Job{
		{JobType: "course", URL: "https://site.example/course/1"},
		{JobType: "course", URL: "https://unreachable.example/course/2"},
		{JobType: "course", URL: "https://site.example/course/3"},
	}
	err := Run(jobs, map[string]utils.Downloader{"course": dl})
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 of 3")
	// the failed course must not stop the ones after it
	require.Equal(t, []string{
		"https://site.example/course/1",
		"https://unreachable.example/course/2",
		"https://site.example/course/3",
	}, dl.downloaded)
}

func TestRunAllSucceed(t *testing.T) {
	dl := &fakeDownloader{}
	jobs := []utils.Job{
		{JobType: "course", URL: "https://site.example/course/1"},
		{JobType: "course", URL: "https://site.example/course/2"},
	}
	require.NoError(t, Run(jobs, map[string]utils.Downloader{"course": dl}))
	require.Len(t, dl.downloaded, 2)
	require.NotEmpty(t, jobs[0].ID)
	require.NotEmpty(t, jobs[1].ID)
}

func TestRunUnknownJobType(t *testing.T) {
	dl := &fakeDownloader{}
	jobs := []utils.Job{{JobType: "torrent", URL: "https://site.example/x"}}
	err := Run(jobs, map[string]utils.Downloader{"course": dl})
	require.Error(t, err)
	require.Empty(t, dl.downloaded)
}
