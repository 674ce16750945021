package utils

import "time"

// Downloader is the lifecycle every job type moves through: validation of the
// user-supplied URL, preparation of tools and output paths, then the download
// itself.
type Downloader interface {
	ValidateJob(job *Job) error
	BuildJob(job *Job) error
	Download(job *Job) error
}

type Job struct {
	ID         string
	JobType    string
	URL        string
	OutputPath string
}

// SessionConfig holds everything needed to build the shared authenticated
// HTTP session. Exactly one of BearerToken or CookieFile is expected; the
// bearer token wins when both are set.
type SessionConfig struct {
	BearerToken string
	CookieFile  string
	Timeout     time.Duration
	UserAgent   string
	Headers     map[string]string
}
