// Package ytdlp locates and drives the external yt-dlp binary, which handles
// all actual media fetching and muxing. The binary is looked up in PATH and
// next to the executable, with a fallback download from the official release
// page.
package ytdlp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const releaseBaseURL = "https://github.com/yt-dlp/yt-dlp/releases/latest/download/"

type Runner struct {
	path string

	// passed through with --cookies when the session authenticated with a
	// cookie file
	cookieFile string
}

func New(cookieFile string) *Runner {
	return &Runner{cookieFile: cookieFile}
}

// Ensure resolves the yt-dlp binary path, downloading it if necessary.
func (r *Runner) Ensure() error {
	if r.path != "" {
		return nil
	}
	if path, err := exec.LookPath("yt-dlp"); err == nil {
		r.path = path
		return nil
	}
	if execPath, err := os.Executable(); err == nil {
		local := filepath.Join(filepath.Dir(execPath), "yt-dlp")
		if runtime.GOOS == "windows" {
			local += ".exe"
		}
		if _, err := os.Stat(local); err == nil {
			r.path = local
			return nil
		}
	}
	path, err := downloadYtdlp()
	if err != nil {
		return fmt.Errorf("yt-dlp not found and failed to download: %w", err)
	}
	r.path = path
	return nil
}

// Download runs yt-dlp on a single manifest URL into outputDir. Output files
// are named from stream metadata. Unplayable formats are still attempted;
// whether the result is usable is yt-dlp's problem, not ours.
func (r *Runner) Download(manifestURL, outputDir string) error {
	if r.path == "" {
		if err := r.Ensure(); err != nil {
			return err
		}
	}
	args := []string{
		"--progress",
		"--newline",
		"--no-warnings",
		"--allow-unplayable-formats",
		"--no-playlist",
		"-o", filepath.Join(outputDir, "%(title)s.%(ext)s"),
	}
	if r.cookieFile != "" {
		args = append(args, "--cookies", r.cookieFile)
	}
	args = append(args, manifestURL)

	cmd := exec.Command(r.path, args...)
	log.Debug().Str("op", "ytdlp/download").Msgf("Executing yt-dlp command: %s", cmd.String())

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("error creating stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("error creating stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("error starting yt-dlp: %w", err)
	}
	go streamLines(stdout)
	go streamLines(stderr)
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("yt-dlp failed for %s: %w", manifestURL, err)
	}
	return nil
}

func streamLines(reader io.Reader) {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			log.Debug().Str("op", "ytdlp/stream").Msg(line)
		}
	}
}

func downloadYtdlp() (string, error) {
	var filename string
	switch {
	case runtime.GOOS == "windows" && runtime.GOARCH == "amd64":
		filename = "yt-dlp.exe"
	case runtime.GOOS == "linux" && runtime.GOARCH == "amd64":
		filename = "yt-dlp_linux"
	case runtime.GOOS == "linux" && runtime.GOARCH == "arm64":
		filename = "yt-dlp_linux_aarch64"
	case runtime.GOOS == "darwin":
		filename = "yt-dlp_macos"
	default:
		return "", fmt.Errorf("unsupported OS/architecture combination: %s/%s", runtime.GOOS, runtime.GOARCH)
	}

	tempDir := ".cwdl-temp"
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return "", fmt.Errorf("error creating temp directory: %w", err)
	}
	filePath := filepath.Join(tempDir, filename)
	res, err := resty.New().
		SetTimeout(5 * time.Minute).
		R().
		SetOutput(filePath).
		Get(releaseBaseURL + filename)
	if err != nil {
		return "", fmt.Errorf("error downloading yt-dlp: %w", err)
	}
	if res.IsError() {
		return "", fmt.Errorf("error downloading yt-dlp: status %s", res.Status())
	}
	if runtime.GOOS != "windows" {
		if err := os.Chmod(filePath, 0755); err != nil {
			return "", fmt.Errorf("error setting file permissions: %w", err)
		}
	}
	log.Info().Str("op", "ytdlp/download").Msgf("Downloaded yt-dlp to %s", filePath)
	return filePath, nil
}
