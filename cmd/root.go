package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tanq16/cwdl/internal/config"
	"github.com/tanq16/cwdl/internal/downloaders/course"
	"github.com/tanq16/cwdl/internal/scrape"
	"github.com/tanq16/cwdl/internal/session"
	"github.com/tanq16/cwdl/internal/utils"
	"github.com/tanq16/cwdl/internal/ytdlp"
)

var CwdlVersion = "dev"

var (
	bearerToken string
	cookieFile  string
	outputDir   string
	baseURL     string
	userAgent   string
	headers     []string
	timeout     time.Duration
	debug       bool
)

var rootCmd = &cobra.Command{
	Use:     "cwdl",
	Short:   "cwdl discovers course video manifests and downloads them through yt-dlp",
	Version: CwdlVersion,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.InitLogger(debug)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		cfg = &config.Config{
			CookieFile: "cookies.txt",
			OutputDir:  "careerwill_out",
			BaseURL:    scrape.DefaultDashboardURL,
			Timeout:    3 * time.Minute,
		}
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&bearerToken, "bearer", "b", cfg.BearerToken, "Bearer token for authenticated fetches (takes precedence over cookies)")
	pf.StringVar(&cookieFile, "cookies", cfg.CookieFile, "Path to a Netscape-format cookie file")
	pf.StringVarP(&outputDir, "output", "o", cfg.OutputDir, "Output directory")
	pf.StringVar(&baseURL, "base-url", cfg.BaseURL, "Site root used for enrolled-course discovery")
	pf.StringVarP(&userAgent, "user-agent", "a", cfg.UserAgent, "User agent")
	pf.StringArrayVarP(&headers, "header", "H", []string{}, "Custom headers (like 'X-Requested-With: XMLHttpRequest'); can be specified multiple times")
	pf.DurationVarP(&timeout, "timeout", "t", cfg.Timeout, "Request timeout (eg. 30s, 3m)")
	pf.BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newCourseCmd())
	rootCmd.AddCommand(newEnrolledCmd())
	rootCmd.AddCommand(newBatchCmd())
}

func newSession() (*session.Client, error) {
	return session.New(utils.SessionConfig{
		BearerToken: bearerToken,
		CookieFile:  cookieFile,
		Timeout:     timeout,
		UserAgent:   userAgent,
		Headers:     utils.ParseHeaderArgs(headers),
	})
}

func newRegistry(sess *session.Client) map[string]utils.Downloader {
	return map[string]utils.Downloader{
		"course": course.New(sess, ytdlp.New(sess.CookieFile())),
	}
}
