package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tanq16/cwdl/internal/output"
	"github.com/tanq16/cwdl/internal/scheduler"
	"github.com/tanq16/cwdl/internal/scrape"
	"github.com/tanq16/cwdl/internal/utils"
)

func newEnrolledCmd() *cobra.Command {
	var download bool

	cmd := &cobra.Command{
		Use:   "enrolled [--download]",
		Short: "List enrolled courses from the dashboard, optionally downloading them all",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			sess, err := newSession()
			if err != nil {
				output.PrintError("Failed to build session: " + err.Error())
				os.Exit(1)
			}
			courses := scrape.DiscoverCourses(sess, baseURL)
			if len(courses) == 0 {
				output.PrintWarning("No enrolled courses discovered; check your auth token or cookies")
				return
			}
			if !download {
				output.PrintHeader("Enrolled courses")
				output.PrintCourseTable(courses)
				return
			}
			jobs := make([]utils.Job, 0, len(courses))
			for _, courseURL := range courses {
				jobs = append(jobs, utils.Job{
					JobType:    "course",
					URL:        courseURL,
					OutputPath: filepath.Join(outputDir, utils.CourseSlug(courseURL)),
				})
			}
			if err := scheduler.Run(jobs, newRegistry(sess)); err != nil {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolVar(&download, "download", false, "Download every discovered course")
	return cmd
}
