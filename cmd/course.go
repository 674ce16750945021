package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tanq16/cwdl/internal/output"
	"github.com/tanq16/cwdl/internal/scheduler"
	"github.com/tanq16/cwdl/internal/utils"
)

func newCourseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "course [URL]",
		Short: "Download all discoverable manifests from a single course page",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			sess, err := newSession()
			if err != nil {
				output.PrintError("Failed to build session: " + err.Error())
				os.Exit(1)
			}
			jobs := []utils.Job{{JobType: "course", URL: args[0], OutputPath: outputDir}}
			if err := scheduler.Run(jobs, newRegistry(sess)); err != nil {
				os.Exit(1)
			}
		},
	}
}
