package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/tanq16/cwdl/internal/output"
	"github.com/tanq16/cwdl/internal/scheduler"
	"github.com/tanq16/cwdl/internal/utils"
)

type BatchEntry struct {
	OutputPath string `yaml:"op,omitempty"`
	Link       string `yaml:"link"`
}

type BatchFile map[string][]BatchEntry

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch [YAML_FILE]",
		Short: "Download multiple courses listed in a YAML file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			data, err := os.ReadFile(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading YAML file: %v\n", err)
				os.Exit(1)
			}
			var batchFile BatchFile
			if err := yaml.Unmarshal(data, &batchFile); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing YAML file: %v\n", err)
				os.Exit(1)
			}
			jobs := buildJobsFromBatch(batchFile)
			if len(jobs) == 0 {
				fmt.Fprintf(os.Stderr, "No valid jobs found in the batch file\n")
				os.Exit(1)
			}
			sess, err := newSession()
			if err != nil {
				output.PrintError("Failed to build session: " + err.Error())
				os.Exit(1)
			}
			if err := scheduler.Run(jobs, newRegistry(sess)); err != nil {
				os.Exit(1)
			}
		},
	}
}

func buildJobsFromBatch(batchFile BatchFile) []utils.Job {
	var jobs []utils.Job
	for jobType, entries := range batchFile {
		if normalizeJobType(jobType) == "" {
			fmt.Fprintf(os.Stderr, "Warning: Unknown job type '%s', skipping...\n", jobType)
			continue
		}
		for _, entry := range entries {
			if entry.Link == "" {
				fmt.Fprintf(os.Stderr, "Warning: Empty link found in %s section, skipping...\n", jobType)
				continue
			}
			outputPath := entry.OutputPath
			if outputPath == "" {
				outputPath = filepath.Join(outputDir, utils.CourseSlug(entry.Link))
			}
			jobs = append(jobs, utils.Job{
				JobType:    "course",
				URL:        entry.Link,
				OutputPath: outputPath,
			})
		}
	}
	return jobs
}

func normalizeJobType(jobType string) string {
	typeMap := map[string]string{
		"course":  "course",
		"courses": "course",
		"learn":   "course",
	}
	return typeMap[strings.ToLower(jobType)]
}
