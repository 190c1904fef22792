package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/yt-audio/internal/platform"
)

// Tool status labels
const (
	statusFound   = "found"
	statusMissing = "missing"
)

func (c *cli) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify yt-dlp and ffmpeg are available",
		Args:  cobra.NoArgs,
		RunE:  c.runCheck,
	}
}

// runCheck prints where each tool resolves and fails when one is missing
func (c *cli) runCheck(_ *cobra.Command, _ []string) error {
	rows := make([][]string, 0, 3)
	for _, name := range []string{platform.ExtractionTool, platform.ConversionTool} {
		path := c.env.locator.ToolPath(name)
		status := statusMissing
		if platform.FileExists(path) {
			status = statusFound
		}
		rows = append(rows, []string{name, status, path})
	}
	rows = append(rows, []string{"output", directoryStatus(c.env.locator.OutputDirectory()), c.env.locator.OutputDirectory()})

	fmt.Fprintln(c.stdout, renderTable([]string{"Tool", "Status", "Path"}, rows, nil))

	if ok, missing := c.env.locator.ValidateTools(); !ok {
		return fmt.Errorf("%s not found", missing)
	}
	return nil
}

// directoryStatus reports whether the output folder exists yet
func directoryStatus(dir string) string {
	if platform.DirectoryExists(dir) {
		return statusFound
	}
	return "will be created"
}
