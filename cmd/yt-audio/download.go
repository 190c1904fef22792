package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/yt-audio/internal/model"
	"github.com/ytget/yt-audio/internal/platform"
)

func (c *cli) newDownloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "download <url> [mp3|flac]",
		Short: "Download a video or playlist as audio",
		Long: `Download the audio of a video, or of every video in a playlist.
The format defaults to the configured encoding (mp3 unless set otherwise).`,
		Args: cobra.RangeArgs(1, 2),
		RunE: c.runDownload,
	}
}

// runDownload validates input and tools, then runs the single or playlist flow
func (c *cli) runDownload(cmd *cobra.Command, args []string) error {
	ref := trimArg(args[0])

	enc := c.env.config.EncodingTarget()
	if len(args) > 1 {
		parsed, err := model.ParseEncodingTarget(args[1])
		if err != nil {
			return err
		}
		enc = parsed
	}

	kind := platform.Classify(ref)
	if !kind.IsValid() {
		return fmt.Errorf("invalid YouTube URL: %q", ref)
	}

	if ok, missing := c.env.locator.ValidateTools(); !ok {
		name := strings.TrimSuffix(missing, platform.WindowsExeSuffix)
		return fmt.Errorf("%s not found, expected location: %s", missing, c.env.locator.ToolPath(name))
	}

	if err := c.env.locator.EnsureOutputDirectory(); err != nil {
		return err
	}

	fmt.Fprintf(c.stdout, "Format: %s\n", enc.Label())
	fmt.Fprintf(c.stdout, "Output folder: %s\n", c.env.locator.OutputDirectory())

	if kind == model.ReferenceCollection {
		return c.downloadCollection(cmd, ref, enc)
	}
	return c.downloadSingle(cmd, ref, enc)
}

// downloadSingle runs the single-item flow with a progress line
func (c *cli) downloadSingle(cmd *cobra.Command, ref string, enc model.EncodingTarget) error {
	printer := newProgressPrinter(c.stdout, isInteractive(c.stdout))

	outcome, err := c.env.downloads.DownloadSingle(commandContext(cmd), ref, enc, printer.Item)
	printer.Done()
	if err != nil {
		return err
	}
	if !outcome.OK() {
		return fmt.Errorf("download failed:\n%s", outcome.Diagnostic)
	}

	fmt.Fprintf(c.stdout, "Saved: %s\n", outcome.Path)
	return nil
}

// downloadCollection runs the playlist flow and prints a summary. Partial
// success exits cleanly; nothing downloaded is an error.
func (c *cli) downloadCollection(cmd *cobra.Command, ref string, enc model.EncodingTarget) error {
	printer := newProgressPrinter(c.stdout, isInteractive(c.stdout))

	result, err := c.env.downloads.DownloadCollection(commandContext(cmd), ref, enc, printer.Batch)
	printer.Done()
	if err != nil {
		return err
	}

	fmt.Fprintln(c.stdout, renderBatchSummary(result))

	if result.Total == 0 {
		return fmt.Errorf("playlist could not be read or is empty")
	}
	if result.Succeeded == 0 {
		return fmt.Errorf("no items were downloaded")
	}
	return nil
}
