package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ytget/yt-audio/internal/app"
	"github.com/ytget/yt-audio/internal/config"
	"github.com/ytget/yt-audio/internal/download"
)

// Locator is the part of the resolver the console uses
type Locator interface {
	ValidateTools() (bool, string)
	ToolPath(name string) string
	OutputDirectory() string
	EnsureOutputDirectory() error
}

// environment is what a command needs to run
type environment struct {
	config    *config.Config
	locator   Locator
	downloads download.Downloader
}

// environmentFactory builds the environment once flags are parsed
type environmentFactory func(cfg *config.Config, stderr io.Writer, verbose bool) *environment

// defaultEnvironment wires the real services
func defaultEnvironment(cfg *config.Config, stderr io.Writer, verbose bool) *environment {
	var console io.Writer
	if verbose {
		console = stderr
	}
	a := app.New(cfg, app.NewLogger(cfg, console))
	return &environment{
		config:    cfg,
		locator:   a.Resolver,
		downloads: a.Downloads,
	}
}

// cli carries state shared by the command tree
type cli struct {
	factory    environmentFactory
	stdout     io.Writer
	stderr     io.Writer
	configFile string
	verbose    bool
	env        *environment
}

// newRootCommand builds the command tree. The root command itself accepts
// "<url> <mp3|flac>" so the tool works without a subcommand.
func newRootCommand(factory environmentFactory, stdout, stderr io.Writer) *cobra.Command {
	c := &cli{factory: factory, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "yt-audio <url> <mp3|flac>",
		Short: "Download audio from YouTube videos and playlists",
		Long: `yt-audio downloads the audio track of a YouTube video or of every video
in a playlist and converts it with yt-dlp and ffmpeg.

Playlists are saved into a subfolder named after the playlist. A failed
item is reported and skipped.

Example:
  yt-audio https://www.youtube.com/watch?v=dQw4w9WgXcQ mp3
  yt-audio download https://www.youtube.com/playlist?list=PL123 flac`,
		Version:           version,
		Args:              cobra.ExactArgs(2),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.initEnvironment,
		RunE:              c.runDownload,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (YAML, optional)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(
		c.newDownloadCommand(),
		c.newCheckCommand(),
		c.newClassifyCommand(),
	)
	return root
}

// initEnvironment loads configuration and builds the services
func (c *cli) initEnvironment(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configFile)
	if err != nil {
		return err
	}
	c.env = c.factory(cfg, c.stderr, c.verbose)
	return nil
}

// commandContext returns the command context, or background when unset
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// isInteractive reports whether w is a terminal
func isInteractive(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// trimArg normalizes a positional argument
func trimArg(s string) string {
	return strings.TrimSpace(s)
}
