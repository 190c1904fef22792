package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/rs/zerolog"

	"github.com/ytget/yt-audio/internal/model"
)

// Output template and progress settings
const (
	OutputTemplate          = "%(title)s.%(ext)s"
	DefaultProgressInterval = 250 * time.Millisecond
)

// Runner executes a prepared yt-dlp command
type Runner interface {
	Run(ctx context.Context, cmd *ytdlp.Command, args ...string) (*ytdlp.Result, error)
}

type defaultRunner struct{}

func (defaultRunner) Run(ctx context.Context, cmd *ytdlp.Command, args ...string) (*ytdlp.Result, error) {
	return cmd.Run(ctx, args...)
}

// Option configures a Client
type Option func(*Client)

// WithExecutable sets the yt-dlp binary path
func WithExecutable(path string) Option {
	return func(c *Client) {
		c.executable = path
	}
}

// WithFFmpegLocation sets the ffmpeg binary path handed to yt-dlp
func WithFFmpegLocation(path string) Option {
	return func(c *Client) {
		c.ffmpegLocation = path
	}
}

// WithProgressInterval sets how often yt-dlp progress is sampled
func WithProgressInterval(interval time.Duration) Option {
	return func(c *Client) {
		if interval > 0 {
			c.progressInterval = interval
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger.With().Str("component", "extract").Logger()
	}
}

// WithRunner replaces the command runner
func WithRunner(runner Runner) Option {
	return func(c *Client) {
		if runner != nil {
			c.runner = runner
		}
	}
}

// Client invokes yt-dlp for audio extraction and playlist enumeration
type Client struct {
	executable       string
	ffmpegLocation   string
	progressInterval time.Duration
	logger           zerolog.Logger
	runner           Runner
}

// NewClient creates a new yt-dlp client
func NewClient(opts ...Option) *Client {
	c := &Client{
		progressInterval: DefaultProgressInterval,
		logger:           zerolog.Nop(),
		runner:           defaultRunner{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// command creates a builder bound to the configured binaries
func (c *Client) command() *ytdlp.Command {
	cmd := ytdlp.New()
	if c.executable != "" {
		cmd.SetExecutable(c.executable)
	}
	if c.ffmpegLocation != "" {
		cmd.FFmpegLocation(c.ffmpegLocation)
	}
	return cmd
}

// Extract downloads one item and converts its audio to req.Encoding under
// req.OutputDir. Tool failures are reported in the result, not as an error.
func (c *Client) Extract(ctx context.Context, req model.ExtractRequest, onProgress model.ProgressFunc) (model.ExtractResult, error) {
	if req.Reference == "" {
		return model.ExtractResult{}, fmt.Errorf("empty reference")
	}

	tracker := newProgressTracker(onProgress)

	cmd := c.command().
		ExtractAudio().
		AudioFormat(req.Encoding.String()).
		NoPlaylist().
		Output(outputTemplate(req.OutputDir))
	if quality := req.Encoding.Quality(); quality != "" {
		cmd.AudioQuality(quality)
	}
	cmd.ProgressFunc(c.progressInterval, func(update ytdlp.ProgressUpdate) {
		tracker.observe(sampleFromUpdate(update))
	})

	c.logger.Debug().
		Str("reference", req.Reference).
		Str("encoding", req.Encoding.String()).
		Str("output_dir", req.OutputDir).
		Msg("starting extraction")

	result, err := c.runner.Run(ctx, cmd, req.Reference)
	if err != nil || (result != nil && result.ExitCode != 0) {
		diagnostics := diagnosticLines(result, err)
		c.logger.Warn().
			Str("reference", req.Reference).
			Strs("diagnostics", diagnostics).
			Msg("extraction failed")
		return model.ExtractResult{Diagnostics: diagnostics}, nil
	}

	path := tracker.filename()
	if path == "" {
		path = extractedFilename(result)
	}
	path = convertedPath(path, req.Encoding, req.OutputDir)

	c.logger.Debug().Str("reference", req.Reference).Str("path", path).Msg("extraction finished")
	return model.ExtractResult{Success: true, Path: path}, nil
}

// Enumerate lists a playlist's entries without downloading them
func (c *Client) Enumerate(ctx context.Context, ref string) (*model.Collection, error) {
	cmd := c.command().
		FlatPlaylist().
		DumpSingleJSON().
		SkipDownload()

	result, err := c.runner.Run(ctx, cmd, ref)
	if err != nil {
		return nil, fmt.Errorf("enumerate playlist %s: %s: %w", ref, strings.Join(diagnosticLines(result, nil), "; "), err)
	}
	if result == nil {
		return nil, fmt.Errorf("enumerate playlist %s: no output", ref)
	}

	collection, err := parseFlatPlaylist([]byte(result.Stdout))
	if err != nil {
		return nil, fmt.Errorf("enumerate playlist %s: %w", ref, err)
	}

	c.logger.Debug().
		Str("reference", ref).
		Str("title", collection.Title).
		Int("entries", collection.Len()).
		Msg("playlist enumerated")
	return collection, nil
}

// outputTemplate roots the yt-dlp output template at dir
func outputTemplate(dir string) string {
	if dir == "" {
		return OutputTemplate
	}
	return filepath.Join(dir, OutputTemplate)
}

// convertedPath swaps the downloaded file's extension for the encoding's.
// With no known filename the output directory is returned.
func convertedPath(downloaded string, enc model.EncodingTarget, dir string) string {
	if downloaded == "" {
		return dir
	}
	ext := filepath.Ext(downloaded)
	return strings.TrimSuffix(downloaded, ext) + "." + enc.Extension()
}

// extractedFilename reads the filename from the info JSON yt-dlp printed, if any
func extractedFilename(result *ytdlp.Result) string {
	if result == nil {
		return ""
	}
	info, err := result.GetExtractedInfo()
	if err != nil || len(info) == 0 {
		return ""
	}
	if info[0].Filename != nil {
		return *info[0].Filename
	}
	return ""
}

// diagnosticLines collects the error lines yt-dlp wrote. ERROR lines are
// preferred; without them every non-empty stderr line is kept, and err is
// the last resort.
func diagnosticLines(result *ytdlp.Result, err error) []string {
	var errorLines, otherLines []string
	if result != nil {
		for _, line := range strings.Split(result.Stderr, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "ERROR") {
				errorLines = append(errorLines, line)
			} else {
				otherLines = append(otherLines, line)
			}
		}
	}

	switch {
	case len(errorLines) > 0:
		return errorLines
	case len(otherLines) > 0:
		return otherLines
	case err != nil:
		return []string{err.Error()}
	case result != nil && result.ExitCode != 0:
		return []string{fmt.Sprintf("yt-dlp exited with code %d", result.ExitCode)}
	default:
		return nil
	}
}
