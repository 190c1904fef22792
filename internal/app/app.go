package app

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/ytget/yt-audio/internal/config"
	"github.com/ytget/yt-audio/internal/download"
	"github.com/ytget/yt-audio/internal/extract"
	"github.com/ytget/yt-audio/internal/logging"
	"github.com/ytget/yt-audio/internal/platform"
)

// App holds the wired services
type App struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Resolver  *platform.Resolver
	Extractor *extract.Client
	Downloads *download.Service
}

// New builds the service graph from cfg. An invalid configured output
// directory is logged and the default is used instead.
func New(cfg *config.Config, logger zerolog.Logger) *App {
	resolver := platform.NewResolver(resolverOptions(cfg)...)
	if cfg.OutputDir != "" {
		if err := resolver.SetOutputDirectory(cfg.OutputDir); err != nil {
			logger.Warn().Err(err).Str("output_dir", cfg.OutputDir).Msg("configured output directory ignored")
		}
	}

	client := extract.NewClient(
		extract.WithExecutable(resolver.ExtractionToolPath()),
		extract.WithFFmpegLocation(resolver.ConversionToolPath()),
		extract.WithLogger(logger),
	)

	opts := []download.Option{download.WithLogger(logger)}
	if cfg.UseNativeEnumerator() {
		native := platform.NewYTDLPParserService()
		native.SetTimeout(cfg.EnumerateTimeoutDuration())
		opts = append(opts, download.WithEnumerator(native))
	}

	return &App{
		Config:    cfg,
		Logger:    logger,
		Resolver:  resolver,
		Extractor: client,
		Downloads: download.NewService(resolver, client, opts...),
	}
}

// NewLogger builds the process logger from the log section of cfg. Console
// lines go to console when it is non-nil.
func NewLogger(cfg *config.Config, console io.Writer) zerolog.Logger {
	return logging.New(logging.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Console:    console != nil,
		Writer:     console,
	})
}

// resolverOptions maps configuration onto resolver options
func resolverOptions(cfg *config.Config) []platform.ResolverOption {
	opts := []platform.ResolverOption{
		platform.WithToolsDir(cfg.ToolsDir),
		platform.WithSearchPath(cfg.SearchPath),
	}
	if cfg.RootDir != "" {
		opts = append(opts, platform.WithRootDir(cfg.RootDir))
	}
	return opts
}
