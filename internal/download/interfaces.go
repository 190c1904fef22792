package download

import (
	"context"

	"github.com/ytget/yt-audio/internal/model"
)

// Extractor runs one extract-and-convert invocation of the extraction tool
type Extractor interface {
	Extract(ctx context.Context, req model.ExtractRequest, onProgress model.ProgressFunc) (model.ExtractResult, error)
}

// Enumerator lists the entries of a playlist without downloading them
type Enumerator interface {
	Enumerate(ctx context.Context, ref string) (*model.Collection, error)
}

// Locator owns the output directory setting and tool availability
type Locator interface {
	OutputDirectory() string
	EnsureOutputDirectory() error
	WithOutputDirectory(dir string, fn func()) error
	CheckTools() error
}

// Downloader defines the interface for the download service.
type Downloader interface {
	DownloadSingle(ctx context.Context, ref string, enc model.EncodingTarget, onProgress model.ProgressFunc) (model.DownloadOutcome, error)
	DownloadCollection(ctx context.Context, ref string, enc model.EncodingTarget, onProgress model.BatchProgressFunc) (model.BatchResult, error)
}
