package download

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/yt-audio/internal/model"
	"github.com/ytget/yt-audio/internal/platform"
)

// Collection directory fallbacks
const (
	PlaylistTitlePrefix   = "Playlist "
	DefaultCollectionName = "playlist"
)

// Status messages carried by BatchProgress
const (
	StatusFetching        = "Fetching playlist..."
	StatusEnumerateFailed = "Failed to fetch playlist: %s"
	StatusEmpty           = "Playlist contains no items"
	StatusItem            = "Downloading %d of %d: %s"
	StatusSummary         = "Completed: %d of %d downloaded"
)

// ErrInvalidReference is returned when a reference classifies as invalid
var ErrInvalidReference = errors.New("invalid reference")

// Option configures a Service
type Option func(*Service)

// WithEnumerator sets the playlist enumerator
func WithEnumerator(enumerator Enumerator) Option {
	return func(s *Service) {
		if enumerator != nil {
			s.enumerator = enumerator
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger.With().Str("component", "download").Logger()
	}
}

// Service orchestrates single-item and playlist downloads
type Service struct {
	locator    Locator
	extractor  Extractor
	enumerator Enumerator
	logger     zerolog.Logger
}

var _ Downloader = (*Service)(nil)

// NewService creates a new download service. The extractor doubles as the
// enumerator when it implements Enumerator and none is set explicitly.
func NewService(locator Locator, extractor Extractor, opts ...Option) *Service {
	s := &Service{
		locator:   locator,
		extractor: extractor,
		logger:    zerolog.Nop(),
	}
	if enumerator, ok := extractor.(Enumerator); ok {
		s.enumerator = enumerator
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DownloadSingle extracts one item into the output directory. The error is
// reserved for invalid input and missing tools; tool failures are returned as
// a failed outcome.
func (s *Service) DownloadSingle(ctx context.Context, ref string, enc model.EncodingTarget, onProgress model.ProgressFunc) (model.DownloadOutcome, error) {
	ref, enc, err := s.preflight(ref, enc)
	if err != nil {
		return model.DownloadOutcome{}, err
	}
	if err := s.locator.EnsureOutputDirectory(); err != nil {
		return model.DownloadOutcome{}, err
	}

	req := model.ExtractRequest{
		Reference: ref,
		Encoding:  enc,
		OutputDir: s.locator.OutputDirectory(),
	}
	outcome := s.extract(ctx, req, onProgress)
	if outcome.OK() {
		s.logger.Info().Str("reference", ref).Str("path", outcome.Path).Msg("download completed")
	} else {
		s.logger.Warn().Str("reference", ref).Str("diagnostic", outcome.Diagnostic).Msg("download failed")
	}
	return outcome, nil
}

// DownloadCollection downloads every playlist entry into a per-run
// subdirectory named after the playlist. Items run sequentially and a failed
// item never stops the run. A failed or empty enumeration yields a 0/0 result.
func (s *Service) DownloadCollection(ctx context.Context, ref string, enc model.EncodingTarget, onProgress model.BatchProgressFunc) (model.BatchResult, error) {
	ref, enc, err := s.preflight(ref, enc)
	if err != nil {
		return model.BatchResult{}, err
	}
	if s.enumerator == nil {
		return model.BatchResult{}, fmt.Errorf("no playlist enumerator configured")
	}

	emit := func(p model.BatchProgress) {
		if onProgress != nil {
			onProgress(p)
		}
	}

	result := model.BatchResult{RunID: newRunID()}
	logger := s.logger.With().Str("run_id", result.RunID).Logger()

	emit(model.BatchProgress{Phase: model.BatchPhaseFetching, Status: StatusFetching})

	collection, err := s.enumerate(ctx, ref)
	if err != nil {
		logger.Warn().Err(err).Str("reference", ref).Msg("playlist enumeration failed")
		emit(model.BatchProgress{Phase: model.BatchPhaseFailed, Status: fmt.Sprintf(StatusEnumerateFailed, err)})
		return result, nil
	}
	if collection.IsEmpty() {
		logger.Warn().Str("reference", ref).Msg("playlist is empty")
		emit(model.BatchProgress{Phase: model.BatchPhaseFailed, Status: StatusEmpty})
		return result, nil
	}

	result.Title = collectionTitle(collection, ref)
	result.Total = collection.Len()
	result.Directory = filepath.Join(s.locator.OutputDirectory(), directoryName(result.Title))
	if err := platform.CreateDirectoryIfNotExists(result.Directory); err != nil {
		return result, fmt.Errorf("create playlist directory %s: %w", result.Directory, err)
	}

	logger.Info().
		Str("title", result.Title).
		Int("total", result.Total).
		Str("directory", result.Directory).
		Msg("playlist download started")

	for i, item := range collection.Items {
		index := i + 1
		title := item.DisplayTitle()
		base := model.BatchProgress{
			Index:   index,
			Total:   result.Total,
			Title:   title,
			Percent: model.OverallPercent(index, result.Total),
			Phase:   model.BatchPhaseDownloading,
			Status:  fmt.Sprintf(StatusItem, index, result.Total, title),
		}
		emit(base)

		itemProgress := func(u model.ProgressUpdate) {
			p := base
			p.ItemPercent = u.Percent
			emit(p)
		}

		req := model.ExtractRequest{
			Reference: item.Reference(),
			Encoding:  enc,
			OutputDir: result.Directory,
		}
		var outcome model.DownloadOutcome
		if err := s.locator.WithOutputDirectory(result.Directory, func() {
			outcome = s.extract(ctx, req, itemProgress)
		}); err != nil {
			outcome = model.Failed(err.Error())
		}

		if outcome.OK() {
			result.Succeeded++
			logger.Debug().Int("index", index).Str("path", outcome.Path).Msg("item downloaded")
			continue
		}

		result.Failures = append(result.Failures, model.ItemFailure{
			Index:      index,
			Title:      title,
			Reference:  req.Reference,
			Diagnostic: outcome.Diagnostic,
		})
		logger.Warn().Int("index", index).Str("reference", req.Reference).Str("diagnostic", outcome.Diagnostic).Msg("item failed")
	}

	emit(model.BatchProgress{
		Index:       result.Total,
		Total:       result.Total,
		Percent:     100,
		ItemPercent: 100,
		Phase:       model.BatchPhaseCompleted,
		Status:      fmt.Sprintf(StatusSummary, result.Succeeded, result.Total),
	})
	logger.Info().Int("succeeded", result.Succeeded).Int("total", result.Total).Msg("playlist download finished")

	return result, nil
}

// preflight rejects invalid input and missing tools before any subprocess
// starts, returning the trimmed reference and the canonical encoding
func (s *Service) preflight(ref string, enc model.EncodingTarget) (string, model.EncodingTarget, error) {
	ref = strings.TrimSpace(ref)
	if platform.Classify(ref) == model.ReferenceInvalid {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidReference, ref)
	}
	target, err := model.ParseEncodingTarget(enc.String())
	if err != nil {
		return "", "", err
	}
	if err := s.locator.CheckTools(); err != nil {
		return "", "", err
	}
	return ref, target, nil
}

// extract runs the extractor and converts every fault into a failed outcome
func (s *Service) extract(ctx context.Context, req model.ExtractRequest, onProgress model.ProgressFunc) (outcome model.DownloadOutcome) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Str("reference", req.Reference).Msg("extractor panicked")
			outcome = model.Failed(fmt.Sprintf("extraction aborted: %v", r))
		}
	}()

	res, err := s.extractor.Extract(ctx, req, onProgress)
	if err != nil {
		return model.Failed(err.Error())
	}
	if !res.Success {
		return model.Failed(strings.Join(res.Diagnostics, "\n"))
	}
	if strings.TrimSpace(res.Path) == "" {
		return model.Failed(model.UnknownFailureDiagnostic)
	}
	return model.Succeeded(res.Path)
}

// enumerate runs the enumerator, treating a panic as a failed enumeration
func (s *Service) enumerate(ctx context.Context, ref string) (collection *model.Collection, err error) {
	defer func() {
		if r := recover(); r != nil {
			collection, err = nil, fmt.Errorf("enumeration aborted: %v", r)
		}
	}()
	return s.enumerator.Enumerate(ctx, ref)
}

// collectionTitle picks the display title: the enumerated one, then the
// playlist ID, then a fixed name
func collectionTitle(c *model.Collection, ref string) string {
	if title := strings.TrimSpace(c.Title); title != "" {
		return title
	}
	id := c.ID
	if id == "" {
		id, _ = platform.ExtractPlaylistID(ref)
	}
	if id != "" {
		return PlaylistTitlePrefix + id
	}
	return DefaultCollectionName
}

// directoryName sanitizes a title for use as a single path element
func directoryName(title string) string {
	name := strings.TrimSpace(platform.SanitizeFileName(title))
	if strings.Trim(name, ".") == "" {
		return DefaultCollectionName
	}
	return name
}

// newRunID returns a time-ordered identifier for a batch run
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
