package platform

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ytget/yt-audio/internal/model"
	"github.com/ytget/ytdlp/v2"
)

// Timeout constants
const (
	DefaultParseTimeout = 60 * time.Second
)

// Playlist title constants
const (
	DefaultPlaylistName = "Unknown Playlist"
	MinPrefixLength     = 10
	PlaylistSuffix      = " Playlist"
)

// YTDLPParserService enumerates playlists natively, without the yt-dlp binary
type YTDLPParserService struct {
	timeout time.Duration
}

// NewYTDLPParserService creates a new parser service
func NewYTDLPParserService() *YTDLPParserService {
	return &YTDLPParserService{
		timeout: DefaultParseTimeout,
	}
}

// SetTimeout sets the timeout for parsing operations
func (y *YTDLPParserService) SetTimeout(timeout time.Duration) {
	y.timeout = timeout
}

// Enumerate lists the entries of the playlist named by ref
func (y *YTDLPParserService) Enumerate(ctx context.Context, ref string) (*model.Collection, error) {
	playlistID, err := ExtractPlaylistID(ref)
	if err != nil {
		return nil, fmt.Errorf("could not extract playlist ID from URL %s: %w", ref, err)
	}

	if y.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, y.timeout)
		defer cancel()
	}

	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	entries := make([]model.CollectionItem, 0, len(items))
	for _, it := range items {
		if it.VideoID == "" {
			continue
		}
		entries = append(entries, model.CollectionItem{
			ID:    it.VideoID,
			Title: it.Title,
			URL:   fmt.Sprintf(model.YouTubeVideoURLTemplate, it.VideoID),
		})
	}

	return &model.Collection{
		ID:    playlistID,
		Title: y.extractPlaylistTitle(entries),
		Items: entries,
	}, nil
}

// extractPlaylistTitle derives a title from entry titles, since the native
// listing carries no playlist name
func (y *YTDLPParserService) extractPlaylistTitle(items []model.CollectionItem) string {
	if len(items) == 0 {
		return DefaultPlaylistName
	}
	if len(items) > 1 {
		commonPrefix := y.findCommonPrefix(items[0].Title, items[1].Title)
		if len(commonPrefix) > MinPrefixLength {
			return strings.TrimSpace(commonPrefix) + PlaylistSuffix
		}
	}
	return items[0].DisplayTitle() + PlaylistSuffix
}

// findCommonPrefix finds the common prefix between two strings, ending on a
// rune boundary
func (y *YTDLPParserService) findCommonPrefix(s1, s2 string) string {
	minLen := min(len(s1), len(s2))
	i := 0
	for i < minLen && s1[i] == s2[i] {
		i++
	}
	for i > 0 && i < len(s1) && !utf8.RuneStart(s1[i]) {
		i--
	}
	return s1[:i]
}
