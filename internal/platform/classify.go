package platform

import (
	"fmt"
	"strings"

	"github.com/ytget/yt-audio/internal/model"
)

// URL parameters and separators
const (
	PlaylistURLParam       = "list="
	PlaylistParamSeparator = "&"
	QueryStart             = "?"
	VideoURLParam          = "v="
)

// Recognized single-item shapes
const (
	WatchPathMarker  = "youtube.com/watch?"
	ShortURLMarker   = "youtu.be/"
	ShortsPathMarker = "youtube.com/shorts/"
	EmbedPathMarker  = "youtube.com/embed/"
)

// Recognized collection shapes
const (
	PlaylistPathMarker = "youtube.com/playlist"
)

// singleItemMarkers are path prefixes followed directly by the video ID
var singleItemMarkers = []string{ShortURLMarker, ShortsPathMarker, EmbedPathMarker}

// Classify decides whether ref names one item, a collection, or nothing usable.
// Collection markers are checked first, so a watch URL that also carries a
// list parameter is a collection.
func Classify(ref string) model.ReferenceKind {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.ReferenceInvalid
	}

	if isCollectionReference(ref) {
		return model.ReferenceCollection
	}

	if isSingleItemReference(ref) {
		return model.ReferenceSingle
	}

	return model.ReferenceInvalid
}

// isCollectionReference checks for a non-empty list parameter or a playlist path
func isCollectionReference(ref string) bool {
	if strings.Contains(strings.ToLower(ref), PlaylistPathMarker) {
		return true
	}
	id, err := ExtractPlaylistID(ref)
	return err == nil && id != ""
}

// isSingleItemReference checks the known single-item URL shapes
func isSingleItemReference(ref string) bool {
	id, err := ExtractVideoID(ref)
	return err == nil && id != ""
}

// ExtractPlaylistID extracts the playlist ID from a collection reference.
// Supported formats:
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&start_radio=1
//   - https://www.youtube.com/playlist?list=PLAYLIST_ID
func ExtractPlaylistID(ref string) (string, error) {
	value, ok := queryValue(ref, PlaylistURLParam)
	if !ok {
		return "", fmt.Errorf("URL does not contain playlist parameter")
	}
	if value == "" {
		return "", fmt.Errorf("empty playlist ID")
	}
	return value, nil
}

// ExtractVideoID extracts the video ID from any recognized single-item shape
func ExtractVideoID(ref string) (string, error) {
	lower := strings.ToLower(ref)

	if idx := strings.Index(lower, WatchPathMarker); idx >= 0 {
		value, ok := queryValue(ref[idx:], VideoURLParam)
		if ok && value != "" {
			return value, nil
		}
		return "", fmt.Errorf("watch URL has no video ID: %s", ref)
	}

	for _, marker := range singleItemMarkers {
		idx := strings.Index(lower, marker)
		if idx < 0 {
			continue
		}
		rest := ref[idx+len(marker):]
		if cut := strings.IndexAny(rest, "?&#/"); cut >= 0 {
			rest = rest[:cut]
		}
		if rest == "" {
			return "", fmt.Errorf("URL has no video ID: %s", ref)
		}
		return rest, nil
	}

	return "", fmt.Errorf("unrecognized video URL: %s", ref)
}

// queryValue finds param (including "=") as a query parameter and returns its value
func queryValue(ref, param string) (string, bool) {
	queryAt := strings.Index(ref, QueryStart)
	if queryAt < 0 {
		return "", false
	}
	query := ref[queryAt+1:]
	if cut := strings.Index(query, "#"); cut >= 0 {
		query = query[:cut]
	}
	for _, pair := range strings.Split(query, PlaylistParamSeparator) {
		if strings.HasPrefix(pair, param) {
			return strings.TrimPrefix(pair, param), true
		}
	}
	return "", false
}
