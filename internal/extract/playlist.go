package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ytget/yt-audio/internal/model"
)

// flatPlaylist is the document printed by --flat-playlist --dump-single-json
type flatPlaylist struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Entries []flatEntry `json:"entries"`
}

type flatEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// parseFlatPlaylist converts yt-dlp JSON into a Collection, skipping entries
// that carry neither an ID nor a URL
func parseFlatPlaylist(data []byte) (*model.Collection, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("empty metadata output")
	}

	var doc flatPlaylist
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse playlist metadata: %w", err)
	}

	items := make([]model.CollectionItem, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		if e.ID == "" && e.URL == "" {
			continue
		}
		items = append(items, model.CollectionItem{
			ID:    e.ID,
			Title: strings.TrimSpace(e.Title),
			URL:   e.URL,
		})
	}

	return &model.Collection{
		ID:    doc.ID,
		Title: strings.TrimSpace(doc.Title),
		Items: items,
	}, nil
}
