package model

import "fmt"

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// CollectionItem is one entry discovered while enumerating a collection
type CollectionItem struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Reference returns the item's direct reference, or one synthesized from its ID
func (c CollectionItem) Reference() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(YouTubeVideoURLTemplate, c.ID)
}

// DisplayTitle returns the title, falling back to the ID
func (c CollectionItem) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return c.ID
}

// Collection is the enumerated description of a playlist
type Collection struct {
	ID    string           `json:"id"`
	Title string           `json:"title"`
	Items []CollectionItem `json:"entries"`
}

// Len returns the number of entries
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}

// IsEmpty returns true if the collection has no entries
func (c *Collection) IsEmpty() bool {
	return c.Len() == 0
}
