// Package model provides the record type shared by every courtside layer.
//
// A Record is one video/episode row from the dataset. Counter fields stay as
// the raw strings the sheet carries; numeric views of them go through the
// lenient parsers in this package, so malformed cells degrade to 0 instead of
// failing a load.
package model

import (
	"strings"
	"time"
)

// Record represents one ingested video.
type Record struct {
	ID            string
	Title         string
	ChannelName   string
	ChannelID     string
	PublishedDate string    // raw cell value
	Published     time.Time // zero when PublishedDate could not be parsed
	ThumbnailURL  string
	Description   string
	ViewCount     string
	LikeCount     string
	CommentCount  string
	Duration      string
}

// Views returns the parsed view counter (0 when unparseable).
func (r Record) Views() int64 { return ParseCount(r.ViewCount) }

// Likes returns the parsed like counter (0 when unparseable).
func (r Record) Likes() int64 { return ParseCount(r.LikeCount) }

// Comments returns the parsed comment counter (0 when unparseable).
func (r Record) Comments() int64 { return ParseCount(r.CommentCount) }

// HasPublished reports whether PublishedDate parsed to a real timestamp.
func (r Record) HasPublished() bool { return !r.Published.IsZero() }

// Text is the title and description joined by a space. Entity detection
// for trending and cards runs over this.
func (r Record) Text() string {
	return r.Title + " " + r.Description
}

// SearchText is the title, channel and description joined by spaces.
func (r Record) SearchText() string {
	return strings.Join([]string{r.Title, r.ChannelName, r.Description}, " ")
}

// WatchURL returns the YouTube watch link for the record.
func (r Record) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + r.ID
}

// Channels returns the distinct channel names in first-seen order.
func Channels(records []Record) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range records {
		if r.ChannelName == "" || seen[r.ChannelName] {
			continue
		}
		seen[r.ChannelName] = true
		names = append(names, r.ChannelName)
	}
	return names
}
