package model

import "strings"

// Dataset column headers, as published by the sheet.
const (
	ColVideoID      = "Video ID"
	ColTitle        = "Title"
	ColChannelName  = "Channel Name"
	ColChannelID    = "Channel ID"
	ColPublished    = "Published Date"
	ColThumbnailURL = "Thumbnail URL"
	ColDescription  = "Description"
	ColViewCount    = "View Count"
	ColDuration     = "Duration"
	ColLikeCount    = "Like Count"
	ColCommentCount = "Comment Count"
)

// Columns lists the dataset headers in sheet order.
var Columns = []string{
	ColVideoID, ColTitle, ColChannelName, ColChannelID, ColPublished,
	ColThumbnailURL, ColDescription, ColViewCount, ColDuration,
	ColLikeCount, ColCommentCount,
}

// FromRow converts one parsed dataset row into a Record, renaming columns
// and filling defaults. ok is false when the row has no video ID.
func FromRow(row map[string]string) (Record, bool) {
	id := strings.TrimSpace(row[ColVideoID])
	if id == "" {
		return Record{}, false
	}

	r := Record{
		ID:            id,
		Title:         row[ColTitle],
		ChannelName:   row[ColChannelName],
		ChannelID:     row[ColChannelID],
		PublishedDate: row[ColPublished],
		ThumbnailURL:  row[ColThumbnailURL],
		Description:   row[ColDescription],
		ViewCount:     orDefault(row[ColViewCount], "0"),
		LikeCount:     orDefault(row[ColLikeCount], "0"),
		CommentCount:  orDefault(row[ColCommentCount], "0"),
		Duration:      row[ColDuration],
	}
	r.Published = ParseTime(r.PublishedDate)
	return r, true
}

// FromRows converts rows, dropping those without an ID. Order is preserved.
func FromRows(rows []map[string]string) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		if r, ok := FromRow(row); ok {
			records = append(records, r)
		}
	}
	return records
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
