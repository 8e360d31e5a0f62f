package model

import (
	"testing"
	"time"
)

func TestFromRowRenamesAndDefaults(t *testing.T) {
	row := map[string]string{
		ColVideoID:     "abc123",
		ColTitle:       "LeBron talks trade rumors",
		ColChannelName: "Lakers Nation",
		ColPublished:   "2025-11-19T10:00:00Z",
	}

	r, ok := FromRow(row)
	if !ok {
		t.Fatal("row with an ID should be kept")
	}
	if r.ID != "abc123" || r.ChannelName != "Lakers Nation" {
		t.Errorf("fields not renamed: %+v", r)
	}
	if r.Description != "" {
		t.Errorf("description should default to empty, got %q", r.Description)
	}
	if r.ViewCount != "0" || r.LikeCount != "0" || r.CommentCount != "0" {
		t.Errorf("counters should default to \"0\", got %q/%q/%q", r.ViewCount, r.LikeCount, r.CommentCount)
	}
	want := time.Date(2025, 11, 19, 10, 0, 0, 0, time.UTC)
	if !r.Published.Equal(want) {
		t.Errorf("Published = %v, want %v", r.Published, want)
	}
}

func TestFromRowsDropsMissingIDs(t *testing.T) {
	rows := []map[string]string{
		{ColVideoID: "a", ColTitle: "first"},
		{ColVideoID: "", ColTitle: "no id"},
		{ColTitle: "absent id"},
		{ColVideoID: "  ", ColTitle: "blank id"},
		{ColVideoID: "b", ColTitle: "second"},
	}

	records := FromRows(rows)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "a" || records[1].ID != "b" {
		t.Errorf("order not preserved: %s, %s", records[0].ID, records[1].ID)
	}
}

func TestFromRowsEmpty(t *testing.T) {
	records := FromRows(nil)
	if records == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"60000", 60000},
		{"  42", 42},
		{"12abc", 12},
		{"60,000", 60},
		{"+7", 7},
		{"-3", -3},
		{"", 0},
		{"N/A", 0},
		{"Hidden", 0},
		{"-", 0},
		{"99999999999999999999999", 9223372036854775807},
	}

	for _, tt := range tests {
		if got := ParseCount(tt.in); got != tt.want {
			t.Errorf("ParseCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-11-19T10:00:00Z", time.Date(2025, 11, 19, 10, 0, 0, 0, time.UTC)},
		{"2025-11-19T10:00:00-05:00", time.Date(2025, 11, 19, 15, 0, 0, 0, time.UTC)},
		{"2025-11-19 10:00:00", time.Date(2025, 11, 19, 10, 0, 0, 0, time.UTC)},
		{"2025-11-19", time.Date(2025, 11, 19, 0, 0, 0, 0, time.UTC)},
		{"11/19/2025 10:00:00", time.Date(2025, 11, 19, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		if got := ParseTime(tt.in); !got.Equal(tt.want) {
			t.Errorf("ParseTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "yesterday", "not a date", "2025-13-45"} {
		if got := ParseTime(bad); !got.IsZero() {
			t.Errorf("ParseTime(%q) = %v, want zero", bad, got)
		}
	}
}

func TestChannelsFirstSeenOrder(t *testing.T) {
	records := []Record{
		{ID: "1", ChannelName: "Warriors Talk"},
		{ID: "2", ChannelName: "Lakers Nation"},
		{ID: "3", ChannelName: "Warriors Talk"},
		{ID: "4", ChannelName: ""},
	}

	got := Channels(records)
	if len(got) != 2 || got[0] != "Warriors Talk" || got[1] != "Lakers Nation" {
		t.Errorf("Channels = %v", got)
	}
}

func TestRecordCounters(t *testing.T) {
	r := Record{ViewCount: "1500", LikeCount: "abc", CommentCount: ""}
	if r.Views() != 1500 || r.Likes() != 0 || r.Comments() != 0 {
		t.Errorf("counters = %d/%d/%d", r.Views(), r.Likes(), r.Comments())
	}
	if r.HasPublished() {
		t.Error("zero Published should report false")
	}
}
