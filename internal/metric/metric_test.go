package metric

import (
	"math"
	"testing"
	"time"

	"github.com/abelbrown/courtside/internal/model"
)

var now = time.Date(2025, 11, 19, 12, 0, 0, 0, time.UTC)

func TestRatesNonNegativeAndFinite(t *testing.T) {
	tests := []struct {
		name                string
		views, likes, cmts  string
		engagement, discuss float64
	}{
		{"normal", "10000", "500", "20", 50, 2},
		{"zero views", "0", "500", "20", 0, 0},
		{"unparseable views", "Hidden", "500", "20", 0, 0},
		{"empty counters", "", "", "", 0, 0},
		{"negative likes", "1000", "-5", "-1", 0, 0},
		{"negative views", "-10", "5", "1", 0, 0},
	}

	for _, tt := range tests {
		r := model.Record{ViewCount: tt.views, LikeCount: tt.likes, CommentCount: tt.cmts}
		e, d := EngagementRate(r), DiscussionRate(r)
		if e < 0 || d < 0 || math.IsInf(e, 0) || math.IsNaN(e) || math.IsInf(d, 0) || math.IsNaN(d) {
			t.Errorf("%s: rates must be finite and non-negative, got %v/%v", tt.name, e, d)
		}
		if e != tt.engagement {
			t.Errorf("%s: EngagementRate = %v, want %v", tt.name, e, tt.engagement)
		}
		if d != tt.discuss {
			t.Errorf("%s: DiscussionRate = %v, want %v", tt.name, d, tt.discuss)
		}
	}
}

func TestAgeHours(t *testing.T) {
	r := model.Record{Published: now.Add(-90 * time.Minute)}
	if got := AgeHours(r, now); got != 1.5 {
		t.Errorf("AgeHours = %v, want 1.5", got)
	}

	if got := AgeHours(model.Record{PublishedDate: "garbage"}, now); got != UnknownAgeHours {
		t.Errorf("unparseable date should age %v, got %v", UnknownAgeHours, got)
	}
}

func TestIsNewBoundary(t *testing.T) {
	tests := []struct {
		age  time.Duration
		want bool
	}{
		{time.Hour, true},
		{24*time.Hour - time.Second, true},
		{24 * time.Hour, false},
		{25 * time.Hour, false},
	}

	for _, tt := range tests {
		r := model.Record{Published: now.Add(-tt.age)}
		if got := IsNew(r, now); got != tt.want {
			t.Errorf("IsNew(age %v) = %v, want %v", tt.age, got, tt.want)
		}
	}

	if IsNew(model.Record{}, now) {
		t.Error("record without a date must not be new")
	}
}

func TestIsWithinWindow(t *testing.T) {
	if !IsRecent(model.Record{Published: now.Add(-36 * time.Hour)}, now) {
		t.Error("exactly 36h old should be inside the rolling window")
	}
	if IsRecent(model.Record{Published: now.Add(-37 * time.Hour)}, now) {
		t.Error("37h old should be outside the rolling window")
	}
	if IsRecent(model.Record{}, now) {
		t.Error("record without a date should be outside every window")
	}
	if !IsWithinWindow(model.Record{Published: now.Add(-2 * time.Hour)}, now, 3*time.Hour) {
		t.Error("custom window not honoured")
	}
}

func TestIsTrendingEligible(t *testing.T) {
	tests := []struct {
		views string
		want  bool
	}{
		{"60000", true},
		{"50001", true},
		{"50000", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsTrendingEligible(model.Record{ViewCount: tt.views}); got != tt.want {
			t.Errorf("IsTrendingEligible(%q) = %v, want %v", tt.views, got, tt.want)
		}
	}
}

func TestDurationSeconds(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1:24:30", 1*3600 + 24*60 + 30},
		{"24:30", 24*60 + 30},
		{"25:10:45", 25*60 + 10}, // first part > 23 reads as minutes
		{"23:10:45", 23*3600 + 10*60 + 45},
		{"45", 45},
		{"0:59", 59},
		{"", 0},
		{"abc", 0},
		{"1:xx", 0},
		{"1:2:3:4", 0},
	}

	for _, tt := range tests {
		if got := DurationSeconds(tt.in); got != tt.want {
			t.Errorf("DurationSeconds(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
