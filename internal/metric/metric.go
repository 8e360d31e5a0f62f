// Package metric derives per-record scalars from raw counters and dates.
//
// All functions are lenient: unparseable counters count as 0 and an
// unparseable published date makes a record UnknownAgeHours old, which keeps
// it out of every recency window.
package metric

import (
	"strconv"
	"strings"
	"time"

	"github.com/abelbrown/courtside/internal/model"
)

const (
	// UnknownAgeHours is the age reported for records without a usable date.
	UnknownAgeHours = 999.0

	// NewWindow is the age under which a record counts as new.
	NewWindow = 24 * time.Hour

	// RollingWindow scopes trending aggregation and non-date sorts.
	RollingWindow = 36 * time.Hour

	// TrendingViews is the view count a record must exceed to trend.
	TrendingViews = 50000
)

// EngagementRate is likes per thousand views. Zero when views are zero or
// unparseable.
func EngagementRate(r model.Record) float64 {
	return perThousand(r.Likes(), r.Views())
}

// DiscussionRate is comments per thousand views. Zero when views are zero or
// unparseable.
func DiscussionRate(r model.Record) float64 {
	return perThousand(r.Comments(), r.Views())
}

func perThousand(n, views int64) float64 {
	if views <= 0 || n <= 0 {
		return 0
	}
	return float64(n) / float64(views) * 1000
}

// AgeHours returns the hours between the record's publish time and now.
func AgeHours(r model.Record, now time.Time) float64 {
	if !r.HasPublished() {
		return UnknownAgeHours
	}
	return now.Sub(r.Published).Hours()
}

// IsNew reports whether the record is strictly younger than 24 hours.
func IsNew(r model.Record, now time.Time) bool {
	return AgeHours(r, now) < NewWindow.Hours()
}

// IsTrendingEligible reports whether views exceed TrendingViews.
func IsTrendingEligible(r model.Record) bool {
	return r.Views() > TrendingViews
}

// IsWithinWindow reports whether the record is at most window old.
func IsWithinWindow(r model.Record, now time.Time, window time.Duration) bool {
	return AgeHours(r, now) <= window.Hours()
}

// IsRecent is IsWithinWindow over RollingWindow.
func IsRecent(r model.Record, now time.Time) bool {
	return IsWithinWindow(r, now, RollingWindow)
}

// DurationSeconds parses "H:MM:SS", "MM:SS" or bare seconds. Empty or
// malformed input yields 0.
//
// A three-part value whose first part exceeds 23 is read as minutes and
// seconds (first*60 + second) and the third part is dropped. Some rows
// carry long episodes in that shape.
func DurationSeconds(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	raw := strings.Split(s, ":")
	parts := make([]int, len(raw))
	for i, p := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0
		}
		parts[i] = n
	}

	switch len(parts) {
	case 3:
		if parts[0] > 23 {
			return parts[0]*60 + parts[1]
		}
		return parts[0]*3600 + parts[1]*60 + parts[2]
	case 2:
		return parts[0]*60 + parts[1]
	case 1:
		return parts[0]
	}
	return 0
}
