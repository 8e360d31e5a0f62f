package model

import (
	"math"
	"strings"
	"time"
)

// publishedLayouts are tried in order. The sheet pipeline writes RFC 3339
// timestamps; the rest cover hand-edited rows and spreadsheet exports.
var publishedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseTime parses a published timestamp. It returns the zero time when no
// known layout matches. Values without a zone are read as UTC.
func ParseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ParseCount reads a counter the way a lenient integer parse would: optional
// leading whitespace and sign, then the longest run of digits. Anything else
// (empty, "N/A", "Hidden") yields 0. Values past int64 saturate.
func ParseCount(s string) int64 {
	n, _ := LookupCount(s)
	return n
}

// LookupCount is ParseCount that also reports whether any digits were found.
func LookupCount(s string) (int64, bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	if s == "" {
		return 0, false
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	var n int64
	digits := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		digits++
		d := int64(c - '0')
		if n > (math.MaxInt64-d)/10 {
			n = math.MaxInt64
			continue
		}
		n = n*10 + d
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		return -n, true
	}
	return n, true
}
