// Package display derives what a feed card shows and formats it as text.
package display

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/abelbrown/courtside/internal/metric"
	"github.com/abelbrown/courtside/internal/model"
	"github.com/abelbrown/courtside/internal/signal"
)

// Card limits.
const (
	CardPeople = 3
	CardTeams  = 3
)

// Card is one record plus everything derived for display.
type Card struct {
	Record   model.Record
	New      bool
	Trending bool
	People   []signal.Mention // most mentioned first
	Teams    []string
	Topics   []string
}

// BuildCard runs the extractor over the record's title and description.
func BuildCard(r model.Record, ex signal.Extractor, now time.Time) Card {
	text := r.Text()
	teams := ex.Organizations(text)
	if len(teams) > CardTeams {
		teams = teams[:CardTeams]
	}
	return Card{
		Record:   r,
		New:      metric.IsNew(r, now),
		Trending: metric.IsTrendingEligible(r),
		People:   signal.Top(ex.People(text), CardPeople),
		Teams:    teams,
		Topics:   ex.Topics(text),
	}
}

// BuildCards builds a card per record.
func BuildCards(records []model.Record, ex signal.Extractor, now time.Time) []Card {
	cards := make([]Card, len(records))
	for i, r := range records {
		cards[i] = BuildCard(r, ex, now)
	}
	return cards
}

// Stats returns the counter strings to show: views always, likes and
// comments only when present and non-zero.
func (c Card) Stats() []string {
	r := c.Record
	stats := []string{FormatNumber(r.ViewCount) + " views"}
	if r.LikeCount != "" && r.LikeCount != "0" {
		stats = append(stats, FormatNumber(r.LikeCount)+" likes")
	}
	if r.CommentCount != "" && r.CommentCount != "0" {
		stats = append(stats, FormatNumber(r.CommentCount)+" comments")
	}
	return stats
}

// Badges returns the badge labels for the card.
func (c Card) Badges() []string {
	var badges []string
	if c.New {
		badges = append(badges, "NEW")
	}
	if c.Trending {
		badges = append(badges, "TRENDING")
	}
	return badges
}

// PeopleLine renders mentions as "Name (n), Name (n)".
func (c Card) PeopleLine() string {
	parts := make([]string, len(c.People))
	for i, m := range c.People {
		parts[i] = fmt.Sprintf("%s (%d)", m.Name, m.Count)
	}
	return strings.Join(parts, ", ")
}

// TopicTags renders topics as hashtags.
func (c Card) TopicTags() string {
	tags := make([]string, len(c.Topics))
	for i, t := range c.Topics {
		tags[i] = "#" + t
	}
	return strings.Join(tags, " ")
}

// FormatNumber compacts a raw counter: 1.2M, 45.3K, or the plain number
// with thousands separators. Values without digits are returned unchanged.
func FormatNumber(raw string) string {
	n, ok := model.LookupCount(raw)
	if !ok {
		return raw
	}
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 1, 64) + "K"
	}
	return groupThousands(n)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// DateLayout is the card's published-date format.
const DateLayout = "Jan 2, 2006, 3:04 PM"

// FormatDate renders the record's publish time in loc, or "Unknown" when
// the date did not parse.
func FormatDate(r model.Record, loc *time.Location) string {
	if !r.HasPublished() {
		return "Unknown"
	}
	if loc == nil {
		loc = time.Local
	}
	return r.Published.In(loc).Format(DateLayout)
}
