package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/abelbrown/courtside/internal/trending"
	"github.com/mattn/go-runewidth"
)

const separator = " • "

// TrendingHeader titles the trending section.
const TrendingHeader = "Trending in Last 36 Hours"

// TerminalFormatter formats cards for plain terminal output.
type TerminalFormatter struct {
	Width int            // title width in cells; 0 means no truncation
	Loc   *time.Location // nil means local time
}

// NewTerminalFormatter creates a formatter that truncates titles to width.
func NewTerminalFormatter(width int) *TerminalFormatter {
	return &TerminalFormatter{Width: width}
}

// FormatCard formats a single card.
func (f *TerminalFormatter) FormatCard(c Card) string {
	r := c.Record
	var lines []string

	header := f.Truncate(r.Title)
	if badges := c.Badges(); len(badges) > 0 {
		header = "[" + strings.Join(badges, "] [") + "] " + header
	}
	lines = append(lines, header)

	meta := []string{r.ChannelName, FormatDate(r, f.Loc)}
	if r.Duration != "" {
		meta = append(meta, r.Duration)
	}
	lines = append(lines, "  "+strings.Join(meta, separator))
	lines = append(lines, "  "+strings.Join(c.Stats(), separator))

	if len(c.Topics) > 0 {
		lines = append(lines, "  "+c.TopicTags())
	}
	if len(c.People) > 0 {
		lines = append(lines, "  Players: "+c.PeopleLine())
	}
	if len(c.Teams) > 0 {
		lines = append(lines, "  Teams: "+strings.Join(c.Teams, ", "))
	}
	lines = append(lines, "  "+r.WatchURL())

	return strings.Join(lines, "\n") + "\n"
}

// FormatFeed formats cards separated by blank lines. empty is printed when
// there are no cards.
func (f *TerminalFormatter) FormatFeed(cards []Card, empty string) string {
	if len(cards) == 0 {
		return empty + "\n"
	}

	formatted := make([]string, len(cards))
	for i, c := range cards {
		formatted[i] = f.FormatCard(c)
	}
	return strings.Join(formatted, "\n")
}

// FormatTrending formats the trending summary. An empty summary formats as
// the empty string: the section is not shown at all.
func (f *TerminalFormatter) FormatTrending(s trending.Summary) string {
	if s.Empty() {
		return ""
	}

	var b strings.Builder
	b.WriteString(TrendingHeader + "\n")
	section := func(title, prefix string, entries []trending.Entry) {
		if len(entries) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s\n", title)
		for _, e := range entries {
			fmt.Fprintf(&b, "  %-24s %d\n", prefix+e.Name, e.Count)
		}
	}
	section("Most Mentioned Players", "", s.People)
	section("Most Discussed Teams", "", s.Organizations)
	section("Hot Topics", "#", s.Topics)
	return b.String()
}

// Truncate shortens text to the formatter width by display cells.
func (f *TerminalFormatter) Truncate(text string) string {
	if f.Width <= 0 {
		return text
	}
	return runewidth.Truncate(text, f.Width, "...")
}
