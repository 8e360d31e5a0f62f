package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/abelbrown/courtside/internal/display"
	"github.com/abelbrown/courtside/internal/trending"
	"github.com/abelbrown/courtside/internal/viewstate"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cardHeight is the number of lines one card takes, including the gap.
const cardHeight = 4

// RenderFeed renders the cards, scrolled so the cursor card is visible.
func RenderFeed(cards []display.Card, cursor, width, height int, loc *time.Location) string {
	if len(cards) == 0 {
		return ""
	}

	perScreen := max(1, height/cardHeight)
	offset := 0
	if cursor >= perScreen {
		offset = cursor - perScreen + 1
	}

	var b strings.Builder
	for i := offset; i < len(cards) && i < offset+perScreen; i++ {
		b.WriteString(renderCard(cards[i], i == cursor, width, loc))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCard(c display.Card, selected bool, width int, loc *time.Location) string {
	r := c.Record

	var badges strings.Builder
	if c.New {
		badges.WriteString(NewBadge.Render("NEW"))
	}
	if c.Trending {
		badges.WriteString(TrendingBadge.Render("TRENDING"))
	}

	titleWidth := width - lipgloss.Width(badges.String()) - 2
	title := fit(r.Title, titleWidth)
	if selected {
		title = SelectedTitle.Render(title)
	} else {
		title = CardTitle.Render(title)
	}

	meta := []string{r.ChannelName, display.FormatDate(r, loc)}
	if r.Duration != "" {
		meta = append(meta, r.Duration)
	}
	meta = append(meta, c.Stats()...)

	var tags []string
	if len(c.Topics) > 0 {
		tags = append(tags, c.TopicTags())
	}
	if len(c.People) > 0 {
		tags = append(tags, c.PeopleLine())
	}
	if len(c.Teams) > 0 {
		tags = append(tags, strings.Join(c.Teams, ", "))
	}

	lines := []string{
		badges.String() + title,
		CardMeta.Render(fit(strings.Join(meta, " • "), width-4)),
		CardTags.Render(fit(strings.Join(tags, "  "), width-4)),
	}
	return strings.Join(lines, "\n")
}

func fit(text string, width int) string {
	if width <= 0 {
		return text
	}
	return runewidth.Truncate(text, width, "...")
}

// panelEntry is one selectable row of the trending panel.
type panelEntry struct {
	Name  string
	Count int
	Kind  viewstate.Kind
}

// panelSection groups rows under a title.
type panelSection struct {
	Title   string
	Prefix  string
	Entries []panelEntry
}

// trendingSections lays out the summary. Organizations and topics are both
// searched through topic tokens.
func trendingSections(s trending.Summary) []panelSection {
	build := func(title, prefix string, entries []trending.Entry, kind viewstate.Kind) panelSection {
		sec := panelSection{Title: title, Prefix: prefix}
		for _, e := range entries {
			sec.Entries = append(sec.Entries, panelEntry{Name: e.Name, Count: e.Count, Kind: kind})
		}
		return sec
	}

	var out []panelSection
	for _, sec := range []panelSection{
		build("Most Mentioned Players", "", s.People, viewstate.KindPlayer),
		build("Most Discussed Teams", "", s.Organizations, viewstate.KindTopic),
		build("Hot Topics", "#", s.Topics, viewstate.KindTopic),
	} {
		if len(sec.Entries) > 0 {
			out = append(out, sec)
		}
	}
	return out
}

// panelRows flattens the sections into selection order.
func panelRows(s trending.Summary) []panelEntry {
	var rows []panelEntry
	for _, sec := range trendingSections(s) {
		rows = append(rows, sec.Entries...)
	}
	return rows
}

// RenderTrending renders the trending panel with the row at cursor selected.
// An empty summary renders nothing.
func RenderTrending(s trending.Summary, cursor, width int) string {
	if s.Empty() {
		return ""
	}

	var b strings.Builder
	b.WriteString(Header.Render(display.TrendingHeader))
	b.WriteString("\n")

	row := 0
	for _, sec := range trendingSections(s) {
		b.WriteString(PanelHeader.Render(sec.Title))
		b.WriteString("\n")
		for _, e := range sec.Entries {
			line := fit(fmt.Sprintf("%-28s %d", sec.Prefix+e.Name, e.Count), width-4)
			if row == cursor {
				b.WriteString(PanelSelected.Render(line))
			} else {
				b.WriteString(PanelEntry.Render(line))
			}
			b.WriteString("\n")
			row++
		}
	}
	return b.String()
}
