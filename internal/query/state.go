// Package query turns the full record set and the session's query state into
// the ordered working set the feed displays.
//
// Search is terminal: when search text is set, the filter and sort are not
// applied and results are ordered newest first.
package query

// Filter is the active feed filter.
type Filter int

const (
	FilterAll Filter = iota
	FilterTrending
	FilterNew
)

var filterNames = map[Filter]string{
	FilterAll:      "all",
	FilterTrending: "trending",
	FilterNew:      "new",
}

var filterLabels = map[Filter]string{
	FilterAll:      "All Episodes",
	FilterTrending: "Trending",
	FilterNew:      "New Today",
}

// Filters lists every filter in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterTrending, FilterNew}
}

func (f Filter) String() string {
	if name, ok := filterNames[f]; ok {
		return name
	}
	return "unknown"
}

// Label is the human-facing toggle text.
func (f Filter) Label() string { return filterLabels[f] }

// ParseFilter resolves a filter from its name.
func ParseFilter(name string) (Filter, bool) {
	for f, n := range filterNames {
		if n == name {
			return f, true
		}
	}
	return FilterAll, false
}

// Sort is the active ordering.
type Sort int

const (
	SortDate Sort = iota
	SortViews
	SortRated
	SortDiscussed
	SortLikes
	SortComments
	SortDuration
	SortChannel
)

var sortNames = map[Sort]string{
	SortDate:      "date",
	SortViews:     "views",
	SortRated:     "rated",
	SortDiscussed: "discussed",
	SortLikes:     "likes",
	SortComments:  "comments",
	SortDuration:  "duration",
	SortChannel:   "channel",
}

var sortLabels = map[Sort]string{
	SortDate:      "Latest",
	SortViews:     "Most Viewed",
	SortRated:     "Best Rated",
	SortDiscussed: "Most Discussed",
	SortLikes:     "Most Liked",
	SortComments:  "Most Comments",
	SortDuration:  "Duration",
	SortChannel:   "Channel A-Z",
}

// sortAliases are older names still accepted from shared links.
var sortAliases = map[string]Sort{
	"hottest": SortRated,
}

// Sorts lists every sort in display order.
func Sorts() []Sort {
	return []Sort{SortDate, SortViews, SortRated, SortDiscussed, SortLikes, SortComments, SortDuration, SortChannel}
}

func (s Sort) String() string {
	if name, ok := sortNames[s]; ok {
		return name
	}
	return "unknown"
}

// Label is the human-facing toggle text.
func (s Sort) Label() string { return sortLabels[s] }

// ParseSort resolves a sort from its name or a legacy alias.
func ParseSort(name string) (Sort, bool) {
	for s, n := range sortNames {
		if n == name {
			return s, true
		}
	}
	if s, ok := sortAliases[name]; ok {
		return s, true
	}
	return SortDate, false
}

// State is the query part of the session state. The zero value is the
// default view: all records, newest first, no search, no channel pin.
type State struct {
	Filter  Filter
	Sort    Sort
	Search  string
	Channel string // exact channel name; empty when no pin
}

// IsDefault reports whether s selects the default view.
func (s State) IsDefault() bool {
	return s == State{}
}
