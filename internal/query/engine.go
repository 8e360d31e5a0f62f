package query

import (
	"sort"
	"strings"
	"time"

	"github.com/abelbrown/courtside/internal/logging"
	"github.com/abelbrown/courtside/internal/metric"
	"github.com/abelbrown/courtside/internal/model"
	"github.com/abelbrown/courtside/internal/signal"
)

// Run produces the working set for st. The input slice is never modified.
func Run(records []model.Record, st State, ex signal.Extractor, now time.Time) []model.Record {
	result := ByChannel(records, st.Channel)

	if st.Search != "" {
		result = BySearch(result, st.Search, ex)
		SortByDate(result)
		return result
	}

	result = ByFilter(result, st.Filter, now)
	return Order(result, st.Sort, now)
}

// ByChannel keeps records whose channel name equals channel exactly.
// An empty channel keeps everything.
func ByChannel(records []model.Record, channel string) []model.Record {
	if channel == "" {
		return append([]model.Record{}, records...)
	}
	result := make([]model.Record, 0, len(records))
	for _, r := range records {
		if r.ChannelName == channel {
			result = append(result, r)
		}
	}
	return result
}

// BySearch keeps records whose text or detected entities contain q,
// case-insensitively.
func BySearch(records []model.Record, q string, ex signal.Extractor) []model.Record {
	q = strings.ToLower(q)
	result := make([]model.Record, 0, len(records))
	for _, r := range records {
		if matches(r, q, ex) {
			result = append(result, r)
		}
	}
	return result
}

// matches checks each haystack separately, so a query never matches across
// the seam between text and a joined entity list.
func matches(r model.Record, q string, ex signal.Extractor) bool {
	full := r.SearchText()
	if strings.Contains(strings.ToLower(full), q) {
		return true
	}
	haystacks := []string{
		strings.Join(ex.Topics(full), " "),
		strings.Join(signal.Names(ex.People(full)), " "),
		strings.Join(ex.Organizations(full), " "),
	}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), q) {
			return true
		}
	}
	return false
}

// ByFilter applies f. FilterAll and unknown filters keep everything.
func ByFilter(records []model.Record, f Filter, now time.Time) []model.Record {
	var keep func(model.Record) bool
	switch f {
	case FilterAll:
		return records
	case FilterTrending:
		keep = func(r model.Record) bool {
			return metric.IsTrendingEligible(r) && metric.IsRecent(r, now)
		}
	case FilterNew:
		keep = func(r model.Record) bool {
			return metric.IsNew(r, now)
		}
	default:
		logging.Warn("Unknown filter ignored", "filter", int(f))
		return records
	}

	result := make([]model.Record, 0, len(records))
	for _, r := range records {
		if keep(r) {
			result = append(result, r)
		}
	}
	return result
}

// sortKeys maps each numeric sort to the metric it orders by, descending.
var sortKeys = map[Sort]func(model.Record) float64{
	SortViews:     func(r model.Record) float64 { return float64(r.Views()) },
	SortRated:     metric.EngagementRate,
	SortDiscussed: metric.DiscussionRate,
	SortLikes:     func(r model.Record) float64 { return float64(r.Likes()) },
	SortComments:  func(r model.Record) float64 { return float64(r.Comments()) },
	SortDuration:  func(r model.Record) float64 { return float64(metric.DurationSeconds(r.Duration)) },
}

// Order sorts records by s. Every sort except SortDate first drops records
// outside the rolling window. Equal keys keep their input order.
func Order(records []model.Record, s Sort, now time.Time) []model.Record {
	if s == SortDate {
		SortByDate(records)
		return records
	}

	key, numeric := sortKeys[s]
	if !numeric && s != SortChannel {
		logging.Warn("Unknown sort ignored", "sort", int(s))
		return records
	}

	result := make([]model.Record, 0, len(records))
	for _, r := range records {
		if metric.IsRecent(r, now) {
			result = append(result, r)
		}
	}

	if s == SortChannel {
		sort.SliceStable(result, func(i, j int) bool {
			return strings.ToLower(result[i].ChannelName) < strings.ToLower(result[j].ChannelName)
		})
		return result
	}

	sort.SliceStable(result, func(i, j int) bool {
		return key(result[i]) > key(result[j])
	})
	return result
}

// SortByDate orders records newest first in place. Records without a
// usable date sort last.
func SortByDate(records []model.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Published.After(records[j].Published)
	})
}
