// Package trending tallies entity mentions across recent records.
package trending

import (
	"sort"
	"time"

	"github.com/abelbrown/courtside/internal/model"
	"github.com/abelbrown/courtside/internal/signal"
)

// MaxEntries caps each ranked list.
const MaxEntries = 5

// Entry is one ranked entity.
type Entry struct {
	Name  string
	Count int
}

// Summary holds the ranked lists. An empty Summary means there is nothing
// trending and the section should not be shown.
type Summary struct {
	People        []Entry
	Organizations []Entry
	Topics        []Entry
}

// Empty reports whether all three lists are empty.
func (s Summary) Empty() bool {
	return len(s.People) == 0 && len(s.Organizations) == 0 && len(s.Topics) == 0
}

// tally counts occurrences while remembering first-seen order.
type tally struct {
	order  []string
	counts map[string]int
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(name string) {
	if _, ok := t.counts[name]; !ok {
		t.order = append(t.order, name)
	}
	t.counts[name]++
}

// ranked returns the top entries by count, ties in first-seen order.
func (t *tally) ranked() []Entry {
	entries := make([]Entry, len(t.order))
	for i, name := range t.order {
		entries[i] = Entry{Name: name, Count: t.counts[name]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}

// Aggregate scans records published at or after now-window and ranks the
// entities they mention. Each record counts at most once per entity.
// Records without a parseable date are skipped.
func Aggregate(records []model.Record, ex signal.Extractor, now time.Time, window time.Duration) Summary {
	cutoff := now.Add(-window)
	people, orgs, topics := newTally(), newTally(), newTally()

	for _, r := range records {
		if !r.HasPublished() || r.Published.Before(cutoff) {
			continue
		}
		text := r.Text()
		for _, m := range ex.People(text) {
			people.add(m.Name)
		}
		for _, name := range ex.Organizations(text) {
			orgs.add(name)
		}
		for _, name := range ex.Topics(text) {
			topics.add(name)
		}
	}

	return Summary{
		People:        people.ranked(),
		Organizations: orgs.ranked(),
		Topics:        topics.ranked(),
	}
}
