package trending

import (
	"fmt"
	"testing"
	"time"

	"github.com/abelbrown/courtside/internal/model"
	"github.com/abelbrown/courtside/internal/signal"
)

var now = time.Date(2025, 11, 19, 12, 0, 0, 0, time.UTC)

func rec(id, title string, age time.Duration) model.Record {
	return model.Record{ID: id, Title: title, Published: now.Add(-age)}
}

func TestAggregateCountsOncePerRecord(t *testing.T) {
	records := []model.Record{
		rec("1", "LeBron LeBron LeBron James", time.Hour),
		rec("2", "Kobe and LeBron", 2*time.Hour),
	}

	s := Aggregate(records, signal.DefaultDictionary(), now, 36*time.Hour)

	if len(s.People) != 2 {
		t.Fatalf("expected 2 people, got %v", s.People)
	}
	if s.People[0] != (Entry{"LeBron James", 2}) {
		t.Errorf("LeBron should count once per record, got %v", s.People[0])
	}
	if s.People[1] != (Entry{"Kobe Bryant", 1}) {
		t.Errorf("second entry = %v", s.People[1])
	}
}

func TestAggregateWindow(t *testing.T) {
	records := []model.Record{
		rec("in", "Lakers win", 36*time.Hour),
		rec("out", "Celtics win", 36*time.Hour+time.Minute),
		{ID: "undated", Title: "Heat win", PublishedDate: "whenever"},
	}

	s := Aggregate(records, signal.DefaultDictionary(), now, 36*time.Hour)

	if len(s.Organizations) != 1 || s.Organizations[0].Name != "Lakers" {
		t.Errorf("only the in-window record should count, got %v", s.Organizations)
	}
}

func TestAggregateTieBreakFirstSeen(t *testing.T) {
	records := []model.Record{
		rec("1", "Knicks", time.Hour),
		rec("2", "Lakers", time.Hour),
		rec("3", "Heat", time.Hour),
		rec("4", "Lakers", time.Hour),
		rec("5", "Heat", time.Hour),
	}

	s := Aggregate(records, signal.DefaultDictionary(), now, 36*time.Hour)

	want := []Entry{{"Lakers", 2}, {"Heat", 2}, {"Knicks", 1}}
	if fmt.Sprint(s.Organizations) != fmt.Sprint(want) {
		t.Errorf("Organizations = %v, want %v", s.Organizations, want)
	}
}

func TestAggregateCapsAndSorts(t *testing.T) {
	teams := []string{"Lakers", "Warriors", "Celtics", "Bucks", "Nuggets", "Suns", "Knicks"}
	var records []model.Record
	for i, team := range teams {
		// Later teams get more mentions.
		for j := 0; j <= i; j++ {
			records = append(records, rec(fmt.Sprintf("%d-%d", i, j), team, time.Hour))
		}
	}

	s := Aggregate(records, signal.DefaultDictionary(), now, 36*time.Hour)

	if len(s.Organizations) != MaxEntries {
		t.Fatalf("expected %d entries, got %d", MaxEntries, len(s.Organizations))
	}
	for i := 1; i < len(s.Organizations); i++ {
		if s.Organizations[i].Count > s.Organizations[i-1].Count {
			t.Errorf("not descending at %d: %v", i, s.Organizations)
		}
	}
	if s.Organizations[0].Name != "Knicks" || s.Organizations[0].Count != 7 {
		t.Errorf("top entry = %v", s.Organizations[0])
	}
}

func TestAggregateUsesDescription(t *testing.T) {
	r := rec("1", "Episode 12", time.Hour)
	r.Description = "We cover the trade deadline"

	s := Aggregate([]model.Record{r}, signal.DefaultDictionary(), now, 36*time.Hour)

	if len(s.Topics) != 1 || s.Topics[0].Name != "Trade Deadline" {
		t.Errorf("Topics = %v", s.Topics)
	}
}

func TestSummaryEmpty(t *testing.T) {
	s := Aggregate(nil, signal.DefaultDictionary(), now, 36*time.Hour)
	if !s.Empty() {
		t.Errorf("no records should give an empty summary, got %+v", s)
	}

	s = Aggregate([]model.Record{rec("1", "Lakers", time.Hour)}, signal.DefaultDictionary(), now, 36*time.Hour)
	if s.Empty() {
		t.Error("summary with an organization is not empty")
	}
}
