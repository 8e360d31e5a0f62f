package signal

import (
	"reflect"
	"testing"
)

func TestPeopleCountsWholeWords(t *testing.T) {
	d := DefaultDictionary()

	tests := []struct {
		input    string
		expected []Mention
	}{
		{"LeBron James and LeBron again", []Mention{{"LeBron James", 3}}},
		{"lebron is back", []Mention{{"LeBron James", 1}}},
		{"Steph Curry vs KD", []Mention{{"Stephen Curry", 1}, {"Kevin Durant", 1}}},
		{"KDs and ADvantage", nil},                  // no word boundary
		{"Wemby! Wembanyama.", []Mention{{"Victor Wembanyama", 2}}},
		{"Shaq and Shaquille O'Neal", []Mention{{"Shaquille O'Neal", 2}}},
		{"No players mentioned here", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := d.People(tt.input)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("People(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestPeopleEscapesMetacharacters(t *testing.T) {
	d := NewDictionary([]Alias{
		{"C.J. McCollum", "CJ McCollum"},
		{"A+B", "Plus"},
	}, nil, nil)

	if got := d.People("C.J. McCollum scores"); len(got) != 1 || got[0].Count != 1 {
		t.Errorf("literal alias with dots not matched: %v", got)
	}
	// An unescaped "." would match any character here.
	if got := d.People("CXJX McCollum scores"); got != nil {
		t.Errorf("dots should be literal, got %v", got)
	}
	if got := d.People("AAB"); got != nil {
		t.Errorf("plus should be literal, got %v", got)
	}
	if got := d.People("A+B"); len(got) != 1 {
		t.Errorf("literal A+B should match, got %v", got)
	}
}

func TestOrganizationsSubstringOnce(t *testing.T) {
	d := DefaultDictionary()

	got := d.Organizations("The Lakers beat the Celtics; lakers fans celebrate")
	want := []string{"Lakers", "Celtics"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Organizations = %v, want %v", got, want)
	}

	// Substring containment, not whole words.
	if got := d.Organizations("Heated debate"); !reflect.DeepEqual(got, []string{"Heat"}) {
		t.Errorf("substring match expected, got %v", got)
	}

	if got := d.Organizations(""); got != nil {
		t.Errorf("empty text should yield nothing, got %v", got)
	}
}

func TestOrganizationsDictionaryOrder(t *testing.T) {
	d := DefaultDictionary()

	got := d.Organizations("Kings, Knicks and Warriors")
	want := []string{"Warriors", "Knicks", "Kings"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Organizations = %v, want %v", got, want)
	}
}

func TestTopicsCappedAtFive(t *testing.T) {
	d := DefaultDictionary()

	text := "Trade Rumors, trade deadline, free agency, playoffs, play-in, NBA Finals, draft"
	got := d.Topics(text)
	want := []string{"Trade Rumors", "Trade Deadline", "Free Agency", "Playoffs", "Play-In"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Topics = %v, want %v", got, want)
	}
}

func TestTopicsOverlapping(t *testing.T) {
	d := DefaultDictionary()

	got := d.Topics("Draft Lottery night")
	want := []string{"Draft", "Draft Lottery"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Topics = %v, want %v", got, want)
	}
}

func TestTop(t *testing.T) {
	mentions := []Mention{{"A", 1}, {"B", 3}, {"C", 1}, {"D", 3}}

	got := Top(mentions, 3)
	want := []Mention{{"B", 3}, {"D", 3}, {"A", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Top = %v, want %v", got, want)
	}
	if mentions[0].Name != "A" {
		t.Error("Top must not reorder its input")
	}
}

func TestNames(t *testing.T) {
	got := Names([]Mention{{"LeBron James", 2}, {"Kobe Bryant", 1}})
	if !reflect.DeepEqual(got, []string{"LeBron James", "Kobe Bryant"}) {
		t.Errorf("Names = %v", got)
	}
}
