// Package signal detects known entities in free text.
//
// Three kinds are recognised: people (aliases resolved to a canonical name,
// matched on whole words), organizations and topics (case-insensitive
// substring containment). Everything here is a pure function of its input.
package signal

import (
	"regexp"
	"sort"
	"strings"
)

// MaxTopics caps how many topics a single text yields.
const MaxTopics = 5

// Extractor is what the query and trending layers need from entity
// detection. Swap the dictionary behind it without touching either.
type Extractor interface {
	// People returns canonical names with their whole-word occurrence
	// counts, in the order the dictionary first matched them.
	People(text string) []Mention
	// Organizations returns each matching organization once, in
	// dictionary order.
	Organizations(text string) []string
	// Topics returns up to MaxTopics matching topics in dictionary order.
	Topics(text string) []string
}

// Mention is a canonical entity and how often its aliases occurred.
type Mention struct {
	Name  string
	Count int
}

// Alias maps one surface form to its canonical entity name.
type Alias struct {
	Alias     string
	Canonical string
}

type compiledAlias struct {
	canonical string
	re        *regexp.Regexp
}

// Dictionary is an Extractor backed by static lists. Immutable after
// construction and safe for concurrent use.
type Dictionary struct {
	people []compiledAlias
	orgs   []string
	topics []string
}

// NewDictionary compiles the alias patterns. Aliases are matched
// literally; regex metacharacters in them are escaped.
func NewDictionary(aliases []Alias, orgs, topics []string) *Dictionary {
	d := &Dictionary{
		people: make([]compiledAlias, 0, len(aliases)),
		orgs:   append([]string(nil), orgs...),
		topics: append([]string(nil), topics...),
	}
	for _, a := range aliases {
		if a.Alias == "" {
			continue
		}
		d.people = append(d.people, compiledAlias{
			canonical: a.Canonical,
			re:        regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(a.Alias) + `\b`),
		})
	}
	return d
}

// People implements Extractor.
func (d *Dictionary) People(text string) []Mention {
	if text == "" {
		return nil
	}

	var result []Mention
	index := make(map[string]int)
	for _, a := range d.people {
		n := len(a.re.FindAllStringIndex(text, -1))
		if n == 0 {
			continue
		}
		if i, ok := index[a.canonical]; ok {
			result[i].Count += n
			continue
		}
		index[a.canonical] = len(result)
		result = append(result, Mention{Name: a.canonical, Count: n})
	}
	return result
}

// Organizations implements Extractor.
func (d *Dictionary) Organizations(text string) []string {
	return containsAll(text, d.orgs, 0)
}

// Topics implements Extractor.
func (d *Dictionary) Topics(text string) []string {
	return containsAll(text, d.topics, MaxTopics)
}

// containsAll returns the terms contained in text (case-insensitive),
// deduplicated, in list order, capped at limit when limit > 0.
func containsAll(text string, terms []string, limit int) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var result []string
	for _, term := range terms {
		if seen[term] || !strings.Contains(lower, strings.ToLower(term)) {
			continue
		}
		seen[term] = true
		result = append(result, term)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result
}

// Names returns just the names from mentions, in order.
func Names(mentions []Mention) []string {
	names := make([]string, len(mentions))
	for i, m := range mentions {
		names[i] = m.Name
	}
	return names
}

// Top returns at most n mentions ordered by count descending. Equal counts
// keep their original order.
func Top(mentions []Mention, n int) []Mention {
	sorted := append([]Mention(nil), mentions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
