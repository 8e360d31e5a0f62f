// Package viewstate encodes the current view as a short fragment token
// ("#player-lebron-james") and decodes it back.
//
// Decoding is lossy: slugs are lowercase and stripped of punctuation, so the
// readable value recovered from a token is the slug with hyphens turned back
// into spaces.
package viewstate

import (
	"regexp"
	"strings"
)

// Kind names the single piece of state a token carries.
type Kind string

const (
	KindNone    Kind = ""
	KindPlayer  Kind = "player"
	KindTopic   Kind = "topic"
	KindChannel Kind = "channel"
	KindSort    Kind = "sort"
	KindSearch  Kind = "search"
	KindFilter  Kind = "filter"
)

// Kinds lists the token kinds in the order they are tried when decoding.
var Kinds = []Kind{KindPlayer, KindTopic, KindChannel, KindSort, KindSearch, KindFilter}

// Token is one decoded fragment. Value holds the slug.
type Token struct {
	Kind  Kind
	Value string
}

// IsZero reports whether t encodes the default state.
func (t Token) IsZero() bool { return t.Kind == KindNone }

// Readable returns the slug with hyphens replaced by spaces.
func (t Token) Readable() string {
	return strings.ReplaceAll(t.Value, "-", " ")
}

var (
	slugStrip  = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces = regexp.MustCompile(`\s+`)
	slugDashes = regexp.MustCompile(`-+`)
)

// Slug lowercases s, strips everything except letters, digits, whitespace
// and hyphens, and joins words with single hyphens.
func Slug(s string) string {
	s = strings.ToLower(s)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(strings.TrimSpace(s), "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// New builds a token of kind k from a display value.
func New(k Kind, value string) Token {
	return Token{Kind: k, Value: Slug(value)}
}

// Encode renders t as a fragment including the leading '#'. The zero token
// and tokens whose slug is empty encode as "".
func Encode(t Token) string {
	if t.IsZero() || t.Value == "" {
		return ""
	}
	return "#" + string(t.Kind) + "-" + t.Value
}

// Decode parses a fragment, with or without its leading '#'. An empty
// fragment decodes to the zero token. ok is false for fragments that do not
// start with a known kind.
func Decode(fragment string) (t Token, ok bool) {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return Token{}, true
	}
	for _, k := range Kinds {
		prefix := string(k) + "-"
		if strings.HasPrefix(fragment, prefix) {
			value := strings.TrimPrefix(fragment, prefix)
			if value == "" {
				return Token{}, false
			}
			return Token{Kind: k, Value: value}, true
		}
	}
	return Token{}, false
}

// MatchSlug returns the first candidate whose slug equals slug.
func MatchSlug(slug string, candidates []string) (string, bool) {
	for _, c := range candidates {
		if Slug(c) == slug {
			return c, true
		}
	}
	return "", false
}
