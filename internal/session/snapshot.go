package session

import (
	"github.com/abelbrown/courtside/internal/model"
	"github.com/abelbrown/courtside/internal/pager"
	"github.com/abelbrown/courtside/internal/query"
	"github.com/abelbrown/courtside/internal/trending"
)

// Empty-state messages shown in place of the feed.
const (
	MsgNoRecords = "No videos yet."
	MsgNoMatches = "No episodes found."
	msgLoadFail  = "Unable to load: "
)

// Snapshot is a consistent copy of what the render surface should show.
type Snapshot struct {
	Status   Status
	Err      string // load error text, set in StatusError
	State    query.State
	Fragment string // current address-bar fragment, "" for the default view

	Records  int // size of the loaded record set
	Total    int // size of the working set
	Visible  []model.Record
	HasMore  bool
	Loading  bool // a page advance is pending
	Trending trending.Summary
	Channels []string
}

// Message returns the empty-state or error text to show instead of cards,
// or "" when there are cards to show.
func (s Snapshot) Message() string {
	switch {
	case s.Status == StatusError:
		return msgLoadFail + s.Err
	case s.Status == StatusLoading:
		return ""
	case s.Records == 0:
		return MsgNoRecords
	case s.Total == 0:
		return MsgNoMatches
	}
	return ""
}

// Snapshot copies the current view.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	visible := pager.Slice(c.cursor, c.working)
	return Snapshot{
		Status:   c.status,
		Err:      c.loadErr,
		State:    c.state,
		Fragment: c.history.Current(),
		Records:  len(c.records),
		Total:    len(c.working),
		Visible:  append([]model.Record(nil), visible...),
		HasMore:  c.cursor.HasMore(len(c.working)),
		Loading:  c.advancing.Held(),
		Trending: c.summary,
		Channels: append([]string(nil), c.channels...),
	}
}

// State returns the current query state.
func (c *Controller) State() query.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Fragment returns the current address-bar fragment.
func (c *Controller) Fragment() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Current()
}

// Working returns a copy of the full working set.
func (c *Controller) Working() []model.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.Record(nil), c.working...)
}
