// Package session owns the viewer's mutable state: the loaded record set,
// the query state, the pagination cursor and the fragment history.
//
// Every user action goes through a Controller method, which re-runs the
// query engine and writes the fragment. Delayed work (search debounce,
// scroll advance) is scheduled on the Controller's clock and handed back
// through its Dispatch, so the render surface decides which goroutine
// mutates state.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/abelbrown/courtside/internal/fetch"
	"github.com/abelbrown/courtside/internal/logging"
	"github.com/abelbrown/courtside/internal/metric"
	"github.com/abelbrown/courtside/internal/model"
	"github.com/abelbrown/courtside/internal/pager"
	"github.com/abelbrown/courtside/internal/query"
	"github.com/abelbrown/courtside/internal/sched"
	"github.com/abelbrown/courtside/internal/signal"
	"github.com/abelbrown/courtside/internal/trending"
	"github.com/abelbrown/courtside/internal/viewstate"
	"github.com/charmbracelet/log"
)

// Status is the load state of the record set.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Options configures a Controller. Zero values pick the defaults.
type Options struct {
	Clock          sched.Clock
	Dispatch       sched.Dispatch
	Extractor      signal.Extractor
	PageSize       int
	SearchDebounce time.Duration
	ScrollDebounce time.Duration
	TrendingWindow time.Duration
}

func (o *Options) setDefaults() {
	if o.Clock == nil {
		o.Clock = sched.RealClock{}
	}
	if o.Dispatch == nil {
		o.Dispatch = sched.Inline
	}
	if o.Extractor == nil {
		o.Extractor = signal.DefaultDictionary()
	}
	if o.PageSize <= 0 {
		o.PageSize = pager.DefaultPageSize
	}
	if o.SearchDebounce <= 0 {
		o.SearchDebounce = 300 * time.Millisecond
	}
	if o.ScrollDebounce <= 0 {
		o.ScrollDebounce = 500 * time.Millisecond
	}
	if o.TrendingWindow <= 0 {
		o.TrendingWindow = metric.RollingWindow
	}
}

// Controller is the single owner of session state. Methods are safe to call
// from any goroutine.
type Controller struct {
	opts Options
	log  *log.Logger

	mu       sync.Mutex
	records  []model.Record
	channels []string
	state    query.State
	working  []model.Record
	cursor   *pager.Cursor
	history  *viewstate.History
	summary  trending.Summary
	status   Status
	loadErr  string

	search    *sched.Debouncer
	scroll    *sched.Debouncer
	advancing sched.Guard
}

// New creates a Controller whose address bar starts at fragment. The
// fragment is applied once records arrive, because channel tokens can only
// be resolved against loaded channel names.
func New(fragment string, opts Options) *Controller {
	opts.setDefaults()
	return &Controller{
		opts:    opts,
		log:     logging.WithPrefix("session"),
		cursor:  pager.New(opts.PageSize),
		history: viewstate.NewHistory(fragment),
		status:  StatusLoading,
		search:  sched.NewDebouncer(opts.Clock, opts.SearchDebounce, opts.Dispatch),
		scroll:  sched.NewDebouncer(opts.Clock, opts.ScrollDebounce, opts.Dispatch),
	}
}

// Refresh loads a fresh record set from src and installs it.
func (c *Controller) Refresh(ctx context.Context, src fetch.Source) error {
	records, err := src.Records(ctx)
	err = fetch.Wrap(src.Name(), err)
	c.Load(records, err)
	return err
}

// Load installs the result of a fetch. A throttled refresh changes nothing.
// Any other error enters the error state and drops the record set.
// On success the record set is replaced wholesale, trending is recomputed,
// the current fragment is re-applied and the query re-run.
func (c *Controller) Load(records []model.Record, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if errors.Is(err, fetch.ErrThrottled) {
		c.log.Debug("Refresh skipped", "reason", err)
		return
	}
	if err != nil {
		c.log.Error("Dataset load failed", "error", err)
		c.records, c.channels, c.working = nil, nil, nil
		c.summary = trending.Summary{}
		c.status = StatusError
		c.loadErr = err.Error()
		c.cancelPendingLocked()
		c.cursor.Reset()
		return
	}

	c.records = records
	c.channels = model.Channels(records)
	c.status = StatusReady
	c.loadErr = ""
	c.summary = trending.Aggregate(records, c.opts.Extractor, c.opts.Clock.Now(), c.opts.TrendingWindow)
	c.log.Info("Dataset loaded", "records", len(records), "channels", len(c.channels))

	c.applyLocked(c.history.Current())
	c.rerunLocked()
}

// SetFilter selects f and writes a filter token.
func (c *Controller) SetFilter(f query.Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Filter = f
	c.rerunLocked()
	c.pushLocked(viewstate.New(viewstate.KindFilter, f.String()))
}

// SetSort selects s and writes a sort token.
func (c *Controller) SetSort(s query.Sort) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Sort = s
	c.rerunLocked()
	c.pushLocked(viewstate.New(viewstate.KindSort, s.String()))
}

// SetSearch applies text immediately, dropping any pending debounced
// search. It clears the channel pin. Empty text removes the fragment.
func (c *Controller) SetSearch(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setSearchLocked(text)
}

func (c *Controller) setSearchLocked(text string) {
	c.search.Cancel()
	c.state.Search = text
	c.state.Channel = ""
	c.rerunLocked()
	if text == "" {
		c.pushLocked(viewstate.Token{})
		return
	}
	c.pushLocked(viewstate.New(viewstate.KindSearch, text))
}

// RequestSearch is the keystroke path: text is applied only after the
// search debounce passes with no newer request.
func (c *Controller) RequestSearch(text string) {
	c.search.Trigger(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.setSearchLocked(text)
	})
}

// FilterByName searches for an entity picked from the trending panel or a
// card. kind is KindPlayer or KindTopic; anything else is written as a topic.
func (c *Controller) FilterByName(name string, kind viewstate.Kind) {
	if kind != viewstate.KindPlayer {
		kind = viewstate.KindTopic
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.search.Cancel()
	c.state.Search = name
	c.state.Channel = ""
	c.rerunLocked()
	c.pushLocked(viewstate.New(kind, name))
}

// SetChannelPin pins channel, or unpins it if it is already pinned.
// Unpinning removes the fragment.
func (c *Controller) SetChannelPin(channel string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Channel == channel || channel == "" {
		c.state.Channel = ""
		c.rerunLocked()
		c.pushLocked(viewstate.Token{})
		return
	}
	c.state.Channel = channel
	c.rerunLocked()
	c.pushLocked(viewstate.New(viewstate.KindChannel, channel))
}

// ClearAll restores the default view and removes the fragment.
func (c *Controller) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.search.Cancel()
	c.state = query.State{}
	c.rerunLocked()
	c.pushLocked(viewstate.Token{})
}

// RequestMore is the near-bottom signal from the render surface. It
// schedules one page advance after the scroll debounce and reports whether
// it did; signals are ignored while an advance is pending or when
// everything is already visible.
func (c *Controller) RequestMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.cursor.HasMore(len(c.working)) {
		return false
	}
	if !c.advancing.TryAcquire() {
		return false
	}
	c.scroll.Trigger(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.cursor.Advance(len(c.working))
		c.advancing.Release()
	})
	return true
}

// AdvancePagination shows one more page immediately.
func (c *Controller) AdvancePagination() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor.Advance(len(c.working))
}

// ApplyToken applies a fragment typed or pasted by the user and records it
// in history. It reports false, leaving state unchanged, when the fragment
// is malformed or names an unknown channel, sort or filter.
func (c *Controller) ApplyToken(fragment string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	tok, ok := viewstate.Decode(fragment)
	if !ok || !c.applyTokenLocked(tok) {
		c.log.Warn("Fragment ignored", "fragment", fragment)
		return false
	}
	c.rerunLocked()
	c.pushLocked(c.canonicalLocked(tok))
	return true
}

// Back moves to the previous fragment and re-derives state from it, starting
// from the default view.
func (c *Controller) Back() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	fragment, ok := c.history.Back()
	if !ok {
		return false
	}
	c.state = query.State{}
	c.applyLocked(fragment)
	c.rerunLocked()
	return true
}

// Forward moves to the next fragment and re-derives state from it, starting
// from the default view.
func (c *Controller) Forward() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	fragment, ok := c.history.Forward()
	if !ok {
		return false
	}
	c.state = query.State{}
	c.applyLocked(fragment)
	c.rerunLocked()
	return true
}

// applyLocked overlays a fragment already in history onto the current
// state. An empty fragment leaves state alone.
func (c *Controller) applyLocked(fragment string) {
	tok, ok := viewstate.Decode(fragment)
	if !ok {
		c.log.Warn("Fragment ignored", "fragment", fragment)
		return
	}
	if tok.IsZero() {
		return
	}
	if !c.applyTokenLocked(tok) {
		c.log.Warn("Fragment did not resolve", "fragment", fragment)
	}
}

// applyTokenLocked overlays tok onto the current state.
func (c *Controller) applyTokenLocked(tok viewstate.Token) bool {
	switch tok.Kind {
	case viewstate.KindNone:
		c.search.Cancel()
		c.state = query.State{}
	case viewstate.KindPlayer, viewstate.KindTopic, viewstate.KindSearch:
		c.search.Cancel()
		c.state.Search = tok.Readable()
	case viewstate.KindChannel:
		name, ok := viewstate.MatchSlug(tok.Value, c.channels)
		if !ok {
			return false
		}
		c.state.Channel = name
	case viewstate.KindSort:
		s, ok := query.ParseSort(tok.Value)
		if !ok {
			return false
		}
		c.state.Sort = s
	case viewstate.KindFilter:
		f, ok := query.ParseFilter(tok.Value)
		if !ok {
			return false
		}
		c.state.Filter = f
	default:
		return false
	}
	return true
}

// canonicalLocked rewrites sort and filter tokens under their current names,
// so legacy aliases are not written back.
func (c *Controller) canonicalLocked(tok viewstate.Token) viewstate.Token {
	switch tok.Kind {
	case viewstate.KindSort:
		return viewstate.New(viewstate.KindSort, c.state.Sort.String())
	case viewstate.KindFilter:
		return viewstate.New(viewstate.KindFilter, c.state.Filter.String())
	}
	return tok
}

// rerunLocked re-derives the working set and resets pagination. Any pending
// page advance belongs to the old working set and is dropped.
func (c *Controller) rerunLocked() {
	c.working = query.Run(c.records, c.state, c.opts.Extractor, c.opts.Clock.Now())
	c.cursor.Reset()
	c.scroll.Cancel()
	c.advancing.Release()
}

func (c *Controller) cancelPendingLocked() {
	c.search.Cancel()
	c.scroll.Cancel()
	c.advancing.Release()
}

func (c *Controller) pushLocked(tok viewstate.Token) {
	c.history.Push(viewstate.Encode(tok))
}

// Close drops every pending task.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelPendingLocked()
}
