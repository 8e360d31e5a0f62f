package ui

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/abelbrown/courtside/internal/display"
	"github.com/abelbrown/courtside/internal/fetch"
	"github.com/abelbrown/courtside/internal/logging"
	"github.com/abelbrown/courtside/internal/query"
	"github.com/abelbrown/courtside/internal/session"
	"github.com/abelbrown/courtside/internal/signal"
	"github.com/abelbrown/courtside/internal/viewstate"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// nearBottom is how close to the last visible card the cursor must be
// before another page is requested.
const nearBottom = 3

type pane int

const (
	paneFeed pane = iota
	paneTrending
)

type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputFragment
)

// App is the root Bubble Tea model.
// App does not fetch or own records: it drives the session controller and
// renders its snapshots.
type App struct {
	ctrl      *session.Controller
	load      func() tea.Cmd
	extractor signal.Extractor
	now       func() time.Time
	loc       *time.Location

	snap   session.Snapshot
	cards  []display.Card
	cursor int
	pane   pane
	row    int // trending panel cursor

	mode    inputMode
	input   textinput.Model
	spinner spinner.Model
	help    help.Model

	notice   string // transient status text, e.g. throttled refresh
	width    int
	height   int
	ready    bool
	fetching bool
}

// NewApp creates an App over ctrl. load returns the command that fetches the
// dataset; it is run on start, on 'r' and on every RefreshTick.
func NewApp(ctrl *session.Controller, load func() tea.Cmd, ex signal.Extractor) App {
	ti := textinput.New()
	ti.CharLimit = 120
	ti.Width = 50

	s := spinner.New()
	s.Spinner = spinner.Dot

	if ex == nil {
		ex = signal.DefaultDictionary()
	}

	a := App{
		ctrl:      ctrl,
		load:      load,
		extractor: ex,
		now:       time.Now,
		input:     ti,
		spinner:   s,
		help:      help.New(),
	}
	a.sync()
	return a
}

// Init starts the first load and the spinner.
func (a App) Init() tea.Cmd {
	if a.load == nil {
		return a.spinner.Tick
	}
	return tea.Batch(a.load(), a.spinner.Tick)
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.mode != inputNone {
			return a.handleInput(msg)
		}
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.ready = true
		return a, nil

	case RecordsLoaded:
		a.fetching = false
		a.notice = ""
		if errors.Is(msg.Err, fetch.ErrThrottled) {
			a.notice = "Refreshed too recently"
		}
		a.ctrl.Load(msg.Records, msg.Err)
		a.sync()
		return a, nil

	case RefreshTick:
		return a.refresh()

	case TaskDue:
		if msg.Task != nil {
			msg.Task()
		}
		a.sync()
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) refresh() (tea.Model, tea.Cmd) {
	if a.load == nil || a.fetching {
		return a, nil
	}
	a.fetching = true
	return a, a.load()
}

// handleKeyMsg processes keyboard input outside the input bar.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.notice = ""

	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.Help):
		a.help.ShowAll = !a.help.ShowAll

	case key.Matches(msg, keys.Trending):
		if a.pane == paneFeed && !a.snap.Trending.Empty() {
			a.pane = paneTrending
			a.row = 0
		} else {
			a.pane = paneFeed
		}

	case key.Matches(msg, keys.Up):
		if a.pane == paneTrending {
			a.row = max(0, a.row-1)
		} else if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, keys.Down):
		if a.pane == paneTrending {
			if a.row < len(panelRows(a.snap.Trending))-1 {
				a.row++
			}
			return a, nil
		}
		if a.cursor < len(a.cards)-1 {
			a.cursor++
		}
		a.maybeRequestMore()

	case key.Matches(msg, keys.Top):
		a.cursor = 0

	case key.Matches(msg, keys.Bottom):
		if len(a.cards) > 0 {
			a.cursor = len(a.cards) - 1
		}
		a.maybeRequestMore()

	case key.Matches(msg, keys.Select):
		if a.pane == paneTrending {
			rows := panelRows(a.snap.Trending)
			if a.row < len(rows) {
				a.ctrl.FilterByName(rows[a.row].Name, rows[a.row].Kind)
				a.pane = paneFeed
			}
		}

	case key.Matches(msg, keys.More):
		a.ctrl.AdvancePagination()

	case key.Matches(msg, keys.Filter):
		a.ctrl.SetFilter(nextFilter(a.snap.State.Filter))

	case key.Matches(msg, keys.Sort):
		a.ctrl.SetSort(nextSort(a.snap.State.Sort))

	case key.Matches(msg, keys.Channel):
		if c, ok := a.selected(); ok {
			a.ctrl.SetChannelPin(c.Record.ChannelName)
		}

	case key.Matches(msg, keys.Player):
		if c, ok := a.selected(); ok && len(c.People) > 0 {
			a.ctrl.FilterByName(c.People[0].Name, viewstate.KindPlayer)
		}

	case key.Matches(msg, keys.Team):
		if c, ok := a.selected(); ok && len(c.Teams) > 0 {
			a.ctrl.FilterByName(c.Teams[0], viewstate.KindTopic)
		}

	case key.Matches(msg, keys.Clear):
		a.ctrl.ClearAll()

	case key.Matches(msg, keys.Back):
		a.ctrl.Back()

	case key.Matches(msg, keys.Forward):
		a.ctrl.Forward()

	case key.Matches(msg, keys.Refresh):
		return a.refresh()

	case key.Matches(msg, keys.Search):
		a.mode = inputSearch
		a.input.Prompt = "/ "
		a.input.Placeholder = "Search players, teams, topics, channels"
		a.input.SetValue(a.snap.State.Search)
		a.input.CursorEnd()
		return a, tea.Batch(a.input.Focus(), textinput.Blink)

	case key.Matches(msg, keys.Fragment):
		a.mode = inputFragment
		a.input.Prompt = "# "
		a.input.Placeholder = "player-lebron-james"
		a.input.SetValue(strings.TrimPrefix(a.snap.Fragment, "#"))
		a.input.CursorEnd()
		return a, tea.Batch(a.input.Focus(), textinput.Blink)

	default:
		return a, nil
	}

	a.sync()
	return a, nil
}

// handleInput routes keys to the search or fragment bar.
func (a App) handleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if a.mode == inputSearch {
			a.ctrl.SetSearch(strings.TrimSpace(a.input.Value()))
		}
		a.closeInput()
		a.sync()
		return a, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(a.input.Value())
		switch a.mode {
		case inputSearch:
			a.ctrl.SetSearch(value)
		case inputFragment:
			if value != "" && !a.ctrl.ApplyToken("#"+value) {
				a.notice = "Unknown view: #" + value
			}
		}
		a.closeInput()
		a.sync()
		return a, nil
	}

	var cmd tea.Cmd
	before := a.input.Value()
	a.input, cmd = a.input.Update(msg)
	if a.mode == inputSearch && a.input.Value() != before {
		a.ctrl.RequestSearch(strings.TrimSpace(a.input.Value()))
	}
	return a, cmd
}

func (a *App) closeInput() {
	a.mode = inputNone
	a.input.Blur()
	a.input.SetValue("")
}

// maybeRequestMore signals the controller when the cursor nears the end of
// the visible cards.
func (a *App) maybeRequestMore() {
	if a.snap.HasMore && a.cursor >= len(a.cards)-nearBottom {
		a.ctrl.RequestMore()
	}
}

func (a App) selected() (display.Card, bool) {
	if a.cursor < 0 || a.cursor >= len(a.cards) {
		return display.Card{}, false
	}
	return a.cards[a.cursor], true
}

// sync pulls a fresh snapshot and rebuilds the cards. The cursor returns to
// the top whenever the view state changed.
func (a *App) sync() {
	prev := a.snap
	a.snap = a.ctrl.Snapshot()
	a.cards = display.BuildCards(a.snap.Visible, a.extractor, a.now())

	if prev.State != a.snap.State || prev.Fragment != a.snap.Fragment || prev.Records != a.snap.Records {
		a.cursor = 0
	}
	if a.cursor >= len(a.cards) {
		a.cursor = max(0, len(a.cards)-1)
	}
	if a.pane == paneTrending && a.snap.Trending.Empty() {
		a.pane = paneFeed
	}
}

func nextFilter(f query.Filter) query.Filter {
	all := query.Filters()
	for i, x := range all {
		if x == f {
			return all[(i+1)%len(all)]
		}
	}
	return query.FilterAll
}

func nextSort(s query.Sort) query.Sort {
	all := query.Sorts()
	for i, x := range all {
		if x == s {
			return all[(i+1)%len(all)]
		}
	}
	return query.SortDate
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	header := a.renderHeader()
	status := a.renderStatusBar()
	helpView := a.help.View(keys)

	var input string
	if a.mode != inputNone {
		input = InputBar.Width(a.width).Render(a.input.View()) + "\n"
	}

	used := lipgloss.Height(header) + lipgloss.Height(status) + lipgloss.Height(helpView)
	if input != "" {
		used++
	}
	bodyHeight := max(1, a.height-used)

	var body string
	switch {
	case a.snap.Status == session.StatusLoading:
		body = HelpStyle.Render(a.spinner.View() + " Loading episodes...")
	case a.snap.Status == session.StatusError:
		body = ErrorStyle.Render(a.snap.Message())
	case a.pane == paneTrending:
		body = RenderTrending(a.snap.Trending, a.row, a.width)
	case len(a.cards) == 0:
		body = HelpStyle.Render(a.snap.Message())
	default:
		body = RenderFeed(a.cards, a.cursor, a.width, bodyHeight-1, a.loc)
		body += a.renderPager()
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return header + "\n" + input + body + "\n" + status + "\n" + helpView
}

func (a App) renderHeader() string {
	var b strings.Builder
	b.WriteString(Header.Render("Courtside"))
	for _, f := range query.Filters() {
		if f == a.snap.State.Filter {
			b.WriteString(ToggleActive.Render(f.Label()))
		} else {
			b.WriteString(ToggleIdle.Render(f.Label()))
		}
	}
	b.WriteString(StatusBarText.Render(" sort: "))
	b.WriteString(ToggleActive.Render(a.snap.State.Sort.Label()))
	if a.snap.State.Channel != "" {
		b.WriteString(StatusBarText.Render(" channel: "))
		b.WriteString(ToggleActive.Render(a.snap.State.Channel))
	}
	return b.String()
}

func (a App) renderPager() string {
	if a.snap.Loading {
		return StatusBarText.Render(a.spinner.View() + " Loading more...")
	}
	if a.snap.HasMore {
		return StatusBarText.Render("Showing " + strconv.Itoa(len(a.cards)) + " of " + strconv.Itoa(a.snap.Total) + " • m: load more")
	}
	return ""
}

// renderStatusBar shows the fragment, the counts and any notice.
func (a App) renderStatusBar() string {
	parts := []string{}
	if a.snap.Fragment != "" {
		parts = append(parts, StatusBarKey.Render(a.snap.Fragment))
	}
	if a.snap.Status == session.StatusReady {
		parts = append(parts, StatusBarText.Render(strconv.Itoa(a.snap.Total)+" episodes"))
	}
	if a.fetching {
		parts = append(parts, StatusBarText.Render(a.spinner.View()+" refreshing"))
	}
	if a.notice != "" {
		parts = append(parts, StatusBarText.Render(a.notice))
	}
	parts = append(parts, StatusBarText.Render("v"+logging.Version))
	return StatusBar.Width(a.width).Render(strings.Join(parts, "  "))
}

// Cursor returns the current cursor position (for testing).
func (a App) Cursor() int {
	return a.cursor
}

// Cards returns the cards currently shown (for testing).
func (a App) Cards() []display.Card {
	return a.cards
}
