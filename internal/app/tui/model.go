package tui

import (
	"algofit-storefront/internal/app/catalog"
	"algofit-storefront/internal/app/countdown"
	"algofit-storefront/internal/app/ds"
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// priceNudge is how far one key press moves a price bound.
const priceNudge = 10 * catalog.PriceStep

// Mode is what the keyboard currently edits.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
	ModeJump
)

// fetchedMsg carries the outcome of one catalog fetch back to the model.
type fetchedMsg struct {
	ticket catalog.Ticket
	result catalog.Result
	err    error
}

type tickMsg time.Time

// Model is the interactive catalog browser.
type Model struct {
	ctx         context.Context
	cancel      context.CancelFunc
	view        *catalog.View
	fetcher     catalog.Fetcher
	memberships []ds.Membership
	discount    countdown.Countdown
	styles      Styles

	now      time.Time
	mode     Mode
	input    string
	hint     string
	width    int
	quitting bool
}

func NewModel(ctx context.Context, view *catalog.View, fetcher catalog.Fetcher, memberships []ds.Membership, discount countdown.Countdown) *Model {
	view.SetMemberships(memberships)
	return &Model{
		ctx:         ctx,
		view:        view,
		fetcher:     fetcher,
		memberships: memberships,
		discount:    discount,
		styles:      DefaultStyles,
		now:         time.Now(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if t, ok := m.view.Start(); ok {
		cmds = append(cmds, m.fetchCmd(t))
	}
	return tea.Batch(cmds...)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchCmd cancels the fetch in flight, if any, and starts the one for t.
func (m *Model) fetchCmd(t catalog.Ticket) tea.Cmd {
	m.stopFetch()
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	return func() tea.Msg {
		res, err := m.fetcher.Fetch(ctx, t.Query)
		return fetchedMsg{ticket: t, result: res, err: err}
	}
}

func (m *Model) stopFetch() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// dispatch applies an intent and starts a fetch when the query changed.
func (m *Model) dispatch(in catalog.Intent) tea.Cmd {
	t, ok := m.view.Dispatch(in)
	if !ok {
		return nil
	}
	return m.fetchCmd(t)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()

	case fetchedMsg:
		if m.view.Resolve(msg.ticket, msg.result, msg.err) {
			m.stopFetch()
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeSearch, ModeJump:
			return m, m.handleInput(msg)
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.hint = ""
	q := m.view.Query()
	pager := m.view.Snapshot().Pager

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.stopFetch()
		return tea.Quit
	case "right", "n":
		return m.dispatch(catalog.SetPage{Page: pager.Next()})
	case "left", "p":
		return m.dispatch(catalog.SetPage{Page: pager.Prev()})
	case "home", "g":
		return m.dispatch(catalog.SetPage{Page: 1})
	case "end", "G":
		return m.dispatch(catalog.SetPage{Page: max(pager.TotalPages, 1)})
	case "s":
		return m.dispatch(catalog.SetSort{Key: catalog.NextSort(q.Sort)})
	case "m":
		return m.dispatch(catalog.SetMembership{ID: m.nextMembership(q.MembershipID)})
	case "[":
		return m.dispatch(catalog.SetPriceRange{Index: 0, Value: catalog.PreClamp(q, 0, q.PriceMin-priceNudge)})
	case "]":
		return m.dispatch(catalog.SetPriceRange{Index: 0, Value: catalog.PreClamp(q, 0, q.PriceMin+priceNudge)})
	case "{":
		return m.dispatch(catalog.SetPriceRange{Index: 1, Value: catalog.PreClamp(q, 1, q.PriceMax-priceNudge)})
	case "}":
		return m.dispatch(catalog.SetPriceRange{Index: 1, Value: catalog.PreClamp(q, 1, q.PriceMax+priceNudge)})
	case "c":
		return m.dispatch(catalog.ClearPrice{})
	case "x":
		return m.dispatch(catalog.Reset{})
	case "r":
		if t, ok := m.view.Retry(); ok {
			return m.fetchCmd(t)
		}
	case "/":
		m.mode = ModeSearch
		m.input = q.Search
	case "j":
		if pager.Visible {
			m.mode = ModeJump
			m.input = ""
		}
	}
	return nil
}

// handleInput edits the search or jump-to-page prompt.
func (m *Model) handleInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeBrowse
		m.input = ""
		return nil
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
		return nil
	case tea.KeyEnter:
		mode, input := m.mode, m.input
		m.mode = ModeBrowse
		m.input = ""
		if mode == ModeSearch {
			return m.dispatch(catalog.SetSearch{Text: strings.TrimSpace(input)})
		}
		page, ok := catalog.JumpTo(input, m.view.Snapshot().Pager.TotalPages)
		if !ok {
			m.hint = "No such page: " + input
			return nil
		}
		return m.dispatch(catalog.SetPage{Page: page})
	case tea.KeySpace:
		m.input += " "
		return nil
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return nil
}

// nextMembership cycles all memberships, then back to no filter.
func (m *Model) nextMembership(current string) string {
	if len(m.memberships) == 0 {
		return ""
	}
	if current == "" {
		return m.memberships[0].ID.String()
	}
	for i, ms := range m.memberships {
		if ms.ID.String() == current && i+1 < len(m.memberships) {
			return m.memberships[i+1].ID.String()
		}
	}
	return ""
}

const helpText = "←/→ page · j jump · s sort · m membership · [ ] min · { } max · c clear price · / search · x reset · r retry · q quit"

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.styles
	sections := []string{
		s.Title.Render("AlgoFit Plans"),
		RenderDiscount(s, m.discount, m.now),
		"",
		RenderSnapshot(s, m.view.Snapshot()),
		"",
	}
	switch m.mode {
	case ModeSearch:
		sections = append(sections, "Search: "+m.input+"█")
	case ModeJump:
		sections = append(sections, "Go to page: "+m.input+"█")
	default:
		if m.hint != "" {
			sections = append(sections, s.Warning.Render(m.hint))
		}
		sections = append(sections, s.Dim.Render(helpText))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 {
		return s.Panel.Width(m.width - 2).Render(body)
	}
	return s.Panel.Render(body)
}
