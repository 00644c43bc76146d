package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/userdir/internal/listing"
	"github.com/rshade/userdir/internal/logging"
	listview "github.com/rshade/userdir/internal/tui/list"
	"github.com/rshade/userdir/internal/users"
)

// ViewState is the browser's screen.
type ViewState int

const (
	// ViewStateLoading waits for the fetch.
	ViewStateLoading ViewState = iota
	// ViewStateList shows a page of users.
	ViewStateList
	// ViewStateQuitting is set once the program is asked to exit.
	ViewStateQuitting
)

// UserFetcher loads the directory. It follows the users.Source contract and
// never fails.
type UserFetcher func(ctx context.Context) []users.User

// UserController is the list controller the browser drives.
type UserController = listing.Controller[users.User, string]

// usersLoadedMsg delivers the fetch result to the update loop.
type usersLoadedMsg struct {
	users []users.User
}

// BrowseModel is the Bubble Tea model for the interactive directory.
type BrowseModel struct {
	ctx   context.Context
	state ViewState

	// List state, valid once the fetch has completed
	controller *UserController
	view       listing.PageView[users.User]
	rows       *listview.Model[users.User]

	// Construction parameters for the controller
	pageSize int
	filterFn listing.FilterFunc[users.User]

	// Interactive components
	search    textinput.Model
	searching bool
	keys      KeyMap

	// Loading state
	loading  *LoadingState
	fetchCmd tea.Cmd

	width  int
	status string
}

// NewBrowseModel creates a browser that starts by running fetcher.
// It returns an error wrapping listing.ErrConfig for an unusable page size
// or filter, before anything is fetched.
func NewBrowseModel(
	ctx context.Context,
	fetcher UserFetcher,
	pageSize int,
	filterFn listing.FilterFunc[users.User],
) (*BrowseModel, error) {
	if _, err := listing.New(nil, pageSize, filterFn, users.IDOf); err != nil {
		return nil, err
	}
	if fetcher == nil {
		return nil, fmt.Errorf("%w: fetcher is required", listing.ErrConfig)
	}

	m := &BrowseModel{
		ctx:      ctx,
		state:    ViewStateLoading,
		pageSize: pageSize,
		filterFn: filterFn,
		rows:     listview.New(renderUserRow),
		search:   newSearchInput(),
		keys:     DefaultKeyMap(),
		loading:  NewLoadingState(),
		width:    defaultWidth,
		fetchCmd: func() tea.Msg {
			return usersLoadedMsg{users: fetcher(ctx)}
		},
	}
	return m, nil
}

// newSearchInput creates the text input for the search box.
func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "first name..."
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	return ti
}

// Init starts the spinner and the fetch.
func (m *BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.fetchCmd)
}

// Update handles messages and updates the model state.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case usersLoadedMsg:
		return m.handleLoaded(msg)
	}

	switch m.state {
	case ViewStateLoading:
		return m.handleLoadingUpdate(msg)
	case ViewStateList:
		if m.searching {
			return m.handleSearchInput(msg)
		}
		return m.handleListUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m *BrowseModel) handleLoaded(msg usersLoadedMsg) (tea.Model, tea.Cmd) {
	controller, err := listing.New(msg.users, m.pageSize, m.filterFn, users.IDOf)
	if err != nil {
		// Unreachable: the parameters were validated by NewBrowseModel.
		m.status = err.Error()
		return m, nil
	}

	logger := logging.FromContext(m.ctx)
	logger.Debug().
		Str(logging.FieldComponent, "tui").
		Int("users", controller.Len()).
		Int("page_size", m.pageSize).
		Msg("directory loaded")

	m.controller = controller
	m.state = ViewStateList
	m.apply(controller.View())
	return m, nil
}

func (m *BrowseModel) handleLoadingUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Quit) {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}
	return m, m.loading.Update(msg)
}

func (m *BrowseModel) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Accept):
			m.searching = false
			m.search.Blur()
			return m, nil
		case key.Matches(keyMsg, m.keys.Cancel):
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.apply(m.controller.SetFilter(""))
			return m, nil
		case keyMsg.Type == tea.KeyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.apply(m.controller.SetFilter(after))
		m.rows.Select(0)
	}
	return m, cmd
}

//nolint:gocognit // One branch per key binding.
func (m *BrowseModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.status = ""
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.state = ViewStateQuitting
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(keyMsg, m.keys.Cancel):
		if m.controller.Query() != "" {
			m.search.SetValue("")
			m.apply(m.controller.SetFilter(""))
			m.rows.Select(0)
		}
	case key.Matches(keyMsg, m.keys.Previous):
		m.turnPage(m.controller.PreviousPage())
	case key.Matches(keyMsg, m.keys.Next):
		m.turnPage(m.controller.NextPage())
	case key.Matches(keyMsg, m.keys.FirstPage):
		m.goToPage(0)
	case key.Matches(keyMsg, m.keys.LastPage):
		m.goToPage(m.view.TotalPages - 1)
	case key.Matches(keyMsg, m.keys.Up):
		m.rows.MoveUp()
	case key.Matches(keyMsg, m.keys.Down):
		m.rows.MoveDown()
	case key.Matches(keyMsg, m.keys.Delete):
		m.deleteSelected()
	}
	return m, nil
}

// turnPage shows view and puts the cursor on its first row when the page changed.
func (m *BrowseModel) turnPage(view listing.PageView[users.User]) {
	changed := view.PageIndex != m.view.PageIndex
	m.apply(view)
	if changed {
		m.rows.Select(0)
	}
}

func (m *BrowseModel) goToPage(index int) {
	if m.view.IsEmpty() {
		return
	}
	view, err := m.controller.GoToPage(index)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.turnPage(view)
}

func (m *BrowseModel) deleteSelected() {
	user, ok := m.rows.SelectedItem()
	if !ok {
		return
	}

	logger := logging.FromContext(m.ctx)
	logger.Debug().
		Str(logging.FieldComponent, "tui").
		Str("user_id", user.ID()).
		Msg("deleting user")

	m.apply(m.controller.DeleteRecord(user.ID()))
	m.status = fmt.Sprintf("Deleted %s", user.FullName())
}

// apply makes view the rendered page.
func (m *BrowseModel) apply(view listing.PageView[users.User]) {
	m.view = view
	m.rows.SetItems(view.Records)
}

// State returns the current screen.
func (m *BrowseModel) State() ViewState {
	return m.state
}

// CurrentView returns the page being shown.
func (m *BrowseModel) CurrentView() listing.PageView[users.User] {
	return m.view
}
