package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/userdir/internal/listing"
	"github.com/rshade/userdir/internal/users"
)

// View renders the current screen.
func (m *BrowseModel) View() string {
	switch m.state {
	case ViewStateLoading:
		return m.loading.View() + "\n"
	case ViewStateQuitting:
		return ""
	case ViewStateList:
		return m.renderList()
	default:
		return ""
	}
}

func (m *BrowseModel) renderList() string {
	sections := []string{
		m.renderHeader(),
		m.renderSearch(),
		"",
		m.renderRows(),
		"",
		m.renderNavigation(),
	}
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, m.renderHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m *BrowseModel) renderHeader() string {
	count := fmt.Sprintf("%d of %d users", m.view.TotalRecords, m.controller.Len())
	return titleStyle.Render("User Directory") + "  " + countStyle.Render(count)
}

func (m *BrowseModel) renderSearch() string {
	if m.searching {
		return m.search.View()
	}
	query := m.controller.Query()
	if query == "" {
		return helpStyle.Render("Search: (press / to search)")
	}
	return "Search: " + query
}

// renderRows draws the page rows clipped to the terminal width.
func (m *BrowseModel) renderRows() string {
	if m.view.IsEmpty() {
		return emptyPage(m.controller.Query())
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(m.rows.View())
}

func (m *BrowseModel) renderNavigation() string {
	return navigationLine(m.view)
}

// RenderPage draws one page with the browser's styles, without the
// interactive parts.
func RenderPage(view listing.PageView[users.User], query string) string {
	if view.IsEmpty() {
		return emptyPage(query) + "\n"
	}

	rows := make([]string, 0, len(view.Records))
	for _, u := range view.Records {
		rows = append(rows, renderUserRow(u, false))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(rows, "\n"),
		"",
		navigationLine(view),
	) + "\n"
}

func emptyPage(query string) string {
	if query != "" {
		return errorStyle.Render(fmt.Sprintf("No users match %q.", query))
	}
	return errorStyle.Render("No users found.")
}

// navigationLine draws the previous/next affordances. Each is dimmed
// exactly when the page view says that direction is unavailable.
func navigationLine(view listing.PageView[users.User]) string {
	prev := navDisabledStyle.Render("◀ prev")
	if view.HasPrevious {
		prev = navEnabledStyle.Render("◀ prev")
	}
	next := navDisabledStyle.Render("next ▶")
	if view.HasNext {
		next = navEnabledStyle.Render("next ▶")
	}

	page := "Page 0 of 0"
	if !view.IsEmpty() {
		page = fmt.Sprintf("Page %d of %d", view.PageIndex+1, view.TotalPages)
	}
	return prev + "  " + page + "  " + next
}

func (m *BrowseModel) renderHelp() string {
	bindings := m.keys.listHelp()
	if m.searching {
		bindings = m.keys.searchHelp()
	}
	return helpStyle.Render(helpLine(bindings))
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// renderUserRow formats one user for the list.
func renderUserRow(u users.User, selected bool) string {
	name := u.FullName()
	if len([]rune(name)) > nameColumnWidth {
		name = string([]rune(name)[:nameColumnWidth-1]) + "…"
	}
	if selected {
		return selectedRowStyle.Render(fmt.Sprintf("> %-*s  %s", nameColumnWidth, name, u.Email))
	}
	return fmt.Sprintf("  %-*s  %s", nameColumnWidth, name, emailStyle.Render(u.Email))
}
