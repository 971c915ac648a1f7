// Package tui is the interactive presentation layer of the register. It
// follows The Elm Architecture via bubbletea: the App model holds the state,
// Update reacts to messages, View renders everything to a string.
//
// The TUI is deliberately thin: it collects input, calls one store
// operation, and renders the returned value or failure as a status line.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okovalenko/kadry/internal/journal"
	"github.com/okovalenko/kadry/internal/personnel"
)

// appState represents which screen is active.
type appState int

const (
	stateMenu appState = iota
	stateForm
	stateSortMenu
	stateOutput
)

type menuAction int

const (
	actionAddPosition menuAction = iota
	actionUpdatePosition
	actionDeletePosition
	actionShowPositions
	actionAddEmployee
	actionUpdateEmployee
	actionDeleteEmployee
	actionListEmployees
	actionSearchEmployees
	actionPayroll
	actionQuit
)

// menuItem implements list.Item.
type menuItem struct {
	action menuAction
	title  string
	desc   string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

type sortItem struct {
	key   personnel.SortKey
	title string
	desc  string
}

func (i sortItem) Title() string       { return i.title }
func (i sortItem) Description() string { return i.desc }
func (i sortItem) FilterValue() string { return i.title }

// App is the top-level bubbletea model.
type App struct {
	store   *personnel.Store
	journal *journal.Journal

	state    appState
	menu     list.Model
	sortMenu list.Model

	form        *form
	formPrelude string

	output string
	status string

	width  int
	height int
}

// NewApp wires the menus around an already-loaded store.
func NewApp(store *personnel.Store, jrnl *journal.Journal) *App {
	menuItems := []list.Item{
		menuItem{action: actionAddPosition, title: "Add position", desc: "Create a job title with access level and salary"},
		menuItem{action: actionUpdatePosition, title: "Update position", desc: "Change name, access level or salary by ID"},
		menuItem{action: actionDeletePosition, title: "Delete position", desc: "Remove a position nobody holds"},
		menuItem{action: actionShowPositions, title: "Show positions", desc: "All positions ordered by name"},
		menuItem{action: actionAddEmployee, title: "Add employee", desc: "Hire a person onto an existing position"},
		menuItem{action: actionUpdateEmployee, title: "Update employee", desc: "Change names, position or hire date by ID"},
		menuItem{action: actionDeleteEmployee, title: "Delete employee", desc: "Remove an employee by ID"},
		menuItem{action: actionListEmployees, title: "List employees", desc: "Sorted by last name, position or hire date"},
		menuItem{action: actionSearchEmployees, title: "Search employees", desc: "Case-insensitive name substring"},
		menuItem{action: actionPayroll, title: "Payroll statement", desc: "Gross and net pay with totals"},
		menuItem{action: actionQuit, title: "Quit", desc: "Leave the register"},
	}
	menu := list.New(menuItems, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "KADRY · personnel register"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	sortItems := []list.Item{
		sortItem{key: personnel.SortByLastName, title: "Last name", desc: "Alphabetical by surname"},
		sortItem{key: personnel.SortByPosition, title: "Position", desc: "Alphabetical by position name"},
		sortItem{key: personnel.SortByHireDate, title: "Hire date", desc: "Earliest hires first"},
	}
	sortMenu := list.New(sortItems, list.NewDefaultDelegate(), 0, 0)
	sortMenu.Title = "Sort employees by"
	sortMenu.SetShowStatusBar(false)
	sortMenu.SetFilteringEnabled(false)

	return &App{
		store:    store,
		journal:  jrnl,
		state:    stateMenu,
		menu:     menu,
		sortMenu: sortMenu,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetSize(msg.Width-4, msg.Height-6)
		a.sortMenu.SetSize(msg.Width-4, msg.Height-6)
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	switch a.state {
	case stateMenu:
		return a.updateMenu(msg)
	case stateSortMenu:
		return a.updateSortMenu(msg)
	case stateForm:
		return a.updateForm(msg)
	case stateOutput:
		return a.updateOutput(msg)
	}
	return a, nil
}

func (a *App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		item, ok := a.menu.SelectedItem().(menuItem)
		if !ok {
			return a, nil
		}
		return a.runAction(item.action)
	}
	var cmd tea.Cmd
	a.menu, cmd = a.menu.Update(msg)
	return a, cmd
}

func (a *App) updateSortMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			a.state = stateMenu
			return a, nil
		case "enter":
			item, ok := a.sortMenu.SelectedItem().(sortItem)
			if !ok {
				return a, nil
			}
			employees := a.store.ListEmployees(item.key)
			a.output = renderEmployees(fmt.Sprintf("Employees by %s", item.key), employees)
			a.state = stateOutput
			return a, nil
		}
	}
	var cmd tea.Cmd
	a.sortMenu, cmd = a.sortMenu.Update(msg)
	return a, cmd
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, status, done, canceled := a.form.Update(msg)
	if canceled {
		a.form = nil
		a.formPrelude = ""
		a.state = stateMenu
		return a, nil
	}
	if done {
		a.status = status
		a.form = nil
		a.formPrelude = ""
		// A submit handler may have routed to an output view already
		// (search does); only fall back to the menu otherwise.
		if a.state == stateForm {
			a.state = stateMenu
		}
		return a, nil
	}
	return a, cmd
}

func (a *App) updateOutput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "enter", "q":
			a.state = stateMenu
			return a, nil
		}
	}
	return a, nil
}

func (a *App) runAction(action menuAction) (tea.Model, tea.Cmd) {
	a.status = ""
	switch action {
	case actionQuit:
		return a, tea.Quit
	case actionShowPositions:
		a.output = renderPositions(a.store.Positions())
		a.state = stateOutput
	case actionListEmployees:
		a.state = stateSortMenu
	case actionPayroll:
		lines, summary := a.store.PayrollInfo()
		a.output = renderPayroll(lines, summary)
		a.state = stateOutput
	case actionAddPosition:
		a.openForm(a.addPositionForm(), "")
	case actionUpdatePosition:
		a.openForm(a.updatePositionForm(), renderPositions(a.store.Positions()))
	case actionDeletePosition:
		a.openForm(a.deletePositionForm(), renderPositions(a.store.Positions()))
	case actionAddEmployee:
		a.openForm(a.addEmployeeForm(), renderPositions(a.store.Positions()))
	case actionUpdateEmployee:
		a.openForm(a.updateEmployeeForm(), renderEmployees("Current employees", a.store.Employees()))
	case actionDeleteEmployee:
		a.openForm(a.deleteEmployeeForm(), renderEmployees("Current employees", a.store.Employees()))
	case actionSearchEmployees:
		a.openForm(a.searchForm(), "")
	}
	return a, nil
}

func (a *App) openForm(f *form, prelude string) {
	a.form = f
	a.formPrelude = prelude
	a.state = stateForm
}

// View implements tea.Model.
func (a *App) View() string {
	var body string
	switch a.state {
	case stateMenu:
		body = a.menu.View()
	case stateSortMenu:
		body = a.sortMenu.View()
	case stateForm:
		if a.formPrelude != "" {
			body = a.formPrelude + "\n" + a.form.View()
		} else {
			body = a.form.View()
		}
	case stateOutput:
		body = a.output + "\n" + helpStyle.Render("esc: back to menu")
	}

	footer := a.footer()
	if footer == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (a *App) footer() string {
	var parts []string
	if a.status != "" {
		style := statusStyle
		if strings.HasPrefix(a.status, "personnel:") {
			style = errorStyle
		}
		parts = append(parts, style.Render(a.status))
	}
	if lines, _ := a.journal.Tail(3); len(lines) > 0 {
		parts = append(parts, helpStyle.Render(strings.Join(lines, "\n")))
	}
	return strings.Join(parts, "\n")
}
