package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okovalenko/kadry/internal/personnel"
	"github.com/okovalenko/kadry/internal/storage"
)

func testApp(t *testing.T) *App {
	t.Helper()
	path := filepath.Join(t.TempDir(), "personnel.json")
	store := personnel.NewStore(storage.NewJSONFile(path), personnel.WithClock(func() time.Time {
		return time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	}))
	if _, err := store.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return NewApp(store, nil)
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func submitForm(t *testing.T, app *App, values []string) {
	t.Helper()
	if app.state != stateForm {
		t.Fatalf("app state = %v, want stateForm", app.state)
	}
	if len(values) != len(app.form.fields) {
		t.Fatalf("got %d values for %d fields", len(values), len(app.form.fields))
	}
	for i, value := range values {
		app.form.fields[i].input.SetValue(value)
	}
	// One enter per field advances focus; the last one submits.
	for range values {
		app.Update(enterKey())
	}
}

func TestAddPositionFlow(t *testing.T) {
	app := testApp(t)
	app.runAction(actionAddPosition)
	submitForm(t, app, []string{"Engineer", "3", "50000"})

	if app.state != stateMenu {
		t.Fatalf("state = %v, want back at menu", app.state)
	}
	if !strings.Contains(app.status, "Added position Engineer") {
		t.Fatalf("status = %q, want add confirmation", app.status)
	}
	if positions := app.store.Positions(); len(positions) != 1 {
		t.Fatalf("store holds %d positions, want 1", len(positions))
	}
}

func TestAddPositionStoreFailureShownAsStatus(t *testing.T) {
	app := testApp(t)
	app.runAction(actionAddPosition)
	submitForm(t, app, []string{"Engineer", "9", "50000"})

	if app.state != stateMenu {
		t.Fatalf("state = %v, want back at menu", app.state)
	}
	if !strings.Contains(app.status, "access level") {
		t.Fatalf("status = %q, want the validation message", app.status)
	}
}

func TestDateFieldLoopsUntilValid(t *testing.T) {
	app := testApp(t)
	pos, err := app.store.AddPosition("Engineer", 3, 50000)
	if err != nil {
		t.Fatalf("AddPosition returned error: %v", err)
	}

	app.runAction(actionAddEmployee)
	submitForm(t, app, []string{"Anna", "Kovalenko", pos.ID, "01.01.2020"})

	if app.state != stateForm {
		t.Fatalf("state = %v, want still in form after bad date", app.state)
	}
	if !strings.Contains(app.form.errMsg, "YYYY-MM-DD") {
		t.Fatalf("errMsg = %q, want format hint", app.form.errMsg)
	}

	// Correcting just the date and submitting again succeeds.
	app.form.fields[3].input.SetValue("2020-01-01")
	app.Update(enterKey())
	if app.state != stateMenu {
		t.Fatalf("state = %v, want back at menu after valid date", app.state)
	}
	if employees := app.store.Employees(); len(employees) != 1 {
		t.Fatalf("store holds %d employees, want 1", len(employees))
	}
}

func TestPayrollActionRendersOutput(t *testing.T) {
	app := testApp(t)
	pos, err := app.store.AddPosition("Engineer", 3, 50000)
	if err != nil {
		t.Fatalf("AddPosition returned error: %v", err)
	}
	hired := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := app.store.AddEmployee("Anna", "Kovalenko", pos.ID, hired); err != nil {
		t.Fatalf("AddEmployee returned error: %v", err)
	}

	app.runAction(actionPayroll)
	if app.state != stateOutput {
		t.Fatalf("state = %v, want stateOutput", app.state)
	}
	for _, want := range []string{"Anna Kovalenko", "50000.00", "40250.00"} {
		if !strings.Contains(app.output, want) {
			t.Fatalf("payroll output missing %q:\n%s", want, app.output)
		}
	}
}

func TestSearchFlowShowsResults(t *testing.T) {
	app := testApp(t)
	pos, err := app.store.AddPosition("Engineer", 3, 50000)
	if err != nil {
		t.Fatalf("AddPosition returned error: %v", err)
	}
	hired := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := app.store.AddEmployee("Anna", "Kovalenko", pos.ID, hired); err != nil {
		t.Fatalf("AddEmployee returned error: %v", err)
	}

	app.runAction(actionSearchEmployees)
	submitForm(t, app, []string{"koval"})

	if app.state != stateOutput {
		t.Fatalf("state = %v, want stateOutput", app.state)
	}
	if !strings.Contains(app.output, "Anna Kovalenko") {
		t.Fatalf("search output missing the match:\n%s", app.output)
	}
}
