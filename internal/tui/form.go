package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okovalenko/kadry/internal/personnel"
)

// fieldKind drives per-field parsing before a form is submitted.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldInt
	fieldFloat
	fieldDate
)

type field struct {
	label    string
	kind     fieldKind
	optional bool
	input    textinput.Model
}

// form is a vertical stack of labeled inputs. Submit re-prompts on malformed
// input (the date field loops until it parses), so only well-formed values
// ever reach the store.
type form struct {
	title  string
	fields []field
	focus  int
	errMsg string

	// submit receives the raw field values once they all parse.
	submit func(values []string) (string, error)
}

func newForm(title string, submit func(values []string) (string, error), fields ...field) *form {
	f := &form{title: title, fields: fields, submit: submit}
	for i := range f.fields {
		f.fields[i].input.Prompt = "> "
		if i == 0 {
			f.fields[i].input.Focus()
		}
	}
	return f
}

func newField(label string, kind fieldKind, optional bool) field {
	input := textinput.New()
	input.CharLimit = 80
	return field{label: label, kind: kind, optional: optional, input: input}
}

// Update handles key events while the form is active. It reports done=true
// with a status line once the submit handler ran, or canceled=true on esc.
func (f *form) Update(msg tea.Msg) (cmd tea.Cmd, status string, done, canceled bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateFocused(msg), "", false, false
	}

	switch keyMsg.String() {
	case "esc":
		return nil, "", false, true
	case "tab", "down":
		f.moveFocus(1)
		return nil, "", false, false
	case "shift+tab", "up":
		f.moveFocus(-1)
		return nil, "", false, false
	case "enter":
		if f.focus < len(f.fields)-1 {
			f.moveFocus(1)
			return nil, "", false, false
		}
		if err := f.validate(); err != nil {
			f.errMsg = err.Error()
			return nil, "", false, false
		}
		f.errMsg = ""
		values := make([]string, len(f.fields))
		for i := range f.fields {
			values[i] = strings.TrimSpace(f.fields[i].input.Value())
		}
		result, err := f.submit(values)
		if err != nil {
			return nil, err.Error(), true, false
		}
		return nil, result, true, false
	}
	return f.updateFocused(msg), "", false, false
}

func (f *form) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *form) moveFocus(delta int) {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

// validate checks field formats only; business rules stay in the store.
func (f *form) validate() error {
	for i := range f.fields {
		value := strings.TrimSpace(f.fields[i].input.Value())
		if value == "" {
			if f.fields[i].optional {
				continue
			}
			return fmt.Errorf("%s is required", f.fields[i].label)
		}
		switch f.fields[i].kind {
		case fieldInt:
			if _, err := strconv.Atoi(value); err != nil {
				return fmt.Errorf("%s must be a whole number", f.fields[i].label)
			}
		case fieldFloat:
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				return fmt.Errorf("%s must be a number", f.fields[i].label)
			}
		case fieldDate:
			if _, err := time.Parse(personnel.HireDateLayout, value); err != nil {
				return fmt.Errorf("%s must use the YYYY-MM-DD format", f.fields[i].label)
			}
		}
	}
	return nil
}

func (f *form) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n\n")
	for i := range f.fields {
		label := f.fields[i].label
		if f.fields[i].optional {
			label += " (leave empty to keep)"
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(f.fields[i].input.View())
		b.WriteString("\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: next/submit · tab: move · esc: back"))
	return b.String()
}

// Typed parse helpers for submit handlers. The form validated formats
// already, so errors here are programmer mistakes.

func intValue(raw string) int {
	v, _ := strconv.Atoi(raw)
	return v
}

func floatValue(raw string) float64 {
	v, _ := strconv.ParseFloat(raw, 64)
	return v
}

func dateValue(raw string) time.Time {
	v, _ := time.Parse(personnel.HireDateLayout, raw)
	return v
}
