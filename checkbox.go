// Package checkbox implements an interactive, grouped, multi-select prompt
// for terminals: labelled groups of choices that an operator can navigate,
// filter by text, and toggle at the item, group, or global level. The prompt
// resolves to a mapping from each group key to the values selected in it.
package checkbox

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/patik/inquirer-grouped-checkbox/internal/choice"
	"github.com/patik/inquirer-grouped-checkbox/internal/session"
	"github.com/patik/inquirer-grouped-checkbox/internal/ui"
)

// Choice is a single selectable entry. Zero values for the display fields
// fall back to defaults derived from Value.
type Choice[T comparable] = choice.Choice[T]

// Group is an ordered, labelled collection of choices with a unique key.
type Group[T comparable] = choice.Group[T]

// Results maps every declared group key to the values selected in that
// group, in the group's original choice order.
type Results[T comparable] = session.Results[T]

// Validator inspects a submission before it is accepted. Returning an error
// keeps the prompt open and shows the message inline.
type Validator[T comparable] = ui.Validator[T]

// ErrAbandoned is returned by Run when the operator cancels the prompt.
var ErrAbandoned = errors.New("prompt abandoned")

// Config describes one prompt invocation.
type Config[T comparable] struct {
	// Prompt is the heading shown above the list.
	Prompt string
	// Groups supplies the selectable content. Group keys must be unique.
	Groups []Group[T]
	// Search enables the live text filter. While it is active, plain letter
	// keys feed the query and the bulk shortcuts move to modifier chords.
	Search bool
	// PageSize caps how many list rows are visible at once. Zero uses a
	// sensible default.
	PageSize int
	// Required refuses submission until at least one choice is checked.
	Required bool
	// Validate, when set, runs against the candidate results on submit.
	Validate Validator[T]
	// ShowFooter adds a key-hint row beneath the list.
	ShowFooter bool
}

// Run executes the prompt on the current terminal and blocks until the
// operator submits or cancels. Cancellation returns ErrAbandoned.
func Run[T comparable](cfg Config[T], opts ...tea.ProgramOption) (Results[T], error) {
	model, err := ui.NewModel(ui.Options[T]{
		Prompt:     cfg.Prompt,
		Groups:     cfg.Groups,
		Search:     cfg.Search,
		PageSize:   cfg.PageSize,
		Required:   cfg.Required,
		Validate:   cfg.Validate,
		ShowFooter: cfg.ShowFooter,
	})
	if err != nil {
		return nil, fmt.Errorf("configure prompt: %w", err)
	}
	program := tea.NewProgram(model, opts...)
	final, err := program.Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(*ui.Model[T])
	if !ok || !m.Done() {
		return nil, ErrAbandoned
	}
	return m.FinalResults(), nil
}
