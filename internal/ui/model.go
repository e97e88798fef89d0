package ui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/patik/inquirer-grouped-checkbox/internal/choice"
	"github.com/patik/inquirer-grouped-checkbox/internal/logging/events"
	"github.com/patik/inquirer-grouped-checkbox/internal/session"
	"github.com/patik/inquirer-grouped-checkbox/internal/theme"
)

var styles = theme.Default()

// Validator inspects the final selection during submission. A nil error
// accepts the submission; any other error is shown inline and the prompt
// resumes.
type Validator[T comparable] func(session.Results[T]) error

// Options configures a prompt model.
type Options[T comparable] struct {
	Prompt     string
	Groups     []choice.Group[T]
	Search     bool
	PageSize   int
	Required   bool
	Validate   Validator[T]
	ShowFooter bool
}

// validatedMsg reports the outcome of an asynchronous validation run.
type validatedMsg struct{ err error }

// Model implements the Bubble Tea model driving one prompt session.
type Model[T comparable] struct {
	sess      *session.Session[T]
	keys      KeyMap
	opts      Options[T]
	caret     cursor.Model
	width     int
	height    int
	offset    int
	results   session.Results[T]
	done      bool
	abandoned bool
}

// NewModel builds the prompt model, normalizing the configured groups.
func NewModel[T comparable](opts Options[T]) (*Model[T], error) {
	sess, err := session.New(opts.Groups, session.Options{
		Required:   opts.Required,
		Searchable: opts.Search,
	})
	if err != nil {
		return nil, err
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	return &Model[T]{
		sess:  sess,
		keys:  DefaultKeyMap(opts.Search),
		opts:  opts,
		caret: c,
	}, nil
}

// Init is part of the tea.Model interface.
func (m *Model[T]) Init() tea.Cmd {
	return m.caret.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil
	case validatedMsg:
		return m, m.finishValidation(msg.err)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.caret, cmd = m.caret.Update(msg)
	return m, cmd
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.abandoned = true
		events.Prompt.Abandoned()
		return m, tea.Quit
	}
	// A pending validation blocks every other input.
	if m.sess.Status() != session.StatusIdle {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()
	case key.Matches(msg, m.keys.Up):
		m.sess.Apply(session.MoveUp{})
		events.Cursor.Move(m.sess.Cursor())
	case key.Matches(msg, m.keys.Down):
		m.sess.Apply(session.MoveDown{})
		events.Cursor.Move(m.sess.Cursor())
	case key.Matches(msg, m.keys.Home):
		m.sess.Apply(session.Home{})
		events.Cursor.Move(m.sess.Cursor())
	case key.Matches(msg, m.keys.End):
		m.sess.Apply(session.End{})
		events.Cursor.Move(m.sess.Cursor())
	case key.Matches(msg, m.keys.PageUp):
		m.sess.Apply(session.PageUp{Count: m.maxVisibleRows()})
		events.Cursor.Move(m.sess.Cursor())
	case key.Matches(msg, m.keys.PageDown):
		m.sess.Apply(session.PageDown{Count: m.maxVisibleRows()})
		events.Cursor.Move(m.sess.Cursor())
	case key.Matches(msg, m.keys.NextGroup):
		m.sess.Apply(session.NextGroup{})
		events.Cursor.GroupJump(m.sess.Cursor(), m.currentGroupKey())
	case key.Matches(msg, m.keys.PrevGroup):
		m.sess.Apply(session.PrevGroup{})
		events.Cursor.GroupJump(m.sess.Cursor(), m.currentGroupKey())
	case key.Matches(msg, m.keys.Toggle):
		m.sess.Apply(session.ToggleCurrent{})
		stats := m.sess.OverallStats()
		events.Selection.Toggle(m.currentGroupKey(), stats.Selected, stats.Total)
	case key.Matches(msg, m.keys.GroupToggle):
		m.sess.Apply(session.GroupToggleAll{})
		events.Selection.GroupToggleAll(m.currentGroupKey())
	case key.Matches(msg, m.keys.GroupInvert):
		m.sess.Apply(session.GroupInvert{})
		events.Selection.GroupInvert(m.currentGroupKey())
	case key.Matches(msg, m.keys.GlobalToggle):
		m.sess.Apply(session.GlobalToggleAll{})
		events.Selection.GlobalToggleAll()
	case key.Matches(msg, m.keys.GlobalInvert):
		m.sess.Apply(session.GlobalInvert{})
		events.Selection.GlobalInvert()
	case key.Matches(msg, m.keys.ClearQuery):
		if m.sess.ResetQuery() {
			events.Filter.Cleared()
		}
	default:
		m.handleQueryKey(msg)
		if cmd := m.maybeQuit(); cmd != nil {
			return m, cmd
		}
	}
	m.ensureCursorVisible()
	return m, nil
}

// handleQueryKey routes the remaining keys into the query when search is
// enabled. Escape clears the query first and abandons only when it is already
// empty.
func (m *Model[T]) handleQueryKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEsc:
		if m.sess.ResetQuery() {
			events.Filter.Cleared()
			return
		}
		m.abandoned = true
		events.Prompt.Abandoned()
	case tea.KeyBackspace, tea.KeyCtrlH:
		m.sess.Apply(session.DeleteQueryRune{})
		events.Filter.Backspace(m.sess.Query(), len(m.sess.View().Items))
	case tea.KeyRunes:
		if msg.Alt {
			return
		}
		for _, r := range msg.Runes {
			m.sess.Apply(session.AppendQuery{Rune: r})
		}
		events.Filter.Append(m.sess.Query(), len(m.sess.View().Items))
	}
}

func (m *Model[T]) submit() tea.Cmd {
	m.sess.Apply(session.Submit{})
	switch m.sess.Status() {
	case session.StatusIdle:
		events.Prompt.Rejected(m.sess.Err())
		return nil
	case session.StatusValidating:
		stats := m.sess.OverallStats()
		events.Prompt.Submit(stats.Selected, stats.Total)
		if m.opts.Validate == nil {
			return m.finishValidation(nil)
		}
		validate := m.opts.Validate
		results := m.sess.Results()
		return func() tea.Msg {
			return validatedMsg{err: validate(results)}
		}
	}
	return nil
}

func (m *Model[T]) finishValidation(err error) tea.Cmd {
	m.sess.FinishValidation(err)
	if err != nil {
		events.Prompt.ValidationFailed(m.sess.Err())
		return nil
	}
	m.results = m.sess.Results()
	m.done = true
	events.Prompt.Done(len(m.results))
	return tea.Quit
}

// Done reports whether the prompt completed with a submission.
func (m *Model[T]) Done() bool { return m.done }

// Abandoned reports whether the prompt was cancelled by the operator.
func (m *Model[T]) Abandoned() bool { return m.abandoned }

// FinalResults returns the submitted mapping; valid only when Done.
func (m *Model[T]) FinalResults() session.Results[T] { return m.results }

func (m *Model[T]) currentGroupKey() string {
	v := m.sess.View()
	cur := m.sess.Cursor()
	if cur >= 0 && cur < len(v.Items) {
		return v.Items[cur].Group
	}
	return ""
}

func (m *Model[T]) maybeQuit() tea.Cmd {
	if m.abandoned {
		return tea.Quit
	}
	return nil
}
