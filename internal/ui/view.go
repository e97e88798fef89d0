package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/patik/inquirer-grouped-checkbox/internal/choice"
	"github.com/patik/inquirer-grouped-checkbox/internal/session"
)

const (
	defaultPageSize  = 10
	checkedGlyph     = "[x]"
	uncheckedGlyph   = "[ ]"
	activeIndicator  = "❯ "
	passiveIndicator = "  "
	separatorRule    = "  ────────"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
}

// View implements tea.Model.
func (m *Model[T]) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.headerLine()})
	if m.sess.Searchable() {
		lines = append(lines, styledLine{text: m.queryLine()})
	}

	switch {
	case m.sess.Status() == session.StatusValidating:
		lines = append(lines, styledLine{text: "Validating…", style: styles.Validating})
	case m.sess.View().Empty():
		msg := "(no entries)"
		if m.sess.Query() != "" {
			msg = fmt.Sprintf("No matches for %q", m.sess.Query())
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	default:
		lines = append(lines, m.itemLines()...)
	}

	if desc := m.activeDescription(); desc != "" {
		lines = append(lines, styledLine{text: desc, style: styles.Description})
	}
	if errMsg := m.sess.Err(); errMsg != "" {
		lines = append(lines, styledLine{text: errMsg, style: styles.Error})
	}
	if m.opts.ShowFooter {
		lines = append(lines, styledLine{text: m.footerLine(), style: styles.Footer})
	}

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		text := line.text
		if m.width > 0 {
			text = truncate.String(text, uint(m.width))
		}
		if line.style != nil {
			text = line.style.Render(text)
		}
		b.WriteString(text)
	}
	return b.String()
}

func (m *Model[T]) headerLine() string {
	stats := m.sess.OverallStats()
	prompt := m.opts.Prompt
	if prompt == "" {
		prompt = "Select options"
	}
	header := prompt
	if styles.Prompt != nil {
		header = styles.Prompt.Render(header)
	}
	counts := fmt.Sprintf(" (%d/%d selected)", stats.Selected, stats.Total)
	if styles.Counts != nil {
		counts = styles.Counts.Render(counts)
	}
	return header + counts
}

func (m *Model[T]) itemLines() []styledLine {
	v := m.sess.View()
	cursor := m.sess.Cursor()
	start, end := m.window(len(v.Items))
	lines := make([]styledLine, 0, end-start)
	for i := start; i < end; i++ {
		it := v.Items[i]
		switch it.Kind {
		case choice.KindHeader:
			lines = append(lines, m.headerItemLine(it, i == cursor))
		case choice.KindChoice:
			lines = append(lines, m.choiceItemLine(it.Choice, i == cursor))
		case choice.KindSeparator:
			lines = append(lines, styledLine{text: separatorRule, style: styles.Separator})
		}
	}
	return lines
}

func (m *Model[T]) headerItemLine(it choice.Item[T], active bool) styledLine {
	stats := m.sess.GroupStats(it.Group)
	label := it.Header.Label
	if it.Header.Icon != "" {
		label = it.Header.Icon + " " + label
	}
	indicator := passiveIndicator
	if active {
		indicator = activeIndicator
	}
	counts := fmt.Sprintf(" (%d/%d)", stats.Selected, stats.Total)
	if styles.GroupCounts != nil {
		counts = styles.GroupCounts.Render(counts)
	}
	style := styles.GroupHeader
	if active {
		style = styles.ActiveItem
	}
	if style != nil {
		label = style.Render(label)
	}
	return styledLine{text: indicator + label + counts}
}

func (m *Model[T]) choiceItemLine(c choice.Normalized[T], active bool) styledLine {
	indicator := passiveIndicator
	if active {
		indicator = activeIndicator
	}
	box := uncheckedGlyph
	boxStyle := styles.Indicator
	if c.Checked {
		box = checkedGlyph
		boxStyle = styles.CheckedIndicator
	}
	if boxStyle != nil {
		box = boxStyle.Render(box)
	}
	name := c.Name
	style := styles.Item
	if c.Disabled {
		style = styles.Disabled
		if c.Reason != "" {
			name += fmt.Sprintf(" (%s)", c.Reason)
		} else {
			name += " (disabled)"
		}
	} else if active {
		style = styles.ActiveItem
	}
	if style != nil {
		name = style.Render(name)
	}
	return styledLine{text: indicator + "  " + box + " " + name}
}

func (m *Model[T]) activeDescription() string {
	v := m.sess.View()
	cur := m.sess.Cursor()
	if cur < 0 || cur >= len(v.Items) {
		return ""
	}
	it := v.Items[cur]
	if it.Kind != choice.KindChoice {
		return ""
	}
	return it.Choice.Description
}

func (m *Model[T]) queryLine() string {
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	q := m.sess.Query()
	if q == "" {
		placeholder := "(type to search)"
		if styles.FilterPlaceholder != nil {
			placeholder = styles.FilterPlaceholder.Render(placeholder)
		}
		return prompt + placeholder
	}
	text := q
	if styles.Filter != nil {
		text = styles.Filter.Render(text)
	}
	return prompt + text + m.renderCaret()
}

// renderCaret draws the block caret that trails the query. The query is
// append-only, so the caret always sits at the end.
func (m *Model[T]) renderCaret() string {
	m.caret.SetChar(" ")
	base := m.caret.TextStyle.Inline(true)
	if m.caret.Blink {
		return base.Render(" ")
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Inline(true)).Blink(false).Render(" ")
	}
	return base.Reverse(true).Render(" ")
}

func (m *Model[T]) footerLine() string {
	parts := make([]string, 0, 10)
	for _, b := range m.keys.helpOrder() {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

// maxVisibleRows returns how many flat entries fit in the item area.
func (m *Model[T]) maxVisibleRows() int {
	size := m.opts.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	if m.height > 0 {
		// Reserve rows for the header, query, description, error, and footer.
		budget := m.height - 5
		if budget > 0 && budget < size {
			size = budget
		}
	}
	if size < 1 {
		size = 1
	}
	return size
}

// window clamps the viewport to the visible row budget.
func (m *Model[T]) window(total int) (int, int) {
	size := m.maxVisibleRows()
	if total <= size {
		return 0, total
	}
	start := m.offset
	if start < 0 {
		start = 0
	}
	if start+size > total {
		start = total - size
	}
	return start, start + size
}

// ensureCursorVisible adjusts the viewport offset so the cursor stays inside
// the window.
func (m *Model[T]) ensureCursorVisible() {
	total := len(m.sess.View().Items)
	cursor := m.sess.Cursor()
	if total == 0 || cursor < 0 {
		m.offset = 0
		return
	}
	size := m.maxVisibleRows()
	maxOffset := total - size
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
	if cursor < m.offset {
		m.offset = cursor
	}
	if upper := m.offset + size - 1; cursor > upper {
		m.offset = cursor - size + 1
		if m.offset > maxOffset {
			m.offset = maxOffset
		}
		if m.offset < 0 {
			m.offset = 0
		}
	}
}
