package events

import "github.com/patik/inquirer-grouped-checkbox/internal/logging"

type PromptTracer struct{}

type FilterTracer struct{}

type CursorTracer struct{}

type SelectionTracer struct{}

var (
	Prompt    = PromptTracer{}
	Filter    = FilterTracer{}
	Cursor    = CursorTracer{}
	Selection = SelectionTracer{}
)

func (PromptTracer) Start(payload interface{}) {
	logging.Trace("prompt.start", payload)
}

func (PromptTracer) Submit(selected, total int) {
	logging.Trace("prompt.submit", map[string]interface{}{"selected": selected, "total": total})
}

func (PromptTracer) Rejected(message string) {
	logging.Trace("prompt.rejected", map[string]interface{}{"message": message})
}

func (PromptTracer) ValidationFailed(message string) {
	logging.Trace("prompt.validation-failed", map[string]interface{}{"message": message})
}

func (PromptTracer) Done(groups int) {
	logging.Trace("prompt.done", map[string]interface{}{"groups": groups})
}

func (PromptTracer) Abandoned() {
	logging.Trace("prompt.abandoned", nil)
}

func (FilterTracer) Append(query string, matches int) {
	logging.Trace("filter.append", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) Backspace(query string, matches int) {
	logging.Trace("filter.backspace", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (CursorTracer) Move(cursor int) {
	logging.Trace("cursor.move", map[string]interface{}{"cursor": cursor})
}

func (CursorTracer) GroupJump(cursor int, group string) {
	logging.Trace("cursor.group-jump", map[string]interface{}{"cursor": cursor, "group": group})
}

func (SelectionTracer) Toggle(group string, selected, total int) {
	logging.Trace("selection.toggle", map[string]interface{}{"group": group, "selected": selected, "total": total})
}

func (SelectionTracer) GroupToggleAll(group string) {
	logging.Trace("selection.group-toggle-all", map[string]interface{}{"group": group})
}

func (SelectionTracer) GroupInvert(group string) {
	logging.Trace("selection.group-invert", map[string]interface{}{"group": group})
}

func (SelectionTracer) GlobalToggleAll() {
	logging.Trace("selection.global-toggle-all", nil)
}

func (SelectionTracer) GlobalInvert() {
	logging.Trace("selection.global-invert", nil)
}
