// Package ui contains the Bubble Tea program that hosts a grouped checkbox
// prompt. The package is deliberately thin: it translates key presses into
// abstract session events, forwards them to internal/session, and renders
// whatever view the session derives.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Key messages are resolved against the KeyMap; everything that is not a
//     bound action falls through to the query handler when search is enabled.
//   - Each action becomes a session.Event applied through Session.Apply, so
//     the full navigation/filter/selection semantics live outside this
//     package and are testable without a terminal.
//
// Submission:
//   - Enter starts a submit. A configured validator runs asynchronously via a
//     tea.Cmd; while it is pending the session sits in StatusValidating and
//     every other input is dropped. The validatedMsg result either completes
//     the prompt or surfaces the validator's message inline.
//
// Rendering stays at the data level the session exposes: checked flags,
// disabled reasons, per-group and overall counts, the active query, and the
// no-match state.
package ui
