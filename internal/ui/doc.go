// Package ui contains the Bubble Tea program that edits the style of one text
// element. The Model type focuses on message orchestration, while dedicated
// helpers own navigation, input, rendering and command application.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update forwards key presses to the open prompt form, if any. Other
//     messages are routed through a typed handler registry so each tea.Msg is
//     handled by a focused function.
//   - Menu actions run on the command bus (internal/ui/command) and only
//     describe an intent: a control command, a prompt request or an export.
//     The handlers apply intents through control.Controller, so every style
//     mutation happens on the update goroutine, one at a time.
//   - After each command the open menu levels are reloaded, which keeps the
//     toggle and radio marks in step with the style model.
//
// State ownership:
//   - Menu level state lives in internal/ui/state.Level, which tracks items,
//     filtering and viewport calculations.
//   - The style model belongs to the canvas; the controller holds a pointer to
//     it and the view reads snapshots for the canvas panel.
//   - The installed font families live in a state.FontStore, kept current by
//     the dispatcher.
//
// Backend interactions:
//   - A backend.Watcher rescans installed fonts. Update waits for its events
//     and hands them to applyBackendEvent, which rebuilds the font group
//     submenus and closes any group that no longer exists.
package ui
