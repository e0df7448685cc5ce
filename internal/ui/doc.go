// Package ui contains the Bubble Tea program that drives a multiselect
// widget in the terminal. The Model owns message orchestration; the widget
// owns every selection rule and the helpers here only translate between the
// two.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled by a
//     focused function (keys, mouse, resize, reloads, command results).
//   - Key and mouse handlers call the widget's router methods (ClickChoice,
//     ClickItem, ClickGroup, SearchInput and friends). Whole-widget methods
//     such as checkAll go through the internal/ui/command bus, which invokes
//     them by name on the widget registry.
//   - After every change the model rebuilds its cursor entries from the
//     widget's popup so the view always reflects the widget's own state.
//
// State ownership:
//   - The cursor, scroll offset and search text editing live in
//     internal/ui/state.Level.
//   - Checked state, visibility and summaries live in the widget and are
//     mirrored onto the element after every change.
//
// Backend interactions:
//   - With --watch, a backend.Watcher streams reloads of the option and
//     settings files; the dispatcher applies them to the element and widget
//     and the model resyncs its entries.
package ui
