// Package view provides the rendering components for the taskmemo TUI.
//
// Views are responsible for rendering state to strings. Apart from
// [TodoListView], which keeps a render cache, they do not hold state
// themselves: state is passed in on every call.
//
// # Main Types
//
//   - [CounterView]: The counter heading, the Increment button, and the
//     memoized calculation result
//   - [TodoListView]: The todo entries, re-rendered only when the collection
//     identity changes
//   - [TaskFormView]: The custom task input and the Submit button
//   - [AlertView]: The blocking "task too short" modal
//   - [HelpBarView]: Key hints for the current input mode
//   - [StatsView]: Render and calculation counters (tui.show_stats)
//
// # Render Skipping
//
// [TodoListView] wraps its renderer in a [memo.Slot] keyed on
// [state.Identity]. Rendering the same collection twice returns the cached
// string; [TodoListView.Renders] counts only real renders. Callers must call
// [TodoListView.Invalidate] when the styles change, because the cached string
// embeds them.
//
// # Basic Usage
//
//	list := view.NewTodoListView(logger, m)
//	out := list.Render(st.Todos(), styles.Active())
package view
