// Package browser implements the full-screen interactive command reference.
//
// The model owns a state.ViewState and only changes it through the state
// transitions. Every change re-runs the filter and render engines and the
// painter turns the resulting render.Tree into terminal output. Copy
// feedback (toast and card checkmark) is driven by tea.Tick with generation
// counters, so a repeated copy restarts the timers and stale ticks are
// ignored.
package browser
