package tui

// SubmitResultMsg reports that a submission started with ctrl+s has finished.
// Err is nil on success; the controller's snapshot carries the user-facing
// message either way.
type SubmitResultMsg struct {
	Err error
}
