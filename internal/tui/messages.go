package tui

// Status line messages.
type statusMsg struct {
	text    string
	isError bool
}

type clearStatusMsg struct{}

// Export results.
type exportDoneMsg struct {
	err  error
	path string
}
