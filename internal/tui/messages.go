package tui

// NavigateTo switches the active page of the RootModel.
type NavigateTo struct {
	Page string
}

// operationDoneMsg carries the outcome of an access manager call back to the
// form that started it.
type operationDoneMsg struct {
	text    string
	failed  bool
	token   string
	details []string
}

type copiedMsg struct {
	err error
}
