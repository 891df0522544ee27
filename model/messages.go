package model

// DispatchDoneMsg carries a finished dispatch back to the update loop.
// Seq matches the value passed to DispatchCmd.
type DispatchDoneMsg struct {
	Seq    int
	Result Result
	Err    error
}

// MarkdownRenderedMsg is a response rendered for a given viewport width.
type MarkdownRenderedMsg struct {
	MessageID int
	Width     int
	Rendered  string
}

type ClipboardCopiedMsg struct {
	What string
	Err  error
}

// FlashTickMsg clears the status flash numbered Seq.
type FlashTickMsg struct {
	Seq int
}
