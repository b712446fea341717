package config

// Layout constants.
const (
	// MinContentWidth is the narrowest width the session screen lays out for.
	MinContentWidth = 40

	// CompactModeThreshold drops the description pane below this width.
	CompactModeThreshold = 60

	// ProgressWidth is the preferred width of the session progress bar.
	ProgressWidth = 40

	// MinProgressWidth is the minimum width of the session progress bar.
	MinProgressWidth = 10
)

// Display limits.
const (
	// MaxVisibleHistory limits rows shown on the history screen.
	MaxVisibleHistory = 15

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)
