package ui

// Default layout dimensions.
const (
	// DefaultWidth is used until the first window size message arrives.
	DefaultWidth = 80

	// DefaultHeight is used until the first window size message arrives.
	DefaultHeight = 24

	// ChromeHeight is the number of rows taken by the header and help footer.
	ChromeHeight = 4
)
