package models

const (
	DefaultPageLimit = 9

	// PostCommentsLimit applies when a post's comment thread is requested
	// without a limit, so the whole thread comes back in one page.
	PostCommentsLimit = 1000
)

// Page is a skip/limit window over a listing sorted by a timestamp.
type Page struct {
	StartIndex int
	Limit      int
	Ascending  bool
}
