package links

import "time"

type Link struct {
	Code        string
	URL         string
	Clicks      int64
	CreatedAt   time.Time
	LastClicked *time.Time
}

type CreateLinkInput struct {
	URL        string
	CustomCode string
}

// Redirect is the outcome of resolving a code: the updated record plus the
// target the client should be sent to (scheme-completed when needed).
type Redirect struct {
	Link   *Link
	Target string
}
