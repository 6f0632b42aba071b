package relay

import "context"

// Submission carries the shipper's form fields plus the derived order
// summary. The relay only reports success or failure; its wire format is
// opaque to the rest of the system.
type Submission struct {
	Fields   map[string]string // shipper form fields
	Summary  string            // human-readable line items
	Total    string            // formatted total
	Currency string
}

type Submitter interface {
	Submit(ctx context.Context, s Submission) error
}
