package domain

// DocumentFilter contains filtering/pagination parameters for document listings.
type DocumentFilter struct {
	// Search matches filenames with ILIKE '%...%'. Empty means no filter.
	Search string
	Limit  int
	Offset int
}

const (
	defaultDocumentLimit = 20
	maxDocumentLimit     = 100
)

// Normalize applies defaults and clamps values.
func (f *DocumentFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultDocumentLimit
	}
	if f.Limit > maxDocumentLimit {
		f.Limit = maxDocumentLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
