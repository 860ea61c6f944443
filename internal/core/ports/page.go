package ports

// Page size limits applied by NewPage.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps a page request to sane values.
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

// Offset is the number of rows to skip for this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// PagedResult is one page of T plus the total number of matching rows.
type PagedResult[T any] struct {
	Items []T
	Total int64
	Page  Page
}

// TotalPages is zero for an empty result.
func (r PagedResult[T]) TotalPages() int {
	if r.Page.Size == 0 {
		return 0
	}
	return int((r.Total + int64(r.Page.Size) - 1) / int64(r.Page.Size))
}
