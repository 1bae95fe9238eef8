package selector

// PageSize is the number of items revealed per infinite-scroll page.
const PageSize = 100

// TotalPages returns ceil(n/size). A non-positive size is treated as PageSize.
func TotalPages(n, size int) int {
	if size <= 0 {
		size = PageSize
	}
	if n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Pager windows a flat list into the first Page*Size items.
type Pager struct {
	Enabled bool
	Page    int
	Size    int
}

// NewPager returns a pager on page 1 with the default page size.
func NewPager(enabled bool) Pager {
	return Pager{Enabled: enabled, Page: 1, Size: PageSize}
}

func (p Pager) size() int {
	if p.Size <= 0 {
		return PageSize
	}
	return p.Size
}

// Window returns the rendered prefix of items. A disabled pager returns the
// whole list.
func (p Pager) Window(items []Item) []Item {
	if !p.Enabled {
		return items
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	end := page * p.size()
	if end > len(items) {
		end = len(items)
	}
	return items[:end]
}

// HasMore reports whether pages remain beyond the current one.
func (p Pager) HasMore(n int) bool {
	return p.Enabled && TotalPages(n, p.size()) > p.Page
}

// Advance moves to the next page when one remains. It returns false when the
// list is exhausted, leaving the pager untouched.
func (p *Pager) Advance(n int) bool {
	if !p.HasMore(n) {
		return false
	}
	p.Page++
	return true
}

// Reset returns to page 1.
func (p *Pager) Reset() {
	p.Page = 1
}
