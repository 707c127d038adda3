package views

const defaultPageSize = 10

// Paginator tracks a cursor over a list shown one page at a time
type Paginator struct {
	pageSize   int
	pageOffset int
	cursor     int
	total      int
}

// NewPaginator creates a paginator; non-positive sizes use the default
func NewPaginator(pageSize int) *Paginator {
	p := &Paginator{}
	p.SetPageSize(pageSize)
	return p
}

// SetPageSize changes how many entries fit on a page, keeping the cursor
func (p *Paginator) SetPageSize(size int) {
	if size <= 0 {
		size = defaultPageSize
	}
	p.pageSize = size
	p.follow()
}

func (p *Paginator) PageSize() int {
	return p.pageSize
}

// SetTotal sets the number of entries and clamps the cursor
func (p *Paginator) SetTotal(total int) {
	p.total = total
	p.SetCursor(p.cursor)
}

// Cursor returns the absolute cursor position
func (p *Paginator) Cursor() int {
	return p.cursor
}

// SetCursor moves the cursor, clamped to the list
func (p *Paginator) SetCursor(pos int) {
	if pos >= p.total {
		pos = p.total - 1
	}
	if pos < 0 {
		pos = 0
	}
	p.cursor = pos
	p.follow()
}

// CursorUp moves the cursor up by one
func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.SetCursor(p.cursor - 1)
	return true
}

// CursorDown moves the cursor down by one
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.total-1 {
		return false
	}
	p.SetCursor(p.cursor + 1)
	return true
}

// VisibleRange returns the [start, end) indices of the current page
func (p *Paginator) VisibleRange() (start, end int) {
	return p.pageOffset, min(p.pageOffset+p.pageSize, p.total)
}

// TotalPages returns the number of pages, at least one
func (p *Paginator) TotalPages() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + p.pageSize - 1) / p.pageSize
}

// CurrentPage returns the 1-based page number
func (p *Paginator) CurrentPage() int {
	return p.pageOffset/p.pageSize + 1
}

// NextPage moves to the first entry of the next page
func (p *Paginator) NextPage() bool {
	if p.pageOffset+p.pageSize >= p.total {
		return false
	}
	p.SetCursor(p.pageOffset + p.pageSize)
	return true
}

// PrevPage moves to the first entry of the previous page
func (p *Paginator) PrevPage() bool {
	if p.pageOffset == 0 {
		return false
	}
	p.SetCursor(p.pageOffset - p.pageSize)
	return true
}

// Reset moves back to the first entry
func (p *Paginator) Reset() {
	p.cursor = 0
	p.pageOffset = 0
}

// follow keeps the page offset on the page that holds the cursor
func (p *Paginator) follow() {
	p.pageOffset = (p.cursor / p.pageSize) * p.pageSize
}
