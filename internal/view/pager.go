package view

// Pager tracks a 1-based page over a collection of known length.
type Pager struct {
	size  int
	total int
	page  int
}

func NewPager(size int) Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return Pager{size: size, page: 1}
}

func (p Pager) Size() int  { return p.size }
func (p Pager) Page() int  { return p.page }
func (p Pager) Total() int { return p.total }

// Pages is ceil(total/size). An empty collection has zero pages.
func (p Pager) Pages() int {
	if p.total == 0 {
		return 0
	}
	return (p.total + p.size - 1) / p.size
}

// Bounds returns the half-open index range of the current page.
func (p Pager) Bounds() (lo, hi int) {
	lo = (p.page - 1) * p.size
	if lo > p.total {
		lo = p.total
	}
	hi = lo + p.size
	if hi > p.total {
		hi = p.total
	}
	return lo, hi
}

// Numbers lists the page numbers to offer, 1..Pages().
func (p Pager) Numbers() []int {
	n := make([]int, p.Pages())
	for i := range n {
		n[i] = i + 1
	}
	return n
}

func (p Pager) HasPrev() bool { return p.page > 1 }
func (p Pager) HasNext() bool { return p.page < p.Pages() }

func (p *Pager) Next() { p.Goto(p.page + 1) }
func (p *Pager) Prev() { p.Goto(p.page - 1) }

// Goto moves to page k, clamped to [1, Pages()].
func (p *Pager) Goto(k int) {
	last := max(p.Pages(), 1)
	p.page = min(max(k, 1), last)
}

// Resize records a new collection length and pulls the current page back
// if the collection shrank below it.
func (p *Pager) Resize(total int) {
	p.total = max(total, 0)
	p.Goto(p.page)
}
