package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPager_Pages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{12, 5, 3},
	}

	for _, tt := range tests {
		p := NewPager(tt.size)
		p.Resize(tt.total)
		assert.Equal(t, tt.want, p.Pages(), "total=%d size=%d", tt.total, tt.size)
		assert.Len(t, p.Numbers(), tt.want)
	}
}

func TestPager_Bounds(t *testing.T) {
	p := NewPager(5)
	p.Resize(12)

	lo, hi := p.Bounds()
	assert.Equal(t, [2]int{0, 5}, [2]int{lo, hi})

	p.Goto(3)
	lo, hi = p.Bounds()
	assert.Equal(t, [2]int{10, 12}, [2]int{lo, hi})
}

func TestPager_NavigationClamps(t *testing.T) {
	p := NewPager(5)
	p.Resize(12)

	p.Prev()
	assert.Equal(t, 1, p.Page())
	assert.False(t, p.HasPrev())

	p.Next()
	p.Next()
	p.Next()
	assert.Equal(t, 3, p.Page())
	assert.False(t, p.HasNext())

	p.Goto(-4)
	assert.Equal(t, 1, p.Page())
	p.Goto(99)
	assert.Equal(t, 3, p.Page())
}

func TestPager_ResizeClampsPage(t *testing.T) {
	p := NewPager(5)
	p.Resize(12)
	p.Goto(3)

	p.Resize(6)
	assert.Equal(t, 2, p.Page())

	p.Resize(0)
	assert.Equal(t, 1, p.Page())
	lo, hi := p.Bounds()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)
}

func TestPager_DefaultSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NewPager(0).Size())
}
