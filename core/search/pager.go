// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package search

// Load-more defaults for listing pages.
const (
	DefaultPageSize = 6
)

// Pager implements load-more pagination: an initial window of items that
// grows by a fixed step each time the visitor asks for more. Changing the
// filter resets the window, so a narrowed list starts short again.
type Pager struct {
	step    int
	visible int
}

// NewPager returns a pager showing size items initially and growing by size
// per load. A non-positive size applies DefaultPageSize.
func NewPager(size int) *Pager {
	if size <= 0 {
		size = DefaultPageSize
	}

	return &Pager{
		step:    size,
		visible: size,
	}
}

// Visible returns how many of total items are currently shown.
func (p *Pager) Visible(total int) int {
	if p.visible > total {
		return total
	}

	return p.visible
}

// HasMore reports whether more items remain beyond the current window.
func (p *Pager) HasMore(total int) bool {
	return total > p.visible
}

// More grows the window by one step.
func (p *Pager) More() {
	p.visible += p.step
}

// Reset shrinks the window back to the initial size.
func (p *Pager) Reset() {
	p.visible = p.step
}

// Window slices items down to the current window.
func Window[T any](p *Pager, items []T) []T {
	return items[:p.Visible(len(items))]
}
