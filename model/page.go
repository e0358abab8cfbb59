// /home/krylon/go/src/github.com/blicero/camdash/model/page.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-11 10:31:18 krylon>

package model

import "fmt"

// PageSizes are the numbers of rows per page a user may choose from.
var PageSizes = []int{10, 20}

// DefaultPageSize is the number of rows per page we start out with.
const DefaultPageSize = 10

// ValidPageSize returns true if n is one of the PageSizes.
func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}

	return false
} // func ValidPageSize(n int) bool

// Page describes one page of a filtered list of Cameras.
type Page struct {
	Total   int // Number of items after filtering
	PerPage int
	Current int // 1-based
	Count   int // Number of pages, 0 if Total is 0
}

// Paginate computes the Page for the given numbers. A non-positive perPage
// is replaced by DefaultPageSize, current is not clamped.
func Paginate(total, perPage, current int) Page {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}

	var p = Page{
		Total:   total,
		PerPage: perPage,
		Current: current,
	}

	if total > 0 {
		p.Count = (total + perPage - 1) / perPage
	}

	return p
} // func Paginate(total, perPage, current int) Page

// Offset returns the index of the first item on the page.
func (p Page) Offset() int {
	if p.Current < 1 {
		return 0
	}
	return (p.Current - 1) * p.PerPage
} // func (p Page) Offset() int

// Start returns the 1-based position of the first item on the page,
// or 0 if there are no items.
func (p Page) Start() int {
	if p.Total == 0 {
		return 0
	}
	return p.Offset() + 1
} // func (p Page) Start() int

// End returns the 1-based position of the last item on the page,
// or 0 if there are no items.
func (p Page) End() int {
	if p.Total == 0 {
		return 0
	}
	return min(p.Offset()+p.PerPage, p.Total)
} // func (p Page) End() int

// Range returns the range of items on the page, e.g. "21-25".
func (p Page) Range() string {
	if p.Total == 0 {
		return "0-0"
	}

	return fmt.Sprintf("%d-%d", p.Start(), p.End())
} // func (p Page) Range() string

// Label returns the text for the pagination footer, e.g. "21-25 of 25".
func (p Page) Label() string {
	return fmt.Sprintf("%s of %d", p.Range(), p.Total)
} // func (p Page) Label() string

// HasPrev returns true if there is a page before the current one. It governs
// the "first" and "previous" controls.
func (p Page) HasPrev() bool {
	return p.Current > 1
} // func (p Page) HasPrev() bool

// HasNext returns true if there is a page after the current one. It governs
// the "next" and "last" controls.
func (p Page) HasNext() bool {
	return p.Count > 0 && p.Current < p.Count
} // func (p Page) HasNext() bool

// Clamp forces n into the range [1, Count]. It never returns less than 1,
// even if there are no pages at all.
func (p Page) Clamp(n int) int {
	if n > p.Count {
		n = p.Count
	}
	if n < 1 {
		n = 1
	}
	return n
} // func (p Page) Clamp(n int) int

// Slice returns the part of items that is visible on the page.
func Slice[T any](items []T, p Page) []T {
	var (
		lo = p.Offset()
		hi = lo + p.PerPage
	)

	if lo >= len(items) {
		return []T{}
	} else if hi > len(items) {
		hi = len(items)
	}

	return items[lo:hi]
} // func Slice[T any](items []T, p Page) []T
