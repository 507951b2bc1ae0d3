// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"math"
	"strconv"
)

// BlogPageSize is the number of posts per public blog page.
const BlogPageSize = 5

// ParsePage turns a raw "page" query value into a 1-based page number.
// Missing, non-numeric, zero and negative values all mean page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Page is one window of an ordered listing.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int64
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// PrevNumber returns the previous page number.
func (p Page[T]) PrevNumber() int { return p.Number - 1 }

// NextNumber returns the next page number. It saturates at math.MaxInt.
func (p Page[T]) NextNumber() int {
	if p.Number == math.MaxInt {
		return p.Number
	}
	return p.Number + 1
}

// offset returns the first item index of page number for size. ok is false
// when the index does not fit in an int64.
func offset(number, size int) (off int64, ok bool) {
	if number < 1 || size < 1 {
		return 0, false
	}
	if int64(number-1) > math.MaxInt64/int64(size) {
		return 0, false
	}
	return int64(number-1) * int64(size), true
}

// newPage builds page metadata. Page numbers past the end are kept as-is
// and simply carry no items.
func newPage[T any](items []T, number, size int, total int64) Page[T] {
	totalPages := int((total + int64(size) - 1) / int64(size))
	return Page[T]{
		Items:      items,
		Number:     number,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
		HasPrev:    number > 1,
		HasNext:    number < totalPages,
	}
}
