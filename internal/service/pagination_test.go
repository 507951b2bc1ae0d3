// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := map[string]int{
		"":     1,
		"1":    1,
		"2":    2,
		"0":    1,
		"-3":   1,
		"abc":  1,
		"2.5":  1,
		"1000": 1000,
	}
	for raw, want := range tests {
		assert.Equal(t, want, ParsePage(raw), "ParsePage(%q)", raw)
	}
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name      string
		number    int
		total     int64
		wantPages int
		wantPrev  bool
		wantNext  bool
	}{
		{"empty listing", 1, 0, 0, false, false},
		{"single partial page", 1, 3, 1, false, false},
		{"exact fit", 1, 5, 1, false, false},
		{"first of three", 1, 12, 3, false, true},
		{"middle", 2, 12, 3, true, true},
		{"last", 3, 12, 3, true, false},
		{"past the end", 4, 12, 3, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPage([]int{}, tt.number, BlogPageSize, tt.total)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantPrev, p.HasPrev)
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.number, p.Number, "page number is never clamped")
			assert.Equal(t, tt.number-1, p.PrevNumber())
			assert.Equal(t, tt.number+1, p.NextNumber())
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		number int
		want   int64
		wantOK bool
	}{
		{1, 0, true},
		{2, 5, true},
		{10, 45, true},
		{0, 0, false},
		{3689348814741910324, 0, false},
		{math.MaxInt, 0, false},
	}
	for _, tt := range tests {
		got, ok := offset(tt.number, 5)
		assert.Equal(t, tt.want, got, "offset(%d, 5)", tt.number)
		assert.Equal(t, tt.wantOK, ok, "offset(%d, 5)", tt.number)
	}
}

func TestNextNumberSaturates(t *testing.T) {
	p := newPage([]int{}, math.MaxInt, BlogPageSize, 12)
	assert.Equal(t, math.MaxInt, p.NextNumber())
	assert.False(t, p.HasNext)
}
