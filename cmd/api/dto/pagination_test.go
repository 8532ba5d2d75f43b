package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		total    int64
		expected Pagination
	}{
		{
			name: "first of several pages", page: 1, pageSize: 10, total: 35,
			expected: Pagination{CurrentPage: 1, TotalPages: 4, HasNextPage: true, HasPrevPage: false},
		},
		{
			name: "middle page", page: 2, pageSize: 10, total: 35,
			expected: Pagination{CurrentPage: 2, TotalPages: 4, HasNextPage: true, HasPrevPage: true},
		},
		{
			name: "last page", page: 4, pageSize: 10, total: 35,
			expected: Pagination{CurrentPage: 4, TotalPages: 4, HasNextPage: false, HasPrevPage: true},
		},
		{
			name: "total divides evenly", page: 2, pageSize: 10, total: 20,
			expected: Pagination{CurrentPage: 2, TotalPages: 2, HasNextPage: false, HasPrevPage: true},
		},
		{
			name: "empty result set", page: 1, pageSize: 10, total: 0,
			expected: Pagination{CurrentPage: 1, TotalPages: 0, HasNextPage: false, HasPrevPage: false},
		},
		{
			name: "page beyond the end", page: 9, pageSize: 10, total: 35,
			expected: Pagination{CurrentPage: 9, TotalPages: 4, HasNextPage: false, HasPrevPage: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewPagination(tt.page, tt.pageSize, tt.total))
		})
	}
}
