package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name     string
		page     int
		pageSize int
		total    int
		want     Pagination
	}{
		{name: "defaults", page: 0, pageSize: 0, total: 45, want: Pagination{Page: 1, PageSize: 20, Total: 45, TotalPages: 3}},
		{name: "exact pages", page: 2, pageSize: 10, total: 30, want: Pagination{Page: 2, PageSize: 10, Total: 30, TotalPages: 3}},
		{name: "partial last page", page: 1, pageSize: 10, total: 31, want: Pagination{Page: 1, PageSize: 10, Total: 31, TotalPages: 4}},
		{name: "empty", page: 1, pageSize: 10, total: 0, want: Pagination{Page: 1, PageSize: 10, Total: 0, TotalPages: 0}},
		{name: "negative page clamps", page: -3, pageSize: 5, total: 5, want: Pagination{Page: 1, PageSize: 5, Total: 5, TotalPages: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, NewPagination(tc.page, tc.pageSize, tc.total))
		})
	}
}

func TestOffset(t *testing.T) {
	require.Equal(t, 0, NewPagination(1, 10, 100).Offset())
	require.Equal(t, 40, NewPagination(5, 10, 100).Offset())
}
