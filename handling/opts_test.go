package handling

import (
	"net/http/httptest"
	"testing"

	"ollacart_server/structs"

	"github.com/stretchr/testify/assert"
)

func TestParseProductSearchRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want structs.ProductSearchRequest
	}{
		{
			name: "defaults",
			url:  "/products",
			want: structs.ProductSearchRequest{},
		},
		{
			name: "purchased",
			url:  "/products?purchased=true",
			want: structs.ProductSearchRequest{Purchased: true},
		},
		{
			name: "shared by user",
			url:  "/products?shared=true&user_id=user_2",
			want: structs.ProductSearchRequest{Shared: true, UserID: "user_2"},
		},
		{
			name: "social feed with limit",
			url:  "/products?social=true&user_ids=a,%20b,,c&limit=10",
			want: structs.ProductSearchRequest{Social: true, UserIDs: []string{"a", "b", "c"}, Limit: 10},
		},
		{
			name: "limit with offset",
			url:  "/products?limit=20&offset=40",
			want: structs.ProductSearchRequest{Limit: 20, Offset: 40},
		},
		{
			name: "garbage limit and offset ignored",
			url:  "/products?limit=-3&offset=-1",
			want: structs.ProductSearchRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest("GET", tt.url, nil)
			assert.Equal(t, tt.want, ParseProductSearchRequest(r))
		})
	}
}

func TestParseDays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 30, ParseDays(httptest.NewRequest("GET", "/analytics", nil)))
	assert.Equal(t, 7, ParseDays(httptest.NewRequest("GET", "/analytics?days=7", nil)))
	assert.Equal(t, 30, ParseDays(httptest.NewRequest("GET", "/analytics?days=0", nil)))
	assert.Equal(t, 30, ParseDays(httptest.NewRequest("GET", "/analytics?days=soon", nil)))
}
