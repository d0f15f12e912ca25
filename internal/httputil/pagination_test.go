package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	require.NoError(t, err)
	c.Request = req
	return c
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantPage Page
		wantErr  bool
	}{
		{"defaults", "", Page{Number: 1, PerPage: 20}, false},
		{"explicit values", "page=3&per_page=50", Page{Number: 3, PerPage: 50}, false},
		{"per_page at max", "per_page=100", Page{Number: 1, PerPage: 100}, false},
		{"page zero", "page=0", Page{}, true},
		{"negative page", "page=-1", Page{}, true},
		{"per_page above max", "per_page=101", Page{}, true},
		{"non-numeric page", "page=abc", Page{}, true},
		{"non-numeric per_page", "per_page=abc", Page{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, tt.query)
			page, err := ParsePage(c, 20, 100)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantPage, page)
		})
	}
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, Page{Number: 1, PerPage: 20}.Offset())
	assert.Equal(t, 40, Page{Number: 3, PerPage: 20}.Offset())
}

func TestPageTotalPages(t *testing.T) {
	page := Page{Number: 1, PerPage: 20}
	assert.Equal(t, 0, page.TotalPages(0))
	assert.Equal(t, 1, page.TotalPages(20))
	assert.Equal(t, 2, page.TotalPages(21))
	assert.Equal(t, 5, page.TotalPages(100))
}
