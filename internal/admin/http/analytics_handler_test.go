package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/gallery/internal/admin/domain"
	catalogDomain "github.com/artfolio/gallery/internal/catalog/domain"
)

// MockAnalyticsUseCase is a mock implementation of usecase.AnalyticsUseCase
type MockAnalyticsUseCase struct {
	mock.Mock
}

func (m *MockAnalyticsUseCase) Overview(ctx context.Context) (*domain.Analytics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Analytics), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestContext(t *testing.T, method, path string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, nil)
	return c, w
}

func TestAnalyticsHandler_OverviewHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockUseCase := &MockAnalyticsUseCase{}
		handler := NewAnalyticsHandler(mockUseCase, testLogger())

		mockUseCase.On("Overview", mock.Anything).Return(&domain.Analytics{
			TotalUsers:      120,
			PendingUsers:    8,
			ApprovedUsers:   100,
			TotalDesigns:    45,
			FeaturedDesigns: 6,
			TotalViews:      1234,
			TotalLikes:      321,
			TopCategories: []domain.CategoryCount{
				{Category: "lehenga", Count: 20},
			},
			RecentDesigns: []*catalogDomain.Design{
				{ID: uuid.Must(uuid.NewV7()), Title: "Banarasi Silk Lehenga"},
			},
		}, nil)

		c, w := createTestContext(t, http.MethodGet, "/v1/admin/analytics")
		handler.OverviewHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp AnalyticsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 120, resp.TotalUsers)
		assert.Equal(t, 8, resp.PendingUsers)
		assert.Equal(t, int64(1234), resp.TotalViews)
		require.Len(t, resp.TopCategories, 1)
		assert.Equal(t, "lehenga", resp.TopCategories[0].Category)
		require.Len(t, resp.RecentDesigns, 1)
	})

	t.Run("Failure_InternalError", func(t *testing.T) {
		mockUseCase := &MockAnalyticsUseCase{}
		handler := NewAnalyticsHandler(mockUseCase, testLogger())

		mockUseCase.On("Overview", mock.Anything).Return(nil, errors.New("connection reset"))

		c, w := createTestContext(t, http.MethodGet, "/v1/admin/analytics")
		handler.OverviewHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
