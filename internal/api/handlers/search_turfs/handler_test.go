package search_turfs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfService/internal/service/turfs/models"
)

type serviceMock struct {
	searchFn func(ctx context.Context, req *models.SearchTurfsRequest) (*models.TurfListResponse, error)
}

func (m *serviceMock) Search(ctx context.Context, req *models.SearchTurfsRequest) (*models.TurfListResponse, error) {
	return m.searchFn(ctx, req)
}

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

func TestHandle_ParsesQueryParams(t *testing.T) {
	var captured *models.SearchTurfsRequest
	svc := &serviceMock{
		searchFn: func(ctx context.Context, req *models.SearchTurfsRequest) (*models.TurfListResponse, error) {
			captured = req
			return &models.TurfListResponse{
				Turfs: []models.TurfResponse{{ID: 1, Name: "Green Field Arena"}},
			}, nil
		},
	}

	handler := NewHandler(svc, &noopLogger{})
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/turfs?q=arena&city=Mumbai&categoryId=2&minPrice=500&maxPrice=1500&sortBy=price_low&limit=10&offset=20", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "arena", captured.Query)
	assert.Equal(t, "Mumbai", captured.City)
	require.NotNil(t, captured.CategoryID)
	assert.Equal(t, int64(2), *captured.CategoryID)
	require.NotNil(t, captured.MinPrice)
	assert.Equal(t, 500.0, *captured.MinPrice)
	require.NotNil(t, captured.MaxPrice)
	assert.Equal(t, 1500.0, *captured.MaxPrice)
	assert.Equal(t, "price_low", captured.SortBy)
	assert.Equal(t, uint64(10), captured.Limit)
	assert.Equal(t, uint64(20), captured.Offset)

	var resp models.TurfListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Turfs, 1)
	assert.Equal(t, "Green Field Arena", resp.Turfs[0].Name)
}

func TestHandle_InvalidQueryParams(t *testing.T) {
	handler := NewHandler(&serviceMock{}, &noopLogger{})

	urls := []string{
		"/api/v1/turfs?categoryId=abc",
		"/api/v1/turfs?categoryId=0",
		"/api/v1/turfs?minPrice=cheap",
		"/api/v1/turfs?limit=-1",
	}

	for _, u := range urls {
		req := httptest.NewRequest(http.MethodGet, u, nil)
		rec := httptest.NewRecorder()

		handler.Handle(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, u)
	}
}

func TestHandle_ServiceError(t *testing.T) {
	svc := &serviceMock{
		searchFn: func(ctx context.Context, req *models.SearchTurfsRequest) (*models.TurfListResponse, error) {
			return nil, assert.AnError
		},
	}

	handler := NewHandler(svc, &noopLogger{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/turfs", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
