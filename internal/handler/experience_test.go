package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/experience-booking/internal/repository"
)

// MockExperienceStore mocks the catalog repository.
type MockExperienceStore struct {
	mock.Mock
}

func (m *MockExperienceStore) List(ctx context.Context) ([]repository.ExperienceRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ExperienceRow), args.Error(1)
}

func (m *MockExperienceStore) GetByID(ctx context.Context, id string) (*repository.ExperienceDetail, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ExperienceDetail), args.Error(1)
}

func (m *MockExperienceStore) Search(ctx context.Context, q repository.ExperienceSearchQuery) ([]repository.ExperienceRow, int64, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]repository.ExperienceRow), args.Get(1).(int64), args.Error(2)
}

func getPath(t *testing.T, h echo.HandlerFunc, target string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	assert.NoError(t, h(c))
	return rec
}

func TestListExperiences(t *testing.T) {
	store := new(MockExperienceStore)
	h := NewCatalogHandler(store)
	store.On("List").Return([]repository.ExperienceRow{
		{ID: "e1", Title: "Desert Safari", Location: "Dubai", Price: 1000},
		{ID: "e2", Title: "Old Town Walk", Location: "Tallinn", Price: 450},
	}, nil)

	res := getPath(t, h.List, "/experiences")
	assert.Equal(t, http.StatusOK, res.Code)

	var rows []repository.ExperienceRow
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)
	assert.Equal(t, "Desert Safari", rows[0].Title)
	// nullable fields serialize as explicit nulls
	assert.Contains(t, res.Body.String(), `"imageUrl":null`)
}

func TestListExperiencesStorageError(t *testing.T) {
	store := new(MockExperienceStore)
	h := NewCatalogHandler(store)
	store.On("List").Return(nil, errors.New("connection refused"))

	res := getPath(t, h.List, "/experiences")
	assert.Equal(t, http.StatusInternalServerError, res.Code)
	// internal detail must not leak to the client
	assert.NotContains(t, res.Body.String(), "connection refused")
}

func TestListExperiencesWithSearchFilters(t *testing.T) {
	store := new(MockExperienceStore)
	h := NewCatalogHandler(store)
	store.On("Search", repository.ExperienceSearchQuery{
		Query: "safari", Location: "dubai", Page: 2, PageSize: 5,
	}).Return([]repository.ExperienceRow{{ID: "e1", Title: "Desert Safari"}}, int64(11), nil)

	res := getPath(t, h.List, "/experiences?q=safari&location=dubai&page=2&page_size=5")
	assert.Equal(t, http.StatusOK, res.Code)

	var body struct {
		Data  []repository.ExperienceRow `json:"data"`
		Total int64                      `json:"total"`
		Page  int                        `json:"page"`
	}
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, int64(11), body.Total)
	assert.Equal(t, 2, body.Page)
	store.AssertNotCalled(t, "List")
}

func TestGetExperienceNotFound(t *testing.T) {
	store := new(MockExperienceStore)
	h := NewCatalogHandler(store)
	store.On("GetByID", "missing").Return(nil, repository.ErrExperienceNotFound)

	res := getPath(t, h.Get, "/experiences/missing", "id", "missing")
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestGetExperienceWithNestedDates(t *testing.T) {
	store := new(MockExperienceStore)
	h := NewCatalogHandler(store)
	store.On("GetByID", "e1").Return(&repository.ExperienceDetail{
		ExperienceRow: repository.ExperienceRow{ID: "e1", Title: "Desert Safari", Price: 1000},
		Dates: []repository.DateDetail{
			{
				ID: "d1", Date: "2026-09-10", IsActive: true,
				Slots: []repository.SlotDetail{
					{ID: "s1", DateID: "d1", StartTime: "09:00", EndTime: "11:00",
						Capacity: 8, BookedCount: 3, IsAvailable: true, AvailableCapacity: 5},
				},
			},
		},
	}, nil)

	res := getPath(t, h.Get, "/experiences/e1", "id", "e1")
	assert.Equal(t, http.StatusOK, res.Code)

	var det repository.ExperienceDetail
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &det))
	assert.Len(t, det.Dates, 1)
	assert.Len(t, det.Dates[0].Slots, 1)
	assert.Equal(t, 5, det.Dates[0].Slots[0].AvailableCapacity)
}
