package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/experience-booking/internal/model"
	"github.com/iliyamo/experience-booking/internal/repository"
)

// MockPromoStore mocks the promo repository.
type MockPromoStore struct {
	mock.Mock
}

func (m *MockPromoStore) GetByCode(ctx context.Context, code string) (*model.PromoCode, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PromoCode), args.Error(1)
}

func TestValidatePromoMissingCode(t *testing.T) {
	promos := new(MockPromoStore)
	h := NewPromoHandler(promos)

	for _, body := range []string{`{}`, `{"code":""}`, `{"code":"   "}`} {
		res := postJSON(t, h.Validate, "/promo/validate", body)
		assert.Equal(t, http.StatusBadRequest, res.Code)
	}
	promos.AssertNotCalled(t, "GetByCode", mock.Anything)
}

func TestValidatePromoUnknownCode(t *testing.T) {
	promos := new(MockPromoStore)
	h := NewPromoHandler(promos)
	promos.On("GetByCode", "NOPE").Return(nil, repository.ErrPromoNotFound)

	res := postJSON(t, h.Validate, "/promo/validate", `{"code":"NOPE"}`)
	assert.Equal(t, http.StatusNotFound, res.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, "Invalid promo code", body["message"])
}

func TestValidatePromoInactiveCode(t *testing.T) {
	promos := new(MockPromoStore)
	h := NewPromoHandler(promos)
	promos.On("GetByCode", "OLD10").Return(&model.PromoCode{
		Code: "OLD10", DiscountValue: 10, IsActive: false, CreatedAt: time.Now(),
	}, nil)

	res := postJSON(t, h.Validate, "/promo/validate", `{"code":"OLD10"}`)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, "Promo code is inactive", body["message"])
}

func TestValidatePromoActiveCode(t *testing.T) {
	promos := new(MockPromoStore)
	h := NewPromoHandler(promos)
	promos.On("GetByCode", "SAVE20").Return(&model.PromoCode{
		Code: "SAVE20", DiscountValue: 20, IsActive: true,
	}, nil)

	res := postJSON(t, h.Validate, "/promo/validate", `{"code":"SAVE20"}`)
	assert.Equal(t, http.StatusOK, res.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, float64(20), body["discountPercentage"])
}

// Validation reads but never writes, so two calls with the same code
// and no intervening state change must answer identically.
func TestValidatePromoIsIdempotent(t *testing.T) {
	promos := new(MockPromoStore)
	h := NewPromoHandler(promos)
	promos.On("GetByCode", "SAVE20").Return(&model.PromoCode{
		Code: "SAVE20", DiscountValue: 20, IsActive: true,
	}, nil)

	first := postJSON(t, h.Validate, "/promo/validate", `{"code":"SAVE20"}`)
	second := postJSON(t, h.Validate, "/promo/validate", `{"code":"SAVE20"}`)

	assert.Equal(t, first.Code, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	promos.AssertNumberOfCalls(t, "GetByCode", 2)
}
