package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/experience-booking/internal/model"
	"github.com/iliyamo/experience-booking/internal/repository"
)

func summary(price int64, capacity, booked int, available bool) *repository.SlotSummary {
	return &repository.SlotSummary{
		SlotID:          "s1",
		ExperienceID:    "e1",
		ExperienceTitle: "Desert Safari",
		Date:            "2026-09-10",
		StartTime:       "09:00",
		EndTime:         "11:00",
		PriceUnits:      price,
		Capacity:        capacity,
		BookedCount:     booked,
		IsAvailable:     available,
	}
}

func TestQuoteUnknownSlot(t *testing.T) {
	slots := new(MockSlotStore)
	promos := new(MockPromoStore)
	h := NewQuoteHandler(slots, promos)
	slots.On("GetSummary", "nope").Return(nil, repository.ErrSlotNotFound)

	res := postJSON(t, h.Quote, "/quote", `{"slotId":"nope","quantity":1}`)
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestQuoteFullSlot(t *testing.T) {
	slots := new(MockSlotStore)
	promos := new(MockPromoStore)
	h := NewQuoteHandler(slots, promos)
	slots.On("GetSummary", "s1").Return(summary(1000, 5, 5, true), nil)

	res := postJSON(t, h.Quote, "/quote", `{"slotId":"s1","quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestQuoteDisabledSlot(t *testing.T) {
	slots := new(MockSlotStore)
	promos := new(MockPromoStore)
	h := NewQuoteHandler(slots, promos)
	// capacity left, but the admin flag wins
	slots.On("GetSummary", "s1").Return(summary(1000, 5, 0, false), nil)

	res := postJSON(t, h.Quote, "/quote", `{"slotId":"s1","quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestQuoteWithoutDiscount(t *testing.T) {
	slots := new(MockSlotStore)
	promos := new(MockPromoStore)
	h := NewQuoteHandler(slots, promos)
	slots.On("GetSummary", "s1").Return(summary(1000, 8, 0, true), nil)

	res := postJSON(t, h.Quote, "/quote", `{"slotId":"s1","quantity":2}`)
	assert.Equal(t, http.StatusOK, res.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, float64(2000), body["subtotal"])
	assert.Equal(t, float64(100), body["taxes"])
	assert.Equal(t, float64(2100), body["total"])
}

func TestQuoteWithActivePromo(t *testing.T) {
	slots := new(MockSlotStore)
	promos := new(MockPromoStore)
	h := NewQuoteHandler(slots, promos)
	slots.On("GetSummary", "s1").Return(summary(1000, 8, 0, true), nil)
	promos.On("GetByCode", "SAVE10").Return(&model.PromoCode{
		Code: "SAVE10", DiscountValue: 10, IsActive: true,
	}, nil)

	res := postJSON(t, h.Quote, "/quote", `{"slotId":"s1","quantity":2,"promoCode":"SAVE10"}`)
	assert.Equal(t, http.StatusOK, res.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, float64(2000), body["subtotal"])
	assert.Equal(t, float64(200), body["discountAmount"])
	assert.Equal(t, float64(90), body["taxes"])
	assert.Equal(t, float64(1890), body["total"])
}

func TestQuoteWithInactivePromo(t *testing.T) {
	slots := new(MockSlotStore)
	promos := new(MockPromoStore)
	h := NewQuoteHandler(slots, promos)
	slots.On("GetSummary", "s1").Return(summary(1000, 8, 0, true), nil)
	promos.On("GetByCode", "OLD10").Return(&model.PromoCode{
		Code: "OLD10", DiscountValue: 10, IsActive: false,
	}, nil)

	res := postJSON(t, h.Quote, "/quote", `{"slotId":"s1","quantity":2,"promoCode":"OLD10"}`)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, "Promo code is inactive", body["message"])
}

func TestQuoteClampsQuantityToRemainingCapacity(t *testing.T) {
	slots := new(MockSlotStore)
	promos := new(MockPromoStore)
	h := NewQuoteHandler(slots, promos)
	slots.On("GetSummary", "s1").Return(summary(500, 10, 7, true), nil)

	// 3 spots left; asking for 9 quotes 3, asking for 0 quotes 1
	res := postJSON(t, h.Quote, "/quote", `{"slotId":"s1","quantity":9}`)
	assert.Equal(t, http.StatusOK, res.Code)
	var body map[string]any
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, float64(3), body["quantity"])
	assert.Equal(t, float64(3), body["availableCapacity"])
	assert.Equal(t, float64(1500), body["subtotal"])

	res = postJSON(t, h.Quote, "/quote", `{"slotId":"s1","quantity":0}`)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["quantity"])
}
