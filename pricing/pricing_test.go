package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClinicDesk/models"
)

func catalog() map[uint]models.ClinicService {
	return map[uint]models.ClinicService{
		1: {ID: 1, Name: "ECG", Price: 20000, CategoryCode: "cardiology", QueueTag: "ecg"},
		2: {ID: 2, Name: "Cardiology consultation", Price: 50000, CategoryCode: "cardiology", IsConsultation: true},
		3: {ID: 3, Name: "Teeth cleaning", Price: 35000.4, CategoryCode: "dentistry"},
	}
}

func TestComputeLineTotal(t *testing.T) {
	services := catalog()
	ecg := services[1]
	consult := services[2]
	cleaning := services[3]

	tests := []struct {
		name    string
		item    models.CartLineItem
		service *models.ClinicService
		mode    models.DiscountMode
		want    int64
	}{
		{"full price", models.CartLineItem{ServiceID: 1, Quantity: 1}, &ecg, models.DiscountNone, 20000},
		{"quantity multiplies", models.CartLineItem{ServiceID: 1, Quantity: 3}, &ecg, models.DiscountNone, 60000},
		{"all free zeroes non-consultation", models.CartLineItem{ServiceID: 1, Quantity: 2}, &ecg, models.DiscountAllFree, 0},
		{"repeat zeroes consultation", models.CartLineItem{ServiceID: 2, Quantity: 1}, &consult, models.DiscountRepeat, 0},
		{"benefit zeroes consultation", models.CartLineItem{ServiceID: 2, Quantity: 1}, &consult, models.DiscountBenefit, 0},
		{"repeat keeps non-consultation at full price", models.CartLineItem{ServiceID: 1, Quantity: 1}, &ecg, models.DiscountRepeat, 20000},
		{"missing service prices at zero", models.CartLineItem{ServiceID: 99, Quantity: 1}, nil, models.DiscountNone, 0},
		{"fractional price rounds to whole units", models.CartLineItem{ServiceID: 3, Quantity: 1}, &cleaning, models.DiscountNone, 35000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeLineTotal(tt.item, tt.service, tt.mode))
		})
	}
}

func TestComputeCartTotalMixedDiscount(t *testing.T) {
	// ECG stays at full price while the consultation is zeroed for a repeat
	// visit.
	cart := models.Cart{
		Items: []models.CartLineItem{
			{ServiceID: 1, Quantity: 1},
			{ServiceID: 2, Quantity: 1},
		},
		DiscountMode: models.DiscountRepeat,
	}
	total, warnings := ComputeCartTotal(cart, catalog())
	require.Empty(t, warnings)
	assert.Equal(t, int64(20000), total)
}

func TestComputeCartTotalAllFree(t *testing.T) {
	cart := models.Cart{
		Items: []models.CartLineItem{
			{ServiceID: 1, Quantity: 2},
			{ServiceID: 2, Quantity: 1},
			{ServiceID: 3, Quantity: 5},
		},
		DiscountMode: models.DiscountAllFree,
	}
	total, warnings := ComputeCartTotal(cart, catalog())
	require.Empty(t, warnings)
	assert.Zero(t, total)
}

func TestComputeCartTotalMissingServiceWarns(t *testing.T) {
	cart := models.Cart{
		Items: []models.CartLineItem{
			{ServiceID: 1, Quantity: 1},
			{ServiceID: 404, Quantity: 1},
		},
		DiscountMode: models.DiscountNone,
	}
	total, warnings := ComputeCartTotal(cart, catalog())
	assert.Equal(t, int64(20000), total)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "404")
}

func TestComputeCartTotalNeverNegative(t *testing.T) {
	services := map[uint]models.ClinicService{
		7: {ID: 7, Name: "Adjustment", Price: -500, CategoryCode: "other"},
	}
	cart := models.Cart{
		Items:        []models.CartLineItem{{ServiceID: 7, Quantity: 3}},
		DiscountMode: models.DiscountNone,
	}
	total, _ := ComputeCartTotal(cart, services)
	assert.GreaterOrEqual(t, total, int64(0))
}
