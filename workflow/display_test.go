package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ClinicDesk/models"
)

func TestDisplayCostPrecedence(t *testing.T) {
	tests := []struct {
		name string
		appt models.Appointment
		want CostDisplay
	}{
		{
			"all free trumps numeric fields",
			models.Appointment{DiscountMode: models.DiscountAllFree, Cost: 90000, InvoiceAmount: 90000},
			CostDisplay{Free: true},
		},
		{
			"shared invoice uses itemized cost only",
			models.Appointment{HasSharedInvoice: true, Cost: 20000, InvoiceAmount: 150000},
			CostDisplay{Amount: 20000},
		},
		{
			"shared invoice with zero cost shows zero, not the invoice total",
			models.Appointment{HasSharedInvoice: true, InvoiceAmount: 150000, PaymentAmount: 150000},
			CostDisplay{Amount: 0},
		},
		{
			"cost first",
			models.Appointment{Cost: 20000, InvoiceAmount: 30000, PaymentAmount: 40000},
			CostDisplay{Amount: 20000},
		},
		{
			"invoice amount when cost is zero",
			models.Appointment{InvoiceAmount: 30000, PaymentAmount: 40000},
			CostDisplay{Amount: 30000},
		},
		{
			"payment amount as last resort",
			models.Appointment{PaymentAmount: 40000},
			CostDisplay{Amount: 40000},
		},
		{
			"no amounts at all",
			models.Appointment{},
			CostDisplay{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayCost(tt.appt))
		})
	}
}
