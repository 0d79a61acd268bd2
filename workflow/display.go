package workflow

import (
	"math"

	"ClinicDesk/models"
)

// CostDisplay is the amount shown for an appointment in desk views.
type CostDisplay struct {
	Amount int64 `json:"amount"`
	Free   bool  `json:"free"`
}

// DisplayCost resolves the price to show for an appointment record carrying
// several legacy amount fields. An appointment on a shared invoice shows
// only its own itemized cost, never the shared invoice total; otherwise the
// precedence is cost, then invoice amount, then payment amount, then 0.
// All-free appointments display as free regardless of the numeric fields.
func DisplayCost(appt models.Appointment) CostDisplay {
	if appt.DiscountMode == models.DiscountAllFree {
		return CostDisplay{Free: true}
	}
	if appt.HasSharedInvoice {
		return CostDisplay{Amount: roundAmount(appt.Cost)}
	}
	for _, amount := range []float64{appt.Cost, appt.InvoiceAmount, appt.PaymentAmount} {
		if amount != 0 {
			return CostDisplay{Amount: roundAmount(amount)}
		}
	}
	return CostDisplay{}
}

func roundAmount(v float64) int64 {
	return int64(math.Round(v))
}
