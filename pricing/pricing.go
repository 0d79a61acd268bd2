// Package pricing computes line-item and cart totals under a discount mode.
// All functions are pure; amounts are whole currency units.
package pricing

import (
	"fmt"
	"math"

	"ClinicDesk/models"
)

// ComputeLineTotal returns the amount for one cart line. A nil service means
// the catalog reference is broken: the line prices at 0 and the caller is
// expected to surface the warning from ComputeCartTotal.
//
// Precedence: all_free zeroes every line; repeat/benefit zero consultation
// lines only; everything else is unit price times quantity.
func ComputeLineTotal(item models.CartLineItem, service *models.ClinicService, mode models.DiscountMode) int64 {
	if mode == models.DiscountAllFree {
		return 0
	}
	if service == nil {
		return 0
	}
	if service.IsConsultation && (mode == models.DiscountRepeat || mode == models.DiscountBenefit) {
		return 0
	}
	amount := int64(math.Round(service.Price * float64(item.Quantity)))
	if amount < 0 {
		return 0
	}
	return amount
}

// ComputeCartTotal sums the line totals for the whole cart. Line items whose
// service id is missing from the catalog contribute 0 and produce a
// data-integrity warning instead of being silently dropped.
func ComputeCartTotal(cart models.Cart, services map[uint]models.ClinicService) (int64, []string) {
	var total int64
	var warnings []string
	for _, item := range cart.Items {
		service, ok := services[item.ServiceID]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("service %d is not in the catalog; priced at 0", item.ServiceID))
			continue
		}
		total += ComputeLineTotal(item, &service, cart.DiscountMode)
	}
	return total, warnings
}
