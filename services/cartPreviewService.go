package services

import (
	"context"

	"ClinicDesk/apperrors"
	"ClinicDesk/models"
	"ClinicDesk/pricing"
	"ClinicDesk/repositories"
	"ClinicDesk/visits"
)

// CartPreviewService prices and groups a cart without side effects, for the
// running total and visit split shown while the registrar edits the cart.
type CartPreviewService struct {
	catalog *repositories.ServiceRepository
}

func NewCartPreviewService(catalog *repositories.ServiceRepository) *CartPreviewService {
	return &CartPreviewService{catalog: catalog}
}

// CartPreview is the derived view of an in-progress cart.
type CartPreview struct {
	Total    int64               `json:"total"`
	Groups   []models.VisitGroup `json:"groups"`
	Warnings []string            `json:"warnings,omitempty"`
}

// Preview computes the cart total and visit grouping. Unlike checkout it
// tolerates an incomplete cart: missing providers only matter at checkout.
func (s *CartPreviewService) Preview(ctx context.Context, cart models.Cart) (*CartPreview, error) {
	cart.DiscountMode = models.NormalizeDiscountMode(string(cart.DiscountMode), cart.AllFree)
	services, err := s.catalog.GetMap(ctx)
	if err != nil {
		return nil, &apperrors.NetworkError{Op: "load service catalog", Err: err}
	}
	total, warnings := pricing.ComputeCartTotal(cart, services)
	return &CartPreview{
		Total:    total,
		Groups:   visits.GroupCart(cart, services),
		Warnings: warnings,
	}, nil
}
