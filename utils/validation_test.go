package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ClinicDesk/apperrors"
	"ClinicDesk/models"
)

func strPtr(s string) *string { return &s }

func cartCatalog() map[uint]models.ClinicService {
	return map[uint]models.ClinicService{
		1: {ID: 1, Name: "ECG", CategoryCode: "cardiology"},
		2: {ID: 2, Name: "Cardiology consultation", CategoryCode: "cardiology", RequiresProvider: true},
	}
}

func TestValidateCartRejectsEmptyCart(t *testing.T) {
	err := ValidateCart(models.Cart{}, cartCatalog())
	assert.True(t, apperrors.IsValidation(err))
}

func TestValidateCartRequiresProvider(t *testing.T) {
	cart := models.Cart{Items: []models.CartLineItem{
		{ServiceID: 2, Quantity: 1, VisitDate: "2026-09-01"},
	}}
	err := ValidateCart(cart, cartCatalog())
	assert.True(t, apperrors.IsValidation(err))

	cart.Items[0].DoctorID = strPtr("doc-1")
	assert.NoError(t, ValidateCart(cart, cartCatalog()))
}

func TestValidateCartRejectsBadQuantityAndDate(t *testing.T) {
	bad := []models.CartLineItem{
		{ServiceID: 1, Quantity: 0, VisitDate: "2026-09-01"},
		{ServiceID: 1, Quantity: 1, VisitDate: "01.09.2026"},
		{ServiceID: 1, Quantity: 1, VisitDate: ""},
	}
	for _, item := range bad {
		err := ValidateCart(models.Cart{Items: []models.CartLineItem{item}}, cartCatalog())
		assert.True(t, apperrors.IsValidation(err), "item %+v", item)
	}
}

func TestValidateCartToleratesUnknownService(t *testing.T) {
	cart := models.Cart{Items: []models.CartLineItem{
		{ServiceID: 404, Quantity: 1, VisitDate: "2026-09-01"},
	}}
	assert.NoError(t, ValidateCart(cart, cartCatalog()))
}

func TestValidatePatientInput(t *testing.T) {
	valid := models.Patient{FirstName: "Anna", LastName: "Karimova", DateOfBirth: "1990-04-12", Phone: "+998901234567"}
	assert.NoError(t, ValidatePatientInput(valid))

	missingName := valid
	missingName.FirstName = ""
	assert.True(t, apperrors.IsValidation(ValidatePatientInput(missingName)))

	badBirth := valid
	badBirth.DateOfBirth = "12.04.1990"
	assert.True(t, apperrors.IsValidation(ValidatePatientInput(badBirth)))
}
