package visits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClinicDesk/models"
)

func TestClassifyDepartment(t *testing.T) {
	tests := []struct {
		name    string
		service *models.ClinicService
		want    models.DepartmentTag
	}{
		{"ecg queue tag wins over category", &models.ClinicService{CategoryCode: "cardiology", QueueTag: "ecg"}, models.DeptEchoKG},
		{"cardiology", &models.ClinicService{CategoryCode: "cardiology"}, models.DeptCardiology},
		{"dermatology", &models.ClinicService{CategoryCode: "dermatology"}, models.DeptDermatology},
		{"dentistry", &models.ClinicService{CategoryCode: "dentistry"}, models.DeptDentistry},
		{"laboratory", &models.ClinicService{CategoryCode: "laboratory"}, models.DeptLaboratory},
		{"cosmetology folds into procedures", &models.ClinicService{CategoryCode: "cosmetology"}, models.DeptProcedures},
		{"physiotherapy folds into procedures", &models.ClinicService{CategoryCode: "physiotherapy"}, models.DeptProcedures},
		{"dermatology procedures fold into procedures", &models.ClinicService{CategoryCode: "dermatology_procedures"}, models.DeptProcedures},
		{"other folds into procedures", &models.ClinicService{CategoryCode: "other"}, models.DeptProcedures},
		{"unknown category is general", &models.ClinicService{CategoryCode: "astrology"}, models.DeptGeneral},
		{"nil service is general", nil, models.DeptGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDepartment(tt.service))
		})
	}
}

func strPtr(s string) *string { return &s }

func testCatalog() map[uint]models.ClinicService {
	return map[uint]models.ClinicService{
		1: {ID: 1, Name: "ECG", CategoryCode: "cardiology", QueueTag: "ecg"},
		2: {ID: 2, Name: "Cardiology consultation", CategoryCode: "cardiology", IsConsultation: true},
		3: {ID: 3, Name: "Massage", CategoryCode: "physiotherapy"},
		4: {ID: 4, Name: "Peeling", CategoryCode: "cosmetology"},
		5: {ID: 5, Name: "Blood panel", CategoryCode: "laboratory"},
	}
}

func TestGroupCartSplitsByDepartment(t *testing.T) {
	cart := models.Cart{
		Items: []models.CartLineItem{
			{ServiceID: 2, Quantity: 1, DoctorID: strPtr("doc-1"), VisitDate: "2026-09-01"},
			{ServiceID: 1, Quantity: 1, VisitDate: "2026-09-01"},
			{ServiceID: 5, Quantity: 1, VisitDate: "2026-09-01"},
		},
	}
	groups := GroupCart(cart, testCatalog())
	require.Len(t, groups, 3)
	assert.Equal(t, models.DeptCardiology, groups[0].Department)
	assert.Equal(t, models.DeptEchoKG, groups[1].Department)
	assert.Equal(t, models.DeptLaboratory, groups[2].Department)
}

func TestGroupCartCollapsesProcedureSubKinds(t *testing.T) {
	// Physiotherapy and cosmetology classify to the same procedures tag, so
	// they must land in one visit for the same date/time, never two.
	cart := models.Cart{
		Items: []models.CartLineItem{
			{ServiceID: 3, Quantity: 1, VisitDate: "2026-09-01", VisitTime: "10:00"},
			{ServiceID: 4, Quantity: 2, VisitDate: "2026-09-01", VisitTime: "10:00"},
		},
	}
	groups := GroupCart(cart, testCatalog())
	require.Len(t, groups, 1)
	assert.Equal(t, models.DeptProcedures, groups[0].Department)
	assert.Len(t, groups[0].Items, 2)
}

func TestGroupCartKeyComponentsSplitGroups(t *testing.T) {
	cart := models.Cart{
		Items: []models.CartLineItem{
			{ServiceID: 3, Quantity: 1, VisitDate: "2026-09-01", VisitTime: "10:00"},
			{ServiceID: 4, Quantity: 1, VisitDate: "2026-09-01", VisitTime: "14:00"},
			{ServiceID: 4, Quantity: 1, VisitDate: "2026-09-02", VisitTime: "10:00"},
			{ServiceID: 3, Quantity: 1, DoctorID: strPtr("doc-2"), VisitDate: "2026-09-01", VisitTime: "10:00"},
		},
	}
	groups := GroupCart(cart, testCatalog())
	assert.Len(t, groups, 4)
}

func TestGroupCartIsDeterministic(t *testing.T) {
	cart := models.Cart{
		Items: []models.CartLineItem{
			{ServiceID: 5, Quantity: 1, VisitDate: "2026-09-01"},
			{ServiceID: 3, Quantity: 1, VisitDate: "2026-09-01"},
			{ServiceID: 1, Quantity: 1, VisitDate: "2026-09-01"},
			{ServiceID: 4, Quantity: 1, VisitDate: "2026-09-01"},
			{ServiceID: 2, Quantity: 1, VisitDate: "2026-09-01"},
		},
	}
	first := GroupCart(cart, testCatalog())
	second := GroupCart(cart, testCatalog())
	assert.Equal(t, first, second)
}

func TestGroupCartEveryItemInExactlyOneGroup(t *testing.T) {
	cart := models.Cart{
		Items: []models.CartLineItem{
			{ServiceID: 1, Quantity: 1, VisitDate: "2026-09-01"},
			{ServiceID: 2, Quantity: 1, VisitDate: "2026-09-01"},
			{ServiceID: 3, Quantity: 1, VisitDate: "2026-09-01"},
			{ServiceID: 99, Quantity: 1, VisitDate: "2026-09-01"},
		},
	}
	groups := GroupCart(cart, testCatalog())
	var count int
	for _, g := range groups {
		count += len(g.Items)
	}
	assert.Equal(t, len(cart.Items), count)
}

func TestGroupCartUnknownServiceGoesToGeneral(t *testing.T) {
	cart := models.Cart{
		Items: []models.CartLineItem{
			{ServiceID: 99, Quantity: 1, VisitDate: "2026-09-01"},
		},
	}
	groups := GroupCart(cart, testCatalog())
	require.Len(t, groups, 1)
	assert.Equal(t, models.DeptGeneral, groups[0].Department)
}
