// Package visits classifies catalog services into department tags and
// groups cart line items into the visits submitted at checkout.
package visits

import (
	"ClinicDesk/models"
)

// ECG has its own queue regardless of the service's category.
const ecgQueueTag = "ecg"

// categoryTable maps catalog category codes to department tags. Every
// procedure-like sub-category folds into the single procedures tag so that
// one patient gets one procedures visit per provider/date/time.
var categoryTable = map[string]models.DepartmentTag{
	"cardiology":             models.DeptCardiology,
	"dermatology":            models.DeptDermatology,
	"dentistry":              models.DeptDentistry,
	"laboratory":             models.DeptLaboratory,
	"cosmetology":            models.DeptProcedures,
	"physiotherapy":          models.DeptProcedures,
	"dermatology_procedures": models.DeptProcedures,
	"other":                  models.DeptProcedures,
}

// ClassifyDepartment resolves the department tag for a catalog service. A
// nil service or an unknown category code classifies as general, the safe
// default for a broken reference.
func ClassifyDepartment(service *models.ClinicService) models.DepartmentTag {
	if service == nil {
		return models.DeptGeneral
	}
	if service.QueueTag == ecgQueueTag {
		return models.DeptEchoKG
	}
	if tag, ok := categoryTable[service.CategoryCode]; ok {
		return tag
	}
	return models.DeptGeneral
}
