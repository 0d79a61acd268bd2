package visits

import (
	"ClinicDesk/models"
)

// groupKey identifies one visit bucket. The provider and time components use
// "none" when absent so that map keys stay comparable.
type groupKey struct {
	department models.DepartmentTag
	doctorID   string
	visitDate  string
	visitTime  string
}

const noneKeyPart = "none"

func keyFor(department models.DepartmentTag, item models.CartLineItem) groupKey {
	key := groupKey{
		department: department,
		doctorID:   noneKeyPart,
		visitDate:  item.VisitDate,
		visitTime:  noneKeyPart,
	}
	if item.DoctorID != nil && *item.DoctorID != "" {
		key.doctorID = *item.DoctorID
	}
	if item.VisitTime != "" {
		key.visitTime = item.VisitTime
	}
	return key
}

// GroupCart splits the cart into visit groups keyed by
// (department, provider, date, time). Grouping is deterministic: groups are
// returned in first-seen key order and every line item lands in exactly one
// group. All procedure sub-categories classify to the same procedures tag,
// so they always collapse into one group per provider/date/time.
func GroupCart(cart models.Cart, services map[uint]models.ClinicService) []models.VisitGroup {
	index := make(map[groupKey]int)
	groups := make([]models.VisitGroup, 0, len(cart.Items))

	for _, item := range cart.Items {
		var service *models.ClinicService
		if s, ok := services[item.ServiceID]; ok {
			service = &s
		}
		key := keyFor(ClassifyDepartment(service), item)

		if i, ok := index[key]; ok {
			groups[i].Items = append(groups[i].Items, item)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, models.VisitGroup{
			Department: key.department,
			DoctorID:   item.DoctorID,
			VisitDate:  item.VisitDate,
			VisitTime:  item.VisitTime,
			Items:      []models.CartLineItem{item},
		})
	}
	return groups
}
