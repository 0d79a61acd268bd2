package models

// CartLineItem is one service added to the registrar's cart. It is never
// persisted directly: checkout consumes it through visit grouping.
type CartLineItem struct {
	ServiceID uint    `json:"service_id"`
	Quantity  int     `json:"quantity"`
	DoctorID  *string `json:"doctor_id"`
	VisitDate string  `json:"visit_date"`
	VisitTime string  `json:"visit_time"`
}

// Cart is the in-progress collection of services for one patient session.
// AllFree is the legacy override flag; it is normalized into DiscountMode at
// the request boundary and nothing downstream reads it.
type Cart struct {
	PatientID    string         `json:"patient_id"`
	Items        []CartLineItem `json:"items"`
	DiscountMode DiscountMode   `json:"discount_mode"`
	AllFree      bool           `json:"all_free"`
	Notes        string         `json:"notes"`
}

// VisitGroup is one billable visit derived from the cart: every line item
// sharing a (department, provider, date, time) key lands in exactly one
// group, and each group becomes one appointment at checkout.
type VisitGroup struct {
	Department DepartmentTag  `json:"department"`
	DoctorID   *string        `json:"doctor_id"`
	VisitDate  string         `json:"visit_date"`
	VisitTime  string         `json:"visit_time"`
	Items      []CartLineItem `json:"items"`
}
