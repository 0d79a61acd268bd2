package models

// AppointmentStatus is the closed set of lifecycle states an appointment can
// be in. "waiting" and "called" are produced by the queue board when a
// patient is placed in, or called from, a department queue.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusQueued    AppointmentStatus = "queued"
	StatusWaiting   AppointmentStatus = "waiting"
	StatusCalled    AppointmentStatus = "called"
	StatusInCabinet AppointmentStatus = "in_cabinet"
	StatusDone      AppointmentStatus = "done"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusQueued, StatusWaiting,
		StatusCalled, StatusInCabinet, StatusDone, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Terminal reports whether no further lifecycle transitions are possible.
func (s AppointmentStatus) Terminal() bool {
	switch s {
	case StatusDone, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// PaymentStatus is the payment axis, tracked independently of the lifecycle
// status.
type PaymentStatus string

const (
	PaymentNone    PaymentStatus = "none"
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// DiscountMode is the cart-wide pricing policy chosen by the registrar.
type DiscountMode string

const (
	DiscountNone    DiscountMode = "none"
	DiscountRepeat  DiscountMode = "repeat"
	DiscountBenefit DiscountMode = "benefit"
	DiscountAllFree DiscountMode = "all_free"
)

// NormalizeDiscountMode folds the legacy all-free boolean into the canonical
// enum. Unknown mode strings fall back to DiscountNone.
func NormalizeDiscountMode(mode string, allFree bool) DiscountMode {
	if allFree {
		return DiscountAllFree
	}
	switch DiscountMode(mode) {
	case DiscountNone, DiscountRepeat, DiscountBenefit, DiscountAllFree:
		return DiscountMode(mode)
	}
	return DiscountNone
}

// DepartmentTag is the closed classification used for queue routing and
// visit grouping.
type DepartmentTag string

const (
	DeptCardiology  DepartmentTag = "cardiology"
	DeptEchoKG      DepartmentTag = "echokg"
	DeptDermatology DepartmentTag = "dermatology"
	DeptDentistry   DepartmentTag = "dentistry"
	DeptLaboratory  DepartmentTag = "laboratory"
	DeptProcedures  DepartmentTag = "procedures"
	DeptGeneral     DepartmentTag = "general"
)

// Valid reports whether t is one of the known department tags.
func (t DepartmentTag) Valid() bool {
	switch t {
	case DeptCardiology, DeptEchoKG, DeptDermatology, DeptDentistry,
		DeptLaboratory, DeptProcedures, DeptGeneral:
		return true
	}
	return false
}
