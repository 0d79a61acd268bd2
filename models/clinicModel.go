package models

import (
	"time"
)

// Doctor model
type Doctor struct {
	ID           string        `gorm:"primaryKey;column:id" json:"id"`
	FirstName    string        `gorm:"column:first_name;not null" json:"first_name"`
	LastName     string        `gorm:"column:last_name;not null;index" json:"last_name"`
	Specialty    string        `gorm:"column:specialty;not null;index" json:"specialty"`
	Cabinet      string        `gorm:"column:cabinet" json:"cabinet"`
	DefaultPrice float64       `gorm:"column:default_price" json:"default_price"`
	CreatedAt    time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (Doctor) TableName() string {
	return "doctor"
}

// Patient model
type Patient struct {
	ID           string        `gorm:"primaryKey;column:id" json:"id"`
	FirstName    string        `gorm:"column:first_name;not null" json:"first_name"`
	MiddleName   string        `gorm:"column:middle_name" json:"middle_name"`
	LastName     string        `gorm:"column:last_name;not null;index" json:"last_name"`
	DateOfBirth  string        `gorm:"column:date_of_birth;not null;index" json:"date_of_birth"`
	Phone        string        `gorm:"column:phone;uniqueIndex" json:"phone"`
	Address      string        `gorm:"column:address" json:"address"`
	CreatedAt    time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Appointments []Appointment `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// ClinicService is one entry of the billable service catalog.
type ClinicService struct {
	ID               uint    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name             string  `gorm:"column:name;not null" json:"name"`
	Price            float64 `gorm:"column:price;not null" json:"price"`
	CategoryCode     string  `gorm:"column:category_code;not null;index" json:"category_code"`
	QueueTag         string  `gorm:"column:queue_tag" json:"queue_tag"`
	RequiresProvider bool    `gorm:"column:requires_provider" json:"requires_provider"`
	IsConsultation   bool    `gorm:"column:is_consultation" json:"is_consultation"`
}

func (ClinicService) TableName() string {
	return "clinic_service"
}

// QueueEntry is one queue assignment carried on an appointment record.
type QueueEntry struct {
	Number int    `json:"number"`
	Status string `json:"status"`
}

// Appointment model. LocallyModified and PendingReason are desk-session
// markers, never persisted: they flag an optimistic mutation the next
// authoritative refresh has not yet confirmed.
type Appointment struct {
	ID                uint              `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	PatientID         string            `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID          *string           `gorm:"column:doctor_id;index" json:"doctor_id"`
	Department        DepartmentTag     `gorm:"column:department;not null;index" json:"department"`
	VisitDate         string            `gorm:"column:visit_date;not null;index" json:"visit_date"`
	VisitTime         string            `gorm:"column:visit_time" json:"visit_time"`
	Status            AppointmentStatus `gorm:"column:status;not null" json:"status"`
	PaymentStatus     PaymentStatus     `gorm:"column:payment_status;not null" json:"payment_status"`
	Cost              float64           `gorm:"column:cost" json:"cost"`
	InvoiceAmount     float64           `gorm:"column:invoice_amount" json:"invoice_amount"`
	PaymentAmount     float64           `gorm:"column:payment_amount" json:"payment_amount"`
	HasSharedInvoice  bool              `gorm:"column:has_shared_invoice" json:"has_shared_invoice"`
	DiscountMode      DiscountMode      `gorm:"column:discount_mode;not null" json:"discount_mode"`
	QueueNumber       *int              `gorm:"column:queue_number" json:"queue_number"`
	QueueNumberStatus string            `gorm:"column:queue_number_status" json:"queue_number_status"`
	QueueNumbers      []QueueEntry      `gorm:"column:queue_numbers;type:jsonb;serializer:json" json:"queue_numbers"`
	Notes             string            `gorm:"column:notes" json:"notes"`
	CancelReason      string            `gorm:"column:cancel_reason" json:"cancel_reason"`
	VisitSummary      string            `gorm:"column:visit_summary" json:"visit_summary"`
	CreatedAt         time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient           Patient           `gorm:"foreignKey:PatientID;references:ID" json:"patient"`
	Doctor            *Doctor           `gorm:"foreignKey:DoctorID;references:ID" json:"doctor,omitempty"`
	LocallyModified   bool              `gorm:"-" json:"locally_modified"`
	PendingReason     string            `gorm:"-" json:"pending_reason,omitempty"`
}

func (Appointment) TableName() string {
	return "appointment"
}
