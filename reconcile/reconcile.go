// Package reconcile merges a freshly fetched appointment collection with
// desk-local records that carry unsaved optimistic mutations. Merge is a
// pure function of its two inputs; it is the single authority for resolving
// "what did the registrar just do" against "what does the server now say".
package reconcile

import (
	"ClinicDesk/models"
)

// Merge returns the reconciled collection. Server records keep their order;
// where a locally-modified record shares an id with a server record, the
// local mutation surface wins. Records the server no longer returns are
// dropped, because the server is authoritative for existence.
func Merge(server, local []models.Appointment) []models.Appointment {
	overrides := make(map[uint]models.Appointment)
	for _, appt := range local {
		if appt.LocallyModified {
			overrides[appt.ID] = appt
		}
	}

	merged := make([]models.Appointment, 0, len(server))
	for _, appt := range server {
		if localAppt, ok := overrides[appt.ID]; ok {
			merged = append(merged, overlayLocal(appt, localAppt))
			continue
		}
		merged = append(merged, appt)
	}
	return merged
}

// overlayLocal lays the locally-mutable field set of the optimistic record
// over the server record. The server stays authoritative for everything it
// alone produces: queue assignments (unless the local copy carries newer
// ones), patient/doctor enrichment and timestamps.
func overlayLocal(server, local models.Appointment) models.Appointment {
	merged := server
	merged.Status = local.Status
	merged.PaymentStatus = local.PaymentStatus
	merged.VisitDate = local.VisitDate
	merged.VisitTime = local.VisitTime
	merged.DiscountMode = local.DiscountMode
	merged.CancelReason = local.CancelReason
	merged.VisitSummary = local.VisitSummary
	merged.LocallyModified = true
	merged.PendingReason = local.PendingReason
	if local.QueueNumber != nil {
		merged.QueueNumber = local.QueueNumber
		merged.QueueNumberStatus = local.QueueNumberStatus
	}
	return merged
}
