package handlers

import (
	"ClinicDesk/models"
	"ClinicDesk/services"
	"ClinicDesk/workflow"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// transitionBody is the shared request payload of all transition endpoints.
type transitionBody struct {
	Reason  string `json:"reason"`
	NewDate string `json:"new_date"`
}

// GetAppointments returns the post-reconciliation collection. The degraded
// flag tells the desk it is looking at a stale last-known-good snapshot.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	appointments, degraded := h.service.Collection()
	c.JSON(http.StatusOK, gin.H{"appointments": appointments, "degraded": degraded})
}

// RefreshAppointments triggers a manual refresh. On failure the previous
// collection is still served, so the response carries it together with the
// degraded flag instead of an error status.
func (h *AppointmentHandler) RefreshAppointments(c *gin.Context) {
	if err := h.service.Refresh(c); err != nil {
		appointments, degraded := h.service.Collection()
		c.JSON(http.StatusOK, gin.H{"appointments": appointments, "degraded": degraded})
		return
	}
	appointments, degraded := h.service.Collection()
	c.JSON(http.StatusOK, gin.H{"appointments": appointments, "degraded": degraded})
}

func (h *AppointmentHandler) Pay(c *gin.Context)        { h.transition(c, workflow.ActionPay) }
func (h *AppointmentHandler) Confirm(c *gin.Context)    { h.transition(c, workflow.ActionConfirm) }
func (h *AppointmentHandler) StartVisit(c *gin.Context) { h.transition(c, workflow.ActionStartVisit) }
func (h *AppointmentHandler) Complete(c *gin.Context)   { h.transition(c, workflow.ActionComplete) }
func (h *AppointmentHandler) Cancel(c *gin.Context)     { h.transition(c, workflow.ActionCancel) }
func (h *AppointmentHandler) MarkNoShow(c *gin.Context) { h.transition(c, workflow.ActionMarkNoShow) }
func (h *AppointmentHandler) Reschedule(c *gin.Context) { h.transition(c, workflow.ActionReschedule) }

func (h *AppointmentHandler) transition(c *gin.Context, action workflow.Action) {
	id, err := strconv.ParseUint(c.Param("appointment_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}
	var body transitionBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := h.service.Transition(c, uint(id), action, workflow.Request{
		Reason:  body.Reason,
		NewDate: body.NewDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if result.NoOp {
		c.JSON(http.StatusOK, gin.H{"appointment": result.Appointment, "info": result.Info})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": result.Appointment})
}

// QueueBoard renders today's queue for one department, or all of them.
func (h *AppointmentHandler) QueueBoard(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	department := models.DepartmentTag(c.Query("department"))
	if department != "" && !department.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown department tag"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "entries": h.service.QueueBoard(date, department)})
}

// CallNext calls the next waiting patient of a department into the cabinet.
func (h *AppointmentHandler) CallNext(c *gin.Context) {
	department := models.DepartmentTag(c.Param("department"))
	if !department.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown department tag"})
		return
	}
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	appt, err := h.service.CallNext(c, date, department)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}
