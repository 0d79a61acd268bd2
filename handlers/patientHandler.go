package handlers

import (
	"ClinicDesk/models"
	"ClinicDesk/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// SearchPatients matches patients by free-text query or phone prefix.
func (h *PatientHandler) SearchPatients(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	patients, err := h.service.Search(c, c.Query("q"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

// CreatePatient registers a patient; a duplicate phone returns the existing
// record instead of an error.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, existed, err := h.service.Create(c, &patient)
	if err != nil {
		respondError(c, err)
		return
	}
	if existed {
		c.JSON(http.StatusOK, gin.H{"patient": created, "existing": true})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"patient": created})
}

func (h *PatientHandler) GetPatient(c *gin.Context) {
	patient, err := h.service.GetByID(c, c.Param("patient_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient": patient})
}

// UpdatePatientContact updates phone/address, the only fields that stay
// mutable once the patient is linked to an appointment.
func (h *PatientHandler) UpdatePatientContact(c *gin.Context) {
	var body struct {
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateContact(c, c.Param("patient_id"), body.Phone, body.Address); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact updated"})
}
