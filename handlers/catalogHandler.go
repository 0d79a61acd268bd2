package handlers

import (
	"ClinicDesk/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service *services.CatalogService
}

func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// GetServices returns the billable service catalog grouped by department.
func (h *CatalogHandler) GetServices(c *gin.Context) {
	grouped, err := h.service.ServicesByDepartment(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": grouped})
}

// GetDoctors returns the provider catalog.
func (h *CatalogHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.service.Doctors(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}
