package controllers

import (
	"ClinicDesk/handlers"
	"ClinicDesk/middlewares"
	"ClinicDesk/utils"

	"github.com/gin-gonic/gin"
)

// SetupDeskRoutes registers the front-desk routes: patient lookup, the
// service and provider catalogs, cart checkout, appointment transitions, and
// the queue board. Every route requires an authenticated staff session.
func SetupDeskRoutes(router *gin.Engine, patientHandler *handlers.PatientHandler, catalogHandler *handlers.CatalogHandler, checkoutHandler *handlers.CheckoutHandler, appointmentHandler *handlers.AppointmentHandler) {
	desk := router.Group("/desk").Use(
		middlewares.StaffAuthMiddleware(),
		middlewares.RequireRole(utils.RoleAdmin, utils.RoleRegistrar),
	)
	{
		desk.GET("/patients", patientHandler.SearchPatients)
		desk.POST("/patients", patientHandler.CreatePatient)
		desk.GET("/patients/:patient_id", patientHandler.GetPatient)
		desk.PUT("/patients/:patient_id/contact", patientHandler.UpdatePatientContact)

		desk.GET("/services", catalogHandler.GetServices)
		desk.GET("/doctors", catalogHandler.GetDoctors)

		desk.POST("/cart/preview", checkoutHandler.Preview)
		desk.POST("/cart/checkout", checkoutHandler.Checkout)

		desk.GET("/appointments", appointmentHandler.GetAppointments)
		desk.POST("/appointments/refresh", appointmentHandler.RefreshAppointments)
		desk.POST("/appointments/:appointment_id/pay", appointmentHandler.Pay)
		desk.POST("/appointments/:appointment_id/confirm", appointmentHandler.Confirm)
		desk.POST("/appointments/:appointment_id/start-visit", appointmentHandler.StartVisit)
		desk.POST("/appointments/:appointment_id/complete", appointmentHandler.Complete)
		desk.POST("/appointments/:appointment_id/cancel", appointmentHandler.Cancel)
		desk.POST("/appointments/:appointment_id/no-show", appointmentHandler.MarkNoShow)
		desk.POST("/appointments/:appointment_id/reschedule", appointmentHandler.Reschedule)

		desk.GET("/queue", appointmentHandler.QueueBoard)
		desk.POST("/queue/:department/call-next", appointmentHandler.CallNext)
	}
}
