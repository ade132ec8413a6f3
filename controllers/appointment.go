// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"

	"interview-reminder-backend/config"
	"interview-reminder-backend/models"
	"interview-reminder-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAppointmentInput defines the expected JSON structure
type CreateAppointmentInput struct {
	CandidateName string `json:"candidateName" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	InterviewDate string `json:"interviewDate" binding:"required"` // YYYY-MM-DD
	InterviewTime string `json:"interviewTime" binding:"required"` // HH:MM or HH:MM:SS
	Location      string `json:"location" binding:"required"`
	HRContact     string `json:"hrContact"`
}

// CreateAppointment registers a new interview appointment. Reminders are
// not scheduled here; that happens when the candidate completes intake.
func CreateAppointment(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	phone := utils.NormalizePhone(input.Phone)

	// Check the phone isn't already tied to an appointment
	var existing models.Appointment
	if err := config.DB.Where("phone = ?", phone).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Appointment for this phone already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	appointment := models.Appointment{
		CreatedByUserID: userUUID,
		CandidateName:   input.CandidateName,
		Phone:           phone,
		InterviewDate:   input.InterviewDate,
		InterviewTime:   input.InterviewTime,
		Location:        input.Location,
		HRContact:       input.HRContact,
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments lists all appointments
func GetAppointments(c *gin.Context) {
	var appointments []models.Appointment
	if err := config.DB.Order("interview_date, interview_time").Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment returns one appointment with its per-kind reminder status
func GetAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appointment models.Appointment
	if err := config.DB.First(&appointment, "id = ?", appointmentUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointment": appointment,
		"reminders": gin.H{
			string(models.KindDayBefore):  appointment.DayBeforeStatus,
			string(models.KindHourBefore): appointment.HourBeforeStatus,
			string(models.KindAtTime):     appointment.AtTimeStatus,
		},
	})
}

// GetAppointmentLogs returns the dispatch history for one appointment
func GetAppointmentLogs(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var logs []models.ReminderLog
	if err := config.DB.Where("appointment_id = ?", appointmentUUID).
		Order("sent_at desc").Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}
