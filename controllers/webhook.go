// controllers/webhook.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"interview-reminder-backend/services"
	"interview-reminder-backend/utils"

	"github.com/gin-gonic/gin"
)

// WebhookController receives callbacks from the messaging provider:
// intake contact shares and reminder responses.
type WebhookController struct {
	Reminders *services.ReminderService
}

type ContactInput struct {
	Phone  string `json:"phone" binding:"required"`
	ChatID string `json:"chat_id" binding:"required"`
}

type ResponseInput struct {
	ChatID string `json:"chat_id" binding:"required"`
	Token  string `json:"token" binding:"required"`
}

// HandleContact binds the candidate's chat to their appointment and
// schedules the reminders.
func (w *WebhookController) HandleContact(c *gin.Context) {
	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	phone := utils.NormalizePhone(input.Phone)
	appointment, err := w.Reminders.BindChannel(phone, input.ChatID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownRecipient):
			utils.RespondWithError(c, http.StatusNotFound, "Phone number not found, please contact HR")
		case errors.Is(err, services.ErrChannelAlreadyBound):
			utils.RespondWithError(c, http.StatusConflict, "Contact already registered")
		case errors.Is(err, services.ErrMalformedAppointmentTime):
			log.Printf("Intake failed for phone %s: %v", phone, err)
			utils.RespondWithError(c, http.StatusUnprocessableEntity, "Appointment date or time is missing, please contact HR")
		default:
			log.Printf("Intake failed for phone %s: %v", phone, err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to register contact")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Contact registered, reminders scheduled",
		"appointmentId": appointment.ID,
	})
}

// HandleResponse records a confirm/decline reply to a reminder.
func (w *WebhookController) HandleResponse(c *gin.Context) {
	var input ResponseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := w.Reminders.HandleResponse(input.ChatID, input.Token); err != nil {
		switch {
		case errors.Is(err, services.ErrBadToken):
			utils.RespondWithError(c, http.StatusBadRequest, "Malformed response token")
		case errors.Is(err, services.ErrUnknownRecipient):
			log.Printf("Dropping response from unknown chat %s", input.ChatID)
			utils.RespondWithError(c, http.StatusNotFound, "No appointment for this chat")
		default:
			log.Printf("Response handling failed for chat %s: %v", input.ChatID, err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record response")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Response recorded"})
}
