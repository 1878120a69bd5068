package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"frontdesk/models"
	"frontdesk/services"
	"frontdesk/utils"
)

type BookingController struct {
	Bookings  *services.BookingService
	Reminders *services.CheckoutReminderService
	SMS       *services.SMSService
}

func NewBookingController(bookings *services.BookingService, reminders *services.CheckoutReminderService, sms *services.SMSService) *BookingController {
	return &BookingController{Bookings: bookings, Reminders: reminders, SMS: sms}
}

type bookingRequest struct {
	RoomID      string  `json:"roomId" binding:"required"`
	GuestName   string  `json:"guestName" binding:"required"`
	Phone       string  `json:"phone"`
	CheckIn     string  `json:"checkIn" binding:"required"`
	CheckOut    string  `json:"checkOut" binding:"required"`
	TotalAmount float64 `json:"totalAmount"`
	PaidAmount  float64 `json:"paidAmount"`
	Notes       string  `json:"notes"`
}

// GET /api/bookings
func (bc *BookingController) GetBookings(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, bc.Bookings.ListAll(c.Request.Context()))
}

// GET /api/bookings/:id
func (bc *BookingController) GetBookingByID(c *gin.Context) {
	booking := bc.Bookings.GetByID(c.Request.Context(), c.Param("id"))
	if booking == nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// POST /api/bookings
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	booking := models.Booking{
		ID:          utils.NewID(),
		RoomID:      req.RoomID,
		GuestName:   strings.TrimSpace(req.GuestName),
		Phone:       models.NormalizePhone(req.Phone),
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		TotalAmount: req.TotalAmount,
		PaidAmount:  req.PaidAmount,
		Notes:       req.Notes,
		PhotoURIs:   []string{},
	}

	if err := models.ValidateBooking(booking); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := bc.Bookings.Upsert(c.Request.Context(), booking); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save booking")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// PUT /api/bookings/:id
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	ctx := c.Request.Context()
	existing := bc.Bookings.GetByID(ctx, c.Param("id"))
	if existing == nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found")
		return
	}

	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	// Photos and the reminder token are mutated through their own
	// endpoints, never through a field edit.
	booking := models.Booking{
		ID:                     existing.ID,
		RoomID:                 req.RoomID,
		GuestName:              strings.TrimSpace(req.GuestName),
		Phone:                  models.NormalizePhone(req.Phone),
		CheckIn:                req.CheckIn,
		CheckOut:               req.CheckOut,
		TotalAmount:            req.TotalAmount,
		PaidAmount:             req.PaidAmount,
		Notes:                  req.Notes,
		PhotoURIs:              existing.PhotoURIs,
		CheckoutNotificationID: existing.CheckoutNotificationID,
	}

	if err := models.ValidateBooking(booking); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := bc.Bookings.Upsert(ctx, booking); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// DELETE /api/bookings/:id
//
// The repository does not auto-cancel reminders, so the handler — a
// caller — cancels before deleting.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if existing := bc.Bookings.GetByID(ctx, id); existing != nil && existing.CheckoutNotificationID != "" {
		if _, err := bc.Reminders.Cancel(ctx, id); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to cancel checkout reminder")
			return
		}
	}

	if err := bc.Bookings.Delete(ctx, id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// POST /api/bookings/:id/reminder
func (bc *BookingController) ScheduleReminder(c *gin.Context) {
	booking, err := bc.Reminders.Schedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrReminderInPast) {
			utils.JSONError(c, http.StatusBadRequest, "checkout date is not in the future")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to schedule reminder")
		return
	}
	if booking == nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// DELETE /api/bookings/:id/reminder
func (bc *BookingController) CancelReminder(c *gin.Context) {
	booking, err := bc.Reminders.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel reminder")
		return
	}
	if booking == nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// POST /api/bookings/:id/sms
func (bc *BookingController) SendSMS(c *gin.Context) {
	found, err := bc.SMS.SendPaymentSummary(c.Request.Context(), c.Param("id"))
	if !found {
		utils.JSONError(c, http.StatusNotFound, "booking not found")
		return
	}
	if err != nil {
		if errors.Is(err, services.ErrNoPhone) {
			utils.JSONError(c, http.StatusBadRequest, "booking has no phone number")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to send message")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"sent": true})
}
