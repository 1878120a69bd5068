package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"frontdesk/models"
	"frontdesk/services"
	"frontdesk/utils"
)

type RoomController struct {
	Rooms     *services.RoomService
	Bookings  *services.BookingService
	Integrity *services.IntegrityService
}

func NewRoomController(rooms *services.RoomService, bookings *services.BookingService, integrity *services.IntegrityService) *RoomController {
	return &RoomController{Rooms: rooms, Bookings: bookings, Integrity: integrity}
}

type roomRequest struct {
	Number        string  `json:"number" binding:"required"`
	Capacity      int     `json:"capacity"`
	PricePerNight float64 `json:"pricePerNight"`
	Status        string  `json:"status"`
}

// GET /api/rooms
func (rc *RoomController) GetRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.Rooms.ListAll(c.Request.Context()))
}

// POST /api/rooms/seed
func (rc *RoomController) SeedRooms(c *gin.Context) {
	rooms, err := rc.Rooms.SeedIfEmpty(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to seed rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GET /api/rooms/:id
func (rc *RoomController) GetRoomByID(c *gin.Context) {
	room := rc.Rooms.GetByID(c.Request.Context(), c.Param("id"))
	if room == nil {
		utils.JSONError(c, http.StatusNotFound, "room not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// POST /api/rooms
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	status := models.RoomStatus(req.Status)
	if req.Status == "" {
		status = models.RoomStatusFree
	}

	room := models.Room{
		ID:            utils.NewID(),
		Number:        strings.TrimSpace(req.Number),
		Capacity:      req.Capacity,
		PricePerNight: req.PricePerNight,
		Status:        status,
	}

	ctx := c.Request.Context()
	if err := models.ValidateRoom(room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if rc.Rooms.IsNumberTaken(ctx, room.Number, "") {
		utils.JSONError(c, http.StatusConflict, fmt.Sprintf("room number %q already exists", room.Number))
		return
	}
	if err := rc.Rooms.Upsert(ctx, room); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save room")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// PUT /api/rooms/:id
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	ctx := c.Request.Context()
	existing := rc.Rooms.GetByID(ctx, c.Param("id"))
	if existing == nil {
		utils.JSONError(c, http.StatusNotFound, "room not found")
		return
	}

	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room := models.Room{
		ID:            existing.ID,
		Number:        strings.TrimSpace(req.Number),
		Capacity:      req.Capacity,
		PricePerNight: req.PricePerNight,
		Status:        existing.Status,
	}
	if req.Status != "" {
		room.Status = models.RoomStatus(req.Status)
	}

	if err := models.ValidateRoom(room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if rc.Rooms.IsNumberTaken(ctx, room.Number, room.ID) {
		utils.JSONError(c, http.StatusConflict, fmt.Sprintf("room number %q already exists", room.Number))
		return
	}
	if err := rc.Rooms.Upsert(ctx, room); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

type roomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /api/rooms/:id/status
func (rc *RoomController) UpdateRoomStatus(c *gin.Context) {
	var req roomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	status := models.RoomStatus(req.Status)
	if !models.ValidRoomStatus(status) {
		utils.JSONError(c, http.StatusBadRequest, "unknown room status")
		return
	}

	// Missing rooms are a silent no-op by contract.
	if err := rc.Rooms.UpdateStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update status")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"status": status})
}

// DELETE /api/rooms/:id
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	if err := rc.Rooms.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// GET /api/rooms/:id/active-booking
func (rc *RoomController) GetActiveBooking(c *gin.Context) {
	booking := rc.Bookings.ActiveBookingForRoom(c.Request.Context(), c.Param("id"))
	if booking == nil {
		utils.JSONError(c, http.StatusNotFound, "no active booking for room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// GET /api/rooms/integrity
func (rc *RoomController) IntegrityReport(c *gin.Context) {
	orphans := rc.Integrity.OrphanedBookings(c.Request.Context())
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"orphanedBookings": orphans,
		"count":            len(orphans),
	})
}
