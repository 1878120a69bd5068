package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"frontdesk/services"
	"frontdesk/utils"
)

// PhotoController stores uploaded photos on disk and keeps the resulting
// URI on the booking. The booking only ever sees the URI string; files are
// served statically from the upload dir.
type PhotoController struct {
	Bookings  *services.BookingService
	UploadDir string
}

func NewPhotoController(bookings *services.BookingService, uploadDir string) *PhotoController {
	return &PhotoController{Bookings: bookings, UploadDir: uploadDir}
}

// POST /api/bookings/:id/photos (multipart, field "photo")
func (pc *PhotoController) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "missing photo file")
		return
	}

	if err := os.MkdirAll(pc.UploadDir, 0o755); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to prepare upload dir")
		return
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	dst := filepath.Join(pc.UploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store photo")
		return
	}

	uri := "/uploads/" + name
	booking, err := pc.Bookings.AddPhoto(c.Request.Context(), c.Param("id"), uri)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to attach photo")
		return
	}
	if booking == nil {
		_ = os.Remove(dst)
		utils.JSONError(c, http.StatusNotFound, "booking not found")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

type photoRemoveRequest struct {
	URI string `json:"uri" binding:"required"`
}

// DELETE /api/bookings/:id/photos
//
// Only the URI leaves the booking; the file itself is kept. URIs are
// opaque and may not even point into the upload dir.
func (pc *PhotoController) DeletePhoto(c *gin.Context) {
	var req photoRemoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	booking, err := pc.Bookings.RemovePhoto(c.Request.Context(), c.Param("id"), req.URI)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to remove photo")
		return
	}
	if booking == nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
