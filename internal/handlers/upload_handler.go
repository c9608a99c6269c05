package handlers

import (
	"errors"
	"net/http"

	"github.com/Dias221467/Birthday_Wall/internal/services"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	Service  *services.UploadService
	MaxBytes int64
}

func NewUploadHandler(service *services.UploadService, maxBytes int64) *UploadHandler {
	return &UploadHandler{Service: service, MaxBytes: maxBytes}
}

// UploadImageHandler stores an image from the "file" form field and returns its public URL.
// The page then posts that URL to /api/slides.
func (h *UploadHandler) UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxBytes)
	if err := r.ParseMultipartForm(h.MaxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "File too big"})
			return
		}
		logrus.WithError(err).Warn("Invalid multipart upload")
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "File too big or invalid format"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing file in request"})
		return
	}
	defer file.Close()

	upload, err := h.Service.SaveImage(file, header.Filename)
	if err != nil {
		respondError(w, err, "Failed to save file")
		return
	}
	respondJSON(w, http.StatusCreated, upload)
}
