package handlers

import (
	"net/http"

	"github.com/Dias221467/Birthday_Wall/internal/models"
	"github.com/Dias221467/Birthday_Wall/internal/services"
	"github.com/sirupsen/logrus"
)

type SlideHandler struct {
	Service *services.SlideService
}

func NewSlideHandler(service *services.SlideService) *SlideHandler {
	return &SlideHandler{Service: service}
}

// GetSlidesHandler returns the carousel slides, oldest first.
func (h *SlideHandler) GetSlidesHandler(w http.ResponseWriter, r *http.Request) {
	slides, err := h.Service.ListSlides(r.Context())
	if err != nil {
		respondError(w, err, "Failed to fetch slides")
		return
	}
	if slides == nil {
		slides = []models.Slide{}
	}
	respondJSON(w, http.StatusOK, slides)
}

func (h *SlideHandler) CreateSlideHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSlideRequest
	if err := decodeJSON(r, &req); err != nil {
		logrus.WithError(err).Warn("Failed to decode slide request")
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request payload"})
		return
	}

	slide, err := h.Service.CreateSlide(r.Context(), req)
	if err != nil {
		respondError(w, err, "Failed to create slide")
		return
	}
	respondJSON(w, http.StatusCreated, slide)
}
