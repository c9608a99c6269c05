package handlers

import (
	"net/http"

	"github.com/Dias221467/Birthday_Wall/internal/models"
	"github.com/Dias221467/Birthday_Wall/internal/services"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type WishHandler struct {
	Service *services.WishService
}

func NewWishHandler(service *services.WishService) *WishHandler {
	return &WishHandler{Service: service}
}

// GetWishesHandler returns all wishes, newest first.
func (h *WishHandler) GetWishesHandler(w http.ResponseWriter, r *http.Request) {
	wishes, err := h.Service.ListWishes(r.Context())
	if err != nil {
		respondError(w, err, "Failed to fetch wishes")
		return
	}
	if wishes == nil {
		wishes = []models.Wish{}
	}
	respondJSON(w, http.StatusOK, wishes)
}

// CreateWishHandler handles creation of a new wish
func (h *WishHandler) CreateWishHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateWishRequest
	if err := decodeJSON(r, &req); err != nil {
		logrus.WithError(err).Warn("Failed to decode wish request")
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request payload"})
		return
	}

	wish, err := h.Service.CreateWish(r.Context(), req)
	if err != nil {
		respondError(w, err, "Failed to create wish")
		return
	}
	respondJSON(w, http.StatusCreated, wish)
}

// LikeWishHandler adds one like to a wish.
func (h *WishHandler) LikeWishHandler(w http.ResponseWriter, r *http.Request) {
	wishID := mux.Vars(r)["id"]

	wish, err := h.Service.LikeWish(r.Context(), wishID)
	if err != nil {
		respondError(w, err, "Failed to like wish")
		return
	}

	logrus.WithFields(logrus.Fields{
		"wishID": wishID,
		"likes":  wish.Likes,
	}).Info("Wish liked")
	respondJSON(w, http.StatusOK, wish)
}
