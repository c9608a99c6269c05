package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Dias221467/Birthday_Wall/pkg/apperrors"
	"github.com/sirupsen/logrus"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Could not encode JSON body")
	}
}

// respondError logs err and writes a generic {"error": ...} body. Only validation and
// not-found messages reach the client; everything else becomes fallback.
func respondError(w http.ResponseWriter, err error, fallback string) {
	status := apperrors.HTTPStatus(err)
	entry := logrus.WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error(fallback)
	} else {
		entry.Warn(fallback)
	}
	respondJSON(w, status, errorResponse{Error: apperrors.PublicMessage(err, fallback)})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
