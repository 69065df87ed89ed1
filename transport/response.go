package transport

import (
	"encoding/json"
	"net/http"

	"github.com/Sanushoffl/toteebags/model"
	"github.com/Sanushoffl/toteebags/utils/errors"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, v interface{}) {
	writeJSON(w, http.StatusOK, v)
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, model.MessageResponse{
		Success: true,
		Message: message,
	})
}

func writeError(w http.ResponseWriter, err error) {
	if cerr, ok := err.(errors.CustomError); ok {
		writeJSON(w, cerr.ErrorHTTPCode(), model.ErrorResponse{
			Success: false,
			Message: cerr.Error(),
			Code:    cerr.ErrorCode(),
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		Success: false,
		Message: err.Error(),
	})
}
