package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/KirkDiggler/dicesim/internal/models"
	"github.com/KirkDiggler/dicesim/internal/services/roller"
)

// msgUnexpected is all a client learns about failures that aren't its fault
const msgUnexpected = "An unexpected error occurred"

type rollResponse struct {
	Success    bool               `json:"success"`
	Result     *models.Roll       `json:"result"`
	Statistics *models.Statistics `json:"statistics"`
}

type historyResponse struct {
	Success    bool               `json:"success"`
	History    []*models.Roll     `json:"history"`
	Statistics *models.Statistics `json:"statistics"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps validation failures to 400 with their message and
// everything else to a generic 500
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *roller.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Success: false,
			Error:   validationErr.Message,
		})
		return
	}

	s.logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)

	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Success: false,
		Error:   msgUnexpected,
	})
}
