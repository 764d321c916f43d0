package web

import (
	"net/http"

	"github.com/KirkDiggler/dicesim/internal/models"
	"github.com/KirkDiggler/dicesim/internal/services/roller"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(s.indexPage)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// handleRoll handles POST /api/roll
func (s *Server) handleRoll(w http.ResponseWriter, r *http.Request) {
	input, err := parseRollRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	output, err := s.rollerService.RollDice(r.Context(), input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rollResponse{
		Success:    true,
		Result:     output.Roll,
		Statistics: output.Statistics,
	})
}

// handleHistory handles GET /api/history
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	output, err := s.rollerService.GetHistory(r.Context(), &roller.GetHistoryInput{
		Limit: s.historyLimit,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rolls := output.Rolls
	if rolls == nil {
		rolls = []*models.Roll{}
	}

	writeJSON(w, http.StatusOK, historyResponse{
		Success:    true,
		History:    rolls,
		Statistics: output.Statistics,
	})
}

// handleClear handles POST /api/clear
func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if _, err := s.rollerService.ClearHistory(r.Context(), &roller.ClearHistoryInput{}); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Success: true,
		Message: "History cleared",
	})
}
