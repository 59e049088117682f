package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Guliveer/livegame-go/internal/livegame"
	"github.com/Guliveer/livegame-go/internal/model"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
		"cache_entries": s.cacheLen(),
	})
}

func (s *Server) handleCacheStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.cacheStats())
}

func (s *Server) handleLiveGame(w http.ResponseWriter, r *http.Request) {
	platform, viewerID, msg := parseLiveParams(r)
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
		return
	}

	game, err := s.service.LiveGame(r.Context(), viewerID, platform)
	switch {
	case errors.Is(err, livegame.ErrPlayerNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "player not found"})
	case err != nil:
		s.log.Error("Live game lookup failed", "viewer", viewerID, "platform", platform.String(), "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	case game == nil:
		w.WriteHeader(http.StatusNoContent)
	default:
		writeJSON(w, http.StatusOK, game)
	}
}

// parseLiveParams reads {platform} and {playerID}. A non-empty message
// describes invalid input.
func parseLiveParams(r *http.Request) (model.PlatformRoute, int64, string) {
	platform, ok := model.ParsePlatformRoute(r.PathValue("platform"))
	if !ok {
		return "", 0, "unknown platform"
	}
	id, err := strconv.ParseInt(r.PathValue("playerID"), 10, 64)
	if err != nil || id <= 0 {
		return "", 0, "invalid player id"
	}
	return platform, id, ""
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v) //nolint:errcheck
}
