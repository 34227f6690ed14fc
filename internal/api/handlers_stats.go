package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleEmbeddingStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if s.embedStats == nil {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"provider": "lexical",
		})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"provider": "remote",
		"stats":    s.embedStats.Snapshot(),
	})
}
