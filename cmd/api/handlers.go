package main

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/lembrete-consorcio/internal/usecase"
)

// Opções de snooze que a interface mostra no overlay de lembrete.
func snoozeOptionsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(usecase.SnoozeOptions)
}
