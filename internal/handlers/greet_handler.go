package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/diegoclair/slack-greet-bot/internal/domain/entity"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const holidayBody = "Holiday!"

func (h *Handler) GreetStart(w http.ResponseWriter, r *http.Request) {
	h.handleGreet(w, r, h.greet.GreetStart)
}

func (h *Handler) GreetEnd(w http.ResponseWriter, r *http.Request) {
	h.handleGreet(w, r, h.greet.GreetEnd)
}

type greetFunc func(ctx context.Context, channelID string) (*entity.PostResult, error)

func (h *Handler) handleGreet(w http.ResponseWriter, r *http.Request, greet greetFunc) {
	channelID := chi.URLParam(r, "id")

	result, err := greet(r.Context(), channelID)
	if err != nil {
		h.log.Error("greeting failed", zap.String("channel", channelID), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if result.Holiday {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(holidayBody))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.log.Error("failed to write response", zap.Error(err))
	}
}
