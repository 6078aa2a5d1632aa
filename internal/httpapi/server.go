// Package httpapi is the entry point: it receives the webhook notification,
// fetches the triggering message, and hands its text to the bot.
package httpapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/madzombie/spark-bot/internal/bot"
	"github.com/madzombie/spark-bot/internal/spark"
)

type Server struct {
	bot      *bot.Bot
	messages *spark.Client
}

func NewServer(b *bot.Bot, messages *spark.Client) *Server {
	return &Server{bot: b, messages: messages}
}

func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "spark-bot",
	})
}

// Webhook runs one invocation to completion. Handler-level failures are
// reported into the room by the bot and still answer 200 here; only a bad
// envelope or a failed message fetch surface as HTTP errors.
func (s *Server) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable body"})
		return
	}

	ev, err := ParseEvent(body)
	if err != nil {
		slog.Warn("rejecting webhook", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	invocation := uuid.NewString()
	slog.Debug("received event", "invocation", invocation, "event", string(body))

	msg, err := s.messages.GetMessage(r.Context(), ev.Data.ID)
	if err != nil {
		slog.Error("fetching triggering message failed",
			"invocation", invocation, "message_id", ev.Data.ID, "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "could not fetch message"})
		return
	}

	slog.Info("dispatching", "invocation", invocation, "room", ev.Data.RoomID, "text", msg.Text)
	s.bot.Dispatch(r.Context(), ev.Data.RoomID, msg.Text)

	writeJSON(w, http.StatusOK, map[string]string{"status": "Finished"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
