package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/psellars/cardtable/internal/record"
)

const (
	// Time between keepalive pings
	pingPeriod = 30 * time.Second

	// Buffer size for outgoing updates; a client this far behind is dropped
	sendBufferSize = 64
)

// StreamHandler pushes committed game updates to clients over SSE
type StreamHandler struct {
	records *record.Adapter
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(records *record.Adapter) *StreamHandler {
	return &StreamHandler{records: records}
}

// streamPayload is one SSE data frame: the full record plus the events for
// the transition that produced it
type streamPayload struct {
	Game   any `json:"game"`
	Events any `json:"events,omitempty"`
}

// Stream handles GET /api/v1/games/{code}/stream
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	code := gameCode(r)
	if exists, err := h.records.Exists(r.Context(), code); err != nil || !exists {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	send := make(chan record.Update, sendBufferSize)
	unsubscribe := h.records.Subscribe(code, func(u record.Update) {
		select {
		case send <- u:
		default:
			// Slow consumer; they will resync from the next full record
		}
	})
	defer unsubscribe()

	_, _ = w.Write([]byte("event: connected\ndata: {\"status\":\"connected\"}\n\n"))
	flusher.Flush()

	// Send the current record so the client starts in sync
	if game, err := h.records.Read(r.Context(), code); err == nil {
		if err := writeUpdate(w, record.Update{Game: game}); err != nil {
			return
		}
		flusher.Flush()
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case update := <-send:
			if err := writeUpdate(w, update); err != nil {
				return
			}
			flusher.Flush()

		case <-ticker.C:
			if _, err := w.Write([]byte(": keepalive\n\n")); err != nil {
				return
			}
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

func writeUpdate(w http.ResponseWriter, update record.Update) error {
	data, err := json.Marshal(streamPayload{Game: update.Game, Events: update.Events})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: update\ndata: %s\n\n", data)
	return err
}
