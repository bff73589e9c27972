// Package notification implements the transient message sink. Store
// mutations fire toasts through it; delivery failures never reach the
// caller.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"medifinder/config"
	"medifinder/internal/domain/service"

	"github.com/google/uuid"
)

// toastNotifier implements service.Notifier by sending HTTP POST requests
// to a local endpoint, simulating a push channel for development. With no
// endpoint configured it only logs.
type toastNotifier struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// ToastMessage is the wire structure POSTed to the endpoint
type ToastMessage struct {
	MessageID   string `json:"messageId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SentAt      string `json:"sentAt"`
}

// NewToastNotifier creates the notifier from configuration
func NewToastNotifier(cfg *config.Config, logger *slog.Logger) service.Notifier {
	endpoint := ""
	if cfg.Notify != nil {
		endpoint = cfg.Notify.Endpoint
	}

	return &toastNotifier{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Notify shows a transient message with a title and a description
func (n *toastNotifier) Notify(ctx context.Context, title, description string) {
	n.logger.Info("[Toast] "+title, slog.String("description", description))

	if n.endpoint == "" {
		return
	}

	msg := ToastMessage{
		MessageID:   uuid.NewString(),
		Title:       title,
		Description: description,
		SentAt:      time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		n.logger.Warn("toast marshal failed", slog.Any("error", err))

		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		n.logger.Warn("toast request failed", slog.Any("error", err))

		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.logger.Warn("toast delivery failed", slog.Any("error", err))

		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		n.logger.Warn("toast endpoint returned non-success status",
			slog.Int("status", resp.StatusCode),
		)
	}
}
