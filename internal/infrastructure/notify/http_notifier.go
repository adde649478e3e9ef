package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/config"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/usecases"
)

// HTTPNotifier posts merchant notifications to an external push service.
// Every call is bounded by the configured timeout; a non-2xx response or a
// transport error is reported back as a failed NotifyResult, never an error.
type HTTPNotifier struct {
	url    string
	client *http.Client
}

func NewHTTPNotifier(cfg config.NotifierConfig) *HTTPNotifier {
	return &HTTPNotifier{
		url:    cfg.URL,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type notifyRequest struct {
	MerchantID string                 `json:"merchant_id"`
	Event      string                 `json:"event"`
	Payload    map[string]interface{} `json:"payload"`
}

func (n *HTTPNotifier) Notify(ctx context.Context, merchantID uuid.UUID, event string, payload map[string]interface{}) usecases.NotifyResult {
	if n.url == "" {
		return usecases.NotifyResult{Success: false, Error: "notifier url not configured"}
	}

	body, err := json.Marshal(notifyRequest{
		MerchantID: merchantID.String(),
		Event:      event,
		Payload:    payload,
	})
	if err != nil {
		return usecases.NotifyResult{Success: false, Error: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return usecases.NotifyResult{Success: false, Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return usecases.NotifyResult{Success: false, Error: err.Error()}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return usecases.NotifyResult{Success: false, Error: "push service returned " + resp.Status}
	}
	return usecases.NotifyResult{Success: true}
}
