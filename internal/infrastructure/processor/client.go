package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/RozoAI/rozo-app-backend-sub000/internal/config"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/usecases"
)

// Client talks to the external payment processor API. It issues payment links
// at record creation and resolves fiat exchange rates; settlement itself and
// webhook delivery happen on the processor's side.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(cfg config.PaymentConfig) *Client {
	return &Client{
		baseURL: cfg.ProcessorURL,
		apiKey:  cfg.ProcessorKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type createLinkRequest struct {
	ExternalID string `json:"externalId"`
	AmountUSD  string `json:"amountUsd"`
	Token      string `json:"token"`
	ChainID    string `json:"chainId"`
	Address    string `json:"address"`
	ExpiresAt  string `json:"expiresAt"`
}

type createLinkResponse struct {
	PaymentID string `json:"paymentId"`
	URL       string `json:"url"`
}

// CreateLink registers a payment intent with the processor and returns the
// hosted link the payer is sent to.
func (c *Client) CreateLink(ctx context.Context, number, amountUSD, token, chainID, address string, expiresAt time.Time) (*usecases.PaymentLink, error) {
	if c.baseURL == "" {
		return nil, errors.New("processor url not configured")
	}

	body, err := json.Marshal(createLinkRequest{
		ExternalID: number,
		AmountUSD:  amountUSD,
		Token:      token,
		ChainID:    chainID,
		Address:    address,
		ExpiresAt:  expiresAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payment-links", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("processor returned %s creating payment link", resp.Status)
	}

	var out createLinkResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.PaymentID == "" || out.URL == "" {
		return nil, errors.New("processor returned incomplete payment link")
	}
	return &usecases.PaymentLink{PaymentID: out.PaymentID, URL: out.URL}, nil
}

type rateResponse struct {
	Currency string  `json:"currency"`
	USDRate  float64 `json:"usdRate"`
}

// GetUSDRate resolves one unit of the given fiat currency to USD
func (c *Client) GetUSDRate(ctx context.Context, currency string) (float64, error) {
	if c.baseURL == "" {
		return 0, errors.New("processor url not configured")
	}

	endpoint := c.baseURL + "/rates?currency=" + url.QueryEscape(currency)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("processor returned %s for rate lookup", resp.Status)
	}

	var out rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, err
	}
	if out.USDRate <= 0 {
		return 0, fmt.Errorf("no usable rate for %s", currency)
	}
	return out.USDRate, nil
}
