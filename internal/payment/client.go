// Package payment is a minimal client for the card processor's
// payment-intent API.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.stripe.com"
	intentsPath    = "/v1/payment_intents"
	requestTimeout = 30 * time.Second
)

// Intent is the subset of the processor's payment-intent object the
// storefront needs: the client secret is handed to the browser to
// complete the card flow.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

type Client struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

func NewClient(secretKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		secretKey: secretKey,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		client:    &http.Client{Timeout: requestTimeout},
	}
}

// CreateIntent registers a card payment for the given amount in the
// currency's smallest unit and returns the intent with its client secret.
func (c *Client) CreateIntent(ctx context.Context, amountCents int64, currency string) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+intentsPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build intent request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read intent response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("payment api: %s (status %d)", apiErr.Error.Message, resp.StatusCode)
		}
		return nil, fmt.Errorf("payment api: status %d", resp.StatusCode)
	}

	var intent Intent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("decode intent: %w", err)
	}
	return &intent, nil
}
