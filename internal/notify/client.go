package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/BruksfildServices01/barberops/internal/httperr"
)

// Client fala com o endpoint externo de despacho (email / WhatsApp).
// Nenhum retry aqui: falha de envio é reportada e a ação fica por conta
// do usuário repetir.
type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url: url,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) Enabled() bool {
	return c.url != ""
}

type EmailContent struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type Payload struct {
	Type         string        `json:"type"`
	BookingID    uint          `json:"booking_id"`
	BookingData  any           `json:"booking_data,omitempty"`
	EmailContent *EmailContent `json:"email_content,omitempty"`
}

type result struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func (c *Client) Send(ctx context.Context, p Payload) error {
	if !c.Enabled() {
		return httperr.ErrBusiness("notifications_disabled")
	}

	body, err := json.Marshal(p)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var res result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return fmt.Errorf("notify: invalid response: %w", err)
	}

	if !res.OK {
		if res.Error != "" {
			return fmt.Errorf("notify: %s", res.Error)
		}
		return fmt.Errorf("notify: dispatch failed (status %d)", resp.StatusCode)
	}

	return nil
}
