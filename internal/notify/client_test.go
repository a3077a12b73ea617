package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSend_OK(t *testing.T) {
	var got Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Send(context.Background(), Payload{
		Type:      "booking_invoice",
		BookingID: 42,
		EmailContent: &EmailContent{
			To:      "cliente@example.com",
			Subject: "Fatura",
			HTML:    "<html></html>",
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "booking_invoice", got.Type)
	assert.Equal(t, uint(42), got.BookingID)
	assert.Equal(t, "cliente@example.com", got.EmailContent.To)
}

func TestSend_BackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "smtp unavailable"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Send(context.Background(), Payload{Type: "booking_invoice", BookingID: 1})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "smtp unavailable")
}

func TestSend_Disabled(t *testing.T) {
	c := NewClient("")
	err := c.Send(context.Background(), Payload{Type: "booking_invoice"})
	assert.Error(t, err)
}
