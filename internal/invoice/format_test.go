package invoice

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barberops/internal/models"
)

func sampleBooking() *models.Booking {
	return &models.Booking{
		ID:           7,
		CustomerName: "João",
		Service:      "Corte + Barba",
		Price:        80,
		Date:         "2026-03-10",
		Time:         "14:30",
		Staff:        models.User{Name: "Rafael"},
	}
}

func TestNumber_Pattern(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 4, 5, 123_000_000, time.UTC)
	n := Number(now)

	re := regexp.MustCompile(`^INV-\d{8}-\d{4}$`)
	assert.Regexp(t, re, n)
	assert.True(t, strings.HasPrefix(n, "INV-20260310-"))
}

func TestTotal_IsPricePlusFee(t *testing.T) {
	for _, price := range []float64{0, 35, 80, 149.9} {
		assert.InDelta(t, price+ProcessingFee, Total(price), 1e-9)
	}
}

func TestFormatInvoice(t *testing.T) {
	b := sampleBooking()
	s := &models.ShopSettings{ShopName: "Barbearia Central"}
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	subject, html := FormatInvoice(b, s, "pt", now)

	assert.Contains(t, subject, "Barbearia Central")
	assert.Contains(t, subject, "INV-20260310-")
	assert.Contains(t, html, "João")
	assert.Contains(t, html, "Corte + Barba")
	assert.Contains(t, html, "Rafael")
	assert.Contains(t, html, "R$ 80.00")
	assert.Contains(t, html, "R$ 85.00") // total = preço + taxa fixa
}

func TestFormatInvoice_UnknownLocaleFallsBackToPT(t *testing.T) {
	b := sampleBooking()
	s := &models.ShopSettings{ShopName: "Barbearia Central"}
	now := time.Now()

	_, htmlPT := FormatInvoice(b, s, "pt", now)
	_, htmlXX := FormatInvoice(b, s, "xx", now)
	assert.Contains(t, htmlXX, "Taxa de processamento")
	assert.Equal(t, htmlPT, htmlXX)
}

func TestFormatInvoice_PrefersLinkedCustomerName(t *testing.T) {
	b := sampleBooking()
	b.Customer = &models.Customer{Name: "João Pedro"}
	s := &models.ShopSettings{ShopName: "Barbearia Central"}

	_, html := FormatInvoice(b, s, "pt", time.Now())
	assert.Contains(t, html, "João Pedro")
}

func TestFormatWhatsAppText(t *testing.T) {
	b := sampleBooking()

	pt := FormatWhatsAppText(b, "pt")
	assert.Contains(t, pt, "João")
	assert.Contains(t, pt, "2026-03-10")
	assert.Contains(t, pt, "14:30")
	assert.Contains(t, pt, "R$ 80.00")

	en := FormatWhatsAppText(b, "en")
	assert.Contains(t, en, "Confirming your appointment")
}
