package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/barberops/internal/httperr"
	"github.com/BruksfildServices01/barberops/internal/models"
)

// Link é o retorno do checkout hospedado: id da preferência + URL.
type Link struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// LinkCreator cria links de pagamento (checkout hospedado do Mercado Pago)
// para um agendamento. O processamento em si acontece fora daqui.
type LinkCreator struct {
	prefs preference.Client
}

// NewLinkCreator devolve nil quando o token não está configurado;
// o handler traduz isso para payments_disabled.
func NewLinkCreator(accessToken string) (*LinkCreator, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("payments: %w", err)
	}

	return &LinkCreator{prefs: preference.NewClient(cfg)}, nil
}

func (l *LinkCreator) CreateBookingLink(ctx context.Context, b *models.Booking, shopName string) (*Link, error) {
	if b.Price <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:       fmt.Sprintf("%s — %s", shopName, b.Service),
				Description: fmt.Sprintf("%s %s", b.Date, b.Time),
				Quantity:    1,
				CurrencyID:  "BRL",
				UnitPrice:   b.Price,
			},
		},
		ExternalReference: fmt.Sprintf("booking-%d", b.ID),
	}

	if name := b.DisplayName(); name != "" {
		req.Payer = &preference.PayerRequest{Name: name}
	}

	resp, err := l.prefs.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("payments: create preference: %w", err)
	}

	return &Link{ID: resp.ID, URL: resp.InitPoint}, nil
}
