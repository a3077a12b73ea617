package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/barberops/internal/models"
)

// Textos por idioma. Sem motor de template: substituição direta de campos,
// igual ao restante do app. "pt" é o idioma padrão.
type catalog struct {
	subject   string
	greeting  string
	detail    string
	feeLabel  string
	total     string
	footer    string
	whatsapp  string
	dateLabel string
}

var locales = map[string]catalog{
	"pt": {
		subject:   "Fatura %s — %s",
		greeting:  "Olá, %s!",
		detail:    "Serviço: %s com %s",
		feeLabel:  "Taxa de processamento",
		total:     "Total",
		footer:    "Obrigado pela preferência!",
		whatsapp:  "Olá %s! Confirmando seu horário: %s às %s — %s (R$ %.2f) com %s. Até lá!",
		dateLabel: "Data",
	},
	"en": {
		subject:   "Invoice %s — %s",
		greeting:  "Hello, %s!",
		detail:    "Service: %s with %s",
		feeLabel:  "Processing fee",
		total:     "Total",
		footer:    "Thank you for your visit!",
		whatsapp:  "Hi %s! Confirming your appointment: %s at %s — %s (R$ %.2f) with %s. See you!",
		dateLabel: "Date",
	},
}

func localeStrings(locale string) catalog {
	if s, ok := locales[locale]; ok {
		return s
	}
	return locales["pt"]
}

// FormatInvoice monta assunto e corpo HTML da fatura de um agendamento.
// Puro: nenhum envio acontece aqui; entrega é problema de quem chama.
func FormatInvoice(b *models.Booking, s *models.ShopSettings, locale string, now time.Time) (subject, html string) {
	ls := localeStrings(locale)
	number := Number(now)
	name := b.DisplayName()

	subject = fmt.Sprintf(ls.subject, number, s.ShopName)

	var sb strings.Builder
	sb.WriteString("<html><body>")
	sb.WriteString(fmt.Sprintf("<h2>%s</h2>", s.ShopName))
	sb.WriteString(fmt.Sprintf("<p>%s</p>", fmt.Sprintf(ls.greeting, name)))
	sb.WriteString(fmt.Sprintf("<p><strong>%s</strong></p>", number))
	sb.WriteString(fmt.Sprintf("<p>%s: %s %s</p>", ls.dateLabel, b.Date, b.Time))
	sb.WriteString(fmt.Sprintf("<p>%s</p>", fmt.Sprintf(ls.detail, b.Service, b.Staff.Name)))
	sb.WriteString("<table>")
	sb.WriteString(fmt.Sprintf("<tr><td>%s</td><td>R$ %.2f</td></tr>", b.Service, b.Price))
	sb.WriteString(fmt.Sprintf("<tr><td>%s</td><td>R$ %.2f</td></tr>", ls.feeLabel, ProcessingFee))
	sb.WriteString(fmt.Sprintf("<tr><td><strong>%s</strong></td><td><strong>R$ %.2f</strong></td></tr>", ls.total, Total(b.Price)))
	sb.WriteString("</table>")
	sb.WriteString(fmt.Sprintf("<p>%s</p>", ls.footer))
	sb.WriteString("</body></html>")

	return subject, sb.String()
}

// FormatWhatsAppText monta o texto de confirmação para compartilhar
// (área de transferência / link wa.me). Puro, sem efeitos.
func FormatWhatsAppText(b *models.Booking, locale string) string {
	ls := localeStrings(locale)
	return fmt.Sprintf(
		ls.whatsapp,
		b.DisplayName(),
		b.Date,
		b.Time,
		b.Service,
		b.Price,
		b.Staff.Name,
	)
}
