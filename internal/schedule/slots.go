package schedule

import (
	"strings"
	"time"
)

// Grade fixa de 15 minutos; o passo não é configurável por barbearia.
const SlotInterval = 15 * time.Minute

const clockLayout = "15:04"

// GenerateTimeSlots produz os horários agendáveis entre a abertura e o
// fechamento, em passos de 15 minutos, emitindo enquanto o horário corrente
// for estritamente menor que o fechamento. Abertura >= fechamento resulta em
// lista vazia; isso não é erro. Entrada malformada também não é erro: a
// validação do formato é responsabilidade de quem chama.
func GenerateTimeSlots(opening, closing string) []string {
	// nunca nil: a grade vazia serializa como [] no JSON
	slots := []string{}

	start, err := time.Parse(clockLayout, opening)
	if err != nil {
		return slots
	}
	end, err := time.Parse(clockLayout, closing)
	if err != nil {
		return slots
	}

	for cur := start; cur.Before(end); cur = cur.Add(SlotInterval) {
		slots = append(slots, cur.Format(clockLayout))
	}
	return slots
}

// NormalizeTime reduz HH:MM:SS para HH:MM. Idempotente: uma entrada já
// normalizada volta inalterada. Os dois lados (gravação e leitura) precisam
// passar por aqui, senão o encaixe de horário na grade falha em silêncio.
func NormalizeTime(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 5 && strings.Count(s, ":") == 2 {
		return s[:5]
	}
	return s
}
