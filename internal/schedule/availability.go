package schedule

import (
	"time"

	"github.com/BruksfildServices01/barberops/internal/models"
)

// SlotView é um horário da grade com os agendamentos que caem nele.
// Mais de um agendamento no mesmo horário é permitido e renderizado
// lado a lado; o sistema não impede a dupla reserva.
type SlotView struct {
	Time     string           `json:"time"`
	Bookings []models.Booking `json:"bookings"`
	Past     bool             `json:"past"`
}

func (v SlotView) Open() bool {
	return len(v.Bookings) == 0
}

const dateLayout = "2006-01-02"

// BuildDayView sobrepõe os agendamentos de um dia na grade de horários.
// Horários armazenados podem vir com segundos; a comparação é feita
// sempre em HH:MM. now deve estar no fuso da barbearia.
func BuildDayView(slots []string, bookings []models.Booking, date string, now time.Time) []SlotView {
	byTime := make(map[string][]models.Booking, len(bookings))
	for _, b := range bookings {
		t := NormalizeTime(b.Time)
		byTime[t] = append(byTime[t], b)
	}

	today := now.Format(dateLayout)
	nowClock := now.Format(clockLayout)

	views := make([]SlotView, 0, len(slots))
	for _, slot := range slots {
		past := date < today || (date == today && slot < nowClock)
		views = append(views, SlotView{
			Time:     slot,
			Bookings: byTime[slot],
			Past:     past,
		})
	}
	return views
}
