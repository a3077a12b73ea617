package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barberops/internal/models"
)

func TestBuildDayView_Overlay(t *testing.T) {
	slots := []string{"09:00", "09:15"}
	bookings := []models.Booking{
		{ID: 1, Time: "09:00:00", Service: "corte"},
	}

	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	views := BuildDayView(slots, bookings, "2026-03-10", now)

	assert.Len(t, views, 2)

	assert.Equal(t, "09:00", views[0].Time)
	assert.False(t, views[0].Open())
	assert.Len(t, views[0].Bookings, 1)
	assert.Equal(t, uint(1), views[0].Bookings[0].ID)

	assert.Equal(t, "09:15", views[1].Time)
	assert.True(t, views[1].Open())
}

func TestBuildDayView_DoubleBookingVisible(t *testing.T) {
	slots := []string{"10:00"}
	bookings := []models.Booking{
		{ID: 1, Time: "10:00"},
		{ID: 2, Time: "10:00:00"},
	}

	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	views := BuildDayView(slots, bookings, "2026-03-10", now)

	// dupla reserva não é bloqueada: os dois aparecem no mesmo horário
	assert.Len(t, views[0].Bookings, 2)
}

func TestBuildDayView_PastSlots(t *testing.T) {
	slots := []string{"09:00", "14:00"}
	now := time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)

	views := BuildDayView(slots, nil, "2026-03-10", now)
	assert.True(t, views[0].Past)
	assert.False(t, views[1].Past)

	yesterday := BuildDayView(slots, nil, "2026-03-09", now)
	assert.True(t, yesterday[0].Past)
	assert.True(t, yesterday[1].Past)

	tomorrow := BuildDayView(slots, nil, "2026-03-11", now)
	assert.False(t, tomorrow[0].Past)
	assert.False(t, tomorrow[1].Past)
}
