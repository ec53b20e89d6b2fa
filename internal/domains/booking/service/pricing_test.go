package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"harborview/internal/domains/booking/service"
)

func date(day int) time.Time {
	return time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "three full nights",
			checkIn:  date(10),
			checkOut: date(13),
			want:     3,
		},
		{
			name:     "single night",
			checkIn:  date(10),
			checkOut: date(11),
			want:     1,
		},
		{
			name:     "partial day rounds up",
			checkIn:  date(10),
			checkOut: date(11).Add(time.Hour),
			want:     2,
		},
		{
			name:     "same instant",
			checkIn:  date(10),
			checkOut: date(10),
			want:     0,
		},
		{
			name:     "check-out before check-in",
			checkIn:  date(13),
			checkOut: date(10),
			want:     0,
		},
		{
			name:     "zero check-in",
			checkIn:  time.Time{},
			checkOut: date(10),
			want:     0,
		},
		{
			name:     "zero check-out",
			checkIn:  date(10),
			checkOut: time.Time{},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		rate     float64
		want     float64
	}{
		{
			name:     "three nights at standard rate",
			checkIn:  date(10),
			checkOut: date(13),
			rate:     299,
			want:     897,
		},
		{
			name:     "partial day bills the extra night",
			checkIn:  date(10),
			checkOut: date(11).Add(time.Hour),
			rate:     150,
			want:     300,
		},
		{
			name:     "non-positive stay is free",
			checkIn:  date(13),
			checkOut: date(10),
			rate:     299,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.TotalPrice(tt.checkIn, tt.checkOut, tt.rate))
		})
	}
}
