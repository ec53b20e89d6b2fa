package service

import (
	"math"
	"time"
)

const nightHours = 24

// Nights counts billable nights between check-in and check-out. Any partial
// day rounds up to a full night, so a 25-hour stay bills two nights. Missing
// boundaries or a non-positive stay count zero nights.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}

	hours := checkOut.Sub(checkIn).Hours()
	if hours <= 0 {
		return 0
	}

	return int(math.Ceil(hours / nightHours))
}

// TotalPrice is the stay price at the room's current nightly rate.
func TotalPrice(checkIn, checkOut time.Time, nightlyRate float64) float64 {
	return float64(Nights(checkIn, checkOut)) * nightlyRate
}
