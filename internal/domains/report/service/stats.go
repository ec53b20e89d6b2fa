package service

import (
	"time"

	bookingModel "harborview/internal/domains/booking/model"
	diningModel "harborview/internal/domains/dining/model"
	guestModel "harborview/internal/domains/guest/model"
	"harborview/internal/domains/reservation"
	roomModel "harborview/internal/domains/room/model"
	"harborview/shared/timezone"
)

// CountAvailableRooms counts rooms currently offered for booking.
func CountAvailableRooms(rooms []roomModel.Room) int {
	count := 0

	for _, room := range rooms {
		if room.IsAvailable {
			count++
		}
	}

	return count
}

// BookingsByStatus tallies bookings per reservation status. Every status
// appears in the result, zero-valued when no booking carries it.
func BookingsByStatus(bookings []bookingModel.Booking) map[string]int {
	counts := make(map[string]int, len(reservation.Statuses))

	for _, status := range reservation.Statuses {
		counts[status] = 0
	}

	for _, booking := range bookings {
		counts[booking.Status]++
	}

	return counts
}

// TotalRevenue sums total prices over every loaded booking.
func TotalRevenue(bookings []bookingModel.Booking) float64 {
	total := 0.0

	for _, booking := range bookings {
		total += booking.TotalPrice
	}

	return total
}

// AverageBookingValue is revenue per booking, zero when there are none.
func AverageBookingValue(bookings []bookingModel.Booking) float64 {
	if len(bookings) == 0 {
		return 0
	}

	return TotalRevenue(bookings) / float64(len(bookings))
}

// CountVIPGuests counts guests in the gold and platinum loyalty tiers.
func CountVIPGuests(guests []guestModel.Guest) int {
	count := 0

	for _, guest := range guests {
		if guestModel.VIP(guest.LoyaltyStatus) {
			count++
		}
	}

	return count
}

// OccupancyRate is the share of available rooms held by a confirmed booking
// whose stay covers the given instant. Zero when no rooms are available.
func OccupancyRate(bookings []bookingModel.Booking, rooms []roomModel.Room, now time.Time) float64 {
	available := CountAvailableRooms(rooms)
	if available == 0 {
		return 0
	}

	occupied := 0

	for _, booking := range bookings {
		if booking.Status != reservation.StatusConfirmed {
			continue
		}

		if !booking.CheckIn.After(now) && booking.CheckOut.After(now) {
			occupied++
		}
	}

	return float64(occupied) / float64(available)
}

// sameDay compares calendar days in the application timezone.
func sameDay(a, b time.Time) bool {
	ay, am, ad := timezone.ToAppTime(a).Date()
	by, bm, bd := timezone.ToAppTime(b).Date()

	return ay == by && am == bm && ad == bd
}

// CountTodayCheckIns counts bookings checking in on the given calendar day.
func CountTodayCheckIns(bookings []bookingModel.Booking, now time.Time) int {
	count := 0

	for _, booking := range bookings {
		if sameDay(booking.CheckIn, now) {
			count++
		}
	}

	return count
}

// CountTodayDiningReservations counts reservations for the given calendar day.
func CountTodayDiningReservations(reservations []diningModel.DiningReservation, now time.Time) int {
	count := 0

	for _, res := range reservations {
		if sameDay(res.Date, now) {
			count++
		}
	}

	return count
}
