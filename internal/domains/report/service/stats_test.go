package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	bookingModel "harborview/internal/domains/booking/model"
	diningModel "harborview/internal/domains/dining/model"
	guestModel "harborview/internal/domains/guest/model"
	"harborview/internal/domains/report/service"
	"harborview/internal/domains/reservation"
	roomModel "harborview/internal/domains/room/model"
	"harborview/shared/timezone"
)

func day(dayOfMonth int) time.Time {
	return time.Date(2026, time.March, dayOfMonth, 12, 0, 0, 0, timezone.GetLocation())
}

func TestCountAvailableRooms(t *testing.T) {
	rooms := []roomModel.Room{
		{ID: "room-1", IsAvailable: true},
		{ID: "room-2", IsAvailable: false},
		{ID: "room-3", IsAvailable: true},
	}

	assert.Equal(t, 2, service.CountAvailableRooms(rooms))
	assert.Equal(t, 0, service.CountAvailableRooms(nil))
}

func TestBookingsByStatus(t *testing.T) {
	bookings := []bookingModel.Booking{
		{Status: reservation.StatusPending},
		{Status: reservation.StatusConfirmed},
		{Status: reservation.StatusConfirmed},
		{Status: reservation.StatusCancelled},
	}

	counts := service.BookingsByStatus(bookings)

	assert.Equal(t, 1, counts[reservation.StatusPending])
	assert.Equal(t, 2, counts[reservation.StatusConfirmed])
	assert.Equal(t, 1, counts[reservation.StatusCancelled])
	assert.Equal(t, 0, counts[reservation.StatusCompleted])

	empty := service.BookingsByStatus(nil)
	assert.Len(t, empty, len(reservation.Statuses))

	for _, status := range reservation.Statuses {
		assert.Contains(t, empty, status)
	}
}

func TestTotalRevenue(t *testing.T) {
	bookings := []bookingModel.Booking{
		{TotalPrice: 897},
		{TotalPrice: 450},
		{TotalPrice: 1250},
	}

	assert.Equal(t, 2597.0, service.TotalRevenue(bookings))
	assert.Equal(t, 0.0, service.TotalRevenue(nil))
}

func TestAverageBookingValue(t *testing.T) {
	bookings := []bookingModel.Booking{
		{TotalPrice: 300},
		{TotalPrice: 600},
	}

	assert.Equal(t, 450.0, service.AverageBookingValue(bookings))
	assert.Equal(t, 0.0, service.AverageBookingValue(nil))
}

func TestCountVIPGuests(t *testing.T) {
	guests := []guestModel.Guest{
		{LoyaltyStatus: guestModel.LoyaltyBronze},
		{LoyaltyStatus: guestModel.LoyaltySilver},
		{LoyaltyStatus: guestModel.LoyaltyGold},
		{LoyaltyStatus: guestModel.LoyaltyPlatinum},
	}

	assert.Equal(t, 2, service.CountVIPGuests(guests))
}

func TestOccupancyRate(t *testing.T) {
	now := day(15)

	rooms := []roomModel.Room{
		{ID: "room-1", IsAvailable: true},
		{ID: "room-2", IsAvailable: true},
		{ID: "room-3", IsAvailable: true},
		{ID: "room-4", IsAvailable: false},
	}

	bookings := []bookingModel.Booking{
		// Covers the instant and is confirmed, counts.
		{Status: reservation.StatusConfirmed, CheckIn: day(14), CheckOut: day(16)},
		// Covers the instant but still pending, does not count.
		{Status: reservation.StatusPending, CheckIn: day(14), CheckOut: day(16)},
		// Confirmed but already checked out.
		{Status: reservation.StatusConfirmed, CheckIn: day(10), CheckOut: day(12)},
		// Confirmed but starts later.
		{Status: reservation.StatusConfirmed, CheckIn: day(20), CheckOut: day(22)},
	}

	assert.InDelta(t, 1.0/3.0, service.OccupancyRate(bookings, rooms, now), 1e-9)
	assert.Equal(t, 0.0, service.OccupancyRate(bookings, nil, now))
	assert.Equal(t, 0.0, service.OccupancyRate(bookings, []roomModel.Room{{IsAvailable: false}}, now))
}

func TestCountTodayCheckIns(t *testing.T) {
	now := day(15)

	bookings := []bookingModel.Booking{
		{CheckIn: day(15)},
		{CheckIn: day(15).Add(8 * time.Hour)},
		{CheckIn: day(14)},
		{CheckIn: day(16)},
	}

	assert.Equal(t, 2, service.CountTodayCheckIns(bookings, now))
}

func TestCountTodayDiningReservations(t *testing.T) {
	now := day(15)

	reservations := []diningModel.DiningReservation{
		{Date: day(15)},
		{Date: day(14)},
	}

	assert.Equal(t, 1, service.CountTodayDiningReservations(reservations, now))
}
