package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"harborview/infras/otel"
	bookingRepository "harborview/internal/domains/booking/repository"
	diningRepository "harborview/internal/domains/dining/repository"
	guestRepository "harborview/internal/domains/guest/repository"
	"harborview/internal/domains/report/model/dto"
	roomRepository "harborview/internal/domains/room/repository"
	"harborview/shared/constant"
	gDto "harborview/shared/dto"
	"harborview/shared/timezone"
)

type Report interface {
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepository.Booking
	roomRepo    roomRepository.Room
	guestRepo   guestRepository.Guest
	diningRepo  diningRepository.Dining
	otel        otel.Otel
}

func New(
	bookingRepo bookingRepository.Booking,
	roomRepo roomRepository.Room,
	guestRepo guestRepository.Guest,
	diningRepo diningRepository.Dining,
	otel otel.Otel,
) Report {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		guestRepo:   guestRepo,
		diningRepo:  diningRepo,
		otel:        otel,
	}
}

// Dashboard is a pure projection over freshly loaded collections. It is
// deliberately uncached: admins read it to verify the effect of the change
// they just made.
func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	all := gDto.QueryParams{}

	rooms, err := s.roomRepo.GetAll(ctx, all, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load rooms for dashboard")

		return res, fmt.Errorf("failed to load rooms for dashboard: %w", err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx, all, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings for dashboard")

		return res, fmt.Errorf("failed to load bookings for dashboard: %w", err)
	}

	guests, err := s.guestRepo.GetAll(ctx, all, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load guests for dashboard")

		return res, fmt.Errorf("failed to load guests for dashboard: %w", err)
	}

	reservations, err := s.diningRepo.GetAll(ctx, all, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load dining reservations for dashboard")

		return res, fmt.Errorf("failed to load dining reservations for dashboard: %w", err)
	}

	now := timezone.Now()

	res = dto.DashboardResponse{
		TotalRooms:              len(rooms),
		AvailableRooms:          CountAvailableRooms(rooms),
		BookingsByStatus:        BookingsByStatus(bookings),
		TotalRevenue:            TotalRevenue(bookings),
		AverageBookingValue:     AverageBookingValue(bookings),
		VIPGuests:               CountVIPGuests(guests),
		OccupancyRate:           OccupancyRate(bookings, rooms, now),
		TodayCheckIns:           CountTodayCheckIns(bookings, now),
		TodayDiningReservations: CountTodayDiningReservations(reservations, now),
	}

	return res, nil
}
