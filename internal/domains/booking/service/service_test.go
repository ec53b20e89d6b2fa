package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"harborview/config"
	kafkaMocks "harborview/infras/kafka/mocks"
	"harborview/infras/otel/mocks"
	bookingMocks "harborview/internal/domains/booking/mocks"
	"harborview/internal/domains/booking/model"
	"harborview/internal/domains/booking/model/dto"
	"harborview/internal/domains/booking/service"
	guestMocks "harborview/internal/domains/guest/mocks"
	guestModel "harborview/internal/domains/guest/model"
	guestDto "harborview/internal/domains/guest/model/dto"
	"harborview/internal/domains/reservation"
	roomMocks "harborview/internal/domains/room/mocks"
	roomModel "harborview/internal/domains/room/model"
	cacheMocks "harborview/shared/cache/mocks"
	"harborview/shared/constant"
	gModel "harborview/shared/model"
	"harborview/shared/timezone"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestBookingService_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockGuestRepo := guestMocks.NewMockGuest(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockGuestRepo, mockRoomRepo, cfg, mockCache, mockKafka, mockOtel)

	room := roomModel.Room{
		ID:          "room-id-123",
		Name:        "Ocean View Deluxe",
		RoomType:    "deluxe",
		Price:       299,
		Capacity:    2,
		IsAvailable: true,
	}

	tests := []struct {
		name      string
		req       dto.QuoteRequest
		setupMock func()
		wantErr   bool
		want      dto.QuoteResponse
	}{
		{
			name: "three night stay",
			req: dto.QuoteRequest{
				RoomID:   "room-id-123",
				CheckIn:  "2026-01-10",
				CheckOut: "2026-01-13",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			want: dto.QuoteResponse{
				RoomID:      "room-id-123",
				NightlyRate: 299,
				Nights:      3,
				TotalPrice:  897,
			},
		},
		{
			name: "missing room quotes zero",
			req: dto.QuoteRequest{
				CheckIn:  "2026-01-10",
				CheckOut: "2026-01-13",
			},
			setupMock: func() {},
			want:      dto.QuoteResponse{},
		},
		{
			name: "unparsable dates quote zero",
			req: dto.QuoteRequest{
				RoomID:   "room-id-123",
				CheckIn:  "next tuesday",
				CheckOut: "2026-01-13",
			},
			setupMock: func() {},
			want:      dto.QuoteResponse{RoomID: "room-id-123"},
		},
		{
			name: "unknown room quotes zero",
			req: dto.QuoteRequest{
				RoomID:   "nonexistent-id",
				CheckIn:  "2026-01-10",
				CheckOut: "2026-01-13",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			want: dto.QuoteResponse{RoomID: "nonexistent-id"},
		},
		{
			name: "repository error",
			req: dto.QuoteRequest{
				RoomID:   "room-id-123",
				CheckIn:  "2026-01-10",
				CheckOut: "2026-01-13",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Quote(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, res)
			}
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockGuestRepo := guestMocks.NewMockGuest(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockGuestRepo, mockRoomRepo, cfg, mockCache, mockKafka, mockOtel)

	guest := guestDto.CreateGuestRequest{
		Email:     "amelia@example.com",
		FirstName: "Amelia",
		LastName:  "Hart",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
	}{
		{
			name: "unparsable dates",
			req: dto.CreateBookingRequest{
				Guest:    guest,
				RoomID:   "room-id-123",
				CheckIn:  "not-a-date",
				CheckOut: "2026-01-13",
				Guests:   2,
			},
			setupMock: func() {},
		},
		{
			name: "check-out not after check-in",
			req: dto.CreateBookingRequest{
				Guest:    guest,
				RoomID:   "room-id-123",
				CheckIn:  "2026-01-13",
				CheckOut: "2026-01-10",
				Guests:   2,
			},
			setupMock: func() {},
		},
		{
			name: "room not found",
			req: dto.CreateBookingRequest{
				Guest:    guest,
				RoomID:   "nonexistent-id",
				CheckIn:  "2026-01-10",
				CheckOut: "2026-01-13",
				Guests:   2,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
		},
		{
			name: "room not available",
			req: dto.CreateBookingRequest{
				Guest:    guest,
				RoomID:   "room-id-123",
				CheckIn:  "2026-01-10",
				CheckOut: "2026-01-13",
				Guests:   2,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: "room-id-123", Price: 299, IsAvailable: false}, nil)
			},
		},
		{
			name: "guest lookup error",
			req: dto.CreateBookingRequest{
				Guest:    guest,
				RoomID:   "room-id-123",
				CheckIn:  "2026-01-10",
				CheckOut: "2026-01-13",
				Guests:   2,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: "room-id-123", Price: 299, IsAvailable: true}, nil)

				mockGuestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{}, errors.New("database error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			_, err := svc.Create(ctx, tt.req)

			assert.Error(t, err)
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockGuestRepo := guestMocks.NewMockGuest(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.BookingEvents = "booking-events"

	svc := service.New(mockRepo, mockGuestRepo, mockRoomRepo, cfg, mockCache, mockKafka, mockOtel)

	pendingBooking := model.Booking{
		ID:      "booking-id-123",
		GuestID: "guest-id-123",
		RoomID:  "room-id-123",
		Status:  reservation.StatusPending,
		Version: 2,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	tests := []struct {
		name      string
		id        string
		req       dto.UpdateStatusRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "confirm pending booking",
			id:   "booking-id-123",
			req:  dto.UpdateStatusRequest{Status: reservation.StatusConfirmed},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking, nil)

				mockRepo.EXPECT().
					UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "invalid transition",
			id:   "booking-id-123",
			req:  dto.UpdateStatusRequest{Status: reservation.StatusPending},
			setupMock: func() {
				confirmed := pendingBooking
				confirmed.Status = reservation.StatusConfirmed

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			id:   "nonexistent-id",
			req:  dto.UpdateStatusRequest{Status: reservation.StatusConfirmed},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "stale expected version",
			id:   "booking-id-123",
			req: dto.UpdateStatusRequest{
				Status:          reservation.StatusConfirmed,
				ExpectedVersion: int64Ptr(1),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking, nil)

				mockRepo.EXPECT().
					UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateStatus(ctx, tt.req, tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
