package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"harborview/config"
	"harborview/infras/otel/mocks"
	bookingMocks "harborview/internal/domains/booking/mocks"
	guestMocks "harborview/internal/domains/guest/mocks"
	"harborview/internal/domains/guest/model"
	"harborview/internal/domains/guest/model/dto"
	"harborview/internal/domains/guest/service"
	cacheMocks "harborview/shared/cache/mocks"
	"harborview/shared/constant"
	gModel "harborview/shared/model"
	"harborview/shared/timezone"
)

func TestGuestService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	existing := model.Guest{
		ID:            "guest-id-123",
		Email:         "amelia@example.com",
		FirstName:     "Amelia",
		LastName:      "Hart",
		LoyaltyStatus: model.LoyaltyGold,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	tests := []struct {
		name      string
		req       dto.CreateGuestRequest
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, guest model.Guest)
	}{
		{
			name: "returns registered guest without inserting",
			req: dto.CreateGuestRequest{
				Email:     "Amelia@Example.com",
				FirstName: "Amelia",
				LastName:  "Hart",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), service.FilterByEmail("Amelia@Example.com")).
					Return(existing, nil)
			},
			check: func(t *testing.T, guest model.Guest) {
				assert.Equal(t, existing.ID, guest.ID)
				assert.Equal(t, model.LoyaltyGold, guest.LoyaltyStatus)
			},
		},
		{
			name: "creates bronze guest for unknown email",
			req: dto.CreateGuestRequest{
				Email:     "marcus@example.com",
				FirstName: "Marcus",
				LastName:  "Ibsen",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			check: func(t *testing.T, guest model.Guest) {
				assert.NotEmpty(t, guest.ID)
				assert.Equal(t, "marcus@example.com", guest.Email)
				assert.Equal(t, model.LoyaltyBronze, guest.LoyaltyStatus)
			},
		},
		{
			name: "lookup error",
			req: dto.CreateGuestRequest{
				Email:     "amelia@example.com",
				FirstName: "Amelia",
				LastName:  "Hart",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			guest, err := svc.Resolve(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(t, guest)
			}
		})
	}
}

func TestGuestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			id:   "guest-id-123",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

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
			name: "guest referenced by bookings",
			id:   "guest-id-123",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "guest not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
