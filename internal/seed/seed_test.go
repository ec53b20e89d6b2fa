package seed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"harborview/config"
	contactMocks "harborview/internal/domains/contact/mocks"
	contactModel "harborview/internal/domains/contact/model"
	roomMocks "harborview/internal/domains/room/mocks"
	roomModel "harborview/internal/domains/room/model"
	"harborview/internal/seed"
)

func TestSeeder_Run(t *testing.T) {
	tests := []struct {
		name      string
		enabled   bool
		setupMock func(roomRepo *roomMocks.MockRoom, contactRepo *contactMocks.MockContact)
		wantErr   bool
	}{
		{
			name:    "seeds empty database",
			enabled: true,
			setupMock: func(roomRepo *roomMocks.MockRoom, contactRepo *contactMocks.MockContact) {
				roomRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)

				roomRepo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rooms []roomModel.Room) error {
						assert.Len(t, rooms, 3)

						for _, room := range rooms {
							assert.NotEmpty(t, room.ID)
							assert.True(t, room.IsAvailable)
						}

						return nil
					})

				contactRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)

				contactRepo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, contacts []contactModel.Contact) error {
						assert.Len(t, contacts, 2)

						for _, contact := range contacts {
							assert.Equal(t, contactModel.StatusNew, contact.Status)
							assert.Contains(t, []string(contact.Tags), contact.Category)
						}

						return nil
					})
			},
			wantErr: false,
		},
		{
			name:    "populated database left untouched",
			enabled: true,
			setupMock: func(roomRepo *roomMocks.MockRoom, contactRepo *contactMocks.MockContact) {
				roomRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(3, nil)

				contactRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)
			},
			wantErr: false,
		},
		{
			name:      "disabled seeding is a no-op",
			enabled:   false,
			setupMock: func(roomRepo *roomMocks.MockRoom, contactRepo *contactMocks.MockContact) {},
			wantErr:   false,
		},
		{
			name:    "count error bubbles up",
			enabled: true,
			setupMock: func(roomRepo *roomMocks.MockRoom, contactRepo *contactMocks.MockContact) {
				roomRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			roomRepo := roomMocks.NewMockRoom(ctrl)
			contactRepo := contactMocks.NewMockContact(ctrl)

			cfg := &config.Config{}
			cfg.App.Seed.Enable = tt.enabled

			tt.setupMock(roomRepo, contactRepo)

			err := seed.New(roomRepo, contactRepo, cfg).Run(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
