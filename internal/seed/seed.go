// Package seed populates an empty database with a starter catalog so a fresh
// deployment has rooms to book and an inbox to triage.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"harborview/config"
	contactModel "harborview/internal/domains/contact/model"
	contactRepository "harborview/internal/domains/contact/repository"
	roomModel "harborview/internal/domains/room/model"
	roomRepository "harborview/internal/domains/room/repository"
	gDto "harborview/shared/dto"
	gModel "harborview/shared/model"
	"harborview/shared/timezone"
)

const seededBy = "seed"

type Seeder struct {
	roomRepo    roomRepository.Room
	contactRepo contactRepository.Contact
	cfg         *config.Config
}

func New(roomRepo roomRepository.Room, contactRepo contactRepository.Contact, cfg *config.Config) *Seeder {
	return &Seeder{
		roomRepo:    roomRepo,
		contactRepo: contactRepo,
		cfg:         cfg,
	}
}

// Run inserts the starter rooms and contacts when their tables are empty.
// Re-running against a populated database is a no-op.
func (s *Seeder) Run(ctx context.Context) error {
	if !s.cfg.App.Seed.Enable {
		log.Info().Msg("Seeding disabled, skipping")

		return nil
	}

	if err := s.seedRooms(ctx); err != nil {
		return err
	}

	return s.seedContacts(ctx)
}

func (s *Seeder) seedRooms(ctx context.Context) error {
	count, err := s.roomRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return fmt.Errorf("failed to count rooms before seeding: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := s.roomRepo.InsertBulk(ctx, starterRooms()); err != nil {
		return fmt.Errorf("failed to seed rooms: %w", err)
	}

	log.Info().Msg("Seeded starter rooms")

	return nil
}

func (s *Seeder) seedContacts(ctx context.Context) error {
	count, err := s.contactRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return fmt.Errorf("failed to count contacts before seeding: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := s.contactRepo.InsertBulk(ctx, starterContacts()); err != nil {
		return fmt.Errorf("failed to seed contacts: %w", err)
	}

	log.Info().Msg("Seeded starter contacts")

	return nil
}

func metadata() gModel.Metadata {
	now := timezone.Now()

	return gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  seededBy,
		ModifiedBy: seededBy,
	}
}

func starterRooms() []roomModel.Room {
	return []roomModel.Room{
		{
			ID:          uuid.NewString(),
			Name:        "Ocean View Deluxe",
			RoomType:    roomModel.TypeDeluxe,
			Description: "King bed with a private balcony overlooking the harbor.",
			Price:       299,
			Capacity:    2,
			SizeSqm:     42,
			Amenities:   pq.StringArray{"wifi", "minibar", "balcony", "ocean-view"},
			Images:      pq.StringArray{},
			IsAvailable: true,
			Metadata:    metadata(),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Harborview Suite",
			RoomType:    roomModel.TypeSuite,
			Description: "Separate living room, dining nook, and panoramic windows.",
			Price:       459,
			Capacity:    4,
			SizeSqm:     78,
			Amenities:   pq.StringArray{"wifi", "minibar", "living-room", "bathtub"},
			Images:      pq.StringArray{},
			IsAvailable: true,
			Metadata:    metadata(),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Presidential Penthouse",
			RoomType:    roomModel.TypePresidential,
			Description: "Top floor residence with private terrace and butler service.",
			Price:       1250,
			Capacity:    6,
			SizeSqm:     185,
			Amenities:   pq.StringArray{"wifi", "terrace", "butler", "jacuzzi", "kitchen"},
			Images:      pq.StringArray{},
			IsAvailable: true,
			Metadata:    metadata(),
		},
	}
}

func starterContacts() []contactModel.Contact {
	first := contactModel.Contact{
		ID:                     uuid.NewString(),
		FirstName:              "Amelia",
		LastName:               "Hart",
		Email:                  "amelia.hart@example.com",
		Phone:                  "+1-415-555-0142",
		Subject:                "Anniversary weekend availability",
		Message:                "We are planning our tenth anniversary in October and would love a room with a harbor view. Do you offer any celebration packages?",
		Category:               contactModel.CategoryBooking,
		Priority:               contactModel.PriorityMedium,
		PreferredContactMethod: contactModel.ContactMethodEmail,
		ExpectedResponse:       contactModel.ExpectedResponse48h,
		ConsentToMarketing:     true,
		Source:                 "website",
		FormVersion:            "v1",
		Status:                 contactModel.StatusNew,
		SubmissionAttempts:     1,
		Metadata:               metadata(),
	}
	first.Tags = contactModel.DeriveTags(first.Category, first.Priority, first.Company != "", first.ConsentToMarketing)

	second := contactModel.Contact{
		ID:                     uuid.NewString(),
		FirstName:              "Marcus",
		LastName:               "Ibsen",
		Email:                  "m.ibsen@nordwind.example",
		Phone:                  "+47-22-555-019",
		Company:                "Nordwind Logistics",
		Title:                  "Head of People",
		Subject:                "Corporate retreat for 40 attendees",
		Message:                "Looking to host a three-day leadership retreat in January. We would need meeting space, catering, and a block of rooms.",
		Category:               contactModel.CategoryBusiness,
		Priority:               contactModel.PriorityHigh,
		PreferredContactMethod: contactModel.ContactMethodPhone,
		ExpectedResponse:       contactModel.ExpectedResponse24h,
		Source:                 "website",
		FormVersion:            "v1",
		Status:                 contactModel.StatusNew,
		SubmissionAttempts:     1,
		Metadata:               metadata(),
	}
	second.Tags = contactModel.DeriveTags(second.Category, second.Priority, second.Company != "", second.ConsentToMarketing)

	return []contactModel.Contact{first, second}
}
