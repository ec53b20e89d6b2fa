package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"harborview/internal/domains/room/model"
	"harborview/shared"
	gDto "harborview/shared/dto"
	gModel "harborview/shared/model"
	"harborview/shared/timezone"
)

type CreateRoomRequest struct {
	Name        string   `json:"name"         validate:"required,max=100"`
	RoomType    string   `json:"room_type"    validate:"required,oneof=standard deluxe suite family presidential penthouse"`
	Description string   `json:"description"  validate:"omitempty,max=2000"`
	Price       float64  `json:"price"        validate:"required,gte=0"`
	Capacity    int      `json:"capacity"     validate:"required,min=1"`
	SizeSqm     float64  `json:"size_sqm"     validate:"omitempty,gte=0"`
	Amenities   []string `json:"amenities"    validate:"omitempty,dive,max=100"`
	Images      []string `json:"images"       validate:"omitempty,dive,url"`
	IsAvailable *bool    `json:"is_available" validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	available := true
	if c.IsAvailable != nil {
		available = *c.IsAvailable
	}

	return model.Room{
		ID:          uuid.NewString(),
		Name:        c.Name,
		RoomType:    c.RoomType,
		Description: c.Description,
		Price:       c.Price,
		Capacity:    c.Capacity,
		SizeSqm:     c.SizeSqm,
		Amenities:   pq.StringArray(c.Amenities),
		Images:      pq.StringArray(c.Images),
		IsAvailable: available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

type UpdateRoomRequest struct {
	Name        string         `db:"name"         json:"name"         validate:"omitempty,max=100"`
	RoomType    string         `db:"room_type"    json:"room_type"    validate:"omitempty,oneof=standard deluxe suite family presidential penthouse"`
	Description string         `db:"description"  json:"description"  validate:"omitempty,max=2000"`
	Price       *float64       `db:"price"        json:"price"        validate:"omitempty,gte=0"`
	Capacity    *int           `db:"capacity"     json:"capacity"     validate:"omitempty,min=1"`
	SizeSqm     *float64       `db:"size_sqm"     json:"size_sqm"     validate:"omitempty,gte=0"`
	Amenities   pq.StringArray `db:"amenities"    json:"amenities"    validate:"omitempty,dive,max=100"`
	Images      pq.StringArray `db:"images"       json:"images"       validate:"omitempty,dive,url"`
	IsAvailable *bool          `db:"is_available" json:"is_available" validate:"omitempty"`
}

type RoomResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	RoomType    string   `json:"room_type"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	SizeSqm     float64  `json:"size_sqm"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	IsAvailable bool     `json:"is_available"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.RoomType = model.RoomType
	r.Description = model.Description
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.SizeSqm = model.SizeSqm
	r.Amenities = model.Amenities
	r.Images = model.Images
	r.IsAvailable = model.IsAvailable
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
