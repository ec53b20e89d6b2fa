package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"harborview/internal/domains/restaurant/model"
	"harborview/shared"
	gDto "harborview/shared/dto"
	gModel "harborview/shared/model"
	"harborview/shared/timezone"
)

type CreateRestaurantRequest struct {
	Name           string         `json:"name"            validate:"required,max=200"`
	Slug           string         `json:"slug"            validate:"required,max=100,lowercase"`
	Description    string         `json:"description"     validate:"omitempty,max=5000"`
	Cuisine        string         `json:"cuisine"         validate:"required,max=100"`
	Location       string         `json:"location"        validate:"omitempty,max=300"`
	Phone          string         `json:"phone"           validate:"omitempty,max=50"`
	Email          string         `json:"email"           validate:"omitempty,email"`
	OperatingHours string         `json:"operating_hours" validate:"omitempty,max=300"`
	Capacity       int            `json:"capacity"        validate:"required,min=1"`
	Rating         float64        `json:"rating"          validate:"omitempty,gte=0,lte=5"`
	Image          string         `json:"image"           validate:"omitempty,url"`
	Features       pq.StringArray `json:"features"        validate:"omitempty,dive,max=100"`
}

func (c *CreateRestaurantRequest) ToModel(user string) model.Restaurant {
	features := c.Features
	if features == nil {
		features = pq.StringArray{}
	}

	return model.Restaurant{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(c.Name),
		Slug:           strings.ToLower(strings.TrimSpace(c.Slug)),
		Description:    c.Description,
		Cuisine:        c.Cuisine,
		Location:       c.Location,
		Phone:          c.Phone,
		Email:          strings.ToLower(strings.TrimSpace(c.Email)),
		OperatingHours: c.OperatingHours,
		Capacity:       c.Capacity,
		Rating:         c.Rating,
		Status:         model.StatusActive,
		Image:          c.Image,
		Features:       features,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRestaurantRequest struct {
	Name           string         `db:"name"            json:"name"            validate:"omitempty,max=200"`
	Description    string         `db:"description"     json:"description"     validate:"omitempty,max=5000"`
	Cuisine        string         `db:"cuisine"         json:"cuisine"         validate:"omitempty,max=100"`
	Location       string         `db:"location"        json:"location"        validate:"omitempty,max=300"`
	Phone          string         `db:"phone"           json:"phone"           validate:"omitempty,max=50"`
	Email          string         `db:"email"           json:"email"           validate:"omitempty,email"`
	OperatingHours string         `db:"operating_hours" json:"operating_hours" validate:"omitempty,max=300"`
	Capacity       *int           `db:"capacity"        json:"capacity"        validate:"omitempty,min=1"`
	Rating         *float64       `db:"rating"          json:"rating"          validate:"omitempty,gte=0,lte=5"`
	Status         string         `db:"status"          json:"status"          validate:"omitempty,oneof=active inactive"`
	Image          string         `db:"image"           json:"image"           validate:"omitempty,url"`
	Features       pq.StringArray `db:"features"        json:"features"        validate:"omitempty,dive,max=100"`
}

type RestaurantResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Slug           string   `json:"slug"`
	Description    string   `json:"description"`
	Cuisine        string   `json:"cuisine"`
	Location       string   `json:"location"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	OperatingHours string   `json:"operating_hours"`
	Capacity       int      `json:"capacity"`
	Rating         float64  `json:"rating"`
	Status         string   `json:"status"`
	Image          string   `json:"image"`
	Features       []string `json:"features"`
	gDto.Metadata
}

func (r *RestaurantResponse) FromModel(model model.Restaurant) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.Description = model.Description
	r.Cuisine = model.Cuisine
	r.Location = model.Location
	r.Phone = model.Phone
	r.Email = model.Email
	r.OperatingHours = model.OperatingHours
	r.Capacity = model.Capacity
	r.Rating = model.Rating
	r.Status = model.Status
	r.Image = model.Image
	r.Features = model.Features
	r.Metadata.FromModel(model.Metadata)
}

type GetRestaurantsResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetRestaurantsResponse) FromModels(models []model.Restaurant, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Restaurants = make([]RestaurantResponse, len(models))
	for i, mod := range models {
		r.Restaurants[i].FromModel(mod)
	}
}
