package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"harborview/internal/domains/menu/model"
	"harborview/shared"
	gDto "harborview/shared/dto"
	gModel "harborview/shared/model"
	"harborview/shared/timezone"
)

type CreateMenuItemRequest struct {
	Name            string         `json:"name"             validate:"required,max=200"`
	Description     string         `json:"description"      validate:"omitempty,max=2000"`
	Price           float64        `json:"price"            validate:"required,gte=0"`
	Category        string         `json:"category"         validate:"required,oneof=appetizer main dessert beverage wine"`
	Cuisine         string         `json:"cuisine"          validate:"omitempty,max=100"`
	Allergens       pq.StringArray `json:"allergens"        validate:"omitempty,dive,max=100"`
	IsVegetarian    bool           `json:"is_vegetarian"`
	IsVegan         bool           `json:"is_vegan"`
	IsGlutenFree    bool           `json:"is_gluten_free"`
	Image           string         `json:"image"            validate:"omitempty,url"`
	PreparationTime int            `json:"preparation_time" validate:"omitempty,min=0"`
	RestaurantID    string         `json:"restaurant_id"    validate:"required"`
}

func (c *CreateMenuItemRequest) ToModel(user string) model.MenuItem {
	allergens := c.Allergens
	if allergens == nil {
		allergens = pq.StringArray{}
	}

	return model.MenuItem{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Description:     c.Description,
		Price:           c.Price,
		Category:        c.Category,
		Cuisine:         c.Cuisine,
		Allergens:       allergens,
		IsVegetarian:    c.IsVegetarian,
		IsVegan:         c.IsVegan,
		IsGlutenFree:    c.IsGlutenFree,
		IsAvailable:     true,
		Image:           c.Image,
		PreparationTime: c.PreparationTime,
		RestaurantID:    c.RestaurantID,
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

type UpdateMenuItemRequest struct {
	Name            string         `db:"name"             json:"name"             validate:"omitempty,max=200"`
	Description     string         `db:"description"      json:"description"      validate:"omitempty,max=2000"`
	Price           *float64       `db:"price"            json:"price"            validate:"omitempty,gte=0"`
	Category        string         `db:"category"         json:"category"         validate:"omitempty,oneof=appetizer main dessert beverage wine"`
	Cuisine         string         `db:"cuisine"          json:"cuisine"          validate:"omitempty,max=100"`
	Allergens       pq.StringArray `db:"allergens"        json:"allergens"        validate:"omitempty,dive,max=100"`
	IsVegetarian    *bool          `db:"is_vegetarian"    json:"is_vegetarian"`
	IsVegan         *bool          `db:"is_vegan"         json:"is_vegan"`
	IsGlutenFree    *bool          `db:"is_gluten_free"   json:"is_gluten_free"`
	Image           string         `db:"image"            json:"image"            validate:"omitempty,url"`
	PreparationTime *int           `db:"preparation_time" json:"preparation_time" validate:"omitempty,min=0"`
}

type MenuItemResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Category        string   `json:"category"`
	Cuisine         string   `json:"cuisine"`
	Allergens       []string `json:"allergens"`
	IsVegetarian    bool     `json:"is_vegetarian"`
	IsVegan         bool     `json:"is_vegan"`
	IsGlutenFree    bool     `json:"is_gluten_free"`
	IsAvailable     bool     `json:"is_available"`
	Image           string   `json:"image"`
	PreparationTime int      `json:"preparation_time"`
	RestaurantID    string   `json:"restaurant_id"`
	gDto.Metadata
}

func (r *MenuItemResponse) FromModel(model model.MenuItem) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.Category = model.Category
	r.Cuisine = model.Cuisine
	r.Allergens = model.Allergens
	r.IsVegetarian = model.IsVegetarian
	r.IsVegan = model.IsVegan
	r.IsGlutenFree = model.IsGlutenFree
	r.IsAvailable = model.IsAvailable
	r.Image = model.Image
	r.PreparationTime = model.PreparationTime
	r.RestaurantID = model.RestaurantID
	r.Metadata.FromModel(model.Metadata)
}

type GetMenuItemsResponse struct {
	MenuItems []MenuItemResponse `json:"menu_items"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetMenuItemsResponse) FromModels(models []model.MenuItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.MenuItems = make([]MenuItemResponse, len(models))
	for i, mod := range models {
		r.MenuItems[i].FromModel(mod)
	}
}
