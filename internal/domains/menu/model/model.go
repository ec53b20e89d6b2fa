package model

import (
	"slices"

	"github.com/lib/pq"

	"harborview/shared/model"
)

const (
	TableName  = "menu_items"
	EntityName = "menu_item"

	FieldID           = "id"
	FieldName         = "name"
	FieldCategory     = "category"
	FieldCuisine      = "cuisine"
	FieldIsAvailable  = "is_available"
	FieldRestaurantID = "restaurant_id"
)

const (
	CategoryAppetizer = "appetizer"
	CategoryMain      = "main"
	CategoryDessert   = "dessert"
	CategoryBeverage  = "beverage"
	CategoryWine      = "wine"
)

var Categories = []string{CategoryAppetizer, CategoryMain, CategoryDessert, CategoryBeverage, CategoryWine}

func ValidCategory(category string) bool {
	return slices.Contains(Categories, category)
}

type MenuItem struct {
	ID              string         `db:"id"`
	Name            string         `db:"name"`
	Description     string         `db:"description"`
	Price           float64        `db:"price"`
	Category        string         `db:"category"`
	Cuisine         string         `db:"cuisine"`
	Allergens       pq.StringArray `db:"allergens"`
	IsVegetarian    bool           `db:"is_vegetarian"`
	IsVegan         bool           `db:"is_vegan"`
	IsGlutenFree    bool           `db:"is_gluten_free"`
	IsAvailable     bool           `db:"is_available"`
	Image           string         `db:"image"`
	PreparationTime int            `db:"preparation_time"`
	RestaurantID    string         `db:"restaurant_id"`
	model.Metadata
}
