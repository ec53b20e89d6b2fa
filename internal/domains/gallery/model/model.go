package model

import (
	"slices"

	"github.com/lib/pq"

	"harborview/shared/model"
)

const (
	TableName  = "galleries"
	EntityName = "gallery"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldSection     = "section"
	FieldDescription = "description"
	FieldImages      = "images"
)

// Marketing page sections a gallery can be pinned to.
const (
	SectionRooms     = "rooms"
	SectionDining    = "dining"
	SectionAmenities = "amenities"
	SectionEvents    = "events"
	SectionExterior  = "exterior"
)

var Sections = []string{SectionRooms, SectionDining, SectionAmenities, SectionEvents, SectionExterior}

func ValidSection(section string) bool {
	return slices.Contains(Sections, section)
}

type Gallery struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Section     string         `db:"section"`
	Description string         `db:"description"`
	Images      pq.StringArray `db:"images"`
	model.Metadata
}
