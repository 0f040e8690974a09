package model

import (
	"slices"
	"time"
)

type Capacity struct {
	Min int `json:"min" bson:"min" yaml:"min"`
	Max int `json:"max" bson:"max" yaml:"max"`
}

type Images struct {
	Main    string   `json:"main" bson:"main" yaml:"main"`
	Gallery []string `json:"gallery" bson:"gallery" yaml:"gallery"`
}

type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat" yaml:"lat"`
	Lng float64 `json:"lng" bson:"lng" yaml:"lng"`
}

// Venue is a bookable location. Its ID is a human readable slug.
type Venue struct {
	ID               string      `json:"id" bson:"_id" yaml:"id"`
	Name             string      `json:"name" bson:"name" yaml:"name"`
	Description      string      `json:"description" bson:"description" yaml:"description"`
	ShortDescription string      `json:"short_description" bson:"short_description" yaml:"short_description"`
	Address          string      `json:"address" bson:"address" yaml:"address"`
	City             string      `json:"city" bson:"city" yaml:"city"`
	Price            float64     `json:"price" bson:"price" yaml:"price"`
	Capacity         Capacity    `json:"capacity" bson:"capacity" yaml:"capacity"`
	Rating           float64     `json:"rating" bson:"rating" yaml:"rating"`
	ReviewCount      int         `json:"review_count" bson:"review_count" yaml:"review_count"`
	Amenities        []string    `json:"amenities" bson:"amenities" yaml:"amenities"`
	Images           Images      `json:"images" bson:"images" yaml:"images"`
	Featured         bool        `json:"featured" bson:"featured" yaml:"featured"`
	Availability     []string    `json:"availability" bson:"availability" yaml:"availability"`
	Coordinates      Coordinates `json:"coordinates" bson:"coordinates" yaml:"coordinates"`
	Reviews          []Review    `json:"reviews,omitempty" bson:"reviews,omitempty" yaml:"reviews"`
	CreatedAt        time.Time   `json:"created_at,omitempty" bson:"created_at" yaml:"-"`
}

func (v *Venue) HasAmenity(amenity string) bool {
	return slices.Contains(v.Amenities, amenity)
}

func (v *Venue) IsAvailableOn(date string) bool {
	return slices.Contains(v.Availability, date)
}

// Accommodates reports whether guests falls inside the venue's capacity range.
func (v *Venue) Accommodates(guests int) bool {
	return guests >= v.Capacity.Min && guests <= v.Capacity.Max
}
