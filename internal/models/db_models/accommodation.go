package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Highlight struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Image struct {
	URL      string `json:"url"`
	Caption  string `json:"caption"`
	Category string `json:"category"`
}

type Accommodation struct {
	BaseModel
	Name          string         `gorm:"not null" json:"name"`
	Tagline       string         `json:"tagline"`
	Description   string         `gorm:"type:text" json:"description"`
	Location      string         `json:"location"`
	Address       string         `json:"address"`
	ListingURL    string         `json:"listingUrl"`
	CheckIn       string         `json:"checkIn"`
	CheckOut      string         `json:"checkOut"`
	Guests        int            `json:"guests"`
	Bedrooms      int            `json:"bedrooms"`
	Beds          int            `json:"beds"`
	Bathrooms     int            `json:"bathrooms"`
	Amenities     pq.StringArray `gorm:"type:text[]" json:"amenities"`
	HouseRules    pq.StringArray `gorm:"type:text[]" json:"houseRules"`
	Highlights    datatypes.JSON `json:"highlights"` // []Highlight
	Images        datatypes.JSON `json:"images"`     // []Image
	HostName      string         `json:"hostName"`
	HostImage     string         `json:"hostImage,omitempty"`
	Rating        float64        `json:"rating"`
	ReviewCount   int            `json:"reviewCount"`
	PricePerNight *float64       `json:"pricePerNight,omitempty"`
}

type Room struct {
	BaseModel
	AccommodationID uuid.UUID      `gorm:"type:uuid;not null;index" json:"accommodationId"`
	Name            string         `gorm:"not null" json:"name"`
	Description     string         `gorm:"type:text" json:"description"`
	BedType         string         `json:"bedType"`
	Capacity        int            `gorm:"not null" json:"capacity"`
	Features        pq.StringArray `gorm:"type:text[]" json:"features"`
	ImageURL        string         `json:"imageUrl,omitempty"`
	// unique: a profile sleeps in at most one room
	AssignedProfileID *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"assignedProfileId,omitempty"`
	Order             int        `gorm:"column:display_order;not null" json:"order"`
}
