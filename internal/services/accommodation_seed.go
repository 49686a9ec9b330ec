package services

import (
	"encoding/json"

	"boystrip/internal/models/db_models"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

func mustJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return datatypes.JSON(b)
}

func seedVilla() *db_models.Accommodation {
	price := 450.0
	return &db_models.Accommodation{
		Name:    "Luxury Villa in Cape Town",
		Tagline: "Stunning 4-bedroom villa with panoramic mountain and sea views",
		Description: "Experience the beauty of Cape Town from this exquisite 4-bedroom villa nestled in the heart of the city. " +
			"This stunning property offers breathtaking panoramic views of Table Mountain and the Atlantic Ocean.\n\n" +
			"The villa features an open-plan living area with floor-to-ceiling windows, a fully equipped modern kitchen, " +
			"and a spacious outdoor entertainment area with a private pool. Each bedroom has premium linens and an en-suite bathroom.\n\n" +
			"You're minutes away from the V&A Waterfront, Clifton beaches and world-class restaurants, with secure parking, " +
			"high-speed WiFi and a dedicated concierge.",
		Location:   "Cape Town, Western Cape, South Africa",
		Address:    "Sea Point, Cape Town, 8005",
		ListingURL: "https://www.airbnb.co.uk/rooms/14755785",
		CheckIn:    "15:00",
		CheckOut:   "10:00",
		Guests:     8,
		Bedrooms:   4,
		Beds:       5,
		Bathrooms:  4,
		Amenities: pq.StringArray{
			"Pool", "Ocean view", "Mountain view", "Kitchen", "WiFi", "Free parking",
			"Air conditioning", "Heating", "Washer", "Dryer", "TV", "BBQ grill",
			"Outdoor dining area", "Security system", "Smoke alarm", "First aid kit",
			"Fire extinguisher", "Coffee maker", "Dishwasher", "Microwave",
		},
		HouseRules: pq.StringArray{
			"Check-in: After 3:00 PM",
			"Checkout: 10:00 AM",
			"No smoking inside",
			"No parties or events",
			"Pets allowed with prior approval",
			"Quiet hours: 10:00 PM - 8:00 AM",
		},
		Highlights: mustJSON([]db_models.Highlight{
			{Icon: "lucide:mountain", Title: "Stunning Views", Description: "Panoramic views of Table Mountain and the Atlantic Ocean"},
			{Icon: "lucide:waves", Title: "Private Pool", Description: "Refreshing pool with loungers and outdoor entertainment area"},
			{Icon: "lucide:map-pin", Title: "Prime Location", Description: "Minutes from V&A Waterfront, beaches, and top restaurants"},
			{Icon: "lucide:shield-check", Title: "Secure Property", Description: "24/7 security, gated access, and secure parking"},
		}),
		Images: mustJSON([]db_models.Image{
			{URL: "https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=1200", Caption: "Villa Exterior", Category: "exterior"},
			{URL: "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=1200", Caption: "Front Entrance", Category: "exterior"},
			{URL: "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=1200", Caption: "Living Room with Ocean View", Category: "living"},
			{URL: "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=1200", Caption: "Open Plan Living Area", Category: "living"},
			{URL: "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=1200", Caption: "Modern Kitchen", Category: "kitchen"},
			{URL: "https://images.unsplash.com/photo-1616594039964-ae9021a400a0?w=1200", Caption: "Master Bedroom", Category: "bedroom"},
			{URL: "https://images.unsplash.com/photo-1552321554-5fefe8c9ef14?w=1200", Caption: "Bedroom with Mountain View", Category: "bedroom"},
			{URL: "https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?w=1200", Caption: "Luxury Bathroom", Category: "bathroom"},
			{URL: "https://images.unsplash.com/photo-1600585154526-990dced4db0d?w=1200", Caption: "Pool with Mountain View", Category: "amenity"},
			{URL: "https://images.unsplash.com/photo-1576485375217-d6a95e34d043?w=1200", Caption: "Sunset over Cape Town", Category: "view"},
		}),
		HostName:      "Superhost",
		Rating:        4.92,
		ReviewCount:   127,
		PricePerNight: &price,
	}
}

func seedRooms() []db_models.Room {
	return []db_models.Room{
		{
			Name:        "Master Suite",
			Description: "Spacious master suite with king-size bed, en-suite bathroom with rainfall shower, walk-in closet, and private balcony with ocean views.",
			BedType:     "King bed",
			Capacity:    2,
			Features:    pq.StringArray{"En-suite bathroom", "Ocean view", "Private balcony", "Walk-in closet", "Smart TV"},
			ImageURL:    "https://images.unsplash.com/photo-1616594039964-ae9021a400a0?w=800",
			Order:       1,
		},
		{
			Name:        "Mountain View Room",
			Description: "Elegant double room featuring stunning views of Table Mountain, queen-size bed with premium linens, and modern en-suite bathroom.",
			BedType:     "Queen bed",
			Capacity:    2,
			Features:    pq.StringArray{"En-suite bathroom", "Mountain view", "Desk workspace", "Smart TV"},
			ImageURL:    "https://images.unsplash.com/photo-1552321554-5fefe8c9ef14?w=800",
			Order:       2,
		},
		{
			Name:        "Garden Suite",
			Description: "Peaceful ground-floor suite with direct garden access, queen-size bed, and en-suite bathroom.",
			BedType:     "Queen bed",
			Capacity:    2,
			Features:    pq.StringArray{"En-suite bathroom", "Garden access", "Patio doors", "Smart TV"},
			ImageURL:    "https://images.unsplash.com/photo-1617325247661-675ab4b64ae2?w=800",
			Order:       3,
		},
		{
			Name:        "Twin Room",
			Description: "Comfortable twin room with two single beds, perfect for friends sharing. Features a modern bathroom and city views.",
			BedType:     "2 Single beds",
			Capacity:    2,
			Features:    pq.StringArray{"En-suite bathroom", "City view", "USB charging points", "Smart TV"},
			ImageURL:    "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=800",
			Order:       4,
		},
	}
}
