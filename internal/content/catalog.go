// Package content holds the built-in landing page content.
package content

import "valk_landing/internal/domain"

const (
	BrandName = "Van der Valk"
	Location  = "Nijmegen"
)

// Catalog returns a fresh copy of the built-in rooms, amenities, features and contact details.
func Catalog() domain.Catalog {
	return domain.Catalog{
		Rooms: []domain.RoomOffering{
			{
				Name:         "Standard Room",
				NightlyPrice: "€89",
				ImageRef:     "/api/placeholder/400/300",
				Features:     []string{"Free WiFi", "Air Conditioning", "Private Bathroom", "TV"},
				Description:  "Comfortable standard room with modern amenities",
			},
			{
				Name:         "Deluxe Room",
				NightlyPrice: "€129",
				ImageRef:     "/api/placeholder/400/300",
				Features:     []string{"Free WiFi", "Air Conditioning", "Mini Bar", "City View"},
				Description:  "Spacious deluxe room with beautiful city views",
			},
			{
				Name:         "Executive Suite",
				NightlyPrice: "€199",
				ImageRef:     "/api/placeholder/400/300",
				Features:     []string{"Free WiFi", "Separate Living Area", "Premium Amenities", "River View"},
				Description:  "Luxurious suite with separate living area and premium services",
			},
			{
				Name:         "Family Room",
				NightlyPrice: "€159",
				ImageRef:     "/api/placeholder/400/300",
				Features:     []string{"Free WiFi", "Extra Space", "Family Amenities", "Garden View"},
				Description:  "Perfect for families with extra space and child-friendly amenities",
			},
		},
		Amenities: []domain.AmenityEntry{
			{Icon: "wifi", Name: "Free WiFi"},
			{Icon: "car", Name: "Free Parking"},
			{Icon: "coffee", Name: "Restaurant"},
			{Icon: "bed", Name: "Room Service"},
			{Icon: "users", Name: "Conference Rooms"},
			{Icon: "star", Name: "Concierge Service"},
		},
		Features: []domain.FeatureHighlight{
			{Icon: "map-pin", Title: "Prime Location", Description: "Located in the heart of Nijmegen with easy access to historic sites and shopping"},
			{Icon: "utensils", Title: "Fine Dining", Description: "Award-winning restaurant serving local and international cuisine"},
			{Icon: "bed", Title: "Luxury Comfort", Description: "Elegantly appointed rooms with premium amenities and modern facilities"},
			{Icon: "users", Title: "Business Facilities", Description: "State-of-the-art conference rooms and business center for corporate events"},
			{Icon: "wine", Title: "Rooftop Bar", Description: "Stunning rooftop bar with panoramic views of Nijmegen and craft cocktails"},
		},
		Contact: domain.ContactDetails{
			Address: []string{"Laan van Westenenk 10", "6516 AH Nijmegen", "Netherlands"},
			Phone:   []string{"+31 24 123 4567", "Available 24/7"},
			Email:   []string{"info@vandervalk-nijmegen.nl", "reservations@vandervalk-nijmegen.nl"},
		},
	}
}
