// Package web renders the landing page. Every function here is a pure mapping
// from explicit inputs to a gomponents node tree.
package web

import (
	"fmt"

	"valk_landing/internal/domain"
)

// Scroll targets produced by the page.
const (
	AnchorFeatures = "features"
	AnchorRooms    = "rooms"
	AnchorAmenity  = "amenities"
	AnchorBooking  = "booking-form"
	AnchorContact  = "contact"
)

// Destinations owned by the routing collaborator.
const (
	PathRestaurant = "/restaurant"
	PathLogin      = "/login"
	PathRegister   = "/register"
	PathDashboard  = "/dashboard"
)

type CarouselView struct {
	Current      int
	Offset       int // percent
	Panels       [][]domain.FeatureHighlight
	ShowControls bool
}

type LandingView struct {
	ViewID   string
	Width    int // viewport width used for this render
	Viewer   domain.Viewer
	Catalog  domain.Catalog
	Mounted  bool
	Carousel CarouselView
	Booking  domain.BookingFormState
	Ack      *domain.Acknowledgement
	Invalid  []string // booking fields failing their input constraints
}

func (v LandingView) invalid(field string) bool {
	for _, f := range v.Invalid {
		if f == field {
			return true
		}
	}
	return false
}

func (v LandingView) action(path string) string {
	return fmt.Sprintf("/views/%s/%s", v.ViewID, path)
}
