package app

import (
	"github.com/rs/zerolog"

	"valk_landing/internal/domain"
)

// Page is the view-model of one page view. All of its state changes go
// through the carousel and booking form operations or MarkMounted.
type Page struct {
	ID       string
	Mounted  bool
	Carousel *Carousel
	Booking  *BookingForm
}

func newPage(st domain.ViewState, cat domain.Catalog, viewport func() int, l zerolog.Logger) *Page {
	return &Page{
		ID:       st.ID,
		Mounted:  st.Mounted,
		Carousel: NewCarousel(len(cat.Features), st.CurrentSlide, viewport),
		Booking:  NewBookingForm(st.Booking, l.With().Str("view", st.ID).Logger()),
	}
}

// MarkMounted sets the mounted flag and reports whether it changed.
func (p *Page) MarkMounted() bool {
	if p.Mounted {
		return false
	}
	p.Mounted = true
	return true
}

func (p *Page) State() domain.ViewState {
	return domain.ViewState{
		ID:           p.ID,
		Mounted:      p.Mounted,
		CurrentSlide: p.Carousel.Current(),
		Booking:      p.Booking.State(),
	}
}
