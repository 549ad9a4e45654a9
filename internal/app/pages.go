package app

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"valk_landing/internal/domain"
)

// InvalidBookingError lists the fields that fail the form's input constraints.
type InvalidBookingError struct {
	Fields []string
}

func (e *InvalidBookingError) Error() string {
	return "invalid booking fields: " + strings.Join(e.Fields, ", ")
}

// Has reports whether field failed its constraint.
func (e *InvalidBookingError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

type PageService struct {
	store    domain.ViewStore
	catalog  domain.Catalog
	ttl      time.Duration
	log      zerolog.Logger
	validate *validator.Validate
	newID    func() string
}

func NewPageService(store domain.ViewStore, cat domain.Catalog, ttl time.Duration, l zerolog.Logger) *PageService {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &PageService{
		store:    store,
		catalog:  cat,
		ttl:      ttl,
		log:      l,
		validate: v,
		newID:    uuid.NewString,
	}
}

func (s *PageService) Catalog() domain.Catalog { return s.catalog }

// Open loads the page view with the given id. An empty, unknown or expired id
// opens a fresh page view, the equivalent of reloading the page.
func (s *PageService) Open(ctx context.Context, id string, viewport func() int) (*Page, error) {
	if id != "" {
		st, err := s.store.Load(ctx, id)
		switch {
		case err == nil:
			return newPage(st, s.catalog, viewport, s.log), nil
		case !errors.Is(err, domain.ErrViewNotFound):
			return nil, fmt.Errorf("load view %s: %w", id, err)
		}
	}
	st := domain.ViewState{
		ID:      s.newID(),
		Booking: domain.NewBookingForm(s.catalog.DefaultRoomKey()),
	}
	return newPage(st, s.catalog, viewport, s.log), nil
}

// Rendered is called after a page view has been rendered. It sets the
// mounted flag and stores the view.
func (s *PageService) Rendered(ctx context.Context, p *Page) error {
	p.MarkMounted()
	return s.save(ctx, p)
}

func (s *PageService) Next(ctx context.Context, id string, viewport func() int) error {
	return s.apply(ctx, id, viewport, func(p *Page) error { p.Carousel.Next(); return nil })
}

func (s *PageService) Prev(ctx context.Context, id string, viewport func() int) error {
	return s.apply(ctx, id, viewport, func(p *Page) error { p.Carousel.Prev(); return nil })
}

func (s *PageService) JumpTo(ctx context.Context, id string, viewport func() int, slide int) error {
	return s.apply(ctx, id, viewport, func(p *Page) error { p.Carousel.JumpTo(slide); return nil })
}

func (s *PageService) SetField(ctx context.Context, id string, viewport func() int, key, value string) error {
	return s.apply(ctx, id, viewport, func(p *Page) error { return p.Booking.SetField(key, value) })
}

func (s *PageService) SelectRoom(ctx context.Context, id string, viewport func() int, roomName string) error {
	return s.apply(ctx, id, viewport, func(p *Page) error { p.Booking.SelectRoom(roomName); return nil })
}

// SubmitBooking applies the posted fields, checks them against the form's input
// constraints and submits. Posted values are kept even when the check fails.
func (s *PageService) SubmitBooking(ctx context.Context, id string, viewport func() int, posted map[string]string) (*Page, domain.Acknowledgement, error) {
	p, err := s.load(ctx, id, viewport)
	if err != nil {
		return nil, domain.Acknowledgement{}, err
	}
	var fieldErr error
	for _, key := range domain.BookingFields {
		v, ok := posted[key]
		if !ok {
			continue
		}
		if err := p.Booking.SetField(key, v); err != nil && fieldErr == nil {
			fieldErr = err
		}
	}
	if err := s.save(ctx, p); err != nil {
		return nil, domain.Acknowledgement{}, err
	}
	if fieldErr != nil {
		return p, domain.Acknowledgement{}, &InvalidBookingError{Fields: []string{domain.FieldGuests}}
	}
	if err := s.check(p.Booking.State()); err != nil {
		return p, domain.Acknowledgement{}, err
	}
	return p, p.Booking.Submit(), nil
}

func (s *PageService) check(st domain.BookingFormState) error {
	err := s.validate.Struct(st)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &InvalidBookingError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, fe.Field())
	}
	return out
}

func (s *PageService) apply(ctx context.Context, id string, viewport func() int, op func(*Page) error) error {
	p, err := s.load(ctx, id, viewport)
	if err != nil {
		return err
	}
	if err := op(p); err != nil {
		return err
	}
	return s.save(ctx, p)
}

func (s *PageService) load(ctx context.Context, id string, viewport func() int) (*Page, error) {
	if id == "" {
		return nil, domain.ErrViewNotFound
	}
	st, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return newPage(st, s.catalog, viewport, s.log), nil
}

func (s *PageService) save(ctx context.Context, p *Page) error {
	if err := s.store.Save(ctx, p.State(), s.ttl); err != nil {
		return fmt.Errorf("save view %s: %w", p.ID, err)
	}
	return nil
}
