package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"valk_landing/internal/app"
	"valk_landing/internal/content"
	"valk_landing/internal/domain"
)

// ---- fakes ----

type fakeStore struct {
	views map[string]domain.ViewState
	saves int
	err   error
}

func (s *fakeStore) Load(ctx context.Context, id string) (domain.ViewState, error) {
	if s.err != nil {
		return domain.ViewState{}, s.err
	}
	st, ok := s.views[id]
	if !ok {
		return domain.ViewState{}, domain.ErrViewNotFound
	}
	return st, nil
}

func (s *fakeStore) Save(ctx context.Context, st domain.ViewState, ttl time.Duration) error {
	if s.views == nil {
		s.views = map[string]domain.ViewState{}
	}
	s.views[st.ID] = st
	s.saves++
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, id string) error {
	delete(s.views, id)
	return nil
}

func newService(store *fakeStore) *app.PageService {
	return app.NewPageService(store, content.Catalog(), time.Minute, zerolog.Nop())
}

func openRendered(t *testing.T, svc *app.PageService) *app.Page {
	t.Helper()
	p, err := svc.Open(context.Background(), "", width(1280))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := svc.Rendered(context.Background(), p); err != nil {
		t.Fatalf("Rendered: %v", err)
	}
	return p
}

func validPost() map[string]string {
	return map[string]string{
		domain.FieldCheckIn:  "2026-11-01",
		domain.FieldCheckOut: "2026-11-04",
		domain.FieldGuests:   "2",
		domain.FieldRoomType: "family-room",
		domain.FieldName:     "Jan de Vries",
		domain.FieldEmail:    "jan@example.nl",
		domain.FieldPhone:    "+31 24 000 0000",
	}
}

// ---- tests ----

func TestOpen_FreshViewDefaults(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store)
	p, err := svc.Open(context.Background(), "", width(1280))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if p.ID == "" || p.Mounted || p.Carousel.Current() != 0 {
		t.Fatalf("unexpected fresh page: %+v", p.State())
	}
	st := p.Booking.State()
	if st.Guests != 1 || st.RoomType != "standard-room" {
		t.Fatalf("unexpected fresh form: %+v", st)
	}
	if store.saves != 0 {
		t.Fatalf("fresh page saved before render")
	}
}

func TestRendered_MountsOnce(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store)
	p := openRendered(t, svc)
	if !p.Mounted || !store.views[p.ID].Mounted {
		t.Fatalf("not mounted after render")
	}
	again, err := svc.Open(context.Background(), p.ID, width(1280))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if !again.Mounted {
		t.Fatalf("mounted flag lost")
	}
	if again.MarkMounted() {
		t.Fatalf("MarkMounted changed an already mounted page")
	}
}

func TestOpen_UnknownIDStartsFresh(t *testing.T) {
	svc := newService(&fakeStore{})
	p, err := svc.Open(context.Background(), "expired", width(1280))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if p.ID == "expired" {
		t.Fatalf("expected a new view id")
	}
}

func TestOpen_StoreFailure(t *testing.T) {
	boom := errors.New("boom")
	svc := newService(&fakeStore{err: boom})
	if _, err := svc.Open(context.Background(), "abc", width(1280)); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestCarouselOperations_Persist(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store)
	p := openRendered(t, svc)
	ctx := context.Background()

	if err := svc.Next(ctx, p.ID, width(400)); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got := store.views[p.ID].CurrentSlide; got != 1 {
		t.Fatalf("after Next: %d", got)
	}
	if err := svc.Prev(ctx, p.ID, width(400)); err != nil {
		t.Fatalf("Prev: %v", err)
	}
	if err := svc.Prev(ctx, p.ID, width(400)); err != nil {
		t.Fatalf("Prev: %v", err)
	}
	if got := store.views[p.ID].CurrentSlide; got != 4 {
		t.Fatalf("after wrap: %d", got)
	}
	if err := svc.JumpTo(ctx, p.ID, width(400), 2); err != nil {
		t.Fatalf("JumpTo: %v", err)
	}
	if got := store.views[p.ID].CurrentSlide; got != 2 {
		t.Fatalf("after JumpTo: %d", got)
	}
}

func TestOperations_UnknownView(t *testing.T) {
	svc := newService(&fakeStore{})
	if err := svc.Next(context.Background(), "nope", width(1280)); !errors.Is(err, domain.ErrViewNotFound) {
		t.Fatalf("expected ErrViewNotFound, got %v", err)
	}
	if err := svc.SetField(context.Background(), "", width(1280), domain.FieldName, "x"); !errors.Is(err, domain.ErrViewNotFound) {
		t.Fatalf("expected ErrViewNotFound, got %v", err)
	}
}

func TestSetFieldAndSelectRoom_Persist(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store)
	p := openRendered(t, svc)
	ctx := context.Background()

	if err := svc.SetField(ctx, p.ID, width(1280), domain.FieldCheckIn, "2026-12-24"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if err := svc.SelectRoom(ctx, p.ID, width(1280), "Executive Suite"); err != nil {
		t.Fatalf("SelectRoom: %v", err)
	}
	st := store.views[p.ID].Booking
	if st.CheckIn != "2026-12-24" || st.RoomType != "executive-suite" {
		t.Fatalf("unexpected booking state: %+v", st)
	}
}

func TestSubmitBooking_Acknowledged(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store)
	p := openRendered(t, svc)

	page, ack, err := svc.SubmitBooking(context.Background(), p.ID, width(1280), validPost())
	if err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}
	if ack.Message != domain.BookingAckMessage {
		t.Fatalf("ack: %+v", ack)
	}
	if page.Booking.State() != store.views[p.ID].Booking || store.views[p.ID].Booking.Name != "Jan de Vries" {
		t.Fatalf("stored form differs: %+v", store.views[p.ID].Booking)
	}
}

func TestSubmitBooking_MissingRequired(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store)
	p := openRendered(t, svc)

	post := validPost()
	delete(post, domain.FieldName)
	post[domain.FieldEmail] = "not-an-email"

	_, ack, err := svc.SubmitBooking(context.Background(), p.ID, width(1280), post)
	var inv *app.InvalidBookingError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InvalidBookingError, got %v", err)
	}
	if !inv.Has(domain.FieldName) || !inv.Has(domain.FieldEmail) || inv.Has(domain.FieldPhone) {
		t.Fatalf("unexpected fields: %v", inv.Fields)
	}
	if ack.Message != "" {
		t.Fatalf("acknowledged an invalid request")
	}
	if got := store.views[p.ID].Booking.Phone; got != "+31 24 000 0000" {
		t.Fatalf("posted values not kept: %q", got)
	}
}

func TestSubmitBooking_GuestsOutOfRange(t *testing.T) {
	svc := newService(&fakeStore{})
	p := openRendered(t, svc)

	post := validPost()
	post[domain.FieldGuests] = "7"
	_, _, err := svc.SubmitBooking(context.Background(), p.ID, width(1280), post)
	var inv *app.InvalidBookingError
	if !errors.As(err, &inv) || !inv.Has(domain.FieldGuests) {
		t.Fatalf("expected guests failure, got %v", err)
	}
}
