package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"valk_landing/internal/domain"
)

// BookingForm holds the booking request fields of one page view.
type BookingForm struct {
	state domain.BookingFormState
	log   zerolog.Logger
	now   func() time.Time
}

func NewBookingForm(st domain.BookingFormState, l zerolog.Logger) *BookingForm {
	return &BookingForm{state: st, log: l, now: time.Now}
}

func (f *BookingForm) State() domain.BookingFormState { return f.state }

// SetField replaces exactly one field. No cross-field checks are made.
func (f *BookingForm) SetField(key, value string) error {
	switch key {
	case domain.FieldCheckIn:
		f.state.CheckIn = value
	case domain.FieldCheckOut:
		f.state.CheckOut = value
	case domain.FieldGuests:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %q", domain.ErrInvalidGuests, value)
		}
		f.state.Guests = n
	case domain.FieldRoomType:
		f.state.RoomType = value
	case domain.FieldName:
		f.state.Name = value
	case domain.FieldEmail:
		f.state.Email = value
	case domain.FieldPhone:
		f.state.Phone = value
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownField, key)
	}
	return nil
}

// SelectRoom preselects the room type from a room's display name.
func (f *BookingForm) SelectRoom(roomName string) {
	f.state.RoomType = domain.RoomKey(roomName)
}

// Submit records the request and returns its acknowledgement. The form is left as is.
func (f *BookingForm) Submit() domain.Acknowledgement {
	st := f.state
	f.log.Info().
		Str("check_in", st.CheckIn).
		Str("check_out", st.CheckOut).
		Int("guests", st.Guests).
		Str("room_type", st.RoomType).
		Str("name", st.Name).
		Str("email", st.Email).
		Str("phone", st.Phone).
		Msg("booking_request")
	return domain.Acknowledgement{
		Message:     domain.BookingAckMessage,
		Booking:     st,
		SubmittedAt: f.now().UTC(),
	}
}
