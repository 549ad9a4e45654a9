package domain

import "time"

// Booking form field keys, as posted by the page.
const (
	FieldCheckIn  = "checkIn"
	FieldCheckOut = "checkOut"
	FieldGuests   = "guests"
	FieldRoomType = "roomType"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
)

// BookingFields lists the form keys in page order.
var BookingFields = []string{
	FieldCheckIn, FieldCheckOut, FieldGuests, FieldRoomType, FieldName, FieldEmail, FieldPhone,
}

const (
	MinGuests = 1
	MaxGuests = 6
)

type BookingFormState struct {
	CheckIn  string `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"checkOut" validate:"required,datetime=2006-01-02"`
	Guests   int    `json:"guests" validate:"min=1,max=6"`
	RoomType string `json:"roomType" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
}

// NewBookingForm returns the initial form: one guest, the given room preselected.
func NewBookingForm(roomKey string) BookingFormState {
	return BookingFormState{Guests: MinGuests, RoomType: roomKey}
}

type Acknowledgement struct {
	Message     string           `json:"message"`
	Booking     BookingFormState `json:"booking"`
	SubmittedAt time.Time        `json:"submittedAt"`
}

const BookingAckMessage = "Booking request submitted! We will contact you shortly."
