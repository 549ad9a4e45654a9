package web

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"valk_landing/internal/domain"
)

func bookingSection(v LandingView) g.Node {
	b := v.Booking
	return Section(ID(AnchorBooking), Class("py-16"),
		Div(Class("container mx-auto px-4"),
			Div(Class("max-w-2xl mx-auto"),
				Div(Class("text-center mb-8"),
					H2(Class("text-4xl font-bold text-gray-900 mb-4"), g.Text("Book Your Stay")),
					P(Class("text-gray-600"),
						g.Text("Fill out the form below and we'll get back to you with availability and pricing")),
				),
				g.Iff(v.Ack != nil, func() g.Node { return acknowledgement(v.Ack) }),
				Div(Class("p-8 shadow-lg rounded-lg"),
					form(ID("booking"), Method("post"), Action(v.action("booking")), Class("space-y-6"),
						widthInput(v.Width),
						Div(Class("grid md:grid-cols-2 gap-4"),
							field(v, domain.FieldCheckIn, "Check-in Date", "date", b.CheckIn, ""),
							field(v, domain.FieldCheckOut, "Check-out Date", "date", b.CheckOut, ""),
						),
						Div(Class("grid md:grid-cols-2 gap-4"),
							Div(
								label(domain.FieldGuests, "Number of Guests"),
								Select(ID(domain.FieldGuests), Name(domain.FieldGuests), Required(), Class(inputClass(v, domain.FieldGuests)),
									guestOptions(b.Guests),
								),
							),
							Div(
								label(domain.FieldRoomType, "Room Type"),
								Select(ID(domain.FieldRoomType), Name(domain.FieldRoomType), Required(), Class(inputClass(v, domain.FieldRoomType)),
									roomOptions(v.Catalog.Rooms, b.RoomType),
								),
							),
						),
						field(v, domain.FieldName, "Full Name", "text", b.Name, "Enter your full name"),
						Div(Class("grid md:grid-cols-2 gap-4"),
							field(v, domain.FieldEmail, "Email Address", "email", b.Email, "Enter your email"),
							field(v, domain.FieldPhone, "Phone Number", "tel", b.Phone, "Enter your phone number"),
						),
						Button(Type("submit"), Class("w-full bg-blue-600 hover:bg-blue-700 text-white py-3 text-lg font-semibold rounded-lg"),
							icon("calendar", "w-5 h-5 mr-2"),
							g.Text("Submit Booking Request"),
						),
					),
				),
			),
		),
	)
}

func acknowledgement(ack *domain.Acknowledgement) g.Node {
	return Div(ID("booking-ack"), g.Attr("role", "alert"), Class("mb-6 p-4 rounded-lg bg-green-100 text-green-800"),
		g.Text(ack.Message),
	)
}

func field(v LandingView, key, text, typ, value, placeholder string) g.Node {
	return Div(
		label(key, text),
		Input(ID(key), Name(key), Type(typ), Value(value), Required(), Class(inputClass(v, key)),
			g.If(placeholder != "", Placeholder(placeholder)),
			g.If(v.invalid(key), Aria("invalid", "true")),
		),
	)
}

func inputClass(v LandingView, key string) string {
	base := "w-full p-3 border rounded-lg focus:ring-2 focus:ring-blue-500 focus:border-transparent"
	if v.invalid(key) {
		return base + " border-red-500"
	}
	return base + " border-gray-300"
}

func guestOptions(selected int) g.Node {
	opts := make([]g.Node, 0, domain.MaxGuests)
	for n := domain.MinGuests; n <= domain.MaxGuests; n++ {
		text := strconv.Itoa(n) + " Guest"
		if n > 1 {
			text += "s"
		}
		opts = append(opts, Option(Value(strconv.Itoa(n)), g.If(n == selected, Selected()), g.Text(text)))
	}
	return g.Group(opts)
}

func roomOptions(rooms []domain.RoomOffering, selected string) g.Node {
	opts := make([]g.Node, 0, len(rooms))
	for _, r := range rooms {
		opts = append(opts, Option(Value(r.Key()), g.If(r.Key() == selected, Selected()), g.Text(r.Name)))
	}
	return g.Group(opts)
}
