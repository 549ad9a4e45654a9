package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"valk_landing/internal/content"
	"valk_landing/internal/domain"
)

// SiteHeader renders the navigation bar. The user area depends only on the
// viewer: a welcome and dashboard link when authenticated, login and register
// links otherwise.
func SiteHeader(v domain.Viewer) g.Node {
	return Header(Class("bg-white shadow-sm sticky top-0 z-50"),
		Nav(Class("container mx-auto px-4 py-4 flex items-center justify-between"),
			Div(Class("flex items-center space-x-3"),
				Div(Class("w-10 h-10 bg-gradient-to-r from-blue-600 to-blue-800 rounded-lg flex items-center justify-center"),
					icon("bed", "w-6 h-6 text-white"),
				),
				Div(Class("flex flex-col"),
					Span(Class("text-xl font-bold text-gray-900"), g.Text(content.BrandName)),
					Span(Class("text-sm text-gray-600"), g.Text(content.Location)),
				),
			),
			Div(Class("hidden md:flex items-center space-x-8"),
				navLink("#"+AnchorRooms, "Rooms"),
				navLink(PathRestaurant, "Restaurant"),
				navLink("#"+AnchorAmenity, "Amenities"),
				navLink("#"+AnchorContact, "Contact"),
			),
			Div(Class("flex items-center space-x-4"),
				g.If(v.Authenticated, userSection(v)),
				g.If(!v.Authenticated, authButtons()),
			),
		),
	)
}

// Greeting is the welcome text for an authenticated viewer.
func Greeting(v domain.Viewer) string {
	if first := v.FirstName(); first != "" {
		return "Welcome, " + first + "!"
	}
	return "Welcome!"
}

func userSection(v domain.Viewer) g.Node {
	return Div(ID("user-section"), Class("flex items-center space-x-4"),
		Span(Class("text-gray-700"), g.Text(Greeting(v))),
		A(Href(PathDashboard), Class("bg-blue-600 hover:bg-blue-700 text-white px-4 py-2 rounded-lg transition-colors"),
			icon("user", "w-4 h-4 mr-2"),
			g.Text("Dashboard"),
		),
	)
}

func authButtons() g.Node {
	return Div(ID("auth-buttons"), Class("flex items-center space-x-2"),
		A(Href(PathLogin), Class("text-gray-700 hover:text-blue-600 transition-colors"), g.Text("Login")),
		A(Href(PathRegister), Class("bg-blue-600 hover:bg-blue-700 text-white px-4 py-2 rounded-lg transition-colors"), g.Text("Book Now")),
	)
}

func navLink(href, text string) g.Node {
	return A(Href(href), Class("text-gray-700 hover:text-blue-600 transition-colors"), g.Text(text))
}
