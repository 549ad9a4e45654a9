package web

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"valk_landing/internal/content"
	"valk_landing/internal/domain"
)

// Landing renders the whole page for one page view.
func Landing(v LandingView) g.Node {
	return layout(content.BrandName+" "+content.Location,
		SiteHeader(v.Viewer),
		hero(v.Mounted),
		featuresSection(v),
		roomsSection(v),
		amenitiesSection(v.Catalog.Amenities),
		bookingSection(v),
		contactSection(v.Catalog.Contact),
		siteFooter(),
	)
}

// EntranceClasses are the classes of the hero content. The first render of a
// page view plays the entrance animation; later renders are static.
func EntranceClasses(mounted bool) string {
	if mounted {
		return "opacity-100 translate-y-0"
	}
	return "hero-enter"
}

// entranceStyle animates the hero from hidden to visible.
const entranceStyle = `@keyframes hero-enter {
  from { opacity: 0; transform: translateY(2rem); }
  to { opacity: 1; transform: translateY(0); }
}
.hero-enter { animation: hero-enter 1s ease-out both; }
@media (prefers-reduced-motion: reduce) { .hero-enter { animation: none; } }`

func hero(mounted bool) g.Node {
	return Section(ID("hero"), Class("relative bg-gradient-to-r from-blue-900 to-blue-700 text-white py-20"),
		g.If(!mounted, StyleEl(g.Raw(entranceStyle))),
		Div(Class("absolute inset-0 bg-black opacity-20")),
		Div(Class("relative container mx-auto px-4 text-center transition-all duration-1000 "+EntranceClasses(mounted)),
			H1(Class("text-5xl md:text-6xl font-bold mb-6"),
				g.Text("Welcome to "+content.BrandName),
				Span(Class("block text-yellow-400"), g.Text(content.Location)),
			),
			P(Class("text-xl md:text-2xl mb-8 max-w-3xl mx-auto"),
				g.Text("Experience luxury and comfort in the heart of the Netherlands' oldest city. "+
					"Modern amenities meet historic charm at our premier hotel."),
			),
			Div(Class("flex flex-col sm:flex-row gap-4 justify-center"),
				A(Href("#"+AnchorBooking), Class("bg-yellow-500 hover:bg-yellow-600 text-black px-8 py-3 text-lg font-semibold rounded-lg"),
					g.Text("Book Your Stay")),
				A(Href("#"+AnchorRooms), Class("border-2 border-white text-white hover:bg-white hover:text-blue-900 px-8 py-3 text-lg font-semibold rounded-lg"),
					g.Text("Explore Rooms")),
			),
		),
	)
}

func featuresSection(v LandingView) g.Node {
	c := v.Carousel
	panels := make([]g.Node, 0, len(c.Panels))
	for _, panel := range c.Panels {
		cards := make([]g.Node, 0, len(panel))
		for _, f := range panel {
			cards = append(cards, Div(Class("feature-card p-6 text-center bg-white bg-opacity-90 rounded-lg"),
				Div(Class("mb-4 flex justify-center"), icon(f.Icon, "w-8 h-8 text-black")),
				H3(Class("text-xl font-semibold text-black mb-2"), g.Text(f.Title)),
				P(Class("text-gray-800"), g.Text(f.Description)),
			))
		}
		panels = append(panels, Div(Class("carousel-panel w-full flex-shrink-0"),
			Div(Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-8 px-4"), g.Group(cards)),
		))
	}

	return Section(ID(AnchorFeatures), Class("py-16 bg-gradient-to-r from-yellow-400 to-yellow-500"),
		Div(Class("container mx-auto px-4"),
			Div(Class("text-center mb-12"),
				H2(Class("text-4xl font-bold text-black mb-4"), g.Text("Why Choose "+content.BrandName+" "+content.Location+"?")),
				P(Class("text-black max-w-2xl mx-auto"),
					g.Text("Discover what makes our hotel the perfect choice for your stay in "+content.Location)),
			),
			Div(Class("relative"),
				Div(Class("overflow-hidden"),
					Div(Class("carousel-strip flex transition-transform duration-500 ease-in-out"),
						g.Attr("style", fmt.Sprintf("transform: translateX(-%d%%)", c.Offset)),
						g.Group(panels),
					),
				),
				g.If(c.ShowControls, carouselArrows(v)),
				g.If(c.ShowControls, carouselDots(v)),
			),
		),
	)
}

func carouselArrows(v LandingView) g.Node {
	return g.Group{
		navForm(v, "carousel/prev", "Previous features", "absolute left-0 top-1/2 transform -translate-y-1/2",
			icon("chevron-left", "w-6 h-6")),
		navForm(v, "carousel/next", "Next features", "absolute right-0 top-1/2 transform -translate-y-1/2",
			icon("chevron-right", "w-6 h-6")),
	}
}

func carouselDots(v LandingView) g.Node {
	dots := make([]g.Node, 0, len(v.Carousel.Panels))
	for i := range v.Carousel.Panels {
		class := "carousel-dot w-3 h-3 rounded-full transition-all bg-black bg-opacity-30 hover:bg-opacity-50"
		if i == v.Carousel.Current {
			class = "carousel-dot w-3 h-3 rounded-full transition-all bg-black"
		}
		dots = append(dots, form(Method("post"), Action(v.action("carousel/slides/"+strconv.Itoa(i))),
			widthInput(v.Width),
			Button(Type("submit"), Class(class), Aria("label", fmt.Sprintf("Go to slide %d", i+1))),
		))
	}
	return Div(Class("carousel-dots flex justify-center mt-8 space-x-2"), g.Group(dots))
}

func navForm(v LandingView, path, ariaLabel, position string, children ...g.Node) g.Node {
	return form(Method("post"), Action(v.action(path)), Class(position),
		widthInput(v.Width),
		Button(Type("submit"), Class("carousel-arrow bg-black bg-opacity-50 hover:bg-opacity-75 text-white p-2 rounded-full transition-all"),
			Aria("label", ariaLabel),
			g.Group(children),
		),
	)
}

func widthInput(w int) g.Node {
	return Input(Type("hidden"), Name("vw"), Value(strconv.Itoa(w)))
}

func roomsSection(v LandingView) g.Node {
	cards := make([]g.Node, 0, len(v.Catalog.Rooms))
	for _, r := range v.Catalog.Rooms {
		tags := make([]g.Node, 0, len(r.Features))
		for _, f := range r.Features {
			tags = append(tags, Span(Class("text-xs bg-gray-100 text-gray-700 px-2 py-1 rounded"), g.Text(f)))
		}
		cards = append(cards, Div(Class("room-card overflow-hidden rounded-lg shadow hover:shadow-lg transition-shadow"),
			Div(Class("h-48 bg-gray-200 relative"),
				Img(Src(r.ImageRef), Alt(r.Name), Class("w-full h-full object-cover")),
				Span(Class("absolute top-4 right-4 bg-yellow-500 text-black px-2 py-1 rounded"), g.Text(r.NightlyPrice+"/night")),
			),
			Div(Class("p-4"),
				H3(Class("text-xl font-semibold text-gray-900 mb-2"), g.Text(r.Name)),
				P(Class("text-gray-600 mb-3"), g.Text(r.Description)),
				Div(Class("flex flex-wrap gap-2 mb-4"), g.Group(tags)),
				form(Method("post"), Action(v.action("rooms/select")),
					widthInput(v.Width),
					Input(Type("hidden"), Name("room"), Value(r.Name)),
					Button(Type("submit"), Class("w-full bg-blue-600 hover:bg-blue-700 text-white py-2 rounded-lg"), g.Text("Select Room")),
				),
			),
		))
	}
	return Section(ID(AnchorRooms), Class("py-16"),
		Div(Class("container mx-auto px-4"),
			Div(Class("text-center mb-12"),
				H2(Class("text-4xl font-bold text-gray-900 mb-4"), g.Text("Our Rooms & Suites")),
				P(Class("text-gray-600 max-w-2xl mx-auto"),
					g.Text("Choose from our selection of comfortable and elegantly designed accommodations")),
			),
			Div(Class("grid md:grid-cols-2 lg:grid-cols-4 gap-6"), g.Group(cards)),
		),
	)
}

func amenitiesSection(amenities []domain.AmenityEntry) g.Node {
	return Section(ID(AnchorAmenity), Class("py-16 bg-gray-50"),
		Div(Class("container mx-auto px-4"),
			Div(Class("text-center mb-12"),
				H2(Class("text-4xl font-bold text-gray-900 mb-4"), g.Text("Hotel Amenities")),
				P(Class("text-gray-600 max-w-2xl mx-auto"), g.Text("Enjoy our comprehensive range of facilities and services")),
			),
			Div(Class("grid grid-cols-2 md:grid-cols-3 lg:grid-cols-6 gap-6"),
				g.Map(amenities, func(a domain.AmenityEntry) g.Node {
					return Div(Class("amenity text-center p-4 bg-white rounded-lg shadow-sm"),
						Div(Class("text-blue-600 mb-3 flex justify-center"), icon(a.Icon, "w-6 h-6")),
						P(Class("text-sm font-medium text-gray-900"), g.Text(a.Name)),
					)
				}),
			),
		),
	)
}

func contactSection(c domain.ContactDetails) g.Node {
	return Section(ID(AnchorContact), Class("py-16 bg-gray-900 text-white"),
		Div(Class("container mx-auto px-4"),
			Div(Class("text-center mb-12"),
				H2(Class("text-4xl font-bold mb-4"), g.Text("Contact Us")),
				P(Class("text-gray-300 max-w-2xl mx-auto"),
					g.Text("Get in touch with our friendly staff for any questions or special requests")),
			),
			Div(Class("grid md:grid-cols-3 gap-8 text-center"),
				contactBlock("map-pin", "Address", c.Address),
				contactBlock("phone", "Phone", c.Phone),
				contactBlock("mail", "Email", c.Email),
			),
		),
	)
}

func contactBlock(iconName, title string, lines []string) g.Node {
	body := make([]g.Node, 0, 2*len(lines))
	for i, l := range lines {
		if i > 0 {
			body = append(body, Br())
		}
		body = append(body, g.Text(l))
	}
	return Div(Class("p-6"),
		icon(iconName, "w-8 h-8 text-blue-400 mx-auto mb-4"),
		H3(Class("text-xl font-semibold mb-2"), g.Text(title)),
		P(Class("text-gray-300"), g.Group(body)),
	)
}

func siteFooter() g.Node {
	return Footer(Class("bg-black text-white py-8"),
		Div(Class("container mx-auto px-4"),
			Div(Class("flex flex-col md:flex-row justify-between items-center"),
				Div(Class("text-gray-300 mb-4 md:mb-0"),
					g.Textf("© 2024 %s Hotel %s. All rights reserved.", content.BrandName, content.Location)),
				Div(Class("flex space-x-6"),
					A(Href(PathRestaurant), Class("text-gray-300 hover:text-white transition-colors"), g.Text("Restaurant")),
					A(Href("#"), Class("text-gray-300 hover:text-white transition-colors"), g.Text("Privacy Policy")),
					A(Href("#"), Class("text-gray-300 hover:text-white transition-colors"), g.Text("Terms & Conditions")),
				),
			),
		),
	)
}
