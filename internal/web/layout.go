package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func layout(title string, children ...g.Node) g.Node {
	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("UTF-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(title)),
				Script(Src("https://cdn.tailwindcss.com")),
			),
			Body(
				Div(Class("min-h-screen bg-white"),
					g.Group(children),
				),
			),
		),
	)
}

// icon renders a named icon placeholder; glyphs come from the client stylesheet.
func icon(name, class string) g.Node {
	return Span(Class("icon icon-"+name+" "+class), Aria("hidden", "true"))
}

func form(children ...g.Node) g.Node { return g.El("form", children...) }

func label(forID, text string) g.Node {
	return g.El("label", g.Attr("for", forID), Class("block text-sm font-medium text-gray-700 mb-2"), g.Text(text))
}
