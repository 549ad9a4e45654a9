package app

// Viewport width breakpoints, in CSS pixels.
const (
	WideViewport   = 1024
	MediumViewport = 768
)

// CardsPerSlide is the number of feature cards shown per carousel page at the given width.
func CardsPerSlide(width int) int {
	switch {
	case width >= WideViewport:
		return 4
	case width >= MediumViewport:
		return 2
	default:
		return 1
	}
}

// Carousel tracks the current slide of the feature carousel.
//
// The viewport width is read through viewport on every call; nothing is cached
// between calls, so PageCount and the panel boundaries always reflect the width
// of the request being served.
type Carousel struct {
	current  int
	features int
	viewport func() int
}

func NewCarousel(features, current int, viewport func() int) *Carousel {
	return &Carousel{current: current, features: features, viewport: viewport}
}

func (c *Carousel) Current() int { return c.current }

func (c *Carousel) CardsPerSlide() int { return CardsPerSlide(c.viewport()) }

func (c *Carousel) PageCount() int {
	per := c.CardsPerSlide()
	return (c.features + per - 1) / per
}

// Next advances one page, wrapping from the last page to the first.
func (c *Carousel) Next() {
	n := c.PageCount()
	if n == 0 {
		return
	}
	c.current = (c.current + 1) % n
}

// Prev goes back one page, wrapping from the first page to the last.
func (c *Carousel) Prev() {
	n := c.PageCount()
	if n == 0 {
		return
	}
	c.current = (c.current - 1 + n) % n
}

// JumpTo sets the current page. Callers only offer indexes in [0, PageCount()).
func (c *Carousel) JumpTo(i int) { c.current = i }

// Offset is the horizontal translation of the panel strip, in percent.
func (c *Carousel) Offset() int { return c.current * 100 }

// ShowControls reports whether arrows and indicator dots are rendered.
func (c *Carousel) ShowControls() bool { return c.PageCount() > 1 }

// Paginate splits items into consecutive pages of at most per items.
func Paginate[T any](items []T, per int) [][]T {
	if per <= 0 {
		return nil
	}
	pages := make([][]T, 0, (len(items)+per-1)/per)
	for start := 0; start < len(items); start += per {
		end := min(start+per, len(items))
		pages = append(pages, items[start:end])
	}
	return pages
}
