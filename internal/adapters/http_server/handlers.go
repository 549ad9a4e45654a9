package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"valk_landing/internal/adapters/observability"
	"valk_landing/internal/adapters/proxyauth"
	"valk_landing/internal/app"
	"valk_landing/internal/domain"
	"valk_landing/internal/web"
)

const (
	headerViewportHint   = "Sec-CH-Viewport-Width"
	headerViewportLegacy = "Viewport-Width"
	paramView            = "v"
	paramWidth           = "vw"
)

type Handlers struct {
	Pages        *app.PageService
	DefaultWidth int
	Limiter      *ClientLimiter
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.landing)
	s.mux.Route("/views/{viewID}", func(r chi.Router) {
		r.Post("/carousel/next", h.carouselNext)
		r.Post("/carousel/prev", h.carouselPrev)
		r.Post("/carousel/slides/{index}", h.carouselJump)
		r.Post("/booking/fields", h.setField)
		r.Post("/rooms/select", h.selectRoom)
		r.With(h.Limiter.Middleware).Post("/booking", h.submitBooking)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// viewportWidth prefers the client hint, then the legacy hint, then the vw
// parameter carried by the page's own forms and redirects.
func viewportWidth(r *http.Request, fallback int) int {
	for _, v := range []string{r.Header.Get(headerViewportHint), r.Header.Get(headerViewportLegacy), r.FormValue(paramWidth)} {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

// viewport is re-read on every call so each computation sees the width of
// the request that triggered it.
func (h *Handlers) viewport(r *http.Request) func() int {
	return func() int { return viewportWidth(r, h.DefaultWidth) }
}

func pageURL(r *http.Request, id, anchor string) string {
	q := url.Values{}
	q.Set(paramView, id)
	if vw := r.FormValue(paramWidth); vw != "" {
		if n, err := strconv.Atoi(vw); err == nil && n > 0 {
			q.Set(paramWidth, vw)
		}
	}
	u := "/?" + q.Encode()
	if anchor != "" {
		u += "#" + anchor
	}
	return u
}

func (h *Handlers) landing(w http.ResponseWriter, r *http.Request) {
	p, err := h.Pages.Open(r.Context(), r.URL.Query().Get(paramView), h.viewport(r))
	if err != nil {
		log.Error().Err(err).Msg("open page view failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "page view unavailable")
		return
	}
	h.render(w, r, p, http.StatusOK, nil, nil)
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, p *app.Page, status int, ack *domain.Acknowledgement, invalid []string) {
	cat := h.Pages.Catalog()
	view := web.LandingView{
		ViewID:  p.ID,
		Width:   viewportWidth(r, h.DefaultWidth),
		Viewer:  proxyauth.FromContext(r.Context()),
		Catalog: cat,
		Mounted: p.Mounted,
		Carousel: web.CarouselView{
			Current:      p.Carousel.Current(),
			Offset:       p.Carousel.Offset(),
			Panels:       app.Paginate(cat.Features, p.Carousel.CardsPerSlide()),
			ShowControls: p.Carousel.ShowControls(),
		},
		Booking: p.Booking.State(),
		Ack:     ack,
		Invalid: invalid,
	}

	var buf bytes.Buffer
	if err := web.Landing(view).Render(&buf); err != nil {
		log.Error().Err(err).Str("view", p.ID).Msg("render landing page failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "render failed")
		return
	}
	if err := h.Pages.Rendered(r.Context(), p); err != nil {
		log.Error().Err(err).Str("view", p.ID).Msg("store page view failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "page view unavailable")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Accept-CH", headerViewportHint)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Error().Err(err).Msg("failed to write landing body")
	}
}

// afterAction redirects back to the page view, or to a fresh one when the
// view is gone.
func (h *Handlers) afterAction(w http.ResponseWriter, r *http.Request, err error, anchor string) {
	id := chi.URLParam(r, "viewID")
	switch {
	case err == nil:
		http.Redirect(w, r, pageURL(r, id, anchor), http.StatusSeeOther)
	case errors.Is(err, domain.ErrViewNotFound):
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, domain.ErrUnknownField):
		writeProblem(w, http.StatusBadRequest, "Invalid field", "field must be one of the booking form fields")
	case errors.Is(err, domain.ErrInvalidGuests):
		writeProblem(w, http.StatusBadRequest, "Invalid guests", "guests must be a whole number")
	default:
		log.Error().Err(err).Str("view", id).Msg("page view action failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "page view unavailable")
	}
}

func (h *Handlers) carouselNext(w http.ResponseWriter, r *http.Request) {
	err := h.Pages.Next(r.Context(), chi.URLParam(r, "viewID"), h.viewport(r))
	if err == nil {
		observability.ObserveCarousel("next")
	}
	h.afterAction(w, r, err, web.AnchorFeatures)
}

func (h *Handlers) carouselPrev(w http.ResponseWriter, r *http.Request) {
	err := h.Pages.Prev(r.Context(), chi.URLParam(r, "viewID"), h.viewport(r))
	if err == nil {
		observability.ObserveCarousel("prev")
	}
	h.afterAction(w, r, err, web.AnchorFeatures)
}

func (h *Handlers) carouselJump(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || idx < 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid slide", "index must be a non-negative integer")
		return
	}
	err = h.Pages.JumpTo(r.Context(), chi.URLParam(r, "viewID"), h.viewport(r), idx)
	if err == nil {
		observability.ObserveCarousel("jump")
	}
	h.afterAction(w, r, err, web.AnchorFeatures)
}

func (h *Handlers) setField(w http.ResponseWriter, r *http.Request) {
	field := r.PostFormValue("field")
	if field == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid field", "field is required")
		return
	}
	err := h.Pages.SetField(r.Context(), chi.URLParam(r, "viewID"), h.viewport(r), field, r.PostFormValue("value"))
	h.afterAction(w, r, err, web.AnchorBooking)
}

func (h *Handlers) selectRoom(w http.ResponseWriter, r *http.Request) {
	room := r.PostFormValue("room")
	if room == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid room", "room is required")
		return
	}
	err := h.Pages.SelectRoom(r.Context(), chi.URLParam(r, "viewID"), h.viewport(r), room)
	h.afterAction(w, r, err, web.AnchorBooking)
}

func (h *Handlers) submitBooking(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid form", "form body could not be parsed")
		return
	}
	posted := make(map[string]string, len(domain.BookingFields))
	for _, key := range domain.BookingFields {
		if vals, ok := r.PostForm[key]; ok && len(vals) > 0 {
			posted[key] = vals[0]
		}
	}

	p, ack, err := h.Pages.SubmitBooking(r.Context(), chi.URLParam(r, "viewID"), h.viewport(r), posted)
	var invalid *app.InvalidBookingError
	switch {
	case err == nil:
		observability.ObserveBooking("acknowledged")
		h.render(w, r, p, http.StatusOK, &ack, nil)
	case errors.As(err, &invalid):
		observability.ObserveBooking("blocked")
		h.render(w, r, p, http.StatusUnprocessableEntity, nil, invalid.Fields)
	default:
		h.afterAction(w, r, err, web.AnchorBooking)
	}
}
