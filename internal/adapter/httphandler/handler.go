package httphandler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/auracraft/storefront/internal/core/domain"
	"github.com/auracraft/storefront/internal/core/port"
	"github.com/auracraft/storefront/internal/core/service"
	"golang.org/x/sync/errgroup"
)

// GET  /                                 home
// GET  /san-pham?category=&reviews=all   catalog
// GET  /login?mode=signup                auth form
// POST /login                            submit auth form
// POST /logout                           drop session cookies
// GET  /tim-kiem?q=                      search results

// Core is what the pages need from the storefront service.
type Core interface {
	port.CatalogLoader
	port.ReviewsLoader
	port.Searcher
	port.EventRecorder
	port.AuthForms
}

type PagesHandler struct {
	core     Core
	sessions SessionStore
	renderer *Renderer
}

func RegisterPages(
	mux *http.ServeMux, core Core, sessions SessionStore,
) error {
	const op = "RegisterPages"

	renderer, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	h := PagesHandler{core, sessions, renderer}
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET "+pathCatalog, h.Catalog)
	mux.HandleFunc("GET "+pathAuth, h.AuthForm)
	mux.Handle("POST "+pathAuth, AllowForm(http.HandlerFunc(h.SubmitAuth)))
	mux.Handle("POST "+pathLogout, AllowForm(http.HandlerFunc(h.Logout)))
	mux.HandleFunc("GET "+pathSearch, h.Search)
	mux.Handle("GET /static/", StaticHandler())
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("/", h.NotFound)
	return nil
}

func (h PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.record(r, domain.ClientEvent{Kind: domain.EventPageView})
	c := newChrome(r, "Aura - Thủ công mỹ nghệ Việt")
	h.renderer.Render(w, http.StatusOK, pageHome, newHomePage(c))
}

func (h PagesHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	const op = "PagesHandler.Catalog"
	log := slog.With("op", op)

	ctx := r.Context()
	q := r.URL.Query()

	view := h.core.NewCatalogView()
	var reviews []domain.Review

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		view.Load(gctx)
		return nil
	})
	g.Go(func() error {
		reviews = h.core.LoadReviews(gctx)
		return nil
	})
	_ = g.Wait()

	active := view.Select(q.Get("category"))
	if raw := q.Get("category_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err == nil && id > 0 {
			if _, err := view.SelectRemote(ctx, id); err != nil {
				log.Warn("remote category selection failed", "id", id, "err", err)
			}
			active = view.Active()
		}
	}

	page := catalogPage{
		Chrome: newChrome(r, "Sản phẩm - Aura"),
		Active: active,
	}

	state := view.State()
	if state.Status == domain.FetchFailed {
		page.Error = loadErrorMessage(state.Err)
	} else {
		page.Cards = service.NewProductCards(view.Products())
		page.Empty = len(page.Cards) == 0
	}
	page.Categories = newCategoryLinks(view.Categories(), active)
	if !page.hasActiveLink() && !active.IsAll() {
		page.Categories = append(page.Categories, categoryLink{
			Label: active.Label, Href: categoryHref(active.Value), Active: true,
		})
	}

	panel := service.NewReviewPanel(reviews, q.Get("reviews") == "all")
	page.Reviews = newReviewsView(panel, q)

	if !active.IsAll() {
		h.record(r, domain.ClientEvent{
			Kind:     domain.EventCategorySelected,
			Category: active.Value,
		})
	} else {
		h.record(r, domain.ClientEvent{Kind: domain.EventPageView})
	}

	status := http.StatusOK
	if page.Error != "" {
		status = http.StatusBadGateway
	}
	h.renderer.Render(w, status, pageCatalog, page)
}

func (p catalogPage) hasActiveLink() bool {
	for _, c := range p.Categories {
		if c.Active {
			return true
		}
	}
	return false
}

func (h PagesHandler) AuthForm(w http.ResponseWriter, r *http.Request) {
	mode := domain.ParseAuthMode(r.URL.Query().Get("mode"))
	f := h.core.NewAuthForm(mode, domain.AuthFormData{})
	c := newChrome(r, authTitle(mode))
	h.renderer.Render(w, http.StatusOK, pageAuth, newAuthPage(c, f, "", "", ""))
}

func (h PagesHandler) SubmitAuth(w http.ResponseWriter, r *http.Request) {
	const op = "PagesHandler.SubmitAuth"
	log := slog.With("op", op)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		log.Warn("failed to parse form", "err", err)
		return
	}

	mode := domain.ParseAuthMode(r.PostForm.Get("mode"))
	f := h.core.NewAuthForm(mode, formData(r))

	out, err := f.Submit(r.Context())
	if err != nil {
		msg, field, status := submitFailure(err)
		if status == http.StatusInternalServerError {
			log.Error("failed to submit auth form", "mode", mode, "err", err)
		}
		c := newChrome(r, authTitle(f.Mode()))
		h.renderer.Render(w, status, pageAuth, newAuthPage(c, f, msg, field, ""))
		return
	}

	if mode == domain.ModeSignup {
		h.record(r, domain.ClientEvent{Kind: domain.EventSignup})
		c := newChrome(r, authTitle(f.Mode()))
		h.renderer.Render(w, http.StatusOK, pageAuth, newAuthPage(c, f, "", "", out.Notice))
		return
	}

	h.sessions.Save(w, out.Session)
	h.record(r, domain.ClientEvent{Kind: domain.EventLogin, Role: out.Session.Role})
	log.Info("signed in", "role", out.Session.Role)
	http.Redirect(w, r, out.Redirect, http.StatusSeeOther)
}

func (h PagesHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	h.record(r, domain.ClientEvent{Kind: domain.EventLogout})
	http.Redirect(w, r, pathHome, http.StatusSeeOther)
}

func (h PagesHandler) Search(w http.ResponseWriter, r *http.Request) {
	const op = "PagesHandler.Search"
	log := slog.With("op", op)

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	page := searchPage{Chrome: newChrome(r, "Tìm kiếm - Aura")}
	page.Query = query

	if query == "" {
		h.renderer.Render(w, http.StatusOK, pageSearch, page)
		return
	}

	rs, err := h.core.Search(r.Context(), query)
	page.Searched = true
	status := http.StatusOK
	if err != nil {
		log.Error("search failed", "err", err)
		page.Error = "Không thể tìm kiếm lúc này. Vui lòng thử lại sau."
		status = http.StatusBadGateway
	}
	page.Results = rs

	h.record(r, domain.ClientEvent{Kind: domain.EventSearch, Query: query})
	h.renderer.Render(w, status, pageSearch, page)
}

func (h PagesHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h PagesHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	page := errorPage{
		Chrome:  newChrome(r, "Không tìm thấy trang - Aura"),
		Status:  http.StatusNotFound,
		Message: "Trang bạn tìm không tồn tại.",
	}
	h.renderer.Render(w, http.StatusNotFound, pageError, page)
}

func (h PagesHandler) record(r *http.Request, evt domain.ClientEvent) {
	evt.Path = r.URL.Path
	if evt.Role == "" {
		if sess, ok := domain.SessionFrom(r.Context()); ok {
			evt.Role = sess.Role
		}
	}
	h.core.Record(r.Context(), evt)
}

func authTitle(m domain.AuthMode) string {
	if m == domain.ModeSignup {
		return "Đăng ký - Aura"
	}
	return "Đăng nhập - Aura"
}

func formData(r *http.Request) domain.AuthFormData {
	f := r.PostForm
	return domain.AuthFormData{
		Name:            f.Get("name"),
		Email:           f.Get("email"),
		PhoneNumber:     f.Get("phone_number"),
		Address:         f.Get("address"),
		Username:        f.Get("username"),
		Password:        f.Get("password"),
		ConfirmPassword: f.Get("confirmPassword"),
		AcceptTerms:     f.Get("terms") != "",
	}
}

// submitFailure maps a Submit error to the message, offending field and
// status of the re-rendered form.
func submitFailure(err error) (msg, field string, status int) {
	var (
		validation *domain.ValidationError
		submit     *domain.SubmitError
	)
	switch {
	case errors.As(err, &validation):
		return validation.Message, validation.Field, http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrSubmitInProgress):
		return "Đang xử lý...", "", http.StatusConflict
	case errors.As(err, &submit):
		status := http.StatusBadGateway
		var remote *domain.RemoteError
		if errors.As(err, &remote) && remote.Status < http.StatusInternalServerError {
			status = http.StatusUnprocessableEntity
		}
		return submit.Message, "", status
	default:
		return "Đã xảy ra lỗi. Vui lòng thử lại.", "", http.StatusInternalServerError
	}
}
