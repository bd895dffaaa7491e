package httphandler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/auracraft/storefront/internal/core/domain"
	"github.com/auracraft/storefront/internal/core/service"
)

const (
	pathHome    = "/"
	pathCatalog = "/san-pham"
	pathAuth    = "/login"
	pathLogout  = "/logout"
	pathSearch  = "/tim-kiem"
)

type navLink struct {
	Label  string
	Href   string
	Active bool
}

// Chrome is the navbar and footer state shared by every page.
type Chrome struct {
	Title    string
	Nav      []navLink
	SignedIn bool
	User     domain.SessionUser
	Query    string
}

func newChrome(r *http.Request, title string) Chrome {
	c := Chrome{Title: title}
	if sess, ok := domain.SessionFrom(r.Context()); ok {
		c.User, c.SignedIn = SessionUserOf(sess)
	}
	c.Nav = []navLink{
		{Label: "TRANG CHỦ", Href: pathHome},
		{Label: "SẢN PHẨM", Href: pathCatalog},
		{Label: "VỀ CHÚNG TÔI", Href: "/#hanh-trinh"},
		{Label: "BLOG", Href: "/#blog"},
		{Label: "LIÊN HỆ", Href: "/#lien-he"},
	}
	for i := range c.Nav {
		c.Nav[i].Active = c.Nav[i].Href == r.URL.Path
	}
	return c
}

type (
	categoryLink struct {
		Label  string
		Href   string
		Active bool
	}

	reviewCard struct {
		ProductName  string
		CustomerName string
		Content      string
		Rating       any
		Date         string
	}

	reviewsView struct {
		Cards      []reviewCard
		Total      int
		HasToggle  bool
		Expanded   bool
		ToggleHref string
	}

	catalogPage struct {
		Chrome
		Categories []categoryLink
		Active     domain.Category
		Error      string
		Cards      []service.ProductCard
		Empty      bool
		Reviews    reviewsView
	}
)

func categoryHref(value string) string {
	if value == "" || value == domain.AllCategoryID {
		return pathCatalog
	}
	return pathCatalog + "?" + url.Values{"category": {value}}.Encode()
}

func newCategoryLinks(
	cs []domain.Category, active domain.Category,
) []categoryLink {
	links := make([]categoryLink, len(cs))
	for i, c := range cs {
		links[i] = categoryLink{
			Label:  c.Label,
			Href:   categoryHref(c.Value),
			Active: c.Value == active.Value,
		}
	}
	return links
}

func newReviewsView(p *service.ReviewPanel, q url.Values) reviewsView {
	visible := p.Visible()
	cards := make([]reviewCard, len(visible))
	for i, r := range visible {
		cards[i] = reviewCard{
			ProductName:  r.ProductName,
			CustomerName: r.CustomerName,
			Content:      r.Content,
			Rating:       r.Rating,
			Date:         r.Date,
		}
	}

	toggle := url.Values{}
	for k, vs := range q {
		if k != "reviews" {
			toggle[k] = vs
		}
	}
	if !p.Expanded() {
		toggle.Set("reviews", "all")
	}
	href := pathCatalog
	if enc := toggle.Encode(); enc != "" {
		href += "?" + enc
	}

	return reviewsView{
		Cards:      cards,
		Total:      p.Total(),
		HasToggle:  p.HasToggle(),
		Expanded:   p.Expanded(),
		ToggleHref: href + "#danh-gia",
	}
}

// loadErrorMessage is the banner shown when the catalog fetch fails.
func loadErrorMessage(err error) string {
	var remote *domain.RemoteError
	switch {
	case errors.As(err, &remote):
		return "Không thể tải sản phẩm: máy chủ trả về lỗi " + http.StatusText(remote.Status) + "."
	case errors.Is(err, domain.ErrMalformedResponse):
		return "Không thể tải sản phẩm: dữ liệu trả về không hợp lệ."
	case errors.Is(err, domain.ErrUnavailable):
		return "Không thể kết nối tới máy chủ. Vui lòng tải lại trang."
	default:
		return "Đã xảy ra lỗi khi tải sản phẩm."
	}
}

type authPage struct {
	Chrome
	Signup     bool
	Mode       string
	ToggleHref string
	Form       domain.AuthFormData
	Error      string
	ErrorField string
	Notice     string
	Submitting bool
}

func newAuthPage(c Chrome, f authFormView, errMsg, errField, notice string) authPage {
	mode := f.Mode()
	toggle := pathAuth + "?mode=signup"
	if mode == domain.ModeSignup {
		toggle = pathAuth
	}

	// passwords are never echoed back into the page
	data := f.Data()
	data.Password = ""
	data.ConfirmPassword = ""

	return authPage{
		Chrome:     c,
		Signup:     mode == domain.ModeSignup,
		Mode:       mode.String(),
		ToggleHref: toggle,
		Form:       data,
		Error:      errMsg,
		ErrorField: errField,
		Notice:     notice,
		Submitting: f.Submitting(),
	}
}

type authFormView interface {
	Mode() domain.AuthMode
	Data() domain.AuthFormData
	Submitting() bool
}

type searchPage struct {
	Chrome
	Results  []domain.SearchResult
	Error    string
	Searched bool
}

type errorPage struct {
	Chrome
	Status  int
	Message string
}
