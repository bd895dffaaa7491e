package httphandler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/auracraft/storefront/internal/adapter/httphandler"
	"github.com/auracraft/storefront/internal/core/domain"
	"github.com/auracraft/storefront/internal/core/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu sync.Mutex

	products    []domain.Product
	productsErr error
	byCategory  map[int][]domain.Product
	reviews     []domain.Review
	reviewsErr  error
	session     domain.Session
	loginErr    error
	signupErr   error
	results     []domain.SearchResult

	logins  []domain.Credentials
	signups []domain.Registration
	queries []string
}

func (f *fakeAPI) FetchProducts(context.Context) ([]domain.Product, error) {
	return f.products, f.productsErr
}

func (f *fakeAPI) FetchProductsByCategory(
	_ context.Context, id int,
) ([]domain.Product, error) {
	return f.byCategory[id], nil
}

func (f *fakeAPI) FetchReviews(context.Context) ([]domain.Review, error) {
	return f.reviews, f.reviewsErr
}

func (f *fakeAPI) Login(
	_ context.Context, c domain.Credentials,
) (domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins = append(f.logins, c)
	return f.session, f.loginErr
}

func (f *fakeAPI) Signup(_ context.Context, r domain.Registration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signups = append(f.signups, r)
	return f.signupErr
}

func (f *fakeAPI) SearchProducts(
	_ context.Context, q string, _ int,
) ([]domain.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	return f.results, nil
}

type fakeEvents struct {
	mu     sync.Mutex
	events []domain.ClientEvent
}

func (f *fakeEvents) ProduceEvent(_ context.Context, e domain.ClientEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
	return nil
}

func (f *fakeEvents) Close() {}

func (f *fakeEvents) kinds() []domain.ClientEventKind {
	f.mu.Lock()
	defer f.mu.Unlock()
	ks := make([]domain.ClientEventKind, len(f.events))
	for i, e := range f.events {
		ks[i] = e.Kind
	}
	return ks
}

func newTestHandler(t *testing.T, api *fakeAPI) (http.Handler, *fakeEvents) {
	t.Helper()
	events := new(fakeEvents)
	core := service.New(api, api, api, api, api, events)
	store := httphandler.NewSessionStore(false)

	mux := http.NewServeMux()
	require.NoError(t, httphandler.RegisterPages(mux, core, store))
	return httphandler.Chain(mux, httphandler.WithSession(store)), events
}

func serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func postForm(target string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func cookieByName(res *http.Response, name string) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func bagProduct() domain.Product {
	return domain.Product{
		ID:           1,
		Name:         "Túi cói",
		Description:  "Túi cói đan tay",
		CategoryName: "Túi xách",
		Variants:     []domain.Variant{{Price: 100000}},
	}
}

func TestHome(t *testing.T) {
	h, events := newTestHandler(t, &fakeAPI{})

	w := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Hành trình của chúng tôi")
	assert.Contains(t, body, "Lifestyle Fair 2025")
	assert.Contains(t, body, "1985")
	assert.Contains(t, body, "2025")
	assert.Contains(t, body, `href="/login"`)
	assert.Equal(t, []domain.ClientEventKind{domain.EventPageView}, events.kinds())
}

func TestCatalog(t *testing.T) {
	t.Run("AllCategory", func(t *testing.T) {
		h, _ := newTestHandler(t, &fakeAPI{products: []domain.Product{bagProduct()}})

		w := serve(h, httptest.NewRequest(http.MethodGet, "/san-pham", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "100.000 ₫")
		assert.Contains(t, body, "Tất cả sản phẩm")
		assert.Contains(t, body, "Túi xách")
		assert.Equal(t, 1, strings.Count(body, `class="product-item"`))
	})

	t.Run("CategoryWithoutProducts", func(t *testing.T) {
		h, events := newTestHandler(t, &fakeAPI{products: []domain.Product{bagProduct()}})

		target := "/san-pham?" + url.Values{"category": {"Nội thất"}}.Encode()
		w := serve(h, httptest.NewRequest(http.MethodGet, target, nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Zero(t, strings.Count(body, `class="product-item"`))
		assert.Contains(t, body, "Không có sản phẩm nào trong danh mục này.")
		assert.Contains(t, events.kinds(), domain.EventCategorySelected)
	})

	t.Run("OutOfStock", func(t *testing.T) {
		p := bagProduct()
		p.Status = "Out of stock"
		h, _ := newTestHandler(t, &fakeAPI{products: []domain.Product{p}})

		w := serve(h, httptest.NewRequest(http.MethodGet, "/san-pham", nil))

		assert.Contains(t, w.Body.String(), "Hết hàng")
	})

	t.Run("RemoteCategory", func(t *testing.T) {
		p := bagProduct()
		p.Name = "Thảm lục bình"
		h, _ := newTestHandler(t, &fakeAPI{
			products:   []domain.Product{bagProduct()},
			byCategory: map[int][]domain.Product{3: {p}},
		})

		w := serve(h, httptest.NewRequest(http.MethodGet, "/san-pham?category_id=3", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Thảm lục bình")
		assert.NotContains(t, w.Body.String(), "Túi cói")
	})

	t.Run("LoadFailure", func(t *testing.T) {
		h, _ := newTestHandler(t, &fakeAPI{
			products:    []domain.Product{bagProduct()},
			productsErr: &domain.RemoteError{Status: http.StatusInternalServerError},
		})

		w := serve(h, httptest.NewRequest(http.MethodGet, "/san-pham", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `role="alert"`)
		assert.NotContains(t, body, "100.000 ₫")
	})

	t.Run("ReviewsFailureKeepsPage", func(t *testing.T) {
		h, _ := newTestHandler(t, &fakeAPI{
			products:   []domain.Product{bagProduct()},
			reviewsErr: errors.New("boom"),
		})

		w := serve(h, httptest.NewRequest(http.MethodGet, "/san-pham", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Chưa có đánh giá nào.")
		assert.Contains(t, w.Body.String(), "100.000 ₫")
	})
}

func TestCatalogReviews(t *testing.T) {
	reviews := make([]domain.Review, 5)
	for i := range reviews {
		reviews[i] = domain.Review{
			ID:           i + 1,
			ProductName:  "Bình gốm",
			CustomerName: "Khách " + string(rune('A'+i)),
			Content:      "Rất đẹp",
			Rating:       float64(4),
			Date:         "2025-03-14",
		}
	}
	h, _ := newTestHandler(t, &fakeAPI{reviews: reviews})

	t.Run("Collapsed", func(t *testing.T) {
		w := serve(h, httptest.NewRequest(http.MethodGet, "/san-pham", nil))
		body := w.Body.String()
		assert.Equal(t, 3, strings.Count(body, `class="review-card"`))
		assert.Contains(t, body, "Xem tất cả")
		assert.Contains(t, body, "★★★★<")
		assert.Contains(t, body, "14/03/2025")
	})

	t.Run("Expanded", func(t *testing.T) {
		w := serve(h, httptest.NewRequest(http.MethodGet, "/san-pham?reviews=all", nil))
		body := w.Body.String()
		assert.Equal(t, 5, strings.Count(body, `class="review-card"`))
		assert.Contains(t, body, "Thu gọn")
	})
}

func TestAuthForm(t *testing.T) {
	t.Run("LoginMode", func(t *testing.T) {
		h, _ := newTestHandler(t, &fakeAPI{})
		w := serve(h, httptest.NewRequest(http.MethodGet, "/login", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `name="mode" value="login"`)
		assert.NotContains(t, body, `name="confirmPassword"`)
	})

	t.Run("SignupMode", func(t *testing.T) {
		h, _ := newTestHandler(t, &fakeAPI{})
		w := serve(h, httptest.NewRequest(http.MethodGet, "/login?mode=signup", nil))

		body := w.Body.String()
		assert.Contains(t, body, `name="mode" value="signup"`)
		assert.Contains(t, body, `name="confirmPassword"`)
		assert.Contains(t, body, "Bắt đầu hành trình mới")
	})
}

func TestSubmitLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		api := &fakeAPI{session: domain.Session{Token: "tok-123", Role: "customer"}}
		h, events := newTestHandler(t, api)

		w := serve(h, postForm("/login", url.Values{
			"mode": {"login"}, "username": {"an"}, "password": {"secret"},
		}))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		res := w.Result()
		token := cookieByName(res, "authToken")
		role := cookieByName(res, "userRole")
		require.NotNil(t, token)
		require.NotNil(t, role)
		assert.Equal(t, "tok-123", token.Value)
		assert.Equal(t, "customer", role.Value)
		assert.True(t, token.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, token.SameSite)

		require.Len(t, api.logins, 1)
		assert.Equal(t, "customer", api.logins[0].Role)
		assert.Contains(t, events.kinds(), domain.EventLogin)
	})

	t.Run("BackendMessage", func(t *testing.T) {
		api := &fakeAPI{loginErr: &domain.RemoteError{
			Status: http.StatusUnauthorized, Detail: "Sai tên đăng nhập hoặc mật khẩu",
		}}
		h, _ := newTestHandler(t, api)

		w := serve(h, postForm("/login", url.Values{
			"mode": {"login"}, "username": {"an"}, "password": {"wrong"},
		}))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Sai tên đăng nhập hoặc mật khẩu")
		assert.Contains(t, body, `value="an"`)
		assert.NotContains(t, body, "wrong")
		assert.Nil(t, cookieByName(w.Result(), "authToken"))
	})

	t.Run("Fallback", func(t *testing.T) {
		api := &fakeAPI{loginErr: &domain.RemoteError{Status: http.StatusUnauthorized}}
		h, _ := newTestHandler(t, api)

		w := serve(h, postForm("/login", url.Values{
			"mode": {"login"}, "username": {"an"}, "password": {"wrong"},
		}))

		assert.Contains(t, w.Body.String(), "Đăng nhập thất bại")
	})

	t.Run("WrongMediaType", func(t *testing.T) {
		h, _ := newTestHandler(t, &fakeAPI{})
		r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"an"}`))
		r.Header.Set("Content-Type", "application/json")

		w := serve(h, r)
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})
}

func TestSubmitSignup(t *testing.T) {
	form := func() url.Values {
		return url.Values{
			"mode":            {"signup"},
			"name":            {"Nguyễn An"},
			"email":           {"an@example.com"},
			"phone_number":    {"0912345678"},
			"address":         {"Hà Nội"},
			"username":        {"an"},
			"password":        {"secret"},
			"confirmPassword": {"secret"},
			"terms":           {"on"},
		}
	}

	t.Run("PasswordMismatch", func(t *testing.T) {
		api := &fakeAPI{}
		h, _ := newTestHandler(t, api)

		f := form()
		f.Set("confirmPassword", "other")
		w := serve(h, postForm("/login", f))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Mật khẩu xác nhận không khớp!")
		assert.Empty(t, api.signups)
	})

	t.Run("TermsNotAccepted", func(t *testing.T) {
		api := &fakeAPI{}
		h, _ := newTestHandler(t, api)

		f := form()
		f.Del("terms")
		w := serve(h, postForm("/login", f))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Vui lòng đồng ý với Điều khoản và Chính sách để tiếp tục!")
		assert.Empty(t, api.signups)
	})

	t.Run("Success", func(t *testing.T) {
		api := &fakeAPI{}
		h, events := newTestHandler(t, api)

		w := serve(h, postForm("/login", form()))

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Đăng ký thành công! Vui lòng đăng nhập.")
		assert.Contains(t, body, `name="mode" value="login"`)
		assert.NotContains(t, body, "secret")
		require.Len(t, api.signups, 1)
		assert.Equal(t, "0912345678", api.signups[0].PhoneNumber)
		assert.Nil(t, cookieByName(w.Result(), "authToken"))
		assert.Contains(t, events.kinds(), domain.EventSignup)
	})

	t.Run("BackendFailure", func(t *testing.T) {
		api := &fakeAPI{signupErr: &domain.RemoteError{
			Status: http.StatusBadRequest, Detail: "Username already registered",
		}}
		h, _ := newTestHandler(t, api)

		w := serve(h, postForm("/login", form()))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Username already registered")
		assert.Contains(t, body, `name="mode" value="signup"`)
	})
}

func TestLogout(t *testing.T) {
	h, events := newTestHandler(t, &fakeAPI{})

	r := postForm("/logout", url.Values{})
	r.AddCookie(&http.Cookie{Name: "authToken", Value: "tok"})
	w := serve(h, r)

	require.Equal(t, http.StatusSeeOther, w.Code)
	res := w.Result()
	for _, name := range []string{"authToken", "userRole"} {
		c := cookieByName(res, name)
		require.NotNil(t, c, name)
		assert.Empty(t, c.Value)
		assert.Negative(t, c.MaxAge)
	}
	assert.Contains(t, events.kinds(), domain.EventLogout)
}

func TestSessionChrome(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "7",
		"name": "Trần Lan",
	}).SignedString([]byte("any-key"))
	require.NoError(t, err)

	h, _ := newTestHandler(t, &fakeAPI{})

	t.Run("SignedIn", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "authToken", Value: token})
		r.AddCookie(&http.Cookie{Name: "userRole", Value: "customer"})

		body := serve(h, r).Body.String()
		assert.Contains(t, body, "Trần Lan")
		assert.Contains(t, body, "Đăng xuất")
	})

	t.Run("OpaqueToken", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "authToken", Value: "not-a-jwt"})

		body := serve(h, r).Body.String()
		assert.Contains(t, body, "Tài khoản")
		assert.Contains(t, body, "Đăng xuất")
	})

	t.Run("Anonymous", func(t *testing.T) {
		body := serve(h, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()
		assert.NotContains(t, body, "Đăng xuất")
	})
}

func TestSearch(t *testing.T) {
	api := &fakeAPI{results: []domain.SearchResult{
		{ProductID: 4, Name: "Bình gốm men lam", CategoryName: "Trang trí"},
	}}
	h, events := newTestHandler(t, api)

	t.Run("WithQuery", func(t *testing.T) {
		w := serve(h, httptest.NewRequest(http.MethodGet, "/tim-kiem?q=g%E1%BB%91m", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Bình gốm men lam")
		assert.Equal(t, []string{"gốm"}, api.queries)
		assert.Contains(t, events.kinds(), domain.EventSearch)
	})

	t.Run("EmptyQuery", func(t *testing.T) {
		w := serve(h, httptest.NewRequest(http.MethodGet, "/tim-kiem?q=+", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Nhập từ khóa để tìm sản phẩm.")
		assert.Len(t, api.queries, 1)
	})
}

func TestMisc(t *testing.T) {
	h, _ := newTestHandler(t, &fakeAPI{})

	t.Run("Healthz", func(t *testing.T) {
		w := serve(h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		w := serve(h, httptest.NewRequest(http.MethodGet, "/khong-ton-tai", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Trang bạn tìm không tồn tại.")
	})

	t.Run("Placeholder", func(t *testing.T) {
		w := serve(h, httptest.NewRequest(http.MethodGet, "/static/img/placeholder.svg", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<svg")
	})
}
