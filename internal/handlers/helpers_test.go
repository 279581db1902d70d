package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/rrparlour/parlour-booking/internal/db"
	infraRepo "github.com/rrparlour/parlour-booking/internal/infra/repository"
	"github.com/rrparlour/parlour-booking/internal/middleware"
	"github.com/rrparlour/parlour-booking/internal/search"
	"github.com/rrparlour/parlour-booking/internal/session"
	"github.com/rrparlour/parlour-booking/internal/storage"
	ucbooking "github.com/rrparlour/parlour-booking/internal/usecase/booking"
)

// memStore is an in-process stand-in for the redis session store.
type memStore struct {
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (m *memStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *memStore) Get(_ context.Context, key string) (string, error) {
	value, ok := m.data[key]
	if !ok {
		return "", session.ErrNoSession
	}
	return value, nil
}

func (m *memStore) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

// testEnv wires the handlers against an in-memory database and session
// store, mirroring the production route table for the form routes.
type testEnv struct {
	db       *gorm.DB
	router   *gin.Engine
	sessions *session.Manager
}

func newTestEnv(t *testing.T, searchClient *search.Client) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := dbpkg.Init(gdb); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}

	mgr, err := session.NewManager(newMemStore(), "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("failed to build session manager: %v", err)
	}

	logg := zerolog.New(io.Discard)
	store, err := storage.NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to build local store: %v", err)
	}

	bookingRepo := infraRepo.NewBookingGormRepository(gdb)
	createBookingUC := ucbooking.NewCreateBooking(bookingRepo)
	decideBookingUC := ucbooking.NewDecideBooking(bookingRepo)

	authHandler := NewAuthHandler(gdb, mgr)
	customerHandler := NewCustomerHandler(gdb, store, createBookingUC, searchClient.Available())
	ownerHandler := NewOwnerHandler(gdb, store, decideBookingUC, logg)
	adminHandler := NewAdminHandler(gdb)
	searchHandler := NewSearchHandler(searchClient, logg)

	r := gin.New()
	r.Use(middleware.Sessions(mgr, logg))

	r.POST("/register/customer", authHandler.RegisterCustomer)
	r.POST("/register/owner", authHandler.RegisterOwner)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	customer := r.Group("/customer")
	customer.Use(middleware.RequireRole(middleware.RoleCustomer))
	{
		customer.POST("/update_profile", customerHandler.UpdateProfile)
		customer.POST("/book", customerHandler.Book)
	}

	api := r.Group("/api")
	api.Use(middleware.RequireRole(middleware.RoleCustomer))
	{
		api.GET("/search_images", searchHandler.SearchImages)
	}

	owner := r.Group("/owner")
	owner.Use(middleware.RequireRole(middleware.RoleOwner))
	{
		owner.POST("/add_hairstyle", ownerHandler.AddHairstyle)
		owner.POST("/booking_action", ownerHandler.BookingAction)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.RequireRole(middleware.RoleAdmin))
	{
		admin.POST("/update_profile", adminHandler.UpdateProfile)
		admin.POST("/owner_status", adminHandler.OwnerStatus)
		admin.POST("/tagline", adminHandler.Tagline)
	}

	return &testEnv{db: gdb, router: r, sessions: mgr}
}

func idleSearchClient(t *testing.T) *search.Client {
	t.Helper()
	// Routes under test must never reach the provider; a non-routable base
	// URL makes an accidental call fail loudly.
	return search.NewClient("key", "cx", search.WithBaseURL("http://127.0.0.1:0"))
}

// sessionFor issues a session carrying the given identity and returns the
// cookie token to send with requests.
func sessionFor(t *testing.T, mgr *session.Manager, role string, userID uint) string {
	t.Helper()
	ctx := context.Background()
	token, sid, st, err := mgr.Issue(ctx)
	if err != nil {
		t.Fatalf("failed to issue session: %v", err)
	}
	if role != "" {
		st.SetIdentity(role, userID)
		if err := mgr.Save(ctx, sid, st); err != nil {
			t.Fatalf("failed to save session: %v", err)
		}
	}
	return token
}

func postForm(t *testing.T, r *gin.Engine, path, token string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// issuedToken pulls the session cookie the middleware set on a response.
func issuedToken(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	resp := w.Result()
	defer resp.Body.Close()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == session.CookieName {
			return cookie.Value
		}
	}
	t.Fatalf("response carried no session cookie")
	return ""
}

// stateFor resolves a cookie token back to the stored session state.
func stateFor(t *testing.T, mgr *session.Manager, token string) *session.State {
	t.Helper()
	_, st, err := mgr.Load(context.Background(), token)
	if err != nil {
		t.Fatalf("failed to load session: %v", err)
	}
	return st
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}

func assertFlash(t *testing.T, st *session.State, message, category string) {
	t.Helper()
	for _, flash := range st.Flashes {
		if flash.Message == message && flash.Category == category {
			return
		}
	}
	t.Fatalf("flash %q (%s) not queued; have %+v", message, category, st.Flashes)
}
