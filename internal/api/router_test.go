package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mercadinho/catalog-api/internal/api/handler"
	"github.com/mercadinho/catalog-api/internal/api/middleware"
	"github.com/mercadinho/catalog-api/internal/auth"
	"github.com/mercadinho/catalog-api/internal/core/domain"
	"github.com/mercadinho/catalog-api/internal/core/ports"
	"github.com/mercadinho/catalog-api/internal/core/service"
)

// --- In-memory repositories ---

type memAuthRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemAuthRepo() *memAuthRepo {
	return &memAuthRepo{users: make(map[string]*domain.User)}
}

func (r *memAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	created := *user
	created.ID = uuid.New()
	r.users[created.Username] = &created
	clone := created
	return &clone, nil
}

func (r *memAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

// memTypeProductRepo implements filter, sort and pagination the way the
// SQL repository does, so listing semantics are covered end to end.
type memTypeProductRepo struct {
	mu      sync.Mutex
	nextID  int64
	records []domain.TypeProduct
}

func (r *memTypeProductRepo) Create(_ context.Context, tp *domain.TypeProduct) (*domain.TypeProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	created := *tp
	created.ID = r.nextID
	created.CreatedAt = time.Now().UTC()
	created.UpdatedAt = created.CreatedAt
	r.records = append(r.records, created)
	return &created, nil
}

func (r *memTypeProductRepo) List(_ context.Context, filter ports.ListFilter) ([]domain.TypeProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]domain.TypeProduct, 0)
	needle := strings.ToLower(filter.NameFilter)
	for _, tp := range r.records {
		if strings.Contains(strings.ToLower(tp.Nome), needle) {
			matched = append(matched, tp)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if filter.Order == domain.OrderDesc {
			return matched[i].Nome > matched[j].Nome
		}
		return matched[i].Nome < matched[j].Nome
	})

	start := filter.Offset()
	if start >= len(matched) {
		return []domain.TypeProduct{}, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (r *memTypeProductRepo) Update(_ context.Context, tp *domain.TypeProduct) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == tp.ID {
			r.records[i].Nome = tp.Nome
			r.records[i].Codigo = tp.Codigo
			r.records[i].Ativo = tp.Ativo
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memTypeProductRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memProdutoRepo struct {
	mu      sync.Mutex
	nextID  int64
	records []domain.Produto
}

func (r *memProdutoRepo) Create(_ context.Context, p *domain.Produto) (*domain.Produto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	created := *p
	created.ID = r.nextID
	r.records = append(r.records, created)
	return &created, nil
}

func (r *memProdutoRepo) List(_ context.Context, _ ports.ListFilter) ([]domain.Produto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Produto{}, r.records...), nil
}

func (r *memProdutoRepo) Update(_ context.Context, p *domain.Produto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == p.ID {
			r.records[i] = *p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memProdutoRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// newTestServer wires the full stack of middleware, handlers and services over
// in-memory repositories, mirroring NewRouter without external dependencies.
func newTestServer() *echo.Echo {
	log := zerolog.Nop()
	codec := auth.NewCodec("test-secret", time.Hour)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	authService := service.NewAuthService(newMemAuthRepo(), codec, nil, log)
	authHandler := handler.NewAuthHandler(authService)

	catalogService := service.NewCatalogService(&memTypeProductRepo{}, &memProdutoRepo{}, log)
	typeProductHandler := handler.NewTypeProductHandler(catalogService)
	produtoHandler := handler.NewProdutoHandler(catalogService)

	authenticated := middleware.Auth(codec)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	e.POST("/type_products", typeProductHandler.Create, authenticated, adminOnly)
	e.GET("/type_products", typeProductHandler.List, authenticated)
	e.PUT("/type_products/:id", typeProductHandler.Update, authenticated, adminOnly)
	e.DELETE("/type_products/:id", typeProductHandler.Delete, authenticated, adminOnly)

	e.POST("/produto", produtoHandler.Create, authenticated, adminOnly)
	e.GET("/produto", produtoHandler.List, authenticated)
	e.PUT("/produto/:id", produtoHandler.Update, authenticated, adminOnly)
	e.DELETE("/produto/:id", produtoHandler.Delete, authenticated, adminOnly)

	return e
}

func do(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func loginAs(t *testing.T, e *echo.Echo, username, password, role string) string {
	t.Helper()
	rec := do(e, http.MethodPost, "/signup", "", fmt.Sprintf(`{"username":%q,"password":%q,"role":%q}`, username, password, role))
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup %s: expected 201, got %d: %s", username, rec.Code, rec.Body.String())
	}

	rec = do(e, http.MethodPost, "/login", "", fmt.Sprintf(`{"username":%q,"password":%q}`, username, password))
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d: %s", username, rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("login %s: empty token", username)
	}
	return resp.Token
}

func TestAPI_SignupLoginCreateFilter(t *testing.T) {
	e := newTestServer()
	token := loginAs(t, e, "alice", "p1", "Admin")

	// Token is sent raw, without a Bearer prefix.
	rec := do(e, http.MethodPost, "/type_products", token, `{"nome":"Widget","codigo":"W1","ativo":true}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created domain.TypeProduct
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created record: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected generated identity, got %+v", created)
	}

	rec = do(e, http.MethodGet, "/type_products?filter=Wid", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var listed []domain.TypeProduct
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("expected the created record in the filtered list, got %+v", listed)
	}
}

func TestAPI_NonAdminReadOnlyAccess(t *testing.T) {
	e := newTestServer()
	adminToken := loginAs(t, e, "alice", "p1", "admin")
	userToken := loginAs(t, e, "bob", "p2", "user")

	rec := do(e, http.MethodPost, "/type_products", adminToken, `{"nome":"Widget","codigo":"W1","ativo":true}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("admin create: expected 201, got %d", rec.Code)
	}

	// Every write endpoint must reject the non-admin token.
	writes := []struct{ method, path, body string }{
		{http.MethodPost, "/type_products", `{"nome":"X","codigo":"C","ativo":true}`},
		{http.MethodPut, "/type_products/1", `{"nome":"X","codigo":"C","ativo":true}`},
		{http.MethodDelete, "/type_products/1", ""},
		{http.MethodPost, "/produto", `{"nome":"X","tipo_produto":1,"ativo":true}`},
		{http.MethodPut, "/produto/1", `{"nome":"X","tipo_produto":1,"ativo":true}`},
		{http.MethodDelete, "/produto/1", ""},
	}
	for _, w := range writes {
		if rec := do(e, w.method, w.path, userToken, w.body); rec.Code != http.StatusForbidden {
			t.Fatalf("%s %s: expected 403 for non-admin, got %d", w.method, w.path, rec.Code)
		}
	}

	// Reads are open to any valid token.
	if rec := do(e, http.MethodGet, "/type_products", userToken, ""); rec.Code != http.StatusOK {
		t.Fatalf("user read: expected 200, got %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/produto", userToken, ""); rec.Code != http.StatusOK {
		t.Fatalf("user read: expected 200, got %d", rec.Code)
	}

	// No token at all is unauthorized.
	if rec := do(e, http.MethodGet, "/type_products", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", rec.Code)
	}
}

func TestAPI_ListPagination(t *testing.T) {
	e := newTestServer()
	token := loginAs(t, e, "alice", "p1", "admin")

	// Zero-padded names so lexicographic order matches numeric order.
	for i := 1; i <= 25; i++ {
		body := fmt.Sprintf(`{"nome":"Item-%02d","codigo":"C%02d","ativo":true}`, i, i)
		if rec := do(e, http.MethodPost, "/type_products", token, body); rec.Code != http.StatusCreated {
			t.Fatalf("seed %d: expected 201, got %d", i, rec.Code)
		}
	}

	rec := do(e, http.MethodGet, "/type_products?page=2&limit=10", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var page []domain.TypeProduct
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if len(page) != 10 {
		t.Fatalf("expected 10 records on page 2, got %d", len(page))
	}
	if page[0].Nome != "Item-11" || page[9].Nome != "Item-20" {
		t.Fatalf("expected records 11-20, got %s..%s", page[0].Nome, page[9].Nome)
	}

	// Out-of-range page returns an empty sequence, not an error.
	rec = do(e, http.MethodGet, "/type_products?page=9&limit=10", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for out-of-range page, got %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if len(page) != 0 {
		t.Fatalf("expected empty page, got %d records", len(page))
	}
}

func TestAPI_UpdateDeleteLifecycle(t *testing.T) {
	e := newTestServer()
	token := loginAs(t, e, "alice", "p1", "admin")

	rec := do(e, http.MethodPost, "/type_products", token, `{"nome":"Widget","codigo":"W1","ativo":true}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", rec.Code)
	}
	var created domain.TypeProduct
	_ = json.Unmarshal(rec.Body.Bytes(), &created)

	path := fmt.Sprintf("/type_products/%d", created.ID)
	rec = do(e, http.MethodPut, path, token, `{"nome":"Widget v2","codigo":"W2","ativo":false}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(e, http.MethodDelete, path, token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}

	// Second delete: record no longer exists.
	rec = do(e, http.MethodDelete, path, token, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("delete missing: expected 404, got %d", rec.Code)
	}
}

func TestAPI_DuplicateSignup(t *testing.T) {
	e := newTestServer()
	_ = loginAs(t, e, "alice", "p1", "admin")

	rec := do(e, http.MethodPost, "/signup", "", `{"username":"alice","password":"other"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate username, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAPI_ExpiredTokenRejected(t *testing.T) {
	e := newTestServer()

	// Token signed with the right secret but already expired.
	expiredCodec := auth.NewCodec("test-secret", time.Nanosecond)
	token, err := expiredCodec.Issue(uuid.New(), "alice", "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	rec := do(e, http.MethodGet, "/type_products", token, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", rec.Code)
	}
}
