package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant_api/internal/middleware"
	"restaurant_api/internal/models"
	"restaurant_api/internal/repository"
	"restaurant_api/internal/services"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeMenuService enforces the same role rules as the real one so handler
// tests can cover the status mapping end to end.
type fakeMenuService struct {
	items map[uint]*models.MenuItem
}

func newFakeMenuService() *fakeMenuService {
	return &fakeMenuService{items: map[uint]*models.MenuItem{
		1: {ID: 1, Title: "Greek Salad", Price: 7.50, CategoryID: 1},
	}}
}

func (f *fakeMenuService) ListItems(filter repository.ItemFilter) ([]models.MenuItem, error) {
	var items []models.MenuItem
	for _, item := range f.items {
		items = append(items, *item)
	}
	return items, nil
}

func (f *fakeMenuService) GetItem(id uint) (*models.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return item, nil
}

func (f *fakeMenuService) CreateItem(actor *models.User, input services.MenuItemInput) (*models.MenuItem, error) {
	if actor == nil || !actor.IsSuperuser {
		return nil, services.ErrForbidden
	}
	item := &models.MenuItem{ID: uint(len(f.items) + 1), Title: input.Title, Price: input.Price, CategoryID: input.CategoryID}
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeMenuService) ToggleFeatured(actor *models.User, id uint) (*models.MenuItem, error) {
	if actor == nil || !(actor.IsSuperuser || actor.HasRole(models.RoleManager)) {
		return nil, services.ErrForbidden
	}
	item, ok := f.items[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	item.Featured = !item.Featured
	return item, nil
}

func (f *fakeMenuService) DeleteItem(actor *models.User, id uint) error {
	if actor == nil || !actor.IsSuperuser {
		return services.ErrForbidden
	}
	if _, ok := f.items[id]; !ok {
		return services.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeMenuService) ListCategories(search string) ([]models.Category, error) {
	return []models.Category{{ID: 1, Title: "Mains"}}, nil
}

func (f *fakeMenuService) CreateCategory(actor *models.User, title string) (*models.Category, error) {
	if actor == nil || !actor.IsSuperuser {
		return nil, services.ErrForbidden
	}
	return &models.Category{ID: 2, Title: title}, nil
}

type fakeAuth struct {
	users map[string]*models.User
}

func (f *fakeAuth) Register(username, email, password string) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAuth) Login(username, password string) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeAuth) Logout(token string) error { return nil }

func (f *fakeAuth) Authenticate(token string) (*models.User, error) {
	u, ok := f.users[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return u, nil
}

func newMenuRouter() *gin.Engine {
	auth := &fakeAuth{users: map[string]*models.User{
		"tok-admin": {ID: 1, Username: "admin", IsSuperuser: true},
		"tok-manager": {ID: 2, Username: "manager", Roles: []models.RoleAssignment{
			{UserID: 2, Role: models.RoleManager},
		}},
		"tok-customer": {ID: 3, Username: "customer"},
	}}
	h := NewMenuHandler(newFakeMenuService())

	r := gin.New()
	r.Use(middleware.Identity(auth))
	r.GET("/menu-items/", h.ListItems)
	r.POST("/menu-items/", middleware.RequireAuth(), h.CreateItem)
	r.GET("/menu-items/:id/", h.GetItem)
	r.PATCH("/menu-items/:id/", middleware.RequireAuth(), h.ToggleFeatured)
	r.DELETE("/menu-items/:id/", middleware.RequireAuth(), h.DeleteItem)
	return r
}

func request(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnonymousMenuAccess(t *testing.T) {
	r := newMenuRouter()

	if w := request(r, http.MethodGet, "/menu-items/", "", nil); w.Code != http.StatusOK {
		t.Errorf("anonymous list: %d, want 200", w.Code)
	}
	if w := request(r, http.MethodGet, "/menu-items/1/", "", nil); w.Code != http.StatusOK {
		t.Errorf("anonymous get: %d, want 200", w.Code)
	}

	body := map[string]interface{}{"title": "Soup", "price": 4.0, "category_id": 1}
	if w := request(r, http.MethodPost, "/menu-items/", "", body); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous create: %d, want 401", w.Code)
	}
}

func TestMenuItemCreatePermissions(t *testing.T) {
	r := newMenuRouter()
	body := map[string]interface{}{"title": "Soup", "price": 4.0, "category_id": 1}

	if w := request(r, http.MethodPost, "/menu-items/", "tok-customer", body); w.Code != http.StatusForbidden {
		t.Errorf("customer create: %d, want 403", w.Code)
	}
	if w := request(r, http.MethodPost, "/menu-items/", "tok-admin", body); w.Code != http.StatusCreated {
		t.Errorf("admin create: %d, want 201", w.Code)
	}
}

func TestToggleFeaturedEndpoint(t *testing.T) {
	r := newMenuRouter()

	if w := request(r, http.MethodPatch, "/menu-items/1/", "tok-customer", nil); w.Code != http.StatusForbidden {
		t.Errorf("customer toggle: %d, want 403", w.Code)
	}

	w := request(r, http.MethodPatch, "/menu-items/1/", "tok-manager", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("manager toggle: %d, want 200", w.Code)
	}
	var item models.MenuItem
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !item.Featured {
		t.Error("toggle did not set featured")
	}

	if w := request(r, http.MethodPatch, "/menu-items/99/", "tok-manager", nil); w.Code != http.StatusNotFound {
		t.Errorf("toggle missing item: %d, want 404", w.Code)
	}
}

func TestDeleteItemEndpoint(t *testing.T) {
	r := newMenuRouter()

	if w := request(r, http.MethodDelete, "/menu-items/1/", "tok-manager", nil); w.Code != http.StatusForbidden {
		t.Errorf("manager delete: %d, want 403", w.Code)
	}
	if w := request(r, http.MethodDelete, "/menu-items/1/", "tok-admin", nil); w.Code != http.StatusNoContent {
		t.Errorf("admin delete: %d, want 204", w.Code)
	}
	if w := request(r, http.MethodDelete, "/menu-items/1/", "tok-admin", nil); w.Code != http.StatusNotFound {
		t.Errorf("repeat delete: %d, want 404", w.Code)
	}
	if w := request(r, http.MethodDelete, "/menu-items/abc/", "tok-admin", nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad id: %d, want 400", w.Code)
	}
}
