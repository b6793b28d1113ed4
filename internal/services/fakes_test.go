package services

import (
	"fmt"
	"time"

	"restaurant_api/internal/models"
	"restaurant_api/internal/repository"

	"gorm.io/gorm"
)

// In-memory stand-ins for the gorm repositories. They reproduce the store
// behavior the services depend on: record-not-found and duplicated-key
// errors, the unique cart pair, and the all-or-nothing order placement.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) add(user *models.User) *models.User {
	if user.ID == 0 {
		user.ID = r.nextID
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	r.users[user.ID] = user
	return user
}

type roleKey struct {
	userID uint
	role   models.Role
}

type fakeRoleRepo struct {
	users       *fakeUserRepo
	assignments map[roleKey]bool
}

func newFakeRoleRepo(users *fakeUserRepo) *fakeRoleRepo {
	return &fakeRoleRepo{users: users, assignments: make(map[roleKey]bool)}
}

func (r *fakeRoleRepo) Assign(userID uint, role models.Role) error {
	r.assignments[roleKey{userID, role}] = true
	return nil
}

func (r *fakeRoleRepo) Remove(userID uint, role models.Role) error {
	key := roleKey{userID, role}
	if !r.assignments[key] {
		return gorm.ErrRecordNotFound
	}
	delete(r.assignments, key)
	return nil
}

func (r *fakeRoleRepo) HasRole(userID uint, role models.Role) (bool, error) {
	return r.assignments[roleKey{userID, role}], nil
}

func (r *fakeRoleRepo) ListMembers(role models.Role) ([]models.User, error) {
	var members []models.User
	for key := range r.assignments {
		if key.role == role {
			if u, ok := r.users.users[key.userID]; ok {
				members = append(members, *u)
			}
		}
	}
	return members, nil
}

func (r *fakeRoleRepo) GetMember(role models.Role, userID uint) (*models.User, error) {
	if !r.assignments[roleKey{userID, role}] {
		return nil, gorm.ErrRecordNotFound
	}
	u, ok := r.users.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

type fakeMenuRepo struct {
	items      map[uint]*models.MenuItem
	categories map[uint]*models.Category
	nextID     uint
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{
		items:      make(map[uint]*models.MenuItem),
		categories: make(map[uint]*models.Category),
		nextID:     1,
	}
}

func (r *fakeMenuRepo) ListItems(filter repository.ItemFilter) ([]models.MenuItem, error) {
	var items []models.MenuItem
	for _, item := range r.items {
		items = append(items, *item)
	}
	return items, nil
}

func (r *fakeMenuRepo) GetItem(id uint) (*models.MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *fakeMenuRepo) CreateItem(item *models.MenuItem) error {
	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = item
	return nil
}

func (r *fakeMenuRepo) SaveItem(item *models.MenuItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeMenuRepo) DeleteItem(id uint) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeMenuRepo) ListCategories(search string) ([]models.Category, error) {
	var categories []models.Category
	for _, c := range r.categories {
		categories = append(categories, *c)
	}
	return categories, nil
}

func (r *fakeMenuRepo) GetCategory(id uint) (*models.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeMenuRepo) CreateCategory(category *models.Category) error {
	for _, c := range r.categories {
		if c.Title == category.Title {
			return gorm.ErrDuplicatedKey
		}
	}
	category.ID = r.nextID
	r.nextID++
	r.categories[category.ID] = category
	return nil
}

func (r *fakeMenuRepo) addCategory(title string) *models.Category {
	c := &models.Category{ID: r.nextID, Title: title}
	r.nextID++
	r.categories[c.ID] = c
	return c
}

func (r *fakeMenuRepo) addItem(title string, price float64, categoryID uint) *models.MenuItem {
	item := &models.MenuItem{ID: r.nextID, Title: title, Price: price, CategoryID: categoryID}
	r.nextID++
	r.items[item.ID] = item
	return item
}

type fakeCartRepo struct {
	entries []models.CartEntry
	nextID  uint
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{nextID: 1}
}

func (r *fakeCartRepo) GetByUser(userID uint) ([]models.CartEntry, error) {
	var out []models.CartEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeCartRepo) Add(entry *models.CartEntry) error {
	for _, e := range r.entries {
		if e.UserID == entry.UserID && e.MenuItemID == entry.MenuItemID {
			return gorm.ErrDuplicatedKey
		}
	}
	entry.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeCartRepo) removeByIDs(ids []uint) {
	keep := make(map[uint]bool)
	for _, id := range ids {
		keep[id] = true
	}
	kept := r.entries[:0]
	for _, e := range r.entries {
		if !keep[e.ID] {
			kept = append(kept, e)
		}
	}
	r.entries = kept
}

func (r *fakeCartRepo) ClearUser(userID uint) error {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	return nil
}

type fakeOrderRepo struct {
	cart   *fakeCartRepo
	orders map[uint]*models.Order
	nextID uint
}

func newFakeOrderRepo(cart *fakeCartRepo) *fakeOrderRepo {
	return &fakeOrderRepo{cart: cart, orders: make(map[uint]*models.Order), nextID: 1}
}

// PlaceFromCart mirrors the real repository's contract: only the entries
// read for the build are consumed, never the whole user cart.
func (r *fakeOrderRepo) PlaceFromCart(userID uint, build func(entries []models.CartEntry) (*models.Order, []models.OrderItem, error)) (*models.Order, error) {
	entries, _ := r.cart.GetByUser(userID)
	order, items, err := build(entries)
	if err != nil {
		return nil, err
	}
	order.ID = r.nextID
	r.nextID++
	for i := range items {
		items[i].OrderID = order.ID
	}
	order.Items = items
	r.orders[order.ID] = order
	entryIDs := make([]uint, 0, len(entries))
	for _, entry := range entries {
		entryIDs = append(entryIDs, entry.ID)
	}
	r.cart.removeByIDs(entryIDs)
	return order, nil
}

func (r *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) GetAll() ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOrderRepo) GetByUserID(userID uint) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetByDeliveryCrew(crewID uint) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.DeliveryCrewID != nil && *o.DeliveryCrewID == crewID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(order *models.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) Delete(id uint) error {
	if _, ok := r.orders[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.orders, id)
	return nil
}

type fakeTokenStore struct {
	tokens map[string]uint
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]uint)}
}

func (s *fakeTokenStore) SetToken(token string, userID uint, ttl time.Duration) error {
	s.tokens[token] = userID
	return nil
}

func (s *fakeTokenStore) GetToken(token string) (uint, error) {
	id, ok := s.tokens[token]
	if !ok {
		return 0, fmt.Errorf("token not found")
	}
	return id, nil
}

func (s *fakeTokenStore) DeleteToken(token string) error {
	delete(s.tokens, token)
	return nil
}

// User fixtures.

func customerUser(id uint) *models.User {
	return &models.User{ID: id, Username: fmt.Sprintf("user%d", id), Email: fmt.Sprintf("user%d@example.com", id)}
}

func managerUser(id uint) *models.User {
	u := customerUser(id)
	u.Roles = []models.RoleAssignment{{UserID: id, Role: models.RoleManager}}
	return u
}

func crewUser(id uint) *models.User {
	u := customerUser(id)
	u.Roles = []models.RoleAssignment{{UserID: id, Role: models.RoleDeliveryCrew}}
	return u
}

func adminUser(id uint) *models.User {
	u := customerUser(id)
	u.IsSuperuser = true
	return u
}
