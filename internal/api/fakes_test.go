package api

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/andreluoliveira82/car-api/internal/domain"
	"github.com/andreluoliveira82/car-api/internal/store"
)

// In-memory store fakes. They reproduce the contracts the handlers rely on:
// sentinel errors, pre-pagination totals and exclude-self existence checks.

type fakeUserStore struct {
	mu     sync.Mutex
	users  map[int64]*domain.User
	nextID int64

	// ownsCars marks users whose deletion must fail with ErrReferenced.
	ownsCars map[int64]bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:    make(map[int64]*domain.User),
		ownsCars: make(map[int64]bool),
	}
}

var _ store.UserStore = (*fakeUserStore)(nil)

func (f *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Username == user.Username {
			return store.ErrUsernameExists
		}
		if u.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (f *fakeUserStore) List(_ context.Context, params store.UserListParams) ([]domain.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []domain.User
	for _, u := range f.users {
		if params.Search != "" {
			needle := strings.ToLower(params.Search)
			if !strings.Contains(strings.ToLower(u.Username), needle) &&
				!strings.Contains(strings.ToLower(u.FullName), needle) &&
				!strings.Contains(strings.ToLower(u.Email), needle) {
				continue
			}
		}
		matched = append(matched, *u)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	matched = paginate(matched, params.Offset, params.Limit)
	return matched, total, nil
}

func (f *fakeUserStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserStore) ExistsByUsername(_ context.Context, username string, excludeID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.ID != excludeID && u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) ExistsByEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.ID != excludeID && u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) ExistsAdmin(_ context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Role == domain.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) Update(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[user.ID]; !ok {
		return store.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[id]; !ok {
		return store.ErrUserNotFound
	}
	if f.ownsCars[id] {
		return store.ErrReferenced
	}
	delete(f.users, id)
	return nil
}

type fakeBrandStore struct {
	mu     sync.Mutex
	brands map[int64]*domain.Brand
	nextID int64

	// hasCars marks brands whose deletion must be blocked.
	hasCars map[int64]bool
}

func newFakeBrandStore() *fakeBrandStore {
	return &fakeBrandStore{
		brands:  make(map[int64]*domain.Brand),
		hasCars: make(map[int64]bool),
	}
}

var _ store.BrandStore = (*fakeBrandStore)(nil)

func (f *fakeBrandStore) Create(_ context.Context, brand *domain.Brand) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, b := range f.brands {
		if b.Name == brand.Name {
			return store.ErrBrandNameExists
		}
	}

	f.nextID++
	brand.ID = f.nextID
	brand.CreatedAt = time.Now()
	brand.UpdatedAt = brand.CreatedAt
	cp := *brand
	f.brands[brand.ID] = &cp
	return nil
}

func (f *fakeBrandStore) GetByID(_ context.Context, id int64) (*domain.Brand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.brands[id]
	if !ok {
		return nil, store.ErrBrandNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBrandStore) List(_ context.Context, params store.BrandListParams) ([]domain.Brand, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []domain.Brand
	for _, b := range f.brands {
		if params.Search != "" &&
			!strings.Contains(strings.ToLower(b.Name), strings.ToLower(params.Search)) {
			continue
		}
		if params.IsActive != nil && b.IsActive != *params.IsActive {
			continue
		}
		matched = append(matched, *b)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	matched = paginate(matched, params.Offset, params.Limit)
	return matched, total, nil
}

func (f *fakeBrandStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.brands[id]
	return ok, nil
}

func (f *fakeBrandStore) ExistsByName(_ context.Context, name string, excludeID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, b := range f.brands {
		if b.ID != excludeID && b.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBrandStore) HasCars(_ context.Context, brandID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.hasCars[brandID], nil
}

func (f *fakeBrandStore) Update(_ context.Context, brand *domain.Brand) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.brands[brand.ID]; !ok {
		return store.ErrBrandNotFound
	}
	brand.UpdatedAt = time.Now()
	cp := *brand
	f.brands[brand.ID] = &cp
	return nil
}

func (f *fakeBrandStore) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.brands[id]; !ok {
		return store.ErrBrandNotFound
	}
	if f.hasCars[id] {
		return store.ErrReferenced
	}
	delete(f.brands, id)
	return nil
}

type fakeCarStore struct {
	mu     sync.Mutex
	cars   map[int64]*domain.Car
	nextID int64

	users  *fakeUserStore
	brands *fakeBrandStore
}

func newFakeCarStore(users *fakeUserStore, brands *fakeBrandStore) *fakeCarStore {
	return &fakeCarStore{
		cars:   make(map[int64]*domain.Car),
		users:  users,
		brands: brands,
	}
}

var _ store.CarStore = (*fakeCarStore)(nil)

func (f *fakeCarStore) Create(_ context.Context, car *domain.Car) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.cars {
		if c.Plate == car.Plate {
			return store.ErrPlateExists
		}
	}

	f.nextID++
	car.ID = f.nextID
	car.CreatedAt = time.Now()
	car.UpdatedAt = car.CreatedAt
	cp := *car
	f.cars[car.ID] = &cp

	f.brands.mu.Lock()
	f.brands.hasCars[car.BrandID] = true
	f.brands.mu.Unlock()
	f.users.mu.Lock()
	f.users.ownsCars[car.OwnerID] = true
	f.users.mu.Unlock()
	return nil
}

func (f *fakeCarStore) GetByID(ctx context.Context, id int64) (*domain.CarDetail, error) {
	f.mu.Lock()
	c, ok := f.cars[id]
	if !ok {
		f.mu.Unlock()
		return nil, store.ErrCarNotFound
	}
	cp := *c
	f.mu.Unlock()

	return f.detail(ctx, cp)
}

func (f *fakeCarStore) detail(ctx context.Context, car domain.Car) (*domain.CarDetail, error) {
	brand, err := f.brands.GetByID(ctx, car.BrandID)
	if err != nil {
		return nil, err
	}
	owner, err := f.users.GetByID(ctx, car.OwnerID)
	if err != nil {
		return nil, err
	}
	return &domain.CarDetail{Car: car, Brand: *brand, Owner: *owner}, nil
}

func (f *fakeCarStore) List(ctx context.Context, params store.CarListParams) ([]domain.CarDetail, int64, error) {
	f.mu.Lock()
	var matched []domain.Car
	for _, c := range f.cars {
		if !carMatches(c, params) {
			continue
		}
		matched = append(matched, *c)
	}
	f.mu.Unlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	matched = paginate(matched, params.Offset, params.Limit)

	details := make([]domain.CarDetail, 0, len(matched))
	for _, c := range matched {
		d, err := f.detail(ctx, c)
		if err != nil {
			return nil, 0, err
		}
		details = append(details, *d)
	}
	return details, total, nil
}

func carMatches(c *domain.Car, params store.CarListParams) bool {
	if params.Search != "" {
		needle := strings.ToLower(params.Search)
		if !strings.Contains(strings.ToLower(c.Model), needle) &&
			!strings.Contains(strings.ToLower(string(c.Color)), needle) &&
			!strings.Contains(strings.ToLower(c.Plate), needle) {
			return false
		}
	}
	if params.CarType != "" && c.CarType != params.CarType {
		return false
	}
	if params.Color != "" && c.Color != params.Color {
		return false
	}
	if params.FuelType != "" && c.FuelType != params.FuelType {
		return false
	}
	if params.Transmission != "" && c.Transmission != params.Transmission {
		return false
	}
	if params.Condition != "" && c.Condition != params.Condition {
		return false
	}
	if params.Status != "" && c.Status != params.Status {
		return false
	}
	if params.BrandID != 0 && c.BrandID != params.BrandID {
		return false
	}
	if params.OwnerID != 0 && c.OwnerID != params.OwnerID {
		return false
	}
	if params.MinYear != 0 && c.ModelYear < params.MinYear {
		return false
	}
	if params.MaxYear != 0 && c.ModelYear > params.MaxYear {
		return false
	}
	if params.MinPrice != nil && c.Price < *params.MinPrice {
		return false
	}
	if params.MaxPrice != nil && c.Price > *params.MaxPrice {
		return false
	}
	return true
}

func (f *fakeCarStore) ExistsByPlate(_ context.Context, plate string, excludeID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.cars {
		if c.ID != excludeID && c.Plate == plate {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCarStore) Update(_ context.Context, car *domain.Car) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.cars[car.ID]; !ok {
		return store.ErrCarNotFound
	}
	car.UpdatedAt = time.Now()
	cp := *car
	f.cars[car.ID] = &cp
	return nil
}

func (f *fakeCarStore) UpdateStatus(_ context.Context, id int64, status domain.CarStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.cars[id]
	if !ok {
		return store.ErrCarNotFound
	}
	c.Status = status
	c.UpdatedAt = time.Now()
	return nil
}

func (f *fakeCarStore) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.cars[id]
	if !ok {
		return store.ErrCarNotFound
	}
	delete(f.cars, id)

	brandStillUsed, ownerStillUsed := false, false
	for _, other := range f.cars {
		if other.BrandID == c.BrandID {
			brandStillUsed = true
		}
		if other.OwnerID == c.OwnerID {
			ownerStillUsed = true
		}
	}
	f.brands.mu.Lock()
	f.brands.hasCars[c.BrandID] = brandStillUsed
	f.brands.mu.Unlock()
	f.users.mu.Lock()
	f.users.ownsCars[c.OwnerID] = ownerStillUsed
	f.users.mu.Unlock()
	return nil
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
