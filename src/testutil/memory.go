// Package testutil holds in-memory stores and request builders shared by
// the package tests.
package testutil

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"course-catalog/src/models"
	"course-catalog/src/services/courses"
	"course-catalog/src/services/orderitems"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrStoreDown = errors.New("store unavailable")

// MemoryCourseStore implements courses.Store over a map.
type MemoryCourseStore struct {
	mu         sync.Mutex
	order      []primitive.ObjectID
	docs       map[primitive.ObjectID]models.Course
	categories *MemoryCategories

	// Err, when set, is returned by every operation.
	Err error
	// Calls counts Find invocations.
	Calls int
}

func NewMemoryCourseStore(categories *MemoryCategories) *MemoryCourseStore {
	return &MemoryCourseStore{docs: map[primitive.ObjectID]models.Course{}, categories: categories}
}

func (m *MemoryCourseStore) populate(c models.Course, populate bool) models.Course {
	c.CategoryDoc = nil
	if populate && m.categories != nil {
		if cat, ok := m.categories.Get(c.Category); ok {
			c.CategoryDoc = &cat
		}
	}
	return c
}

func (m *MemoryCourseStore) Find(_ context.Context, f models.CourseFilters, populate bool) ([]models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}

	out := []models.Course{}
	for _, id := range m.order {
		c := m.docs[id]
		if f.FeaturedOnly && !c.IsFeatured {
			continue
		}
		if len(f.Categories) > 0 && !containsID(f.Categories, c.Category) {
			continue
		}
		out = append(out, m.populate(c, populate))
		if f.Limit > 0 && int64(len(out)) >= f.Limit {
			break
		}
	}
	return out, nil
}

func (m *MemoryCourseStore) FindByID(_ context.Context, id primitive.ObjectID, populate bool) (*models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	c, ok := m.docs[id]
	if !ok {
		return nil, courses.ErrCourseNotFound
	}
	c = m.populate(c, populate)
	return &c, nil
}

func (m *MemoryCourseStore) Insert(_ context.Context, course *models.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.docs[course.ID] = *course
	m.order = append(m.order, course.ID)
	return nil
}

func (m *MemoryCourseStore) Replace(_ context.Context, course *models.Course) (*models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	existing, ok := m.docs[course.ID]
	if !ok {
		return nil, courses.ErrCourseNotFound
	}
	updated := *course
	updated.DateCreated = existing.DateCreated
	m.docs[course.ID] = updated
	return &updated, nil
}

func (m *MemoryCourseStore) Delete(_ context.Context, id primitive.ObjectID) (*models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	c, ok := m.docs[id]
	if !ok {
		return nil, courses.ErrCourseNotFound
	}
	delete(m.docs, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return &c, nil
}

func (m *MemoryCourseStore) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return int64(len(m.docs)), nil
}

// Len reports how many courses are stored.
func (m *MemoryCourseStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}

// MemoryCategories implements courses.CategoryLookup.
type MemoryCategories struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]models.Category
}

func NewMemoryCategories(cats ...models.Category) *MemoryCategories {
	m := &MemoryCategories{docs: map[primitive.ObjectID]models.Category{}}
	for _, c := range cats {
		m.docs[c.ID] = c
	}
	return m
}

// Add stores a category with a fresh id and returns it.
func (m *MemoryCategories) Add(name string) models.Category {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := models.Category{ID: primitive.NewObjectID(), Name: name}
	m.docs[c.ID] = c
	return c
}

func (m *MemoryCategories) Get(id primitive.ObjectID) (models.Category, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.docs[id]
	return c, ok
}

func (m *MemoryCategories) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := m.Get(id)
	return ok, nil
}

// MemoryOrderItems implements orderitems.Store.
type MemoryOrderItems struct {
	mu    sync.Mutex
	items []models.OrderItem
}

func (m *MemoryOrderItems) Insert(_ context.Context, item *models.OrderItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, *item)
	return nil
}

func (m *MemoryOrderItems) FindAll(context.Context) ([]models.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.OrderItem{}, m.items...), nil
}

func (m *MemoryOrderItems) FindByID(_ context.Context, id primitive.ObjectID) (*models.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.items {
		if item.ID == id {
			item := item
			return &item, nil
		}
	}
	return nil, orderitems.ErrOrderItemNotFound
}

// MapCache implements courses.Cache in memory.
type MapCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMapCache() *MapCache {
	return &MapCache{Data: map[string][]byte{}}
}

func (c *MapCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.Data[key]
	return v, ok
}

func (c *MapCache) Set(_ context.Context, key string, value []byte, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Data[key] = value
}

func (c *MapCache) Incr(_ context.Context, key string) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, _ := strconv.ParseInt(string(c.Data[key]), 10, 64)
	n++
	c.Data[key] = []byte(strconv.FormatInt(n, 10))
	return n, true
}

func (c *MapCache) DeletePrefix(_ context.Context, prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.Data {
		if strings.HasPrefix(k, prefix) {
			delete(c.Data, k)
		}
	}
}

func (c *MapCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.Data)
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
