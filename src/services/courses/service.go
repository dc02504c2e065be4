package courses

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"course-catalog/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrInvalidCategory = errors.New("invalid category")
)

const (
	cachePrefix = "courses:"
	genKey      = cachePrefix + "gen"
)

// CategoryLookup reports whether a category exists.
type CategoryLookup interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// Cache stores encoded query results. Implementations must treat every
// failure as a miss. Incr stores its counter as a decimal string readable
// through Get.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Incr(ctx context.Context, key string) (int64, bool)
	DeletePrefix(ctx context.Context, prefix string)
}

type noCache struct{}

func (noCache) Get(context.Context, string) ([]byte, bool)         { return nil, false }
func (noCache) Set(context.Context, string, []byte, time.Duration) {}
func (noCache) Incr(context.Context, string) (int64, bool)         { return 0, true }
func (noCache) DeletePrefix(context.Context, string)               {}

type Options struct {
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Service implements the course operations on top of a Store.
// The category check and the write that follows are separate store calls;
// a category deleted in between is not detected.
type Service struct {
	store      Store
	categories CategoryLookup
	cache      Cache
	timeout    time.Duration
	cacheTTL   time.Duration
	now        func() time.Time
}

func NewService(store Store, categories CategoryLookup, cache Cache, opts Options) *Service {
	if cache == nil {
		cache = noCache{}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 2 * time.Minute
	}
	return &Service{
		store:      store,
		categories: categories,
		cache:      cache,
		timeout:    opts.Timeout,
		cacheTTL:   opts.CacheTTL,
		now:        time.Now,
	}
}

// cached values are wrapped because bson only encodes documents
type cachedCourses struct {
	Items []models.Course `bson:"items"`
}

type cachedCount struct {
	N int64 `bson:"n"`
}

func (s *Service) getCached(ctx context.Context, key string, dest interface{}) bool {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return false
	}
	return bson.Unmarshal(raw, dest) == nil
}

func (s *Service) setCached(ctx context.Context, key string, value interface{}) {
	raw, err := bson.Marshal(value)
	if err != nil {
		return
	}
	s.cache.Set(ctx, key, raw, s.cacheTTL)
}

// Every cached result is keyed under the current generation. A write bumps
// the generation, so a read that raced the write stores its result under a
// key nothing reads anymore.
func (s *Service) generation(ctx context.Context) int64 {
	raw, ok := s.cache.Get(ctx, genKey)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func cacheKey(gen int64, suffix string) string {
	return fmt.Sprintf("%s%d:%s", cachePrefix, gen, suffix)
}

func (s *Service) invalidate(ctx context.Context) {
	if _, ok := s.cache.Incr(ctx, genKey); !ok {
		s.cache.DeletePrefix(ctx, cachePrefix)
	}
}

func listCacheKey(categories []primitive.ObjectID) string {
	if len(categories) == 0 {
		return "list:all"
	}
	ids := make([]string, len(categories))
	for i, id := range categories {
		ids[i] = id.Hex()
	}
	h := sha1.Sum([]byte(strings.Join(ids, ",")))
	return "list:" + hex.EncodeToString(h[:])
}

// List returns every course, or only those in the given categories, with
// categories populated.
func (s *Service) List(ctx context.Context, categories []primitive.ObjectID) ([]models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	key := cacheKey(s.generation(ctx), listCacheKey(categories))
	var hit cachedCourses
	if s.getCached(ctx, key, &hit) {
		return nonNil(hit.Items), nil
	}

	list, err := s.store.Find(ctx, models.CourseFilters{Categories: categories}, true)
	if err != nil {
		return nil, err
	}
	s.setCached(ctx, key, cachedCourses{Items: list})
	return list, nil
}

// Get returns one course with its category populated.
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.store.FindByID(ctx, id, true)
}

// CheckCategory returns ErrInvalidCategory unless the category exists.
func (s *Service) CheckCategory(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ok, err := s.categories.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("lookup category %s: %w", id.Hex(), err)
	}
	if !ok {
		return ErrInvalidCategory
	}
	return nil
}

// Create inserts a new course. The category must already have been checked.
func (s *Service) Create(ctx context.Context, course models.Course) (*models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	course.ID = primitive.NewObjectID()
	course.DateCreated = s.now()
	course.CategoryDoc = nil
	if err := s.store.Insert(ctx, &course); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &course, nil
}

// Update overwrites every mutable field of the course with the given values.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, course models.Course) (*models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	course.ID = id
	course.CategoryDoc = nil
	updated, err := s.store.Replace(ctx, &course)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

// Delete removes a course and returns the removed document.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return removed, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	key := cacheKey(s.generation(ctx), "count")
	var hit cachedCount
	if s.getCached(ctx, key, &hit) {
		return hit.N, nil
	}

	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, err
	}
	s.setCached(ctx, key, cachedCount{N: n})
	return n, nil
}

// Featured returns up to limit featured courses; limit 0 means all of them.
func (s *Service) Featured(ctx context.Context, limit int64) ([]models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	key := cacheKey(s.generation(ctx), fmt.Sprintf("featured:%d", limit))
	var hit cachedCourses
	if s.getCached(ctx, key, &hit) {
		return nonNil(hit.Items), nil
	}

	list, err := s.store.Find(ctx, models.CourseFilters{FeaturedOnly: true, Limit: limit}, false)
	if err != nil {
		return nil, err
	}
	s.setCached(ctx, key, cachedCourses{Items: list})
	return list, nil
}

func nonNil(list []models.Course) []models.Course {
	if list == nil {
		return []models.Course{}
	}
	return list
}
