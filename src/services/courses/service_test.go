package courses_test

import (
	"context"
	"sync"
	"testing"

	"course-catalog/src/models"
	"course-catalog/src/services/courses"
	"course-catalog/src/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// pausingStore holds the first Find after it has read the store, until
// release is closed.
type pausingStore struct {
	*testutil.MemoryCourseStore
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (p *pausingStore) Find(ctx context.Context, f models.CourseFilters, populate bool) ([]models.Course, error) {
	list, err := p.MemoryCourseStore.Find(ctx, f, populate)
	p.once.Do(func() {
		close(p.entered)
		<-p.release
	})
	return list, err
}

type fixture struct {
	service    *courses.Service
	store      *testutil.MemoryCourseStore
	categories *testutil.MemoryCategories
	cache      *testutil.MapCache
}

func newFixture() *fixture {
	cats := testutil.NewMemoryCategories()
	store := testutil.NewMemoryCourseStore(cats)
	cache := testutil.NewMapCache()
	return &fixture{
		service:    courses.NewService(store, cats, cache, courses.Options{}),
		store:      store,
		categories: cats,
		cache:      cache,
	}
}

func (f *fixture) create(t *testing.T, name string, category primitive.ObjectID, featured bool) *models.Course {
	t.Helper()
	created, err := f.service.Create(context.Background(), models.Course{
		Name:       name,
		Category:   category,
		Price:      10,
		IsFeatured: featured,
	})
	require.NoError(t, err)
	return created
}

func TestCourseService(t *testing.T) {
	suite := testutil.NewTestSuiteResult("Course Service Tests")
	defer suite.PrintSummary()
	ctx := context.Background()

	t.Run("TestCreateAssignsIdentity", func(t *testing.T) {
		defer suite.Track("Create Assigns Identity", func() bool { return !t.Failed() })()

		f := newFixture()
		cat := f.categories.Add("Programming")
		created := f.create(t, "Go", cat.ID, false)

		assert.False(t, created.ID.IsZero())
		assert.False(t, created.DateCreated.IsZero())

		got, err := f.service.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		require.NotNil(t, got.CategoryDoc)
		assert.Equal(t, "Programming", got.CategoryDoc.Name)
	})

	t.Run("TestCheckCategory", func(t *testing.T) {
		defer suite.Track("Check Category", func() bool { return !t.Failed() })()

		f := newFixture()
		cat := f.categories.Add("Design")

		assert.NoError(t, f.service.CheckCategory(ctx, cat.ID))
		assert.ErrorIs(t, f.service.CheckCategory(ctx, primitive.NewObjectID()), courses.ErrInvalidCategory)
	})

	t.Run("TestListFiltersByCategory", func(t *testing.T) {
		defer suite.Track("List Filters By Category", func() bool { return !t.Failed() })()

		f := newFixture()
		a, b, c := f.categories.Add("A"), f.categories.Add("B"), f.categories.Add("C")
		f.create(t, "a1", a.ID, false)
		f.create(t, "b1", b.ID, false)
		f.create(t, "c1", c.ID, false)

		all, err := f.service.List(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		some, err := f.service.List(ctx, []primitive.ObjectID{a.ID, b.ID})
		require.NoError(t, err)
		require.Len(t, some, 2)
		for _, course := range some {
			assert.Contains(t, []primitive.ObjectID{a.ID, b.ID}, course.Category)
		}
	})

	t.Run("TestUpdateAndDelete", func(t *testing.T) {
		defer suite.Track("Update And Delete", func() bool { return !t.Failed() })()

		f := newFixture()
		cat := f.categories.Add("A")
		created := f.create(t, "before", cat.ID, false)

		updated, err := f.service.Update(ctx, created.ID, models.Course{Name: "after", Category: cat.ID, Price: 20})
		require.NoError(t, err)
		assert.Equal(t, "after", updated.Name)
		assert.Equal(t, 20.0, updated.Price)
		assert.Equal(t, created.ID, updated.ID)

		_, err = f.service.Update(ctx, primitive.NewObjectID(), models.Course{Name: "x"})
		assert.ErrorIs(t, err, courses.ErrCourseNotFound)

		removed, err := f.service.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "after", removed.Name)

		_, err = f.service.Get(ctx, created.ID)
		assert.ErrorIs(t, err, courses.ErrCourseNotFound)
		_, err = f.service.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, courses.ErrCourseNotFound)
	})

	t.Run("TestCountAndFeatured", func(t *testing.T) {
		defer suite.Track("Count And Featured", func() bool { return !t.Failed() })()

		f := newFixture()
		n, err := f.service.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		cat := f.categories.Add("A")
		for i := 0; i < 5; i++ {
			f.create(t, "featured", cat.ID, true)
		}
		f.create(t, "plain", cat.ID, false)

		n, err = f.service.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(6), n)

		top, err := f.service.Featured(ctx, 3)
		require.NoError(t, err)
		assert.Len(t, top, 3)
		for _, course := range top {
			assert.True(t, course.IsFeatured)
		}

		all, err := f.service.Featured(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, all, 5)
	})

	t.Run("TestCacheServesAndInvalidates", func(t *testing.T) {
		defer suite.Track("Cache Serves And Invalidates", func() bool { return !t.Failed() })()

		f := newFixture()
		cat := f.categories.Add("A")
		f.create(t, "one", cat.ID, false)

		first, err := f.service.List(ctx, nil)
		require.NoError(t, err)
		second, err := f.service.List(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, f.store.Calls)
		assert.Equal(t, first[0].ID, second[0].ID)
		require.NotNil(t, second[0].CategoryDoc)
		assert.Equal(t, "A", second[0].CategoryDoc.Name)

		f.create(t, "two", cat.ID, false)
		assert.Equal(t, "2", string(f.cache.Data["courses:gen"]))

		third, err := f.service.List(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, third, 2)
		assert.Equal(t, 2, f.store.Calls)
	})

	t.Run("TestReadRacingWriteNotCached", func(t *testing.T) {
		defer suite.Track("Read Racing Write Not Cached", func() bool { return !t.Failed() })()

		cats := testutil.NewMemoryCategories()
		store := &pausingStore{
			MemoryCourseStore: testutil.NewMemoryCourseStore(cats),
			entered:           make(chan struct{}),
			release:           make(chan struct{}),
		}
		cache := testutil.NewMapCache()
		svc := courses.NewService(store, cats, cache, courses.Options{})
		cat := cats.Add("A")

		done := make(chan []models.Course)
		go func() {
			list, _ := svc.List(ctx, nil)
			done <- list
		}()
		<-store.entered

		_, err := svc.Create(ctx, models.Course{Name: "late", Category: cat.ID, Price: 1})
		require.NoError(t, err)
		close(store.release)
		assert.Empty(t, <-done)

		list, err := svc.List(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, list, 1)
		assert.Equal(t, store.Len(), len(list))
	})

	t.Run("TestStoreErrorsPropagate", func(t *testing.T) {
		defer suite.Track("Store Errors Propagate", func() bool { return !t.Failed() })()

		f := newFixture()
		f.store.Err = testutil.ErrStoreDown

		_, err := f.service.List(ctx, nil)
		assert.ErrorIs(t, err, testutil.ErrStoreDown)
		_, err = f.service.Count(ctx)
		assert.ErrorIs(t, err, testutil.ErrStoreDown)
		_, err = f.service.Create(ctx, models.Course{Name: "x"})
		assert.ErrorIs(t, err, testutil.ErrStoreDown)
	})
}
