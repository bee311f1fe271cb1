package cache

import (
	"strings"
	"sync"

	"Quickblog/internal/entity"
	"Quickblog/pkg/quickblog"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Store is the in-memory mirror of the remote blog and category lists. It
// is warmed once at startup and thereafter patched optimistically by the
// pages after each successful mutation; it is never reconciled against the
// server's stored values. Readers get snapshot copies, never the backing
// slices.
type Store struct {
	log *logrus.Logger

	mu         sync.RWMutex
	blogs      []entity.Blog
	categories []entity.Category
	observers  []func()
}

func New(log *logrus.Logger) *Store {
	return &Store{log: log}
}

// Warm issues the blog and category list fetches concurrently and
// independently. A failure in either is logged and leaves that collection
// empty; no retry, and no error reaches the pages.
func (s *Store) Warm(ctx context.Context, api quickblog.IQuickblog) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		blogs, err := api.ListBlogs(ctx)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Failed to warm blog cache")
			return
		}
		s.SetBlogs(blogs)
	}()

	go func() {
		defer wg.Done()
		categories, err := api.ListCategories(ctx)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Failed to warm category cache")
			return
		}
		s.SetCategories(categories)
	}()

	wg.Wait()

	s.log.WithFields(logrus.Fields{
		"blogs":      len(s.Blogs()),
		"categories": len(s.Categories()),
	}).Info("Cache warmed")
}

// Subscribe registers an observer invoked after every mutation. Observers
// run on the mutating goroutine and must not mutate the store.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *Store) notify() {
	s.mu.RLock()
	observers := make([]func(), len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	for _, fn := range observers {
		fn()
	}
}

func (s *Store) Blogs() []entity.Blog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]entity.Blog, len(s.blogs))
	copy(snapshot, s.blogs)
	return snapshot
}

func (s *Store) Categories() []entity.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]entity.Category, len(s.categories))
	copy(snapshot, s.categories)
	return snapshot
}

func (s *Store) BlogByID(id string) (entity.Blog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.blogs {
		if b.ID == id {
			return b, true
		}
	}
	return entity.Blog{}, false
}

func (s *Store) BlogBySlug(slug string) (entity.Blog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.blogs {
		if b.Slug == slug {
			return b, true
		}
	}
	return entity.Blog{}, false
}

func (s *Store) CategoryByID(id string) (entity.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Category{}, false
}

// CategoryByName matches case-insensitively; authors type free-form names
// and "Tech" must reuse a cached "tech".
func (s *Store) CategoryByName(name string) (entity.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return entity.Category{}, false
}

func (s *Store) SetBlogs(blogs []entity.Blog) {
	s.mu.Lock()
	s.blogs = blogs
	s.mu.Unlock()
	s.notify()
}

func (s *Store) SetCategories(categories []entity.Category) {
	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()
	s.notify()
}

func (s *Store) AppendBlog(blog entity.Blog) {
	s.mu.Lock()
	s.blogs = append(s.blogs, blog)
	s.mu.Unlock()
	s.notify()
}

// ReplaceBlog swaps the cached record with the given id. The id is kept
// even when the replacement carries a different one, mirroring how an
// update response is applied over the known record.
func (s *Store) ReplaceBlog(id string, blog entity.Blog) {
	s.mu.Lock()
	for i := range s.blogs {
		if s.blogs[i].ID == id {
			blog.ID = id
			s.blogs[i] = blog
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) RemoveBlog(id string) {
	s.mu.Lock()
	filtered := s.blogs[:0]
	for _, b := range s.blogs {
		if b.ID != id {
			filtered = append(filtered, b)
		}
	}
	s.blogs = filtered
	s.mu.Unlock()
	s.notify()
}

func (s *Store) SetPublished(id string, published bool) {
	s.mu.Lock()
	for i := range s.blogs {
		if s.blogs[i].ID == id {
			s.blogs[i].Published = published
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) AppendCategory(category entity.Category) {
	s.mu.Lock()
	s.categories = append(s.categories, category)
	s.mu.Unlock()
	s.notify()
}
