package portfolio

import (
	"context"
	"sync"
	"time"

	"github.com/inpirtalent/portfolio/posts"
)

// PostCache keeps the full date-ordered post list in memory for ttl. A zero
// ttl disables caching and every read goes to the record store.
type PostCache struct {
	mu      sync.RWMutex
	posts   []posts.Post
	fetched time.Time
	ttl     time.Duration
	svc     *posts.Service
}

// NewPostCache creates a PostCache backed by the given service.
func NewPostCache(svc *posts.Service, ttl time.Duration) *PostCache {
	return &PostCache{svc: svc, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.ttl > 0 && c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.mu.Unlock()
}

// ensureLoaded returns the cached posts after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *PostCache) ensureLoaded(ctx context.Context) ([]posts.Post, error) {
	c.mu.RLock()
	if c.valid() {
		all := c.posts
		c.mu.RUnlock()
		return all, nil
	}
	c.mu.RUnlock()

	if c.ttl <= 0 {
		return c.svc.ListAll(ctx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.posts, nil
	}
	all, err := c.svc.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = []posts.Post{}
	}
	c.posts = all
	c.fetched = time.Now()
	return all, nil
}

// ListPosts returns every post, newest first. The slice is shared and must
// not be modified.
func (c *PostCache) ListPosts(ctx context.Context) ([]posts.Post, error) {
	return c.ensureLoaded(ctx)
}

// Page returns one page of posts.
func (c *PostCache) Page(ctx context.Context, limit, offset int) (posts.Page, error) {
	all, err := c.ensureLoaded(ctx)
	if err != nil {
		return posts.Page{}, err
	}
	return posts.Paginate(all, limit, offset), nil
}

// GetPost returns a single post by slug.
func (c *PostCache) GetPost(ctx context.Context, slug string) (posts.Post, error) {
	all, err := c.ensureLoaded(ctx)
	if err != nil {
		return posts.Post{}, err
	}
	return posts.FindBySlug(all, slug)
}

// GetPostByID returns a single post by record id.
func (c *PostCache) GetPostByID(ctx context.Context, id string) (posts.Post, error) {
	all, err := c.ensureLoaded(ctx)
	if err != nil {
		return posts.Post{}, err
	}
	return posts.FindByID(all, id)
}
