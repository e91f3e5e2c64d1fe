package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	dom "github.com/maclaude/learning-node-js-graphql-api/internal/domain"
)

// MemoryUserRepo is an in-memory UserRepo for tests.
type MemoryUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]dom.User
}

// NewMemoryUserRepo returns an empty in-memory user repo.
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[primitive.ObjectID]dom.User)}
}

func (r *MemoryUserRepo) Create(_ context.Context, u dom.User) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return dom.User{}, ErrDuplicateEmail
		}
	}
	u.ID = primitive.NewObjectID()
	if u.Posts == nil {
		u.Posts = []primitive.ObjectID{}
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *MemoryUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return dom.User{}, ErrNotFound
}

func (r *MemoryUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return dom.User{}, ErrNotFound
	}
	return u, nil
}

func (r *MemoryUserRepo) AddPost(_ context.Context, userID, postID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return ErrNotFound
	}
	u.Posts = append(u.Posts, postID)
	r.users[userID] = u
	return nil
}

func (r *MemoryUserRepo) RemovePost(_ context.Context, userID, postID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return ErrNotFound
	}
	posts := make([]primitive.ObjectID, 0, len(u.Posts))
	for _, id := range u.Posts {
		if id != postID {
			posts = append(posts, id)
		}
	}
	u.Posts = posts
	r.users[userID] = u
	return nil
}

// MemoryPostRepo is an in-memory PostRepo for tests. Created posts get
// strictly increasing timestamps so descending creation order is stable.
type MemoryPostRepo struct {
	mu      sync.Mutex
	posts   map[primitive.ObjectID]dom.Post
	lastTS  time.Time
}

// NewMemoryPostRepo returns an empty in-memory post repo.
func NewMemoryPostRepo() *MemoryPostRepo {
	return &MemoryPostRepo{posts: make(map[primitive.ObjectID]dom.Post)}
}

func (r *MemoryPostRepo) Create(_ context.Context, p dom.Post) (dom.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if !now.After(r.lastTS) {
		now = r.lastTS.Add(time.Millisecond)
	}
	r.lastTS = now
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.posts[p.ID] = p
	return p, nil
}

func (r *MemoryPostRepo) GetByID(_ context.Context, id primitive.ObjectID) (dom.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return dom.Post{}, ErrNotFound
	}
	return p, nil
}

func (r *MemoryPostRepo) List(_ context.Context, page, perPage int) ([]dom.Post, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.sortedLocked(nil)
	total := len(all)

	start := (page - 1) * perPage
	if start >= total {
		return []dom.Post{}, total, nil
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *MemoryPostRepo) ListByCreator(_ context.Context, creator primitive.ObjectID) ([]dom.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sortedLocked(&creator), nil
}

func (r *MemoryPostRepo) Update(_ context.Context, p dom.Post) (dom.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.posts[p.ID]
	if !ok {
		return dom.Post{}, ErrNotFound
	}
	existing.Title = p.Title
	existing.Content = p.Content
	existing.ImageURL = p.ImageURL
	existing.UpdatedAt = time.Now().UTC()
	r.posts[p.ID] = existing
	return existing, nil
}

func (r *MemoryPostRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

// sortedLocked returns posts newest first, optionally filtered by creator.
func (r *MemoryPostRepo) sortedLocked(creator *primitive.ObjectID) []dom.Post {
	out := make([]dom.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if creator != nil && p.Creator != *creator {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

var (
	_ UserRepo = (*MemoryUserRepo)(nil)
	_ PostRepo = (*MemoryPostRepo)(nil)
)
