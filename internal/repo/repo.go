// Package repo provides user and post persistence over a document store,
// plus in-memory implementations used in tests.
package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	dom "github.com/maclaude/learning-node-js-graphql-api/internal/domain"
)

var (
	// ErrNotFound is returned when no document matches.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a unique email constraint is violated.
	ErrDuplicateEmail = errors.New("email already taken")
)

// UserRepo provides user persistence.
type UserRepo interface {
	Create(ctx context.Context, u dom.User) (dom.User, error)
	GetByEmail(ctx context.Context, email string) (dom.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (dom.User, error)
	AddPost(ctx context.Context, userID, postID primitive.ObjectID) error
	RemovePost(ctx context.Context, userID, postID primitive.ObjectID) error
}

// PostRepo provides post persistence. Create and Update own the timestamps.
type PostRepo interface {
	Create(ctx context.Context, p dom.Post) (dom.Post, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (dom.Post, error)
	// List returns one page of posts in descending creation order together
	// with the total post count across all pages.
	List(ctx context.Context, page, perPage int) ([]dom.Post, int, error)
	ListByCreator(ctx context.Context, creator primitive.ObjectID) ([]dom.Post, error)
	Update(ctx context.Context, p dom.Post) (dom.Post, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
