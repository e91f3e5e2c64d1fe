package service

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/maclaude/learning-node-js-graphql-api/internal/apperr"
	dom "github.com/maclaude/learning-node-js-graphql-api/internal/domain"
	"github.com/maclaude/learning-node-js-graphql-api/internal/images"
	"github.com/maclaude/learning-node-js-graphql-api/internal/repo"
	"github.com/maclaude/learning-node-js-graphql-api/internal/validate"
)

const (
	// PostsPerPage is the fixed page size for post listings.
	PostsPerPage = 2

	// unchangedImage is the client placeholder meaning "keep the stored imageUrl".
	unchangedImage = "undefined"

	minTitleLength   = 5
	minContentLength = 5
)

// PostService handles post CRUD with creator-only authorization.
type PostService struct {
	posts  repo.PostRepo
	users  repo.UserRepo
	images *images.Store
}

// NewPostService returns a PostService. If imgs is nil, stored image files are
// never touched.
func NewPostService(posts repo.PostRepo, users repo.UserRepo, imgs *images.Store) *PostService {
	return &PostService{posts: posts, users: users, images: imgs}
}

func validatePostInput(title, content string) error {
	var violations []apperr.FieldError
	if !validate.MinLength(title, minTitleLength) {
		violations = append(violations, apperr.FieldError{Message: "Title is invalid."})
	}
	if !validate.MinLength(content, minContentLength) {
		violations = append(violations, apperr.FieldError{Message: "Content is invalid."})
	}
	if len(violations) > 0 {
		return apperr.InvalidInput(violations)
	}
	return nil
}

// Create persists a new post for the acting user and appends the reference to
// the user's post collection. The two writes are separate single-document
// operations; a failure in between leaves a post without a user reference.
func (s *PostService) Create(ctx context.Context, userID, title, content, imageURL string) (dom.Post, error) {
	if err := validatePostInput(title, content); err != nil {
		return dom.Post{}, err
	}

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return dom.Post{}, apperr.Unauthorized("Invalid user")
	}
	creator, err := s.users.GetByID(ctx, uid)
	if errors.Is(err, repo.ErrNotFound) {
		return dom.Post{}, apperr.Unauthorized("Invalid user")
	}
	if err != nil {
		return dom.Post{}, err
	}

	p, err := s.posts.Create(ctx, dom.Post{
		Title:    title,
		Content:  content,
		ImageURL: imageURL,
		Creator:  creator.ID,
	})
	if err != nil {
		return dom.Post{}, err
	}
	if err := s.users.AddPost(ctx, creator.ID, p.ID); err != nil {
		return dom.Post{}, err
	}
	return p, nil
}

// List returns one page of posts, newest first, and the total count across
// all pages. Pages start at 1; anything lower is treated as 1.
func (s *PostService) List(ctx context.Context, page int) ([]dom.Post, int, error) {
	if page < 1 {
		page = 1
	}
	return s.posts.List(ctx, page, PostsPerPage)
}

// Get returns a single post by id.
func (s *PostService) Get(ctx context.Context, id string) (dom.Post, error) {
	pid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return dom.Post{}, apperr.NotFound("No post found!")
	}
	p, err := s.posts.GetByID(ctx, pid)
	if errors.Is(err, repo.ErrNotFound) {
		return dom.Post{}, apperr.NotFound("No post found!")
	}
	if err != nil {
		return dom.Post{}, err
	}
	return p, nil
}

// Update rewrites title and content of the acting user's post. The stored
// imageUrl is kept when the client sends the "undefined" placeholder.
func (s *PostService) Update(ctx context.Context, userID, id, title, content, imageURL string) (dom.Post, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return dom.Post{}, err
	}
	if p.Creator.Hex() != userID {
		return dom.Post{}, apperr.Forbidden("Not authorized!")
	}
	if err := validatePostInput(title, content); err != nil {
		return dom.Post{}, err
	}

	p.Title = title
	p.Content = content
	if imageURL != unchangedImage {
		p.ImageURL = imageURL
	}
	return s.posts.Update(ctx, p)
}

// Delete removes the acting user's post, its stored image file (best-effort)
// and the reference in the user's post collection.
func (s *PostService) Delete(ctx context.Context, userID, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if p.Creator.Hex() != userID {
		return apperr.Forbidden("Not authorized!")
	}

	if s.images != nil && p.ImageURL != "" {
		if err := s.images.Remove(p.ImageURL); err != nil {
			log.Printf("delete post %s: remove image %q: %v", id, p.ImageURL, err)
		}
	}

	if err := s.posts.Delete(ctx, p.ID); err != nil {
		return err
	}

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperr.Unauthorized("Invalid user")
	}
	return s.users.RemovePost(ctx, uid, p.ID)
}
