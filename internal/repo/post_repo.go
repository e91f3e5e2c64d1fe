package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	dom "github.com/maclaude/learning-node-js-graphql-api/internal/domain"
)

const postsCollection = "posts"

// MongoPostRepo implements PostRepo with MongoDB.
type MongoPostRepo struct {
	col *mongo.Collection
}

// NewMongoPostRepo returns a new MongoPostRepo.
func NewMongoPostRepo(db *mongo.Database) *MongoPostRepo {
	return &MongoPostRepo{col: db.Collection(postsCollection)}
}

// Create inserts a new post, stamping createdAt and updatedAt.
func (r *MongoPostRepo) Create(ctx context.Context, p dom.Post) (dom.Post, error) {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return dom.Post{}, fmt.Errorf("insert post: %w", err)
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return p, nil
}

// GetByID returns the post with the given id.
func (r *MongoPostRepo) GetByID(ctx context.Context, id primitive.ObjectID) (dom.Post, error) {
	var p dom.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return dom.Post{}, ErrNotFound
	}
	if err != nil {
		return dom.Post{}, fmt.Errorf("find post: %w", err)
	}
	return p, nil
}

// List returns one page of posts, newest first, plus the total count.
func (r *MongoPostRepo) List(ctx context.Context, page, perPage int) ([]dom.Post, int, error) {
	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * perPage)).
		SetLimit(int64(perPage))
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	posts := make([]dom.Post, 0, perPage)
	if err := cur.All(ctx, &posts); err != nil {
		return nil, 0, fmt.Errorf("decode posts: %w", err)
	}
	return posts, int(total), nil
}

// ListByCreator returns all posts created by the given user, newest first.
func (r *MongoPostRepo) ListByCreator(ctx context.Context, creator primitive.ObjectID) ([]dom.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"creator": creator}, opts)
	if err != nil {
		return nil, fmt.Errorf("list posts by creator: %w", err)
	}
	defer cur.Close(ctx)

	posts := []dom.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

// Update writes title, content and imageUrl and bumps updatedAt.
func (r *MongoPostRepo) Update(ctx context.Context, p dom.Post) (dom.Post, error) {
	p.UpdatedAt = time.Now().UTC()
	res, err := r.col.UpdateByID(ctx, p.ID, bson.M{"$set": bson.M{
		"title":     p.Title,
		"content":   p.Content,
		"imageUrl":  p.ImageURL,
		"updatedAt": p.UpdatedAt,
	}})
	if err != nil {
		return dom.Post{}, fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return dom.Post{}, ErrNotFound
	}
	return p, nil
}

// Delete removes the post with the given id.
func (r *MongoPostRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

var _ PostRepo = (*MongoPostRepo)(nil)
