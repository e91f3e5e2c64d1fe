package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	dom "github.com/maclaude/learning-node-js-graphql-api/internal/domain"
)

const usersCollection = "users"

// MongoUserRepo implements UserRepo with MongoDB.
type MongoUserRepo struct {
	col *mongo.Collection
}

// NewMongoUserRepo returns a new MongoUserRepo.
func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{col: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique email index.
func (r *MongoUserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	return nil
}

// Create inserts a new user and returns it with its assigned id.
func (r *MongoUserRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	if u.Posts == nil {
		u.Posts = []primitive.ObjectID{}
	}
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return dom.User{}, ErrDuplicateEmail
		}
		return dom.User{}, fmt.Errorf("insert user: %w", err)
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}

// GetByEmail returns the user with the given email.
func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	var u dom.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return dom.User{}, ErrNotFound
	}
	if err != nil {
		return dom.User{}, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// GetByID returns the user with the given id.
func (r *MongoUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (dom.User, error) {
	var u dom.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return dom.User{}, ErrNotFound
	}
	if err != nil {
		return dom.User{}, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

// AddPost appends a post reference to the user's post collection.
func (r *MongoUserRepo) AddPost(ctx context.Context, userID, postID primitive.ObjectID) error {
	res, err := r.col.UpdateByID(ctx, userID, bson.M{"$push": bson.M{"posts": postID}})
	if err != nil {
		return fmt.Errorf("add post to user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RemovePost removes a post reference from the user's post collection.
func (r *MongoUserRepo) RemovePost(ctx context.Context, userID, postID primitive.ObjectID) error {
	res, err := r.col.UpdateByID(ctx, userID, bson.M{"$pull": bson.M{"posts": postID}})
	if err != nil {
		return fmt.Errorf("remove post from user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

var _ UserRepo = (*MongoUserRepo)(nil)
