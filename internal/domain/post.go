package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post belongs to exactly one creator, fixed at creation time.
// Timestamps are set and maintained by the persistence layer.
type Post struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Title    string             `bson:"title"`
	Content  string             `bson:"content"`
	ImageURL string             `bson:"imageUrl,omitempty"`
	Creator  primitive.ObjectID `bson:"creator"`

	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}
