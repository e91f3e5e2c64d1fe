package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the domain entity for a registered account.
// PasswordHash is a bcrypt hash; the plaintext never leaves the register/login path.
type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Email        string               `bson:"email"`
	Name         string               `bson:"name"`
	PasswordHash string               `bson:"password"`
	Posts        []primitive.ObjectID `bson:"posts"`
}
