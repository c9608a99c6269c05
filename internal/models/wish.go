package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wish is a birthday message left by a visitor. Only Likes changes after creation.
type Wish struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Message   string             `bson:"message" json:"message"`
	Color     string             `bson:"color" json:"color"`
	Likes     int                `bson:"likes" json:"likes"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateWishRequest is the body of POST /api/wishes.
type CreateWishRequest struct {
	Name    string `json:"name" validate:"required"`
	Message string `json:"message" validate:"required"`
}
