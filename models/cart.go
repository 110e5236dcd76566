package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem references a product and how many of it the cart holds
type CartItem struct {
	ProductID primitive.ObjectID `bson:"product" json:"product"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Cart represents a user's shopping cart (one per user)
type Cart struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID primitive.ObjectID `bson:"user" json:"user"`
	Items  []CartItem         `bson:"items" json:"items"`
}

// AddToCartRequest is the expected body for POST /cart
type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required"`
}

// CartItemDetail is a cart item with the product document joined in
type CartItemDetail struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartDetail is the GET /cart response shape
type CartDetail struct {
	ID     primitive.ObjectID `json:"id"`
	UserID primitive.ObjectID `json:"user"`
	Items  []CartItemDetail   `json:"items"`
}
