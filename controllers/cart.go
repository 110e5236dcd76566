package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"go-shopcart/middleware"
	"go-shopcart/models"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CartController handles cart-related requests
type CartController struct {
	Collection *mongo.Collection
	Products   *mongo.Collection
	validate   *validator.Validate
}

// NewCartController creates a new CartController
func NewCartController(client *mongo.Client, dbName string) *CartController {
	db := client.Database(dbName)
	return &CartController{
		Collection: db.Collection("carts"),
		Products:   db.Collection("products"),
		validate:   validator.New(),
	}
}

func (cc *CartController) userID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		http.Error(w, "Access denied. No token provided.", http.StatusUnauthorized)
		return primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		http.Error(w, "Invalid token.", http.StatusBadRequest)
		return primitive.NilObjectID, false
	}
	return userID, true
}

// GetCart retrieves the user's cart with product details joined in
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := cc.userID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var cart models.Cart
	err := cc.Collection.FindOne(ctx, bson.M{"user": userID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Cart not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Error fetching cart: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	detail, err := cc.joinProducts(ctx, cart)
	if err != nil {
		log.Printf("Error fetching cart products: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(detail)
}

// joinProducts resolves each cart item's product reference in a single
// $in query. Items whose product has been deleted keep only the id.
func (cc *CartController) joinProducts(ctx context.Context, cart models.Cart) (models.CartDetail, error) {
	detail := models.CartDetail{
		ID:     cart.ID,
		UserID: cart.UserID,
		Items:  []models.CartItemDetail{},
	}
	if len(cart.Items) == 0 {
		return detail, nil
	}

	ids := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}

	cursor, err := cc.Products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return detail, err
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return detail, err
	}

	byID := make(map[primitive.ObjectID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, item := range cart.Items {
		product, found := byID[item.ProductID]
		if !found {
			product = models.Product{ID: item.ProductID}
		}
		detail.Items = append(detail.Items, models.CartItemDetail{
			Product:  product,
			Quantity: item.Quantity,
		})
	}
	return detail, nil
}

// AddToCart adds a product to the user's cart, creating the cart lazily
// and accumulating quantity when the product is already present
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := cc.userID(w, r)
	if !ok {
		return
	}

	var req models.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if err := cc.validate.Struct(req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cart, err := cc.addItem(ctx, userID, models.CartItem{ProductID: productID, Quantity: req.Quantity})
	if err != nil {
		log.Printf("Error updating cart: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cart)
}

// addItem performs the increment-or-append as two atomic operations:
// a positional $inc on an existing item, then a $push with upsert when
// the product (or the whole cart) is missing. The unique index on
// carts.user keeps concurrent upserts from creating duplicate carts; the
// loser of that race retries once and lands on the $inc path.
func (cc *CartController) addItem(ctx context.Context, userID primitive.ObjectID, item models.CartItem) (models.Cart, error) {
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var cart models.Cart
	for attempt := 0; attempt < 2; attempt++ {
		err := cc.Collection.FindOneAndUpdate(ctx,
			bson.M{"user": userID, "items.product": item.ProductID},
			bson.M{"$inc": bson.M{"items.$.quantity": item.Quantity}},
			after,
		).Decode(&cart)
		if err == nil {
			return cart, nil
		}
		if err != mongo.ErrNoDocuments {
			return cart, err
		}

		err = cc.Collection.FindOneAndUpdate(ctx,
			bson.M{"user": userID},
			bson.M{"$push": bson.M{"items": item}},
			options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
		).Decode(&cart)
		if err == nil {
			return cart, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return cart, err
		}
	}
	return cart, mongo.ErrNoDocuments
}

// RemoveFromCart removes the item matching the product id, if present.
// The cart is returned either way; only a missing cart is a 404.
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := cc.userID(w, r)
	if !ok {
		return
	}

	productID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var cart models.Cart
	err = cc.Collection.FindOneAndUpdate(ctx,
		bson.M{"user": userID},
		bson.M{"$pull": bson.M{"items": bson.M{"product": productID}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Cart not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Error updating cart: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cart)
}
