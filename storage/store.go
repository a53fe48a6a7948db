package storage

import (
	"errors"

	"github.com/premstore/storefront-api/models"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a unique constraint is violated.
	ErrConflict = errors.New("duplicate record")
)

// IsUnavailable reports whether an error means the backing store itself could
// not be reached, as opposed to a domain outcome like a missing row. Handlers
// use it to decide when to drop to the in-memory fallback.
func IsUnavailable(err error) bool {
	return err != nil && !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrConflict)
}

// ProductFilters narrows product listings. Zero values mean "no filter".
type ProductFilters struct {
	Category string
	Featured *bool
	Search   string
	Limit    int
	Offset   int
}

// Store is the repository surface shared by the database-backed store and the
// in-memory store. Controllers depend on this interface only; which
// implementation serves as primary is wired at startup.
type Store interface {
	CreateUser(user *models.User) error
	GetUser(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)

	GetProducts(filters ProductFilters) ([]models.Product, error)
	GetProduct(id string) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(id string, updates map[string]interface{}) (*models.Product, error)
	DeleteProduct(id string) error

	GetCategories() ([]models.Category, error)
	CreateCategory(category *models.Category) error

	GetOrders(userID string) ([]models.Order, error)
	GetOrder(id string) (*models.Order, error)
	CreateOrder(order *models.Order) error
	// PlaceOrder persists the order with its items and, when clearCartUserID is
	// non-empty, removes that user's cart rows in the same transaction.
	PlaceOrder(order *models.Order, clearCartUserID string) error

	GetCartItems(userID string) ([]models.CartItem, error)
	AddToCart(item *models.CartItem) error
	UpdateCartItem(id string, quantity int) (*models.CartItem, error)
	RemoveFromCart(id string) error
	ClearCart(userID string) error

	GetWishlistItems(userID string) ([]models.WishlistItem, error)
	AddToWishlist(item *models.WishlistItem) error
	RemoveFromWishlist(userID, productID string) error

	GetReviews(productID string) ([]models.Review, error)
	CreateReview(review *models.Review) error

	CreateTransaction(txn *models.Transaction) error
	UpdateTransaction(orderID string, updates map[string]interface{}) (*models.Transaction, error)
	CreateTransactionEvent(event *models.TransactionEvent) error

	Ping() error
}
