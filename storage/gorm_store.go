package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/premstore/storefront-api/models"
)

// GormStore is the Postgres-backed Store. The gorm.Config used to open the
// connection must set TranslateError so unique violations surface as
// gorm.ErrDuplicatedKey.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates every table the store owns.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Category{},
		&models.Order{},
		&models.OrderItem{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Review{},
		&models.Transaction{},
		&models.TransactionEvent{},
	)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// -------- Users --------

func (s *GormStore) CreateUser(user *models.User) error {
	ensureID(&user.ID)
	return translate(s.db.Create(user).Error)
}

func (s *GormStore) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// -------- Products --------

func (s *GormStore) GetProducts(filters ProductFilters) ([]models.Product, error) {
	query := s.db.Model(&models.Product{})

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Featured != nil {
		query = query.Where("featured = ?", *filters.Featured)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, translate(err)
	}
	return products, nil
}

func (s *GormStore) GetProduct(id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (s *GormStore) CreateProduct(product *models.Product) error {
	ensureID(&product.ID)
	return translate(s.db.Create(product).Error)
}

func (s *GormStore) UpdateProduct(id string, updates map[string]interface{}) (*models.Product, error) {
	updates["updated_at"] = time.Now()
	result := s.db.Model(&models.Product{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetProduct(id)
}

func (s *GormStore) DeleteProduct(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Product{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// -------- Categories --------

func (s *GormStore) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, translate(err)
	}
	return categories, nil
}

func (s *GormStore) CreateCategory(category *models.Category) error {
	ensureID(&category.ID)
	return translate(s.db.Create(category).Error)
}

// -------- Orders --------

func (s *GormStore) GetOrders(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, translate(err)
	}
	return orders, nil
}

func (s *GormStore) GetOrder(id string) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (s *GormStore) CreateOrder(order *models.Order) error {
	ensureID(&order.ID)
	for i := range order.Items {
		ensureID(&order.Items[i].ID)
		order.Items[i].OrderID = order.ID
	}
	return translate(s.db.Create(order).Error)
}

// PlaceOrder writes the order row, its item rows, and the cart clear as one
// transaction so a failure cannot leave a partial order behind.
func (s *GormStore) PlaceOrder(order *models.Order, clearCartUserID string) error {
	ensureID(&order.ID)
	for i := range order.Items {
		ensureID(&order.Items[i].ID)
		order.Items[i].OrderID = order.ID
	}
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if clearCartUserID != "" {
			if err := tx.Where("user_id = ?", clearCartUserID).
				Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
		}
		return nil
	}))
}

// -------- Cart --------

func (s *GormStore) GetCartItems(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at").
		Find(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (s *GormStore) AddToCart(item *models.CartItem) error {
	ensureID(&item.ID)
	return translate(s.db.Create(item).Error)
}

func (s *GormStore) UpdateCartItem(id string, quantity int) (*models.CartItem, error) {
	result := s.db.Model(&models.CartItem{}).Where("id = ?", id).
		Updates(map[string]interface{}{"quantity": quantity, "updated_at": time.Now()})
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var item models.CartItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (s *GormStore) RemoveFromCart(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.CartItem{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ClearCart(userID string) error {
	return translate(s.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error)
}

// -------- Wishlist --------

func (s *GormStore) GetWishlistItems(userID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at").
		Find(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (s *GormStore) AddToWishlist(item *models.WishlistItem) error {
	ensureID(&item.ID)
	return translate(s.db.Create(item).Error)
}

func (s *GormStore) RemoveFromWishlist(userID, productID string) error {
	result := s.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// -------- Reviews --------

func (s *GormStore) GetReviews(productID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, translate(err)
	}
	return reviews, nil
}

func (s *GormStore) CreateReview(review *models.Review) error {
	ensureID(&review.ID)
	return translate(s.db.Create(review).Error)
}

// -------- Transactions --------

func (s *GormStore) CreateTransaction(txn *models.Transaction) error {
	ensureID(&txn.ID)
	return translate(s.db.Create(txn).Error)
}

func (s *GormStore) UpdateTransaction(orderID string, updates map[string]interface{}) (*models.Transaction, error) {
	updates["updated_at"] = time.Now()
	result := s.db.Model(&models.Transaction{}).Where("order_id = ?", orderID).Updates(updates)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var txn models.Transaction
	if err := s.db.First(&txn, "order_id = ?", orderID).Error; err != nil {
		return nil, translate(err)
	}
	return &txn, nil
}

func (s *GormStore) CreateTransactionEvent(event *models.TransactionEvent) error {
	ensureID(&event.ID)
	return translate(s.db.Create(event).Error)
}

func (s *GormStore) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
