package storage

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/premstore/storefront-api/models"
)

// MemoryStore keeps every entity in process memory behind one mutex. It backs
// development runs without a database and serves as the fallback data set when
// the database is unreachable.
type MemoryStore struct {
	mu sync.Mutex

	users        map[string]models.User
	products     map[string]models.Product
	categories   map[string]models.Category
	orders       map[string]models.Order
	cartItems    map[string]models.CartItem
	wishlist     map[string]models.WishlistItem
	reviews      map[string]models.Review
	transactions map[string]models.Transaction
	events       map[string]models.TransactionEvent
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[string]models.User),
		products:     make(map[string]models.Product),
		categories:   make(map[string]models.Category),
		orders:       make(map[string]models.Order),
		cartItems:    make(map[string]models.CartItem),
		wishlist:     make(map[string]models.WishlistItem),
		reviews:      make(map[string]models.Review),
		transactions: make(map[string]models.Transaction),
		events:       make(map[string]models.TransactionEvent),
	}
}

// -------- Users --------

func (s *MemoryStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return ErrConflict
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryStore) GetUser(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// -------- Products --------

func (s *MemoryStore) GetProducts(filters ProductFilters) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var products []models.Product
	for _, p := range s.products {
		if filters.Category != "" && p.Category != filters.Category {
			continue
		}
		if filters.Featured != nil && p.Featured != *filters.Featured {
			continue
		}
		if filters.Search != "" {
			needle := strings.ToLower(filters.Search)
			if !strings.Contains(strings.ToLower(p.Name), needle) &&
				!strings.Contains(strings.ToLower(p.Description), needle) {
				continue
			}
		}
		products = append(products, p)
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})

	if filters.Offset > 0 {
		if filters.Offset >= len(products) {
			return []models.Product{}, nil
		}
		products = products[filters.Offset:]
	}
	if filters.Limit > 0 && filters.Limit < len(products) {
		products = products[:filters.Limit]
	}
	return products, nil
}

func (s *MemoryStore) GetProduct(id string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) CreateProduct(product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.products {
		if existing.Name == product.Name {
			return ErrConflict
		}
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	s.products[product.ID] = *product
	return nil
}

func (s *MemoryStore) UpdateProduct(id string, updates map[string]interface{}) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyProductUpdates(&p, updates)
	p.UpdatedAt = time.Now()
	s.products[id] = p
	return &p, nil
}

func applyProductUpdates(p *models.Product, updates map[string]interface{}) {
	for key, value := range updates {
		switch key {
		case "name":
			if v, ok := value.(string); ok {
				p.Name = v
			}
		case "description":
			if v, ok := value.(string); ok {
				p.Description = v
			}
		case "price":
			if v, ok := value.(string); ok {
				p.Price = v
			}
		case "original_price":
			if v, ok := value.(string); ok {
				p.OriginalPrice = v
			}
		case "category":
			if v, ok := value.(string); ok {
				p.Category = v
			}
		case "stock":
			switch v := value.(type) {
			case int:
				p.Stock = v
			case float64:
				p.Stock = int(v)
			}
		case "featured":
			if v, ok := value.(bool); ok {
				p.Featured = v
			}
		case "images":
			if v, ok := value.(models.StringList); ok {
				p.Images = v
			}
		case "tags":
			if v, ok := value.(models.StringList); ok {
				p.Tags = v
			}
		}
	}
}

func (s *MemoryStore) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	return nil
}

// -------- Categories --------

func (s *MemoryStore) GetCategories() ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var categories []models.Category
	for _, c := range s.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

func (s *MemoryStore) CreateCategory(category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if existing.Name == category.Name {
			return ErrConflict
		}
	}
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}
	s.categories[category.ID] = *category
	return nil
}

// -------- Orders --------

func (s *MemoryStore) GetOrders(userID string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *MemoryStore) GetOrder(id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (s *MemoryStore) CreateOrder(order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createOrderLocked(order)
	return nil
}

func (s *MemoryStore) createOrderLocked(order *models.Order) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.NewString()
		}
		order.Items[i].OrderID = order.ID
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	s.orders[order.ID] = *order
}

func (s *MemoryStore) PlaceOrder(order *models.Order, clearCartUserID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.createOrderLocked(order)
	if clearCartUserID != "" {
		for id, item := range s.cartItems {
			if item.UserID == clearCartUserID {
				delete(s.cartItems, id)
			}
		}
	}
	return nil
}

// -------- Cart --------

func (s *MemoryStore) GetCartItems(userID string) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.CartItem
	for _, item := range s.cartItems {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *MemoryStore) AddToCart(item *models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	s.cartItems[item.ID] = *item
	return nil
}

func (s *MemoryStore) UpdateCartItem(id string, quantity int) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cartItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	s.cartItems[id] = item
	return &item, nil
}

func (s *MemoryStore) RemoveFromCart(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cartItems[id]; !ok {
		return ErrNotFound
	}
	delete(s.cartItems, id)
	return nil
}

func (s *MemoryStore) ClearCart(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, item := range s.cartItems {
		if item.UserID == userID {
			delete(s.cartItems, id)
		}
	}
	return nil
}

// -------- Wishlist --------

func (s *MemoryStore) GetWishlistItems(userID string) ([]models.WishlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.WishlistItem
	for _, item := range s.wishlist {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *MemoryStore) AddToWishlist(item *models.WishlistItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	s.wishlist[item.ID] = *item
	return nil
}

func (s *MemoryStore) RemoveFromWishlist(userID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, item := range s.wishlist {
		if item.UserID == userID && item.ProductID == productID {
			delete(s.wishlist, id)
			return nil
		}
	}
	return ErrNotFound
}

// -------- Reviews --------

func (s *MemoryStore) GetReviews(productID string) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reviews []models.Review
	for _, r := range s.reviews {
		if r.ProductID == productID {
			reviews = append(reviews, r)
		}
	}
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

func (s *MemoryStore) CreateReview(review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	s.reviews[review.ID] = *review
	return nil
}

// -------- Transactions --------

func (s *MemoryStore) CreateTransaction(txn *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.transactions {
		if existing.OrderID == txn.OrderID {
			return ErrConflict
		}
	}
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	now := time.Now()
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = now
	}
	txn.UpdatedAt = now
	s.transactions[txn.ID] = *txn
	return nil
}

func (s *MemoryStore) UpdateTransaction(orderID string, updates map[string]interface{}) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, txn := range s.transactions {
		if txn.OrderID != orderID {
			continue
		}
		if v, ok := updates["status"].(models.TransactionStatus); ok {
			txn.Status = v
		} else if v, ok := updates["status"].(string); ok {
			txn.Status = models.TransactionStatus(v)
		}
		if v, ok := updates["payment_id"].(string); ok {
			txn.PaymentID = v
		}
		txn.UpdatedAt = time.Now()
		s.transactions[id] = txn
		return &txn, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateTransactionEvent(event *models.TransactionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	s.events[event.ID] = *event
	return nil
}

func (s *MemoryStore) Ping() error {
	return nil
}
