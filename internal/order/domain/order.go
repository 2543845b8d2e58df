package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// OrderItem is one line of an order. Condition records whether the customer
// bought the item new or used, which decides the counter bucket the sale
// deducts from.
type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"-" gorm:"not null;index"`
	ProductID uint    `json:"product_id" gorm:"not null"`
	Name      string  `json:"name" gorm:"not null"`
	Condition string  `json:"condition" gorm:"type:varchar(8);not null"`
	Price     float64 `json:"price" gorm:"not null"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Image     string  `json:"image"`
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// Order represents one customer order.
type Order struct {
	ID            uint              `json:"id" gorm:"primaryKey"`
	Number        string            `json:"number" gorm:"not null;uniqueIndex"`
	UserID        uint              `json:"user_id" gorm:"not null;index"`
	Items         []OrderItem       `json:"items" gorm:"foreignKey:OrderID"`
	Amount        float64           `json:"amount" gorm:"not null"`
	Address       map[string]string `json:"address" gorm:"serializer:json"`
	Status        string            `json:"status" gorm:"default:'Order Placed'"`
	PaymentMethod string            `json:"payment_method"`
	Payment       bool              `json:"payment" gorm:"default:false"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// Order statuses as used by the fulfilment flow.
const (
	StatusPlaced         = "Order Placed"
	StatusPacking        = "Packing"
	StatusShipped        = "Shipped"
	StatusOutForDelivery = "Out for delivery"
	StatusDelivered      = "Delivered"
)

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(order *Order) error
	FindByID(id uint) (*Order, error)
	FindAll(limit, offset int) ([]Order, error)
	FindByUser(userID uint, limit, offset int) ([]Order, error)
	UpdateStatus(id uint, status string) error
	SetPayment(id uint, paid bool) error
	Delete(id uint) error
}

// StockAdjuster is the order flow's view of the warehouse: a sale deducts
// from the in-stock counter of the sold condition, clamped at zero.
type StockAdjuster interface {
	DeductStock(ctx context.Context, productID uint, condition string, quantity int) error
}

// CartClearer empties a user's cart after their order is placed.
type CartClearer interface {
	ClearCart(userID uint) error
}
