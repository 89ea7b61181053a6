package order

import "time"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

var validStatuses = map[Status]bool{
	StatusPending:   true,
	StatusPaid:      true,
	StatusShipped:   true,
	StatusDelivered: true,
	StatusCancelled: true,
}

func (s Status) Valid() bool {
	return validStatuses[s]
}

type Order struct {
	ID                 string
	OrderNumber        string
	UserID             string
	Status             Status
	Subtotal           float64
	Total              float64
	ShippingAddress    string
	ShippingCity       string
	ShippingProvince   string
	ShippingPostalCode string
	PaymentMethod      *string
	Notes              *string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
	Items              []OrderItem
}

// OrderItem is a snapshot of a cart line at order time. Name, price and
// quantity are copied verbatim from the submission and immutable afterwards,
// independent of later product mutations.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

type CheckoutItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CheckoutInput struct {
	Email         string         `json:"email"`
	Name          string         `json:"name"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	City          string         `json:"city"`
	Province      string         `json:"province"`
	PostalCode    string         `json:"postalCode"`
	Notes         string         `json:"notes"`
	Items         []CheckoutItem `json:"items"`
	PaymentMethod string         `json:"paymentMethod"`
	Subtotal      float64        `json:"subtotal"`
}

type CheckoutResult struct {
	OrderNumber string
	OrderID     string
}
