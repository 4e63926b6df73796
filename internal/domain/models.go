package domain

type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	ImageURL    string   `json:"imageUrl"` // always images[0]
	Images      []string `json:"images"`
	Rating      float64  `json:"rating"`      // derived, never stored
	ReviewCount int      `json:"reviewCount"` // derived, never stored
}

type Review struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"` // 1..5
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl"`
}

type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"` // GuestUserID when not logged in
	CustomerEmail string      `json:"customerEmail"`
	CustomerName  string      `json:"customerName"`
	Address       string      `json:"address"`
	Total         float64     `json:"total"`
	Status        OrderStatus `json:"status"`
	Items         []OrderItem `json:"items"`
	CreatedAt     string      `json:"createdAt"`
}

// GuestUserID marks orders placed without a logged-in user.
const GuestUserID = "guest"

type OrderStatus string

const (
	StatusReceived   OrderStatus = "RECEIVED"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// Valid reports whether s is one of the known order statuses.
// Any-to-any transitions are allowed by policy; only the value is checked.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusReceived, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CartLine is one (product snapshot, quantity) pair in a session cart.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
