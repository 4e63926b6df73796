package repos

import (
	"time"

	"shopfront/internal/domain"
)

// Collection names are stable; they key the rows in the collections table.
const (
	ProductsCollection  = "products"
	OrdersCollection    = "orders"
	ReviewsCollection   = "reviews"
	WishlistsCollection = "wishlists"
)

func daysAgo(n int) string {
	return time.Now().UTC().AddDate(0, 0, -n).Format(time.RFC3339)
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "1", Title: "Ergonomic Office Chair",
			Description: "High-back mesh chair with lumbar support.",
			Price:       199.99, Category: "Furniture", Stock: 15,
			ImageURL: "https://picsum.photos/400/400?random=1",
			Images: []string{
				"https://picsum.photos/400/400?random=1",
				"https://picsum.photos/400/400?random=101",
				"https://picsum.photos/400/400?random=201",
			},
		},
		{
			ID: "2", Title: "Wireless Noise Cancelling Headphones",
			Description: "Premium sound with 30h battery life.",
			Price:       249.50, Category: "Electronics", Stock: 8,
			ImageURL: "https://picsum.photos/400/400?random=2",
			Images: []string{
				"https://picsum.photos/400/400?random=2",
				"https://picsum.photos/400/400?random=102",
			},
		},
		{
			ID: "3", Title: "Mechanical Keyboard",
			Description: "RGB backlit, cherry MX red switches.",
			Price:       89.99, Category: "Electronics", Stock: 20,
			ImageURL: "https://picsum.photos/400/400?random=3",
			Images: []string{
				"https://picsum.photos/400/400?random=3",
				"https://picsum.photos/400/400?random=103",
			},
		},
		{
			ID: "4", Title: "Ceramic Coffee Mug Set",
			Description: "Set of 4 minimalist matte black mugs.",
			Price:       34.00, Category: "Home", Stock: 45,
			ImageURL: "https://picsum.photos/400/400?random=4",
			Images: []string{
				"https://picsum.photos/400/400?random=4",
				"https://picsum.photos/400/400?random=104",
			},
		},
		{
			ID: "5", Title: "Running Sneakers",
			Description: "Lightweight breathable mesh for daily runs.",
			Price:       75.00, Category: "Apparel", Stock: 12,
			ImageURL: "https://picsum.photos/400/400?random=5",
			Images: []string{
				"https://picsum.photos/400/400?random=5",
				"https://picsum.photos/400/400?random=105",
			},
		},
		{
			ID: "6", Title: "Smart Watch Series 5",
			Description: "Health tracking, GPS, and waterproof.",
			Price:       299.00, Category: "Electronics", Stock: 5,
			ImageURL: "https://picsum.photos/400/400?random=6",
			Images:   []string{"https://picsum.photos/400/400?random=6"},
		},
		{
			ID: "7", Title: "Cotton Crew Neck T-Shirt",
			Description: "100% organic cotton, regular fit.",
			Price:       19.99, Category: "Apparel", Stock: 100,
			ImageURL: "https://picsum.photos/400/400?random=7",
			Images: []string{
				"https://picsum.photos/400/400?random=7",
				"https://picsum.photos/400/400?random=107",
			},
		},
		{
			ID: "8", Title: "Bamboo Standing Desk",
			Description: "Electric height adjustable desk.",
			Price:       450.00, Category: "Furniture", Stock: 3,
			ImageURL: "https://picsum.photos/400/400?random=8",
			Images: []string{
				"https://picsum.photos/400/400?random=8",
				"https://picsum.photos/400/400?random=108",
			},
		},
	}
}

func seedOrders() []domain.Order {
	return []domain.Order{
		{
			ID: "ord-1001", UserID: domain.GuestUserID,
			CustomerName: "Alice Smith", CustomerEmail: "alice@example.com",
			Address: "123 Maple St, Springfield",
			Total:   289.50, Status: domain.StatusDelivered,
			Items: []domain.OrderItem{
				{ProductID: "2", Title: "Headphones", Price: 249.50, Quantity: 1},
			},
			CreatedAt: daysAgo(5),
		},
		{
			ID: "ord-1002", UserID: domain.GuestUserID,
			CustomerName: "Bob Jones", CustomerEmail: "bob@example.com",
			Address: "456 Oak Ave, Metropolis",
			Total:   199.99, Status: domain.StatusShipped,
			Items: []domain.OrderItem{
				{ProductID: "1", Title: "Office Chair", Price: 199.99, Quantity: 1},
			},
			CreatedAt: daysAgo(2),
		},
		{
			ID: "ord-1003", UserID: "user-1",
			CustomerName: "Standard User", CustomerEmail: "user@test.com",
			Address: "789 Pine Ln, Gotham",
			Total:   199.99, Status: domain.StatusDelivered,
			Items: []domain.OrderItem{
				{ProductID: "1", Title: "Office Chair", Price: 199.99, Quantity: 1},
			},
			CreatedAt: daysAgo(10),
		},
	}
}

func seedReviews() []domain.Review {
	return []domain.Review{
		{
			ID: "rev-1", ProductID: "1", UserID: "u-100", UserName: "Jane Doe",
			Rating: 5, Comment: "Absolutely love this chair! My back pain is gone.",
			CreatedAt: daysAgo(20),
		},
		{
			ID: "rev-2", ProductID: "1", UserID: "u-101", UserName: "John Smith",
			Rating: 4, Comment: "Great chair, but assembly was a bit tricky.",
			CreatedAt: daysAgo(15),
		},
		{
			ID: "rev-3", ProductID: "2", UserID: "u-100", UserName: "Jane Doe",
			Rating: 5, Comment: "Best noise cancelling headphones I have ever owned.",
			CreatedAt: daysAgo(5),
		},
	}
}
