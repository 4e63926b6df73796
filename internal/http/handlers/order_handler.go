package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopfront/internal/domain"
	applog "shopfront/internal/log"
	"shopfront/internal/services"
	"shopfront/internal/validate"
)

type OrderHandler struct {
	Orders *services.OrderService
	Cart   *services.CartService
}

type checkoutBody struct {
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail"`
	Address       string             `json:"address"`
	Items         []domain.OrderItem `json:"items"`
	Total         float64            `json:"total"`
}

// POST /api/checkout
// Items may be supplied explicitly; when omitted the session cart is used
// and cleared once the order is placed.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	sid := ensureSID(c)

	var body checkoutBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	name, ok := validate.Name(body.CustomerName)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "name"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid name"})
	}
	email, ok := validate.Email(body.CustomerEmail)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid email"})
	}
	address, ok := validate.Address(body.Address)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "address"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid address"})
	}

	items := body.Items
	fromCart := len(items) == 0
	if fromCart {
		for _, l := range h.Cart.View(sid).Lines {
			items = append(items, domain.OrderItem{
				ProductID: l.Product.ID,
				Title:     l.Product.Title,
				Price:     l.Product.Price,
				Quantity:  l.Quantity,
				ImageURL:  l.Product.ImageURL,
			})
		}
	}

	o, err := h.Orders.Create(services.CheckoutInput{
		UserID:        userID(c),
		CustomerName:  name,
		CustomerEmail: email,
		Address:       address,
		Items:         items,
		Total:         body.Total,
	})
	if err != nil {
		return fail(c, "order.place.fail", err)
	}
	if fromCart {
		h.Cart.Clear(sid)
	}
	applog.Audit(c, "order.place", map[string]any{"order_id": o.ID, "total": o.Total})
	return c.Status(fiber.StatusCreated).JSON(o)
}

// GET /api/orders — scoped to the requester; the ledger itself is unfiltered.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	u := currentUser(c)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
	}
	orders, err := h.Orders.ListForUser(u.ID, u.Email)
	if err != nil {
		return fail(c, "orders.list.fail", err)
	}
	return c.JSON(orders)
}

// GET /api/orders/:id — owner or admin only.
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	o, err := h.Orders.Get(id)
	if err != nil {
		return fail(c, "orders.get.fail", err)
	}
	u := currentUser(c)
	owner := o.UserID == userID(c) || (u != nil && (o.CustomerEmail == u.Email || u.Role == domain.RoleAdmin))
	if !owner {
		applog.Security(c, "access.denied.order", map[string]any{"order_id": id})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.JSON(o)
}
