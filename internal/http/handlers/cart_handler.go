package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopfront/internal/services"
	"shopfront/internal/validate"
)

type CartHandler struct {
	Cart    *services.CartService
	Catalog *services.CatalogService
}

// GET /api/cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.Cart.View(ensureSID(c)))
}

type cartBody struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// POST /api/cart — add merges quantities for a product already in the cart.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var body cartBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	pid, ok := validate.ID(body.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	qty := validate.Qty(body.Quantity)
	p, err := h.Catalog.GetProduct(pid)
	if err != nil {
		return fail(c, "cart.add.fail", err)
	}
	h.Cart.Add(sid, p, qty)
	return c.JSON(h.Cart.View(sid))
}

// POST /api/cart/quantity — quantities below 1 are ignored.
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var body cartBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	h.Cart.SetQuantity(sid, body.ProductID, body.Quantity)
	return c.JSON(h.Cart.View(sid))
}

// POST /api/cart/delete
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var body cartBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	h.Cart.Remove(sid, body.ProductID)
	return c.JSON(h.Cart.View(sid))
}

// POST /api/cart/clear
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Cart.Clear(sid)
	return c.JSON(h.Cart.View(sid))
}
