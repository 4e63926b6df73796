package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shopfront/internal/log"
	"shopfront/internal/services"
	"shopfront/internal/validate"
)

type WishlistHandler struct {
	Wish *services.WishlistService
}

// GET /api/wishlist
func (h *WishlistHandler) List(c *fiber.Ctx) error {
	items, err := h.Wish.List(userID(c))
	if err != nil {
		return fail(c, "wishlist.list.fail", err)
	}
	return c.JSON(items)
}

type wishlistBody struct {
	ProductID string `json:"productId"`
}

// POST /api/wishlist — idempotent; saving twice changes nothing.
func (h *WishlistHandler) Save(c *fiber.Ctx) error {
	var body wishlistBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	pid, ok := validate.ID(body.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	if err := h.Wish.Save(userID(c), pid); err != nil {
		return fail(c, "wishlist.save.fail", err)
	}
	applog.Audit(c, "wishlist.save", map[string]any{"product": pid})
	return c.SendStatus(fiber.StatusNoContent)
}

// POST /api/wishlist/delete — no-op for absent entries.
func (h *WishlistHandler) Unsave(c *fiber.Ctx) error {
	var body wishlistBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	pid, ok := validate.ID(body.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	if err := h.Wish.Unsave(userID(c), pid); err != nil {
		return fail(c, "wishlist.unsave.fail", err)
	}
	applog.Audit(c, "wishlist.unsave", map[string]any{"product": pid})
	return c.SendStatus(fiber.StatusNoContent)
}
