package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopfront/internal/services"
	"shopfront/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	prods, err := h.Catalog.ListProducts()
	if err != nil {
		return fail(c, "products.list.fail", err)
	}
	return c.JSON(prods)
}

// GET /api/products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		return fail(c, "products.get.fail", err)
	}
	return c.JSON(p)
}
