package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopfront/internal/services"
	"shopfront/internal/validate"
)

// PageHandler serves the two read-only HTML pages. Everything stateful goes
// through the JSON API.
type PageHandler struct {
	Catalog *services.CatalogService
	Reviews *services.ReviewService
}

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if u := c.Locals("user"); u != nil {
		data["User"] = u
	}
	return c.Render(tmpl, data)
}

// GET /
func (h *PageHandler) Home(c *fiber.Ctx) error {
	prods, err := h.Catalog.ListProducts()
	if err != nil {
		return err
	}
	return render(c, "index", fiber.Map{"Products": prods})
}

// GET /product/:id
func (h *PageHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	revs, err := h.Reviews.List(id)
	if err != nil {
		return err
	}
	return render(c, "product", fiber.Map{"P": p, "Reviews": revs})
}
