package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "shopfront/internal/log"
	"shopfront/internal/services"
	"shopfront/internal/validate"
)

type ReviewHandler struct {
	Reviews *services.ReviewService
}

// GET /api/products/:id/reviews
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	revs, err := h.Reviews.List(id)
	if err != nil {
		return fail(c, "reviews.list.fail", err)
	}
	return c.JSON(revs)
}

// GET /api/products/:id/reviews/eligibility
func (h *ReviewHandler) Eligibility(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	eligible, err := h.Reviews.CanReview(userID(c), id)
	if err != nil {
		return fail(c, "reviews.eligibility.fail", err)
	}
	return c.JSON(fiber.Map{"canReview": eligible})
}

type reviewBody struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// POST /api/products/:id/reviews (logged-in users only)
func (h *ReviewHandler) Add(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	u := currentUser(c)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
	}
	var body reviewBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	rev, err := h.Reviews.Add(id, u.ID, u.Name, body.Rating, strings.TrimSpace(body.Comment))
	if err != nil {
		return fail(c, "reviews.add.fail", err)
	}
	applog.Audit(c, "reviews.add", map[string]any{"product": id, "review": rev.ID})
	return c.Status(fiber.StatusCreated).JSON(rev)
}
