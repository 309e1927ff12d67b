package handlers

import (
	"time"

	"spendtrack/internal/dto"
	"spendtrack/internal/models"
	"spendtrack/internal/service"
	"spendtrack/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	seederService   *service.SeederService
	logger          *zap.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, seederService *service.SeederService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		seederService:   seederService,
		logger:          logger,
	}
}

// List godoc
// @Summary List categories
// @Description List the user's categories ordered by name
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 401 {object} map[string]string
// @Security Bearer
// @Router /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}

	categories, err := h.categoryService.List(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		resp = append(resp, toCategoryResponse(&categories[i]))
	}
	return c.JSON(resp)
}

// Create godoc
// @Summary Create a category
// @Description Create a category with a per-user unique name
// @Tags categories
// @Accept json
// @Produce json
// @Param request body dto.CategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Security Bearer
// @Router /categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	category, err := h.categoryService.Create(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toCategoryResponse(category))
}

// Update godoc
// @Summary Update a category
// @Description Rename a category or change its icon
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category id"
// @Param request body dto.CategoryRequest true "Category"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security Bearer
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	category, err := h.categoryService.Update(c.Context(), userID, id, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(toCategoryResponse(category))
}

// Delete godoc
// @Summary Delete a category
// @Description Delete a category. Expenses keep their stored category name.
// @Tags categories
// @Param id path string true "Category id"
// @Success 204
// @Security Bearer
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	if err := h.categoryService.Delete(c.Context(), userID, id); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Seed godoc
// @Summary Seed default categories
// @Description Install the default category set for the current user; safe to call repeatedly
// @Tags categories
// @Produce json
// @Success 200 {object} dto.SeedResponse
// @Failure 401 {object} map[string]string
// @Security Bearer
// @Router /categories/seed [post]
func (h *CategoryHandler) Seed(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}

	added, err := h.seederService.Seed(c.Context(), userID)
	if err != nil {
		h.logger.Error("Category seeding failed", zap.Error(err))
		return c.JSON(dto.SeedResponse{Success: false, Error: err.Error()})
	}

	return c.JSON(dto.SeedResponse{Success: true, Added: added})
}

func toCategoryResponse(c *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Icon:      c.DisplayIcon(),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
