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

type ExpenseHandler struct {
	expenseService *service.ExpenseService
	logger         *zap.Logger
}

func NewExpenseHandler(expenseService *service.ExpenseService, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		logger:         logger,
	}
}

// List godoc
// @Summary List expenses
// @Description List the user's expenses, newest first, optionally filtered
// @Tags expenses
// @Produce json
// @Param search query string false "Case-insensitive substring of description or category"
// @Param category query string false "Exact category name"
// @Param range query string false "all | today | week | month"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 401 {object} map[string]string
// @Security Bearer
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}

	opts := service.FilterOptions{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Range:    service.DateRange(c.Query("range", string(service.RangeAll))),
	}

	expenses, err := h.expenseService.ListFiltered(c.Context(), userID, opts)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	resp := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		resp = append(resp, toExpenseResponse(&expenses[i]))
	}
	return c.JSON(resp)
}

// Create godoc
// @Summary Create an expense
// @Description Record an expense against a category
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body dto.ExpenseRequest true "Expense"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 422 {object} map[string]string
// @Security Bearer
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}

	var req dto.ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	expense, err := h.expenseService.Create(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toExpenseResponse(expense))
}

// Update godoc
// @Summary Update an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense id"
// @Param request body dto.ExpenseRequest true "Expense"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var req dto.ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	expense, err := h.expenseService.Update(c.Context(), userID, id, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(toExpenseResponse(expense))
}

// Delete godoc
// @Summary Delete an expense
// @Tags expenses
// @Param id path string true "Expense id"
// @Success 204
// @Security Bearer
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	if err := h.expenseService.Delete(c.Context(), userID, id); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func toExpenseResponse(e *models.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ID.String(),
		Amount:      e.Amount.String(),
		Description: e.Description,
		Category:    e.Category,
		Date:        models.FormatDate(e.Date),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
