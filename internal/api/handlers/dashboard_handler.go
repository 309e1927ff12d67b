package handlers

import (
	"time"

	"spendtrack/internal/dto"
	"spendtrack/internal/models"
	"spendtrack/internal/service"
	"spendtrack/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Get godoc
// @Summary Month dashboard
// @Description Summary, per-category breakdown, and daily trend for one calendar month
// @Tags dashboard
// @Produce json
// @Param year query int false "Year (defaults to current)"
// @Param month query int false "Month 1-12 (defaults to current)"
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} map[string]string
// @Security Bearer
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}

	now := time.Now().UTC()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month must be between 1 and 12"})
	}

	data, err := h.dashboardService.Dashboard(c.Context(), userID, year, time.Month(month))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(toDashboardResponse(data))
}

func toDashboardResponse(d *service.DashboardData) dto.DashboardResponse {
	byCategory := make([]dto.CategoryTotalResponse, 0, len(d.ByCategory))
	for _, ct := range d.ByCategory {
		byCategory = append(byCategory, dto.CategoryTotalResponse{
			Name:  ct.Name,
			Icon:  ct.Icon,
			Total: ct.Total.String(),
		})
	}

	byDay := make([]dto.DayTotalResponse, 0, len(d.ByDay))
	for _, dt := range d.ByDay {
		byDay = append(byDay, dto.DayTotalResponse{
			Day:   models.FormatDate(dt.Day),
			Total: dt.Total.String(),
		})
	}

	return dto.DashboardResponse{
		Year:  d.Year,
		Month: d.Month,
		Summary: dto.SummaryResponse{
			Total:   d.Summary.Total.String(),
			Count:   d.Summary.Count,
			Average: d.Summary.Average.String(),
		},
		ByCategory: byCategory,
		ByDay:      byDay,
	}
}
