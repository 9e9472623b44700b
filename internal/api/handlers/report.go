package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"stockroom/internal/api/dto"
	"stockroom/internal/api/middleware"
	"stockroom/internal/api/services"
	r "stockroom/internal/redis"
	"stockroom/internal/repository"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(db *sqlx.DB, rdb *redis.Client) *ReportHandler {
	itemRepo := repository.NewItemRepository(db)

	return &ReportHandler{
		reportService: services.NewReportService(itemRepo, r.StatsCache(rdb)),
	}
}

// GetStats godoc
// @Summary Inventory statistics
// @Description Totals, average and quantity extremes over the user's items
// @Tags reports
// @Produce json
// @Security Bearer
// @Success 200 {object} domain.InventoryStats
// @Failure 401 {object} map[string]string
// @Router /api/items/analytics/stats [get]
func (h *ReportHandler) GetStats(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	stats, err := h.reportService.Stats(c.Request().Context(), userID)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, stats)
}

// GenerateReport godoc
// @Summary Inventory report
// @Description Full snapshot of the user's items with stock band summary
// @Tags reports
// @Produce json
// @Security Bearer
// @Success 200 {object} services.InventoryReport
// @Failure 401 {object} map[string]string
// @Router /api/items/reports/inventory [get]
func (h *ReportHandler) GenerateReport(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	report, err := h.reportService.GenerateReport(c.Request().Context(), userID)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, report)
}

// SearchItems godoc
// @Summary Search items
// @Description Case-insensitive substring search over name and description
// @Tags reports
// @Produce json
// @Security Bearer
// @Param query query string true "Search text"
// @Success 200 {object} dto.SearchResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/items/search/items [get]
func (h *ReportHandler) SearchItems(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	items, err := h.reportService.Search(c.Request().Context(), userID, c.QueryParam("query"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SearchResult{
		Items: dto.ItemsFromDomain(items),
		Count: len(items),
	})
}

// GetItemsSorted godoc
// @Summary Items sorted by quantity
// @Description Ascending by default, descending with order=desc
// @Tags reports
// @Produce json
// @Security Bearer
// @Param order query string false "asc or desc"
// @Success 200 {array} dto.Item
// @Failure 401 {object} map[string]string
// @Router /api/items/sort/quantity [get]
func (h *ReportHandler) GetItemsSorted(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	items, err := h.reportService.SortedByQuantity(c.Request().Context(), userID, c.QueryParam("order"))
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.ItemsFromDomain(items))
}

// GetHealthCheck godoc
// @Summary Inventory health
// @Description Stock band counts and overall health classification
// @Tags reports
// @Produce json
// @Security Bearer
// @Success 200 {object} domain.HealthStatus
// @Failure 401 {object} map[string]string
// @Router /api/items/health/check [get]
func (h *ReportHandler) GetHealthCheck(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	health, err := h.reportService.HealthCheck(c.Request().Context(), userID)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, health)
}

// ExportData godoc
// @Summary Export inventory
// @Description Serializable snapshot of the user's items
// @Tags reports
// @Produce json
// @Security Bearer
// @Success 200 {object} services.ExportSnapshot
// @Failure 401 {object} map[string]string
// @Router /api/items/export/data [get]
func (h *ReportHandler) ExportData(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	snapshot, err := h.reportService.Export(c.Request().Context(), userID)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, snapshot)
}
