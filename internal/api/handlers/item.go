package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"stockroom/internal/api/dto"
	"stockroom/internal/api/middleware"
	"stockroom/internal/api/services"
	"stockroom/internal/domain"
	r "stockroom/internal/redis"
	"stockroom/internal/repository"
)

type ItemHandler struct {
	inventoryService *services.InventoryService
}

func NewItemHandler(db *sqlx.DB, rdb *redis.Client) *ItemHandler {
	itemRepo := repository.NewItemRepository(db)

	return &ItemHandler{
		inventoryService: services.NewInventoryService(itemRepo, r.StatsCache(rdb)),
	}
}

// GetItems godoc
// @Summary List items
// @Description Get all items owned by the authenticated user
// @Tags items
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.Item
// @Failure 401 {object} map[string]string
// @Router /api/items [get]
func (h *ItemHandler) GetItems(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	items, err := h.inventoryService.List(c.Request().Context(), userID)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.ItemsFromDomain(items))
}

// GetItemByID godoc
// @Summary Get item
// @Description Get a single item by id
// @Tags items
// @Produce json
// @Security Bearer
// @Param id path string true "Item ID"
// @Success 200 {object} dto.Item
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/items/{id} [get]
func (h *ItemHandler) GetItemByID(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrBadRequest(c, "invalid item id")
	}

	item, err := h.inventoryService.GetByID(c.Request().Context(), userID, itemID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ItemFromDomain(item))
}

// CreateItem godoc
// @Summary Create item
// @Description Create a new inventory item
// @Tags items
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateItemRequest true "New item"
// @Success 201 {object} dto.Item
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/items [post]
func (h *ItemHandler) CreateItem(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	var req dto.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	item, err := h.inventoryService.Create(c.Request().Context(), userID, services.CreateItemInput{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Description: req.Description,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ItemFromDomain(item))
}

// UpdateItem godoc
// @Summary Update item
// @Description Patch name, quantity or description of an item
// @Tags items
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Item ID"
// @Param request body dto.UpdateItemRequest true "Fields to change"
// @Success 200 {object} dto.Item
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/items/{id} [put]
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrBadRequest(c, "invalid item id")
	}

	var req dto.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	item, err := h.inventoryService.Update(c.Request().Context(), userID, itemID, services.UpdateItemInput{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Description: req.Description,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ItemFromDomain(item))
}

// DeleteItem godoc
// @Summary Delete item
// @Description Remove an item from the inventory
// @Tags items
// @Produce json
// @Security Bearer
// @Param id path string true "Item ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/items/{id} [delete]
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrBadRequest(c, "invalid item id")
	}

	if err := h.inventoryService.Delete(c.Request().Context(), userID, itemID); err != nil {
		return serviceError(c, err)
	}

	return SuccessResponse(c, "item deleted successfully")
}

// GetLowStockItems godoc
// @Summary Low stock alert
// @Description List items with quantity below the threshold
// @Tags items
// @Produce json
// @Security Bearer
// @Param threshold query int false "Quantity threshold" default(10)
// @Success 200 {array} dto.Item
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/items/alerts/low-stock [get]
func (h *ItemHandler) GetLowStockItems(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	threshold := domain.LowStockThreshold
	if raw := c.QueryParam("threshold"); raw != "" {
		threshold, err = strconv.Atoi(raw)
		if err != nil {
			return ErrBadRequest(c, "invalid threshold")
		}
	}

	items, err := h.inventoryService.LowStockItems(c.Request().Context(), userID, threshold)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.ItemsFromDomain(items))
}

// BulkUpdateQuantity godoc
// @Summary Bulk quantity update
// @Description Apply quantity updates entry by entry; failures are reported per entry
// @Tags items
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.BulkUpdateQuantityRequest true "Quantity updates"
// @Success 200 {array} services.BulkUpdateResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/items/bulk/update-quantity [post]
func (h *ItemHandler) BulkUpdateQuantity(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	var req dto.BulkUpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	if req.Updates == nil {
		return ErrBadRequest(c, "updates must be an array")
	}

	updates := make([]services.BulkQuantityUpdate, 0, len(req.Updates))
	for _, entry := range req.Updates {
		updates = append(updates, services.BulkQuantityUpdate{
			ItemID:   entry.ItemID,
			Quantity: entry.Quantity,
		})
	}

	results, err := h.inventoryService.BulkUpdateQuantity(c.Request().Context(), userID, updates)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, results)
}
