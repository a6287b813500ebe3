package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/biztrackr/biz_tracker_app/internal/apperrors"
	portssvc "github.com/biztrackr/biz_tracker_app/internal/core/ports/services"
	"github.com/biztrackr/biz_tracker_app/internal/dto"
	"github.com/biztrackr/biz_tracker_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// inventoryHandler handles HTTP requests related to inventory items.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

// newInventoryHandler creates a new inventoryHandler.
func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{
		inventoryService: is,
	}
}

// registerInventoryRoutes registers all inventory-related routes.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newInventoryHandler(inventoryService)

	inv := rg.Group("/inventory")
	{
		inv.POST("", h.createItem)
		inv.GET("", h.listItems)
		inv.GET("/stream", h.streamItems)
	}
}

// createItem godoc
// @Summary Add an inventory item
// @Description Records a new inventory item for the caller.
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body dto.CreateInventoryItemRequest true "Item details"
// @Success 201 {object} dto.InventoryItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to add item"
// @Security BearerAuth
// @Router /inventory [post]
func (h *inventoryHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), ownerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to add inventory item in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
		return
	}

	logger.Info("Inventory item added", slog.String("item_id", item.ItemID))
	c.JSON(http.StatusCreated, dto.ToInventoryItemResponse(item))
}

// listItems godoc
// @Summary List inventory items
// @Description Returns the caller's inventory items.
// @Tags inventory
// @Produce json
// @Success 200 {array} dto.InventoryItemResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list items"
// @Security BearerAuth
// @Router /inventory [get]
func (h *inventoryHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	items, err := h.inventoryService.ListItems(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to list inventory items from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list items"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryItemResponses(items))
}

// streamItems godoc
// @Summary Stream inventory snapshots
// @Description SSE stream of the caller's inventory list (see /tasks/stream for semantics).
// @Tags inventory
// @Produce text/event-stream
// @Success 200 {array} dto.InventoryItemResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to open stream"
// @Security BearerAuth
// @Router /inventory/stream [get]
func (h *inventoryHandler) streamItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	snapshots, err := h.inventoryService.WatchItems(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to open inventory stream", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open stream"})
		return
	}

	setSSEHeaders(c)
	c.Stream(func(w io.Writer) bool {
		snap, open := <-snapshots
		if !open {
			return false
		}
		c.SSEvent("snapshot", dto.ToInventoryItemResponses(snap))
		return true
	})
}
