package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
	"github.com/SscSPs/erp_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// inventoryHandler handles stock items and the stock and GST registers.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{inventoryService: is}
}

// registerInventoryRoutes registers the inventory and GST routes under a company.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newInventoryHandler(inventoryService)

	items := rg.Group("/inventory-items")
	{
		items.POST("", h.createItem)
		items.GET("", h.listItems)
		items.GET("/:itemID", h.getItem)
		items.PUT("/:itemID", h.updateItem)
		items.DELETE("/:itemID", h.deleteItem)
		items.GET("/:itemID/stock-transactions", h.listStockTransactions)
	}

	rg.GET("/gst-entries", h.listGSTEntries)
}

// createItem godoc
// @Summary Create a stock item
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   item body dto.CreateInventoryItemRequest true "Stock item"
// @Success 201 {object} dto.SuccessResponse{data=dto.InventoryItemResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 409 {object} dto.ErrorResponse "Item name already used"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/inventory-items [post]
func (h *inventoryHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInventoryItemRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), c.Param("companyID"), req, userID)
	if err != nil {
		handleServiceError(c, logger, "create stock item", err)
		return
	}

	logger.Info("Stock item created", slog.String("item_id", item.ItemID))
	respond(c, http.StatusCreated, dto.ToInventoryItemResponse(item))
}

// listItems godoc
// @Summary List stock items
// @Tags inventory
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.InventoryItemResponse}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/inventory-items [get]
func (h *inventoryHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.inventoryService.ListItems(c.Request.Context(), c.Param("companyID"))
	if err != nil {
		handleServiceError(c, logger, "list stock items", err)
		return
	}
	respond(c, http.StatusOK, dto.ToListInventoryItemResponse(items))
}

// getItem godoc
// @Summary Get a stock item
// @Tags inventory
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   itemID path string true "Item ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.InventoryItemResponse}
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/inventory-items/{itemID} [get]
func (h *inventoryHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	item, err := h.inventoryService.GetItem(c.Request.Context(), c.Param("companyID"), c.Param("itemID"))
	if err != nil {
		handleServiceError(c, logger, "get stock item", err)
		return
	}
	respond(c, http.StatusOK, dto.ToInventoryItemResponse(item))
}

// updateItem godoc
// @Summary Update a stock item
// @Description Updates descriptive fields. Stock on hand only changes through vouchers.
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   itemID path string true "Item ID"
// @Param   item body dto.UpdateInventoryItemRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse{data=dto.InventoryItemResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/inventory-items/{itemID} [put]
func (h *inventoryHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateInventoryItemRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), c.Param("companyID"), c.Param("itemID"), req, userID)
	if err != nil {
		handleServiceError(c, logger, "update stock item", err)
		return
	}
	respond(c, http.StatusOK, dto.ToInventoryItemResponse(item))
}

// deleteItem godoc
// @Summary Delete a stock item
// @Description Items with stock transactions cannot be deleted
// @Tags inventory
// @Param   companyID path string true "Company ID"
// @Param   itemID path string true "Item ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 409 {object} dto.ErrorResponse "Item has stock transactions"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/inventory-items/{itemID} [delete]
func (h *inventoryHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	if err := h.inventoryService.DeleteItem(c.Request.Context(), c.Param("companyID"), itemID); err != nil {
		handleServiceError(c, logger.With(slog.String("item_id", itemID)), "delete stock item", err)
		return
	}

	logger.Info("Stock item deleted", slog.String("item_id", itemID))
	c.Status(http.StatusNoContent)
}

// listStockTransactions godoc
// @Summary List stock movements of an item
// @Tags inventory
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   itemID path string true "Item ID"
// @Success 200 {object} dto.SuccessResponse{data=[]domain.StockTransaction}
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/inventory-items/{itemID}/stock-transactions [get]
func (h *inventoryHandler) listStockTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txns, err := h.inventoryService.ListStockTransactions(c.Request.Context(), c.Param("companyID"), c.Param("itemID"))
	if err != nil {
		handleServiceError(c, logger, "list stock transactions", err)
		return
	}
	respond(c, http.StatusOK, txns)
}

// listGSTEntries godoc
// @Summary List GST entries
// @Description The tax register built from vouchers carrying GST details
// @Tags gst
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   startDate query string false "Start date (YYYY-MM-DD)"
// @Param   endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.SuccessResponse{data=[]domain.GSTEntry}
// @Failure 400 {object} dto.ErrorResponse "Invalid dates"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/gst-entries [get]
func (h *inventoryHandler) listGSTEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.GSTEntriesParams
	if !bindQuery(c, logger, &params) {
		return
	}

	entries, err := h.inventoryService.ListGSTEntries(c.Request.Context(), c.Param("companyID"), params)
	if err != nil {
		handleServiceError(c, logger, "list GST entries", err)
		return
	}
	respond(c, http.StatusOK, entries)
}
