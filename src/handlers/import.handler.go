package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warehouse-ledger/src/models"
	"warehouse-ledger/src/parsers"
	"warehouse-ledger/src/repositories"
	"warehouse-ledger/src/services"
)

type ImportHandler struct {
	Service     *services.ImportService
	Adjustments *repositories.AdjustmentRepository
}

// Reconcile - POST /import/reconcile (multipart: file, type)
// Parses the uploaded spreadsheet and reconciles it against the
// catalog. The returned cart is what a subsequent commit should carry.
func (h *ImportHandler) Reconcile(c *gin.Context) {
	txnType := models.TransactionType(c.PostForm("type"))
	if !txnType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "type must be Inbound or Outbound"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "missing file upload"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "cannot open uploaded file"})
		return
	}
	defer file.Close()

	rows, err := parsers.ParseImportXLSX(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result, err := h.Service.Reconcile(txnType, rows, fileHeader.Filename)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"cart":              result.Cart,
		"new_items_created": result.NewItemsCreated,
		"stock_adjustments": result.StockAdjustments,
		"row_errors":        result.RowErrors,
		"counts": gin.H{
			"items_added":    len(result.Cart),
			"items_created":  len(result.NewItemsCreated),
			"stock_adjusted": len(result.StockAdjustments),
			"row_errors":     len(result.RowErrors),
		},
	})
}

// ListAdjustments - GET /import/adjustments
// Audit trail of every stock level the import reconciler changed.
func (h *ImportHandler) ListAdjustments(c *gin.Context) {
	page, limit := pagination(c)

	adjustments, total, err := h.Adjustments.List(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	totalPages := (int(total) + limit - 1) / limit

	c.JSON(http.StatusOK, gin.H{
		"data": adjustments,
		"meta": gin.H{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}
