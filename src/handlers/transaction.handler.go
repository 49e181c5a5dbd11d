package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"warehouse-ledger/src/models"
	"warehouse-ledger/src/requests"
	"warehouse-ledger/src/services"
)

type TransactionHandler struct {
	Service *services.TransactionService
}

func toCartItems(reqs []requests.CartItemRequest) models.CartItems {
	lines := make(models.CartItems, 0, len(reqs))
	for _, r := range reqs {
		lines = append(lines, models.CartItem{
			ItemID:        r.ItemID,
			Quantity:      r.Quantity,
			InputQuantity: r.InputQuantity,
			InputUnit:     r.InputUnit,
			CurrentStock:  r.CurrentStock,
		})
	}
	return lines
}

// Commit - POST /transactions
func (h *TransactionHandler) Commit(c *gin.Context) {
	var req requests.CommitTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	details := services.TransactionDetails{
		Date:         req.Date,
		SupplierName: req.SupplierName,
		PONumber:     req.PONumber,
		RINumber:     req.RINumber,
		SJNumber:     req.SJNumber,
		Photos:       models.Photos(req.Photos),
	}

	txn, err := h.Service.Commit(models.TransactionType(req.Type), toCartItems(req.Items), details)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"transaction": txn,
	})
}

// Edit - PUT /transactions/:id
func (h *TransactionHandler) Edit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid transaction id"})
		return
	}

	var req requests.EditTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	details := services.TransactionDetails{
		Date:         req.Date,
		SupplierName: req.SupplierName,
		PONumber:     req.PONumber,
		RINumber:     req.RINumber,
		SJNumber:     req.SJNumber,
		Photos:       models.Photos(req.Photos),
	}

	if err := h.Service.Edit(id, details, toCartItems(req.Items)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete - DELETE /transactions/:id (no-op when missing)
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid transaction id"})
		return
	}

	if err := h.Service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Get - GET /transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid transaction id"})
		return
	}

	txn, err := h.Service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "transaction": txn})
}

// List - GET /transactions?type=&page=&limit=
func (h *TransactionHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	txnType := models.TransactionType(c.Query("type"))
	if txnType != "" && !txnType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid transaction type"})
		return
	}

	transactions, total, err := h.Service.List(txnType, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	totalPages := (int(total) + limit - 1) / limit

	c.JSON(http.StatusOK, gin.H{
		"data": transactions,
		"meta": gin.H{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}

func intQuery(c *gin.Context, key string, fallback int) int {
	value, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return value
}
