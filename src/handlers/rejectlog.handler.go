package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"warehouse-ledger/src/models"
	"warehouse-ledger/src/requests"
	"warehouse-ledger/src/services"
)

type RejectLogHandler struct {
	Service *services.RejectLogService
}

// Add - POST /reject-logs
func (h *RejectLogHandler) Add(c *gin.Context) {
	var req requests.AddRejectLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	items := make(models.RejectItems, 0, len(req.Items))
	for _, r := range req.Items {
		items = append(items, models.RejectItemDetail{
			ItemID:         r.ItemID,
			ItemName:       r.ItemName,
			SKU:            r.SKU,
			Quantity:       r.Quantity,
			Unit:           r.Unit,
			ConversionRate: r.ConversionRate,
			Reason:         r.Reason,
		})
	}

	entry := &models.RejectLogEntry{
		Date:  req.Date,
		Items: items,
		Notes: req.Notes,
	}

	if err := h.Service.Add(entry); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "entry": entry})
}

// Delete - DELETE /reject-logs/:id (no-op when missing)
func (h *RejectLogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid entry id"})
		return
	}

	if err := h.Service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List - GET /reject-logs?page=&limit=
func (h *RejectLogHandler) List(c *gin.Context) {
	page, limit := pagination(c)

	entries, total, err := h.Service.List(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	totalPages := (int(total) + limit - 1) / limit

	c.JSON(http.StatusOK, gin.H{
		"data": entries,
		"meta": gin.H{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}
