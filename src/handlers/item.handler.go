package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"warehouse-ledger/src/models"
	"warehouse-ledger/src/requests"
	"warehouse-ledger/src/services"
)

type ItemHandler struct {
	Service *services.ItemService
}

// Create - POST /items
func (h *ItemHandler) Create(c *gin.Context) {
	var req requests.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	item := &models.Item{
		SKU:            req.SKU,
		Name:           req.Name,
		Category:       req.Category,
		Location:       req.Location,
		Price:          decimal.NewFromFloat(req.Price),
		Unit:           req.Unit,
		SecondaryUnit:  req.SecondaryUnit,
		ConversionRate: req.ConversionRate,
		CurrentStock:   req.OpeningStock,
		MinLevel:       req.MinLevel,
		Status:         models.ItemStatus(req.Status),
	}

	if err := h.Service.Create(item); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "item": item})
}

// Update - PUT /items/:id
func (h *ItemHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid item id"})
		return
	}

	var req requests.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	update := services.ItemUpdate{
		Name:           req.Name,
		Category:       req.Category,
		Location:       req.Location,
		Price:          req.Price,
		Unit:           req.Unit,
		SecondaryUnit:  req.SecondaryUnit,
		ConversionRate: req.ConversionRate,
		MinLevel:       req.MinLevel,
		Status:         models.ItemStatus(req.Status),
	}

	item, err := h.Service.Update(id, update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
}

// Delete - DELETE /items/:id (no cascade, no-op when missing)
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid item id"})
		return
	}

	if err := h.Service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Get - GET /items/:id
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid item id"})
		return
	}

	item, err := h.Service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
}

// List - GET /items?page=&limit=
func (h *ItemHandler) List(c *gin.Context) {
	page, limit := pagination(c)

	items, total, err := h.Service.List(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	totalPages := (int(total) + limit - 1) / limit

	c.JSON(http.StatusOK, gin.H{
		"data": items,
		"meta": gin.H{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}

// ListLowStock - GET /items/low-stock
func (h *ItemHandler) ListLowStock(c *gin.Context) {
	items, err := h.Service.ListLowStock()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}
