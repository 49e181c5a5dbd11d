package routes

import (
	"github.com/gin-gonic/gin"

	"warehouse-ledger/src/handlers"
)

func RegisterItemRoutes(r *gin.RouterGroup, handler *handlers.ItemHandler) {
	r.GET("", handler.List)
	r.GET("/low-stock", handler.ListLowStock)
	r.GET("/:id", handler.Get)
	r.POST("", handler.Create)
	r.PUT("/:id", handler.Update)
	r.DELETE("/:id", handler.Delete)
}

func RegisterTransactionRoutes(r *gin.RouterGroup, handler *handlers.TransactionHandler) {
	r.GET("", handler.List)
	r.GET("/:id", handler.Get)
	r.POST("", handler.Commit)
	r.PUT("/:id", handler.Edit)
	r.DELETE("/:id", handler.Delete)
}

func RegisterImportRoutes(r *gin.RouterGroup, handler *handlers.ImportHandler) {
	r.POST("/reconcile", handler.Reconcile)
	r.GET("/adjustments", handler.ListAdjustments)
}

func RegisterRejectLogRoutes(r *gin.RouterGroup, handler *handlers.RejectLogHandler) {
	r.GET("", handler.List)
	r.POST("", handler.Add)
	r.DELETE("/:id", handler.Delete)
}
