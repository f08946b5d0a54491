package routes

import (
	"server-inventory-dashboard/internal/inventory-service/api/handler"
	"server-inventory-dashboard/pkg/middleware"

	"github.com/gin-gonic/gin"
)

const (
	ScopeInventoryRead   = "inventory:read"
	ScopeInventoryCreate = "inventory:create"
	ScopeInventoryUpdate = "inventory:update"
	ScopeInventoryDelete = "inventory:delete"
)

func SetUpServerRoutes(r *gin.Engine, handler handler.ServerHandler, m middleware.ScopeMiddleware) {
	serverRoutes := r.Group("/servers")
	serverRoutes.GET("", m.RequireScope(ScopeInventoryRead), handler.ListServers())
	serverRoutes.POST("", m.RequireScope(ScopeInventoryCreate), handler.CreateServer())
	serverRoutes.PATCH("/:id", m.RequireScope(ScopeInventoryUpdate), handler.UpdateServer())
	serverRoutes.DELETE("/:id", m.RequireScope(ScopeInventoryDelete), handler.DeleteServer())
	serverRoutes.POST("/bulk-delete", m.RequireScope(ScopeInventoryDelete), handler.BulkDeleteServers())
	serverRoutes.POST("/bulk-tag", m.RequireScope(ScopeInventoryUpdate), handler.BulkTagServers())
	serverRoutes.GET("/:id/history", m.RequireScope(ScopeInventoryRead), handler.GetServerHistory())
	serverRoutes.GET("/stats", m.RequireScope(ScopeInventoryRead), handler.GetStats())
	serverRoutes.GET("/export", m.RequireScope(ScopeInventoryRead), handler.ExportServers())
	serverRoutes.POST("/import", m.RequireScope(ScopeInventoryCreate), handler.ImportServersFromExcelFile())
	serverRoutes.POST("/sync", m.RequireScope(ScopeInventoryUpdate), handler.SyncServers())
	serverRoutes.POST("/reload", m.RequireScope(ScopeInventoryRead), handler.ReloadServers())
}

func SetUpViewRoutes(r *gin.Engine, handler handler.ViewHandler, m middleware.ScopeMiddleware) {
	stateRoutes := r.Group("/view-state")
	stateRoutes.GET("", m.RequireScope(ScopeInventoryRead), handler.GetViewState())
	stateRoutes.POST("/filters", m.RequireScope(ScopeInventoryRead), handler.AddFilter())
	stateRoutes.DELETE("/filters/:index", m.RequireScope(ScopeInventoryRead), handler.RemoveFilter())
	stateRoutes.DELETE("/filters", m.RequireScope(ScopeInventoryRead), handler.ResetFilters())
	stateRoutes.PUT("/search", m.RequireScope(ScopeInventoryRead), handler.SetSearch())
	stateRoutes.PUT("/sort", m.RequireScope(ScopeInventoryRead), handler.SetSortOrder())
	stateRoutes.POST("/sort", m.RequireScope(ScopeInventoryRead), handler.AddSortKey())
	stateRoutes.PUT("/page", m.RequireScope(ScopeInventoryRead), handler.SetPage())
	stateRoutes.PUT("/page-size", m.RequireScope(ScopeInventoryRead), handler.SetPageSize())
	stateRoutes.PUT("/columns", m.RequireScope(ScopeInventoryRead), handler.SetColumns())
	stateRoutes.POST("/columns/:column/toggle", m.RequireScope(ScopeInventoryRead), handler.ToggleColumn())
	stateRoutes.POST("/selection/:id/toggle", m.RequireScope(ScopeInventoryRead), handler.ToggleSelection())
	stateRoutes.POST("/selection/page", m.RequireScope(ScopeInventoryRead), handler.SelectPage())
	stateRoutes.DELETE("/selection", m.RequireScope(ScopeInventoryRead), handler.ClearSelection())

	viewRoutes := r.Group("/views")
	viewRoutes.GET("", m.RequireScope(ScopeInventoryRead), handler.ListViews())
	viewRoutes.POST("", m.RequireScope(ScopeInventoryRead), handler.SaveView())
	viewRoutes.POST("/:id/load", m.RequireScope(ScopeInventoryRead), handler.LoadView())
	viewRoutes.DELETE("/:id", m.RequireScope(ScopeInventoryRead), handler.DeleteView())
}
