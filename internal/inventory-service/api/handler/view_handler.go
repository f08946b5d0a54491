package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"server-inventory-dashboard/internal/inventory-service/api/dto/request"
	"server-inventory-dashboard/internal/inventory-service/api/dto/response"
	apperrors "server-inventory-dashboard/internal/inventory-service/errors"
	"server-inventory-dashboard/internal/inventory-service/model"
	"server-inventory-dashboard/internal/inventory-service/query"
	"server-inventory-dashboard/internal/inventory-service/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ViewHandler interface {
	GetViewState() gin.HandlerFunc
	AddFilter() gin.HandlerFunc
	RemoveFilter() gin.HandlerFunc
	ResetFilters() gin.HandlerFunc
	SetSearch() gin.HandlerFunc
	SetSortOrder() gin.HandlerFunc
	AddSortKey() gin.HandlerFunc
	SetPage() gin.HandlerFunc
	SetPageSize() gin.HandlerFunc
	SetColumns() gin.HandlerFunc
	ToggleColumn() gin.HandlerFunc
	ListViews() gin.HandlerFunc
	SaveView() gin.HandlerFunc
	LoadView() gin.HandlerFunc
	DeleteView() gin.HandlerFunc
	ToggleSelection() gin.HandlerFunc
	SelectPage() gin.HandlerFunc
	ClearSelection() gin.HandlerFunc
}

type viewHandler struct {
	logger    *zap.Logger
	inventory store.InventoryStore
}

func NewViewHandler(logger *zap.Logger, inventory store.InventoryStore) ViewHandler {
	return &viewHandler{
		logger:    logger,
		inventory: inventory,
	}
}

func (v *viewHandler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var validatorError validator.ValidationErrors
		if errors.As(err, &validatorError) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: fmt.Sprintf("The %s field is invalid", validatorError[0].Field()),
			})
		} else {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
		}
		return false
	}
	return true
}

func (v *viewHandler) loggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	var data []zapcore.Field
	data = append(data, zap.Error(err))
	data = append(data, zap.String("http_method", c.Request.Method))
	data = append(data, zap.String("http_path", c.Request.URL.Path))
	userID := c.GetHeader("X-User-Id")
	if userID != "" {
		data = append(data, zap.String("user_id", userID))
	}
	v.logger.Log(logLevel, errDescription, data...)
}

func (v *viewHandler) viewState(c *gin.Context) {
	snap := v.inventory.Snapshot()
	c.JSON(http.StatusOK, response.ViewStateResponse{
		Filters:        snap.Filters,
		Search:         snap.Search,
		SortKeys:       snap.SortKeys,
		Page:           snap.Page,
		PageSize:       snap.PageSize,
		TotalPages:     snap.TotalPages,
		VisibleColumns: snap.VisibleColumns,
		ActiveViewID:   snap.ActiveViewID,
		SelectedIDs:    snap.SelectedIDs,
		IsLoading:      snap.IsLoading,
	})
}

func (v *viewHandler) GetViewState() gin.HandlerFunc {
	return func(c *gin.Context) {
		v.viewState(c)
	}
}

func (v *viewHandler) AddFilter() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.FilterRequest
		if !v.bindJSON(c, &req) {
			return
		}
		if req.Key != model.FilterKeyAll && !query.IsField(req.Key) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: fmt.Sprintf("Unknown filter key %s", req.Key),
			})
			return
		}
		v.inventory.AddFilter(model.Filter{Key: req.Key, Value: req.Value})
		v.viewState(c)
	}
}

func (v *viewHandler) RemoveFilter() gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil || index < 0 {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid filter index",
			})
			return
		}
		v.inventory.RemoveFilter(index)
		v.viewState(c)
	}
}

func (v *viewHandler) ResetFilters() gin.HandlerFunc {
	return func(c *gin.Context) {
		v.inventory.ResetFilters()
		v.viewState(c)
	}
}

func (v *viewHandler) SetSearch() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.SearchRequest
		if !v.bindJSON(c, &req) {
			return
		}
		v.inventory.SetSearch(req.Search)
		v.viewState(c)
	}
}

func (v *viewHandler) SetSortOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.SortOrderRequest
		if !v.bindJSON(c, &req) {
			return
		}
		keys := make([]model.SortKey, 0, len(req.Keys))
		for _, key := range req.Keys {
			if !query.IsField(key.Key) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: fmt.Sprintf("Unknown sort key %s", key.Key),
				})
				return
			}
			keys = append(keys, model.SortKey{Key: key.Key, Direction: key.Direction})
		}
		v.inventory.SetSortKeys(keys)
		v.viewState(c)
	}
}

func (v *viewHandler) AddSortKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.SortKeyRequest
		if !v.bindJSON(c, &req) {
			return
		}
		if !query.IsField(req.Key) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: fmt.Sprintf("Unknown sort key %s", req.Key),
			})
			return
		}
		v.inventory.AddSortKey(model.SortKey{Key: req.Key, Direction: req.Direction})
		v.viewState(c)
	}
}

func (v *viewHandler) SetPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.PageRequest
		if !v.bindJSON(c, &req) {
			return
		}
		v.inventory.SetPage(req.Page)
		v.viewState(c)
	}
}

func (v *viewHandler) SetPageSize() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.PageSizeRequest
		if !v.bindJSON(c, &req) {
			return
		}
		v.inventory.SetPageSize(req.PageSize)
		v.viewState(c)
	}
}

func (v *viewHandler) SetColumns() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ColumnsRequest
		if !v.bindJSON(c, &req) {
			return
		}
		for _, column := range req.Columns {
			if !query.IsField(column) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: fmt.Sprintf("Unknown column %s", column),
				})
				return
			}
		}
		v.inventory.SetVisibleColumns(req.Columns)
		v.viewState(c)
	}
}

func (v *viewHandler) ToggleColumn() gin.HandlerFunc {
	return func(c *gin.Context) {
		column := c.Param("column")
		if !query.IsField(column) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: fmt.Sprintf("Unknown column %s", column),
			})
			return
		}
		v.inventory.ToggleColumn(column)
		v.viewState(c)
	}
}

func (v *viewHandler) ListViews() gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := v.inventory.Snapshot()
		views := make([]response.ViewResponse, 0, len(snap.SavedViews))
		for _, view := range snap.SavedViews {
			views = append(views, response.NewViewResponse(view))
		}
		c.JSON(http.StatusOK, views)
	}
}

func (v *viewHandler) SaveView() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.SaveViewRequest
		if !v.bindJSON(c, &req) {
			return
		}
		view, err := v.inventory.SaveView(c, req.Name)
		if err != nil {
			err = fmt.Errorf("ViewHandler.SaveView: %w", err)
			v.loggingError(c, err, "failed to save view", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusCreated, response.NewViewResponse(view))
	}
}

func (v *viewHandler) LoadView() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := v.inventory.LoadView(id); err != nil {
			if errors.Is(err, apperrors.ErrViewNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "View not found",
				})
				return
			}
			err = fmt.Errorf("ViewHandler.LoadView: %w", err)
			v.loggingError(c, err, fmt.Sprintf("failed to load view %s", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		v.viewState(c)
	}
}

func (v *viewHandler) DeleteView() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := v.inventory.DeleteView(c, id); err != nil {
			if errors.Is(err, apperrors.ErrViewNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "View not found",
				})
				return
			}
			err = fmt.Errorf("ViewHandler.DeleteView: %w", err)
			v.loggingError(c, err, fmt.Sprintf("failed to delete view %s", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "View deleted",
		})
	}
}

func (v *viewHandler) ToggleSelection() gin.HandlerFunc {
	return func(c *gin.Context) {
		v.inventory.ToggleSelect(c.Param("id"))
		v.viewState(c)
	}
}

func (v *viewHandler) SelectPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		v.inventory.SelectAllOnPage()
		v.viewState(c)
	}
}

func (v *viewHandler) ClearSelection() gin.HandlerFunc {
	return func(c *gin.Context) {
		v.inventory.ClearSelection()
		v.viewState(c)
	}
}
