package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"server-inventory-dashboard/internal/inventory-service/api/dto/request"
	"server-inventory-dashboard/internal/inventory-service/api/dto/response"
	apperrors "server-inventory-dashboard/internal/inventory-service/errors"
	"server-inventory-dashboard/internal/inventory-service/export"
	"server-inventory-dashboard/internal/inventory-service/model"
	"server-inventory-dashboard/internal/inventory-service/stats"
	"server-inventory-dashboard/internal/inventory-service/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ServerHandler interface {
	ListServers() gin.HandlerFunc
	CreateServer() gin.HandlerFunc
	UpdateServer() gin.HandlerFunc
	DeleteServer() gin.HandlerFunc
	BulkDeleteServers() gin.HandlerFunc
	BulkTagServers() gin.HandlerFunc
	GetServerHistory() gin.HandlerFunc
	GetStats() gin.HandlerFunc
	ExportServers() gin.HandlerFunc
	ImportServersFromExcelFile() gin.HandlerFunc
	SyncServers() gin.HandlerFunc
	ReloadServers() gin.HandlerFunc
}

type serverHandler struct {
	logger    *zap.Logger
	inventory store.InventoryStore
	validator *validator.Validate
}

func NewServerHandler(logger *zap.Logger, inventory store.InventoryStore) ServerHandler {
	return &serverHandler{
		logger:    logger,
		inventory: inventory,
		validator: validator.New(),
	}
}

func (*serverHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "ipv4":
		return fmt.Sprintf("The %s field is not a valid ipv4", err.Field())
	case "datetime":
		return fmt.Sprintf("The %s field is not a valid date, use YYYY-MM-DD format", err.Field())
	case "min":
		return fmt.Sprintf("The %s field must contain at least %s entries", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (s *serverHandler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var validatorError validator.ValidationErrors
		if errors.As(err, &validatorError) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: s.formatValidationError(validatorError[0]),
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

func (s *serverHandler) loggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	var data []zapcore.Field
	data = append(data, zap.Error(err))
	data = append(data, zap.String("http_method", c.Request.Method))
	data = append(data, zap.String("http_path", c.Request.URL.Path))
	userID := c.GetHeader("X-User-Id")
	if userID != "" {
		data = append(data, zap.String("user_id", userID))
	}
	s.logger.Log(logLevel, errDescription, data...)
}

func (s *serverHandler) ListServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := s.inventory.Snapshot()
		c.JSON(http.StatusOK, response.ServerListResponse{
			Servers:       response.NewServerInfoResponses(s.inventory.PageSlice()),
			Page:          snap.Page,
			PageSize:      snap.PageSize,
			TotalPages:    snap.TotalPages,
			TotalRecords:  snap.TotalRecords,
			FilteredCount: snap.FilteredCount,
		})
	}
}

func (s *serverHandler) CreateServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CreateServerRequest
		if !s.bindJSON(c, &req) {
			return
		}
		created, err := s.inventory.Create(c, req.ToModel())
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNameAlreadyExists):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Server name already exists",
				})
			default:
				err = fmt.Errorf("ServerHandler.CreateServer: %w", err)
				s.loggingError(c, err, "failed to create server", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusCreated, response.NewServerInfoResponse(created))
	}
}

func (s *serverHandler) UpdateServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpdateServerRequest
		if !s.bindJSON(c, &req) {
			return
		}
		id := c.Param("id")
		updated, err := s.inventory.Update(c, id, req.ToPatch())
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Server not found",
				})
			default:
				err = fmt.Errorf("ServerHandler.UpdateServer: %w", err)
				s.loggingError(c, err, fmt.Sprintf("failed to update server %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.NewServerInfoResponse(updated))
	}
}

func (s *serverHandler) DeleteServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := s.inventory.Delete(c, id)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Server not found",
				})
			default:
				err = fmt.Errorf("ServerHandler.DeleteServer: %w", err)
				s.loggingError(c, err, fmt.Sprintf("failed to delete server %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Server deleted",
		})
	}
}

func (s *serverHandler) BulkDeleteServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.BulkDeleteRequest
		if !s.bindJSON(c, &req) {
			return
		}
		if err := s.inventory.DeleteMany(c, req.IDs); err != nil {
			err = fmt.Errorf("ServerHandler.BulkDeleteServers: %w", err)
			s.loggingError(c, err, "failed to delete servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Some servers could not be deleted",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Servers deleted",
		})
	}
}

func (s *serverHandler) BulkTagServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.BulkTagRequest
		if !s.bindJSON(c, &req) {
			return
		}
		tagged, err := s.inventory.BulkTag(c, req.Tag)
		if err != nil {
			err = fmt.Errorf("ServerHandler.BulkTagServers: %w", err)
			s.loggingError(c, err, "failed to tag servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Some servers could not be tagged",
			})
			return
		}
		c.JSON(http.StatusOK, response.BulkTagResponse{
			TaggedCount: tagged,
		})
	}
}

func (s *serverHandler) GetServerHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		found := false
		for _, server := range s.inventory.Servers() {
			if server.ID == id {
				found = true
				break
			}
		}
		if !found {
			c.JSON(http.StatusNotFound, response.Response{
				Message: "Server not found",
			})
			return
		}
		c.JSON(http.StatusOK, response.NewHistoryResponses(s.inventory.HistoryFor(id)))
	}
}

func (s *serverHandler) GetStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, stats.Compute(s.inventory.Servers()))
	}
}

func (s *serverHandler) ExportServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		format := c.DefaultQuery("format", "csv")
		if format != "csv" && format != "xlsx" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid format",
			})
			return
		}
		servers := s.inventory.DerivedView()
		columns := s.inventory.Snapshot().VisibleColumns
		fileName := export.FileName(format)
		if format == "csv" {
			c.Header("Content-Type", "text/csv; charset=utf-8")
			c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
			c.Data(http.StatusOK, "text/csv", export.ToCSV(servers, columns))
			return
		}
		file, err := export.ToExcel(servers, columns)
		if err != nil {
			err = fmt.Errorf("ServerHandler.ExportServers: %w", err)
			s.loggingError(c, err, "failed to export servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		defer file.Close()
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("ServerHandler.ExportServers: %w", err)
			s.loggingError(c, err, "failed to export servers", zap.ErrorLevel)
			return
		}
		c.Status(http.StatusOK)
	}
}

var errSheetNotFound = errors.New("sheet not found")
var errEmptyFile = errors.New("file is empty")
var errMissingRequiredColumn = errors.New("missing required column")

func (s *serverHandler) ImportServersFromExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		ext := filepath.Ext(file.Filename)
		if ext != ".xlsx" && ext != ".xls" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "File must be excel file",
			})
			return
		}
		importSheet := c.Query("sheet_name")

		validServers, invalidServers, err := s.extractServersFromExcelFile(file, importSheet)
		if err != nil {
			switch {
			case errors.Is(err, errEmptyFile):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "File is empty",
				})
			case errors.Is(err, errSheetNotFound):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Sheet not found",
				})
			case errors.Is(err, errMissingRequiredColumn):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Missing required column",
				})
			default:
				err = fmt.Errorf("ServerHandler.ImportServersFromExcelFile: %w", err)
				s.loggingError(c, err, "failed to import servers", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}

		imported, err := s.inventory.ImportServers(c, validServers)
		if err != nil {
			err = fmt.Errorf("ServerHandler.ImportServersFromExcelFile: %w", err)
			s.loggingError(c, err, "failed to import servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.ImportServerResponse{
			ImportedCount: imported,
			FailedCount:   len(invalidServers),
			FailedServers: invalidServers,
		})
	}
}

func (s *serverHandler) extractServersFromExcelFile(file *multipart.FileHeader, importSheet string) (validServers []model.Server, invalidServers []string, err error) {
	fileContent, err := file.Open()
	if err != nil {
		return
	}
	defer fileContent.Close()

	xlsx, err := excelize.OpenReader(fileContent)
	if err != nil {
		return
	}
	defer xlsx.Close()

	if importSheet == "" {
		importSheet = xlsx.GetSheetName(0)
	} else {
		index, _ := xlsx.GetSheetIndex(importSheet)
		if index == -1 {
			err = errSheetNotFound
			return
		}
	}

	rows, err := xlsx.GetRows(importSheet)
	if err != nil {
		return
	}
	if len(rows) < 2 {
		err = errEmptyFile
		return
	}

	columnMap := make(map[string]int)
	for i, cell := range rows[0] {
		columnMap[strings.ToLower(strings.TrimSpace(cell))] = i
	}
	requiredColumns := []string{"server_name", "operating_system", "hardware_type", "server_type", "ip_address", "backup"}
	for _, requiredColumn := range requiredColumns {
		if _, ok := columnMap[requiredColumn]; !ok {
			err = errMissingRequiredColumn
			return
		}
	}

	cell := func(row []string, column string) string {
		idx, ok := columnMap[column]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		req := request.CreateServerRequest{
			ServerName:      cell(row, "server_name"),
			OperatingSystem: cell(row, "operating_system"),
			HardwareType:    cell(row, "hardware_type"),
			Company:         cell(row, "company"),
			ServerType:      cell(row, "server_type"),
			Location:        cell(row, "location"),
			IPAddress:       cell(row, "ip_address"),
			Backup:          cell(row, "backup"),
		}
		if raw := cell(row, "cores"); raw != "" {
			cores, e := strconv.Atoi(raw)
			if e != nil {
				invalidServers = append(invalidServers, req.ServerName)
				continue
			}
			req.Cores = &cores
		}
		if e := s.validator.Struct(req); e != nil {
			invalidServers = append(invalidServers, req.ServerName)
			continue
		}
		validServers = append(validServers, req.ToModel())
	}
	return
}

func (s *serverHandler) SyncServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		count, err := s.inventory.SyncAll(c)
		if err != nil {
			err = fmt.Errorf("ServerHandler.SyncServers: %w", err)
			s.loggingError(c, err, "failed to sync servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		s.logger.Info("synced servers",
			zap.Int("count", count),
			zap.Duration("duration", time.Since(started)))
		c.JSON(http.StatusOK, response.SyncResponse{
			SyncedCount: count,
		})
	}
}

func (s *serverHandler) ReloadServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.inventory.Load(c); err != nil {
			err = fmt.Errorf("ServerHandler.ReloadServers: %w", err)
			s.loggingError(c, err, "failed to reload servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Servers reloaded",
		})
	}
}
