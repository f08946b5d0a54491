package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockhandler "server-inventory-dashboard/internal/inventory-service/mocks/api/handler"
	"server-inventory-dashboard/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSetUpServerRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockHandler := mockhandler.NewMockServerHandler(ctrl)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	emptySuccessHandler := func(c *gin.Context) {
		c.Status(http.StatusOK)
	}

	mockHandler.EXPECT().ListServers().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().CreateServer().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().UpdateServer().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().DeleteServer().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().BulkDeleteServers().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().BulkTagServers().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetServerHistory().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetStats().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ExportServers().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ImportServersFromExcelFile().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().SyncServers().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ReloadServers().Return(emptySuccessHandler).AnyTimes()

	SetUpServerRoutes(r, mockHandler, middleware.NewScopeMiddleware(false))

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "List Servers Route",
			method:         http.MethodGet,
			path:           "/servers",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Create Server Route",
			method:         http.MethodPost,
			path:           "/servers",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Update Server Route",
			method:         http.MethodPatch,
			path:           "/servers/some-id",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Delete Server Route",
			method:         http.MethodDelete,
			path:           "/servers/some-id",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Bulk Delete Route",
			method:         http.MethodPost,
			path:           "/servers/bulk-delete",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Bulk Tag Route",
			method:         http.MethodPost,
			path:           "/servers/bulk-tag",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Server History Route",
			method:         http.MethodGet,
			path:           "/servers/some-id/history",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Stats Route",
			method:         http.MethodGet,
			path:           "/servers/stats",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Export Servers Route",
			method:         http.MethodGet,
			path:           "/servers/export",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Import Servers Route",
			method:         http.MethodPost,
			path:           "/servers/import",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Sync Servers Route",
			method:         http.MethodPost,
			path:           "/servers/sync",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Reload Servers Route",
			method:         http.MethodPost,
			path:           "/servers/reload",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestSetUpViewRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockHandler := mockhandler.NewMockViewHandler(ctrl)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	emptySuccessHandler := func(c *gin.Context) {
		c.Status(http.StatusOK)
	}

	mockHandler.EXPECT().GetViewState().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().AddFilter().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().RemoveFilter().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ResetFilters().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().SetSearch().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().SetSortOrder().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().AddSortKey().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().SetPage().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().SetPageSize().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().SetColumns().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ToggleColumn().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ToggleSelection().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().SelectPage().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ClearSelection().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ListViews().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().SaveView().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().LoadView().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().DeleteView().Return(emptySuccessHandler).AnyTimes()

	SetUpViewRoutes(r, mockHandler, middleware.NewScopeMiddleware(false))

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "Get View State Route",
			method:         http.MethodGet,
			path:           "/view-state",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Add Filter Route",
			method:         http.MethodPost,
			path:           "/view-state/filters",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Remove Filter Route",
			method:         http.MethodDelete,
			path:           "/view-state/filters/0",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Reset Filters Route",
			method:         http.MethodDelete,
			path:           "/view-state/filters",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Set Search Route",
			method:         http.MethodPut,
			path:           "/view-state/search",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Set Sort Order Route",
			method:         http.MethodPut,
			path:           "/view-state/sort",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Add Sort Key Route",
			method:         http.MethodPost,
			path:           "/view-state/sort",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Set Page Route",
			method:         http.MethodPut,
			path:           "/view-state/page",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Set Page Size Route",
			method:         http.MethodPut,
			path:           "/view-state/page-size",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Set Columns Route",
			method:         http.MethodPut,
			path:           "/view-state/columns",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Toggle Column Route",
			method:         http.MethodPost,
			path:           "/view-state/columns/serverName/toggle",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Toggle Selection Route",
			method:         http.MethodPost,
			path:           "/view-state/selection/some-id/toggle",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Select Page Route",
			method:         http.MethodPost,
			path:           "/view-state/selection/page",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Clear Selection Route",
			method:         http.MethodDelete,
			path:           "/view-state/selection",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "List Views Route",
			method:         http.MethodGet,
			path:           "/views",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Save View Route",
			method:         http.MethodPost,
			path:           "/views",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Load View Route",
			method:         http.MethodPost,
			path:           "/views/some-id/load",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Delete View Route",
			method:         http.MethodDelete,
			path:           "/views/some-id",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
