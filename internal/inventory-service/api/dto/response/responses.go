package response

import (
	"time"

	"server-inventory-dashboard/internal/inventory-service/model"
)

type Response struct {
	Message string `json:"message"`
}

type ServerListResponse struct {
	Servers       []ServerInfoResponse `json:"servers"`
	Page          int                  `json:"page"`
	PageSize      int                  `json:"page_size"`
	TotalPages    int                  `json:"total_pages"`
	TotalRecords  int                  `json:"total_records"`
	FilteredCount int                  `json:"filtered_count"`
}

type ViewStateResponse struct {
	Filters        []model.Filter  `json:"filters"`
	Search         string          `json:"search"`
	SortKeys       []model.SortKey `json:"sort_keys"`
	Page           int             `json:"page"`
	PageSize       int             `json:"page_size"`
	TotalPages     int             `json:"total_pages"`
	VisibleColumns []string        `json:"visible_columns"`
	ActiveViewID   string          `json:"active_view_id,omitempty"`
	SelectedIDs    []string        `json:"selected_ids"`
	IsLoading      bool            `json:"is_loading"`
}

type ViewResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	UserID         string          `json:"user_id"`
	Filters        []model.Filter  `json:"filters"`
	VisibleColumns []string        `json:"visible_columns"`
	SortOrder      []model.SortKey `json:"sort_order"`
}

func NewViewResponse(v model.View) ViewResponse {
	return ViewResponse{
		ID:             v.ID,
		Name:           v.Name,
		UserID:         v.UserID,
		Filters:        v.Filters,
		VisibleColumns: v.VisibleColumns,
		SortOrder:      v.SortOrder,
	}
}

type HistoryResponse struct {
	ID        string    `json:"id"`
	ServerID  string    `json:"server_id"`
	Field     string    `json:"field"`
	OldValue  string    `json:"old_value"`
	NewValue  string    `json:"new_value"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
}

func NewHistoryResponses(entries []model.History) []HistoryResponse {
	out := make([]HistoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryResponse{
			ID:        e.ID,
			ServerID:  e.ServerID,
			Field:     e.Field,
			OldValue:  e.OldValue,
			NewValue:  e.NewValue,
			Timestamp: e.Timestamp,
			User:      e.User,
		})
	}
	return out
}

type ImportServerResponse struct {
	ImportedCount int      `json:"imported_count"`
	FailedCount   int      `json:"failed_count"`
	FailedServers []string `json:"failed_servers,omitempty"`
}

type SyncResponse struct {
	SyncedCount int `json:"synced_count"`
}

type BulkTagResponse struct {
	TaggedCount int `json:"tagged_count"`
}
