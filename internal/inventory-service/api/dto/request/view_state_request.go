package request

type FilterRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}

type SearchRequest struct {
	Search string `json:"search"`
}

type SortKeyRequest struct {
	Key       string `json:"key" binding:"required"`
	Direction string `json:"direction" binding:"required,oneof=asc desc"`
}

type SortOrderRequest struct {
	Keys []SortKeyRequest `json:"keys" binding:"dive"`
}

type PageRequest struct {
	Page int `json:"page" binding:"required,gte=1"`
}

type PageSizeRequest struct {
	PageSize int `json:"page_size" binding:"required,gte=1"`
}

type ColumnsRequest struct {
	Columns []string `json:"columns" binding:"required,min=1"`
}

type SaveViewRequest struct {
	Name string `json:"name" binding:"required"`
}

type BulkTagRequest struct {
	Tag string `json:"tag" binding:"required"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}
