package model

// Filter is a conjunctive substring predicate against one field.
// The key "all" marks the UI default state and always passes.
type Filter struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// FilterKeyAll makes a filter a pass-through marker.
const FilterKeyAll = "all"

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortKey is one entry of the active multi-key sort order.
type SortKey struct {
	Key       string `json:"key"`
	Direction string `json:"direction"`
}

// MaxSortKeys caps the active sort order; adding one more evicts the
// oldest key.
const MaxSortKeys = 3

// View is a named snapshot of the filter/column/sort configuration,
// immutable once saved except for delete.
type View struct {
	ID             string    `gorm:"default:(-)"`
	Name           string
	UserID         string
	Filters        []Filter  `gorm:"serializer:json"`
	VisibleColumns []string  `gorm:"serializer:json"`
	SortOrder      []SortKey `gorm:"serializer:json"`
}

func (View) TableName() string {
	return "server_views"
}
