package store

import (
	"context"
	"fmt"
	"sort"

	apperrors "server-inventory-dashboard/internal/inventory-service/errors"
	"server-inventory-dashboard/internal/inventory-service/model"

	"go.uber.org/zap"
)

// AddFilter appends a conjunctive filter and resets to the first page:
// the new result set invalidates the old page position.
func (s *inventoryStore) AddFilter(filter model.Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = append(s.filters, filter)
	s.page = 1
	s.recompute()
}

func (s *inventoryStore) RemoveFilter(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.filters) {
		return
	}
	s.filters = append(s.filters[:index], s.filters[index+1:]...)
	s.page = 1
	s.recompute()
}

func (s *inventoryStore) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = nil
	s.page = 1
	s.recompute()
}

func (s *inventoryStore) SetSearch(search string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = search
	s.page = 1
	s.recompute()
}

// SetSortKeys replaces the active sort order. More than MaxSortKeys
// keys keeps only the newest ones. Sorting does not reset the page.
func (s *inventoryStore) SetSortKeys(keys []model.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(keys) > model.MaxSortKeys {
		keys = keys[len(keys)-model.MaxSortKeys:]
	}
	s.sortKeys = append([]model.SortKey{}, keys...)
	s.recompute()
}

// AddSortKey appends one sort key. A key already in the order just gets
// its direction updated; otherwise the key is appended and, past the
// cap, the oldest key is evicted.
func (s *inventoryStore) AddSortKey(key model.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sortKeys {
		if s.sortKeys[i].Key == key.Key {
			s.sortKeys[i].Direction = key.Direction
			s.recompute()
			return
		}
	}
	s.sortKeys = append(s.sortKeys, key)
	if len(s.sortKeys) > model.MaxSortKeys {
		s.sortKeys = s.sortKeys[len(s.sortKeys)-model.MaxSortKeys:]
	}
	s.recompute()
}

func (s *inventoryStore) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = clampPage(page, s.totalPages)
}

func (s *inventoryStore) SetPageSize(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if size <= 0 {
		size = DefaultPageSize
	}
	s.pageSize = size
	s.page = 1
	s.recompute()
}

func (s *inventoryStore) SetVisibleColumns(columns []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(columns) == 0 {
		return
	}
	s.visibleColumns = append([]string{}, columns...)
}

// ToggleColumn flips a column's visibility. The last visible column
// cannot be hidden.
func (s *inventoryStore) ToggleColumn(column string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.visibleColumns {
		if c == column {
			if len(s.visibleColumns) <= 1 {
				return
			}
			s.visibleColumns = append(s.visibleColumns[:i], s.visibleColumns[i+1:]...)
			return
		}
	}
	s.visibleColumns = append(s.visibleColumns, column)
}

// SaveView snapshots the current filter/column/sort configuration into
// a named view, persists it and marks it active.
func (s *inventoryStore) SaveView(ctx context.Context, name string) (model.View, error) {
	s.mu.RLock()
	view := model.View{
		Name:           name,
		UserID:         s.cfg.Actor,
		Filters:        append([]model.Filter{}, s.filters...),
		VisibleColumns: append([]string{}, s.visibleColumns...),
		SortOrder:      append([]model.SortKey{}, s.sortKeys...),
	}
	s.mu.RUnlock()

	gctx, cancel := s.gatewayCtx(ctx)
	defer cancel()
	saved, err := s.views.CreateView(gctx, view)
	if err != nil {
		s.logger.Error("failed to save view", zap.String("view_name", name), zap.Error(err))
		return model.View{}, fmt.Errorf("InventoryStore.SaveView: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.savedViews = append(s.savedViews, saved)
	s.activeViewID = saved.ID
	return saved, nil
}

// LoadView replays a saved view's configuration. An unknown id leaves
// the state unchanged.
func (s *inventoryStore) LoadView(viewID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, view := range s.savedViews {
		if view.ID != viewID {
			continue
		}
		s.filters = append([]model.Filter{}, view.Filters...)
		s.visibleColumns = append([]string{}, view.VisibleColumns...)
		s.sortKeys = append([]model.SortKey{}, view.SortOrder...)
		s.activeViewID = viewID
		s.page = 1
		s.recompute()
		return nil
	}
	return fmt.Errorf("InventoryStore.LoadView: %w", apperrors.ErrViewNotFound)
}

func (s *inventoryStore) DeleteView(ctx context.Context, viewID string) error {
	gctx, cancel := s.gatewayCtx(ctx)
	defer cancel()
	if err := s.views.DeleteViewByID(gctx, viewID); err != nil {
		s.logger.Error("failed to delete view", zap.String("view_id", viewID), zap.Error(err))
		return fmt.Errorf("InventoryStore.DeleteView: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, view := range s.savedViews {
		if view.ID == viewID {
			s.savedViews = append(s.savedViews[:i], s.savedViews[i+1:]...)
			break
		}
	}
	if s.activeViewID == viewID {
		s.activeViewID = ""
	}
	return nil
}

func (s *inventoryStore) ToggleSelect(serverID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.selected[serverID]; ok {
		delete(s.selected, serverID)
	} else {
		s.selected[serverID] = struct{}{}
	}
}

// SelectAllOnPage toggles selection for exactly the current page slice:
// if every record on the page is selected they are deselected,
// otherwise all of them are selected. Other pages are never touched.
func (s *inventoryStore) SelectAllOnPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	pageIDs := make([]string, 0, s.pageSize)
	for _, server := range s.pageSliceLocked() {
		pageIDs = append(pageIDs, server.ID)
	}
	allSelected := len(pageIDs) > 0
	for _, id := range pageIDs {
		if _, ok := s.selected[id]; !ok {
			allSelected = false
			break
		}
	}
	for _, id := range pageIDs {
		if allSelected {
			delete(s.selected, id)
		} else {
			s.selected[id] = struct{}{}
		}
	}
}

func (s *inventoryStore) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[string]struct{})
}

func (s *inventoryStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	selected := make([]string, 0, len(s.selected))
	for id := range s.selected {
		selected = append(selected, id)
	}
	sort.Strings(selected)
	return Snapshot{
		Filters:        append([]model.Filter{}, s.filters...),
		Search:         s.search,
		SortKeys:       append([]model.SortKey{}, s.sortKeys...),
		Page:           s.page,
		PageSize:       s.pageSize,
		TotalPages:     s.totalPages,
		TotalRecords:   len(s.records),
		FilteredCount:  len(s.derived),
		VisibleColumns: append([]string{}, s.visibleColumns...),
		SavedViews:     append([]model.View{}, s.savedViews...),
		ActiveViewID:   s.activeViewID,
		SelectedIDs:    selected,
		IsLoading:      s.isLoading,
	}
}

func (s *inventoryStore) Servers() []model.Server {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Server{}, s.records...)
}

func (s *inventoryStore) DerivedView() []model.Server {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Server{}, s.derived...)
}

// PageSlice returns the derived view's current page. The slice is a
// pure projection, recomputed on demand.
func (s *inventoryStore) PageSlice() []model.Server {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Server{}, s.pageSliceLocked()...)
}

func (s *inventoryStore) pageSliceLocked() []model.Server {
	start := (s.page - 1) * s.pageSize
	if start >= len(s.derived) {
		return nil
	}
	end := start + s.pageSize
	if end > len(s.derived) {
		end = len(s.derived)
	}
	return s.derived[start:end]
}

func (s *inventoryStore) HistoryFor(serverID string) []model.History {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.History{}, s.history[serverID]...)
}
