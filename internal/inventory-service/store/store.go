// Package store holds the stateful core of the inventory dashboard: the
// authoritative server collection, the derived (filtered, searched,
// sorted) view, pagination and column state, saved views, the selection
// set and the per-server audit history. All mutations go through a
// Store instance; there is no package-level state.
package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"server-inventory-dashboard/internal/inventory-service/audit"
	apperrors "server-inventory-dashboard/internal/inventory-service/errors"
	"server-inventory-dashboard/internal/inventory-service/model"
	"server-inventory-dashboard/internal/inventory-service/query"
	"server-inventory-dashboard/internal/inventory-service/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultPageSize = 20
	defaultActor    = "system"
)

// DefaultVisibleColumns is the column set a fresh store starts with.
var DefaultVisibleColumns = []string{
	"serverName", "operatingSystem", "hardwareType", "company",
	"serverType", "location", "ipAddress", "backup",
}

// Config tunes a store instance. The zero value is usable.
type Config struct {
	PageSize int
	Actor    string
	// NumericAware makes numeric fields sort numerically instead of
	// lexicographically on their string form.
	NumericAware bool
	// GatewayTimeout bounds every persistence call. Zero keeps the
	// historical no-timeout behavior.
	GatewayTimeout time.Duration
}

// Snapshot is a consistent read of the store's view state.
type Snapshot struct {
	Filters        []model.Filter
	Search         string
	SortKeys       []model.SortKey
	Page           int
	PageSize       int
	TotalPages     int
	TotalRecords   int
	FilteredCount  int
	VisibleColumns []string
	SavedViews     []model.View
	ActiveViewID   string
	SelectedIDs    []string
	IsLoading      bool
}

type InventoryStore interface {
	Load(ctx context.Context) error
	Create(ctx context.Context, draft model.Server) (model.Server, error)
	Update(ctx context.Context, serverID string, patch model.ServerPatch) (model.Server, error)
	Delete(ctx context.Context, serverID string) error
	DeleteMany(ctx context.Context, serverIDs []string) error
	BulkTag(ctx context.Context, tag string) (int, error)
	ImportServers(ctx context.Context, servers []model.Server) (int, error)
	SyncAll(ctx context.Context) (int, error)

	AddFilter(filter model.Filter)
	RemoveFilter(index int)
	ResetFilters()
	SetSearch(search string)
	SetSortKeys(keys []model.SortKey)
	AddSortKey(key model.SortKey)
	SetPage(page int)
	SetPageSize(size int)
	SetVisibleColumns(columns []string)
	ToggleColumn(column string)

	SaveView(ctx context.Context, name string) (model.View, error)
	LoadView(viewID string) error
	DeleteView(ctx context.Context, viewID string) error

	ToggleSelect(serverID string)
	SelectAllOnPage()
	ClearSelection()

	Snapshot() Snapshot
	Servers() []model.Server
	DerivedView() []model.Server
	PageSlice() []model.Server
	HistoryFor(serverID string) []model.History
}

type inventoryStore struct {
	mu sync.RWMutex

	records        []model.Server
	derived        []model.Server
	filters        []model.Filter
	search         string
	sortKeys       []model.SortKey
	page           int
	pageSize       int
	totalPages     int
	visibleColumns []string
	savedViews     []model.View
	activeViewID   string
	history        map[string][]model.History
	selected       map[string]struct{}
	isLoading      bool

	cfg       Config
	servers   repository.ServerRepository
	histories repository.HistoryRepository
	views     repository.ViewRepository
	publisher audit.Publisher
	logger    *zap.Logger
}

func NewInventoryStore(
	cfg Config,
	servers repository.ServerRepository,
	histories repository.HistoryRepository,
	views repository.ViewRepository,
	publisher audit.Publisher,
	logger *zap.Logger,
) InventoryStore {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.Actor == "" {
		cfg.Actor = defaultActor
	}
	if publisher == nil {
		publisher = audit.NewNopPublisher()
	}
	columns := make([]string, len(DefaultVisibleColumns))
	copy(columns, DefaultVisibleColumns)
	return &inventoryStore{
		page:           1,
		pageSize:       cfg.PageSize,
		visibleColumns: columns,
		history:        make(map[string][]model.History),
		selected:       make(map[string]struct{}),
		cfg:            cfg,
		servers:        servers,
		histories:      histories,
		views:          views,
		publisher:      publisher,
		logger:         logger,
	}
}

// gatewayCtx applies the configured timeout, if any.
func (s *inventoryStore) gatewayCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.GatewayTimeout > 0 {
		return context.WithTimeout(ctx, s.cfg.GatewayTimeout)
	}
	return ctx, func() {}
}

func (s *inventoryStore) setLoading(v bool) {
	s.mu.Lock()
	s.isLoading = v
	s.mu.Unlock()
}

// recompute rebuilds the derived view from its inputs and re-clamps the
// page into [1, max(1, totalPages)]. Callers must hold the write lock.
func (s *inventoryStore) recompute() {
	s.derived = query.ApplySort(
		query.ApplyFiltersAndSearch(s.records, s.filters, s.search),
		s.sortKeys,
		s.cfg.NumericAware,
	)
	s.totalPages = int(math.Ceil(float64(len(s.derived)) / float64(s.pageSize)))
	s.page = clampPage(s.page, s.totalPages)
}

func clampPage(page int, totalPages int) int {
	maxPage := totalPages
	if maxPage < 1 {
		maxPage = 1
	}
	if page > maxPage {
		return maxPage
	}
	if page < 1 {
		return 1
	}
	return page
}

// Load replaces the record set from the gateway and reloads saved views
// and audit history. A gateway failure is non-destructive: the local
// state stays as it was.
func (s *inventoryStore) Load(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	gctx, cancel := s.gatewayCtx(ctx)
	defer cancel()

	servers, err := s.servers.FetchAll(gctx)
	if err != nil {
		s.logger.Error("failed to load servers", zap.Error(err))
		return fmt.Errorf("InventoryStore.Load: %w", err)
	}

	// View and history loads are best effort; the record set is already
	// usable without them.
	views, err := s.views.FetchViews(gctx)
	if err != nil {
		s.logger.Warn("failed to load saved views", zap.Error(err))
		views = nil
	}
	entries, err := s.histories.FetchAllHistory(gctx)
	if err != nil {
		s.logger.Warn("failed to load server history", zap.Error(err))
		entries = nil
	}
	historyByServer := make(map[string][]model.History)
	for _, entry := range entries {
		historyByServer[entry.ServerID] = append(historyByServer[entry.ServerID], entry)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = servers
	if views != nil {
		s.savedViews = views
	}
	if len(historyByServer) > 0 {
		s.history = historyByServer
	}
	s.recompute()
	return nil
}

// Create asks the gateway to persist the draft (assigning id and
// timestamps) and appends the result to the record set.
func (s *inventoryStore) Create(ctx context.Context, draft model.Server) (model.Server, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	draft.UpdatedBy = s.cfg.Actor
	gctx, cancel := s.gatewayCtx(ctx)
	defer cancel()
	created, err := s.servers.CreateServer(gctx, draft)
	if err != nil {
		s.logger.Error("failed to create server", zap.Error(err))
		return model.Server{}, fmt.Errorf("InventoryStore.Create: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, created)
	s.recompute()
	return created, nil
}

// Update applies the patch to the identified server. Every field whose
// value actually changes yields one history entry; updatedAt/updatedBy
// are refreshed on any update but never tracked themselves.
func (s *inventoryStore) Update(ctx context.Context, serverID string, patch model.ServerPatch) (model.Server, error) {
	s.mu.RLock()
	idx := s.indexOf(serverID)
	if idx < 0 {
		s.mu.RUnlock()
		return model.Server{}, fmt.Errorf("InventoryStore.Update: %w", apperrors.ErrServerNotFound)
	}
	current := s.records[idx]
	s.mu.RUnlock()

	updated := current
	changedFields := patch.Apply(&updated)
	now := time.Now()
	updated.UpdatedAt = now
	updated.UpdatedBy = s.cfg.Actor

	entries := make([]model.History, 0, len(changedFields))
	for _, field := range changedFields {
		entries = append(entries, model.History{
			ID:        uuid.NewString(),
			ServerID:  serverID,
			Field:     field,
			OldValue:  stringifyField(&current, field),
			NewValue:  stringifyField(&updated, field),
			Timestamp: now,
			User:      s.cfg.Actor,
		})
	}

	s.setLoading(true)
	defer s.setLoading(false)
	gctx, cancel := s.gatewayCtx(ctx)
	defer cancel()
	persisted, err := s.servers.UpdateServer(gctx, updated)
	if err != nil {
		s.logger.Error("failed to update server", zap.String("server_id", serverID), zap.Error(err))
		return model.Server{}, fmt.Errorf("InventoryStore.Update: %w", err)
	}

	s.mu.Lock()
	if idx = s.indexOf(serverID); idx >= 0 {
		s.records[idx] = persisted
	}
	s.history[serverID] = append(s.history[serverID], entries...)
	s.recompute()
	s.mu.Unlock()

	s.persistHistory(ctx, entries)
	return persisted, nil
}

// persistHistory writes synthesized entries through the gateway and to
// the audit topic. Both are best effort: the in-memory trail is already
// the source of truth for the UI.
func (s *inventoryStore) persistHistory(ctx context.Context, entries []model.History) {
	if len(entries) == 0 {
		return
	}
	gctx, cancel := s.gatewayCtx(ctx)
	defer cancel()
	for _, entry := range entries {
		if _, err := s.histories.CreateHistory(gctx, entry); err != nil {
			s.logger.Warn("failed to persist history entry", zap.String("server_id", entry.ServerID), zap.Error(err))
		}
	}
	if err := s.publisher.PublishChanges(gctx, entries); err != nil {
		s.logger.Warn("failed to publish audit events", zap.Error(err))
	}
}

// Delete removes the server, its selection membership and its history
// (cascade).
func (s *inventoryStore) Delete(ctx context.Context, serverID string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	gctx, cancel := s.gatewayCtx(ctx)
	defer cancel()
	if err := s.servers.DeleteServerByID(gctx, serverID); err != nil {
		s.logger.Error("failed to delete server", zap.String("server_id", serverID), zap.Error(err))
		return fmt.Errorf("InventoryStore.Delete: %w", err)
	}
	if err := s.histories.DeleteHistoryByServerID(gctx, serverID); err != nil {
		s.logger.Warn("failed to delete server history", zap.String("server_id", serverID), zap.Error(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocal(serverID)
	s.recompute()
	return nil
}

// DeleteMany deletes each id through the gateway. Local state reflects
// exactly the deletions the gateway confirmed; a partial failure
// returns the joined errors.
func (s *inventoryStore) DeleteMany(ctx context.Context, serverIDs []string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	gctx, cancel := s.gatewayCtx(ctx)
	defer cancel()

	var errs []error
	var confirmed []string
	for _, id := range serverIDs {
		if err := s.servers.DeleteServerByID(gctx, id); err != nil {
			s.logger.Error("failed to delete server", zap.String("server_id", id), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		if err := s.histories.DeleteHistoryByServerID(gctx, id); err != nil {
			s.logger.Warn("failed to delete server history", zap.String("server_id", id), zap.Error(err))
		}
		confirmed = append(confirmed, id)
	}

	s.mu.Lock()
	for _, id := range confirmed {
		s.removeLocal(id)
	}
	s.recompute()
	s.mu.Unlock()

	if len(errs) > 0 {
		return fmt.Errorf("InventoryStore.DeleteMany: %w", errors.Join(errs...))
	}
	return nil
}

// removeLocal drops a record, its selection membership and its history.
// Callers must hold the write lock.
func (s *inventoryStore) removeLocal(serverID string) {
	if idx := s.indexOf(serverID); idx >= 0 {
		s.records = append(s.records[:idx], s.records[idx+1:]...)
	}
	delete(s.selected, serverID)
	delete(s.history, serverID)
}

// BulkTag adds the tag to every selected server that does not already
// carry it (idempotent per record) and synthesizes one tags history
// entry per changed server. It returns how many servers were tagged.
func (s *inventoryStore) BulkTag(ctx context.Context, tag string) (int, error) {
	s.mu.RLock()
	var targets []model.Server
	for id := range s.selected {
		if idx := s.indexOf(id); idx >= 0 && !s.records[idx].HasTag(tag) {
			targets = append(targets, s.records[idx])
		}
	}
	s.mu.RUnlock()
	if len(targets) == 0 {
		return 0, nil
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i].ID < targets[j].ID })

	s.setLoading(true)
	defer s.setLoading(false)
	gctx, cancel := s.gatewayCtx(ctx)
	defer cancel()

	now := time.Now()
	var errs []error
	var entries []model.History
	tagged := 0
	for _, target := range targets {
		updated := target
		updated.Tags = append(append([]string{}, target.Tags...), tag)
		updated.UpdatedAt = now
		updated.UpdatedBy = s.cfg.Actor
		persisted, err := s.servers.UpdateServer(gctx, updated)
		if err != nil {
			s.logger.Error("failed to tag server", zap.String("server_id", target.ID), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		entry := model.History{
			ID:        uuid.NewString(),
			ServerID:  target.ID,
			Field:     "tags",
			OldValue:  strings.Join(target.Tags, ", "),
			NewValue:  strings.Join(updated.Tags, ", "),
			Timestamp: now,
			User:      s.cfg.Actor,
		}
		entries = append(entries, entry)
		s.mu.Lock()
		if idx := s.indexOf(target.ID); idx >= 0 {
			s.records[idx] = persisted
		}
		s.history[target.ID] = append(s.history[target.ID], entry)
		s.mu.Unlock()
		tagged++
	}

	s.mu.Lock()
	s.recompute()
	s.mu.Unlock()

	s.persistHistory(ctx, entries)
	if len(errs) > 0 {
		return tagged, fmt.Errorf("InventoryStore.BulkTag: %w", errors.Join(errs...))
	}
	return tagged, nil
}

// ImportServers batch-upserts externally sourced records (e.g. an Excel
// import) and refreshes the record set from the gateway afterwards.
func (s *inventoryStore) ImportServers(ctx context.Context, servers []model.Server) (int, error) {
	s.setLoading(true)

	gctx, cancel := s.gatewayCtx(ctx)
	count, err := s.servers.BatchUpsertServers(gctx, servers)
	cancel()
	if err != nil {
		s.setLoading(false)
		s.logger.Error("failed to import servers", zap.Error(err))
		return 0, fmt.Errorf("InventoryStore.ImportServers: %w", err)
	}
	s.setLoading(false)

	if err := s.Load(ctx); err != nil {
		return count, fmt.Errorf("InventoryStore.ImportServers: %w", err)
	}
	return count, nil
}

// SyncAll pushes the full in-memory state (records and audit history)
// through the gateway's batch upsert and returns the synced record
// count.
func (s *inventoryStore) SyncAll(ctx context.Context) (int, error) {
	s.mu.RLock()
	records := make([]model.Server, len(s.records))
	copy(records, s.records)
	var entries []model.History
	for _, serverEntries := range s.history {
		entries = append(entries, serverEntries...)
	}
	s.mu.RUnlock()

	s.setLoading(true)
	defer s.setLoading(false)
	gctx, cancel := s.gatewayCtx(ctx)
	defer cancel()

	count, err := s.servers.BatchUpsertServers(gctx, records)
	if err != nil {
		s.logger.Error("failed to sync servers", zap.Error(err))
		return 0, fmt.Errorf("InventoryStore.SyncAll: %w", err)
	}
	if _, err := s.histories.BatchUpsertHistory(gctx, entries); err != nil {
		s.logger.Warn("failed to sync history", zap.Error(err))
	}
	return count, nil
}

func (s *inventoryStore) indexOf(serverID string) int {
	for i := range s.records {
		if s.records[i].ID == serverID {
			return i
		}
	}
	return -1
}

func stringifyField(server *model.Server, field string) string {
	return strings.Join(query.FieldValues(server, field), ", ")
}
