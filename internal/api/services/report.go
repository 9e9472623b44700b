package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"stockroom/internal/domain"
	r "stockroom/internal/redis"
)

type ReportItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type InventoryReport struct {
	GeneratedAt   time.Time           `json:"generatedAt"`
	TotalItems    int                 `json:"totalItems"`
	TotalQuantity int                 `json:"totalQuantity"`
	Items         []ReportItem        `json:"items"`
	Summary       domain.StockSummary `json:"summary"`
}

type ExportItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ExportSnapshot struct {
	ExportedAt   time.Time    `json:"exportedAt"`
	TotalRecords int          `json:"totalRecords"`
	Items        []ExportItem `json:"items"`
}

// ReportService derives read-only views over a user's items. It shares the
// stats cache with the inventory service, which invalidates it on writes.
type ReportService struct {
	store      ItemStore
	statsCache *r.JSONCache[domain.InventoryStats]
}

func NewReportService(store ItemStore, statsCache *r.JSONCache[domain.InventoryStats]) *ReportService {
	return &ReportService{
		store:      store,
		statsCache: statsCache,
	}
}

func (s *ReportService) Stats(ctx context.Context, userID uuid.UUID) (*domain.InventoryStats, error) {
	if cached, err := s.statsCache.Get(ctx, userID.String()); err == nil && cached != nil {
		return cached, nil
	}

	items, err := s.store.FindByOwner(userID)
	if err != nil {
		return nil, err
	}

	stats := domain.ComputeStats(items)
	_ = s.statsCache.Set(ctx, userID.String(), &stats)

	return &stats, nil
}

func (s *ReportService) GenerateReport(ctx context.Context, userID uuid.UUID) (*InventoryReport, error) {
	items, err := s.store.FindByOwner(userID)
	if err != nil {
		return nil, err
	}

	report := &InventoryReport{
		GeneratedAt: time.Now().UTC(),
		TotalItems:  len(items),
		Items:       make([]ReportItem, 0, len(items)),
		Summary:     domain.Summarize(items),
	}

	for _, item := range items {
		report.TotalQuantity += item.Quantity
		report.Items = append(report.Items, ReportItem{
			ID:          item.ID.String(),
			Name:        item.Name,
			Quantity:    item.Quantity,
			Description: item.Description,
			CreatedAt:   item.CreatedAt,
			UpdatedAt:   item.UpdatedAt,
		})
	}

	return report, nil
}

func (s *ReportService) Search(ctx context.Context, userID uuid.UUID, query string) ([]*domain.Item, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: search query cannot be empty", ErrInvalidInput)
	}

	return s.store.FindByOwnerMatching(userID, query)
}

// SortedByQuantity orders the user's items by quantity. Only "desc", in any
// casing, yields a descending order; everything else is ascending.
func (s *ReportService) SortedByQuantity(ctx context.Context, userID uuid.UUID, order string) ([]*domain.Item, error) {
	items, err := s.store.FindByOwner(userID)
	if err != nil {
		return nil, err
	}

	desc := strings.EqualFold(order, "desc")
	return domain.SortByQuantity(items, desc), nil
}

func (s *ReportService) HealthCheck(ctx context.Context, userID uuid.UUID) (*domain.HealthStatus, error) {
	items, err := s.store.FindByOwner(userID)
	if err != nil {
		return nil, err
	}

	health := domain.ComputeHealth(items)
	return &health, nil
}

func (s *ReportService) Export(ctx context.Context, userID uuid.UUID) (*ExportSnapshot, error) {
	items, err := s.store.FindByOwner(userID)
	if err != nil {
		return nil, err
	}

	snapshot := &ExportSnapshot{
		ExportedAt:   time.Now().UTC(),
		TotalRecords: len(items),
		Items:        make([]ExportItem, 0, len(items)),
	}

	for _, item := range items {
		snapshot.Items = append(snapshot.Items, ExportItem{
			ID:          item.ID.String(),
			Name:        item.Name,
			Quantity:    item.Quantity,
			Description: item.DescriptionOrDefault("N/A"),
			CreatedAt:   item.CreatedAt,
			UpdatedAt:   item.UpdatedAt,
		})
	}

	return snapshot, nil
}
