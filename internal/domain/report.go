package domain

import (
	"math"
	"sort"
)

const (
	HealthStatusHealthy  = "HEALTHY"
	HealthStatusWarning  = "WARNING"
	HealthStatusCritical = "CRITICAL"
)

// QuantityExtreme is the {name, quantity} projection of the item holding the
// largest or smallest quantity in a collection.
type QuantityExtreme struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type InventoryStats struct {
	TotalItems      int              `json:"totalItems"`
	TotalQuantity   int              `json:"totalQuantity"`
	AverageQuantity float64          `json:"averageQuantity"`
	MaxQuantityItem *QuantityExtreme `json:"maxQuantityItem"`
	MinQuantityItem *QuantityExtreme `json:"minQuantityItem"`
}

type StockSummary struct {
	ItemsInStock int `json:"itemsInStock"`
	OutOfStock   int `json:"outOfStockItems"`
	LowStock     int `json:"lowStockItems"`
}

type HealthStatus struct {
	Status           string  `json:"status"`
	OutOfStock       int     `json:"outOfStock"`
	LowStock         int     `json:"lowStock"`
	InStock          int     `json:"inStock"`
	TotalItems       int     `json:"totalItems"`
	HealthPercentage float64 `json:"healthPercentage"`
}

// ComputeStats aggregates quantity statistics over a collection of items.
// Ties for max/min keep the first item encountered, so callers should pass
// items in a fixed order to get deterministic results.
func ComputeStats(items []*Item) InventoryStats {
	stats := InventoryStats{TotalItems: len(items)}

	for _, item := range items {
		stats.TotalQuantity += item.Quantity
	}

	if len(items) == 0 {
		return stats
	}

	stats.AverageQuantity = round2(float64(stats.TotalQuantity) / float64(len(items)))

	max := items[0]
	min := items[0]
	for _, item := range items[1:] {
		if item.Quantity > max.Quantity {
			max = item
		}
		if item.Quantity < min.Quantity {
			min = item
		}
	}
	stats.MaxQuantityItem = &QuantityExtreme{Name: max.Name, Quantity: max.Quantity}
	stats.MinQuantityItem = &QuantityExtreme{Name: min.Name, Quantity: min.Quantity}

	return stats
}

// Summarize counts items per stock band for report summaries. ItemsInStock
// counts anything with quantity above zero, low stock included.
func Summarize(items []*Item) StockSummary {
	var summary StockSummary
	for _, item := range items {
		switch {
		case item.OutOfStock():
			summary.OutOfStock++
		default:
			summary.ItemsInStock++
			if item.LowStock() {
				summary.LowStock++
			}
		}
	}
	return summary
}

// ComputeHealth classifies a collection of items. Any out-of-stock item makes
// the whole inventory CRITICAL, regardless of the low-stock ratio.
func ComputeHealth(items []*Item) HealthStatus {
	health := HealthStatus{
		Status:     HealthStatusHealthy,
		TotalItems: len(items),
	}

	for _, item := range items {
		switch {
		case item.OutOfStock():
			health.OutOfStock++
		case item.LowStock():
			health.LowStock++
		default:
			health.InStock++
		}
	}

	switch {
	case health.OutOfStock > 0:
		health.Status = HealthStatusCritical
	case float64(health.LowStock) > float64(health.TotalItems)*0.2:
		health.Status = HealthStatusWarning
	}

	if health.TotalItems > 0 {
		health.HealthPercentage = round2(float64(health.InStock) / float64(health.TotalItems) * 100)
	}

	return health
}

// SortByQuantity returns a new slice ordered by quantity. The sort is stable,
// so items with equal quantities keep their input order.
func SortByQuantity(items []*Item, desc bool) []*Item {
	sorted := make([]*Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return sorted[i].Quantity > sorted[j].Quantity
		}
		return sorted[i].Quantity < sorted[j].Quantity
	})
	return sorted
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
