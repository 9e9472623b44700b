package worker

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stockroom/internal/api/ws"
	"stockroom/internal/metrics"
	"stockroom/internal/repository"
)

// StockWorker periodically refreshes stock gauges and pushes alerts to
// connected users whose inventory has items at or below the low band.
type StockWorker struct {
	itemRepo *repository.ItemRepository
	hub      *ws.Hub
	ticker   *time.Ticker
}

func NewStockWorker(db *sqlx.DB, interval time.Duration) *StockWorker {
	return &StockWorker{
		itemRepo: repository.NewItemRepository(db),
		hub:      ws.GetHub(),
		ticker:   time.NewTicker(interval),
	}
}

func (w *StockWorker) StartWorker(ctx context.Context) {
	defer w.ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.ticker.C:
			w.monitorStock()
		}
	}
}

func (w *StockWorker) monitorStock() {
	counts, err := w.itemRepo.GlobalStockCounts()
	if err != nil {
		log.Printf("[StockWorker] Error counting stock: %v", err)
		return
	}

	metrics.ItemsTotal.Set(float64(counts.TotalItems))
	metrics.OutOfStockItems.Set(float64(counts.OutOfStock))
	metrics.LowStockItems.Set(float64(counts.LowStock))

	connectedUserIDs := w.hub.GetConnectedUserIDs()
	if len(connectedUserIDs) == 0 {
		return
	}

	alerts, err := w.itemRepo.StockAlertsByOwner()
	if err != nil {
		log.Printf("[StockWorker] Error loading alerts: %v", err)
		return
	}

	connected := make(map[uuid.UUID]bool, len(connectedUserIDs))
	for _, id := range connectedUserIDs {
		connected[id] = true
	}

	for _, alert := range alerts {
		if !connected[alert.OwnerID] {
			continue
		}
		if err := w.hub.SendStockAlert(alert.OwnerID, alert.OutOfStock, alert.LowStock); err != nil {
			log.Printf("[StockWorker] Error sending alert to %s: %v", alert.OwnerID, err)
		}
	}
}
