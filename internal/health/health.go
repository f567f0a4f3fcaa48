package health

import (
	"time"

	"pescaderia-backend/internal/store"
)

type HealthChecker struct {
	store *store.Store
}

type HealthStatus struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Products      int     `json:"products"`
	Dispatches    int     `json:"dispatches"`
	LedgerEntries int     `json:"ledger_entries"`
}

func NewHealthChecker(s *store.Store) *HealthChecker {
	return &HealthChecker{store: s}
}

// CheckBasic reports liveness plus collection sizes. An empty catalog means
// seeding failed, which is the only unhealthy state an in-memory store has.
func (h *HealthChecker) CheckBasic() HealthStatus {
	h.store.RLock()
	defer h.store.RUnlock()

	status := "healthy"
	if len(h.store.Products) == 0 {
		status = "unhealthy"
	}

	return HealthStatus{
		Status:        status,
		UptimeSeconds: time.Since(h.store.StartedAt).Seconds(),
		Products:      len(h.store.Products),
		Dispatches:    len(h.store.Dispatches),
		LedgerEntries: len(h.store.Transactions),
	}
}
