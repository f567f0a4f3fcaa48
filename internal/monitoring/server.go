package monitoring

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"pescaderia-backend/internal/repositories"
	"pescaderia-backend/internal/store"
)

// MonitoringServer serves an ops view on a side port: process and host
// metrics, store statistics and low-stock alerts pushed over websocket.
type MonitoringServer struct {
	store       *store.Store
	productRepo *repositories.ProductRepository
	lowStockKg  float64
	port        int

	alerts     []Alert
	alertsMux  sync.RWMutex
	alerted    map[string]bool
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
	broadcast  chan Alert
}

type Alert struct {
	ID        int       `json:"id"`
	Severity  string    `json:"severity"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Resolved  bool      `json:"resolved"`
}

type DashboardStats struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	DiskPercent   float64 `json:"disk_percent"`
	MemoryUsed    string  `json:"memory_used"`
	MemoryTotal   string  `json:"memory_total"`
	DiskUsed      string  `json:"disk_used"`
	DiskTotal     string  `json:"disk_total"`
	Products      int     `json:"products"`
	LowStockCount int     `json:"low_stock_count"`
	Dispatches    int     `json:"dispatches"`
	Purchases     int     `json:"purchases"`
	Sales         int     `json:"sales"`
	LedgerEntries int     `json:"ledger_entries"`
	ActiveAlerts  int     `json:"active_alerts"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewMonitoringServer(s *store.Store, productRepo *repositories.ProductRepository, lowStockKg float64, port int) *MonitoringServer {
	return &MonitoringServer{
		store:       s,
		productRepo: productRepo,
		lowStockKg:  lowStockKg,
		port:        port,
		alerts:      make([]Alert, 0),
		alerted:     make(map[string]bool),
		clients:     make(map[*websocket.Conn]bool),
		broadcast:   make(chan Alert),
	}
}

func (ms *MonitoringServer) Start() {
	r := mux.NewRouter()

	// API endpoints
	r.HandleFunc("/api/stats", ms.getStats).Methods("GET")
	r.HandleFunc("/api/alerts", ms.getAlerts).Methods("GET")

	// WebSocket for real-time updates
	r.HandleFunc("/ws", ms.handleWebSocket)

	// Start background alert broadcaster
	go ms.handleBroadcast()

	// Start background stock watcher
	go ms.watchStock()

	addr := fmt.Sprintf(":%d", ms.port)
	log.Printf("Monitoring dashboard running on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}

func (ms *MonitoringServer) getStats(w http.ResponseWriter, r *http.Request) {
	stats := ms.collectStats()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (ms *MonitoringServer) collectStats() DashboardStats {
	cpuPercents, _ := cpu.Percent(time.Second, false)
	cpuPercent := 0.0
	if len(cpuPercents) > 0 {
		cpuPercent = cpuPercents[0]
	}

	memStats, _ := mem.VirtualMemory()
	diskStats, _ := disk.Usage("/")

	lowStock := len(ms.productRepo.LowStock(ms.lowStockKg))

	ms.store.RLock()
	products := len(ms.store.Products)
	dispatches := len(ms.store.Dispatches)
	purchases := len(ms.store.Purchases)
	sales := len(ms.store.Sales)
	ledger := len(ms.store.Transactions)
	uptime := time.Since(ms.store.StartedAt)
	ms.store.RUnlock()

	ms.alertsMux.RLock()
	activeAlertCount := 0
	for _, alert := range ms.alerts {
		if !alert.Resolved {
			activeAlertCount++
		}
	}
	ms.alertsMux.RUnlock()

	status := "healthy"
	if products == 0 {
		status = "unhealthy"
	}

	return DashboardStats{
		Status:        status,
		Uptime:        formatUptime(int(uptime.Seconds())),
		CPUPercent:    cpuPercent,
		MemoryPercent: memStats.UsedPercent,
		DiskPercent:   diskStats.UsedPercent,
		MemoryUsed:    formatBytes(memStats.Used),
		MemoryTotal:   formatBytes(memStats.Total),
		DiskUsed:      formatBytes(diskStats.Used),
		DiskTotal:     formatBytes(diskStats.Total),
		Products:      products,
		LowStockCount: lowStock,
		Dispatches:    dispatches,
		Purchases:     purchases,
		Sales:         sales,
		LedgerEntries: ledger,
		ActiveAlerts:  activeAlertCount,
	}
}

func formatBytes(bytes uint64) string {
	gb := float64(bytes) / (1024 * 1024 * 1024)
	if gb < 1 {
		mb := float64(bytes) / (1024 * 1024)
		return fmt.Sprintf("%.1f MB", mb)
	}
	return fmt.Sprintf("%.1f GB", gb)
}

func formatUptime(seconds int) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

func (ms *MonitoringServer) getAlerts(w http.ResponseWriter, r *http.Request) {
	ms.alertsMux.RLock()
	defer ms.alertsMux.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ms.alerts)
}

func (ms *MonitoringServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	ms.clientsMux.Lock()
	ms.clients[conn] = true
	ms.clientsMux.Unlock()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			ms.clientsMux.Lock()
			delete(ms.clients, conn)
			ms.clientsMux.Unlock()
			break
		}
	}
}

func (ms *MonitoringServer) handleBroadcast() {
	for alert := range ms.broadcast {
		ms.clientsMux.Lock()
		for client := range ms.clients {
			err := client.WriteJSON(alert)
			if err != nil {
				client.Close()
				delete(ms.clients, client)
			}
		}
		ms.clientsMux.Unlock()
	}
}

// watchStock raises one alert per product when it crosses the low-stock
// threshold and clears the marker once it recovers.
func (ms *MonitoringServer) watchStock() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		low := ms.productRepo.LowStock(ms.lowStockKg)

		lowIDs := make(map[string]bool, len(low))
		for _, p := range low {
			lowIDs[p.ID] = true
			if ms.alerted[p.ID] {
				continue
			}
			ms.alerted[p.ID] = true

			alert := Alert{
				Severity:  "warning",
				Type:      "low_stock",
				Message:   fmt.Sprintf("%s stock at %.1f kg", p.Name, p.StockKg),
				Timestamp: time.Now(),
				Resolved:  false,
			}

			ms.alertsMux.Lock()
			alert.ID = len(ms.alerts) + 1
			ms.alerts = append(ms.alerts, alert)
			ms.alertsMux.Unlock()

			ms.broadcast <- alert
		}

		for id := range ms.alerted {
			if !lowIDs[id] {
				delete(ms.alerted, id)
			}
		}
	}
}
