package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

// Posts a day's worth of demo activity against a running server: two
// purchases, a filled dispatch grid, one committed batch and a counter sale.
func main() {
	fmt.Println("========================================")
	fmt.Println("   Load Demo Data")
	fmt.Println("========================================")
	fmt.Println()

	godotenv.Load()

	base := getEnv("API_BASE_URL", "http://localhost:8080")

	fmt.Printf("Target: %s\n", base)
	fmt.Print("Type 'yes' to confirm: ")

	var confirm string
	fmt.Scanln(&confirm)

	if confirm != "yes" {
		fmt.Println("Cancelled.")
		return
	}

	// Supplier intakes
	post(base+"/api/purchases", map[string]interface{}{
		"provider": "Lancha San Rafael", "product_id": "p-0", "quantity_kg": 120.0, "total_cost": 420.0,
	})
	post(base+"/api/purchases", map[string]interface{}{
		"provider": "Pescadero Mayor", "product_id": "p-7", "quantity_kg": 60.0, "total_cost": 510.0,
	})

	// Fill the dispatch grid for the first two destinations
	post(base+"/api/dispatches/draft/cells", map[string]interface{}{
		"product_id": "p-0", "destination": 0, "value": "20",
	})
	post(base+"/api/dispatches/draft/cells", map[string]interface{}{
		"product_id": "p-7", "destination": 0, "value": "10",
	})
	post(base+"/api/dispatches/draft/cells", map[string]interface{}{
		"product_id": "p-0", "destination": 1, "value": "15.5",
	})

	// Commit the batch
	post(base+"/api/dispatches", nil)

	// A counter sale
	post(base+"/api/sales", map[string]interface{}{
		"items": []map[string]interface{}{
			{"product_id": "p-21", "quantity_kg": 2.5},
		},
		"payment_method": "efectivo",
	})

	fmt.Println()
	fmt.Println("Demo data loaded.")
}

func post(url string, payload interface{}) {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			log.Fatalf("encode %s: %v", url, err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	resp, err := http.Post(url, "application/json", body)
	if err != nil {
		log.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Fatalf("POST %s: status %d", url, resp.StatusCode)
	}
	fmt.Printf("POST %s -> %d\n", url, resp.StatusCode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
