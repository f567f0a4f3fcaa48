package store

import (
	"fmt"

	"pescaderia-backend/internal/models"
)

// Species carried by the market, in catalog order. Order matters: product
// ids are derived from the position in this list and stay stable across
// restarts.
var Species = []string{
	"ANCHOA", "AGUJA", "ATUN ALBACORA", "ATUN RUEDA", "BAGRE", "BONITA", "BOCACHICO",
	"CAMARÓN", "CANARIO", "CALAMAR", "CATACO", "CAZON", "CARITE G", "CARITE",
	"COJINUA", "CORO CORO", "CUCHINA CATALANA", "CUNARO", "CUNARO PEQ",
	"CURVINA G", "CURVINA P", "DORADO", "GUACUCO", "JUREL ENTERO", "JUREL RUEDA",
	"JURELETE", "LAMPAROSA", "LEBRANCHE", "LISA", "MOJITO", "MERLUZA", "MEDREGAL",
	"PEPITONA", "PICUA ENTERA", "PICUA RUEDA", "PULPO", "RAYA", "RECORTE",
	"ROBALITO", "ROBALO", "RONCADOR", "SARDINA", "SURTIDO PAELLA", "TAJALY",
	"VARIOS SALEMA",
}

// Default destination columns of the dispatch grid.
var DefaultDestinations = []string{"ARTIGAS", "YOHAN", "MIJARES", "ANTONI", "JULIAN"}

// DefaultBatchName is the batch label the grid starts with each day.
const DefaultBatchName = "DESPACHO DEL DÍA"

// Seed loads the species catalog with uniform starting price and stock and
// resets the dispatch draft to its defaults.
func (s *Store) Seed(pricePerKg, stockKg float64, category string) {
	s.Lock()
	defer s.Unlock()

	s.Products = make([]*models.Product, 0, len(Species))
	for i, name := range Species {
		s.Products = append(s.Products, &models.Product{
			ID:         fmt.Sprintf("p-%d", i),
			Name:       name,
			PricePerKg: pricePerKg,
			StockKg:    stockKg,
			Category:   category,
		})
	}

	s.Draft = models.DispatchDraft{
		BatchName:    DefaultBatchName,
		Destinations: append([]string(nil), DefaultDestinations...),
		Cells:        make(map[string]map[int]string),
	}
}
