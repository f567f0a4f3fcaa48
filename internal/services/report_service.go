package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/repositories"
	"pescaderia-backend/internal/timeutil"
)

// DashboardSummary holds the control-panel aggregates: net cash, income and
// expense totals, today's dispatch activity and the lowest-stock species.
type DashboardSummary struct {
	Balance        float64           `json:"balance"`
	TotalIncome    float64           `json:"total_income"`
	TotalExpense   float64           `json:"total_expense"`
	DispatchCount  int               `json:"dispatch_count"`
	OpenDispatches int               `json:"open_dispatches"`
	PurchaseCount  int               `json:"purchase_count"`
	SaleCount      int               `json:"sale_count"`
	LowStock       []*models.Product `json:"low_stock"`
}

type ReportService struct {
	ProductRepo       *repositories.ProductRepository
	DispatchRepo      *repositories.DispatchRepository
	PurchaseRepo      *repositories.PurchaseRepository
	TransactionRepo   *repositories.TransactionRepository
	SaleRepo          *repositories.SaleRepository
	LowStockThreshold float64
}

func NewReportService(
	productRepo *repositories.ProductRepository,
	dispatchRepo *repositories.DispatchRepository,
	purchaseRepo *repositories.PurchaseRepository,
	transactionRepo *repositories.TransactionRepository,
	saleRepo *repositories.SaleRepository,
	lowStockThreshold float64,
) *ReportService {
	return &ReportService{
		ProductRepo:       productRepo,
		DispatchRepo:      dispatchRepo,
		PurchaseRepo:      purchaseRepo,
		TransactionRepo:   transactionRepo,
		SaleRepo:          saleRepo,
		LowStockThreshold: lowStockThreshold,
	}
}

// Dashboard builds the control-panel summary.
func (s *ReportService) Dashboard() *DashboardSummary {
	summary := s.TransactionRepo.Summary()
	dispatches := s.DispatchRepo.List()

	open := 0
	for _, d := range dispatches {
		if !d.Closed {
			open++
		}
	}

	return &DashboardSummary{
		Balance:        summary.Balance,
		TotalIncome:    summary.TotalIncome,
		TotalExpense:   summary.TotalExpense,
		DispatchCount:  len(dispatches),
		OpenDispatches: open,
		PurchaseCount:  len(s.PurchaseRepo.List()),
		SaleCount:      len(s.SaleRepo.List()),
		LowStock:       s.ProductRepo.LowStock(s.LowStockThreshold),
	}
}

// GenerateSettlementPDF renders the settlement sheet for one dispatch: the
// dispatched lines with returns, the cash figures and the reconciliation.
func (s *ReportService) GenerateSettlementPDF(dispatchID string) ([]byte, error) {
	d, err := s.DispatchRepo.GetByID(dispatchID)
	if err != nil {
		return nil, err
	}
	settlement := d.Settle()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "VEpescados - Cuadre de Despacho", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generado: %s", timeutil.Now().Format(timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Dispatch Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Datos del Despacho", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Destino: %s", d.Recipient), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Fecha: %s", timeutil.In(d.Timestamp).Format("02/01/2006")), "RB", 1, "L", false, 0, "")
	status := "ABIERTO"
	if d.Closed {
		status = "CERRADO"
	}
	pdf.CellFormat(95, 7, fmt.Sprintf("Estado: %s", status), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Total Neto: $%.2f", d.TotalAmount), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Lines table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Mercancia", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(60, 7, "Producto", "1", 0, "C", true, 0, "")
	pdf.CellFormat(26, 7, "Enviado kg", "1", 0, "C", true, 0, "")
	pdf.CellFormat(26, 7, "Devuelto kg", "1", 0, "C", true, 0, "")
	pdf.CellFormat(26, 7, "Neto kg", "1", 0, "C", true, 0, "")
	pdf.CellFormat(26, 7, "Precio $", "1", 0, "C", true, 0, "")
	pdf.CellFormat(26, 7, "Total $", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, it := range d.Items {
		name := it.ProductName
		if len(name) > 28 {
			name = name[:25] + "..."
		}
		pdf.CellFormat(60, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(26, 6, fmt.Sprintf("%.2f", it.QuantityKg), "1", 0, "R", false, 0, "")
		pdf.CellFormat(26, 6, fmt.Sprintf("%.2f", it.ReturnedKg), "1", 0, "R", false, 0, "")
		pdf.CellFormat(26, 6, fmt.Sprintf("%.2f", it.TotalKg), "1", 0, "R", false, 0, "")
		pdf.CellFormat(26, 6, fmt.Sprintf("%.2f", it.PriceAtDispatch), "1", 0, "R", false, 0, "")
		pdf.CellFormat(26, 6, fmt.Sprintf("%.2f", it.TotalAmount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	// Cash figures
	if d.CloseData != nil {
		c := d.CloseData
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(190, 8, "Cierre de Caja (Bs)", "1", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(95, 7, fmt.Sprintf("Punto: %.2f", c.PtoBs), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, fmt.Sprintf("Efectivo: %.2f", c.EfectivoBs), "RB", 1, "L", false, 0, "")
		pdf.CellFormat(95, 7, fmt.Sprintf("Pago Movil: %.2f", c.PagoMovil), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, fmt.Sprintf("Comisiones: %.2f", c.Comisiones), "RB", 1, "L", false, 0, "")
		pdf.CellFormat(95, 7, fmt.Sprintf("Gastos: %.2f", c.Gastos), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, fmt.Sprintf("Donaciones: %.2f", c.Donaciones), "RB", 1, "L", false, 0, "")
		pdf.CellFormat(95, 7, fmt.Sprintf("Transformacion: %.2f", c.Transformacion), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, fmt.Sprintf("Credito: %.2f", c.Credito), "RB", 1, "L", false, 0, "")
		pdf.CellFormat(95, 7, fmt.Sprintf("Personal: %.2f", c.Personal), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, fmt.Sprintf("Tasa: %.2f Bs/$", c.TasaCambio), "RB", 1, "L", false, 0, "")
		pdf.Ln(5)
	}

	// Reconciliation
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, "Cuadre", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(63, 8, fmt.Sprintf("Esperado: $%.2f", settlement.ExpectedUsd), "1", 0, "C", false, 0, "")
	pdf.CellFormat(63, 8, fmt.Sprintf("Recibido: $%.2f", settlement.ReceivedUsd), "1", 0, "C", false, 0, "")
	pdf.CellFormat(64, 8, fmt.Sprintf("Tasa: %.2f", settlement.ExchangeRate), "1", 1, "C", false, 0, "")

	if settlement.Difference < 0 {
		pdf.SetFillColor(255, 200, 200)
	} else {
		pdf.SetFillColor(200, 255, 200)
	}
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 10, fmt.Sprintf("Diferencia: $%.2f", settlement.Difference), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
