package models

// CloseData holds the end-of-day cash figures for one dispatch. Every field
// except the exchange rate is denominated in bolívares; the field names keep
// the capture sheet's wording.
type CloseData struct {
	PtoBs          float64 `json:"ptoBs"`
	EfectivoBs     float64 `json:"efectivoBs"`
	PagoMovil      float64 `json:"pagoMovil"`
	Comisiones     float64 `json:"comisiones"`
	Gastos         float64 `json:"gastos"`
	Donaciones     float64 `json:"donaciones"`
	Transformacion float64 `json:"transformacion"`
	Credito        float64 `json:"credito"`
	Personal       float64 `json:"personal"`
	TasaCambio     float64 `json:"tasaCambio"`
}

// NewCloseData returns zeroed figures carrying the given exchange rate. It is
// built the first time a close field is written on a dispatch.
func NewCloseData(exchangeRate float64) *CloseData {
	return &CloseData{TasaCambio: exchangeRate}
}

// SetField writes one named figure. Field names match the JSON keys; it
// reports false for a name outside the fixed set.
func (c *CloseData) SetField(field string, value float64) bool {
	switch field {
	case "ptoBs":
		c.PtoBs = value
	case "efectivoBs":
		c.EfectivoBs = value
	case "pagoMovil":
		c.PagoMovil = value
	case "comisiones":
		c.Comisiones = value
	case "gastos":
		c.Gastos = value
	case "donaciones":
		c.Donaciones = value
	case "transformacion":
		c.Transformacion = value
	case "credito":
		c.Credito = value
	case "personal":
		c.Personal = value
	case "tasaCambio":
		c.TasaCambio = value
	default:
		return false
	}
	return true
}

// TotalIncomeBs sums the income categories: point of sale, cash, mobile
// payment and commissions.
func (c *CloseData) TotalIncomeBs() float64 {
	return c.PtoBs + c.EfectivoBs + c.PagoMovil + c.Comisiones
}

// TotalExpenseBs sums the expense categories: store expenses, donations,
// processing, credit and personnel.
func (c *CloseData) TotalExpenseBs() float64 {
	return c.Gastos + c.Donaciones + c.Transformacion + c.Credito + c.Personal
}
