package models

// DispatchDraft is the working grid for the next batch: a batch name, the
// destination store labels, and raw weight strings keyed by product id and
// destination index. Cells hold the form input verbatim; parsing happens at
// commit time, where non-numeric and non-positive values count as empty.
type DispatchDraft struct {
	BatchName    string                    `json:"batch_name"`
	Destinations []string                  `json:"destinations"`
	Cells        map[string]map[int]string `json:"cells"`
}

// SetCell writes one grid cell, allocating the row map on first use.
func (d *DispatchDraft) SetCell(productID string, destination int, value string) {
	if d.Cells == nil {
		d.Cells = make(map[string]map[int]string)
	}
	row := d.Cells[productID]
	if row == nil {
		row = make(map[int]string)
		d.Cells[productID] = row
	}
	row[destination] = value
}

// Cell reads one grid cell; missing cells read as the empty string.
func (d DispatchDraft) Cell(productID string, destination int) string {
	return d.Cells[productID][destination]
}

// Clone returns a deep copy so callers cannot mutate shared state.
func (d *DispatchDraft) Clone() DispatchDraft {
	out := DispatchDraft{
		BatchName:    d.BatchName,
		Destinations: append([]string(nil), d.Destinations...),
		Cells:        make(map[string]map[int]string, len(d.Cells)),
	}
	for id, row := range d.Cells {
		cloned := make(map[int]string, len(row))
		for idx, v := range row {
			cloned[idx] = v
		}
		out.Cells[id] = cloned
	}
	return out
}

// SetDraftCellRequest writes one cell of the draft grid.
type SetDraftCellRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	Destination int    `json:"destination" validate:"gte=0"`
	Value       string `json:"value"`
}
