package material

import "go-proyek/internal/state"

type ItemInput struct {
	ID           string  `json:"id"`
	Date         string  `json:"date" binding:"required,datetime=2006-01-02"`
	ItemName     string  `json:"item_name" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	Unit         string  `json:"unit"`
	UnitPrice    int64   `json:"unit_price" binding:"gte=0"`
	Notes        string  `json:"notes"`
	ReceiptImage string  `json:"receipt_image"`
}

type ReplaceRequest struct {
	Items []ItemInput `json:"items" binding:"required"`
}

// ImportRow adalah bentuk data polos hasil konversi spreadsheet; parsing
// formatnya terjadi di kolaborator, bukan di sini.
type ImportRow struct {
	Date      string  `json:"date"`
	ItemName  string  `json:"item_name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice int64   `json:"unit_price"`
}

type ImportRequest struct {
	Rows []ImportRow `json:"rows" binding:"required"`
}

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type ItemResponse struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	ItemName     string  `json:"item_name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	UnitPrice    int64   `json:"unit_price"`
	TotalPrice   int64   `json:"total_price"`
	Notes        string  `json:"notes,omitempty"`
	ReceiptImage string  `json:"receipt_image,omitempty"`
}

func mapToResponse(items []state.MaterialItem) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = ItemResponse{
			ID:           item.ID,
			Date:         item.Date,
			ItemName:     item.ItemName,
			Quantity:     item.Quantity,
			Unit:         item.Unit,
			UnitPrice:    item.UnitPrice,
			TotalPrice:   item.TotalPrice,
			Notes:        item.Notes,
			ReceiptImage: item.ReceiptImage,
		}
	}
	return out
}
