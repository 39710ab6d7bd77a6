package pettycash

import "go-proyek/internal/state"

type TransactionInput struct {
	ID          string `json:"id"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Description string `json:"description" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=in out"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
}

type ReplaceRequest struct {
	Transactions []TransactionInput `json:"transactions" binding:"required"`
}

// ImportRow datang dari kolaborator import dengan kolom yang sudah
// di-resolve; baris cacat dilewati, bukan menggagalkan batch.
type ImportRow struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
}

type ImportRequest struct {
	Rows []ImportRow `json:"rows" binding:"required"`
}

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type TransactionResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
}

type ListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalIn      int64                 `json:"total_in"`
	TotalOut     int64                 `json:"total_out"`
	Balance      int64                 `json:"balance"`
}

func mapToList(txs []state.PettyCashTransaction) ListResponse {
	out := ListResponse{Transactions: make([]TransactionResponse, len(txs))}
	for i, tx := range txs {
		out.Transactions[i] = TransactionResponse(tx)
		switch tx.Type {
		case state.PettyCashIn:
			out.TotalIn += tx.Amount
		case state.PettyCashOut:
			out.TotalOut += tx.Amount
		}
	}
	out.Balance = out.TotalIn - out.TotalOut
	return out
}
