package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"khata/internal/core"
	"khata/internal/extract"
	"khata/internal/services"
	"khata/internal/store"
)

// Handlers serves the JSON API. The dashboard is recomputed from the store
// on every request rather than kept as materialized state.
type Handlers struct {
	txs    store.TransactionStore
	budget store.BudgetStore
	now    func() time.Time
}

type insightResponse struct {
	Tier    string `json:"tier"`
	Message string `json:"message"`
	Color   string `json:"color"`
}

type categoryResponse struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type transactionResponse struct {
	ID        int64  `json:"id"`
	Merchant  string `json:"merchant"`
	Amount    string `json:"amount"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Category  string `json:"category"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
}

type dashboardResponse struct {
	Year       int                   `json:"year,omitempty"`
	Month      int                   `json:"month,omitempty"`
	Total      string                `json:"total"`
	Budget     string                `json:"budget"`
	Remaining  string                `json:"remaining"`
	Percentage float64               `json:"percentage"`
	Insight    insightResponse       `json:"insight"`
	ByCategory []categoryResponse    `json:"by_category"`
	Recent     []transactionResponse `json:"recent"`
}

func toTransactionResponse(tx core.Transaction) transactionResponse {
	style := extract.StyleFor(tx.Merchant)
	return transactionResponse{
		ID:        tx.ID,
		Merchant:  tx.Merchant,
		Amount:    tx.Amount.String(),
		Type:      string(tx.Type),
		Timestamp: tx.Timestamp,
		Category:  string(extract.Categorize(tx.Merchant)),
		Icon:      style.Icon,
		Color:     style.Color,
	}
}

func (h *Handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	txs, err := h.txs.ListAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list transactions", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load transactions")
		return
	}

	budget, err := h.budget.Budget(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to read budget", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load budget")
		return
	}

	summary := services.Aggregate(txs, year, month, budget)

	resp := dashboardResponse{
		Year:       summary.Year,
		Month:      summary.Month,
		Total:      summary.Total.String(),
		Budget:     budget.String(),
		Remaining:  summary.Remaining.String(),
		Percentage: summary.Percentage,
		Insight: insightResponse{
			Tier:    summary.Insight.String(),
			Message: summary.Insight.Message(),
			Color:   summary.Insight.Color(),
		},
		ByCategory: make([]categoryResponse, 0, len(summary.ByCategory)),
		Recent:     make([]transactionResponse, 0, len(summary.Recent)),
	}
	for _, ca := range summary.ByCategory {
		resp.ByCategory = append(resp.ByCategory, categoryResponse{Name: ca.Name, Amount: ca.Amount.String()})
	}
	for _, tx := range summary.Recent {
		resp.Recent = append(resp.Recent, toTransactionResponse(tx))
	}

	writeJSON(w, http.StatusOK, resp)
}

type addTransactionRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// handleAddTransaction records a manual spend. Manual entries are always
// debits, stamped with the server clock, and the description is used
// verbatim as the merchant.
func (h *Handlers) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	var req addTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	paise, err := core.ParseDecimalToPaise(req.Amount)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}

	tx := core.Transaction{
		Amount:    core.Money{Paise: paise},
		Merchant:  sanitizeInput(req.Description),
		Type:      core.Debit,
		Timestamp: h.now().UnixMilli(),
	}
	if err := tx.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	id, err := h.txs.Insert(r.Context(), tx)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to insert transaction", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save transaction")
		return
	}
	tx.ID = id

	writeJSON(w, http.StatusCreated, toTransactionResponse(tx))
}

func (h *Handlers) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	if err := h.txs.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		slog.ErrorContext(r.Context(), "Failed to delete transaction", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type restoreTransactionRequest struct {
	Merchant  string `json:"merchant"`
	Amount    string `json:"amount"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}

// handleRestoreTransaction undoes a delete by re-inserting the transaction.
// The restored row gets a fresh id; clients must not reuse the old one.
func (h *Handlers) handleRestoreTransaction(w http.ResponseWriter, r *http.Request) {
	var req restoreTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	paise, err := core.ParseDecimalToPaise(req.Amount)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}

	tx := core.Transaction{
		Amount:    core.Money{Paise: paise},
		Merchant:  sanitizeInput(req.Merchant),
		Type:      core.TxType(req.Type),
		Timestamp: req.Timestamp,
	}
	if err := tx.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	id, err := h.txs.Insert(r.Context(), tx)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to restore transaction", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to restore transaction")
		return
	}
	tx.ID = id

	writeJSON(w, http.StatusCreated, toTransactionResponse(tx))
}

type budgetResponse struct {
	Budget string `json:"budget"`
}

func (h *Handlers) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	budget, err := h.budget.Budget(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to read budget", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load budget")
		return
	}
	writeJSON(w, http.StatusOK, budgetResponse{Budget: budget.String()})
}

type setBudgetRequest struct {
	Budget string `json:"budget"`
}

func (h *Handlers) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	var req setBudgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	paise, err := core.ParseDecimalToPaise(req.Budget)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid budget")
		return
	}

	if err := h.budget.SetBudget(r.Context(), core.Money{Paise: paise}); err != nil {
		slog.ErrorContext(r.Context(), "Failed to set budget", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save budget")
		return
	}

	writeJSON(w, http.StatusOK, budgetResponse{Budget: core.Money{Paise: paise}.String()})
}
