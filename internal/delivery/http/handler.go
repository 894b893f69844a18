package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Xausdorf/maemanee-qr/internal/domain/maemanee"
	"github.com/Xausdorf/maemanee-qr/internal/domain/repository"
	"github.com/Xausdorf/maemanee-qr/internal/usecase/generateqr"
	"github.com/Xausdorf/maemanee-qr/internal/usecase/verifyqr"
)

type Handler struct {
	generateQRUC *generateqr.UseCase
	verifyQRUC   *verifyqr.UseCase
	logger       *zap.Logger
}

func NewHandler(generateQRUC *generateqr.UseCase, verifyQRUC *verifyqr.UseCase, logger *zap.Logger) *Handler {
	return &Handler{
		generateQRUC: generateQRUC,
		verifyQRUC:   verifyQRUC,
		logger:       logger,
	}
}

type PayloadResponse struct {
	ID       string `json:"id"`
	Payload  string `json:"payload"`
	Checksum string `json:"checksum"`
}

type VerifyRequest struct {
	Payload string `json:"payload"`
}

type VerifyResponse struct {
	Valid     bool    `json:"valid"`
	ShopID    string  `json:"shop_id,omitempty"`
	Reference string  `json:"reference,omitempty"`
	Amount    *string `json:"amount,omitempty"`
	Terminal  string  `json:"terminal,omitempty"`
	Checksum  string  `json:"checksum,omitempty"`
	Error     string  `json:"error,omitempty"`
}

type IssuedResponse struct {
	ID            string  `json:"id"`
	ShopID        string  `json:"shop_id"`
	ShopName      string  `json:"shop_name"`
	Amount        *string `json:"amount,omitempty"`
	BillReference string  `json:"bill_reference,omitempty"`
	Payload       string  `json:"payload"`
	Checksum      string  `json:"checksum"`
	CreatedAt     string  `json:"created_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) HandleQR(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseGenerateRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.generateQRUC.Execute(r.Context(), req)
	if err != nil {
		h.writeGenerateError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("X-QR-Payload", resp.Payload)
	w.Header().Set("X-QR-ID", resp.ID.String())
	_, _ = w.Write(resp.PNG)
}

func (h *Handler) HandlePayload(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseGenerateRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.generateQRUC.Payload(r.Context(), req)
	if err != nil {
		h.writeGenerateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PayloadResponse{
		ID:       resp.ID.String(),
		Payload:  resp.Payload,
		Checksum: resp.Checksum,
	})
}

func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Payload == "" {
		writeError(w, http.StatusBadRequest, "payload required")
		return
	}

	resp, err := h.verifyQRUC.Execute(verifyqr.Request{Payload: req.Payload})
	switch {
	case errors.Is(err, maemanee.ErrChecksumMismatch):
		writeJSON(w, http.StatusUnprocessableEntity, VerifyResponse{Error: err.Error()})
		return
	case err != nil:
		writeJSON(w, http.StatusBadRequest, VerifyResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, VerifyResponse{
		Valid:     true,
		ShopID:    resp.ShopID,
		Reference: resp.Reference,
		Amount:    formatAmount(resp.Amount),
		Terminal:  resp.Terminal,
		Checksum:  resp.Checksum,
	})
}

func (h *Handler) HandleIssued(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	qr, err := h.generateQRUC.Find(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		h.logger.Error("find issued qr failed", zap.Stringer("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}

	writeJSON(w, http.StatusOK, IssuedResponse{
		ID:            qr.ID().String(),
		ShopID:        qr.ShopID(),
		ShopName:      qr.ShopName(),
		Amount:        formatAmount(qr.Amount()),
		BillReference: qr.BillReference(),
		Payload:       qr.Payload(),
		Checksum:      qr.Checksum(),
		CreatedAt:     qr.CreatedAt().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) parseGenerateRequest(w http.ResponseWriter, r *http.Request) (generateqr.Request, bool) {
	shopID := chi.URLParam(r, "shop_id")
	if shopID == "" {
		writeError(w, http.StatusBadRequest, "shop_id required")
		return generateqr.Request{}, false
	}

	q := r.URL.Query()
	shopName := q.Get("name")
	if shopName == "" {
		writeError(w, http.StatusBadRequest, "name query param required")
		return generateqr.Request{}, false
	}

	req := generateqr.Request{
		ShopID:        shopID,
		ShopName:      shopName,
		BillReference: q.Get("ref"),
	}
	if amountStr := q.Get("amount"); amountStr != "" {
		amount, err := decimal.NewFromString(amountStr)
		if err != nil || !amount.IsPositive() {
			writeError(w, http.StatusBadRequest, "invalid amount")
			return generateqr.Request{}, false
		}
		req.Amount = decimal.NewNullDecimal(amount)
	}
	return req, true
}

func (h *Handler) writeGenerateError(w http.ResponseWriter, err error) {
	if errors.Is(err, maemanee.ErrInvalidArgument) || errors.Is(err, maemanee.ErrValueTooLong) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.Error("qr generation failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "qr generation failed")
}

func formatAmount(amount decimal.NullDecimal) *string {
	if !amount.Valid {
		return nil
	}
	s := amount.Decimal.StringFixed(2)
	return &s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
