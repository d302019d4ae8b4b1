package http //nolint:revive // directory-based package name, imported with alias

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/debit-core/internal/domain/entity"
	"github.com/Xausdorf/debit-core/internal/domain/repository"
	"github.com/Xausdorf/debit-core/internal/infrastructure/metrics"
	"github.com/Xausdorf/debit-core/internal/usecase/account"
	"github.com/Xausdorf/debit-core/internal/usecase/payment"
)

type Handler struct {
	paymentUC *payment.UseCase
	accountUC *account.UseCase
	metrics   *metrics.Payments
	validate  *validator.Validate
	logger    *slog.Logger
}

func NewHandler(
	paymentUC *payment.UseCase,
	accountUC *account.UseCase,
	m *metrics.Payments,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{
		paymentUC: paymentUC,
		accountUC: accountUC,
		metrics:   m,
		validate:  newValidator(),
		logger:    logger,
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	mustRegister(v, "positive_amount", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	})
	// Stores keep repository.BalanceScale decimal places.
	mustRegister(v, "amount_scale", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && repository.FitsScale(d)
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

type PayRequest struct {
	DebtorAccountNumber   string          `json:"debtor_account_number" validate:"required,max=64"`
	CreditorAccountNumber string          `json:"creditor_account_number" validate:"max=64"`
	PaymentScheme         string          `json:"payment_scheme" validate:"required,oneof=bacs faster_payments chaps"`
	Amount                decimal.Decimal `json:"amount" validate:"positive_amount,amount_scale"`
	PaymentDate           time.Time       `json:"payment_date"`
}

type PayResponse struct {
	Success bool `json:"success"`
}

type AccountResponse struct {
	AccountNumber         string   `json:"account_number"`
	Balance               string   `json:"balance"`
	AllowedPaymentSchemes []string `json:"allowed_payment_schemes"`
	Status                string   `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) HandlePay(w http.ResponseWriter, r *http.Request) {
	var req PayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validationMessage(err)})
		return
	}

	// Checked by the validator above.
	scheme, _ := entity.ParsePaymentScheme(req.PaymentScheme)

	paymentDate := req.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now().UTC()
	}

	res, err := h.paymentUC.Execute(r.Context(), entity.PaymentRequest{
		CreditorAccountNumber: req.CreditorAccountNumber,
		DebtorAccountNumber:   req.DebtorAccountNumber,
		Amount:                req.Amount,
		PaymentDate:           paymentDate,
		PaymentScheme:         scheme,
	})
	h.metrics.Observe(scheme, res, err)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "payment failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "payment failed"})
		return
	}

	writeJSON(w, http.StatusOK, PayResponse{Success: res.Success})
}

func (h *Handler) HandleAccount(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "account_number")
	if accountNumber == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "account_number required"})
		return
	}

	acc, err := h.accountUC.Execute(r.Context(), accountNumber)
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "account not found"})
		return
	}
	if err != nil {
		h.logger.ErrorContext(r.Context(), "account lookup failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "account lookup failed"})
		return
	}

	schemes := acc.AllowedPaymentSchemes().Schemes()
	names := make([]string, len(schemes))
	for i, s := range schemes {
		names[i] = s.String()
	}

	writeJSON(w, http.StatusOK, AccountResponse{
		AccountNumber:         acc.AccountNumber(),
		Balance:               acc.Balance().String(),
		AllowedPaymentSchemes: names,
		Status:                acc.Status().String(),
	})
}

func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return "invalid field " + fe.Field() + ": " + fe.Tag()
	}
	return "invalid request"
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
