package payment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Xausdorf/debit-core/internal/domain/entity"
	"github.com/Xausdorf/debit-core/internal/domain/repository"
	"github.com/Xausdorf/debit-core/internal/domain/validation"
)

//go:generate mockgen -destination=mocks/repository.go -package=mocks github.com/Xausdorf/debit-core/internal/domain/repository AccountStore,AccountStoreFactory

var ErrMissingAccount = errors.New("payment allowed for a missing account")

// UseCase debits the debtor account when the validator allows the payment.
//
// The read, validate and write steps are not wrapped in a lock or transaction:
// two concurrent payments against one account can both pass validation against
// the same balance.
type UseCase struct {
	stores        repository.AccountStoreFactory
	dataStoreType string
	validator     validation.Validator
	logger        *slog.Logger
}

func NewUseCase(
	stores repository.AccountStoreFactory,
	dataStoreType string,
	validator validation.Validator,
	logger *slog.Logger,
) *UseCase {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &UseCase{
		stores:        stores,
		dataStoreType: dataStoreType,
		validator:     validator,
		logger:        logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req entity.PaymentRequest) (entity.PaymentResult, error) {
	logger := uc.logger.With(
		"attempt_id", uuid.NewString(),
		"debtor", req.DebtorAccountNumber,
		"scheme", req.PaymentScheme.String(),
	)

	store := uc.stores.CreateDataStore(uc.dataStoreType)

	account, err := store.GetAccount(ctx, req.DebtorAccountNumber)
	if err != nil {
		return entity.PaymentResult{}, fmt.Errorf("get account: %w", err)
	}

	res := uc.validator.IsPaymentAllowed(entity.NewPaymentContext(account, req))
	if !res.Success {
		logger.DebugContext(ctx, "payment rejected", "account_found", account != nil)
		return res, nil
	}

	if account == nil {
		return entity.PaymentResult{}, ErrMissingAccount
	}

	account.Debit(req.Amount)

	if err := store.UpdateAccount(ctx, account); err != nil {
		return entity.PaymentResult{}, fmt.Errorf("update account: %w", err)
	}

	logger.InfoContext(ctx, "payment debited",
		"amount", req.Amount.String(),
		"balance", account.Balance().String(),
	)

	return res, nil
}
