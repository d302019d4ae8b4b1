package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/debit-core/internal/domain/entity"
	"github.com/Xausdorf/debit-core/internal/domain/repository"
)

const knownSchemes = int16(entity.AllowedBacs | entity.AllowedFasterPayments | entity.AllowedChaps)

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// AccountStore is the default account store, backed by the accounts table.
type AccountStore struct {
	db querier
}

func NewAccountStore(db querier) *AccountStore {
	return &AccountStore{db: db}
}

func (s *AccountStore) GetAccount(ctx context.Context, accountNumber string) (*entity.Account, error) {
	var (
		balance string
		allowed int16
		status  string
	)
	err := s.db.QueryRow(ctx,
		`SELECT balance::text, allowed_payment_schemes, status FROM accounts WHERE account_number = $1`,
		accountNumber,
	).Scan(&balance, &allowed, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if allowed < 0 || allowed&^knownSchemes != 0 {
		return nil, fmt.Errorf("account %s allowed_payment_schemes %d: %w", accountNumber, allowed, entity.ErrUnknownScheme)
	}
	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("account %s balance: %w", accountNumber, err)
	}
	st, err := entity.ParseAccountStatus(status)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", accountNumber, err)
	}

	return entity.NewAccount(accountNumber, amount, entity.AllowedPaymentSchemes(allowed), st), nil
}

func (s *AccountStore) UpdateAccount(ctx context.Context, account *entity.Account) error {
	if !repository.FitsScale(account.Balance()) {
		return fmt.Errorf("account %s balance %s: %w", account.AccountNumber(), account.Balance(), repository.ErrBalanceScale)
	}
	tag, err := s.db.Exec(ctx,
		`UPDATE accounts SET balance = $1::numeric, allowed_payment_schemes = $2, status = $3
		 WHERE account_number = $4`,
		account.Balance().String(),
		int16(account.AllowedPaymentSchemes()),
		account.Status().String(),
		account.AccountNumber(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", account.AccountNumber(), repository.ErrNotFound)
	}
	return nil
}
