// Package redis implements the backup account store. Each account is a hash
// under "account:<number>" with balance, allowed_payment_schemes and status fields.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/debit-core/internal/domain/entity"
	"github.com/Xausdorf/debit-core/internal/domain/repository"
)

const (
	keyPrefix = "account:"

	fieldBalance = "balance"
	fieldAllowed = "allowed_payment_schemes"
	fieldStatus  = "status"
)

type AccountStore struct {
	client redis.UniversalClient
}

func NewAccountStore(client redis.UniversalClient) *AccountStore {
	return &AccountStore{client: client}
}

func accountKey(number string) string {
	return keyPrefix + number
}

func (s *AccountStore) GetAccount(ctx context.Context, accountNumber string) (*entity.Account, error) {
	fields, err := s.client.HGetAll(ctx, accountKey(accountNumber)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	balance, err := decimal.NewFromString(fields[fieldBalance])
	if err != nil {
		return nil, fmt.Errorf("account %s balance: %w", accountNumber, err)
	}
	allowed, err := entity.ParseAllowedPaymentSchemes(fields[fieldAllowed])
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", accountNumber, err)
	}
	status, err := entity.ParseAccountStatus(fields[fieldStatus])
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", accountNumber, err)
	}

	return entity.NewAccount(accountNumber, balance, allowed, status), nil
}

// UpdateAccount overwrites the account hash. It also serves to seed new accounts.
func (s *AccountStore) UpdateAccount(ctx context.Context, account *entity.Account) error {
	if !repository.FitsScale(account.Balance()) {
		return fmt.Errorf("account %s balance %s: %w", account.AccountNumber(), account.Balance(), repository.ErrBalanceScale)
	}
	return s.client.HSet(ctx, accountKey(account.AccountNumber()),
		fieldBalance, account.Balance().String(),
		fieldAllowed, account.AllowedPaymentSchemes().String(),
		fieldStatus, account.Status().String(),
	).Err()
}
