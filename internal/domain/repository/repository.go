package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Xausdorf/debit-core/internal/domain/entity"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrBalanceScale = errors.New("balance exceeds store scale")
)

// BalanceScale is the number of decimal places every AccountStore persists.
// UpdateAccount rejects balances that need more with ErrBalanceScale.
const BalanceScale int32 = 4

// FitsScale reports whether d is representable with BalanceScale places.
func FitsScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(BalanceScale))
}

// AccountStore reads and persists debtor accounts. GetAccount returns nil, nil
// when the account does not exist.
type AccountStore interface {
	GetAccount(ctx context.Context, accountNumber string) (*entity.Account, error)
	UpdateAccount(ctx context.Context, account *entity.Account) error
}

type AccountStoreFactory interface {
	CreateDataStore(dataStoreType string) AccountStore
}
