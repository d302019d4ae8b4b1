package account

import (
	"context"
	"fmt"

	"github.com/Xausdorf/debit-core/internal/domain/entity"
	"github.com/Xausdorf/debit-core/internal/domain/repository"
)

// UseCase reads an account from the configured store.
type UseCase struct {
	stores        repository.AccountStoreFactory
	dataStoreType string
}

func NewUseCase(stores repository.AccountStoreFactory, dataStoreType string) *UseCase {
	return &UseCase{
		stores:        stores,
		dataStoreType: dataStoreType,
	}
}

func (uc *UseCase) Execute(ctx context.Context, accountNumber string) (*entity.Account, error) {
	acc, err := uc.stores.CreateDataStore(uc.dataStoreType).GetAccount(ctx, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	if acc == nil {
		return nil, repository.ErrNotFound
	}
	return acc, nil
}
