package validation_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Xausdorf/debit-core/internal/domain/entity"
	"github.com/Xausdorf/debit-core/internal/domain/validation"
)

var (
	smallAmount = decimal.NewFromInt(1)
	largeAmount = decimal.NewFromInt(100)
)

func newContext(
	scheme entity.PaymentScheme,
	account *entity.Account,
	amount decimal.Decimal,
) entity.PaymentContext {
	return entity.NewPaymentContext(account, entity.PaymentRequest{
		DebtorAccountNumber: "12345678",
		PaymentScheme:       scheme,
		Amount:              amount,
	})
}

func newAccount(allowed entity.AllowedPaymentSchemes, balance decimal.Decimal, status entity.AccountStatus) *entity.Account {
	return entity.NewAccount("12345678", balance, allowed, status)
}

func TestBacsValidator(t *testing.T) {
	tests := []struct {
		name    string
		scheme  entity.PaymentScheme
		account *entity.Account
		want    bool
	}{
		{"faster payments request", entity.PaymentSchemeFasterPayments, newAccount(entity.AllowedBacs, largeAmount, entity.AccountStatusLive), false},
		{"chaps request", entity.PaymentSchemeChaps, newAccount(entity.AllowedBacs, largeAmount, entity.AccountStatusLive), false},
		{"absent account", entity.PaymentSchemeBacs, nil, false},
		{"bacs only", entity.PaymentSchemeBacs, newAccount(entity.AllowedBacs, largeAmount, entity.AccountStatusLive), true},
		{"bacs and faster payments", entity.PaymentSchemeBacs, newAccount(entity.AllowedBacs|entity.AllowedFasterPayments, largeAmount, entity.AccountStatusLive), true},
		{"bacs and chaps", entity.PaymentSchemeBacs, newAccount(entity.AllowedBacs|entity.AllowedChaps, largeAmount, entity.AccountStatusLive), true},
		{"disabled account still allowed", entity.PaymentSchemeBacs, newAccount(entity.AllowedBacs, largeAmount, entity.AccountStatusDisabled), true},
		{"overdraw still allowed", entity.PaymentSchemeBacs, newAccount(entity.AllowedBacs, decimal.Zero, entity.AccountStatusLive), true},
		{"faster payments only", entity.PaymentSchemeBacs, newAccount(entity.AllowedFasterPayments, largeAmount, entity.AccountStatusLive), false},
		{"chaps only", entity.PaymentSchemeBacs, newAccount(entity.AllowedChaps, largeAmount, entity.AccountStatusLive), false},
		{"faster payments and chaps", entity.PaymentSchemeBacs, newAccount(entity.AllowedFasterPayments|entity.AllowedChaps, largeAmount, entity.AccountStatusLive), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validation.BacsValidator{}.IsPaymentAllowed(newContext(tt.scheme, tt.account, smallAmount))
			assert.Equal(t, tt.want, res.Success)
		})
	}
}

func TestFasterPaymentsValidator(t *testing.T) {
	tests := []struct {
		name    string
		scheme  entity.PaymentScheme
		account *entity.Account
		amount  decimal.Decimal
		want    bool
	}{
		{"bacs request", entity.PaymentSchemeBacs, newAccount(entity.AllowedFasterPayments, largeAmount, entity.AccountStatusLive), smallAmount, false},
		{"chaps request", entity.PaymentSchemeChaps, newAccount(entity.AllowedFasterPayments, largeAmount, entity.AccountStatusLive), smallAmount, false},
		{"absent account", entity.PaymentSchemeFasterPayments, nil, smallAmount, false},
		{"adequate balance", entity.PaymentSchemeFasterPayments, newAccount(entity.AllowedFasterPayments, largeAmount, entity.AccountStatusLive), smallAmount, true},
		{"balance equals amount", entity.PaymentSchemeFasterPayments, newAccount(entity.AllowedFasterPayments, largeAmount, entity.AccountStatusLive), largeAmount, true},
		{"amount exceeds balance", entity.PaymentSchemeFasterPayments, newAccount(entity.AllowedFasterPayments, smallAmount, entity.AccountStatusLive), largeAmount, false},
		{"bacs only", entity.PaymentSchemeFasterPayments, newAccount(entity.AllowedBacs, largeAmount, entity.AccountStatusLive), smallAmount, false},
		{"chaps only", entity.PaymentSchemeFasterPayments, newAccount(entity.AllowedChaps, largeAmount, entity.AccountStatusLive), smallAmount, false},
		{"bacs and chaps", entity.PaymentSchemeFasterPayments, newAccount(entity.AllowedBacs|entity.AllowedChaps, largeAmount, entity.AccountStatusLive), smallAmount, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validation.FasterPaymentsValidator{}.IsPaymentAllowed(newContext(tt.scheme, tt.account, tt.amount))
			assert.Equal(t, tt.want, res.Success)
		})
	}
}

func TestChapsValidator(t *testing.T) {
	tests := []struct {
		name    string
		scheme  entity.PaymentScheme
		account *entity.Account
		want    bool
	}{
		{"bacs request", entity.PaymentSchemeBacs, newAccount(entity.AllowedChaps, largeAmount, entity.AccountStatusLive), false},
		{"faster payments request", entity.PaymentSchemeFasterPayments, newAccount(entity.AllowedChaps, largeAmount, entity.AccountStatusLive), false},
		{"absent account", entity.PaymentSchemeChaps, nil, false},
		{"live chaps account", entity.PaymentSchemeChaps, newAccount(entity.AllowedChaps, largeAmount, entity.AccountStatusLive), true},
		{"overdraw still allowed", entity.PaymentSchemeChaps, newAccount(entity.AllowedChaps, decimal.Zero, entity.AccountStatusLive), true},
		{"bacs only", entity.PaymentSchemeChaps, newAccount(entity.AllowedBacs, largeAmount, entity.AccountStatusLive), false},
		{"bacs and faster payments", entity.PaymentSchemeChaps, newAccount(entity.AllowedBacs|entity.AllowedFasterPayments, largeAmount, entity.AccountStatusLive), false},
		{"disabled", entity.PaymentSchemeChaps, newAccount(entity.AllowedChaps, largeAmount, entity.AccountStatusDisabled), false},
		{"inbound payments only", entity.PaymentSchemeChaps, newAccount(entity.AllowedChaps, largeAmount, entity.AccountStatusInboundPaymentsOnly), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validation.ChapsValidator{}.IsPaymentAllowed(newContext(tt.scheme, tt.account, smallAmount))
			assert.Equal(t, tt.want, res.Success)
		})
	}
}

// Every scheme validator against every request scheme, flag combination,
// status and balance relation.
func TestSchemeValidators_Exhaustive(t *testing.T) {
	validators := map[entity.PaymentScheme]validation.Validator{
		entity.PaymentSchemeBacs:           validation.BacsValidator{},
		entity.PaymentSchemeFasterPayments: validation.FasterPaymentsValidator{},
		entity.PaymentSchemeChaps:          validation.ChapsValidator{},
	}
	statuses := []entity.AccountStatus{
		entity.AccountStatusLive,
		entity.AccountStatusDisabled,
		entity.AccountStatusInboundPaymentsOnly,
	}
	balances := []decimal.Decimal{decimal.Zero, smallAmount, largeAmount}

	for owner, v := range validators {
		for _, requested := range entity.PaymentSchemes() {
			for mask := entity.AllowedPaymentSchemes(0); mask <= entity.AllowedBacs|entity.AllowedFasterPayments|entity.AllowedChaps; mask++ {
				for _, status := range statuses {
					for _, balance := range balances {
						acc := newAccount(mask, balance, status)
						pc := newContext(requested, acc, smallAmount)

						want := requested == owner &&
							mask.Has(owner) &&
							(owner != entity.PaymentSchemeFasterPayments || balance.GreaterThanOrEqual(smallAmount)) &&
							(owner != entity.PaymentSchemeChaps || status == entity.AccountStatusLive)

						got := v.IsPaymentAllowed(pc)
						assert.Equal(t, want, got.Success,
							fmt.Sprintf("validator=%s requested=%s allowed=%s status=%s balance=%s",
								owner, requested, mask, status, balance))
					}
				}
			}

			assert.False(t, v.IsPaymentAllowed(newContext(requested, nil, smallAmount)).Success)
		}
	}
}

func TestSchemeValidators_DoNotMutateAccount(t *testing.T) {
	acc := newAccount(entity.AllowedBacs|entity.AllowedFasterPayments|entity.AllowedChaps, largeAmount, entity.AccountStatusLive)

	for _, s := range entity.PaymentSchemes() {
		validation.Default().IsPaymentAllowed(newContext(s, acc, smallAmount))
	}

	assert.Equal(t, "100", acc.Balance().String())
	assert.Equal(t, entity.AccountStatusLive, acc.Status())
}
