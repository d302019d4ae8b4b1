package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Xausdorf/debit-core/internal/domain/entity"
	"github.com/Xausdorf/debit-core/internal/domain/validation"
	"github.com/Xausdorf/debit-core/internal/domain/validation/mocks"
)

var (
	allowed  = entity.PaymentResult{Success: true}
	rejected = entity.PaymentResult{Success: false}
)

func someContext() entity.PaymentContext {
	return newContext(
		entity.PaymentSchemeBacs,
		newAccount(entity.AllowedBacs, decimal.NewFromInt(100), entity.AccountStatusLive),
		smallAmount,
	)
}

func TestComposite_StopsAtFirstSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := mocks.NewMockValidator(ctrl)
	second := mocks.NewMockValidator(ctrl)
	third := mocks.NewMockValidator(ctrl)

	pc := someContext()
	gomock.InOrder(
		first.EXPECT().IsPaymentAllowed(pc).Return(rejected).Times(1),
		second.EXPECT().IsPaymentAllowed(pc).Return(allowed).Times(1),
	)
	third.EXPECT().IsPaymentAllowed(gomock.Any()).Times(0)

	res := validation.NewComposite(first, second, third).IsPaymentAllowed(pc)

	assert.True(t, res.Success)
}

func TestComposite_AllRejecting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := mocks.NewMockValidator(ctrl)
	second := mocks.NewMockValidator(ctrl)
	third := mocks.NewMockValidator(ctrl)

	pc := someContext()
	gomock.InOrder(
		first.EXPECT().IsPaymentAllowed(pc).Return(rejected).Times(1),
		second.EXPECT().IsPaymentAllowed(pc).Return(rejected).Times(1),
		third.EXPECT().IsPaymentAllowed(pc).Return(rejected).Times(1),
	)

	res := validation.NewComposite(first, second, third).IsPaymentAllowed(pc)

	assert.False(t, res.Success)
}

func TestComposite_Empty(t *testing.T) {
	res := validation.NewComposite().IsPaymentAllowed(someContext())

	assert.False(t, res.Success)
}

func TestComposite_DuplicateValidatorsFirstWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dup := mocks.NewMockValidator(ctrl)
	dup.EXPECT().IsPaymentAllowed(gomock.Any()).Return(allowed).Times(1)

	res := validation.NewComposite(dup, dup).IsPaymentAllowed(someContext())

	assert.True(t, res.Success)
}

func TestComposite_ConstructorCopiesSlice(t *testing.T) {
	vs := []validation.Validator{validation.ChapsValidator{}}
	c := validation.NewComposite(vs...)
	vs[0] = validation.BacsValidator{}

	assert.False(t, c.IsPaymentAllowed(someContext()).Success)
}

func TestDefault(t *testing.T) {
	all := entity.AllowedBacs | entity.AllowedFasterPayments | entity.AllowedChaps

	tests := []struct {
		name    string
		scheme  entity.PaymentScheme
		account *entity.Account
		amount  decimal.Decimal
		want    bool
	}{
		{"bacs", entity.PaymentSchemeBacs, newAccount(entity.AllowedBacs, largeAmount, entity.AccountStatusLive), smallAmount, true},
		{"faster payments short of funds", entity.PaymentSchemeFasterPayments, newAccount(entity.AllowedFasterPayments, smallAmount, entity.AccountStatusLive), largeAmount, false},
		{"chaps disabled", entity.PaymentSchemeChaps, newAccount(entity.AllowedChaps, largeAmount, entity.AccountStatusDisabled), smallAmount, false},
		{"chaps absent", entity.PaymentSchemeChaps, nil, smallAmount, false},
		{"chaps live", entity.PaymentSchemeChaps, newAccount(all, largeAmount, entity.AccountStatusLive), smallAmount, true},
		{"unknown scheme", entity.PaymentScheme("swift"), newAccount(all, largeAmount, entity.AccountStatusLive), smallAmount, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validation.Default().IsPaymentAllowed(newContext(tt.scheme, tt.account, tt.amount))
			assert.Equal(t, tt.want, res.Success)
		})
	}
}
