// Package validation decides whether a debit may be taken from an account
// under the rules of the requested payment scheme.
package validation

import (
	"github.com/Xausdorf/debit-core/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/validator.go -package=mocks . Validator

type Validator interface {
	IsPaymentAllowed(pc entity.PaymentContext) entity.PaymentResult
}

func result(ok bool) entity.PaymentResult {
	return entity.PaymentResult{Success: ok}
}

// BacsValidator allows Bacs payments from any existing account with the Bacs flag.
type BacsValidator struct{}

func (BacsValidator) IsPaymentAllowed(pc entity.PaymentContext) entity.PaymentResult {
	if pc.Request().PaymentScheme != entity.PaymentSchemeBacs {
		return result(false)
	}
	account, ok := pc.Account()
	if !ok {
		return result(false)
	}
	return result(account.AllowedPaymentSchemes().Has(entity.PaymentSchemeBacs))
}

// FasterPaymentsValidator additionally requires the balance to cover the amount.
type FasterPaymentsValidator struct{}

func (FasterPaymentsValidator) IsPaymentAllowed(pc entity.PaymentContext) entity.PaymentResult {
	req := pc.Request()
	if req.PaymentScheme != entity.PaymentSchemeFasterPayments {
		return result(false)
	}
	account, ok := pc.Account()
	if !ok {
		return result(false)
	}
	return result(account.AllowedPaymentSchemes().Has(entity.PaymentSchemeFasterPayments) &&
		account.Balance().GreaterThanOrEqual(req.Amount))
}

// ChapsValidator additionally requires the account to be live.
type ChapsValidator struct{}

func (ChapsValidator) IsPaymentAllowed(pc entity.PaymentContext) entity.PaymentResult {
	if pc.Request().PaymentScheme != entity.PaymentSchemeChaps {
		return result(false)
	}
	account, ok := pc.Account()
	if !ok {
		return result(false)
	}
	return result(account.AllowedPaymentSchemes().Has(entity.PaymentSchemeChaps) &&
		account.Status() == entity.AccountStatusLive)
}
