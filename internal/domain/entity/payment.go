package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentRequest struct {
	CreditorAccountNumber string
	DebtorAccountNumber   string
	Amount                decimal.Decimal
	PaymentDate           time.Time
	PaymentScheme         PaymentScheme
}

type PaymentResult struct {
	Success bool
}

// PaymentContext is the read-only view of one payment attempt handed to validators.
type PaymentContext struct {
	account *Account
	request PaymentRequest
}

// NewPaymentContext pairs a request with the debtor account; a nil account means
// the store did not find it.
func NewPaymentContext(account *Account, request PaymentRequest) PaymentContext {
	return PaymentContext{
		account: account,
		request: request,
	}
}

// Account returns a copy of the debtor account and whether it exists.
// Validators get a copy so the orchestrator's account cannot be changed through the context.
func (c PaymentContext) Account() (Account, bool) {
	if c.account == nil {
		return Account{}, false
	}
	return *c.account, true
}

func (c PaymentContext) Request() PaymentRequest {
	return c.request
}
