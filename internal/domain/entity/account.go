package entity

import (
	"github.com/shopspring/decimal"
)

type Account struct {
	number         string
	balance        decimal.Decimal
	allowedSchemes AllowedPaymentSchemes
	status         AccountStatus
}

func NewAccount(
	number string,
	balance decimal.Decimal,
	allowedSchemes AllowedPaymentSchemes,
	status AccountStatus,
) *Account {
	return &Account{
		number:         number,
		balance:        balance,
		allowedSchemes: allowedSchemes,
		status:         status,
	}
}

func (a *Account) AccountNumber() string {
	return a.number
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) AllowedPaymentSchemes() AllowedPaymentSchemes {
	return a.allowedSchemes
}

func (a *Account) Status() AccountStatus {
	return a.status
}

// Debit subtracts amount from the balance. No floor is enforced here:
// sufficiency is a per-scheme rule, so a Bacs debit may leave the balance negative.
func (a *Account) Debit(amount decimal.Decimal) {
	a.balance = a.balance.Sub(amount)
}
