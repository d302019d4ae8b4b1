package validation

import (
	"github.com/Xausdorf/debit-core/internal/domain/entity"
)

// Composite runs its validators in order and returns the first successful result.
// Validators after the first success are not invoked. Duplicates are not filtered.
type Composite struct {
	validators []Validator
}

func NewComposite(validators ...Validator) *Composite {
	vs := make([]Validator, len(validators))
	copy(vs, validators)
	return &Composite{validators: vs}
}

// Default is the Bacs, FasterPayments, Chaps composition used by the server.
func Default() *Composite {
	return NewComposite(
		BacsValidator{},
		FasterPaymentsValidator{},
		ChapsValidator{},
	)
}

func (c *Composite) IsPaymentAllowed(pc entity.PaymentContext) entity.PaymentResult {
	for _, v := range c.validators {
		if res := v.IsPaymentAllowed(pc); res.Success {
			return res
		}
	}
	return result(false)
}
