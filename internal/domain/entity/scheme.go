package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownScheme = errors.New("unknown payment scheme")
	ErrUnknownStatus = errors.New("unknown account status")
)

type PaymentScheme string

const (
	PaymentSchemeBacs           PaymentScheme = "bacs"
	PaymentSchemeFasterPayments PaymentScheme = "faster_payments"
	PaymentSchemeChaps          PaymentScheme = "chaps"
)

var paymentSchemes = []PaymentScheme{
	PaymentSchemeBacs,
	PaymentSchemeFasterPayments,
	PaymentSchemeChaps,
}

// PaymentSchemes lists every known scheme in flag order.
func PaymentSchemes() []PaymentScheme {
	out := make([]PaymentScheme, len(paymentSchemes))
	copy(out, paymentSchemes)
	return out
}

func ParsePaymentScheme(s string) (PaymentScheme, error) {
	scheme := PaymentScheme(strings.ToLower(strings.TrimSpace(s)))
	if scheme.flag() == 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, s)
	}
	return scheme, nil
}

func (s PaymentScheme) String() string {
	return string(s)
}

func (s PaymentScheme) flag() AllowedPaymentSchemes {
	switch s {
	case PaymentSchemeBacs:
		return AllowedBacs
	case PaymentSchemeFasterPayments:
		return AllowedFasterPayments
	case PaymentSchemeChaps:
		return AllowedChaps
	default:
		return 0
	}
}

// AllowedPaymentSchemes is a bitmask of the schemes an account may debit through.
type AllowedPaymentSchemes uint8

const (
	AllowedBacs AllowedPaymentSchemes = 1 << iota
	AllowedFasterPayments
	AllowedChaps
)

// NewAllowedPaymentSchemes combines the flags of the given schemes.
func NewAllowedPaymentSchemes(schemes ...PaymentScheme) AllowedPaymentSchemes {
	var a AllowedPaymentSchemes
	for _, s := range schemes {
		a |= s.flag()
	}
	return a
}

// ParseAllowedPaymentSchemes reads a comma separated list such as "bacs,chaps".
func ParseAllowedPaymentSchemes(s string) (AllowedPaymentSchemes, error) {
	var a AllowedPaymentSchemes
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		scheme, err := ParsePaymentScheme(part)
		if err != nil {
			return 0, err
		}
		a |= scheme.flag()
	}
	return a, nil
}

// Has reports whether the scheme's flag is set. Unknown schemes are never allowed.
func (a AllowedPaymentSchemes) Has(s PaymentScheme) bool {
	f := s.flag()
	return f != 0 && a&f == f
}

func (a AllowedPaymentSchemes) Schemes() []PaymentScheme {
	out := make([]PaymentScheme, 0, len(paymentSchemes))
	for _, s := range paymentSchemes {
		if a.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

func (a AllowedPaymentSchemes) String() string {
	schemes := a.Schemes()
	parts := make([]string, len(schemes))
	for i, s := range schemes {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

type AccountStatus string

const (
	AccountStatusLive                AccountStatus = "live"
	AccountStatusDisabled            AccountStatus = "disabled"
	AccountStatusInboundPaymentsOnly AccountStatus = "inbound_payments_only"
)

func ParseAccountStatus(s string) (AccountStatus, error) {
	status := AccountStatus(strings.ToLower(strings.TrimSpace(s)))
	switch status {
	case AccountStatusLive, AccountStatusDisabled, AccountStatusInboundPaymentsOnly:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

func (s AccountStatus) String() string {
	return string(s)
}
