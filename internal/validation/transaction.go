package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidTransaction is returned when a transaction fails a domain rule.
var ErrInvalidTransaction = errors.New("invalid transaction")

// TransactionInput carries the transaction fields after structural decoding.
type TransactionInput struct {
	Amount      int64  `validate:"required,gt=0"`
	Kind        string `validate:"required,oneof=c d"`
	Description string `validate:"required,min=1,max=10"`
}

var validate = validator.New()

// Normalize lowercases the kind so "C" and "D" are accepted.
func Normalize(in TransactionInput) TransactionInput {
	in.Kind = strings.ToLower(in.Kind)
	return in
}

// Validate checks the domain rules: positive amount, kind in {c, d},
// description of 1 to 10 characters. Deterministic, no side effects.
func Validate(in TransactionInput) (TransactionInput, error) {
	in = Normalize(in)
	if err := validate.Struct(in); err != nil {
		return in, fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	return in, nil
}
