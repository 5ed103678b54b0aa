// Package rules holds the pure presence and sign checks every command's
// arguments must pass before anything is sent to the ledger.
//
// Rules check shape only. Whether an account exists or has enough balance
// is the ledger's business.
package rules

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/senabank/operator-console/internal/core/domain"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
	errValidate  error
)

// argTypes maps each command kind to the argument type it takes.
// A nil entry means the command takes no arguments and always passes.
var argTypes = map[domain.CommandKind]reflect.Type{
	domain.CmdAllAccounts:       nil,
	domain.CmdSummary:           nil,
	domain.CmdAllTransactions:   nil,
	domain.CmdAccountByID:       reflect.TypeOf(AccountRef{}),
	domain.CmdWithTransactions:  reflect.TypeOf(AccountRef{}),
	domain.CmdSummaryByAccount:  reflect.TypeOf(AccountRef{}),
	domain.CmdDeleteAccount:     reflect.TypeOf(AccountRef{}),
	domain.CmdTransactionCount:  reflect.TypeOf(AccountRef{}),
	domain.CmdTransactionByID:   reflect.TypeOf(TransactionRef{}),
	domain.CmdDeposit:           reflect.TypeOf(Movement{}),
	domain.CmdWithdraw:          reflect.TypeOf(Movement{}),
	domain.CmdTransfer:          reflect.TypeOf(Transfer{}),
	domain.CmdCreateClerk:       reflect.TypeOf(NewClerk{}),
	domain.CmdAddAccount:        reflect.TypeOf(NewAccount{}),
	domain.CmdApproveWithdrawal: reflect.TypeOf(domain.PendingApproval{}),
}

func initValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("positive_decimal", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.IsPositive()
	}); err != nil {
		return nil, fmt.Errorf("register positive_decimal: %w", err)
	}

	if err := v.RegisterValidation("nonnegative_decimal", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && !d.IsNegative()
	}); err != nil {
		return nil, fmt.Errorf("register nonnegative_decimal: %w", err)
	}

	return v, nil
}

// Validator returns the shared validator with the decimal rules registered.
func Validator() (*validator.Validate, error) {
	validateOnce.Do(func() {
		validate, errValidate = initValidator()
	})
	return validate, errValidate
}

// Known reports whether kind is part of the command catalogue.
func Known(kind domain.CommandKind) bool {
	_, ok := argTypes[kind]
	return ok
}

// ArgsType returns the argument type a command kind takes, or nil when it takes none.
func ArgsType(kind domain.CommandKind) reflect.Type {
	return argTypes[kind]
}

// Check validates args for kind. It returns nil when the command may be sent,
// otherwise an error wrapping domain.ErrInvalidInput.
func Check(kind domain.CommandKind, args any) error {
	want, ok := argTypes[kind]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", domain.ErrInvalidInput, kind)
	}
	if want == nil {
		return nil
	}

	rv := reflect.ValueOf(args)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fmt.Errorf("%w: %s: missing arguments", domain.ErrInvalidInput, kind)
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() || rv.Type() != want {
		return fmt.Errorf("%w: %s: expected %s arguments", domain.ErrInvalidInput, kind, want.Name())
	}

	v, err := Validator()
	if err != nil {
		return err
	}
	if err := v.Struct(rv.Interface()); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%w: %s: %s", domain.ErrInvalidInput, kind, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, kind, err)
	}
	return nil
}

// fieldError converts a single validation failure into a readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "positive_decimal":
		return field + " must be a positive amount"
	case "nonnegative_decimal":
		return field + " must not be negative"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// ParseRef reads an account or transaction id typed by an operator.
// Integral decimal forms such as "5.0" or "5e0" count as 5. Empty,
// non-numeric, fractional or out-of-range input yields 0, which no rule
// accepts.
func ParseRef(s string) int64 {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() || d.GreaterThan(maxRef) || d.LessThan(minRef) {
		return 0
	}
	return d.IntPart()
}

var (
	maxRef = decimal.NewFromInt(math.MaxInt64)
	minRef = decimal.NewFromInt(math.MinInt64)
)

// ParseAmount reads a money amount typed by an operator.
// Empty or non-numeric input yields zero.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
