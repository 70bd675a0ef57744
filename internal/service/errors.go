package service

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// ValidationError carries a client-facing message. errors.Is(err, ErrValidation) matches it.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error { return &ValidationError{Message: msg} }

var (
	errCustomerRequired = invalid("Customer name, email, and address are required")
	errItemsRequired    = invalid("At least one line item is required")
	errProductIDMissing = invalid("Each line item must include product_id")
	errQuantityInvalid  = invalid("Quantity must be greater than zero")
	errQuantityNotInt   = invalid("Quantity must be an integer")
)

// unknownProducts lists integer ids ascending, then non-integer tokens in lexical order.
func unknownProducts(ids []int64, tokens []string) error {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	sort.Strings(tokens)
	parts := make([]string, 0, len(ids)+len(tokens))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	parts = append(parts, tokens...)
	return invalid(fmt.Sprintf("Unknown product ids: [%s]", strings.Join(parts, ", ")))
}
