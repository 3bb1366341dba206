package apperrors

import "errors"

// ErrNotFound indicates that a requested record could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNotEditable indicates the target transaction may never be mutated
// (opening balances and adjustment/correction entries).
var ErrNotEditable = errors.New("transaction is not editable")

// ErrFutureDate indicates a mutation targeting a future date, which is
// rejected unconditionally.
var ErrFutureDate = errors.New("future dates are not allowed")

// ErrPermissionRequired indicates a past-date mutation attempted without
// session elevation; the caller should obtain elevation and retry.
var ErrPermissionRequired = errors.New("past editing requires elevation")

// ErrConfirmationRequired indicates a mutation that would trigger forward
// balance recalculation was sent without the explicit confirmation flag.
var ErrConfirmationRequired = errors.New("forward recalculation must be confirmed")

// ErrForbidden indicates a credential check (PIN) failed.
var ErrForbidden = errors.New("forbidden")
