package wallet

import "errors"

var (
	// ErrInvalidInput is matched by every rejected command argument.
	ErrInvalidInput = errors.New("invalid input")

	ErrAccountNotFound   error = inputError("account not found")
	ErrSameAccount       error = inputError("source and destination must differ")
	ErrNonPositiveAmount error = inputError("amount must be positive")
	ErrInvalidKind       error = inputError("entry kind must be income or expense")

	// ErrInvalidImport is returned when an import document is rejected. The
	// wallet is left exactly as it was.
	ErrInvalidImport = errors.New("invalid import document")

	// ErrPersist is returned when the store write fails. The in-memory
	// state is not changed in that case.
	ErrPersist = errors.New("persisting wallet")
)

type inputError string

func (e inputError) Error() string { return string(e) }

func (e inputError) Is(target error) bool { return target == ErrInvalidInput }
