package ledger

import "errors"

var (
	// ErrZeroAddress is returned when an operation names the null address.
	ErrZeroAddress = errors.New("ledger: zero address")

	// ErrInsufficientBalance is returned when a transfer exceeds the
	// sender's balance.
	ErrInsufficientBalance = errors.New("ledger: insufficient balance")

	// ErrInsufficientAllowance is returned when a delegated transfer
	// exceeds the spender's approved allowance.
	ErrInsufficientAllowance = errors.New("ledger: insufficient allowance")

	// ErrAddressInUse is returned when deploying a contract to an address
	// that already hosts one.
	ErrAddressInUse = errors.New("ledger: address already in use")

	// ErrSupplyOverflow is returned when minting would overflow the total
	// supply.
	ErrSupplyOverflow = errors.New("ledger: total supply overflow")
)
