package ledger

// Address identifies an account or a deployed contract on the ledger.
// The zero value is the null address and is never a valid participant.
type Address string

// ZeroAddress is the null address.
const ZeroAddress Address = ""

// IsZero reports whether the address is the null address.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

func (a Address) String() string {
	return string(a)
}
