// Package ledger models the external fungible-token collaborator: accounts
// identified by addresses, token balances and allowances in 256-bit
// unsigned integers, and a registry of deployed contracts.
//
// The semantics follow the standard fungible-token surface:
//   - Transfer moves tokens from the caller's own balance.
//   - Approve grants a spender the right to move up to an approved amount
//     on the owner's behalf.
//   - TransferFrom spends that allowance.
//
// Invariants maintained by the reference implementation:
//   - conservation: sum(balances) == totalSupply
//   - non-negativity: balances and allowances never underflow
package ledger

import (
	"sync"

	"github.com/holiman/uint256"
)

// Token is the fungible-token contract surface consumed by callers.
// All amounts are non-nil 256-bit unsigned integers; returned values are
// private copies the caller may mutate freely.
type Token interface {
	// BalanceOf returns the balance held by addr.
	BalanceOf(addr Address) *uint256.Int

	// Allowance returns the amount spender may move on owner's behalf.
	Allowance(owner, spender Address) *uint256.Int

	// Transfer moves amount from the caller's balance to the recipient.
	Transfer(caller, to Address, amount *uint256.Int) error

	// Approve sets spender's allowance over the caller's balance.
	Approve(caller, spender Address, amount *uint256.Int) error

	// TransferFrom moves amount from a third-party balance, spending the
	// caller's allowance.
	TransferFrom(caller, from, to Address, amount *uint256.Int) error
}

// FungibleToken is an in-memory reference Token implementation.
type FungibleToken struct {
	name   string
	symbol string

	mu         sync.RWMutex
	supply     *uint256.Int
	balances   map[Address]*uint256.Int
	allowances map[Address]map[Address]*uint256.Int
}

// NewFungibleToken creates an empty token with the given name and symbol.
func NewFungibleToken(name, symbol string) *FungibleToken {
	return &FungibleToken{
		name:       name,
		symbol:     symbol,
		supply:     new(uint256.Int),
		balances:   make(map[Address]*uint256.Int),
		allowances: make(map[Address]map[Address]*uint256.Int),
	}
}

// Name returns the token name.
func (t *FungibleToken) Name() string { return t.name }

// Symbol returns the token symbol.
func (t *FungibleToken) Symbol() string { return t.symbol }

// TotalSupply returns the aggregate minted supply.
func (t *FungibleToken) TotalSupply() *uint256.Int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supply.Clone()
}

// BalanceOf returns the balance held by addr.
func (t *FungibleToken) BalanceOf(addr Address) *uint256.Int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if b, ok := t.balances[addr]; ok {
		return b.Clone()
	}
	return new(uint256.Int)
}

// Allowance returns the amount spender may move on owner's behalf.
func (t *FungibleToken) Allowance(owner, spender Address) *uint256.Int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if a, ok := t.allowances[owner][spender]; ok {
		return a.Clone()
	}
	return new(uint256.Int)
}

// Mint creates amount new tokens in the recipient's balance.
func (t *FungibleToken) Mint(to Address, amount *uint256.Int) error {
	if to.IsZero() {
		return ErrZeroAddress
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	supply, overflow := new(uint256.Int).AddOverflow(t.supply, amount)
	if overflow {
		return ErrSupplyOverflow
	}
	t.supply = supply
	t.credit(to, amount)
	return nil
}

// Transfer moves amount from the caller's balance to the recipient.
func (t *FungibleToken) Transfer(caller, to Address, amount *uint256.Int) error {
	if caller.IsZero() || to.IsZero() {
		return ErrZeroAddress
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.debit(caller, amount); err != nil {
		return err
	}
	t.credit(to, amount)
	return nil
}

// Approve sets spender's allowance over the caller's balance.
func (t *FungibleToken) Approve(caller, spender Address, amount *uint256.Int) error {
	if caller.IsZero() || spender.IsZero() {
		return ErrZeroAddress
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.allowances[caller] == nil {
		t.allowances[caller] = make(map[Address]*uint256.Int)
	}
	t.allowances[caller][spender] = amount.Clone()
	return nil
}

// TransferFrom moves amount from a third-party balance, spending the
// caller's allowance. The allowance is decremented by exactly the amount
// moved.
func (t *FungibleToken) TransferFrom(caller, from, to Address, amount *uint256.Int) error {
	if caller.IsZero() || from.IsZero() || to.IsZero() {
		return ErrZeroAddress
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	allowed, ok := t.allowances[from][caller]
	if !ok || allowed.Lt(amount) {
		return ErrInsufficientAllowance
	}
	if err := t.debit(from, amount); err != nil {
		return err
	}
	allowed.Sub(allowed, amount)
	t.credit(to, amount)
	return nil
}

// debit removes amount from addr's balance. Caller holds t.mu.
func (t *FungibleToken) debit(addr Address, amount *uint256.Int) error {
	b, ok := t.balances[addr]
	if !ok || b.Lt(amount) {
		return ErrInsufficientBalance
	}
	b.Sub(b, amount)
	return nil
}

// credit adds amount to addr's balance. Caller holds t.mu.
// Cannot overflow: supply overflow is checked at mint and transfers
// conserve the total.
func (t *FungibleToken) credit(addr Address, amount *uint256.Int) {
	b, ok := t.balances[addr]
	if !ok {
		b = new(uint256.Int)
		t.balances[addr] = b
	}
	b.Add(b, amount)
}

// CheckConservation verifies sum(balances) == totalSupply. Intended for
// tests and diagnostics.
func (t *FungibleToken) CheckConservation() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	sum := new(uint256.Int)
	for _, b := range t.balances {
		sum.Add(sum, b)
	}
	return sum.Eq(t.supply)
}

var _ Token = (*FungibleToken)(nil)
