package contract

import (
	"encoding/json"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Rent parameters mirroring the host chain's storage pricing: a deposit of
// two years of byte-rent, refunded in full when the record is closed.
const (
	rentPerByteYear = 3480
	accountOverhead = 128
)

// RentExempt returns the deposit a record of size bytes must carry.
func RentExempt(size int) uint64 {
	return uint64(accountOverhead+size) * rentPerByteYear * 2
}

// Allocate writes a fresh record at its storage key and moves the rent
// deposit from payer onto the record address. A key that already holds data
// rejects the allocation, which is what makes derived record addresses
// natural duplicate-keys.
func (c *Context) Allocate(key string, addr, payer solana.PublicKey, v any) error {
	if c.RT.State.Get(key) != nil {
		return fmt.Errorf("record %s: %w", addr, ErrRecordExists)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode record %s: %v", addr, err)
	}
	if err := c.RT.System.CreateAccount(c.Env, addr, payer, RentExempt(len(b))); err != nil {
		return err
	}
	c.RT.State.Set(key, string(b))
	return nil
}

// Load reads a record into v. Missing records surface ErrRecordNotFound so a
// second finalizing call against a closed record fails loudly.
func (c *Context) Load(key string, v any) error {
	ptr := c.RT.State.Get(key)
	if ptr == nil {
		return ErrRecordNotFound
	}
	if err := json.Unmarshal([]byte(*ptr), v); err != nil {
		return fmt.Errorf("decode record at %q: %v", key, err)
	}
	return nil
}

// Store rewrites an existing record in place.
func (c *Context) Store(key string, v any) error {
	if c.RT.State.Get(key) == nil {
		return ErrRecordNotFound
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode record at %q: %v", key, err)
	}
	c.RT.State.Set(key, string(b))
	return nil
}

// Close destroys a record and refunds its rent deposit to rentReceiver.
func (c *Context) Close(key string, addr, rentReceiver solana.PublicKey) error {
	if c.RT.State.Get(key) == nil {
		return ErrRecordNotFound
	}
	c.RT.State.Delete(key)
	return c.RT.System.CloseAccount(addr, rentReceiver)
}
