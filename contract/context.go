package contract

import (
	"github.com/gagliardetto/solana-go"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

// Context carries one call's runtime handle and authenticated env through the
// helpers so they never reach for globals.
type Context struct {
	RT  *sdk.Runtime
	Env sdk.Env
}

func NewContext(rt *sdk.Runtime, env sdk.Env) *Context {
	return &Context{RT: rt, Env: env}
}

// Sender returns the address of the current call's originator.
func (c *Context) Sender() solana.PublicKey {
	return c.Env.Caller
}
