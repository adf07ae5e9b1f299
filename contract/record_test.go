package contract_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

type fixture struct {
	Value uint64 `json:"value"`
}

func TestRecordLifecycle(t *testing.T) {
	host := sdk.NewMemoryHost()
	payer := solana.NewWallet().PublicKey()
	addr := solana.NewWallet().PublicKey()
	host.System.Airdrop(payer, solana.LAMPORTS_PER_SOL)
	ctx := contract.NewContext(host.Runtime, sdk.NewEnv(payer, 1, 1))

	require.NoError(t, ctx.Allocate("rec", addr, payer, &fixture{Value: 7}))

	// Rent moved onto the record address.
	rent := host.System.Balance(addr)
	assert.NotZero(t, rent)
	assert.Equal(t, uint64(solana.LAMPORTS_PER_SOL)-rent, host.System.Balance(payer))

	// Double allocation at the same key fails.
	err := ctx.Allocate("rec", addr, payer, &fixture{Value: 9})
	assert.ErrorIs(t, err, contract.ErrRecordExists)

	var got fixture
	require.NoError(t, ctx.Load("rec", &got))
	assert.Equal(t, uint64(7), got.Value)

	got.Value = 8
	require.NoError(t, ctx.Store("rec", &got))
	require.NoError(t, ctx.Load("rec", &got))
	assert.Equal(t, uint64(8), got.Value)

	// Close refunds the deposit and kills the record.
	require.NoError(t, ctx.Close("rec", addr, payer))
	assert.Equal(t, uint64(solana.LAMPORTS_PER_SOL), host.System.Balance(payer))
	assert.ErrorIs(t, ctx.Load("rec", &got), contract.ErrRecordNotFound)
	assert.ErrorIs(t, ctx.Store("rec", &got), contract.ErrRecordNotFound)
	assert.ErrorIs(t, ctx.Close("rec", addr, payer), contract.ErrRecordNotFound)
}

func TestDeriveIsDeterministic(t *testing.T) {
	programID := solana.NewWallet().PublicKey()
	owner := solana.NewWallet().PublicKey()

	a1, b1, err := contract.Derive(programID, []byte("state"), owner.Bytes())
	require.NoError(t, err)
	a2, b2, err := contract.Derive(programID, []byte("state"), owner.Bytes())
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)

	// Different seeds land somewhere else.
	a3, _, err := contract.Derive(programID, []byte("vault"), owner.Bytes())
	require.NoError(t, err)
	assert.NotEqual(t, a1, a3)

	// The proof rebuilt from the same inputs controls the address.
	proof := contract.Proof(programID, b1, []byte("state"), owner.Bytes())
	assert.True(t, proof.Controls(a1))
	assert.False(t, proof.Controls(a3))
}
