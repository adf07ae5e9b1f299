package voting_test

import (
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract/voting"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

var programID = solana.NewWallet().PublicKey()

type bench struct {
	host    *sdk.Host
	gov     *voting.Program
	creator solana.PublicKey
	voter   solana.PublicKey
	mint    solana.PublicKey
}

func newBench(t *testing.T) *bench {
	t.Helper()
	host := sdk.NewMemoryHost()
	b := &bench{
		host:    host,
		gov:     voting.New(programID, host.Runtime),
		creator: solana.NewWallet().PublicKey(),
		voter:   solana.NewWallet().PublicKey(),
		mint:    solana.NewWallet().PublicKey(),
	}
	host.System.Airdrop(b.creator, 10*solana.LAMPORTS_PER_SOL)
	host.System.Airdrop(b.voter, 10*solana.LAMPORTS_PER_SOL)

	env := sdk.NewEnv(b.creator, 1, 1)
	require.NoError(t, host.Tokens.CreateMint(env, b.mint, b.creator, 6))
	return b
}

func env(caller solana.PublicKey) sdk.Env { return sdk.NewEnv(caller, 1, 1) }

// fund gives a wallet `amount` governance tokens.
func (b *bench) fund(t *testing.T, w solana.PublicKey, amount uint64) {
	t.Helper()
	_, err := b.host.Tokens.EnsureAccount(env(w), w, b.mint, w)
	require.NoError(t, err)
	require.NoError(t, b.host.Tokens.MintTo(env(b.creator), b.mint, w, amount, nil))
}

func TestInitializeDao(t *testing.T) {
	b := newBench(t)

	dao, err := b.gov.InitializeDao(env(b.creator), "builders")
	require.NoError(t, err)

	rec, err := b.gov.GetDao(dao)
	require.NoError(t, err)
	assert.Equal(t, "builders", rec.Name)
	assert.Equal(t, b.creator, rec.Authority)
	assert.Equal(t, uint64(0), rec.ProposalCount)

	_, err = b.gov.InitializeDao(env(b.creator), "builders")
	assert.ErrorIs(t, err, contract.ErrRecordExists)

	_, err = b.gov.InitializeDao(env(b.creator), "")
	assert.ErrorIs(t, err, voting.ErrInvalidName)
	_, err = b.gov.InitializeDao(env(b.creator), strings.Repeat("x", 33))
	assert.ErrorIs(t, err, voting.ErrInvalidName)
}

func TestInitializeProposal(t *testing.T) {
	b := newBench(t)
	dao, err := b.gov.InitializeDao(env(b.creator), "builders")
	require.NoError(t, err)

	p0, err := b.gov.InitializeProposal(env(b.creator), dao, "ship it")
	require.NoError(t, err)
	p1, err := b.gov.InitializeProposal(env(b.creator), dao, "ship it again")
	require.NoError(t, err)
	assert.NotEqual(t, p0, p1)

	rec, err := b.gov.GetDao(dao)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), rec.ProposalCount)

	// Counter positions are recomputable.
	addr0, _, err := b.gov.ProposalAddress(dao, 0)
	require.NoError(t, err)
	assert.Equal(t, p0, addr0)

	_, err = b.gov.InitializeProposal(env(b.creator), dao, "")
	assert.ErrorIs(t, err, voting.ErrInvalidMetadata)
	_, err = b.gov.InitializeProposal(env(b.creator), dao, strings.Repeat("x", 51))
	assert.ErrorIs(t, err, voting.ErrInvalidMetadata)
	_, err = b.gov.InitializeProposal(env(b.creator), solana.NewWallet().PublicKey(), "nowhere")
	assert.ErrorIs(t, err, contract.ErrRecordNotFound)
}

func TestCastVoteQuadraticWeight(t *testing.T) {
	b := newBench(t)
	dao, err := b.gov.InitializeDao(env(b.creator), "builders")
	require.NoError(t, err)
	proposal, err := b.gov.InitializeProposal(env(b.creator), dao, "ship it")
	require.NoError(t, err)

	// 10_000 tokens vote as 100 credits, not 10_000.
	b.fund(t, b.voter, 10_000)
	require.NoError(t, b.gov.CastVote(env(b.voter), proposal, b.mint, voting.VoteYes))

	rec, err := b.gov.GetProposal(proposal)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), rec.YesVoteCount)
	assert.Equal(t, uint64(0), rec.NoVoteCount)

	// A small holder still lands a measurable no.
	small := solana.NewWallet().PublicKey()
	b.host.System.Airdrop(small, solana.LAMPORTS_PER_SOL)
	b.fund(t, small, 9)
	require.NoError(t, b.gov.CastVote(env(small), proposal, b.mint, voting.VoteNo))

	rec, err = b.gov.GetProposal(proposal)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), rec.NoVoteCount)
}

func TestCastVoteOncePerVoter(t *testing.T) {
	b := newBench(t)
	dao, err := b.gov.InitializeDao(env(b.creator), "builders")
	require.NoError(t, err)
	proposal, err := b.gov.InitializeProposal(env(b.creator), dao, "ship it")
	require.NoError(t, err)
	b.fund(t, b.voter, 100)

	require.NoError(t, b.gov.CastVote(env(b.voter), proposal, b.mint, voting.VoteYes))
	err = b.gov.CastVote(env(b.voter), proposal, b.mint, voting.VoteNo)
	assert.ErrorIs(t, err, contract.ErrRecordExists)

	// The tally kept only the first vote.
	rec, err := b.gov.GetProposal(proposal)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), rec.YesVoteCount)
	assert.Equal(t, uint64(0), rec.NoVoteCount)
}

func TestCastVoteWithoutTokens(t *testing.T) {
	b := newBench(t)
	dao, err := b.gov.InitializeDao(env(b.creator), "builders")
	require.NoError(t, err)
	proposal, err := b.gov.InitializeProposal(env(b.creator), dao, "ship it")
	require.NoError(t, err)

	err = b.gov.CastVote(env(b.voter), proposal, b.mint, voting.VoteYes)
	assert.ErrorIs(t, err, voting.ErrNoVoteCredits)
}

func TestCastVoteRecordsChoice(t *testing.T) {
	b := newBench(t)
	dao, err := b.gov.InitializeDao(env(b.creator), "builders")
	require.NoError(t, err)
	proposal, err := b.gov.InitializeProposal(env(b.creator), dao, "ship it")
	require.NoError(t, err)
	b.fund(t, b.voter, 49)

	require.NoError(t, b.gov.CastVote(env(b.voter), proposal, b.mint, voting.VoteNo))

	addr, _, err := b.gov.VoteAddress(b.voter, proposal)
	require.NoError(t, err)
	rec, err := b.gov.GetVote(addr)
	require.NoError(t, err)
	assert.Equal(t, b.voter, rec.Authority)
	assert.Equal(t, voting.VoteNo, rec.VoteType)
	assert.Equal(t, uint64(7), rec.VoteCredits)
}
