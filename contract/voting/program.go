package voting

import (
	"fmt"
	"math"

	"github.com/gagliardetto/solana-go"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

const (
	maxNameLen     = 32
	maxMetadataLen = 50
)

var (
	seedDao      = []byte("dao")
	seedProposal = []byte("proposal")
	seedVote     = []byte("vote")
)

// Storage key prefixes, one per record kind.
const (
	kDao      byte = 0x01
	kProposal byte = 0x02
	kVote     byte = 0x03
)

func daoKey(addr solana.PublicKey) string      { return recordKey(kDao, addr) }
func proposalKey(addr solana.PublicKey) string { return recordKey(kProposal, addr) }
func voteKey(addr solana.PublicKey) string     { return recordKey(kVote, addr) }

func recordKey(prefix byte, addr solana.PublicKey) string {
	var buf [33]byte
	buf[0] = prefix
	copy(buf[1:], addr.Bytes())
	return string(buf[:])
}

// Program is quadratic-voting governance: vote weight is the square root of
// the voter's governance token balance, so whales get dampened.
type Program struct {
	ID solana.PublicKey

	rt *sdk.Runtime
}

func New(id solana.PublicKey, rt *sdk.Runtime) *Program {
	return &Program{ID: id, rt: rt}
}

// DaoAddress derives a realm from its creator and name.
func (p *Program) DaoAddress(creator solana.PublicKey, name string) (solana.PublicKey, uint8, error) {
	return contract.Derive(p.ID, seedDao, creator.Bytes(), []byte(name))
}

// ProposalAddress derives the proposal at one counter position.
func (p *Program) ProposalAddress(dao solana.PublicKey, count uint64) (solana.PublicKey, uint8, error) {
	return contract.Derive(p.ID, seedProposal, dao.Bytes(), contract.U64LE(count))
}

// VoteAddress derives the slot pinning one voter to one proposal.
func (p *Program) VoteAddress(voter, proposal solana.PublicKey) (solana.PublicKey, uint8, error) {
	return contract.Derive(p.ID, seedVote, voter.Bytes(), proposal.Bytes())
}

// GetDao reads a realm by address.
func (p *Program) GetDao(addr solana.PublicKey) (*Dao, error) {
	var rec Dao
	ctx := contract.NewContext(p.rt, sdk.Env{})
	if err := ctx.Load(daoKey(addr), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetProposal reads a proposal by address.
func (p *Program) GetProposal(addr solana.PublicKey) (*Proposal, error) {
	var rec Proposal
	ctx := contract.NewContext(p.rt, sdk.Env{})
	if err := ctx.Load(proposalKey(addr), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetVote reads a cast vote by address.
func (p *Program) GetVote(addr solana.PublicKey) (*Vote, error) {
	var rec Vote
	ctx := contract.NewContext(p.rt, sdk.Env{})
	if err := ctx.Load(voteKey(addr), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// InitializeDao opens a realm for the sender.
func (p *Program) InitializeDao(env sdk.Env, name string) (solana.PublicKey, error) {
	var dao solana.PublicKey
	err := p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)
		creator := ctx.Sender()

		if name == "" || len(name) > maxNameLen {
			return fmt.Errorf("dao name %q: %w", name, ErrInvalidName)
		}
		addr, bump, err := p.DaoAddress(creator, name)
		if err != nil {
			return err
		}
		rec := Dao{Name: name, Authority: creator, Bump: bump}
		if err := ctx.Allocate(daoKey(addr), addr, creator, &rec); err != nil {
			return err
		}

		dao = addr
		sdk.Log(fmt.Sprintf("gi|d:%s|n:%s|by:%s", addr, name, creator))
		return nil
	})
	if err != nil {
		return solana.PublicKey{}, err
	}
	return dao, nil
}

// InitializeProposal adds a question to a realm at its current counter and
// bumps the counter.
func (p *Program) InitializeProposal(env sdk.Env, dao solana.PublicKey, metadata string) (solana.PublicKey, error) {
	var proposal solana.PublicKey
	err := p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)
		author := ctx.Sender()

		if metadata == "" || len(metadata) > maxMetadataLen {
			return fmt.Errorf("proposal metadata: %w", ErrInvalidMetadata)
		}
		var realm Dao
		if err := ctx.Load(daoKey(dao), &realm); err != nil {
			return fmt.Errorf("dao %s: %w", dao, err)
		}

		addr, bump, err := p.ProposalAddress(dao, realm.ProposalCount)
		if err != nil {
			return err
		}
		rec := Proposal{Authority: author, Metadata: metadata, Bump: bump}
		if err := ctx.Allocate(proposalKey(addr), addr, author, &rec); err != nil {
			return err
		}

		count, err := contract.CheckedAdd(realm.ProposalCount, 1)
		if err != nil {
			return err
		}
		realm.ProposalCount = count
		if err := ctx.Store(daoKey(dao), &realm); err != nil {
			return err
		}

		proposal = addr
		sdk.Log(fmt.Sprintf("gp|p:%s|d:%s|by:%s", addr, dao, author))
		return nil
	})
	if err != nil {
		return solana.PublicKey{}, err
	}
	return proposal, nil
}

// CastVote records the sender's side on a proposal, weighted by the square
// root of their governance token balance. A second vote from the same voter
// hits the existing record and fails.
func (p *Program) CastVote(env sdk.Env, proposal, mint solana.PublicKey, voteType VoteType) error {
	return p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)
		voter := ctx.Sender()

		if voteType != VoteYes && voteType != VoteNo {
			return fmt.Errorf("vote by %s: %w", voter, ErrInvalidVoteType)
		}
		var prop Proposal
		if err := ctx.Load(proposalKey(proposal), &prop); err != nil {
			return fmt.Errorf("proposal %s: %w", proposal, err)
		}

		balance := p.rt.Tokens.Balance(voter, mint)
		credits := uint64(math.Sqrt(float64(balance)))
		if credits == 0 {
			return fmt.Errorf("vote by %s: %w", voter, ErrNoVoteCredits)
		}

		addr, bump, err := p.VoteAddress(voter, proposal)
		if err != nil {
			return err
		}
		rec := Vote{Authority: voter, VoteType: voteType, VoteCredits: credits, Bump: bump}
		if err := ctx.Allocate(voteKey(addr), addr, voter, &rec); err != nil {
			return err
		}

		switch voteType {
		case VoteYes:
			prop.YesVoteCount, err = contract.CheckedAdd(prop.YesVoteCount, credits)
		case VoteNo:
			prop.NoVoteCount, err = contract.CheckedAdd(prop.NoVoteCount, credits)
		}
		if err != nil {
			return err
		}
		if err := ctx.Store(proposalKey(proposal), &prop); err != nil {
			return err
		}

		sdk.Log(fmt.Sprintf("gv|p:%s|by:%s|t:%d|c:%d", proposal, voter, voteType, credits))
		return nil
	})
}
