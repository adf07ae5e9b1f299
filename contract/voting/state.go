package voting

import "github.com/gagliardetto/solana-go"

// VoteType picks a side on a proposal.
type VoteType uint8

const (
	VoteNo VoteType = iota
	VoteYes
)

// Dao is one governance realm; proposals hang off its counter.
type Dao struct {
	Name          string           `json:"name"`
	Authority     solana.PublicKey `json:"authority"`
	ProposalCount uint64           `json:"proposal_count"`
	Bump          uint8            `json:"bump"`
}

// Proposal tallies quadratic votes for one question.
type Proposal struct {
	Authority    solana.PublicKey `json:"authority"`
	Metadata     string           `json:"metadata"`
	YesVoteCount uint64           `json:"yes_vote_count"`
	NoVoteCount  uint64           `json:"no_vote_count"`
	Bump         uint8            `json:"bump"`
}

// Vote pins one voter to one proposal so they cannot vote twice.
type Vote struct {
	Authority   solana.PublicKey `json:"authority"`
	VoteType    VoteType         `json:"vote_type"`
	VoteCredits uint64           `json:"vote_credits"`
	Bump        uint8            `json:"bump"`
}
