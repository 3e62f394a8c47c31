package model

import (
	"database/sql"
)

const TableChallenges = "challenges"

// Challenge is one on-chain fitness challenge.
// Identity is the hash of the transaction that created it.
// Rows are never deleted, closing a challenge only flips Active.
type Challenge struct {
	CreatedTxHash string `gorm:"primaryKey" json:"created_tx_hash"`

	// Address that sent the createChallenge transaction
	Creator string `json:"creator"`

	// Challenge window, unix seconds, parsed from the call arguments
	StartTimestamp int64 `json:"start_timestamp"`
	EndTimestamp   int64 `json:"end_timestamp"`

	// Arbitrary-precision non-negative integers kept as decimal strings
	RewardBudget   string `json:"reward_budget"`
	RewardPerPoint string `json:"reward_per_point"`

	// At most one challenge is active at any time
	Active bool `gorm:"index" json:"active"`

	ClosedTxHash      sql.NullString `json:"closed_tx_hash"`
	LastUpdatedTxHash string         `json:"last_updated_tx_hash"`

	// Transaction timestamps, unix milliseconds
	OpenedAt sql.NullInt64 `json:"opened_at"`
	ClosedAt sql.NullInt64 `json:"closed_at"`
}

func (Challenge) TableName() string {
	return TableChallenges
}
