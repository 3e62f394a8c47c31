package model

import (
	"database/sql"
)

const TableChallengeParticipants = "challenge_participants"

// ChallengeParticipant is one address within one challenge.
// Score only ever grows, by addition of submitted workout points.
type ChallengeParticipant struct {
	ChallengeId string `gorm:"primaryKey" json:"challenge_id"`
	Address     string `gorm:"primaryKey" json:"address"`

	// Arbitrary-precision non-negative integer kept as a decimal string
	Score string `json:"score"`

	JoinTxHash       string         `json:"join_tx_hash"`
	LastUpdateTxHash sql.NullString `json:"last_update_tx_hash"`

	// Transaction timestamps, unix milliseconds
	JoinedAt          sql.NullInt64 `json:"joined_at"`
	LastScoreChangeAt sql.NullInt64 `json:"last_score_change_at"`
}

func (ChallengeParticipant) TableName() string {
	return TableChallengeParticipants
}
