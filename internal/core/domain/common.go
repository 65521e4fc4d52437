package domain

import "time"

// Collection names one of the four record collections kept per owner.
type Collection string

const (
	CollectionTransactions   Collection = "transactions"
	CollectionDebts          Collection = "debts"
	CollectionGoals          Collection = "goals"
	CollectionAccountRecords Collection = "accountRecords"
)

// DayLayout is the layout of the ISO calendar-day strings used for every record date.
const DayLayout = "2006-01-02"

// ChangeKind describes what happened to a record.
type ChangeKind string

const (
	ChangeUpserted ChangeKind = "UPSERTED"
	ChangeDeleted  ChangeKind = "DELETED"
)

// ChangeEvent is published after a record of an owner was written or deleted.
// Subscribers are expected to reload the full snapshot, the event only says which record moved.
type ChangeEvent struct {
	OwnerID    string     `json:"ownerID"`
	Collection Collection `json:"collection"`
	RecordID   string     `json:"recordID"`
	Kind       ChangeKind `json:"kind"`
	At         time.Time  `json:"at"`
}
