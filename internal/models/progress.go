package models

// ProgressEntry is one day's record in a completion ledger, shared by
// challenges and rituals. Date is a millisecond timestamp; two entries
// belong to the same day when they fall on the same UTC calendar day.
type ProgressEntry struct {
	Date        int64 `json:"date"`
	IsCompleted bool  `json:"is_completed"`
}
