package dto

import "time"

// SetupPINRequest creates the till PIN on first use.
type SetupPINRequest struct {
	PIN string `json:"pin" binding:"required,len=4,numeric"`
}

// UnlockRequest exchanges the PIN for an elevation token bound to a date.
type UnlockRequest struct {
	PIN     string `json:"pin" binding:"required,len=4,numeric"`
	DateKey string `json:"dateKey" binding:"required,datekey"`
}

// UnlockResponse carries the elevation token for subsequent mutations.
type UnlockResponse struct {
	Token     string    `json:"token"`
	DateKey   string    `json:"dateKey"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// WipeDataRequest erases the ledger; it is PIN-gated.
type WipeDataRequest struct {
	PIN string `json:"pin" binding:"required,len=4,numeric"`
}
