package domain

// Session is the explicit per-request context threaded through the ledger and
// edit coordinator calls: which date the caller is viewing and whether past
// editing has been unlocked for that date. Elevation is granted per viewed
// date, so switching dates resets it by construction.
type Session struct {
	ViewDate     string
	PastUnlocked bool
}

// Setting is a named configuration record in the store (e.g. the PIN hash).
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Alg   string `json:"alg,omitempty"`
}

// SettingPINHash is the settings key holding the bcrypt hash of the till PIN.
const SettingPINHash = "pinHash"
