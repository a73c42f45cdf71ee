package resolver

// OutcomeKind enumerates the possible classifications of a visit.
type OutcomeKind int

const (
	// OutcomeNotFound covers absent and deactivated links alike, so a
	// visitor cannot probe for deactivated codes.
	OutcomeNotFound OutcomeKind = iota
	OutcomeExpired
	OutcomePasswordRequired
	OutcomeRedirect
)

// Outcome is the single result of resolving a short code. Redirect
// fields are meaningful only when Kind is OutcomeRedirect, and
// PasswordError only when Kind is OutcomePasswordRequired.
type Outcome struct {
	Kind            OutcomeKind
	URL             string
	ViaInterstitial bool
	Title           string
	Description     string
	PasswordError   string // set when a wrong password was supplied
}
