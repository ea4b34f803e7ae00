// Package token persists the opaque bearer credential across runs of the
// client. The credential is a plain string; nothing else is stored.
package token

// Store owns the stored credential. No other component touches the
// underlying storage directly.
type Store interface {
	// Get returns the stored credential, or ("", false) when absent.
	// It has no side effects and never fails.
	Get() (string, bool)

	// Set stores the credential, overwriting any prior value.
	Set(token string) error

	// Clear removes the credential. Clearing an absent credential is a no-op.
	Clear() error
}
