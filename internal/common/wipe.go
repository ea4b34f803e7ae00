// Package common provides small helpers shared across the client, such as
// secure memory wiping for password buffers.
package common

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. This is used to remove passwords from memory once they have been
// sent to the backend.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
