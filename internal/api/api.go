// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package api provides the secret entropy source abstract interface.
package api

// SecretBound is the exclusive upper bound of each secret mask.
const SecretBound = 32769

// Source is an entropy source used to draw the secret masks.
type Source interface {
	// Name returns the name of the source.
	Name() string

	// Read fills b entirely with random bytes, or returns an error.
	Read(b []byte) error
}
