// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

//go:build linux
// +build linux

package getrandom

import "golang.org/x/sys/unix"

type getrandomSource struct{}

func (s *getrandomSource) Name() string {
	return "getrandom"
}

func (s *getrandomSource) Read(b []byte) error {
	for len(b) > 0 {
		n, err := unix.Getrandom(b, 0)
		switch err {
		case nil:
		case unix.EINTR:
			continue
		default:
			return err
		}
		b = b[n:]
	}

	return nil
}

func init() {
	// Kernels older than 3.17 return ENOSYS, in which case the caller
	// falls back to crypto/rand.
	var probe [1]byte
	switch _, err := unix.Getrandom(probe[:], unix.GRND_NONBLOCK); err {
	case nil, unix.EAGAIN:
		Source = &getrandomSource{}
	}
}
