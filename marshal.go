// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package protint

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"gitlab.com/yawning/slice.git"
)

// BinarySize is the size of a binary encoded Cell in bytes.
const BinarySize = 8

// String returns the Cell's value in base 10.
func (c *Cell) String() string {
	return strconv.Itoa(c.Get())
}

// MarshalText returns the Cell's value in base 10.
func (c *Cell) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, int64(c.Get()), 10), nil
}

// UnmarshalText sets the Cell to the base 10 integer in text.  Unlike
// NewFromText, malformed input is an error and leaves the Cell untouched.
func (c *Cell) UnmarshalText(text []byte) error {
	v, err := strconv.Atoi(string(text))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEncoding, text)
	}
	c.Set(v)

	return nil
}

// AppendBinary appends the Cell's value as a big endian 64 bit two's
// complement integer to dst, returning the updated slice.
func (c *Cell) AppendBinary(dst []byte) ([]byte, error) {
	ret, out := slice.ForAppend(dst, BinarySize)
	binary.BigEndian.PutUint64(out, uint64(int64(c.Get())))

	return ret, nil
}

// MarshalBinary returns the Cell's value as a big endian 64 bit two's
// complement integer.
func (c *Cell) MarshalBinary() ([]byte, error) {
	return c.AppendBinary(make([]byte, 0, BinarySize))
}

// UnmarshalBinary sets the Cell from the output of MarshalBinary.
func (c *Cell) UnmarshalBinary(data []byte) error {
	if len(data) != BinarySize {
		return ErrInvalidEncoding
	}

	v := int64(binary.BigEndian.Uint64(data))
	if int64(int(v)) != v {
		return fmt.Errorf("%w: %d overflows int", ErrInvalidEncoding, v)
	}
	c.Set(int(v))

	return nil
}
