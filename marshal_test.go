// Copryright (C) 2019 Yawning Angel
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package protint

import (
	"encoding"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	_ fmt.Stringer               = (*Cell)(nil)
	_ encoding.TextMarshaler     = (*Cell)(nil)
	_ encoding.TextUnmarshaler   = (*Cell)(nil)
	_ encoding.BinaryMarshaler   = (*Cell)(nil)
	_ encoding.BinaryUnmarshaler = (*Cell)(nil)
)

func TestCellText(t *testing.T) {
	require := require.New(t)

	s := newTestSecrets(t)
	other, err := NewFixedSecrets(7, 8)
	require.NoError(err, "NewFixedSecrets()")

	c := s.New(-31337)
	require.Equal("-31337", c.String(), "String()")
	require.Equal("-31337", fmt.Sprint(c), "fmt.Sprint()")

	b, err := c.MarshalText()
	require.NoError(err, "MarshalText()")
	require.Equal([]byte("-31337"), b, "MarshalText()")

	// The value moves across secret pairs, the words do not.
	dst := other.New(0)
	require.NoError(dst.UnmarshalText(b), "UnmarshalText()")
	require.Equal(-31337, dst.Get(), "UnmarshalText() - round trips")
	l, _ := dst.Words()
	require.Equal(-31337^7, l, "UnmarshalText() - encoded under destination secrets")

	err = dst.UnmarshalText([]byte("not-a-number"))
	require.ErrorIs(err, ErrInvalidEncoding, "UnmarshalText() - malformed")
	require.Equal(-31337, dst.Get(), "UnmarshalText() - malformed leaves Cell untouched")
}

func TestCellBinary(t *testing.T) {
	require := require.New(t)

	s := newTestSecrets(t)

	for _, v := range []int{0, 1, -1, math.MaxInt32, math.MinInt32} {
		c := s.New(v)

		b, err := c.MarshalBinary()
		require.NoError(err, "MarshalBinary(%d)", v)
		require.Len(b, BinarySize, "MarshalBinary(%d) - length", v)

		dst := s.New(0)
		require.NoError(dst.UnmarshalBinary(b), "UnmarshalBinary(%d)", v)
		require.Equal(v, dst.Get(), "UnmarshalBinary(%d) - round trips", v)
	}

	c := s.New(0x0102)
	b, err := c.AppendBinary([]byte("hdr"))
	require.NoError(err, "AppendBinary()")
	require.Equal([]byte{'h', 'd', 'r', 0, 0, 0, 0, 0, 0, 0x01, 0x02}, b, "AppendBinary() - big endian, appended")

	b, err = s.New(-2).MarshalBinary()
	require.NoError(err, "MarshalBinary(-2)")
	require.Equal([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe}, b, "MarshalBinary(-2) - two's complement")

	for _, v := range [][]byte{nil, {}, make([]byte, BinarySize-1), make([]byte, BinarySize+1)} {
		require.ErrorIs(c.UnmarshalBinary(v), ErrInvalidEncoding, "UnmarshalBinary() - %d bytes", len(v))
	}
	require.Equal(0x0102, c.Get(), "UnmarshalBinary() - malformed leaves Cell untouched")

	require.Zero(s.Tampered(), "Tampered()")
}
