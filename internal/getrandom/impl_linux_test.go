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

//go:build linux
// +build linux

package getrandom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {
	if Source == nil {
		t.Skip("getrandom(2) not supported by this kernel")
	}

	require := require.New(t)
	require.Equal("getrandom", Source.Name(), "Name()")

	// Large enough that an all-zero result means Read did nothing.
	b := make([]byte, 1024)
	require.NoError(Source.Read(b), "Read()")
	require.False(bytes.Equal(b, make([]byte, len(b))), "Read() - filled buffer")

	require.NoError(Source.Read(nil), "Read() - empty buffer")
}
