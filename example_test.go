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

package protint_test

import (
	"fmt"

	"gitlab.com/yawning/protint.git"
)

func Example() {
	if err := protint.Init(); err != nil {
		panic(err)
	}

	score := protint.New(42)
	score.Increment()
	score.Multiply(2)
	fmt.Println(score.Get())

	fmt.Println(protint.NewFromText("not-a-number"))

	lives := protint.New(10)
	r, err := lives.Compare(10)
	fmt.Println(r, err)
	_, err = lives.Compare("10")
	fmt.Println(err)
	// Output:
	// 86
	// 0
	// 0 <nil>
	// protint: invalid comparison target: string
}

func ExampleNewFixedSecrets() {
	secrets, err := protint.NewFixedSecrets(0x1234, 0x0abc)
	if err != nil {
		panic(err)
	}

	gold := secrets.New(100)
	left, right := gold.Words()
	fmt.Println(left, right)

	gold.Subtract(30)
	fmt.Println(gold)
	// Output:
	// 4688 2776
	// 70
}
