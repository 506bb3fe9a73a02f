// This file is part of sram23lc1024.
//
// sram23lc1024 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sram23lc1024 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sram23lc1024.  If not, see <https://www.gnu.org/licenses/>.

package monitor

import (
	"testing"

	"github.com/marksbench/sram23lc1024/test"
)

func TestParseNumber(t *testing.T) {
	n, err := parseNumber("500")
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 500)

	n, err = parseNumber("0x1ffff")
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 131071)

	n, err = parseNumber(" 38 ")
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 38)

	n, err = parseNumber("-1")
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, -1)

	_, err = parseNumber("")
	test.ExpectedError(t, err, InvalidNumber)

	_, err = parseNumber("five")
	test.ExpectedError(t, err, InvalidNumber)
}
