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

package spi_test

import (
	"testing"

	"github.com/marksbench/sram23lc1024/spi"
	"github.com/marksbench/sram23lc1024/test"
)

func TestTraceEdges(t *testing.T) {
	tr := spi.NewTrace("CS")

	// idle state is high with no edge
	test.ExpectedSuccess(t, tr.Hi())
	test.ExpectedFailure(t, tr.Changed())

	tr.Tick(false)
	test.ExpectedSuccess(t, tr.Lo())
	test.ExpectedSuccess(t, tr.Falling())
	test.ExpectedFailure(t, tr.Rising())

	tr.Tick(false)
	test.ExpectedSuccess(t, tr.Lo())
	test.ExpectedFailure(t, tr.Changed())

	tr.Tick(true)
	test.ExpectedSuccess(t, tr.Hi())
	test.ExpectedSuccess(t, tr.Rising())
	test.ExpectedFailure(t, tr.Falling())
}

func TestTraceActivity(t *testing.T) {
	tr := spi.NewTrace("CS")
	n := len(tr.Activity)

	tr.Tick(false)
	tr.Tick(true)

	// activity record is bounded and newest values are at the end
	test.Equate(t, len(tr.Activity), n)
	test.ExpectedFailure(t, tr.Activity[n-2])
	test.ExpectedSuccess(t, tr.Activity[n-1])
}
