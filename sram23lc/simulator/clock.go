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

package simulator

import (
	"github.com/marksbench/sram23lc1024/spi"
)

// Clock implements the spi.Delay interface without any real waiting. The
// requested delays are recorded so that tests can assert settle times.
type Clock struct {
	Waited []int
}

var _ spi.Delay = (*Clock)(nil)

// WaitMicro implements the spi.Delay interface.
func (c *Clock) WaitMicro(us int) {
	c.Waited = append(c.Waited, us)
}

// TotalMicro is the sum of all recorded delays.
func (c *Clock) TotalMicro() int {
	t := 0
	for _, us := range c.Waited {
		t += us
	}
	return t
}
