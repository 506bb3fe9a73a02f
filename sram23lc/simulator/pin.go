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

// csPin is the simulated chip-select line. Every level set is forwarded to
// the chip so that it can observe edges, not just levels.
type csPin struct {
	chip *Chip
}

var _ spi.Pin = (*csPin)(nil)

// SetOutput implements the spi.Pin interface. The simulated pin is always an
// output.
func (p *csPin) SetOutput() {
}

// High implements the spi.Pin interface.
func (p *csPin) High() {
	p.chip.selectLine(true)
}

// Low implements the spi.Pin interface.
func (p *csPin) Low() {
	p.chip.selectLine(false)
}

// Set implements the spi.Pin interface.
func (p *csPin) Set(high bool) {
	p.chip.selectLine(high)
}

// Get implements the spi.Pin interface.
func (p *csPin) Get() bool {
	return p.chip.cs.Hi()
}
