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

package spi

import "time"

// Bus represents a synchronous full-duplex serial bus configured for clock
// polarity 0 and clock phase 0. For every byte clocked out a byte is clocked
// in, so a transfer of N bytes always moves N bytes in each direction.
//
// Transfer() clocks out the send slice while filling the recv slice. Either
// slice may be nil: a nil send slice clocks out as many filler bytes as there
// are bytes in recv (a read-only phase); a nil recv slice discards the
// incoming bytes (a write-only phase). If both are non-nil they must be of
// equal length.
//
// A Bus may be shared between several peripherals but a transfer belongs to
// whichever chip-select line is asserted at the time. Framing of transactions
// with a chip-select Pin is the responsibility of the device driver.
type Bus interface {
	Transfer(send []uint8, recv []uint8) error
}

// Pin represents a digital line under the control of the host. For the
// purposes of this project the only requirement is binary output.
type Pin interface {
	// SetOutput configures the pin as a digital output
	SetOutput()

	High()
	Low()

	Set(high bool)
	Get() bool
}

// Delay represents a microsecond-resolution wait. Device datasheets specify
// settle times between transactions and implementations of Delay provide
// them. The WallClock implementation simply sleeps.
type Delay interface {
	WaitMicro(us int)
}

// WallClock is the Delay implementation to use with real hardware.
type WallClock struct{}

// WaitMicro implements the Delay interface.
func (c WallClock) WaitMicro(us int) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}
