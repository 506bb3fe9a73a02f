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

package sram23lc

import (
	"fmt"

	"github.com/marksbench/sram23lc1024/curated"
	"github.com/marksbench/sram23lc1024/logger"
	"github.com/marksbench/sram23lc1024/spi"
)

// Sentinal errors returned when an argument to WriteByte() or ReadByte() is
// outside the range the chip can represent. Range checks happen before any
// bus activity so a failed call never results in a partial transaction.
const (
	AddressOutOfRange = "sram23lc: address is outside of device address range (0 to 131071): %d"
	DataOutOfRange    = "sram23lc: data is outside of 8-bit value range (0 to 255): %d"
)

// Sentinal error returned by NewDevice() when a collaborator is missing.
const NotAttached = "sram23lc: device requires a %s"

// minimum settle time after the mode-set transaction, per the datasheet.
const settleMicro = 50

// Device represents a single 23LC1024 chip on an SPI bus.
//
// The bus may be shared with other peripherals but the chip-select pin
// belongs to the Device exclusively. The Device performs no locking of its
// own: a transaction is a multi-step sequence (assert chip-select, transfer,
// deassert chip-select) and callers issuing transactions from more than one
// goroutine, or mixing in transactions for other peripherals on the same bus,
// must serialise access themselves.
type Device struct {
	bus   spi.Bus
	cs    spi.Pin
	delay spi.Delay
}

// NewDevice is the preferred method of initialisation for the Device type.
//
// The chip-select pin is configured for output and given the high-low-high
// transition the chip requires before it will leave its post-power-up state.
// The chip is then programmed for byte mode and allowed to settle. The bus
// must already be configured for clock polarity 0 and clock phase 0.
func NewDevice(bus spi.Bus, cs spi.Pin, delay spi.Delay) (*Device, error) {
	if bus == nil {
		return nil, curated.Errorf(NotAttached, "bus")
	}
	if cs == nil {
		return nil, curated.Errorf(NotAttached, "chip-select pin")
	}
	if delay == nil {
		return nil, curated.Errorf(NotAttached, "delay source")
	}

	dev := &Device{
		bus:   bus,
		cs:    cs,
		delay: delay,
	}

	dev.cs.SetOutput()

	// the datasheet says a high-low transition is required on chip-select to
	// enter the active state after power-up
	dev.cs.High()
	dev.cs.Low()
	dev.cs.High()

	// set mode register to byte mode
	dev.cs.Low()
	err := dev.bus.Transfer([]uint8{uint8(OpWriteModeRegister), uint8(ModeByte)}, nil)
	dev.cs.High()
	if err != nil {
		return nil, err
	}

	dev.delay.WaitMicro(settleMicro)

	logger.Logf("sram23lc", "attached (%s mode)", ModeByte)

	return dev, nil
}

func (dev *Device) String() string {
	return fmt.Sprintf("23LC1024: 131072 bytes (%s mode)", ModeByte)
}

// WriteByte writes a single byte of data to the given address. The call does
// not return until the transaction has completed.
func (dev *Device) WriteByte(address int, data int) error {
	if address < 0 || address > MaxAddress {
		return curated.Errorf(AddressOutOfRange, address)
	}
	if data < 0 || data > 255 {
		return curated.Errorf(DataOutOfRange, data)
	}

	addr := encodeAddress(address)

	dev.cs.Low()
	err := dev.bus.Transfer([]uint8{uint8(OpWrite), addr[0], addr[1], addr[2], uint8(data)}, nil)
	dev.cs.High()

	return err
}

// ReadByte returns the byte of data stored at the given address at the time
// of the call.
func (dev *Device) ReadByte(address int) (uint8, error) {
	if address < 0 || address > MaxAddress {
		return 0, curated.Errorf(AddressOutOfRange, address)
	}

	addr := encodeAddress(address)
	recv := make([]uint8, 1)

	// chip-select must remain asserted across both the instruction/address
	// phase and the data phase. the chip aborts the access on a premature
	// deassert
	dev.cs.Low()
	err := dev.bus.Transfer([]uint8{uint8(OpRead), addr[0], addr[1], addr[2]}, nil)
	if err == nil {
		err = dev.bus.Transfer(nil, recv)
	}
	dev.cs.High()

	if err != nil {
		return 0, err
	}

	return recv[0], nil
}

// encodeAddress splits an address into the three bytes sent on the wire,
// most-significant byte first. Addresses never exceed MaxAddress so the top
// seven bits of the first byte are always zero.
func encodeAddress(address int) [3]uint8 {
	return [3]uint8{
		uint8((address & 0xff0000) >> 16),
		uint8((address & 0x00ff00) >> 8),
		uint8(address & 0x0000ff),
	}
}
