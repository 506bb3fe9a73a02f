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
	"github.com/marksbench/sram23lc1024/curated"
	"github.com/marksbench/sram23lc1024/logger"
	"github.com/marksbench/sram23lc1024/spi"
	"github.com/marksbench/sram23lc1024/sram23lc"
)

// Sentinal errors returned by the simulated bus.
const (
	TransferWhileDeselected = "simulator: transfer while chip is deselected"
	MismatchedTransfer      = "simulator: mismatched transfer lengths (%d out, %d in)"
)

// memorySize is the whole of the 23LC1024 address space.
const memorySize = sram23lc.MaxAddress + 1

// pageSize is the size of a page for page-mode accesses.
const pageSize = 32

// the value clocked out by the chip when it has nothing to say (instruction
// and address phases, or a byte-mode access that has already delivered its
// one byte).
const idleByte = 0xff

// the value recorded as "sent" for bytes the host clocks out only to drive
// the transfer during a receive phase.
const fillerByte = 0x00

// Transaction records the bytes moved in each direction during one
// chip-select window.
type Transaction struct {
	Sent     []uint8
	Received []uint8
}

// decode states for the transaction in progress.
type decodeState int

const (
	decodeOpcode decodeState = iota
	decodeAddress
	decodeModeRegister
	decodeData
	decodeIgnore
)

// Chip is a simulation of the 23LC1024, for testing the driver without
// hardware attached. It implements the spi.Bus interface and provides the
// chip-select pin with the Pin() function.
//
// The simulation honours the parts of the datasheet the driver depends on:
// instructions are only interpreted while chip-select is asserted; deasserting
// chip-select ends the access; the mode register defaults to sequential mode
// on power-up; and in byte mode exactly one byte of data is transferred per
// transaction.
//
// Every chip-select window is recorded in the Log field, and chip-select
// windows containing no traffic at all are counted in PulseCount. Tests use
// these to assert exact bus framing.
type Chip struct {
	memory [memorySize]uint8
	mode   sram23lc.AccessMode

	// whether the chip has seen the select-line edge it needs to leave its
	// post-power-up state
	active bool

	cs spi.Trace

	// the transaction being assembled while chip-select is asserted. nil when
	// chip-select is high
	current *Transaction

	// decode state for the current transaction
	state     decodeState
	opcode    sram23lc.Opcode
	address   int
	addrBytes int
	dataCount int

	// completed chip-select windows
	Log []Transaction

	// number of chip-select windows with no traffic at all. the activation
	// pulse at power-up is one of these
	PulseCount int
}

// NewChip is the preferred method of initialisation for the Chip type. The
// chip powers up in sequential mode with the select line idle (high) and the
// memory contents undefined (filled with 0xff).
func NewChip() *Chip {
	ch := &Chip{
		mode: sram23lc.ModeSequential,
		cs:   spi.NewTrace("CS"),
	}
	for i := range ch.memory {
		ch.memory[i] = idleByte
	}
	return ch
}

// Pin returns the chip-select pin. The handle is intended to be passed to the
// device driver and not shared with anything else.
func (ch *Chip) Pin() spi.Pin {
	return &csPin{chip: ch}
}

// Mode returns the current content of the simulated mode register.
func (ch *Chip) Mode() sram23lc.AccessMode {
	return ch.mode
}

// Peek the byte at the given address, without any bus activity.
func (ch *Chip) Peek(address int) uint8 {
	return ch.memory[address]
}

// Poke a byte directly into memory, without any bus activity.
func (ch *Chip) Poke(address int, data uint8) {
	ch.memory[address] = data
}

// selectLine is called by the chip-select pin on every level set, whether or
// not the level has changed.
func (ch *Chip) selectLine(high bool) {
	ch.cs.Tick(high)

	if ch.cs.Falling() {
		// the edge the chip needs to become responsive after power-up
		if !ch.active {
			ch.active = true
			logger.Log("simulator", "select edge seen. chip active")
		}

		ch.current = &Transaction{}
		ch.state = decodeOpcode
		return
	}

	if ch.cs.Rising() && ch.current != nil {
		// deasserting chip-select ends the access
		if len(ch.current.Sent) == 0 {
			ch.PulseCount++
		} else {
			ch.Log = append(ch.Log, *ch.current)
		}
		ch.current = nil
	}
}

// Transfer implements the spi.Bus interface.
func (ch *Chip) Transfer(send []uint8, recv []uint8) error {
	if ch.current == nil || !ch.cs.Lo() {
		return curated.Errorf(TransferWhileDeselected)
	}

	n := len(send)
	if send == nil {
		n = len(recv)
	} else if recv != nil && len(send) != len(recv) {
		return curated.Errorf(MismatchedTransfer, len(send), len(recv))
	}

	for i := 0; i < n; i++ {
		out := uint8(fillerByte)
		if send != nil {
			out = send[i]
		}

		in := ch.exchange(out)

		if recv != nil {
			recv[i] = in
		}

		ch.current.Sent = append(ch.current.Sent, out)
		ch.current.Received = append(ch.current.Received, in)
	}

	return nil
}

// exchange clocks one byte into the chip and returns the byte the chip clocks
// out in the same period.
func (ch *Chip) exchange(v uint8) uint8 {
	switch ch.state {
	case decodeOpcode:
		ch.opcode = sram23lc.Opcode(v)
		switch ch.opcode {
		case sram23lc.OpRead, sram23lc.OpWrite:
			ch.state = decodeAddress
			ch.address = 0
			ch.addrBytes = 0
			ch.dataCount = 0
		case sram23lc.OpWriteModeRegister:
			ch.state = decodeModeRegister
		case sram23lc.OpReadModeRegister:
			ch.state = decodeData
			ch.dataCount = 0
		default:
			// dual/quad/reset instructions are not simulated
			logger.Logf("simulator", "unsupported instruction (%#02x)", v)
			ch.state = decodeIgnore
		}

	case decodeAddress:
		// addresses arrive most-significant byte first. the top seven bits
		// are "don't care" bits
		ch.address = (ch.address << 8) | int(v)
		ch.addrBytes++
		if ch.addrBytes == 3 {
			ch.address &= sram23lc.MaxAddress
			ch.state = decodeData
		}

	case decodeModeRegister:
		ch.mode = sram23lc.AccessMode(v) & 0xc0
		logger.Logf("simulator", "mode register set (%s mode)", ch.mode)
		ch.state = decodeIgnore

	case decodeData:
		switch ch.opcode {
		case sram23lc.OpRead:
			if ch.mode == sram23lc.ModeByte && ch.dataCount > 0 {
				// in byte mode the chip has nothing more to say after the
				// first data byte
				return idleByte
			}
			r := ch.memory[ch.address]
			ch.dataCount++
			ch.nextAddress()
			return r

		case sram23lc.OpWrite:
			if ch.mode == sram23lc.ModeByte && ch.dataCount > 0 {
				logger.Logf("simulator", "byte-mode write overrun (%#02x discarded)", v)
				return idleByte
			}
			ch.memory[ch.address] = v
			ch.dataCount++
			ch.nextAddress()

		case sram23lc.OpReadModeRegister:
			return uint8(ch.mode)
		}

	case decodeIgnore:
		// discard everything up to the end of the chip-select window
	}

	return idleByte
}

// nextAddress advances the internal address counter according to the current
// access mode.
func (ch *Chip) nextAddress() {
	switch ch.mode {
	case sram23lc.ModeByte:
		// no advance. the access is over
	case sram23lc.ModePage:
		// wrap within the current page
		ch.address = (ch.address &^ (pageSize - 1)) | ((ch.address + 1) & (pageSize - 1))
	case sram23lc.ModeSequential:
		ch.address = (ch.address + 1) & sram23lc.MaxAddress
	}
}
