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

package sram23lc_test

import (
	"errors"
	"testing"

	"github.com/marksbench/sram23lc1024/spi"
	"github.com/marksbench/sram23lc1024/sram23lc"
	"github.com/marksbench/sram23lc1024/sram23lc/simulator"
	"github.com/marksbench/sram23lc1024/test"
)

func newTestDevice(t *testing.T) (*sram23lc.Device, *simulator.Chip, *simulator.Clock) {
	t.Helper()

	chip := simulator.NewChip()
	clock := &simulator.Clock{}

	dev, err := sram23lc.NewDevice(chip, chip.Pin(), clock)
	test.ExpectedSuccess(t, err)

	return dev, chip, clock
}

func TestInitialisation(t *testing.T) {
	_, chip, clock := newTestDevice(t)

	// exactly one high-low-high pulse with no traffic, followed by exactly
	// one two-byte mode-set transaction
	test.Equate(t, chip.PulseCount, 1)
	test.Equate(t, len(chip.Log), 1)
	test.Equate(t, len(chip.Log[0].Sent), 2)
	test.Equate(t, chip.Log[0].Sent[0], 0x01)
	test.Equate(t, chip.Log[0].Sent[1], 0x00)

	// the chip is now in byte mode
	test.Equate(t, chip.Mode() == sram23lc.ModeByte, true)

	// the settle delay after the mode set
	test.Equate(t, len(clock.Waited), 1)
	test.ExpectedSuccess(t, clock.Waited[0] >= 50)
}

func TestInitialisationMissingCollaborators(t *testing.T) {
	chip := simulator.NewChip()
	clock := &simulator.Clock{}

	_, err := sram23lc.NewDevice(nil, chip.Pin(), clock)
	test.ExpectedError(t, err, sram23lc.NotAttached)

	_, err = sram23lc.NewDevice(chip, nil, clock)
	test.ExpectedError(t, err, sram23lc.NotAttached)

	_, err = sram23lc.NewDevice(chip, chip.Pin(), nil)
	test.ExpectedError(t, err, sram23lc.NotAttached)
}

func TestRoundTrip(t *testing.T) {
	dev, _, _ := newTestDevice(t)

	// highest address of the 23LC1024
	test.ExpectedSuccess(t, dev.WriteByte(131071, 38))
	v, err := dev.ReadByte(131071)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 38)

	// lowest address
	test.ExpectedSuccess(t, dev.WriteByte(0, 255))
	v, err = dev.ReadByte(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 255)

	// the first write has not been disturbed by the second
	v, err = dev.ReadByte(131071)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 38)
}

func TestWriteFraming(t *testing.T) {
	dev, chip, _ := newTestDevice(t)

	test.ExpectedSuccess(t, dev.WriteByte(131071, 38))

	// one chip-select window containing exactly the five bytes of the write
	// transaction
	tx := chip.Log[len(chip.Log)-1]
	test.Equate(t, len(tx.Sent), 5)
	test.Equate(t, tx.Sent[0], 0x02)
	test.Equate(t, tx.Sent[1], 0x01)
	test.Equate(t, tx.Sent[2], 0xff)
	test.Equate(t, tx.Sent[3], 0xff)
	test.Equate(t, tx.Sent[4], 38)
}

func TestReadFraming(t *testing.T) {
	dev, chip, _ := newTestDevice(t)

	chip.Poke(500, 0x5a)

	v, err := dev.ReadByte(500)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x5a)

	// the four-byte header and the single data byte share one chip-select
	// window
	tx := chip.Log[len(chip.Log)-1]
	test.Equate(t, len(tx.Sent), 5)
	test.Equate(t, tx.Sent[0], 0x03)
	test.Equate(t, tx.Sent[1], 0x00)
	test.Equate(t, tx.Sent[2], 0x01)
	test.Equate(t, tx.Sent[3], 0xf4)
	test.Equate(t, tx.Received[4], 0x5a)
}

func TestAddressValidation(t *testing.T) {
	dev, chip, _ := newTestDevice(t)
	transactions := len(chip.Log)

	err := dev.WriteByte(131072, 10)
	test.ExpectedError(t, err, sram23lc.AddressOutOfRange)

	err = dev.WriteByte(-1, 10)
	test.ExpectedError(t, err, sram23lc.AddressOutOfRange)

	_, err = dev.ReadByte(131072)
	test.ExpectedError(t, err, sram23lc.AddressOutOfRange)

	_, err = dev.ReadByte(-1)
	test.ExpectedError(t, err, sram23lc.AddressOutOfRange)

	// no bus activity of any kind resulted from the failed calls
	test.Equate(t, len(chip.Log), transactions)
	test.Equate(t, chip.PulseCount, 1)
}

func TestDataValidation(t *testing.T) {
	dev, chip, _ := newTestDevice(t)
	transactions := len(chip.Log)

	err := dev.WriteByte(5, 256)
	test.ExpectedError(t, err, sram23lc.DataOutOfRange)

	err = dev.WriteByte(5, -1)
	test.ExpectedError(t, err, sram23lc.DataOutOfRange)

	test.Equate(t, len(chip.Log), transactions)
}

// brokenBus fails every transfer with the same error value.
type brokenBus struct {
	err error
}

func (b *brokenBus) Transfer(_ []uint8, _ []uint8) error {
	return b.err
}

// quietPin is a chip-select line with nothing on the other end.
type quietPin struct {
	high bool
}

func (p *quietPin) SetOutput()    {}
func (p *quietPin) High()         { p.high = true }
func (p *quietPin) Low()          { p.high = false }
func (p *quietPin) Set(high bool) { p.high = high }
func (p *quietPin) Get() bool     { return p.high }

func TestTransportErrorPropagation(t *testing.T) {
	bus := &brokenBus{err: errors.New("bus not ready")}
	pin := &quietPin{}
	var delay spi.WallClock

	// the mode-set transaction fails and the bus error is returned unchanged
	_, err := sram23lc.NewDevice(bus, pin, delay)
	if err != bus.err {
		t.Errorf("transport error not propagated unmodified (%v)", err)
	}

	// the chip-select line is left deasserted
	test.ExpectedSuccess(t, pin.Get())
}

func TestValidationBoundaries(t *testing.T) {
	dev, _, _ := newTestDevice(t)

	// the extremes of both ranges are valid
	test.ExpectedSuccess(t, dev.WriteByte(0, 0))
	test.ExpectedSuccess(t, dev.WriteByte(sram23lc.MaxAddress, 255))

	v, err := dev.ReadByte(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0)

	v, err = dev.ReadByte(sram23lc.MaxAddress)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 255)
}
