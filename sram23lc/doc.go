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

// Package sram23lc is a driver for the Microchip 23LC1024 serial SRAM. The
// chip is a 1Mbit static RAM addressed over SPI as 131072 individual bytes.
//
// The driver uses the chip in byte mode only: one address and one byte of
// data per transaction, with every transaction framed by the chip-select
// line. The chip's page and sequential burst modes, and its dual and quad
// bus modes, are out of scope and never engaged.
//
// The mode register is programmed once, at initialisation, and is never read
// back. The chip has no way of reporting a failed mode set without the RDMR
// instruction so the driver carries this as an accepted risk: if the mode set
// is lost the chip reverts to sequential mode and reads will return bytes
// from successive addresses.
package sram23lc
