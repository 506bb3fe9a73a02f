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

// Opcode is the first byte of every transaction, selecting the operation the
// chip should perform.
type Opcode uint8

// The instruction set of the 23LC1024. Only OpRead, OpWrite and
// OpWriteModeRegister are ever issued by this driver. The remaining
// instructions are named for completeness.
const (
	OpRead              Opcode = 0x03
	OpWrite             Opcode = 0x02
	OpEnableDualIO      Opcode = 0x3b // SDI bus access (never issued)
	OpEnableQuadIO      Opcode = 0x38 // SQI bus access (never issued)
	OpResetIO           Opcode = 0xff // revert to SPI bus access (never issued)
	OpReadModeRegister  Opcode = 0x05 // never issued
	OpWriteModeRegister Opcode = 0x01
)

func (op Opcode) String() string {
	switch op {
	case OpRead:
		return "READ"
	case OpWrite:
		return "WRITE"
	case OpEnableDualIO:
		return "EDIO"
	case OpEnableQuadIO:
		return "EQIO"
	case OpResetIO:
		return "RSTIO"
	case OpReadModeRegister:
		return "RDMR"
	case OpWriteModeRegister:
		return "WRMR"
	}
	return "unknown instruction"
}

// AccessMode is the value written to the mode register with the
// OpWriteModeRegister instruction. The two most-significant bits select the
// mode. All other bits are reserved and must be zero.
type AccessMode uint8

// The access modes of the 23LC1024. The driver always selects ModeByte at
// initialisation. ModePage and ModeSequential are never engaged.
const (
	ModeByte       AccessMode = 0x00
	ModePage       AccessMode = 0x40
	ModeSequential AccessMode = 0xc0 // power-up default
)

func (mode AccessMode) String() string {
	switch mode {
	case ModeByte:
		return "byte"
	case ModePage:
		return "page"
	case ModeSequential:
		return "sequential"
	}
	return "unknown mode"
}

// The 23LC1024 is a 1Mbit device, addressed as 131072 bytes. Addresses on the
// wire are 24 bits, the top 7 bits of which are "don't care" bits.
const MaxAddress = 0x1ffff
