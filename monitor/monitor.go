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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/marksbench/sram23lc1024/curated"
	"github.com/marksbench/sram23lc1024/logger"
	"github.com/marksbench/sram23lc1024/sram23lc"
)

// Sentinal error returned when input cannot be interpreted as a number.
const InvalidNumber = "monitor: not a number: %s"

// number of log entries shown by the log command.
const logTail = 10

const prompt = "23lc1024 % "

// Monitor is an interactive terminal for reading and writing individual bytes
// of an attached memory device. Commands are single keypresses, with
// arguments prompted for on their own line.
type Monitor struct {
	dev  *sram23lc.Device
	term terminal
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The monitor takes its input from, and sends its output to, the controlling
// terminal.
func NewMonitor(dev *sram23lc.Device) (*Monitor, error) {
	mon := &Monitor{dev: dev}

	if err := mon.term.initialise(os.Stdin, os.Stdout); err != nil {
		return nil, err
	}

	return mon, nil
}

// Run the monitor loop until the quit command or the end of input. Errors
// from individual commands are printed and the loop continues; only terminal
// failures end the loop early.
func (mon *Monitor) Run() error {
	mon.term.print("%s (h for help)\n", mon.dev)
	defer mon.term.restore()

	for {
		mon.term.print("%s", prompt)

		k, err := mon.term.readKey()
		if err != nil {
			if err == io.EOF {
				mon.term.print("\n")
				return nil
			}
			return err
		}

		// the keypress is not echoed in cbreak mode
		mon.term.print("%c\n", k)

		switch k {
		case 'q':
			return nil

		case 'h', '?':
			mon.term.print("r     read byte\n")
			mon.term.print("w     write byte\n")
			mon.term.print("l     show recent log entries\n")
			mon.term.print("q     quit\n")

		case 'r':
			address, err := mon.number("address")
			if err != nil {
				mon.commandError(err)
				continue // for loop
			}

			v, err := mon.dev.ReadByte(address)
			if err != nil {
				mon.commandError(err)
				continue // for loop
			}

			mon.term.print("%#05x = %d (%#02x)\n", address, v, v)

		case 'w':
			address, err := mon.number("address")
			if err != nil {
				mon.commandError(err)
				continue // for loop
			}

			data, err := mon.number("value")
			if err != nil {
				mon.commandError(err)
				continue // for loop
			}

			if err := mon.dev.WriteByte(address, data); err != nil {
				mon.commandError(err)
				continue // for loop
			}

			mon.term.print("%#05x <- %d\n", address, data)

		case 'l':
			logger.Tail(mon.term.output, logTail)

		case '\n', '\r':
			// an empty prompt. nothing to do

		default:
			mon.term.print("unknown command (h for help)\n")
		}
	}
}

// number prompts for, reads and parses a single numeric argument.
func (mon *Monitor) number(label string) (int, error) {
	mon.term.print("%s> ", label)

	s, err := mon.term.readLine()
	if err != nil {
		return 0, err
	}

	return parseNumber(s)
}

func (mon *Monitor) commandError(err error) {
	mon.term.print("error: %v\n", err)
}

// parseNumber interprets decimal, hexadecimal (0x prefix) and octal (0
// prefix) forms.
func parseNumber(s string) (int, error) {
	s = strings.TrimSpace(s)

	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, curated.Errorf(InvalidNumber, s)
	}

	return int(n), nil
}
