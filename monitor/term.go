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
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// terminal is a minimal wrapper for "github.com/pkg/term/termios". it wraps
// the termios methods in functions with friendlier names and guarantees that
// the terminal attributes found at initialisation can be restored.
type terminal struct {
	input  *os.File
	output *os.File
	reader *bufio.Reader

	// terminal attributes for the two modes the monitor uses. canAttr is also
	// the state the terminal is returned to by restore()
	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

func (term *terminal) initialise(input, output *os.File) error {
	term.input = input
	term.output = output
	term.reader = bufio.NewReader(input)

	if err := termios.Tcgetattr(input.Fd(), &term.canAttr); err != nil {
		return err
	}

	term.cbreakAttr = term.canAttr
	termios.Cfmakecbreak(&term.cbreakAttr)

	return nil
}

// print writes the formatted string to the output file.
func (term *terminal) print(s string, a ...interface{}) {
	term.output.WriteString(fmt.Sprintf(s, a...))
	term.output.Sync()
}

// canonicalMode puts terminal into normal, everyday canonical mode.
func (term *terminal) canonicalMode() {
	termios.Tcsetattr(term.input.Fd(), termios.TCIFLUSH, &term.canAttr)
}

// cbreakMode puts terminal into cbreak mode, for single keypress input.
func (term *terminal) cbreakMode() {
	termios.Tcsetattr(term.input.Fd(), termios.TCIFLUSH, &term.cbreakAttr)
}

// restore the terminal attributes found at initialisation.
func (term *terminal) restore() {
	term.canonicalMode()
}

// readKey returns the next single keypress without waiting for a newline.
func (term *terminal) readKey() (byte, error) {
	term.cbreakMode()
	defer term.canonicalMode()
	return term.reader.ReadByte()
}

// readLine returns the next line of input, without the trailing newline.
func (term *terminal) readLine() (string, error) {
	s, err := term.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return s[:len(s)-1], nil
}
