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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, in the same way as
// the Errorf() function in the fmt package.
//
// The Is() function can be used to check whether an error was created by
// Errorf() with a specific pattern. Patterns intended for this use should be
// stored as const strings, suitably named and commented. For example:
//
//	const NotResponding = "device: not responding (%#02x)"
//
//	e := curated.Errorf(NotResponding, v)
//
//	if curated.Is(e, NotResponding) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks for the pattern anywhere in the
// error chain, which is useful once an error has been wrapped by a calling
// function.
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. An uncurated error is one from outside the project and can be thought
// of as unexpected.
//
// The Error() function implementation normalises the error chain by removing
// duplicate adjacent parts, alleviating the problem of when and how to wrap
// errors. Parts of a chain are separated by the sub-string ": " as suggested
// on p239 of "The Go Programming Language" (Donovan, Kernighan).
package curated
