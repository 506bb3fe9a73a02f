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

package main

import (
	"fmt"
	"os"

	"github.com/marksbench/sram23lc1024/logger"
	"github.com/marksbench/sram23lc1024/modalflag"
	"github.com/marksbench/sram23lc1024/monitor"
	"github.com/marksbench/sram23lc1024/spi"
	"github.com/marksbench/sram23lc1024/sram23lc"
	"github.com/marksbench/sram23lc1024/sram23lc/simulator"
	"github.com/marksbench/sram23lc1024/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "MONITOR", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "MONITOR":
		err = monitorMode(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// attach creates a device driver on a freshly powered-up simulated chip.
func attach() (*sram23lc.Device, *simulator.Chip, error) {
	chip := simulator.NewChip()
	dev, err := sram23lc.NewDevice(chip, chip.Pin(), spi.WallClock{})
	return dev, chip, err
}

// parseModeFlags handles the flags common to the RUN and MONITOR modes.
func parseModeFlags(md *modalflag.Modes) (modalflag.ParseResult, error) {
	md.NewMode()
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return p, err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	return p, nil
}

// run exercises the driver against the simulated chip: a byte written to the
// highest and the lowest address, read back, and a demonstration of the
// range checks.
func run(md *modalflag.Modes) error {
	p, err := parseModeFlags(md)
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dev, _, err := attach()
	if err != nil {
		return err
	}

	fmt.Println(dev)

	if err := dev.WriteByte(sram23lc.MaxAddress, 38); err != nil {
		return err
	}
	if err := dev.WriteByte(0, 255); err != nil {
		return err
	}

	v, err := dev.ReadByte(sram23lc.MaxAddress)
	if err != nil {
		return err
	}
	fmt.Printf("read %#05x: %d\n", sram23lc.MaxAddress, v)

	v, err = dev.ReadByte(0)
	if err != nil {
		return err
	}
	fmt.Printf("read %#05x: %d\n", 0, v)

	// out-of-range accesses fail before any bus activity
	if err := dev.WriteByte(sram23lc.MaxAddress+1, 10); err != nil {
		fmt.Printf("rejected: %v\n", err)
	}
	if err := dev.WriteByte(5, 256); err != nil {
		fmt.Printf("rejected: %v\n", err)
	}

	return nil
}

// monitorMode attaches an interactive monitor to a device on the simulated
// chip.
func monitorMode(md *modalflag.Modes) error {
	p, err := parseModeFlags(md)
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dev, _, err := attach()
	if err != nil {
		return err
	}

	mon, err := monitor.NewMonitor(dev)
	if err != nil {
		return err
	}

	return mon.Run()
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	vers, rev, release := version.Version()
	if release {
		fmt.Printf("%s %s\n", version.ApplicationName, vers)
	} else {
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, vers, rev)
	}

	return nil
}
