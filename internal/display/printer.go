/**
# Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
#
# Licensed under the Apache License, Version 2.0 (the "License");
# you may not use this file except in compliance with the License.
# You may obtain a copy of the License at
#
#     http://www.apache.org/licenses/LICENSE-2.0
#
# Unless required by applicable law or agreed to in writing, software
# distributed under the License is distributed on an "AS IS" BASIS,
# WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
# See the License for the specific language governing permissions and
# limitations under the License.
**/

package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const clearLine = "\033[1A\033[2K"

// Status is the result of one control step for a device.
type Status struct {
	ID      string
	Celsius uint32
	// Marker is appended to the unit to flag the temperature source.
	Marker string
	Duty   uint32
}

// FormatStatus renders a status line without a trailing newline.
func FormatStatus(unit Unit, s Status) string {
	return fmt.Sprintf("%s:%.1f%s%s -> %d%%", s.ID, unit.Convert(s.Celsius), unit, s.Marker, s.Duty)
}

// Printer writes the control loop output. On a terminal each frame of status
// lines replaces the previous one.
type Printer struct {
	w       io.Writer
	unit    Unit
	inPlace bool
	written int
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithInPlace forces in place updates on or off.
func WithInPlace(inPlace bool) PrinterOption {
	return func(p *Printer) {
		p.inPlace = inPlace
	}
}

// NewPrinter creates a Printer. In place updates are enabled when w is a terminal.
func NewPrinter(w io.Writer, unit Unit, opts ...PrinterOption) *Printer {
	p := &Printer{
		w:       w,
		unit:    unit,
		inPlace: IsTerminal(w),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Banner announces the start of a control session.
func (p *Printer) Banner(devices int, sensor string, setpoints string) {
	fmt.Fprintf(p.w, "Starting dynamic fan control for %d device(s) using %s temperature (Ctrl-C to exit)\n", devices, sensor)
	fmt.Fprintf(p.w, "Setpoints: %s\n", setpoints)
	if p.inPlace {
		fmt.Fprintln(p.w)
	}
	p.written = 0
}

// BeginFrame starts a new set of status lines, erasing the previous set on a terminal.
func (p *Printer) BeginFrame() {
	if p.inPlace && p.written > 0 {
		fmt.Fprint(p.w, strings.Repeat(clearLine, p.written))
	}
	p.written = 0
}

// Status writes a status line.
func (p *Printer) Status(s Status) {
	fmt.Fprintln(p.w, FormatStatus(p.unit, s))
	p.written++
}
