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

package sensor

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/gpu-fan-controller/internal/pci"
	"github.com/NVIDIA/gpu-fan-controller/internal/telemetry"
)

// Kind selects the temperature source used for control.
type Kind string

// Constants for the supported sensor kinds.
const (
	Core Kind = "core"
	VRAM Kind = "vram"
)

// ParseKind converts a user supplied string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case Core, VRAM:
		return k, nil
	}
	return "", fmt.Errorf("unknown sensor %q: expected %q or %q", s, Core, VRAM)
}

// Title returns the name of the sensor kind as shown to users.
func (k Kind) Title() string {
	if k == VRAM {
		return "VRAM"
	}
	return "Core"
}

// Origin records which sensor actually produced a reading.
type Origin int

// Possible reading origins.
const (
	OriginCore Origin = iota
	OriginVRAM
)

// Marker returns the suffix used in status lines for readings of this origin.
func (o Origin) Marker() string {
	if o == OriginVRAM {
		return "V"
	}
	return ""
}

// Reading is a single temperature sample in degrees Celsius.
type Reading struct {
	Celsius uint32
	Origin  Origin
}

// Sensor provides temperature readings for a single device.
//
//go:generate moq -rm -fmt=goimports -stub -out sensor_mock.go . Sensor
type Sensor interface {
	Read() (Reading, error)
}

// Error is returned when a sensor cannot produce a reading.
type Error struct {
	ID   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to read %s temperature of device %s: %v", e.Kind.Title(), e.ID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// RegisterReader reads the VRAM temperature of a resolved PCI device.
type RegisterReader interface {
	ReadVRAMTemperature(*pci.BusAddress) (uint32, error)
}

// New constructs the sensor for the given kind. A VRAM sensor falls back to
// the core temperature whenever the register cannot be read.
func New(kind Kind, id string, device telemetry.Device, resolver pci.Resolver, reader RegisterReader) (Sensor, error) {
	fallback := NewCore(id, device)
	switch kind {
	case Core:
		return fallback, nil
	case VRAM:
		vram, err := NewVRAM(id, device, resolver, reader)
		if err != nil {
			return nil, err
		}
		return NewFallback(id, vram, fallback), nil
	}
	return nil, fmt.Errorf("unknown sensor %q", kind)
}
