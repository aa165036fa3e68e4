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

package pci

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is a PCI location of the form domain:bus:device.function.
type Address struct {
	Domain   uint32
	Bus      uint32
	Device   uint32
	Function uint32
}

// ParseAddress parses both the sysfs form (0000:01:00.0) and the NVML form
// (00000000:01:00.0) of a PCI bus id.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Address{}, fmt.Errorf("malformed PCI address %q", s)
	}
	slot, function, found := strings.Cut(parts[2], ".")
	if !found {
		return Address{}, fmt.Errorf("malformed PCI address %q: missing function", s)
	}

	var values [4]uint64
	for i, field := range []string{parts[0], parts[1], slot, function} {
		v, err := strconv.ParseUint(field, 16, 32)
		if err != nil {
			return Address{}, fmt.Errorf("malformed PCI address %q: %v", s, err)
		}
		values[i] = v
	}

	return Address{
		Domain:   uint32(values[0]),
		Bus:      uint32(values[1]),
		Device:   uint32(values[2]),
		Function: uint32(values[3]),
	}, nil
}

func (a Address) String() string {
	return fmt.Sprintf("%04x:%02x:%02x.%x", a.Domain, a.Bus, a.Device, a.Function)
}

// Coordinates are the PCI details that the driver reports for a GPU.
type Coordinates struct {
	Domain   uint32
	Bus      uint32
	Device   uint32
	Function uint32
	// PciDeviceID combines the device id (upper 16 bits) and vendor id (lower 16 bits).
	PciDeviceID uint32
}

// PackDeviceID combines a vendor and device id the same way the driver reports them.
func PackDeviceID(vendor, device uint16) uint32 {
	return uint32(device)<<16 | uint32(vendor)
}

// BusAddress is a PCI device that has been matched to a GPU, together with the
// base of its register window.
type BusAddress struct {
	Address
	Vendor   uint16
	DeviceID uint16
	BAR0     uint64
}

func (b *BusAddress) String() string {
	return fmt.Sprintf("%s [%04x:%04x] BAR0=%#x", b.Address, b.Vendor, b.DeviceID, b.BAR0)
}
