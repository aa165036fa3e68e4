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
	"errors"
	"fmt"

	"github.com/NVIDIA/go-nvlib/pkg/nvpci"
	"k8s.io/klog/v2"
)

// ErrDeviceNotFound is returned when no PCI device matches the requested coordinates.
var ErrDeviceNotFound = errors.New("device not found on PCI bus")

// Enumerator lists the PCI devices on the system. It is satisfied by nvpci.Interface.
type Enumerator interface {
	GetAllDevices() ([]*nvpci.NvidiaPCIDevice, error)
}

// Resolver locates the PCI device backing a GPU.
type Resolver interface {
	Resolve(Coordinates) (*BusAddress, error)
}

type resolver struct {
	pcilib Enumerator
}

var _ Resolver = (*resolver)(nil)

// NewResolver creates a Resolver that enumerates devices through the given library.
func NewResolver(pcilib Enumerator) Resolver {
	return &resolver{pcilib: pcilib}
}

// NewSysfsResolver creates a Resolver backed by sysfs.
func NewSysfsResolver(opts ...nvpci.Option) Resolver {
	return NewResolver(nvpci.New(opts...))
}

// Resolve walks the PCI devices in bus address order and returns the first one
// matching the coordinates. If the same coordinates were ever reported twice,
// the device with the lowest bus address would be chosen.
func (r *resolver) Resolve(c Coordinates) (*BusAddress, error) {
	devices, err := r.pcilib.GetAllDevices()
	if err != nil {
		return nil, fmt.Errorf("unable to enumerate PCI devices: %w", err)
	}

	for _, d := range devices {
		address, err := ParseAddress(d.Address)
		if err != nil {
			klog.V(4).Infof("Skipping PCI device: %v", err)
			continue
		}
		if !matches(c, address, d.Vendor, d.Device) {
			continue
		}

		bar0, ok := d.Resources[0]
		if !ok || bar0 == nil {
			return nil, fmt.Errorf("PCI device %s has no BAR0", d.Address)
		}
		return &BusAddress{
			Address:  address,
			Vendor:   d.Vendor,
			DeviceID: d.Device,
			BAR0:     uint64(bar0.Start),
		}, nil
	}

	return nil, fmt.Errorf("%w: %04x:%02x:%02x.%x id %#08x", ErrDeviceNotFound, c.Domain, c.Bus, c.Device, c.Function, c.PciDeviceID)
}

func matches(c Coordinates, a Address, vendor, device uint16) bool {
	return PackDeviceID(vendor, device) == c.PciDeviceID &&
		a.Domain == c.Domain &&
		a.Bus == c.Bus &&
		a.Device == c.Device &&
		a.Function == c.Function
}
