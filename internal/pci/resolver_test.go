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
	"testing"

	"github.com/NVIDIA/go-nvlib/pkg/nvpci"
	"github.com/stretchr/testify/require"
)

type enumeratorFunc func() ([]*nvpci.NvidiaPCIDevice, error)

func (f enumeratorFunc) GetAllDevices() ([]*nvpci.NvidiaPCIDevice, error) {
	return f()
}

func newDevice(address string, device uint16, bar0 uintptr) *nvpci.NvidiaPCIDevice {
	return &nvpci.NvidiaPCIDevice{
		Address: address,
		Vendor:  nvpci.PCINvidiaVendorID,
		Device:  device,
		Resources: map[int]*nvpci.MemoryResource{
			0: {Start: bar0, End: bar0 + 0xffffff},
		},
	}
}

func TestParseAddress(t *testing.T) {
	testCases := []struct {
		description   string
		input         string
		expected      Address
		expectedError bool
	}{
		{
			description: "sysfs form",
			input:       "0000:01:00.0",
			expected:    Address{Domain: 0, Bus: 1, Device: 0, Function: 0},
		},
		{
			description: "driver form",
			input:       "00000000:3B:00.1",
			expected:    Address{Domain: 0, Bus: 0x3b, Device: 0, Function: 1},
		},
		{
			description: "hex fields",
			input:       "0001:af:1f.7",
			expected:    Address{Domain: 1, Bus: 0xaf, Device: 0x1f, Function: 7},
		},
		{
			description:   "missing function",
			input:         "0000:01:00",
			expectedError: true,
		},
		{
			description:   "too few fields",
			input:         "01:00.0",
			expectedError: true,
		},
		{
			description:   "not hex",
			input:         "0000:zz:00.0",
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			a, err := ParseAddress(tc.input)
			if tc.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, a)
		})
	}
}

func TestAddressString(t *testing.T) {
	a := Address{Domain: 0, Bus: 0x3b, Device: 0, Function: 1}
	require.Equal(t, "0000:3b:00.1", a.String())
}

func TestPackDeviceID(t *testing.T) {
	// An RTX 3090 is reported by the driver with pciDeviceId 0x220410de.
	require.Equal(t, uint32(0x220410de), PackDeviceID(0x10de, 0x2204))
}

func TestResolve(t *testing.T) {
	devices := []*nvpci.NvidiaPCIDevice{
		newDevice("0000:01:00.0", 0x2204, 0xf2000000),
		newDevice("0000:02:00.0", 0x2684, 0xf4000000),
		newDevice("0000:02:00.0", 0x2684, 0xf6000000),
	}
	r := NewResolver(enumeratorFunc(func() ([]*nvpci.NvidiaPCIDevice, error) {
		return devices, nil
	}))

	testCases := []struct {
		description   string
		coordinates   Coordinates
		expectedBAR0  uint64
		expectedError error
	}{
		{
			description:  "matches packed id and location",
			coordinates:  Coordinates{Bus: 1, PciDeviceID: 0x220410de},
			expectedBAR0: 0xf2000000,
		},
		{
			description:  "first match wins",
			coordinates:  Coordinates{Bus: 2, PciDeviceID: 0x268410de},
			expectedBAR0: 0xf4000000,
		},
		{
			description:   "device id mismatch",
			coordinates:   Coordinates{Bus: 1, PciDeviceID: 0x268410de},
			expectedError: ErrDeviceNotFound,
		},
		{
			description:   "swapped vendor and device",
			coordinates:   Coordinates{Bus: 1, PciDeviceID: 0x10de2204},
			expectedError: ErrDeviceNotFound,
		},
		{
			description:   "function mismatch",
			coordinates:   Coordinates{Bus: 1, Function: 1, PciDeviceID: 0x220410de},
			expectedError: ErrDeviceNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			b, err := r.Resolve(tc.coordinates)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedBAR0, b.BAR0)
			require.Equal(t, tc.coordinates.Bus, b.Bus)
		})
	}
}

func TestResolveEnumerationError(t *testing.T) {
	r := NewResolver(enumeratorFunc(func() ([]*nvpci.NvidiaPCIDevice, error) {
		return nil, errors.New("sysfs unavailable")
	}))
	_, err := r.Resolve(Coordinates{})
	require.ErrorContains(t, err, "sysfs unavailable")
}

func TestResolveMissingBAR0(t *testing.T) {
	d := newDevice("0000:01:00.0", 0x2204, 0)
	d.Resources = nil
	r := NewResolver(enumeratorFunc(func() ([]*nvpci.NvidiaPCIDevice, error) {
		return []*nvpci.NvidiaPCIDevice{d}, nil
	}))
	_, err := r.Resolve(Coordinates{Bus: 1, PciDeviceID: 0x220410de})
	require.ErrorContains(t, err, "no BAR0")
}
