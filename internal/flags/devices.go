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

package flags

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	spec "github.com/NVIDIA/gpu-fan-controller/api/config/v1"
	"github.com/NVIDIA/gpu-fan-controller/internal/controller"
	"github.com/NVIDIA/gpu-fan-controller/internal/telemetry"
)

const (
	DevicesSeparator = ","
	RangeSeparator   = "-"
)

// DeviceSelector chooses the devices a command operates on. With neither
// field set every device is selected.
type DeviceSelector struct {
	// Devices is a list of indices and inclusive ranges such as "0,2-3".
	Devices string
	// UUID selects the first device whose UUID contains it.
	UUID string
}

// NewDeviceSelector creates a DeviceSelector from the config.
func NewDeviceSelector(config *spec.Config) DeviceSelector {
	var s DeviceSelector
	if config.Flags.Devices != nil {
		s.Devices = *config.Flags.Devices
	}
	if config.Flags.UUID != nil {
		s.UUID = *config.Flags.UUID
	}
	return s
}

// DeviceFlags returns the flags used to select devices.
func DeviceFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    spec.FlagDevices,
			Aliases: []string{"d"},
			Usage:   "the comma separated list of device indices or ranges to operate on (e.g. 0,2-3)",
			EnvVars: []string{"GFC_DEVICES"},
		},
		&cli.StringFlag{
			Name:    spec.FlagUUID,
			Aliases: []string{"u"},
			Usage:   "operate on the first device whose UUID contains this string",
			EnvVars: []string{"GFC_UUID"},
		},
	}
	return flags
}

// ParseDeviceList parses a list of device indices and inclusive ranges.
func ParseDeviceList(s string) ([]int, error) {
	var indices []int
	for _, token := range strings.Split(s, DevicesSeparator) {
		token = strings.TrimSpace(token)
		first, last, isRange := strings.Cut(token, RangeSeparator)

		start, err := strconv.Atoi(first)
		if err != nil || start < 0 {
			return nil, fmt.Errorf("invalid device index %q in %q", token, s)
		}
		end := start
		if isRange {
			end, err = strconv.Atoi(last)
			if err != nil || end < start {
				return nil, fmt.Errorf("invalid device range %q in %q", token, s)
			}
		}
		for i := start; i <= end; i++ {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

// Select resolves the selection against the devices on the node. Indices
// that do not exist are returned as errors alongside the devices that do.
func (s DeviceSelector) Select(devices []telemetry.Device) ([]controller.Selected, []error, error) {
	if s.UUID != "" {
		for i, d := range devices {
			uuid, err := d.GetUUID()
			if err != nil {
				continue
			}
			if strings.Contains(uuid, s.UUID) {
				return []controller.Selected{{ID: strconv.Itoa(i), Device: d}}, nil, nil
			}
		}
		return nil, nil, fmt.Errorf("device with UUID %q not found", s.UUID)
	}

	var indices []int
	if s.Devices == "" {
		for i := range devices {
			indices = append(indices, i)
		}
	} else {
		var err error
		indices, err = ParseDeviceList(s.Devices)
		if err != nil {
			return nil, nil, err
		}
	}

	var selected []controller.Selected
	var errs []error
	for _, i := range indices {
		if i >= len(devices) {
			errs = append(errs, fmt.Errorf("device %d not found (available: 0-%d)", i, len(devices)-1))
			continue
		}
		selected = append(selected, controller.Selected{ID: strconv.Itoa(i), Device: devices[i]})
	}
	return selected, errs, nil
}
