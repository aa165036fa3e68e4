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

package telemetry

import (
	"github.com/NVIDIA/gpu-fan-controller/internal/pci"
)

// Memory holds the framebuffer usage of a device in bytes.
type Memory struct {
	Total uint64
	Used  uint64
	Free  uint64
}

// Device provides the temperature, fan and power controls of a single GPU.
//
//go:generate moq -rm -fmt=goimports -stub -out device_mock.go . Device
type Device interface {
	// GetTemperature returns the core temperature in degrees Celsius.
	GetTemperature() (uint32, error)
	// GetNumFans returns the number of fans that can be controlled individually.
	GetNumFans() (int, error)
	// SetFanSpeed switches the fan to manual control at the given duty cycle.
	SetFanSpeed(fan int, percent uint32) error
	// SetFanPolicyAutomatic hands the fan back to the driver's temperature based policy.
	SetFanPolicyAutomatic(fan int) error
	// GetPciCoordinates returns the location of the device on the PCI bus.
	GetPciCoordinates() (pci.Coordinates, error)

	GetName() (string, error)
	GetUUID() (string, error)
	GetMemoryInfo() (Memory, error)
	GetFanSpeed() (uint32, error)
	// Power values are in milliwatts.
	GetPowerUsage() (uint32, error)
	GetPowerLimit() (uint32, error)
	GetPowerLimitConstraints() (uint32, uint32, error)
	SetPowerLimit(milliwatts uint32) error
}

// Manager gives access to the devices on the node.
//
//go:generate moq -rm -fmt=goimports -stub -out manager_mock.go . Manager
type Manager interface {
	Init() error
	Shutdown() error
	// GetDevices returns all devices ordered by their index.
	GetDevices() ([]Device, error)
}
