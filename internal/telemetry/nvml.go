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
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"github.com/NVIDIA/gpu-fan-controller/internal/pci"
)

// Error wraps a failed NVML call.
type Error struct {
	Op     string
	Return nvml.Return
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, nvml.ErrorString(e.Return))
}

func nvmlError(op string, ret nvml.Return) error {
	if ret == nvml.SUCCESS {
		return nil
	}
	return &Error{Op: op, Return: ret}
}

type nvmlManager struct{}

var _ Manager = (*nvmlManager)(nil)

// NewNVMLManager creates a manager that uses NVML to query and control devices.
func NewNVMLManager() Manager {
	return &nvmlManager{}
}

// Init initializes NVML.
func (m *nvmlManager) Init() error {
	return nvmlError("failed to initialize NVML", nvml.Init())
}

// Shutdown shuts down NVML.
func (m *nvmlManager) Shutdown() error {
	return nvmlError("failed to shutdown NVML", nvml.Shutdown())
}

// GetDevices returns a handle for every device NVML reports.
func (m *nvmlManager) GetDevices() ([]Device, error) {
	count, ret := nvml.DeviceGetCount()
	if err := nvmlError("failed to get device count", ret); err != nil {
		return nil, err
	}

	var devices []Device
	for i := 0; i < count; i++ {
		handle, ret := nvml.DeviceGetHandleByIndex(i)
		if err := nvmlError(fmt.Sprintf("failed to get device handle for device %d", i), ret); err != nil {
			return nil, err
		}
		devices = append(devices, nvmlDevice{handle: handle})
	}
	return devices, nil
}

type nvmlDevice struct {
	handle nvml.Device
}

var _ Device = (*nvmlDevice)(nil)

func (d nvmlDevice) GetTemperature() (uint32, error) {
	temp, ret := d.handle.GetTemperature(nvml.TEMPERATURE_GPU)
	return temp, nvmlError("cannot read temperature", ret)
}

func (d nvmlDevice) GetNumFans() (int, error) {
	fans, ret := d.handle.GetNumFans()
	return fans, nvmlError("cannot get number of fans", ret)
}

func (d nvmlDevice) SetFanSpeed(fan int, percent uint32) error {
	return nvmlError(fmt.Sprintf("cannot set speed of fan %d", fan), d.handle.SetFanSpeed_v2(fan, int(percent)))
}

func (d nvmlDevice) SetFanPolicyAutomatic(fan int) error {
	ret := d.handle.SetFanControlPolicy(fan, nvml.FAN_POLICY_TEMPERATURE_CONTINOUS_SW)
	return nvmlError(fmt.Sprintf("cannot restore automatic policy of fan %d", fan), ret)
}

// GetPciCoordinates reads the PCI info of the device. NVML does not report the
// function number on its own, so it is taken from the bus id.
func (d nvmlDevice) GetPciCoordinates() (pci.Coordinates, error) {
	info, ret := d.handle.GetPciInfo()
	if err := nvmlError("cannot get PCI info", ret); err != nil {
		return pci.Coordinates{}, err
	}

	var bytes []byte
	for _, char := range info.BusId {
		if char == 0 {
			break
		}
		bytes = append(bytes, byte(char))
	}
	address, err := pci.ParseAddress(string(bytes))
	if err != nil {
		return pci.Coordinates{}, fmt.Errorf("cannot parse PCI bus id: %w", err)
	}

	return pci.Coordinates{
		Domain:      info.Domain,
		Bus:         info.Bus,
		Device:      info.Device,
		Function:    address.Function,
		PciDeviceID: info.PciDeviceId,
	}, nil
}

func (d nvmlDevice) GetName() (string, error) {
	name, ret := d.handle.GetName()
	return name, nvmlError("cannot get name", ret)
}

func (d nvmlDevice) GetUUID() (string, error) {
	uuid, ret := d.handle.GetUUID()
	return uuid, nvmlError("cannot get UUID", ret)
}

func (d nvmlDevice) GetMemoryInfo() (Memory, error) {
	info, ret := d.handle.GetMemoryInfo()
	if err := nvmlError("cannot get memory info", ret); err != nil {
		return Memory{}, err
	}
	return Memory{Total: info.Total, Used: info.Used, Free: info.Free}, nil
}

func (d nvmlDevice) GetFanSpeed() (uint32, error) {
	speed, ret := d.handle.GetFanSpeed()
	return speed, nvmlError("cannot get fan speed", ret)
}

func (d nvmlDevice) GetPowerUsage() (uint32, error) {
	usage, ret := d.handle.GetPowerUsage()
	return usage, nvmlError("cannot get power usage", ret)
}

func (d nvmlDevice) GetPowerLimit() (uint32, error) {
	limit, ret := d.handle.GetPowerManagementLimit()
	return limit, nvmlError("cannot get power limit", ret)
}

func (d nvmlDevice) GetPowerLimitConstraints() (uint32, uint32, error) {
	minLimit, maxLimit, ret := d.handle.GetPowerManagementLimitConstraints()
	return minLimit, maxLimit, nvmlError("cannot get power limit constraints", ret)
}

func (d nvmlDevice) SetPowerLimit(milliwatts uint32) error {
	return nvmlError("cannot set power limit", d.handle.SetPowerManagementLimit(milliwatts))
}
