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

package controller

import (
	"fmt"
	"sync"

	"k8s.io/klog/v2"

	"github.com/NVIDIA/gpu-fan-controller/internal/pci"
	"github.com/NVIDIA/gpu-fan-controller/internal/sensor"
	"github.com/NVIDIA/gpu-fan-controller/internal/telemetry"
)

// SetupError is returned for a device that cannot be brought under control.
type SetupError struct {
	ID     string
	Reason error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("device %s: %v", e.ID, e.Reason)
}

func (e *SetupError) Unwrap() error {
	return e.Reason
}

// ActuationError is returned when one or more fans rejected a duty cycle.
type ActuationError struct {
	ID       string
	Failures int
}

func (e *ActuationError) Error() string {
	return fmt.Sprintf("device %s: failed to set speed of %d fan(s)", e.ID, e.Failures)
}

// DeviceController drives the fans of a single device from its sensor.
type DeviceController struct {
	id       string
	device   telemetry.Device
	sensor   sensor.Sensor
	fanCount int
	lastDuty *uint32

	restoreOnce sync.Once
}

// Selected is a device chosen by the user together with its display id.
type Selected struct {
	ID     string
	Device telemetry.Device
}

// New creates a controller for the device. Devices without controllable fans are rejected.
func New(id string, device telemetry.Device, s sensor.Sensor) (*DeviceController, error) {
	fans, err := device.GetNumFans()
	if err != nil {
		return nil, &SetupError{ID: id, Reason: fmt.Errorf("failed to get fan count: %w", err)}
	}
	if fans <= 0 {
		return nil, &SetupError{ID: id, Reason: fmt.Errorf("device has no fans")}
	}
	return &DeviceController{
		id:       id,
		device:   device,
		sensor:   s,
		fanCount: fans,
	}, nil
}

// Prepare builds a controller for every selected device that can be
// controlled. Devices that cannot are left out and reported as a
// *SetupError each. The order of the selection is preserved.
func Prepare(devices []Selected, kind sensor.Kind, resolver pci.Resolver, reader sensor.RegisterReader) ([]*DeviceController, []error) {
	var controllers []*DeviceController
	var errs []error
	for _, d := range devices {
		s, err := sensor.New(kind, d.ID, d.Device, resolver, reader)
		if err != nil {
			errs = append(errs, &SetupError{ID: d.ID, Reason: err})
			continue
		}
		c, err := New(d.ID, d.Device, s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		klog.V(1).Infof("Device %s: controlling %d fan(s) using %s temperature", d.ID, c.fanCount, kind.Title())
		controllers = append(controllers, c)
	}
	return controllers, errs
}

// ID returns the display id of the device.
func (c *DeviceController) ID() string {
	return c.id
}

// FanCount returns the number of fans under control.
func (c *DeviceController) FanCount() int {
	return c.fanCount
}

// appliedDuty returns the last duty cycle that was applied to every fan.
func (c *DeviceController) appliedDuty() (uint32, bool) {
	if c.lastDuty == nil {
		return 0, false
	}
	return *c.lastDuty, true
}

// Sense takes a temperature reading from the controller's sensor.
func (c *DeviceController) Sense() (sensor.Reading, error) {
	return c.sensor.Read()
}

// Apply sets every fan to the given duty cycle. Every fan is attempted even
// if an earlier one fails. The number of failed fans is returned.
func (c *DeviceController) Apply(duty uint32) int {
	failures := 0
	for fan := 0; fan < c.fanCount; fan++ {
		if err := c.device.SetFanSpeed(fan, duty); err != nil {
			klog.Errorf("Device %s: failed to set speed of fan %d to %d%%: %v", c.id, fan, duty, err)
			failures++
		}
	}
	if failures == 0 {
		c.lastDuty = &duty
	}
	return failures
}

// Restore hands every fan back to automatic control. It only acts on the
// first call. Failures are logged.
func (c *DeviceController) Restore() {
	c.restoreOnce.Do(func() {
		for fan := 0; fan < c.fanCount; fan++ {
			if err := c.device.SetFanPolicyAutomatic(fan); err != nil {
				klog.Errorf("Device %s: failed to restore automatic control of fan %d: %v", c.id, fan, err)
			}
		}
		if duty, ok := c.appliedDuty(); ok {
			klog.V(1).Infof("Device %s: restored automatic fan control, last duty was %d%%", c.id, duty)
			return
		}
		klog.V(1).Infof("Device %s: restored automatic fan control", c.id)
	})
}
