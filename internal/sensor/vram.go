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

	"k8s.io/klog/v2"

	"github.com/NVIDIA/gpu-fan-controller/internal/pci"
	"github.com/NVIDIA/gpu-fan-controller/internal/telemetry"
)

type vram struct {
	id      string
	address *pci.BusAddress
	reader  RegisterReader
}

// NewVRAM returns a Sensor for the memory temperature of the device. The PCI
// device is located once, here, and the result is reused for every reading.
func NewVRAM(id string, device telemetry.Device, resolver pci.Resolver, reader RegisterReader) (Sensor, error) {
	coordinates, err := device.GetPciCoordinates()
	if err != nil {
		return nil, fmt.Errorf("failed to get PCI info: %w", err)
	}
	address, err := resolver.Resolve(coordinates)
	if err != nil {
		return nil, err
	}
	klog.V(2).Infof("Device %s: using VRAM register of %s", id, address)

	return &vram{id: id, address: address, reader: reader}, nil
}

func (s *vram) Read() (Reading, error) {
	temp, err := s.reader.ReadVRAMTemperature(s.address)
	if err != nil {
		return Reading{}, &Error{ID: s.id, Kind: VRAM, Err: err}
	}
	return Reading{Celsius: temp, Origin: OriginVRAM}, nil
}
