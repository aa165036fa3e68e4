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
	"github.com/NVIDIA/gpu-fan-controller/internal/telemetry"
)

type core struct {
	id     string
	device telemetry.Device
}

// NewCore returns a Sensor for the GPU core temperature reported by the driver.
func NewCore(id string, device telemetry.Device) Sensor {
	return &core{id: id, device: device}
}

func (s *core) Read() (Reading, error) {
	temp, err := s.device.GetTemperature()
	if err != nil {
		return Reading{}, &Error{ID: s.id, Kind: Core, Err: err}
	}
	return Reading{Celsius: temp, Origin: OriginCore}, nil
}
