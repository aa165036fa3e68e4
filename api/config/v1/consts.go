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

package v1

import "time"

// Constants representing the supported temperature sensors
const (
	SensorCore = "core"
	SensorVRAM = "vram"
)

// Constants representing the supported temperature units
const (
	TemperatureUnitCelsius    = "C"
	TemperatureUnitFahrenheit = "F"
	TemperatureUnitKelvin     = "K"
)

// Default values for the fan controller
const (
	DefaultSensor          = SensorCore
	DefaultTemperatureUnit = TemperatureUnitCelsius
	DefaultInterval        = 2 * time.Second
	DefaultMemoryDevice    = "/dev/mem"
	// MinInterval is the shortest supported time between control steps.
	MinInterval = time.Second
)

// Command line flag names - Common flags
const (
	FlagTemperatureUnit = "temperature-unit"
	FlagDevices         = "device"
	FlagUUID            = "uuid"
	FlagConfigFile      = "config-file"
)

// Command line flag names - Fan control specific flags
const (
	FlagSensor             = "sensor"
	FlagInterval           = "interval"
	FlagVRAMRegisterOffset = "vram-register-offset"
	FlagMemoryDevice       = "memory-device"
)
