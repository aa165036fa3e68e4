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

import (
	"fmt"

	cli "github.com/urfave/cli/v2"
)

// prt returns a reference to whatever type is passed into it
func ptr[T any](x T) *T {
	return &x
}

// updateFromCLIFlag conditionally updates the config flag at 'pflag' to the value of the CLI flag with name 'flagName'
func updateFromCLIFlag[T any](pflag **T, c *cli.Context, flagName string) {
	if c.IsSet(flagName) || *pflag == (*T)(nil) {
		switch flag := any(pflag).(type) {
		case **string:
			*flag = ptr(c.String(flagName))
		case **uint64:
			*flag = ptr(c.Uint64(flagName))
		case **Duration:
			*flag = ptr(Duration(c.Duration(flagName)))
		default:
			panic(fmt.Errorf("unsupported flag type for %v: %T", flagName, flag))
		}
	}
}

// Flags holds the full list of flags used to configure the fan controller.
type Flags struct {
	CommandLineFlags
}

// CommandLineFlags holds the list of command line flags used to configure the fan controller.
type CommandLineFlags struct {
	TemperatureUnit    *string   `json:"temperatureUnit"              yaml:"temperatureUnit"`
	Devices            *string   `json:"devices,omitempty"            yaml:"devices,omitempty"`
	UUID               *string   `json:"uuid,omitempty"               yaml:"uuid,omitempty"`
	Sensor             *string   `json:"sensor"                       yaml:"sensor"`
	Interval           *Duration `json:"interval"                     yaml:"interval"`
	VRAMRegisterOffset *uint64   `json:"vramRegisterOffset,omitempty" yaml:"vramRegisterOffset,omitempty"`
	MemoryDevice       *string   `json:"memoryDevice,omitempty"       yaml:"memoryDevice,omitempty"`
}

// UpdateFromCLIFlags updates Flags from settings in the cli Flags if they are set.
func (f *Flags) UpdateFromCLIFlags(c *cli.Context, flags []cli.Flag) {
	for _, flag := range flags {
		for _, n := range flag.Names() {
			// Common flags
			switch n {
			case FlagTemperatureUnit:
				updateFromCLIFlag(&f.TemperatureUnit, c, n)
			case FlagDevices:
				updateFromCLIFlag(&f.Devices, c, n)
			case FlagUUID:
				updateFromCLIFlag(&f.UUID, c, n)
			}
			// Fan control specific flags
			switch n {
			case FlagSensor:
				updateFromCLIFlag(&f.Sensor, c, n)
			case FlagInterval:
				updateFromCLIFlag(&f.Interval, c, n)
			case FlagVRAMRegisterOffset:
				updateFromCLIFlag(&f.VRAMRegisterOffset, c, n)
			case FlagMemoryDevice:
				updateFromCLIFlag(&f.MemoryDevice, c, n)
			}
		}
	}
}
