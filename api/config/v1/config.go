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
	"io"
	"os"
	"strings"
	"time"

	cli "github.com/urfave/cli/v2"

	"sigs.k8s.io/yaml"
)

// Version indicates the version of the 'Config' struct used to hold configuration information.
const Version = "v1"

// Config is a versioned struct used to hold configuration information.
type Config struct {
	Version   string   `json:"version"             yaml:"version"`
	Flags     Flags    `json:"flags,omitempty"     yaml:"flags,omitempty"`
	Setpoints []string `json:"setpoints,omitempty" yaml:"setpoints,omitempty"`
}

// NewConfig builds out a Config struct from a config file (or command line flags).
// The data stored in the config will be populated in order of precedence from
// (1) command line, (2) environment variable, (3) config file.
// Setpoints given as arguments replace any setpoints from the config file.
func NewConfig(c *cli.Context, flags []cli.Flag) (*Config, error) {
	config := &Config{Version: Version}

	if configFile := c.String(FlagConfigFile); configFile != "" {
		var err error
		config, err = parseConfig(configFile)
		if err != nil {
			return nil, fmt.Errorf("unable to parse config file: %v", err)
		}
	}

	config.Flags.UpdateFromCLIFlags(c, flags)
	if c.Args().Present() {
		config.Setpoints = c.Args().Slice()
	}

	return config, nil
}

// parseConfig parses a config file as either YAML of JSON and unmarshals it into a Config struct.
func parseConfig(configFile string) (*Config, error) {
	reader, err := os.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("error opening config file: %v", err)
	}
	defer reader.Close()

	config, err := parseConfigFrom(reader)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %v", err)
	}

	return config, nil
}

func parseConfigFrom(reader io.Reader) (*Config, error) {
	var err error
	var configYaml []byte

	configYaml, err = io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read error: %v", err)
	}

	var config Config
	err = yaml.Unmarshal(configYaml, &config)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %v", err)
	}

	if config.Version == "" {
		config.Version = Version
	}

	if config.Version != Version {
		return nil, fmt.Errorf("unknown version: %v", config.Version)
	}

	return &config, nil
}

// Validate checks the settings that can be checked without accessing any device.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Flags.sensor()) {
	case SensorCore, SensorVRAM:
	default:
		return fmt.Errorf("invalid --%v option %q", FlagSensor, c.Flags.sensor())
	}

	switch strings.ToUpper(c.Flags.temperatureUnit()) {
	case TemperatureUnitCelsius, TemperatureUnitFahrenheit, TemperatureUnitKelvin:
	default:
		return fmt.Errorf("invalid --%v option %q", FlagTemperatureUnit, c.Flags.temperatureUnit())
	}

	if interval := c.Flags.interval(); interval < MinInterval {
		return fmt.Errorf("invalid --%v option %v: must be at least %v", FlagInterval, interval, MinInterval)
	}

	return nil
}

func (f *Flags) sensor() string {
	if f.Sensor == nil {
		return DefaultSensor
	}
	return *f.Sensor
}

func (f *Flags) temperatureUnit() string {
	if f.TemperatureUnit == nil {
		return DefaultTemperatureUnit
	}
	return *f.TemperatureUnit
}

func (f *Flags) interval() time.Duration {
	if f.Interval == nil {
		return DefaultInterval
	}
	return time.Duration(*f.Interval)
}
