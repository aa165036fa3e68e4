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

package main

import (
	"fmt"
	"strconv"

	cli "github.com/urfave/cli/v2"

	spec "github.com/NVIDIA/gpu-fan-controller/api/config/v1"
	"github.com/NVIDIA/gpu-fan-controller/internal/controller"
	"github.com/NVIDIA/gpu-fan-controller/internal/display"
	"github.com/NVIDIA/gpu-fan-controller/internal/pci"
)

func temperatureUnit(config *spec.Config) display.Unit {
	unit := spec.DefaultTemperatureUnit
	if config.Flags.TemperatureUnit != nil {
		unit = *config.Flags.TemperatureUnit
	}
	u, err := display.ParseUnit(unit)
	if err != nil {
		return display.Celsius
	}
	return u
}

// deviceCommand wraps a per-device action into a command action.
func deviceCommand(fn func(*cli.Context, *spec.Config, controller.Selected) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		config, err := loadConfig(c)
		if err != nil {
			return err
		}
		return forEachDevice(c, config, func(s controller.Selected) error {
			return fn(c, config, s)
		})
	}
}

func newListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list the selected devices",
		Flags: commonFlags(),
		Action: deviceCommand(func(c *cli.Context, _ *spec.Config, s controller.Selected) error {
			uuid, _ := s.Device.GetUUID()
			name, _ := s.Device.GetName()
			fmt.Fprintf(c.App.Writer, "%s:%s %s\n", s.ID, uuid, name)
			return nil
		}),
	}
}

func newStatusCommand() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "show temperature, fan speed and power usage",
		Flags: commonFlags(),
		Action: deviceCommand(func(c *cli.Context, config *spec.Config, s controller.Selected) error {
			unit := temperatureUnit(config)
			temp, _ := s.Device.GetTemperature()
			fan, _ := s.Device.GetFanSpeed()
			power, _ := s.Device.GetPowerUsage()
			fmt.Fprintf(c.App.Writer, "%s:%.1f%s,%d%%,%.1fW\n", s.ID, unit.Convert(temp), unit, fan, display.Watts(power))
			return nil
		}),
	}
}

func newTempCommand() *cli.Command {
	return &cli.Command{
		Name:  "temp",
		Usage: "show the core temperature",
		Flags: commonFlags(),
		Action: deviceCommand(func(c *cli.Context, config *spec.Config, s controller.Selected) error {
			temp, err := s.Device.GetTemperature()
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%s:%.1f\n", s.ID, temperatureUnit(config).Convert(temp))
			return nil
		}),
	}
}

func registerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Uint64Flag{
			Name:    spec.FlagVRAMRegisterOffset,
			Value:   pci.VRAMTemperatureRegister,
			Usage:   "the offset of the VRAM temperature register in BAR0",
			EnvVars: []string{"GFC_VRAM_REGISTER_OFFSET"},
		},
		&cli.StringFlag{
			Name:    spec.FlagMemoryDevice,
			Value:   spec.DefaultMemoryDevice,
			Usage:   "the device used to map PCI registers",
			EnvVars: []string{"GFC_MEMORY_DEVICE"},
		},
	}
}

func newRegisterReader(config *spec.Config) *pci.Reader {
	var opts []pci.ReaderOption
	if config.Flags.MemoryDevice != nil {
		opts = append(opts, pci.WithMemoryDevice(*config.Flags.MemoryDevice))
	}
	if config.Flags.VRAMRegisterOffset != nil {
		opts = append(opts, pci.WithVRAMRegister(*config.Flags.VRAMRegisterOffset))
	}
	return pci.NewReader(opts...)
}

func newVRAMTempCommand() *cli.Command {
	return &cli.Command{
		Name:  "vramtemp",
		Usage: "show the VRAM temperature (requires root)",
		Flags: commonFlags(registerFlags()...),
		Action: func(c *cli.Context) error {
			config, err := loadConfig(c)
			if err != nil {
				return err
			}
			resolver := newResolver()
			reader := newRegisterReader(config)
			return forEachDevice(c, config, func(s controller.Selected) error {
				coordinates, err := s.Device.GetPciCoordinates()
				if err != nil {
					return err
				}
				address, err := resolver.Resolve(coordinates)
				if err != nil {
					return err
				}
				temp, err := reader.ReadVRAMTemperature(address)
				if err != nil {
					return fmt.Errorf("failed to read VRAM temperature (root required or unsupported GPU): %w", err)
				}
				fmt.Fprintf(c.App.Writer, "%s:%d\n", s.ID, temp)
				return nil
			})
		},
	}
}

func newFanCommand() *cli.Command {
	return &cli.Command{
		Name:  "fan",
		Usage: "show or set fan speeds",
		Flags: commonFlags(),
		Action: deviceCommand(func(c *cli.Context, _ *spec.Config, s controller.Selected) error {
			speed, err := s.Device.GetFanSpeed()
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%s:%d\n", s.ID, speed)
			return nil
		}),
		Subcommands: []*cli.Command{
			{
				Name:      "set",
				Usage:     "switch every fan to manual control at a fixed duty cycle",
				ArgsUsage: "PERCENT",
				Flags:     commonFlags(),
				Action:    setFanSpeed,
			},
			{
				Name:   "restore",
				Usage:  "hand every fan back to automatic control",
				Flags:  commonFlags(),
				Action: deviceCommand(restoreFans),
			},
		},
	}
}

func setFanSpeed(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("'set' requires a value")
	}
	percent, err := strconv.ParseUint(c.Args().First(), 10, 32)
	if err != nil || percent > 100 {
		return fmt.Errorf("fan speed must be between 0-100%%")
	}

	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	return forEachDevice(c, config, func(s controller.Selected) error {
		fans, err := fanCount(s)
		if err != nil {
			return err
		}
		failures := 0
		for fan := 0; fan < fans; fan++ {
			if err := s.Device.SetFanSpeed(fan, uint32(percent)); err != nil {
				fmt.Fprintf(c.App.ErrWriter, "%s:Fan%d:Error: %v\n", s.ID, fan, err)
				failures++
				continue
			}
			fmt.Fprintf(c.App.Writer, "%s:Fan%d:Set to %d%%\n", s.ID, fan, percent)
		}
		if failures > 0 {
			return &controller.ActuationError{ID: s.ID, Failures: failures}
		}
		fmt.Fprintf(c.App.Writer, "%s:Warning: Fan control is now MANUAL - monitor temperatures!\n", s.ID)
		fmt.Fprintf(c.App.Writer, "%s:Note: Use '%s fan restore -d %s' to restore automatic control\n", s.ID, c.App.Name, s.ID)
		return nil
	})
}

func restoreFans(c *cli.Context, _ *spec.Config, s controller.Selected) error {
	fans, err := fanCount(s)
	if err != nil {
		return err
	}
	failures := 0
	for fan := 0; fan < fans; fan++ {
		if err := s.Device.SetFanPolicyAutomatic(fan); err != nil {
			fmt.Fprintf(c.App.ErrWriter, "%s:Fan%d:Error: %v\n", s.ID, fan, err)
			failures++
			continue
		}
		fmt.Fprintf(c.App.Writer, "%s:Fan%d:Restored to automatic control\n", s.ID, fan)
	}
	if failures > 0 {
		return fmt.Errorf("failed to restore %d fan(s)", failures)
	}
	fmt.Fprintf(c.App.Writer, "%s:All fans restored to automatic temperature-based control\n", s.ID)
	return nil
}

// fanCount returns the number of controllable fans, rejecting devices without any.
func fanCount(s controller.Selected) (int, error) {
	c, err := controller.New(s.ID, s.Device, nil)
	if err != nil {
		return 0, err
	}
	return c.FanCount(), nil
}

func newPowerCommand() *cli.Command {
	return &cli.Command{
		Name:  "power",
		Usage: "show power usage or set the power limit",
		Flags: commonFlags(),
		Action: deviceCommand(func(c *cli.Context, _ *spec.Config, s controller.Selected) error {
			usage, err := s.Device.GetPowerUsage()
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%s:%.2f\n", s.ID, display.Watts(usage))
			return nil
		}),
		Subcommands: []*cli.Command{
			{
				Name:      "set",
				Usage:     "set the power limit",
				ArgsUsage: "WATTS",
				Flags:     commonFlags(),
				Action:    setPowerLimit,
			},
		},
	}
}

func setPowerLimit(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("'set' requires a value")
	}
	watts, err := strconv.ParseUint(c.Args().First(), 10, 32)
	if err != nil {
		return fmt.Errorf("invalid power limit %q", c.Args().First())
	}
	limit := watts * 1000

	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	return forEachDevice(c, config, func(s controller.Selected) error {
		minLimit, maxLimit, err := s.Device.GetPowerLimitConstraints()
		if err != nil {
			return fmt.Errorf("cannot get power limit constraints: %w", err)
		}
		if limit < uint64(minLimit) || limit > uint64(maxLimit) {
			return fmt.Errorf("power limit %dW outside valid range (%.2f-%.2fW)", watts, display.Watts(minLimit), display.Watts(maxLimit))
		}
		if err := s.Device.SetPowerLimit(uint32(limit)); err != nil {
			return fmt.Errorf("failed to set power limit: %w", err)
		}
		fmt.Fprintf(c.App.Writer, "%s:Power limit set to %dW\n", s.ID, watts)
		return nil
	})
}

func newInfoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "show comprehensive device information",
		ArgsUsage: "[json]",
		Flags: commonFlags(
			&cli.BoolFlag{
				Name:  "json",
				Usage: "output the report as JSON",
			},
		),
		Action: func(c *cli.Context) error {
			asJSON := c.Bool("json") || c.Args().First() == "json"
			config, err := loadConfig(c)
			if err != nil {
				return err
			}
			unit := temperatureUnit(config)

			var reports []*display.DeviceInfo
			err = forEachDevice(c, config, func(s controller.Selected) error {
				report, err := collectInfo(s, unit)
				if err != nil {
					return err
				}
				if asJSON {
					reports = append(reports, report)
					return nil
				}
				display.WriteInfo(c.App.Writer, report)
				return nil
			})
			if asJSON {
				if jsonErr := display.WriteInfoJSON(c.App.Writer, reports); jsonErr != nil {
					return jsonErr
				}
			}
			return err
		},
	}
}

func collectInfo(s controller.Selected, unit display.Unit) (*display.DeviceInfo, error) {
	id, err := strconv.Atoi(s.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid device id %q", s.ID)
	}
	report := &display.DeviceInfo{
		ID:              id,
		TemperatureUnit: unit.String(),
	}

	if name, err := s.Device.GetName(); err == nil {
		report.Name = name
	} else {
		report.SetMissing(display.FieldName)
	}
	if uuid, err := s.Device.GetUUID(); err == nil {
		report.UUID = uuid
	} else {
		report.SetMissing(display.FieldUUID)
	}
	if temp, err := s.Device.GetTemperature(); err == nil {
		report.Temperature = unit.Convert(temp)
	} else {
		report.SetMissing(display.FieldTemperature)
	}
	if memory, err := s.Device.GetMemoryInfo(); err == nil {
		report.MemoryTotalMB = display.MebiBytes(memory.Total)
		report.MemoryUsedMB = display.MebiBytes(memory.Used)
		report.MemoryFreeMB = display.MebiBytes(memory.Free)
	} else {
		report.SetMissing(display.FieldMemory)
	}
	if speed, err := s.Device.GetFanSpeed(); err == nil {
		report.FanSpeedPercent = speed
	} else {
		report.SetMissing(display.FieldFanSpeed)
	}
	usage, usageErr := s.Device.GetPowerUsage()
	limit, limitErr := s.Device.GetPowerLimit()
	if usageErr == nil && limitErr == nil {
		report.PowerUsageWatts = display.Watts(usage)
		report.PowerLimitWatts = display.Watts(limit)
	} else {
		report.SetMissing(display.FieldPower)
	}

	return report, nil
}
