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
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/NVIDIA/go-nvlib/pkg/nvpci"
	cli "github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	spec "github.com/NVIDIA/gpu-fan-controller/api/config/v1"
	"github.com/NVIDIA/gpu-fan-controller/internal/controller"
	"github.com/NVIDIA/gpu-fan-controller/internal/flags"
	"github.com/NVIDIA/gpu-fan-controller/internal/info"
	"github.com/NVIDIA/gpu-fan-controller/internal/logger"
	"github.com/NVIDIA/gpu-fan-controller/internal/pci"
	"github.com/NVIDIA/gpu-fan-controller/internal/telemetry"
)

const flagVerbosity = "verbosity"

var (
	newManager  = telemetry.NewNVMLManager
	newResolver = func() pci.Resolver { return pci.NewSysfsResolver(nvpci.WithLogger(logger.ToKlog)) }
)

var errNoDevices = errors.New("no NVIDIA GPUs found")

func main() {
	c := newApp()
	if err := c.Run(os.Args); err != nil {
		klog.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	c := cli.NewApp()
	c.Name = info.Name
	c.Usage = "control the fans of NVIDIA GPUs from their core or memory temperature"
	c.Version = info.GetVersionString()
	c.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    flagVerbosity,
			Value:   0,
			Usage:   "the klog log level",
			EnvVars: []string{"GFC_VERBOSITY"},
		},
	}
	c.Before = func(ctx *cli.Context) error {
		return setupLogging(ctx)
	}
	c.Commands = []*cli.Command{
		newFanControlCommand(),
		newListCommand(),
		newStatusCommand(),
		newTempCommand(),
		newVRAMTempCommand(),
		newFanCommand(),
		newPowerCommand(),
		newInfoCommand(),
	}
	return c
}

// commonFlags returns the flags shared by every command.
func commonFlags(more ...cli.Flag) []cli.Flag {
	common := []cli.Flag{
		&cli.StringFlag{
			Name:    spec.FlagTemperatureUnit,
			Aliases: []string{"t"},
			Value:   spec.DefaultTemperatureUnit,
			Usage:   "the unit used to show temperatures:\n\t\t[C | F | K]",
			EnvVars: []string{"GFC_TEMPERATURE_UNIT"},
		},
		&cli.StringFlag{
			Name:    spec.FlagConfigFile,
			Aliases: []string{"c"},
			Usage:   "the path to a config file as an alternative to command line options or environment variables",
			EnvVars: []string{"GFC_CONFIG_FILE", "CONFIG_FILE"},
		},
	}
	common = append(common, flags.DeviceFlags()...)
	return append(common, more...)
}

func setupLogging(c *cli.Context) error {
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	return klogFlags.Set("v", strconv.Itoa(c.Int(flagVerbosity)))
}

// loadConfig builds the config for the running command from its flags and arguments.
func loadConfig(c *cli.Context) (*spec.Config, error) {
	config, err := spec.NewConfig(c, c.Command.Flags)
	if err != nil {
		return nil, fmt.Errorf("unable to finalize config: %v", err)
	}
	err = config.Validate()
	if err != nil {
		return nil, fmt.Errorf("unable to validate flags: %v", err)
	}
	return config, nil
}

// forEachDevice runs fn for every selected device. A failure on one device
// does not stop the others; the command fails if any device failed.
func forEachDevice(c *cli.Context, config *spec.Config, fn func(controller.Selected) error) error {
	manager := newManager()
	if err := manager.Init(); err != nil {
		return err
	}
	defer func() {
		if err := manager.Shutdown(); err != nil {
			klog.Warningf("%v", err)
		}
	}()

	devices, err := manager.GetDevices()
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		return errNoDevices
	}

	selected, errs, err := flags.NewDeviceSelector(config).Select(devices)
	if err != nil {
		return err
	}
	failures := len(errs)
	for _, err := range errs {
		fmt.Fprintf(c.App.ErrWriter, "Error: %v\n", err)
	}

	for _, s := range selected {
		if err := fn(s); err != nil {
			fmt.Fprintf(c.App.ErrWriter, "%s:Error: %v\n", s.ID, err)
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d device operation(s) failed", failures)
	}
	return nil
}
