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
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	cli "github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	spec "github.com/NVIDIA/gpu-fan-controller/api/config/v1"
	"github.com/NVIDIA/gpu-fan-controller/internal/controller"
	"github.com/NVIDIA/gpu-fan-controller/internal/display"
	"github.com/NVIDIA/gpu-fan-controller/internal/fanctl"
	"github.com/NVIDIA/gpu-fan-controller/internal/flags"
	"github.com/NVIDIA/gpu-fan-controller/internal/info"
	"github.com/NVIDIA/gpu-fan-controller/internal/sensor"
	"github.com/NVIDIA/gpu-fan-controller/internal/setpoint"
	"github.com/NVIDIA/gpu-fan-controller/internal/watch"
)

var errSetupFailed = errors.New("one or more devices could not be set up")

var newSignals = func() chan os.Signal {
	return watch.Signals(syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
}

func newFanControlCommand() *cli.Command {
	return &cli.Command{
		Name:      "fanctl",
		Usage:     "control fan speeds from temperature setpoints until interrupted",
		ArgsUsage: "TEMP:DUTY [TEMP:DUTY...]",
		Flags: commonFlags(append(registerFlags(),
			&cli.StringFlag{
				Name:    spec.FlagSensor,
				Aliases: []string{"s"},
				Value:   spec.DefaultSensor,
				Usage:   "the temperature that drives the fans:\n\t\t[core | vram]",
				EnvVars: []string{"GFC_SENSOR"},
			},
			&cli.DurationFlag{
				Name:    spec.FlagInterval,
				Aliases: []string{"i"},
				Value:   spec.DefaultInterval,
				Usage:   "the time between two control steps",
				EnvVars: []string{"GFC_INTERVAL"},
			},
		)...),
		Action: runFanControl,
	}
}

func runFanControl(c *cli.Context) error {
	defer func() {
		klog.Info("Exiting")
	}()
	klog.V(1).Info(info.GetBanner())

	klog.V(1).Info("Starting OS watcher.")
	sigs := newSignals()
	defer signal.Stop(sigs)

	var events chan fsnotify.Event
	var watchErrors chan error
	configFile := c.String(spec.FlagConfigFile)
	if configFile != "" {
		var err error
		configFile, err = filepath.Abs(configFile)
		if err != nil {
			return fmt.Errorf("failed to resolve config file path: %v", err)
		}
		klog.V(1).Info("Starting FS watcher.")
		// The directory is watched so that files replaced by a rename are still seen.
		watcher, err := watch.Files(filepath.Dir(configFile))
		if err != nil {
			return fmt.Errorf("failed to create FS watcher: %v", err)
		}
		defer watcher.Close()
		events = watcher.Events
		watchErrors = watcher.Errors
	}

	for {
		restart, err := runSession(c, sigs, configFile, events, watchErrors)
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

// runSession controls the devices with the current config until a signal or
// config change arrives, or a device fails. It reports whether the caller
// should start a new session with a fresh config.
func runSession(c *cli.Context, sigs chan os.Signal, configFile string, events chan fsnotify.Event, watchErrors chan error) (bool, error) {
	klog.V(1).Info("Loading configuration.")
	config, err := loadConfig(c)
	if err != nil {
		return false, fmt.Errorf("unable to load config: %v", err)
	}

	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return false, fmt.Errorf("failed to marshal config to JSON: %v", err)
	}
	klog.V(1).Infof("\nRunning with config:\n%v", string(configJSON))

	table, err := setpoint.Parse(config.Setpoints)
	if err != nil {
		return false, err
	}
	kind, err := sensor.ParseKind(*config.Flags.Sensor)
	if err != nil {
		return false, err
	}

	manager := newManager()
	if err := manager.Init(); err != nil {
		return false, err
	}
	defer func() {
		if err := manager.Shutdown(); err != nil {
			klog.Warningf("%v", err)
		}
	}()

	devices, err := manager.GetDevices()
	if err != nil {
		return false, err
	}
	if len(devices) == 0 {
		return false, errNoDevices
	}

	selected, selectErrs, err := flags.NewDeviceSelector(config).Select(devices)
	if err != nil {
		return false, err
	}
	controllers, setupErrs := controller.Prepare(selected, kind, newResolver(), newRegisterReader(config))

	setupFailed := false
	for _, err := range append(selectErrs, setupErrs...) {
		fmt.Fprintf(c.App.ErrWriter, "Error: %v\n", err)
		setupFailed = true
	}
	if len(controllers) == 0 {
		return false, fmt.Errorf("no controllable devices: %w", errSetupFailed)
	}

	printer := display.NewPrinter(c.App.Writer, temperatureUnit(config))
	printer.Banner(len(controllers), kind.Title(), table.String())

	session := fanctl.NewSession(
		fanctl.FromDeviceControllers(controllers),
		table,
		fanctl.WithInterval(time.Duration(*config.Flags.Interval)),
		fanctl.WithPrinter(printer),
	)

	done := make(chan error, 1)
	go func() {
		done <- session.Run(c.Context)
	}()

	restart := false
events:
	for {
		select {
		case err := <-done:
			return false, err

		// Watch for changes to the config file. On any change, restart the
		// session with the new config.
		case event := <-events:
			if event.Name == configFile && watch.IsModified(event) {
				klog.Infof("inotify: %s changed, restarting.", configFile)
				restart = true
				break events
			}

		case err := <-watchErrors:
			klog.Warningf("inotify: %s", err)

		// Watch for any signals from the OS. On SIGHUP, restart the session
		// with a reloaded config. On all other signals, stop.
		case s := <-sigs:
			switch s {
			case syscall.SIGHUP:
				klog.Info("Received SIGHUP, restarting.")
				restart = true
			default:
				klog.Infof("Received signal %v, shutting down.", s)
			}
			break events
		}
	}

	session.Cancel()
	if err := <-done; err != nil {
		return false, err
	}
	if !restart && setupFailed {
		return false, errSetupFailed
	}
	return restart, nil
}
