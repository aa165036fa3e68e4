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

package fanctl

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"

	"github.com/NVIDIA/gpu-fan-controller/internal/controller"
	"github.com/NVIDIA/gpu-fan-controller/internal/display"
	"github.com/NVIDIA/gpu-fan-controller/internal/sensor"
	"github.com/NVIDIA/gpu-fan-controller/internal/setpoint"
	"github.com/NVIDIA/gpu-fan-controller/internal/telemetry"
)

type recorder struct {
	frames   int
	statuses []display.Status
}

func (r *recorder) BeginFrame() {
	r.frames++
}

func (r *recorder) Status(s display.Status) {
	r.statuses = append(r.statuses, s)
}

func newTable(t *testing.T) *setpoint.Table {
	table, err := setpoint.Parse([]string{"50:30", "70:60", "80:100"})
	require.NoError(t, err)
	return table
}

func newDevice(fans int, temp uint32) *telemetry.DeviceMock {
	return &telemetry.DeviceMock{
		GetNumFansFunc:     func() (int, error) { return fans, nil },
		GetTemperatureFunc: func() (uint32, error) { return temp, nil },
	}
}

func newController(t *testing.T, id string, device *telemetry.DeviceMock, s sensor.Sensor) Controller {
	if s == nil {
		s = sensor.NewCore(id, device)
	}
	c, err := controller.New(id, device, s)
	require.NoError(t, err)
	return c
}

// cancelAfter lets the loop sleep through ticks-1 intervals and cancels the
// session when it goes to sleep for the last time.
func cancelAfter(t *testing.T, s *Session, ticks int) *[]time.Duration {
	var sleeps []time.Duration
	original := afterFn
	t.Cleanup(func() { afterFn = original })

	afterFn = func(d time.Duration) <-chan time.Time {
		sleeps = append(sleeps, d)
		if len(sleeps) >= ticks {
			s.Cancel()
			return make(chan time.Time)
		}
		c := make(chan time.Time, 1)
		c <- time.Time{}
		return c
	}
	return &sleeps
}

func TestRunCancelDuringSleep(t *testing.T) {
	devices := []*telemetry.DeviceMock{newDevice(2, 60), newDevice(1, 75)}
	controllers := []Controller{
		newController(t, "0", devices[0], nil),
		newController(t, "2", devices[1], nil),
	}
	r := &recorder{}
	s := NewSession(controllers, newTable(t), WithPrinter(r))
	sleeps := cancelAfter(t, s, 2)

	require.Equal(t, Idle, s.State())
	require.NoError(t, s.Run(context.Background()))
	require.Equal(t, Terminated, s.State())

	require.Equal(t, []time.Duration{DefaultInterval, DefaultInterval}, *sleeps)
	require.Equal(t, 2, r.frames)
	require.Equal(t, []display.Status{
		{ID: "0", Celsius: 60, Duty: 45},
		{ID: "2", Celsius: 75, Duty: 80},
		{ID: "0", Celsius: 60, Duty: 45},
		{ID: "2", Celsius: 75, Duty: 80},
	}, r.statuses)

	require.Len(t, devices[0].SetFanSpeedCalls(), 4)
	require.Len(t, devices[1].SetFanSpeedCalls(), 2)
	require.Len(t, devices[0].SetFanPolicyAutomaticCalls(), 2)
	require.Len(t, devices[1].SetFanPolicyAutomaticCalls(), 1)
}

func TestRunCancelIsIdempotent(t *testing.T) {
	device := newDevice(1, 60)
	s := NewSession([]Controller{newController(t, "0", device, nil)}, newTable(t))
	s.Cancel()
	s.Cancel()

	require.NoError(t, s.Run(context.Background()))
	require.Empty(t, device.SetFanSpeedCalls())
	require.Len(t, device.SetFanPolicyAutomaticCalls(), 1)

	require.ErrorIs(t, s.Run(context.Background()), ErrAlreadyStarted)
	require.Len(t, device.SetFanPolicyAutomaticCalls(), 1)
}

func TestRunContextCancelled(t *testing.T) {
	device := newDevice(1, 60)
	s := NewSession([]Controller{newController(t, "0", device, nil)}, newTable(t), WithInterval(5*time.Second))

	original := afterFn
	t.Cleanup(func() { afterFn = original })
	ctx, cancel := context.WithCancel(context.Background())
	var sleeps []time.Duration
	afterFn = func(d time.Duration) <-chan time.Time {
		sleeps = append(sleeps, d)
		cancel()
		return make(chan time.Time)
	}

	require.NoError(t, s.Run(ctx))
	require.Equal(t, []time.Duration{5 * time.Second}, sleeps)
	require.Len(t, device.SetFanPolicyAutomaticCalls(), 1)
}

func TestRunActuationFailure(t *testing.T) {
	devices := []*telemetry.DeviceMock{newDevice(1, 60), newDevice(2, 65), newDevice(1, 70)}
	devices[1].SetFanSpeedFunc = func(fan int, percent uint32) error {
		if fan == 1 {
			return errors.New("insufficient permissions")
		}
		return nil
	}
	controllers := []Controller{
		newController(t, "0", devices[0], nil),
		newController(t, "1", devices[1], nil),
		newController(t, "2", devices[2], nil),
	}
	r := &recorder{}
	s := NewSession(controllers, newTable(t), WithPrinter(r))
	cancelAfter(t, s, 10)

	err := s.Run(context.Background())
	var actuationErr *controller.ActuationError
	require.ErrorAs(t, err, &actuationErr)
	require.Equal(t, "1", actuationErr.ID)
	require.Equal(t, 1, actuationErr.Failures)

	require.Equal(t, []display.Status{{ID: "0", Celsius: 60, Duty: 45}}, r.statuses)
	require.Empty(t, devices[2].SetFanSpeedCalls())
	require.Len(t, devices[0].SetFanPolicyAutomaticCalls(), 1)
	require.Len(t, devices[1].SetFanPolicyAutomaticCalls(), 2)
	require.Len(t, devices[2].SetFanPolicyAutomaticCalls(), 1)
}

func TestRunSensorFailure(t *testing.T) {
	devices := []*telemetry.DeviceMock{newDevice(1, 60), newDevice(1, 60)}
	devices[1].GetTemperatureFunc = func() (uint32, error) {
		return 0, errors.New("gpu has fallen off the bus")
	}
	controllers := []Controller{
		newController(t, "0", devices[0], nil),
		newController(t, "1", devices[1], nil),
	}
	s := NewSession(controllers, newTable(t))
	cancelAfter(t, s, 10)

	err := s.Run(context.Background())
	var sensorErr *sensor.Error
	require.ErrorAs(t, err, &sensorErr)
	require.Equal(t, "1", sensorErr.ID)
	require.Equal(t, Terminated, s.State())

	require.Empty(t, devices[1].SetFanSpeedCalls())
	require.Len(t, devices[0].SetFanPolicyAutomaticCalls(), 1)
	require.Len(t, devices[1].SetFanPolicyAutomaticCalls(), 1)
}

func TestRunVRAMFallbackForOneTick(t *testing.T) {
	device := newDevice(1, 62)
	tick := 0
	vram := &sensor.SensorMock{
		ReadFunc: func() (sensor.Reading, error) {
			tick++
			if tick == 2 {
				return sensor.Reading{}, errors.New("permission denied")
			}
			return sensor.Reading{Celsius: 80, Origin: sensor.OriginVRAM}, nil
		},
	}
	r := &recorder{}
	s := NewSession(
		[]Controller{newController(t, "0", device, sensor.NewFallback("0", vram, sensor.NewCore("0", device)))},
		newTable(t),
		WithPrinter(r),
	)
	cancelAfter(t, s, 3)

	require.NoError(t, s.Run(context.Background()))
	require.Equal(t, []display.Status{
		{ID: "0", Celsius: 80, Marker: "V", Duty: 100},
		{ID: "0", Celsius: 62, Duty: 48},
		{ID: "0", Celsius: 80, Marker: "V", Duty: 100},
	}, r.statuses)
	require.Len(t, device.GetTemperatureCalls(), 1)
}

func TestRunVRAMAndCoreFailure(t *testing.T) {
	device := newDevice(1, 0)
	device.GetTemperatureFunc = func() (uint32, error) { return 0, errors.New("unknown error") }
	vram := &sensor.SensorMock{
		ReadFunc: func() (sensor.Reading, error) { return sensor.Reading{}, errors.New("permission denied") },
	}
	s := NewSession(
		[]Controller{newController(t, "0", device, sensor.NewFallback("0", vram, sensor.NewCore("0", device)))},
		newTable(t),
	)
	cancelAfter(t, s, 10)

	err := s.Run(context.Background())
	require.ErrorContains(t, err, "permission denied")
	require.ErrorContains(t, err, "unknown error")
	require.Len(t, device.SetFanPolicyAutomaticCalls(), 1)
}

func TestStateString(t *testing.T) {
	require.Equal(t, "Draining", Draining.String())
	require.Equal(t, "State(7)", State(7).String())
}

func TestRunReportsRestoreAtDefaultVerbosity(t *testing.T) {
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	require.NoError(t, klogFlags.Set("v", "0"))
	require.NoError(t, klogFlags.Set("logtostderr", "false"))
	require.NoError(t, klogFlags.Set("alsologtostderr", "false"))

	var buf bytes.Buffer
	klog.SetOutput(&buf)
	t.Cleanup(func() {
		klog.SetOutput(os.Stderr)
		_ = klogFlags.Set("logtostderr", "true")
	})

	devices := []*telemetry.DeviceMock{newDevice(1, 60), newDevice(1, 60)}
	s := NewSession([]Controller{
		newController(t, "0", devices[0], nil),
		newController(t, "1", devices[1], nil),
	}, newTable(t))
	cancelAfter(t, s, 1)

	require.NoError(t, s.Run(context.Background()))
	klog.Flush()
	require.Contains(t, buf.String(), "Restored automatic fan control for 2 device(s)")
}
