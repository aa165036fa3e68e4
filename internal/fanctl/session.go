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
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"k8s.io/klog/v2"

	"github.com/NVIDIA/gpu-fan-controller/internal/controller"
	"github.com/NVIDIA/gpu-fan-controller/internal/display"
	"github.com/NVIDIA/gpu-fan-controller/internal/sensor"
	"github.com/NVIDIA/gpu-fan-controller/internal/setpoint"
)

// DefaultInterval is the time between two control steps.
const DefaultInterval = 2 * time.Second

var afterFn = time.After

// ErrAlreadyStarted is returned when Run is called more than once on a session.
var ErrAlreadyStarted = errors.New("session already started")

// State is the lifecycle state of a Session.
type State int32

// Session states. A session only moves forward through these.
const (
	Idle State = iota
	Running
	Draining
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Draining:
		return "Draining"
	case Terminated:
		return "Terminated"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// Controller is a device under control.
type Controller interface {
	ID() string
	Sense() (sensor.Reading, error)
	Apply(duty uint32) int
	Restore()
}

// Printer receives the status of every control step.
type Printer interface {
	BeginFrame()
	Status(display.Status)
}

// Session runs the control loop over a fixed set of devices.
type Session struct {
	controllers []Controller
	table       *setpoint.Table
	printer     Printer
	interval    time.Duration

	state      atomic.Int32
	cancelled  atomic.Bool
	wake       chan struct{}
	cancelOnce sync.Once
}

// Option configures a Session.
type Option func(*Session)

// WithInterval sets the time between control steps.
func WithInterval(interval time.Duration) Option {
	return func(s *Session) {
		s.interval = interval
	}
}

// WithPrinter sets where status lines are written.
func WithPrinter(p Printer) Option {
	return func(s *Session) {
		s.printer = p
	}
}

// NewSession creates a session for the given controllers.
func NewSession(controllers []Controller, table *setpoint.Table, opts ...Option) *Session {
	s := &Session{
		controllers: controllers,
		table:       table,
		wake:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.interval <= 0 {
		s.interval = DefaultInterval
	}
	if s.printer == nil {
		s.printer = nullPrinter{}
	}
	return s
}

// FromDeviceControllers converts prepared device controllers for use in a Session.
func FromDeviceControllers(in []*controller.DeviceController) []Controller {
	var out []Controller
	for _, c := range in {
		out = append(out, c)
	}
	return out
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Cancel asks the session to stop. The loop notices before the next device
// and wakes up from any sleep in progress. Cancel may be called from any
// goroutine and any number of times.
func (s *Session) Cancel() {
	s.cancelled.Store(true)
	s.cancelOnce.Do(func() {
		close(s.wake)
	})
}

// Run executes control steps until the session is cancelled, ctx is done or a
// device fails. Every device is handed back to automatic fan control before
// Run returns. A nil error means the session was stopped on request.
func (s *Session) Run(ctx context.Context) error {
	if !s.state.CompareAndSwap(int32(Idle), int32(Running)) {
		return ErrAlreadyStarted
	}
	defer s.drain()

	for {
		s.printer.BeginFrame()
		for _, c := range s.controllers {
			if s.stopping(ctx) {
				return nil
			}
			if err := s.step(c); err != nil {
				return err
			}
		}

		select {
		case <-afterFn(s.interval):
		case <-s.wake:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *Session) stopping(ctx context.Context) bool {
	return s.cancelled.Load() || ctx.Err() != nil
}

func (s *Session) step(c Controller) error {
	reading, err := c.Sense()
	if err != nil {
		return err
	}

	duty := s.table.TargetDuty(reading.Celsius)
	if failures := c.Apply(duty); failures > 0 {
		return &controller.ActuationError{ID: c.ID(), Failures: failures}
	}

	s.printer.Status(display.Status{
		ID:      c.ID(),
		Celsius: reading.Celsius,
		Marker:  reading.Origin.Marker(),
		Duty:    duty,
	})
	return nil
}

func (s *Session) drain() {
	s.state.Store(int32(Draining))
	for _, c := range s.controllers {
		c.Restore()
	}
	klog.Infof("Restored automatic fan control for %d device(s)", len(s.controllers))
	s.state.Store(int32(Terminated))
}

type nullPrinter struct{}

func (nullPrinter) BeginFrame()           {}
func (nullPrinter) Status(display.Status) {}
