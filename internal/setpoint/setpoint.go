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

package setpoint

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	// MaxDuty is the largest duty cycle (in percent) that a setpoint may request.
	MaxDuty = 100
)

// ErrNoSetpoints is returned when a table is built from an empty list of tokens.
var ErrNoSetpoints = errors.New("no setpoints")

// ValidationError is returned for a setpoint token that cannot be used to build a Table.
type ValidationError struct {
	Token  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid setpoint %q: %s", e.Token, e.Reason)
}

// Setpoint anchors the control curve: at Temperature degrees Celsius the fans run at Duty percent.
type Setpoint struct {
	Temperature uint32 `json:"temperature"`
	Duty        uint32 `json:"duty"`
}

// String returns the setpoint in the same form as it is accepted on the command line.
func (s Setpoint) String() string {
	return fmt.Sprintf("%d:%d%%", s.Temperature, s.Duty)
}

// Table is an immutable list of setpoints sorted by temperature.
type Table struct {
	setpoints []Setpoint
}

// Parse builds a Table from a list of "temp:duty" tokens.
// Tokens with equal temperatures keep the order in which they were given.
func Parse(tokens []string) (*Table, error) {
	var setpoints []Setpoint
	for _, token := range tokens {
		s, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		setpoints = append(setpoints, s)
	}
	return New(setpoints...)
}

// New builds a Table from already parsed setpoints, validating each of them.
func New(setpoints ...Setpoint) (*Table, error) {
	if len(setpoints) == 0 {
		return nil, ErrNoSetpoints
	}
	for _, s := range setpoints {
		if err := s.validate(); err != nil {
			return nil, err
		}
	}

	sorted := make([]Setpoint, len(setpoints))
	copy(sorted, setpoints)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Temperature < sorted[j].Temperature
	})

	return &Table{setpoints: sorted}, nil
}

func parseToken(token string) (Setpoint, error) {
	temp, duty, found := strings.Cut(strings.TrimSpace(token), ":")
	if !found {
		return Setpoint{}, &ValidationError{Token: token, Reason: "expected <temp>:<duty>"}
	}

	t, err := strconv.ParseUint(temp, 10, 32)
	if err != nil {
		return Setpoint{}, &ValidationError{Token: token, Reason: fmt.Sprintf("temperature is not an unsigned integer: %v", err)}
	}
	d, err := strconv.ParseUint(strings.TrimSuffix(duty, "%"), 10, 32)
	if err != nil {
		return Setpoint{}, &ValidationError{Token: token, Reason: fmt.Sprintf("duty is not an unsigned integer: %v", err)}
	}

	s := Setpoint{Temperature: uint32(t), Duty: uint32(d)}
	if err := s.validate(); err != nil {
		err.Token = token
		return Setpoint{}, err
	}
	return s, nil
}

func (s Setpoint) validate() *ValidationError {
	if s.Temperature == 0 {
		return &ValidationError{Token: s.String(), Reason: "temperature must be greater than 0"}
	}
	if s.Duty > MaxDuty {
		return &ValidationError{Token: s.String(), Reason: fmt.Sprintf("duty must be between 0 and %d%%", MaxDuty)}
	}
	return nil
}

// Len returns the number of setpoints in the table.
func (t *Table) Len() int {
	return len(t.setpoints)
}

// At returns the i'th setpoint in temperature order.
func (t *Table) At(i int) Setpoint {
	return t.setpoints[i]
}

// Setpoints returns a copy of the sorted setpoints.
func (t *Table) Setpoints() []Setpoint {
	setpoints := make([]Setpoint, len(t.setpoints))
	copy(setpoints, t.setpoints)
	return setpoints
}

func (t *Table) String() string {
	var parts []string
	for _, s := range t.setpoints {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, " ")
}
