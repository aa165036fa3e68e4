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

package display

import (
	"fmt"
	"strings"
)

// Unit is a temperature unit used for output.
type Unit byte

// Supported temperature units.
const (
	Celsius    Unit = 'C'
	Fahrenheit Unit = 'F'
	Kelvin     Unit = 'K'
)

// ParseUnit converts a unit letter to a Unit.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "C":
		return Celsius, nil
	case "F":
		return Fahrenheit, nil
	case "K":
		return Kelvin, nil
	}
	return 0, fmt.Errorf("unknown temperature unit %q: expected C, F or K", s)
}

// Convert converts a temperature in degrees Celsius to the unit.
func (u Unit) Convert(celsius uint32) float64 {
	c := float64(celsius)
	switch u {
	case Fahrenheit:
		return c*9/5 + 32
	case Kelvin:
		return c + 273.15
	}
	return c
}

func (u Unit) String() string {
	return string(rune(u))
}
