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

// TargetDuty maps a temperature in degrees Celsius onto the curve described by the table.
//
// Temperatures outside the table are clamped to the first or last duty. Inside the
// table the duty is linearly interpolated between the bracketing setpoints and
// rounded down to a whole percent.
func (t *Table) TargetDuty(tempC uint32) uint32 {
	first := t.setpoints[0]
	last := t.setpoints[len(t.setpoints)-1]

	if tempC <= first.Temperature {
		return first.Duty
	}
	if tempC >= last.Temperature {
		return last.Duty
	}

	for i := 0; i < len(t.setpoints)-1; i++ {
		lo, hi := t.setpoints[i], t.setpoints[i+1]
		if tempC < lo.Temperature || tempC > hi.Temperature {
			continue
		}
		// Only reachable for duplicate temperatures, which the clamps above exclude.
		if hi.Temperature == lo.Temperature {
			return hi.Duty
		}
		return interpolate(lo, hi, tempC)
	}

	return first.Duty
}

func interpolate(lo, hi Setpoint, tempC uint32) uint32 {
	span := int64(hi.Temperature) - int64(lo.Temperature)
	offset := int64(tempC) - int64(lo.Temperature)
	delta := int64(hi.Duty) - int64(lo.Duty)

	return uint32(int64(lo.Duty) + floorDiv(delta*offset, span))
}

// floorDiv divides rounding towards negative infinity; span is always positive.
func floorDiv(n, span int64) int64 {
	q := n / span
	if n%span != 0 && n < 0 {
		q--
	}
	return q
}
