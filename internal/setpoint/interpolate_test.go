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
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, tokens ...string) *Table {
	t.Helper()
	table, err := Parse(tokens)
	require.NoError(t, err)
	return table
}

func TestTargetDuty(t *testing.T) {
	table := mustParse(t, "50:30", "70:60", "80:90")

	testCases := []struct {
		temp         uint32
		expectedDuty uint32
	}{
		{temp: 0, expectedDuty: 30},
		{temp: 20, expectedDuty: 30},
		{temp: 50, expectedDuty: 30},
		{temp: 51, expectedDuty: 31},
		{temp: 55, expectedDuty: 37},
		{temp: 60, expectedDuty: 45},
		{temp: 70, expectedDuty: 60},
		{temp: 75, expectedDuty: 75},
		{temp: 79, expectedDuty: 87},
		{temp: 80, expectedDuty: 90},
		{temp: 110, expectedDuty: 90},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expectedDuty, table.TargetDuty(tc.temp), "temperature %d", tc.temp)
	}
}

func TestTargetDutySingleSetpoint(t *testing.T) {
	table := mustParse(t, "60:40")
	for _, temp := range []uint32{0, 59, 60, 61, 200} {
		require.Equal(t, uint32(40), table.TargetDuty(temp))
	}
}

func TestTargetDutyClamps(t *testing.T) {
	table := mustParse(t, "40:20", "65:55", "85:100")

	for temp := uint32(0); temp <= 40; temp++ {
		require.Equal(t, uint32(20), table.TargetDuty(temp))
	}
	for temp := uint32(85); temp <= 150; temp++ {
		require.Equal(t, uint32(100), table.TargetDuty(temp))
	}
}

func TestTargetDutyMonotonic(t *testing.T) {
	table := mustParse(t, "35:0", "45:10", "60:33", "61:34", "75:80", "90:100")

	previous := table.TargetDuty(0)
	for temp := uint32(1); temp <= 120; temp++ {
		duty := table.TargetDuty(temp)
		require.GreaterOrEqual(t, duty, previous, "temperature %d", temp)
		require.Equal(t, duty, table.TargetDuty(temp), "not deterministic at %d", temp)
		previous = duty
	}
}

func TestTargetDutyDuplicateTemperatures(t *testing.T) {
	table := mustParse(t, "50:30", "60:40", "60:80", "70:90")

	require.Equal(t, uint32(35), table.TargetDuty(55))
	require.Equal(t, uint32(40), table.TargetDuty(60))
	require.Equal(t, uint32(85), table.TargetDuty(65))
}

func TestTargetDutyDecreasingCurveRoundsDown(t *testing.T) {
	table := mustParse(t, "50:60", "80:31")

	require.Equal(t, uint32(60), table.TargetDuty(50))
	// 60 - 29*1/30 = 59.03
	require.Equal(t, uint32(59), table.TargetDuty(51))
	// 60 - 29*7/30 = 53.23
	require.Equal(t, uint32(53), table.TargetDuty(57))
	require.Equal(t, uint32(31), table.TargetDuty(80))
}
