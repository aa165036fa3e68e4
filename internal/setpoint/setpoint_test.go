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

func TestParse(t *testing.T) {
	testCases := []struct {
		description       string
		tokens            []string
		expectedError     error
		expectedReason    string
		expectedSetpoints []Setpoint
	}{
		{
			description:   "empty input",
			expectedError: ErrNoSetpoints,
		},
		{
			description:       "single setpoint",
			tokens:            []string{"60:40"},
			expectedSetpoints: []Setpoint{{60, 40}},
		},
		{
			description:       "sorted by temperature",
			tokens:            []string{"80:90", "50:30", "70:60"},
			expectedSetpoints: []Setpoint{{50, 30}, {70, 60}, {80, 90}},
		},
		{
			description:       "ties keep input order",
			tokens:            []string{"70:80", "50:30", "70:60"},
			expectedSetpoints: []Setpoint{{50, 30}, {70, 80}, {70, 60}},
		},
		{
			description:       "duty bounds are inclusive",
			tokens:            []string{"30:0", "90:100"},
			expectedSetpoints: []Setpoint{{30, 0}, {90, 100}},
		},
		{
			description:       "percent suffix is accepted",
			tokens:            []string{"45:35%"},
			expectedSetpoints: []Setpoint{{45, 35}},
		},
		{
			description:    "zero temperature is rejected",
			tokens:         []string{"0:30"},
			expectedReason: "temperature must be greater than 0",
		},
		{
			description:    "duty above 100 is rejected",
			tokens:         []string{"50:30", "80:101"},
			expectedReason: "duty must be between 0 and 100%",
		},
		{
			description:    "missing separator",
			tokens:         []string{"5030"},
			expectedReason: "expected <temp>:<duty>",
		},
		{
			description:    "negative temperature",
			tokens:         []string{"-5:30"},
			expectedReason: "temperature is not an unsigned integer",
		},
		{
			description:    "non numeric duty",
			tokens:         []string{"50:fast"},
			expectedReason: "duty is not an unsigned integer",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			table, err := Parse(tc.tokens)
			switch {
			case tc.expectedError != nil:
				require.ErrorIs(t, err, tc.expectedError)
				require.Nil(t, table)
			case tc.expectedReason != "":
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				require.Contains(t, verr.Reason, tc.expectedReason)
				require.Contains(t, err.Error(), "invalid setpoint")
				require.Nil(t, table)
			default:
				require.NoError(t, err)
				require.Equal(t, tc.expectedSetpoints, table.Setpoints())
				require.Equal(t, len(tc.expectedSetpoints), table.Len())
			}
		})
	}
}

func TestValidationErrorNamesToken(t *testing.T) {
	_, err := Parse([]string{"50:30", "80:150"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "80:150", verr.Token)
}

func TestTableIsImmutable(t *testing.T) {
	input := []Setpoint{{70, 60}, {50, 30}}
	table, err := New(input...)
	require.NoError(t, err)

	input[0].Duty = 5
	setpoints := table.Setpoints()
	setpoints[0].Duty = 99

	require.Equal(t, Setpoint{50, 30}, table.At(0))
	require.Equal(t, Setpoint{70, 60}, table.At(1))
}

func TestTableString(t *testing.T) {
	table, err := Parse([]string{"80:90", "50:30", "70:60"})
	require.NoError(t, err)
	require.Equal(t, "50:30% 70:60% 80:90%", table.String())
}
