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
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	testCases := []struct {
		input         string
		expected      Unit
		expectedError bool
	}{
		{input: "C", expected: Celsius},
		{input: "f", expected: Fahrenheit},
		{input: "K", expected: Kelvin},
		{input: "R", expectedError: true},
		{input: "CF", expectedError: true},
		{input: "", expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			u, err := ParseUnit(tc.input)
			if tc.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, u)
		})
	}
}

func TestConvert(t *testing.T) {
	require.Equal(t, 60.0, Celsius.Convert(60))
	require.Equal(t, 140.0, Fahrenheit.Convert(60))
	require.InDelta(t, 333.15, Kelvin.Convert(60), 1e-9)
}

func TestFormatStatus(t *testing.T) {
	testCases := []struct {
		description string
		unit        Unit
		status      Status
		expected    string
	}{
		{
			description: "core",
			unit:        Celsius,
			status:      Status{ID: "0", Celsius: 60, Duty: 45},
			expected:    "0:60.0C -> 45%",
		},
		{
			description: "vram",
			unit:        Celsius,
			status:      Status{ID: "1", Celsius: 84, Marker: "V", Duty: 90},
			expected:    "1:84.0CV -> 90%",
		},
		{
			description: "fahrenheit",
			unit:        Fahrenheit,
			status:      Status{ID: "0", Celsius: 61, Duty: 47},
			expected:    "0:141.8F -> 47%",
		},
		{
			description: "kelvin",
			unit:        Kelvin,
			status:      Status{ID: "2", Celsius: 50, Duty: 30},
			expected:    "2:323.1K -> 30%",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			require.Equal(t, tc.expected, FormatStatus(tc.unit, tc.status))
		})
	}
}

func TestPrinter(t *testing.T) {
	frames := func(p *Printer) {
		p.Banner(2, "Core", "50:30% 80:100%")
		for i := 0; i < 2; i++ {
			p.BeginFrame()
			p.Status(Status{ID: "0", Celsius: 60, Duty: 53})
			p.Status(Status{ID: "1", Celsius: 70, Duty: 76})
		}
	}

	t.Run("not a terminal", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, Celsius)
		frames(p)
		require.Equal(t,
			"Starting dynamic fan control for 2 device(s) using Core temperature (Ctrl-C to exit)\n"+
				"Setpoints: 50:30% 80:100%\n"+
				"0:60.0C -> 53%\n1:70.0C -> 76%\n"+
				"0:60.0C -> 53%\n1:70.0C -> 76%\n",
			buf.String())
	})

	t.Run("in place", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, Celsius, WithInPlace(true))
		frames(p)
		require.Equal(t,
			"Starting dynamic fan control for 2 device(s) using Core temperature (Ctrl-C to exit)\n"+
				"Setpoints: 50:30% 80:100%\n\n"+
				"0:60.0C -> 53%\n1:70.0C -> 76%\n"+
				"\x1b[1A\x1b[2K\x1b[1A\x1b[2K"+
				"0:60.0C -> 53%\n1:70.0C -> 76%\n",
			buf.String())
	})
}

func TestWriteInfo(t *testing.T) {
	d := &DeviceInfo{
		ID:              0,
		Name:            "NVIDIA GeForce RTX 3090",
		UUID:            "GPU-1234",
		Temperature:     60,
		TemperatureUnit: "C",
		MemoryTotalMB:   24576,
		MemoryUsedMB:    6144,
		MemoryFreeMB:    18432,
		FanSpeedPercent: 45,
		PowerUsageWatts: 175,
		PowerLimitWatts: 350,
	}

	var buf bytes.Buffer
	WriteInfo(&buf, d)
	require.Equal(t,
		"=== Device 0: NVIDIA GeForce RTX 3090 ===\n"+
			"UUID:        GPU-1234\n"+
			"Temperature: 60.0C\n"+
			"Memory:      6144 MB / 24576 MB (25.0%)\n"+
			"Fan Speed:   45%\n"+
			"Power:       175.00W / 350.00W (50.0%)\n\n",
		buf.String())

	d.SetMissing(FieldFanSpeed)
	d.SetMissing(FieldName)
	buf.Reset()
	WriteInfo(&buf, d)
	require.NotContains(t, buf.String(), "Fan Speed")
	require.Contains(t, buf.String(), "=== Device 0 ===\n")
}

func TestWriteInfoJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteInfoJSON(&buf, []*DeviceInfo{{ID: 1, Name: "GPU", FanSpeedPercent: 30, PowerUsageWatts: 100.5}}))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, float64(1), decoded[0]["device_id"])
	require.Equal(t, "GPU", decoded[0]["name"])
	require.Equal(t, 100.5, decoded[0]["power_usage_watts"])

	buf.Reset()
	require.NoError(t, WriteInfoJSON(&buf, nil))
	require.Equal(t, "[]\n", buf.String())
}

func TestUnitConversionHelpers(t *testing.T) {
	require.Equal(t, uint64(24576), MebiBytes(24576*1024*1024))
	require.Equal(t, 175.5, Watts(175500))
}
