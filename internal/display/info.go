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
	"encoding/json"
	"fmt"
	"io"
)

const mebibyte = 1024 * 1024

// DeviceInfo is the report shown by the info command. Fields that could not
// be queried are left at their zero value.
type DeviceInfo struct {
	ID              int     `json:"device_id"`
	Name            string  `json:"name"`
	UUID            string  `json:"uuid"`
	Temperature     float64 `json:"temperature"`
	TemperatureUnit string  `json:"temperature_unit"`
	MemoryTotalMB   uint64  `json:"memory_total_mb"`
	MemoryUsedMB    uint64  `json:"memory_used_mb"`
	MemoryFreeMB    uint64  `json:"memory_free_mb"`
	FanSpeedPercent uint32  `json:"fan_speed_percent"`
	PowerUsageWatts float64 `json:"power_usage_watts"`
	PowerLimitWatts float64 `json:"power_limit_watts"`

	missing map[string]bool
}

// Fields of DeviceInfo that can be marked as missing.
const (
	FieldName        = "name"
	FieldUUID        = "uuid"
	FieldTemperature = "temperature"
	FieldMemory      = "memory"
	FieldFanSpeed    = "fan"
	FieldPower       = "power"
)

// SetMissing records that a field could not be queried.
func (d *DeviceInfo) SetMissing(field string) {
	if d.missing == nil {
		d.missing = make(map[string]bool)
	}
	d.missing[field] = true
}

// Has reports whether a field was queried successfully.
func (d *DeviceInfo) Has(field string) bool {
	return !d.missing[field]
}

// MebiBytes converts a byte count for reporting.
func MebiBytes(b uint64) uint64 {
	return b / mebibyte
}

// Watts converts milliwatts for reporting.
func Watts(milliwatts uint32) float64 {
	return float64(milliwatts) / 1000
}

// WriteInfo writes a human readable report for a device, omitting fields that
// could not be queried.
func WriteInfo(w io.Writer, d *DeviceInfo) {
	fmt.Fprintf(w, "=== Device %d", d.ID)
	if d.Has(FieldName) {
		fmt.Fprintf(w, ": %s", d.Name)
	}
	fmt.Fprintln(w, " ===")
	if d.Has(FieldUUID) {
		fmt.Fprintf(w, "UUID:        %s\n", d.UUID)
	}
	if d.Has(FieldTemperature) {
		fmt.Fprintf(w, "Temperature: %.1f%s\n", d.Temperature, d.TemperatureUnit)
	}
	if d.Has(FieldMemory) && d.MemoryTotalMB > 0 {
		fmt.Fprintf(w, "Memory:      %d MB / %d MB (%.1f%%)\n", d.MemoryUsedMB, d.MemoryTotalMB,
			float64(d.MemoryUsedMB)/float64(d.MemoryTotalMB)*100)
	}
	if d.Has(FieldFanSpeed) {
		fmt.Fprintf(w, "Fan Speed:   %d%%\n", d.FanSpeedPercent)
	}
	if d.Has(FieldPower) && d.PowerLimitWatts > 0 {
		fmt.Fprintf(w, "Power:       %.2fW / %.2fW (%.1f%%)\n", d.PowerUsageWatts, d.PowerLimitWatts,
			d.PowerUsageWatts/d.PowerLimitWatts*100)
	}
	fmt.Fprintln(w)
}

// WriteInfoJSON writes the reports as an indented JSON array.
func WriteInfoJSON(w io.Writer, devices []*DeviceInfo) error {
	if devices == nil {
		devices = []*DeviceInfo{}
	}
	output, err := json.MarshalIndent(devices, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal device info: %w", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}
