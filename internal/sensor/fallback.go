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

package sensor

import (
	"errors"

	"k8s.io/klog/v2"
)

type withFallBack struct {
	id       string
	primary  Sensor
	fallback Sensor
}

// NewFallback returns a Sensor that reads the primary sensor and uses the
// fallback for any sample the primary cannot provide.
func NewFallback(id string, primary Sensor, fallback Sensor) Sensor {
	return &withFallBack{
		id:       id,
		primary:  primary,
		fallback: fallback,
	}
}

func (s *withFallBack) Read() (Reading, error) {
	reading, err := s.primary.Read()
	if err == nil {
		return reading, nil
	}
	klog.Warningf("Device %s: %v; using fallback sensor", s.id, err)

	reading, fallbackErr := s.fallback.Read()
	if fallbackErr != nil {
		return Reading{}, errors.Join(err, fallbackErr)
	}
	return reading, nil
}
