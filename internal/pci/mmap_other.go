//go:build !linux

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

package pci

import "fmt"

type unsupported struct {
	path string
}

// NewDevMemMapper returns a Mapper that always fails on this platform.
func NewDevMemMapper(path string) Mapper {
	return unsupported{path: path}
}

func (m unsupported) Map(offset int64, length int) (Region, error) {
	return nil, fmt.Errorf("mapping %s is only supported on linux", m.path)
}
