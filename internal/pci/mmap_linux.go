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

import (
	"errors"
	"fmt"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

type devMem struct {
	path string
}

// NewDevMemMapper returns a Mapper that maps pages of a physical memory device
// such as /dev/mem. The device is opened for every mapping and closed again
// when the mapping is released.
func NewDevMemMapper(path string) Mapper {
	return &devMem{path: path}
}

func (m *devMem) Map(offset int64, length int) (Region, error) {
	fd, err := unix.Open(m.path, unix.O_RDONLY|unix.O_SYNC|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s (root required): %w", m.path, err)
	}

	data, err := unix.Mmap(fd, offset, length, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("failed to map %#x bytes at %#x from %s: %w", length, offset, m.path, err)
	}

	return &mmapRegion{fd: fd, data: data}, nil
}

type mmapRegion struct {
	fd   int
	data []byte
}

// ReadUint32 performs a single aligned 32 bit load, as required for MMIO.
func (r *mmapRegion) ReadUint32(offset int) (uint32, error) {
	if r.data == nil {
		return 0, fmt.Errorf("region is not mapped")
	}
	if offset < 0 || offset%4 != 0 || offset+4 > len(r.data) {
		return 0, fmt.Errorf("invalid register offset %#x in %#x byte window", offset, len(r.data))
	}
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(&r.data[offset]))), nil
}

func (r *mmapRegion) Close() error {
	if r.data == nil {
		return nil
	}
	err := unix.Munmap(r.data)
	r.data = nil
	return errors.Join(err, unix.Close(r.fd))
}
