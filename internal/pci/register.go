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
	"os"

	"k8s.io/klog/v2"
)

const (
	// DefaultMemoryDevice is the character device exposing physical memory.
	DefaultMemoryDevice = "/dev/mem"
	// VRAMTemperatureRegister is the offset of the GDDR6 temperature register in BAR0.
	VRAMTemperatureRegister uint64 = 0x0000E2A8

	vramTemperatureMask    = 0x00000fff
	vramTemperatureDivisor = 0x20
	vramTemperatureLimit   = 0x7f
)

// ErrImplausibleReading is returned for a decoded VRAM temperature that cannot be real.
var ErrImplausibleReading = errors.New("implausible VRAM temperature")

// ReadError is returned for any failure while reading a register.
type ReadError struct {
	Address Address
	Err     error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read register of %s: %v", e.Address, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Mapper maps a window of physical memory for reading.
//
//go:generate moq -rm -fmt=goimports -stub -out mapper_mock.go . Mapper Region
type Mapper interface {
	Map(offset int64, length int) (Region, error)
}

// Region is a mapped window of physical memory. Close releases the mapping
// together with anything that was opened to create it.
type Region interface {
	ReadUint32(offset int) (uint32, error)
	Close() error
}

// Reader reads registers from the BAR0 window of a PCI device.
type Reader struct {
	mapper         Mapper
	vramRegister   uint64
	pageSize       int
	memoryDevice   string
	mapperExplicit bool
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithMapper sets the Mapper used to access physical memory.
func WithMapper(m Mapper) ReaderOption {
	return func(r *Reader) {
		r.mapper = m
		r.mapperExplicit = true
	}
}

// WithMemoryDevice sets the path of the physical memory device.
func WithMemoryDevice(path string) ReaderOption {
	return func(r *Reader) {
		r.memoryDevice = path
	}
}

// WithVRAMRegister overrides the offset of the VRAM temperature register.
func WithVRAMRegister(offset uint64) ReaderOption {
	return func(r *Reader) {
		r.vramRegister = offset
	}
}

// WithPageSize overrides the size of the mapped window. Sizes that are not a
// power of two are ignored.
func WithPageSize(size int) ReaderOption {
	return func(r *Reader) {
		r.pageSize = size
	}
}

// NewReader creates a Reader. By default it maps pages of /dev/mem.
func NewReader(opts ...ReaderOption) *Reader {
	r := &Reader{}
	for _, opt := range opts {
		opt(r)
	}
	if r.memoryDevice == "" {
		r.memoryDevice = DefaultMemoryDevice
	}
	if r.vramRegister == 0 {
		r.vramRegister = VRAMTemperatureRegister
	}
	if r.pageSize <= 0 || r.pageSize&(r.pageSize-1) != 0 {
		r.pageSize = os.Getpagesize()
	}
	if !r.mapperExplicit {
		r.mapper = NewDevMemMapper(r.memoryDevice)
	}
	return r
}

// ReadRegister reads the 32 bit register at the given offset from BAR0. Only
// the page containing the register is mapped, and it is unmapped before
// returning.
func (r *Reader) ReadRegister(addr *BusAddress, offset uint64) (uint32, error) {
	register := addr.BAR0 + offset
	base := register &^ uint64(r.pageSize-1)

	region, err := r.mapper.Map(int64(base), r.pageSize)
	if err != nil {
		return 0, &ReadError{Address: addr.Address, Err: err}
	}
	defer func() {
		if err := region.Close(); err != nil {
			klog.Warningf("Failed to release register mapping of %s: %v", addr.Address, err)
		}
	}()

	value, err := region.ReadUint32(int(register - base))
	if err != nil {
		return 0, &ReadError{Address: addr.Address, Err: err}
	}
	return value, nil
}

// ReadVRAMTemperature returns the VRAM temperature of the device in degrees Celsius.
func (r *Reader) ReadVRAMTemperature(addr *BusAddress) (uint32, error) {
	raw, err := r.ReadRegister(addr, r.vramRegister)
	if err != nil {
		return 0, err
	}
	temp, err := DecodeVRAMTemperature(raw)
	if err != nil {
		return 0, &ReadError{Address: addr.Address, Err: err}
	}
	return temp, nil
}

// DecodeVRAMTemperature converts a raw register value to degrees Celsius.
// The temperature is held in the low 12 bits in units of 1/32 degree.
func DecodeVRAMTemperature(raw uint32) (uint32, error) {
	temp := (raw & vramTemperatureMask) / vramTemperatureDivisor
	if temp >= vramTemperatureLimit {
		return temp, fmt.Errorf("%w: %d", ErrImplausibleReading, temp)
	}
	return temp, nil
}
