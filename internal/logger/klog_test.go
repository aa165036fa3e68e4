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

package logger

import (
	"bytes"
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
)

func TestToKlogWarningf(t *testing.T) {
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	require.NoError(t, klogFlags.Set("logtostderr", "false"))
	require.NoError(t, klogFlags.Set("alsologtostderr", "false"))
	require.NoError(t, klogFlags.Set("skip_headers", "true"))

	var buf bytes.Buffer
	klog.SetOutput(&buf)
	defer func() {
		klog.SetOutput(os.Stderr)
		_ = klogFlags.Set("logtostderr", "true")
		_ = klogFlags.Set("skip_headers", "false")
	}()

	var warner interface {
		Warningf(string, ...interface{})
	} = ToKlog
	warner.Warningf("unable to get device name: %v", "no such file")
	klog.Flush()

	require.Contains(t, buf.String(), "unable to get device name: no such file")
	require.NotContains(t, buf.String(), "[")
}
