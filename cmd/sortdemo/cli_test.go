// Copyright 2025 go-sortlab Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sortlab/sorts"
)

// execute runs sortdemo with args and returns what it printed to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sortdemo.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunDefault(t *testing.T) {
	out, err := execute(t, "run", "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+len(sorts.Names()))
	assert.Equal(t, "Original array: [64 34 25 12 22 11 90]", lines[0])
	assert.Equal(t, "Bubble Sort: [11 12 22 25 34 64 90]", lines[1])
	for _, line := range lines[1:] {
		assert.True(t, strings.HasSuffix(line, "Sort: [11 12 22 25 34 64 90]"), line)
	}
	assert.Contains(t, out, "Shell Sort: [11 12 22 25 34 64 90]")
}

func TestRunValues(t *testing.T) {
	out, err := execute(t, "run", "--log-level", "error", "--algo", "radix", "--", "3", "-1", "2")
	require.NoError(t, err)
	assert.Equal(t, "Original array: [3 -1 2]\nRadix Sort: [-1 2 3]\n", out)
}

func TestRunBuckets(t *testing.T) {
	out, err := execute(t, "run", "--log-level", "error", "--algo", "bucket", "--buckets", "2", "--", "7", "1", "9", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Bucket Sort: [1 3 7 9]")
}

func TestRunWideRange(t *testing.T) {
	out, err := execute(t, "run", "--log-level", "error", "--", "0", "100000000", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+len(sorts.Names()))
	assert.Contains(t, out, "Counting Sort: [0 5 100000000]")
	for _, line := range lines[1:] {
		assert.True(t, strings.HasSuffix(line, "Sort: [0 5 100000000]"), line)
	}
}

func TestRunErrors(t *testing.T) {
	_, err := execute(t, "run", "--log-level", "error", "--algo", "bogo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sorts.ErrUnknownAlgorithm), err)

	_, err = execute(t, "run", "--log-level", "error", "--buckets", "0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sorts.ErrInvalidBucketCount), err)

	_, err = execute(t, "run", "--log-level", "error", "--", "1", "two")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value 2")

	_, err = execute(t, "run", "--log-level", "loud")
	require.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list", "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+len(sorts.Names()))
	assert.Equal(t, []string{"NAME", "STABLE", "IN-PLACE"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"merge", "yes", "no"}, strings.Fields(lines[4]))
	assert.Equal(t, []string{"quick", "no", "yes"}, strings.Fields(lines[5]))
}

func TestVerify(t *testing.T) {
	out, err := execute(t, "verify", "--log-level", "error", "--trials", "20", "--max-len", "32", "--seed", "7")
	require.NoError(t, err)
	for _, name := range sorts.Names() {
		assert.Contains(t, out, "PASS  "+name)
	}
	assert.NotContains(t, out, "FAIL")
	assert.Contains(t, out, "checks on")
}

func TestVerifyInvalidConfig(t *testing.T) {
	_, err := execute(t, "verify", "--log-level", "error", "--trials", "-1")
	require.Error(t, err)
}

func TestBench(t *testing.T) {
	out, err := execute(t, "bench", "--log-level", "error", "--algo", "merge", "--algo", "radix", "--sizes", "100,1000")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "host: "), out)
	assert.Contains(t, out, "ALGORITHM")
	assert.Contains(t, out, "1,000")
	assert.Equal(t, 4, strings.Count(out, "merge")+strings.Count(out, "radix"))
}

func TestBenchSkipsQuadraticSorts(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "error"

[bench]
sizes = [50]
max_quadratic = 10
`)
	out, err := execute(t, "bench", "--config", path, "--algo", "bubble", "--algo", "heap")
	require.NoError(t, err)
	assert.NotContains(t, out, "bubble")
	assert.Contains(t, out, "heap")
}

func TestConfigFile(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "error"

[run]
algorithms = ["Quick", "counting"]
sequences = [[3, 1, 2], [-5, 5, 0]]
`)
	out, err := execute(t, "run", "--config", path)
	require.NoError(t, err)
	assert.Equal(t,
		"Original array: [3 1 2]\nQuick Sort: [1 2 3]\nCounting Sort: [1 2 3]\n\n"+
			"Original array: [-5 5 0]\nQuick Sort: [-5 0 5]\nCounting Sort: [-5 0 5]\n",
		out)
}

func TestConfigFileErrors(t *testing.T) {
	for name, body := range map[string]string{
		"unknown_key":       "[run]\nbukets = 3\n",
		"invalid_buckets":   "[run]\nbuckets = 0\n",
		"unknown_algorithm": "[run]\nalgorithms = [\"bogo\"]\n",
		"verify_range":      "[verify]\nmin_value = 10\nmax_value = -10\n",
		"negative_size":     "[bench]\nsizes = [-1]\n",
		"syntax":            "[run\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			require.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, sorts.DefaultBuckets, cfg.Run.Buckets)
	assert.Equal(t, [][]int{demoSequence}, cfg.Run.Sequences)
	require.NoError(t, cfg.validate())
}

func TestLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "sortdemo.log")
	path := writeConfig(t, `
[log]
level = "debug"
format = "json"
filename = "`+filepath.ToSlash(logPath)+`"
`)
	_, err := execute(t, "run", "--config", path, "--algo", "shell")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"running"`)
	assert.Contains(t, string(data), `"command":"run"`)
}

func TestErrorsAreLogged(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"run_algorithm", []string{"run", "--algo", "bogo"}, "invalid algorithm selection"},
		{"run_values", []string{"run", "--", "1", "two"}, "invalid values"},
		{"verify_algorithm", []string{"verify", "--algo", "bogo"}, "invalid algorithm selection"},
		{"bench_algorithm", []string{"bench", "--algo", "bogo", "--sizes", "10"}, "invalid algorithm selection"},
		{"bench_sizes", []string{"bench", "--sizes=-1"}, "invalid bench sizes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logPath := filepath.Join(t.TempDir(), "sortdemo.log")
			path := writeConfig(t, `
[log]
level = "error"
format = "json"
filename = "`+filepath.ToSlash(logPath)+`"
`)
			_, err := execute(t, append([]string{"--config", path}, tt.args...)...)
			require.Error(t, err)

			data, err := os.ReadFile(logPath)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"level":"error"`)
			assert.Contains(t, string(data), `"msg":"`+tt.msg+`"`)
		})
	}
}
