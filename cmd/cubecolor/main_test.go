// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scramble3 = "DRDRUDRRBULLBRFBDLUULBFUFFRUUDDDFFFFLBBULLDBRBDFLBLURR"

func synth(t *testing.T, args ...string) []byte {
	t.Helper()
	var out, errb bytes.Buffer
	code := run(append([]string{"-q"}, args...), nil, &out, &errb)
	require.Zero(t, code, errb.String())

	return out.Bytes()
}

func TestRun_SynthThenResolve(t *testing.T) {
	scan := synth(t, "-synth", "3", "-moves", "R U F' L2 D B R' U2", "-noise", "2", "-seed", "9")

	var out, errb bytes.Buffer
	code := run([]string{"-q"}, bytes.NewReader(scan), &out, &errb)
	require.Zero(t, code, errb.String())
	assert.Equal(t, scramble3+"\n", out.String())
}

func TestRun_FileJSONAndDashboard(t *testing.T) {
	dir := t.TempDir()
	scanPath := filepath.Join(dir, "scan.json")
	require.NoError(t, os.WriteFile(scanPath, synth(t, "-synth", "2"), 0o644))
	cfgPath := filepath.Join(dir, "resolver.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"metric":"euclidean"}`), 0o644))
	htmlPath := filepath.Join(dir, "debug.html")

	var out, errb bytes.Buffer
	code := run([]string{"-config", cfgPath, "-json", "-html", htmlPath, scanPath}, nil, &out, &errb)
	require.Zero(t, code, errb.String())

	var dump struct {
		Kociemba string `json:"kociemba"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &dump))
	assert.Equal(t, "UUUURRRRFFFFDDDDLLLLBBBB", dump.Kociemba)
	assert.FileExists(t, htmlPath)
	assert.Contains(t, errb.String(), "cubecolor: ")
}

func TestRun_State(t *testing.T) {
	var out, errb bytes.Buffer
	assert.Zero(t, run([]string{"-state", scramble3}, nil, &out, &errb))
	assert.Equal(t, "ok\n", out.String())

	bad := []byte(scramble3)
	bad[1], bad[10] = bad[10], bad[1]
	out.Reset()
	assert.Equal(t, 1, run([]string{"-state", string(bad)}, nil, &out, &errb))
	assert.Empty(t, out.String())
}

func TestRun_Errors(t *testing.T) {
	var out, errb bytes.Buffer

	assert.Equal(t, 2, run([]string{"-nope"}, nil, &out, &errb))
	assert.Equal(t, 1, run([]string{"-q"}, strings.NewReader(`{"1":[300,0,0]}`), &out, &errb))
	assert.Equal(t, 2, run([]string{"-q"}, strings.NewReader(`{"1":[1,2,3]}`), &out, &errb))
	assert.Equal(t, 1, run([]string{"-q", "-synth", "9"}, nil, &out, &errb))
	assert.Equal(t, 1, run([]string{"-q", "-config", "resolver.yaml"}, strings.NewReader(`{}`), &out, &errb))
	assert.Empty(t, out.String())
}
