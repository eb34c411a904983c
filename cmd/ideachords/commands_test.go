package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Conceptual-Machines/ideachords-api/internal/ideachords"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args and returns stdout
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		seed, jsonOut, seedUsed = 0, false, false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestKeysCmd(t *testing.T) {
	out, err := runCLI(t, "keys")
	require.NoError(t, err)
	assert.Equal(t, "C G D A E B F# F Bb Eb Ab Db Gb", strings.Join(strings.Fields(out), " "))
}

func TestChordsCmd(t *testing.T) {
	out, err := runCLI(t, "chords", "eb")
	require.NoError(t, err)
	assert.Equal(t, "Eb: Fm (ii)  ·  Ab (IV)  ·  Cm (vi)  ·  Bb (V)\n", out)

	_, err = runCLI(t, "chords", "C#")
	assert.ErrorIs(t, err, ideachords.ErrUnknownKey)
}

func TestKeyCmd(t *testing.T) {
	out, err := runCLI(t, "key", "Gb", "--json")
	require.NoError(t, err)

	var result ideachords.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, ideachords.KeyGb, result.Key)
	assert.Len(t, result.Progression, 4)
}

func TestRandomCmd_Seeded(t *testing.T) {
	first, err := runCLI(t, "random", "--seed", "77")
	require.NoError(t, err)
	second, err := runCLI(t, "random", "--seed", "77")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, ": ")
	assert.Equal(t, 3, strings.Count(first, "·"))
}

func TestStartCmd(t *testing.T) {
	out, err := runCLI(t, "start", "fm")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Eb: Fm (ii)") || strings.HasPrefix(out, "Ab: Fm (vi)"), out)

	_, err = runCLI(t, "start", "Zx")
	assert.Error(t, err)
}

func TestMatchCmd(t *testing.T) {
	out, err := runCLI(t, "match", "Fm")
	require.NoError(t, err)
	assert.Equal(t, "ii  Eb\nvi  Ab\n", out)

	out, err = runCLI(t, "match", "Zx", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}
