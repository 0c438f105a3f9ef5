package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/measure-go/internal/infrastructure/config"
	"github.com/hapkiduki/measure-go/pkg/logger"
)

func testApp(t *testing.T) (*app, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, logs bytes.Buffer
	log, err := logger.New(logger.Config{Level: "info", Format: "json", Output: &logs})
	require.NoError(t, err)

	return &app{
		out:         &out,
		errOut:      &logs,
		cfg:         &config.Config{Output: config.OutputConfig{Pretty: false}},
		log:         log,
		operationID: "op-test",
	}, &out, &logs
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func TestRecoverer(t *testing.T) {
	a, out, logs := testApp(t)

	run := a.recoverer(func(cmd *cobra.Command, args []string) error {
		panic("negative volume")
	})
	err := run(newCommand(), nil)

	require.ErrorIs(t, err, errPanic)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "INTERNAL_ERROR", errorCodeOf(t, resp))
	assert.Contains(t, logs.String(), "panic recovered")
}

func TestLogged(t *testing.T) {
	a, _, logs := testApp(t)
	boom := errors.New("boom")

	run := a.logged(func(cmd *cobra.Command, args []string) error { return boom })
	require.ErrorIs(t, run(newCommand(), []string{"x"}), boom)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(logs.Bytes()), &entry))
	assert.Equal(t, "command finished", entry["msg"])
	assert.Equal(t, false, entry["success"])
	assert.EqualValues(t, 1, entry["args"])
}
