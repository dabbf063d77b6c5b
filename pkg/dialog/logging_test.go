package dialog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NahejL/electron/pkg/host"
	"github.com/NahejL/electron/pkg/logging"
	"github.com/NahejL/electron/pkg/toolkit"
	"github.com/NahejL/electron/pkg/toolkit/sim"
)

func TestFileDialog_DebugLogging(t *testing.T) {
	dir := t.TempDir()
	logger, err := logging.NewLogger(dir)
	require.NoError(t, err)
	logger.SetMinLevel(logging.LevelDebug)

	tk := sim.New()
	exports := host.NewObject()
	Initialize(exports, tk, logger)

	fd, err := exports.Get("FileDialog").Class().New(nil)
	require.NoError(t, err)

	window := host.WindowObject(host.NewWindow(0x1))
	_, err = fd.Invoke("selectFile", host.Args{
		host.ObjectValue(window),
		host.Int(int64(toolkit.SelectOpenFile)),
		host.String("Open"),
		host.String("/tmp"),
		host.Array(),
		host.Int(0),
		host.String(""),
		host.Int(61),
	})
	require.NoError(t, err)
	tk.Pump()
	require.NoError(t, logger.Close())

	logged, err := logging.ReadRecentEvents(filepath.Join(dir, "events.jsonl"), 10)
	require.NoError(t, err)
	require.Len(t, logged, 2, "one issue event and one completion event")

	assert.Equal(t, "select_file", logged[0].EventType)
	assert.Equal(t, "file_selection_canceled", logged[1].EventType)
	assert.Equal(t, logging.CategoryFileDialog, logged[0].Category)
	assert.NotEmpty(t, logged[0].RequestID)
	assert.Equal(t, logged[0].RequestID, logged[1].RequestID, "both events carry the request correlation id")
}
