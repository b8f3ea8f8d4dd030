package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/beadsim/internal/beads"
	"github.com/san-kum/beadsim/internal/trace"
)

func sampleTrace(t *testing.T, input ...int) *trace.Trace {
	t.Helper()
	tr, err := trace.Record(context.Background(), "bead", beads.Sort, input)
	require.NoError(t, err)
	return tr
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	tr := sampleTrace(t, 3, 1, 2)
	runID, err := st.Save(tr)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(runID, "bead_"), "run id %q", runID)
	assert.Len(t, runID, len("bead_")+8)

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, "bead", meta.Algorithm)
	assert.Equal(t, []int{3, 1, 2}, meta.Input)
	assert.Equal(t, []int{1, 2, 3}, meta.Output)
	assert.Equal(t, tr.Stats, meta.Stats)

	frames, err := st.LoadFrames(runID)
	require.NoError(t, err)
	assert.Equal(t, tr.Frames, frames)
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = st.Save(sampleTrace(t, 2, 1))
	require.NoError(t, err)
	_, err = st.Save(sampleTrace(t, 1))
	require.NoError(t, err)

	require.NoError(t, os.Mkdir(filepath.Join(st.baseDir, "garbage"), 0755))

	runs, err = st.List()
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	require.NoError(t, st.Init())

	runID, err := st.Save(sampleTrace(t, 1, 0))
	require.NoError(t, err)

	runDir := filepath.Join(tmpDir, runID)
	assert.FileExists(t, filepath.Join(runDir, "metadata.json"))
	assert.FileExists(t, filepath.Join(runDir, "frames.csv"))

	data, err := os.ReadFile(filepath.Join(runDir, "frames.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "step,phase,a,b,c,d,v0,v1", lines[0])
	assert.Equal(t, "0,place,-1,0,0,-1,1,0", lines[1])
}

func TestStoreEmptyTrace(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runID, err := st.Save(sampleTrace(t))
	require.NoError(t, err)

	frames, err := st.LoadFrames(runID)
	require.NoError(t, err)
	assert.Empty(t, frames)
}

func TestLoadFrames_Malformed(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "bad"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "bad", "frames.csv"),
		[]byte("step,phase,a,b,c,d\n0,place,x,0,0,-1\n"), 0644))

	_, err := st.LoadFrames("bad")
	assert.ErrorIs(t, err, ErrMalformedFrames)
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runID, err := st.Save(sampleTrace(t, 2, 1))
	require.NoError(t, err)
	meta, err := st.Load(runID)
	require.NoError(t, err)
	frames, err := st.LoadFrames(runID)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, meta, frames))

	var out ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, runID, out.ID)
	assert.Equal(t, []int{1, 2}, out.Output)
	assert.Len(t, out.Frames, beads.EventCount([]int{2, 1}))
}
