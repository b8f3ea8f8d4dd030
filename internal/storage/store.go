package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/beadsim/internal/trace"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
	fixedColumns = 6
)

var ErrMalformedFrames = errors.New("storage: malformed frames file")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string      `json:"id"`
	Algorithm string      `json:"algorithm"`
	Timestamp time.Time   `json:"timestamp"`
	Input     []int       `json:"input"`
	Output    []int       `json:"output"`
	Stats     trace.Stats `json:"stats"`
}

func newRunID(algorithm string) string {
	return fmt.Sprintf("%s_%s", algorithm, uuid.NewString()[:8])
}

func (s *Store) Save(tr *trace.Trace) (string, error) {
	runID := newRunID(tr.Algorithm)
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Algorithm: tr.Algorithm,
		Timestamp: time.Now(),
		Input:     tr.Input,
		Output:    tr.Output,
		Stats:     tr.Stats,
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, framesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, len(tr.Input), tr.Frames); err != nil {
		return "", err
	}
	return runID, nil
}

// WriteCSV writes frames with a header of step, phase, the four highlight
// slots and n value columns.
func WriteCSV(out io.Writer, n int, frames []trace.Frame) error {
	w := csv.NewWriter(out)

	header := []string{"step", "phase", "a", "b", "c", "d"}
	for i := 0; i < n; i++ {
		header = append(header, fmt.Sprintf("v%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, fr := range frames {
		row := []string{
			strconv.Itoa(fr.Step),
			fr.Phase,
			strconv.Itoa(fr.A),
			strconv.Itoa(fr.B),
			strconv.Itoa(fr.C),
			strconv.Itoa(fr.D),
		}
		for _, v := range fr.Values {
			row = append(row, strconv.Itoa(v))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadFrames(runID string) ([]trace.Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []trace.Frame{}, nil
	}

	frames := make([]trace.Frame, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		fr, err := parseFrame(records[i])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		frames = append(frames, fr)
	}

	return frames, nil
}

func parseFrame(record []string) (trace.Frame, error) {
	if len(record) < fixedColumns {
		return trace.Frame{}, ErrMalformedFrames
	}

	ints := make([]int, 0, len(record)-1)
	for j, field := range record {
		if j == 1 {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return trace.Frame{}, fmt.Errorf("%w: %v", ErrMalformedFrames, err)
		}
		ints = append(ints, v)
	}

	return trace.Frame{
		Step:   ints[0],
		Phase:  record[1],
		A:      ints[1],
		B:      ints[2],
		C:      ints[3],
		D:      ints[4],
		Values: ints[5:],
	}, nil
}
