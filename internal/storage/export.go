package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/beadsim/internal/trace"
)

type ExportData struct {
	ID        string        `json:"id"`
	Algorithm string        `json:"algorithm"`
	Input     []int         `json:"input"`
	Output    []int         `json:"output"`
	Stats     trace.Stats   `json:"stats"`
	Frames    []trace.Frame `json:"frames"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, frames []trace.Frame) error {
	data := ExportData{
		ID:        meta.ID,
		Algorithm: meta.Algorithm,
		Input:     meta.Input,
		Output:    meta.Output,
		Stats:     meta.Stats,
		Frames:    frames,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
