package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/shapemix/internal/shape"
)

// ExportData is the full JSON dump of a sampled shape.
type ExportData struct {
	Params            shape.Params `json:"params"`
	FundamentalPeriod float64      `json:"fundamental_period"`
	StepDegrees       float64      `json:"step_degrees"`
	Centered          bool         `json:"centered"`
	Beta              []float64    `json:"beta"`
	Coprime           []bool       `json:"coprime"`
	Samples           int          `json:"samples"`
	shape.Trace
}

// NewExportData samples s and collects everything a renderer needs.
func NewExportData(s *shape.Shape, stepDegrees float64, center bool) ExportData {
	tr := s.Trace(stepDegrees, center)
	return ExportData{
		Params:            s.Params(),
		FundamentalPeriod: s.FundamentalPeriod(),
		StepDegrees:       stepDegrees,
		Centered:          center,
		Beta:              s.PredictedExponents(),
		Coprime:           s.Coprime(),
		Samples:           len(tr.Angles),
		Trace:             tr,
	}
}

func WriteJSON(w io.Writer, s *shape.Shape, stepDegrees float64, center bool) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(s, stepDegrees, center))
}

// WriteCSV writes one row per sample: theta, log_r, x, y.
func WriteCSV(w io.Writer, s *shape.Shape, stepDegrees float64, center bool) error {
	tr := s.Trace(stepDegrees, center)
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"theta", "log_r", "x", "y"}); err != nil {
		return err
	}
	for i, theta := range tr.Angles {
		row := []string{
			strconv.FormatFloat(theta, 'f', 6, 64),
			strconv.FormatFloat(tr.LogRadius[i], 'f', 6, 64),
			strconv.FormatFloat(tr.Points[i].X, 'f', 6, 64),
			strconv.FormatFloat(tr.Points[i].Y, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteParams writes the mode parameters of s as JSON.
func WriteParams(w io.Writer, s *shape.Shape) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s.Params())
}

// ReadParams decodes parameters written by WriteParams and rebuilds the
// shape.
func ReadParams(r io.Reader) (*shape.Shape, error) {
	var p shape.Params
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	return shape.FromParams(p)
}

// LoadParams reads a params file from disk.
func LoadParams(path string) (*shape.Shape, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadParams(file)
}

// SaveParams writes a params file to disk.
func SaveParams(path string, s *shape.Shape) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteParams(file, s); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
