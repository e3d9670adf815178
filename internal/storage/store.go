package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/paperplane/internal/anim"
	"github.com/san-kum/paperplane/internal/flight"
)

const (
	metadataFile = "metadata.json"
	pathFile     = "path.csv"
)

// Store keeps flight records under baseDir, one directory per flight.
type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type FlightMetadata struct {
	ID        string       `json:"id"`
	Timestamp time.Time    `json:"timestamp"`
	Seed      int64        `json:"seed"`
	Plane     flight.Plane `json:"plane"`
	Base      float64      `json:"base"`
	Wind      float64      `json:"wind"`
	Noise     float64      `json:"noise"`
	Distance  float64      `json:"distance"`
	Frames    int          `json:"frames"`
}

// Save writes the flight's metadata and its animation path.
func (s *Store) Save(seed int64, res flight.FlightResult, path []anim.Frame) (string, error) {
	ts := s.now()
	runID := fmt.Sprintf("flight_%d", ts.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := FlightMetadata{
		ID:        runID,
		Timestamp: ts,
		Seed:      seed,
		Plane:     res.Plane,
		Base:      res.Base,
		Wind:      res.Wind,
		Noise:     res.Noise,
		Distance:  res.Distance,
		Frames:    len(path),
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

	csvFile, err := os.Create(filepath.Join(runDir, pathFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"frame", "x", "y"}); err != nil {
		return "", err
	}
	for _, f := range path {
		row := []string{
			strconv.Itoa(f.Index),
			strconv.FormatFloat(f.X, 'f', 6, 64),
			strconv.FormatFloat(f.Y, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns every readable record, oldest first.
func (s *Store) List() ([]FlightMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []FlightMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]FlightMetadata, 0)
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

func (s *Store) Load(runID string) (*FlightMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta FlightMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadPath reads back the frames saved with a flight. Malformed rows are
// skipped.
func (s *Store) LoadPath(runID string) ([]anim.Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, pathFile))
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
		return []anim.Frame{}, nil
	}

	frames := make([]anim.Frame, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 3 {
			continue
		}
		idx, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		x, errX := strconv.ParseFloat(record[1], 64)
		y, errY := strconv.ParseFloat(record[2], 64)
		if errX != nil || errY != nil {
			continue
		}
		frames = append(frames, anim.Frame{Index: idx, Point: anim.Point{X: x, Y: y}})
	}
	return frames, nil
}
