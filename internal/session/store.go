// Package session records the throttle commands of a play session to disk
// and replays them into a world.
package session

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

	"github.com/san-kum/lander/internal/throttle"
)

var (
	ErrNotFound  = errors.New("session: not found")
	ErrMalformed = errors.New("session: malformed event row")
)

const (
	metadataFile = "metadata.json"
	eventsFile   = "events.csv"
)

// Event is one recorded command at an offset from the session start.
type Event struct {
	Offset   time.Duration
	Throttle throttle.Throttle
	Pressed  bool
}

type Metadata struct {
	ID        string    `json:"id"`
	Host      string    `json:"host"`
	Policy    string    `json:"policy"`
	Started   time.Time `json:"started"`
	Duration  float64   `json:"duration_s"`
	NumEvents int       `json:"num_events"`
}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Save writes metadata.json and events.csv under a directory named by meta.ID.
func (s *Store) Save(meta Metadata, events []Event) error {
	if meta.ID == "" {
		return fmt.Errorf("session: empty id")
	}
	dir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	meta.NumEvents = len(events)
	if len(events) > 0 {
		meta.Duration = events[len(events)-1].Offset.Seconds()
	}

	metaFile, err := os.Create(filepath.Join(dir, metadataFile))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(dir, eventsFile))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"offset_ms", "throttle", "pressed"}); err != nil {
		return err
	}
	for _, e := range events {
		row := []string{
			strconv.FormatInt(e.Offset.Milliseconds(), 10),
			e.Throttle.String(),
			strconv.FormatBool(e.Pressed),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (s *Store) Load(id string) (*Metadata, error) {
	f, err := os.Open(filepath.Join(s.baseDir, id, metadataFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var meta Metadata
	if err := json.NewDecoder(f).Decode(&meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadEvents(id string) ([]Event, error) {
	f, err := os.Open(filepath.Join(s.baseDir, id, eventsFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readEvents(f)
}

func readEvents(r io.Reader) ([]Event, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	events := make([]Event, 0, len(records)-1)
	for i, rec := range records[1:] {
		ms, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, i+2, err)
		}
		t, err := throttle.Parse(rec[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, i+2, err)
		}
		pressed, err := strconv.ParseBool(rec[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, i+2, err)
		}
		events = append(events, Event{Offset: time.Duration(ms) * time.Millisecond, Throttle: t, Pressed: pressed})
	}
	return events, nil
}

// List returns the metadata of every stored session, oldest first.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []Metadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		out = append(out, *meta)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Started.Before(out[j].Started) })
	return out, nil
}
