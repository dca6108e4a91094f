package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/chase/config"
)

// Output file names inside the output directory.
const (
	AliveFile     = "alive.csv"
	PositionsFile = "pos.json"
	ConfigFile    = "config.yaml"
	SummaryFile   = "summary.json"
)

// OutputManager writes the chase reports into one directory.
type OutputManager struct {
	dir string
}

// NewOutputManager creates the output directory if needed.
// An empty dir means the current directory.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &OutputManager{dir: dir}, nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	return om.dir
}

// Path returns the full path of a file inside the output directory.
func (om *OutputManager) Path(name string) string {
	return filepath.Join(om.dir, name)
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	return cfg.WriteYAML(om.Path(ConfigFile))
}

// WriteAlive writes alive.csv with a header row.
func (om *OutputManager) WriteAlive(records []AliveRecord) error {
	f, err := os.Create(om.Path(AliveFile))
	if err != nil {
		return fmt.Errorf("creating %s: %w", AliveFile, err)
	}
	defer f.Close()

	if err := gocsv.Marshal(records, f); err != nil {
		return fmt.Errorf("writing %s: %w", AliveFile, err)
	}
	return f.Close()
}

// WritePositions writes pos.json.
func (om *OutputManager) WritePositions(records []PositionsRecord) error {
	if records == nil {
		records = []PositionsRecord{}
	}
	return om.writeJSON(PositionsFile, records)
}

// WriteSummary writes summary.json.
func (om *OutputManager) WriteSummary(s Summary) error {
	return om.writeJSON(SummaryFile, s)
}

func (om *OutputManager) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}
	if err := os.WriteFile(om.Path(name), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// LoadPositions reads a pos.json file back.
func LoadPositions(path string) ([]PositionsRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read positions: %w", err)
	}

	var records []PositionsRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal positions: %w", err)
	}
	return records, nil
}

// LoadAlive reads an alive.csv file back.
func LoadAlive(path string) ([]AliveRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open alive: %w", err)
	}
	defer f.Close()

	var records []AliveRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("unmarshal alive: %w", err)
	}
	return records, nil
}
