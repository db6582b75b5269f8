package benchmark

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sync"

	"resumatch/internal/errors"
)

// Table is the JSON document shape accepted from benchmark files and the
// remote benchmark service. Industry keys are matched case-insensitively.
type Table struct {
	Weights    map[string]Weights   `json:"weights"`
	References map[string]Reference `json:"references"`
}

// FileProvider serves benchmark tables loaded from a JSON file. Industries
// absent from the file fall back to the static tables, so a partial file is
// valid. Reload is safe to call concurrently with reads.
type FileProvider struct {
	mu     sync.RWMutex
	path   string
	table  Table
	static *Static
	logger *errors.Logger
}

// NewFileProvider loads the benchmark file at path. The initial load must
// succeed; later Reload failures keep the previous table.
func NewFileProvider(path string, logger *errors.Logger) (*FileProvider, error) {
	p := &FileProvider{
		path:   path,
		static: NewStatic(),
		logger: logger,
	}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Reload re-reads the benchmark file and swaps in the new table. On error the
// provider keeps serving the previously loaded table.
func (p *FileProvider) Reload() error {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Failed to read benchmark file: %s", p.path), err)
	}

	table, err := parseTable(data)
	if err != nil {
		return errors.NewValidationError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("Invalid benchmark file: %s", p.path), err)
	}

	p.mu.Lock()
	p.table = table
	p.mu.Unlock()

	if p.logger != nil {
		p.logger.Info("Benchmark file loaded",
			"path", p.path,
			"weight_industries", len(table.Weights),
			"reference_industries", len(table.References))
	}
	return nil
}

// Path returns the benchmark file path, for the file watcher.
func (p *FileProvider) Path() string {
	return p.path
}

func (p *FileProvider) Weights(industry string) Weights {
	p.mu.RLock()
	w, ok := p.table.Weights[normalize(industry)]
	p.mu.RUnlock()
	if ok {
		return w
	}
	return p.static.Weights(industry)
}

func (p *FileProvider) Reference(industry string) Reference {
	p.mu.RLock()
	r, ok := p.table.References[normalize(industry)]
	p.mu.RUnlock()
	if ok {
		return r
	}
	return p.static.Reference(industry)
}

func (p *FileProvider) Canonical(industry string) string {
	name := normalize(industry)
	p.mu.RLock()
	_, ok := p.table.Weights[name]
	p.mu.RUnlock()
	if ok {
		return name
	}
	return p.static.Canonical(industry)
}

// parseTable unmarshals and validates a benchmark table, normalizing all
// industry keys to lowercase.
func parseTable(data []byte) (Table, error) {
	var raw Table
	if err := json.Unmarshal(data, &raw); err != nil {
		return Table{}, err
	}

	table := Table{
		Weights:    make(map[string]Weights, len(raw.Weights)),
		References: make(map[string]Reference, len(raw.References)),
	}

	for industry, w := range raw.Weights {
		if err := validateWeights(w); err != nil {
			return Table{}, fmt.Errorf("industry %q: %w", industry, err)
		}
		table.Weights[normalize(industry)] = w
	}
	for industry, r := range raw.References {
		if err := validateReference(r); err != nil {
			return Table{}, fmt.Errorf("industry %q: %w", industry, err)
		}
		table.References[normalize(industry)] = r
	}

	return table, nil
}

func validateWeights(w Weights) error {
	for _, v := range []float64{w.Skills, w.Experience, w.Education, w.Format} {
		if v < 0 || v > 1 {
			return fmt.Errorf("weight %v out of range [0,1]", v)
		}
	}
	sum := w.Skills + w.Experience + w.Education + w.Format
	if math.Abs(sum-1.0) > 0.01 {
		return fmt.Errorf("weights sum to %v, want 1.0", sum)
	}
	return nil
}

func validateReference(r Reference) error {
	if r.Average < 0 || r.Average > 100 || r.Top < 0 || r.Top > 100 {
		return fmt.Errorf("reference scores must be within [0,100], got average=%v top=%v", r.Average, r.Top)
	}
	if r.Top < r.Average {
		return fmt.Errorf("top score %v below average %v", r.Top, r.Average)
	}
	return nil
}
