// Package engine owns a monostatic RCS dataset and its analysis settings.
//
// An Engine is constructed once from a metadata record, loads the raw
// swept-response table eagerly, and is the single owner of both for its
// lifetime. The engine is a single-threaded object: settings are mutated
// through validated setters and only read once a computation begins.
package engine

import (
	"github.com/rcsview/rcsview/internal/logging"
	"github.com/rcsview/rcsview/internal/metadata"
	"github.com/rcsview/rcsview/internal/table"
)

// Engine binds a loaded dataset to its configuration state.
type Engine struct {
	logger   logging.Logger
	meta     *metadata.Record
	data     *table.Table
	settings Settings
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger routes the engine's diagnostics to logger.
func WithLogger(logger logging.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New constructs an engine from a metadata file. A missing metadata file or
// raw-table file is the only hard failure; everything downstream degrades
// gracefully.
func New(inputFile string, opts ...Option) (*Engine, error) {
	e := &Engine{
		logger:   logging.Default(),
		settings: DefaultSettings(),
	}
	for _, opt := range opts {
		opt(e)
	}

	meta, err := metadata.Load(inputFile)
	if err != nil {
		return nil, err
	}

	data, err := table.Load(meta.DataPath)
	if err != nil {
		return nil, err
	}

	e.meta = meta
	e.data = data
	return e, nil
}

// Name returns the dataset display name, the raw table's first declared
// column.
func (e *Engine) Name() string {
	return e.data.Name()
}

// Solution returns the solution label from the metadata record.
func (e *Engine) Solution() string {
	return e.meta.Solution
}

// FrequencyUnits returns the display label for frequencies. It is never used
// for unit conversion.
func (e *Engine) FrequencyUnits() string {
	return e.meta.FrequencyUnits
}

// ModelUnits returns the display label for model geometry.
func (e *Engine) ModelUnits() string {
	return e.meta.ModelUnits
}

// InputFile returns the metadata file path the engine was constructed from.
func (e *Engine) InputFile() string {
	return e.meta.InputFile
}

// Metadata returns the loaded metadata record. Read-only.
func (e *Engine) Metadata() *metadata.Record {
	return e.meta
}

// Data returns the loaded raw response table. Read-only.
func (e *Engine) Data() *table.Table {
	return e.data
}

// Frequencies returns the available frequency labels in the table's native
// order.
func (e *Engine) Frequencies() []string {
	return e.data.Frequencies()
}

// AvailableIncidentWaveTheta returns the theta values the table's angle axis
// exposes, or nil when the dataset carries no angle metadata.
func (e *Engine) AvailableIncidentWaveTheta() []string {
	return e.data.ThetaValues()
}

// AvailableIncidentWavePhi returns the phi values the table's angle axis
// exposes, or nil when the dataset carries no angle metadata.
func (e *Engine) AvailableIncidentWavePhi() []string {
	return e.data.PhiValues()
}
