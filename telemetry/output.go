package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/lixenwraith/island/config"
	"github.com/lixenwraith/island/engine"
)

// OutputManager writes sampled frame statistics to frames.csv in dir
// A nil manager is valid and discards everything
type OutputManager struct {
	dir         string
	framesFile  *os.File
	headerDone  bool
	interval    int
	heights     []float64
	impacts     int
	resizes     int
	sinceSample int
}

// NewOutputManager creates the output directory and frames.csv
// Returns nil if dir is empty (output disabled)
func NewOutputManager(cfg config.TelemetryConfig) (*OutputManager, error) {
	if cfg.Dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(cfg.Dir, "frames.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}

	return &OutputManager{
		dir:        cfg.Dir,
		framesFile: f,
		interval:   cfg.Interval,
	}, nil
}

// WriteConfig saves the effective configuration as YAML next to the samples
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// Observe accumulates a step report and writes a sample every interval frames
func (om *OutputManager) Observe(w *engine.World, report engine.StepReport) error {
	if om == nil {
		return nil
	}

	om.impacts += len(report.Impacts)
	if report.Resized {
		om.resizes++
	}
	om.sinceSample++
	if om.sinceSample < om.interval {
		return nil
	}

	var stats FrameStats
	stats, om.heights = Collect(w, om.heights)
	stats.Impacts = om.impacts
	stats.Resizes = om.resizes
	om.impacts, om.resizes, om.sinceSample = 0, 0, 0

	return om.WriteFrame(stats)
}

// WriteFrame appends one record to frames.csv
func (om *OutputManager) WriteFrame(stats FrameStats) error {
	if om == nil {
		return nil
	}

	records := []FrameStats{stats}

	if !om.headerDone {
		// First write includes headers
		if err := gocsv.Marshal(records, om.framesFile); err != nil {
			return fmt.Errorf("writing frames: %w", err)
		}
		om.headerDone = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.framesFile); err != nil {
			return fmt.Errorf("writing frames: %w", err)
		}
	}
	return nil
}

// Close closes frames.csv
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return om.framesFile.Close()
}
