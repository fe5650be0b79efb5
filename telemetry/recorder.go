package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"armviz/config"
)

// FrameRecord is one per-tick row of the frames.csv output: the solved
// end effector plus the currently animated frame, if any.
type FrameRecord struct {
	Tick          int64   `csv:"tick"`
	TimeSec       float64 `csv:"time_sec"`
	ActiveJoint   int     `csv:"active_joint"`
	Phase         string  `csv:"phase"`
	PhaseProgress float64 `csv:"phase_progress"`
	FrameX        float64 `csv:"frame_x"`
	FrameY        float64 `csv:"frame_y"`
	FrameAngle    float64 `csv:"frame_angle"`
	EffectorX     float64 `csv:"effector_x"`
	EffectorY     float64 `csv:"effector_y"`
	Reach         float64 `csv:"reach"`
}

// Recorder writes frame records as CSV, one row per tick, plus a snapshot
// of the active configuration. A nil Recorder is valid and records nothing.
type Recorder struct {
	dir           string
	framesFile    *os.File
	headerWritten bool
}

// NewRecorder creates a recorder writing into dir.
// Returns nil if dir is empty (recording disabled).
func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "frames.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}

	return &Recorder{dir: dir, framesFile: f}, nil
}

// WriteConfig saves the current configuration as YAML next to the CSV.
func (r *Recorder) WriteConfig(cfg *config.Config) error {
	if r == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(r.dir, "config.yaml"))
}

// WriteFrame appends one frame record to frames.csv.
func (r *Recorder) WriteFrame(rec FrameRecord) error {
	if r == nil {
		return nil
	}

	records := []FrameRecord{rec}

	if !r.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, r.framesFile); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
		r.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, r.framesFile); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (r *Recorder) Dir() string {
	if r == nil {
		return ""
	}
	return r.dir
}

// Close flushes and closes the output files.
func (r *Recorder) Close() error {
	if r == nil || r.framesFile == nil {
		return nil
	}
	return r.framesFile.Close()
}
