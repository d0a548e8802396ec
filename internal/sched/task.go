package sched

import "github.com/pkg/errors"

// TaskID uniquely identifies a task within a run.
type TaskID int

// Task represents one schedulable unit of simulated work (a cloudlet).
type Task struct {
	ID         TaskID
	Length     int64 // instruction count, always positive
	PEs        int   // parallelism units, carried through but not used by the cost model
	FileSize   int64 // input size
	OutputSize int64 // output size
}

// NewTask creates a new task.
// NOTE: only the length takes part in scheduling; the remaining fields are informational.
func NewTask(id TaskID, length int64, pes int, fileSize, outputSize int64) (Task, error) {
	if length <= 0 {
		return Task{}, errors.Errorf("task %d: length must be positive, got %d", id, length)
	}
	if pes < 0 {
		return Task{}, errors.Errorf("task %d: pes must not be negative, got %d", id, pes)
	}
	return Task{
		ID:         id,
		Length:     length,
		PEs:        pes,
		FileSize:   fileSize,
		OutputSize: outputSize,
	}, nil
}
