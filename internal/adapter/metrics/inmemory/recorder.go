package inmemory

import "sync"

type Snapshot struct {
	SnapshotsServed     uint64            `json:"snapshots_served"`
	ActionTotal         uint64            `json:"action_total"`
	ActionDispatched    uint64            `json:"action_dispatched"`
	ActionDropped       uint64            `json:"action_dropped"`
	ActionRejected      uint64            `json:"action_rejected"`
	DispatchedByCommand map[string]uint64 `json:"dispatched_by_command"`
}

type Recorder struct {
	mu         sync.Mutex
	snapshots  uint64
	dispatched uint64
	dropped    uint64
	rejected   uint64
	byCommand  map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byCommand: map[string]uint64{},
	}
}

func (r *Recorder) RecordSnapshot() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots++
}

func (r *Recorder) RecordActionDispatched(command string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dispatched++
	r.byCommand[command]++
}

func (r *Recorder) RecordActionDropped() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dropped++
}

func (r *Recorder) RecordActionRejected() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		SnapshotsServed:     r.snapshots,
		ActionDispatched:    r.dispatched,
		ActionDropped:       r.dropped,
		ActionRejected:      r.rejected,
		ActionTotal:         r.dispatched + r.dropped + r.rejected,
		DispatchedByCommand: make(map[string]uint64, len(r.byCommand)),
	}
	for k, v := range r.byCommand {
		out.DispatchedByCommand[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
