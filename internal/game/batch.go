package game

import "image/color"

// --- Batch manager ---

// colorOverride is one pending explicit-colour write.
type colorOverride struct {
	tile *Tile
	c    color.RGBA
}

// BatchManager coalesces tile state and colour changes issued during one
// game-logic tick into a single pass per affected tile. Construct one per
// scene and hand it to whatever owns the per-frame update step; there is no
// process-wide instance.
//
// Recolouring "every tile in movement range" each frame costs one render
// write per tile per call; routing the writes through a batch collapses
// them to exactly one pass applied before the next frame renders.
type BatchManager struct {
	bucketOrder []TileState           // states in first-enqueue order
	buckets     map[TileState][]*Tile // pending tiles per state
	overrides   []colorOverride       // pending explicit colours, submission order
	scheduled   bool
}

// NewBatchManager creates an empty batch manager.
func NewBatchManager() *BatchManager {
	return &BatchManager{
		buckets: make(map[TileState][]*Tile),
	}
}

// ScheduleStateUpdate enqueues tile into the bucket for state. Duplicate
// enqueues are kept as-is; the last applied write wins at flush time.
func (b *BatchManager) ScheduleStateUpdate(t *Tile, s TileState) {
	if _, ok := b.buckets[s]; !ok {
		b.bucketOrder = append(b.bucketOrder, s)
	}
	b.buckets[s] = append(b.buckets[s], t)
	b.scheduled = true
}

// ScheduleStateUpdates enqueues every tile into the bucket for state.
func (b *BatchManager) ScheduleStateUpdates(tiles []*Tile, s TileState) {
	for _, t := range tiles {
		b.ScheduleStateUpdate(t, s)
	}
}

// ScheduleColorUpdate enqueues an explicit colour write for tile. Overrides
// are applied after every state bucket in the same flush.
func (b *BatchManager) ScheduleColorUpdate(t *Tile, c color.RGBA) {
	b.overrides = append(b.overrides, colorOverride{tile: t, c: c})
	b.scheduled = true
}

// Scheduled reports whether a flush is pending.
func (b *BatchManager) Scheduled() bool { return b.scheduled }

// PendingCount returns the number of queued updates: every enqueued state
// entry plus every colour override, duplicates counted per enqueue.
func (b *BatchManager) PendingCount() int {
	n := len(b.overrides)
	for _, tiles := range b.buckets {
		n += len(tiles)
	}
	return n
}

// Clear discards all pending updates without applying anything.
func (b *BatchManager) Clear() {
	b.bucketOrder = b.bucketOrder[:0]
	clear(b.buckets)
	b.overrides = b.overrides[:0]
	b.scheduled = false
}

// FlushPending runs a flush only if one is scheduled. The per-frame hook
// calls this before drawing so every queued change lands ahead of the next
// visible render.
func (b *BatchManager) FlushPending() {
	if b.scheduled {
		b.Flush()
	}
}

// Flush applies every pending update now, in two phases: state buckets in
// first-enqueue order (state change + hover-aware recolour), then colour
// overrides in submission order (raw colour write, state untouched). The
// phase split means a transient override always visually wins over bulk
// state recolouring queued in the same tick. Flushing an empty queue is a
// no-op. Both collections are cleared afterwards.
func (b *BatchManager) Flush() {
	for _, s := range b.bucketOrder {
		for _, t := range b.buckets[s] {
			t.applyState(s)
		}
	}
	for _, o := range b.overrides {
		o.tile.writeColor(o.c)
	}
	b.bucketOrder = b.bucketOrder[:0]
	clear(b.buckets)
	b.overrides = b.overrides[:0]
	b.scheduled = false
}
