package trace

import "github.com/LISSConsulting/LISSTech.Floater/internal/floating"

// cycleRange is the [start, end) byte range of one mount cycle in the file.
type cycleRange struct {
	start int64
	end   int64
}

// fileIndex keeps in-memory byte-offset bookmarks per completed mount cycle,
// updated by onAppend as each event is written.
type fileIndex struct {
	summaries []CycleSummary
	ranges    map[int]cycleRange
	pending   *pendingCycle // open cycle (nil if none)
	events    int
	positions int
	skips     int
}

type pendingCycle struct {
	startOffset int64
	summary     CycleSummary
}

func newFileIndex() *fileIndex {
	return &fileIndex{ranges: make(map[int]cycleRange)}
}

// onAppend updates the index after an event line has been appended.
// lineOffset is the offset of the line's first byte; lineLen includes the
// trailing newline.
func (idx *fileIndex) onAppend(e floating.Event, lineOffset, lineLen int64) {
	idx.events++
	switch e.Kind {
	case floating.EventPosition:
		idx.positions++
	case floating.EventSkip:
		idx.skips++
	}

	switch e.Kind {
	case floating.EventMount:
		idx.pending = &pendingCycle{
			startOffset: lineOffset,
			summary: CycleSummary{
				Number:    len(idx.summaries) + 1,
				Strategy:  e.Strategy,
				Direction: e.Direction,
				MountedAt: e.At,
			},
		}
	case floating.EventPosition:
		if idx.pending == nil || e.Position == nil {
			return
		}
		pos := *e.Position
		idx.pending.summary.Positions++
		idx.pending.summary.Direction = e.Direction
		idx.pending.summary.LastPosition = &pos
	case floating.EventSkip:
		if idx.pending != nil {
			idx.pending.summary.Skips++
		}
	case floating.EventUnmount:
		if idx.pending == nil {
			return
		}
		s := idx.pending.summary
		s.UnmountedAt = e.At
		idx.ranges[s.Number] = cycleRange{
			start: idx.pending.startOffset,
			end:   lineOffset + lineLen,
		}
		idx.summaries = append(idx.summaries, s)
		idx.pending = nil
	}
}
