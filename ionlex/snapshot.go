package ionlex

// State is an opaque snapshot of a Tokenizer's scanning position, taken and
// restored around an ambiguous construct the caller needs to backtrack out
// of (e.g. probing whether a '::' introduces an annotation before committing
// to a full value parse). It holds only plain values and fixed-size arrays,
// so copying a Tokenizer's relevant fields in and back out is sufficient;
// there is no separate save/restore bookkeeping to get wrong.
type State struct {
	bufPos int

	cur    rune
	curLen int
	pos    int

	line            int
	offset          int
	lineOffsets     [lineOffsetCapacity]int
	lineOffsetCount int

	pending      [pushbackCapacity]charEntry
	pendingCount int
	history      [pushbackCapacity]charEntry
	historyCount int

	queue tokenQueue
}

// GetSavedCopy captures the tokenizer's current scanning position.
func (tkn *Tokenizer) GetSavedCopy() State {
	return State{
		bufPos:          tkn.bufPos,
		cur:             tkn.cur,
		curLen:          tkn.curLen,
		pos:             tkn.pos,
		line:            tkn.line,
		offset:          tkn.offset,
		lineOffsets:     tkn.lineOffsets,
		lineOffsetCount: tkn.lineOffsetCount,
		pending:         tkn.pending,
		pendingCount:    tkn.pendingCount,
		history:         tkn.history,
		historyCount:    tkn.historyCount,
		queue:           tkn.queue,
	}
}

// RestoreState rewinds the tokenizer to a previously saved position. Any
// queued lookahead tokens produced after the snapshot was taken are
// discarded along with it, since State includes the token queue.
func (tkn *Tokenizer) RestoreState(s State) {
	tkn.bufPos = s.bufPos
	tkn.cur = s.cur
	tkn.curLen = s.curLen
	tkn.pos = s.pos
	tkn.line = s.line
	tkn.offset = s.offset
	tkn.lineOffsets = s.lineOffsets
	tkn.lineOffsetCount = s.lineOffsetCount
	tkn.pending = s.pending
	tkn.pendingCount = s.pendingCount
	tkn.history = s.history
	tkn.historyCount = s.historyCount
	tkn.queue = s.queue
	tkn.lastError = nil
}
