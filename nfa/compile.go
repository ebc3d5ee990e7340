package nfa

import (
	"math"

	"github.com/coregx/ahocorasick/internal/conv"
	"github.com/coregx/ahocorasick/internal/sparse"
	"github.com/coregx/ahocorasick/prefilter"
)

// Construction limits. Ids are 32 bits wide; exceeding either limit is
// reported as a BuildError, never silently truncated.
const (
	maxPatternCount = math.MaxUint32
	maxPatternLen   = math.MaxUint32 - 1
	maxStateCount   = math.MaxUint32
)

// CompilerConfig configures automaton construction. It is validated when
// the compiler is created and immutable afterwards.
type CompilerConfig struct {
	// MatchKind selects the match semantics baked into the automaton.
	MatchKind MatchKind

	// ASCIICaseInsensitive mirrors every byte transition recorded during
	// trie construction onto its opposite-case ASCII letter, folding both
	// onto one destination state. Non-letter bytes are unaffected.
	ASCIICaseInsensitive bool

	// Prefilter enables building a literal-scanning accelerator from the
	// pattern bytes. Disabling it only affects performance, never which
	// matches are reported.
	Prefilter bool
}

// DefaultCompilerConfig returns the default construction configuration.
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		MatchKind: MatchKindStandard,
		Prefilter: true,
	}
}

// Compiler builds an NFA from a set of byte-string patterns.
//
// Construction is a bounded, single-threaded pure computation over the
// pattern set. The compiler exclusively owns the in-progress automaton; no
// other code observes it mid-build. A compiler is reusable across builds.
type Compiler struct {
	config  CompilerConfig
	nfa     *NFA
	byteset *ByteClassSet
}

// NewCompiler creates a compiler with the given configuration.
func NewCompiler(config CompilerConfig) *Compiler {
	return &Compiler{config: config}
}

// Compile runs the construction pipeline and returns the finished,
// immutable automaton:
//
//	trie build -> start-state setup -> failure-link fill ->
//	leftmost closing -> state relayout -> finalize
//
// The phase order is load-bearing; several phases rely on the exact state
// numbering established by their predecessors.
func (c *Compiler) Compile(patterns [][]byte) (*NFA, error) {
	c.nfa = &NFA{matchKind: c.config.MatchKind}
	c.byteset = NewByteClassSet()

	// Sentinels and start states, in this exact order: 0=dead, 1=fail,
	// 2=start-unanchored, 3=start-anchored. Later phases rely on this
	// numbering until the relayout pass rewrites it.
	for i := 0; i < 4; i++ {
		if _, err := c.addState(0); err != nil {
			return nil, &BuildError{Pattern: -1, Err: err}
		}
	}
	c.nfa.special = special{
		startUnanchoredID: 2,
		startAnchoredID:   3,
	}

	c.initUnanchoredStart()
	if err := c.buildTrie(patterns); err != nil {
		return nil, err
	}
	c.setAnchoredStart()
	c.closeUnanchoredStartLoop()
	c.addDeadStateLoop()
	c.fillFailureLinks()
	c.closeStartLoopForLeftmost()
	c.shuffle()
	c.finalize(patterns)

	nfa := c.nfa
	c.nfa = nil
	return nfa, nil
}

// addState allocates one state at the given depth and returns its id.
// New states default their failure link to the unanchored start; the
// failure fill overwrites everything deeper than the first trie level.
func (c *Compiler) addState(depth uint32) (StateID, error) {
	if uint64(len(c.nfa.states)) >= maxStateCount {
		return DeadState, ErrStateCountOverflow
	}
	id := StateID(len(c.nfa.states))
	c.nfa.states = append(c.nfa.states, State{
		fail:  2, // start-unanchored, fixed until relayout
		depth: depth,
	})
	return id, nil
}

// initUnanchoredStart gives the unanchored start state its dense 256-entry
// table, with every byte explicitly set to FailState. The unanchored start
// is the hottest state of any scan, so lookups on it must be a flat array
// index rather than a list scan.
func (c *Compiler) initUnanchoredStart() {
	uid := c.nfa.special.startUnanchoredID
	s := &c.nfa.states[uid]
	s.dense = make([]StateID, 256)
	for b := range s.dense {
		s.dense[b] = FailState
	}
	// The start state's own failure chain must never lead anywhere else.
	s.fail = uid
}

// buildTrie inserts every pattern, in insertion order, walking existing
// transitions and allocating a new state whenever none exists.
func (c *Compiler) buildTrie(patterns [][]byte) error {
	if uint64(len(patterns)) > maxPatternCount {
		return &BuildError{Pattern: -1, Err: ErrPatternCountOverflow}
	}
	uid := c.nfa.special.startUnanchoredID

PATTERNS:
	for i, pat := range patterns {
		pid := PatternID(i)
		if uint64(len(pat)) > maxPatternLen {
			return &BuildError{Pattern: i, Err: ErrPatternTooLong}
		}
		c.nfa.patternLens = append(c.nfa.patternLens, len(pat))
		if i == 0 || len(pat) < c.nfa.minPatternLen {
			c.nfa.minPatternLen = len(pat)
		}
		if len(pat) > c.nfa.maxPatternLen {
			c.nfa.maxPatternLen = len(pat)
		}

		prev := uid
		sawMatch := false
		for depth, b := range pat {
			sawMatch = sawMatch || c.nfa.states[prev].IsMatch()
			if c.config.MatchKind.IsLeftmostFirst() && sawMatch {
				// A previously inserted pattern is a prefix of this
				// one, so under leftmost-first the remainder of this
				// pattern can never be a winner. It must not be in
				// the trie at all: omitting it is required for
				// correctness, not just a space saving.
				continue PATTERNS
			}

			c.byteset.SetByte(b)
			if c.config.ASCIICaseInsensitive {
				c.byteset.SetByte(oppositeASCIICase(b))
			}

			next := c.nfa.states[prev].Next(b)
			if next != FailState {
				prev = next
				continue
			}
			id, err := c.addState(conv.IntToUint32(depth) + 1)
			if err != nil {
				return &BuildError{Pattern: i, Err: err}
			}
			c.nfa.states[prev].setNext(b, id)
			if c.config.ASCIICaseInsensitive {
				if o := oppositeASCIICase(b); o != b {
					c.nfa.states[prev].setNext(o, id)
				}
			}
			prev = id
		}
		c.nfa.states[prev].matches = append(c.nfa.states[prev].matches, pid)
	}
	return nil
}

// setAnchoredStart clones the unanchored start's transitions and matches
// onto the anchored start, but points its failure link at the dead state:
// an anchored search must die, not wander, when no transition matches.
// Runs before the unanchored self-loop is closed, so only real children
// are cloned.
func (c *Compiler) setAnchoredStart() {
	uid := c.nfa.special.startUnanchoredID
	aid := c.nfa.special.startAnchoredID
	dense := c.nfa.states[uid].dense
	for b := 0; b < 256; b++ {
		if dense[b] == FailState {
			continue
		}
		c.nfa.states[aid].setNext(byte(b), dense[b])
	}
	c.nfa.copyMatches(uid, aid)
	c.nfa.states[aid].fail = DeadState
}

// closeUnanchoredStartLoop points every still-undefined byte on the
// unanchored start back at itself, so an unanchored scan never falls off
// the automaton.
func (c *Compiler) closeUnanchoredStartLoop() {
	uid := c.nfa.special.startUnanchoredID
	dense := c.nfa.states[uid].dense
	for b := range dense {
		if dense[b] == FailState {
			dense[b] = uid
		}
	}
}

// addDeadStateLoop makes the dead state absorbing: every byte transitions
// back to it, so once entered it is never left.
func (c *Compiler) addDeadStateLoop() {
	for b := 0; b < 256; b++ {
		c.nfa.states[DeadState].setNext(byte(b), DeadState)
	}
}

// queuedSet tracks states already queued during the breadth-first failure
// fill. The only way to discover a state twice is ASCII case folding
// aliasing two bytes onto one child, so the set is inert unless folding is
// enabled: no set overhead is paid when it cannot help.
type queuedSet struct {
	set *sparse.Set
}

func (c *Compiler) queuedSet() queuedSet {
	if !c.config.ASCIICaseInsensitive {
		return queuedSet{}
	}
	return queuedSet{set: sparse.NewSet(conv.IntToUint32(len(c.nfa.states)))}
}

func (q queuedSet) contains(id StateID) bool {
	return q.set != nil && q.set.Contains(uint32(id))
}

func (q queuedSet) insert(id StateID) {
	if q.set != nil {
		q.set.Insert(uint32(id))
	}
}

// fillFailureLinks computes every state's failure link via breadth-first
// traversal seeded by the unanchored start's distinct children.
//
// For a state reached by byte b from parent p, p's failure chain is
// followed, re-testing b, until a defined transition is found; its target
// becomes the new state's failure link and its matches are unioned into
// the new state's matches (a failure target can itself be a match state:
// a shorter pattern that is a suffix of the one just extended).
//
// Under leftmost kinds, a state that is itself a match state gets failure
// link DEAD, and so does every state whose parent already fails to DEAD:
// leftmost semantics forbid continuing past the leftmost match to look for
// a later, different one. The dead state's self-loop makes the propagation
// transitive without extra bookkeeping.
func (c *Compiler) fillFailureLinks() {
	uid := c.nfa.special.startUnanchoredID
	kind := c.config.MatchKind
	startIsMatch := c.nfa.states[uid].IsMatch()

	queue := make([]StateID, 0, len(c.nfa.states))
	seen := c.queuedSet()

	// Seed with the start's children. Self-loops from the closed start
	// loop are excluded: following them would never terminate.
	dense := c.nfa.states[uid].dense
	for b := 0; b < 256; b++ {
		next := dense[b]
		if next == uid || seen.contains(next) {
			continue
		}
		seen.insert(next)
		queue = append(queue, next)
		c.nfa.states[next].fail = uid
		if kind.IsLeftmost() && c.nfa.states[next].IsMatch() {
			c.nfa.states[next].fail = DeadState
		}
		if kind.IsStandard() && startIsMatch {
			// One pattern is the empty string, which matches at every
			// position. Each first-level child inherits the start's
			// matches here; deeper states inherit them transitively
			// through their failure targets below.
			c.nfa.copyMatches(uid, next)
		}
	}

	for head := 0; head < len(queue); head++ {
		id := queue[head]
		for ti := 0; ti < len(c.nfa.states[id].trans); ti++ {
			b := c.nfa.states[id].trans[ti].Byte
			next := c.nfa.states[id].trans[ti].Next
			if seen.contains(next) {
				continue
			}
			seen.insert(next)
			queue = append(queue, next)

			if kind.IsLeftmost() && c.nfa.states[next].IsMatch() {
				c.nfa.states[next].fail = DeadState
				continue
			}
			if kind.IsLeftmost() && c.nfa.states[id].fail == DeadState {
				c.nfa.states[next].fail = DeadState
				continue
			}

			fail := c.nfa.states[id].fail
			for c.nfa.states[fail].Next(b) == FailState {
				fail = c.nfa.states[fail].fail
			}
			fail = c.nfa.states[fail].Next(b)
			c.nfa.states[next].fail = fail
			c.nfa.copyMatches(fail, next)
		}
	}
}

// closeStartLoopForLeftmost rewrites the unanchored start's self-loop
// transitions to the dead state when the start itself is a match state
// under a leftmost kind. The search then stops the instant the
// already-matched leftmost position is confirmed instead of scanning on.
// Only the self-loops are rewritten; transitions to real children stay,
// since a longer pattern starting at the same position may still win.
func (c *Compiler) closeStartLoopForLeftmost() {
	uid := c.nfa.special.startUnanchoredID
	if !c.config.MatchKind.IsLeftmost() || !c.nfa.states[uid].IsMatch() {
		return
	}
	dense := c.nfa.states[uid].dense
	for b := range dense {
		if dense[b] == uid {
			dense[b] = DeadState
		}
	}
}

// shuffle physically relocates states into the canonical order
//
//	DEAD, FAIL, MATCH..., START-UNANCHORED, START-ANCHORED, NONMATCH...
//
// and rewrites every stored reference in one pass over an explicit
// old-id-to-new-id permutation table. After this pass the state-kind
// predicates are bounded integer-range comparisons, which keeps a
// branch-mispredicting field load out of the per-byte hot loop.
func (c *Compiler) shuffle() {
	n := c.nfa
	oldU := n.special.startUnanchoredID
	oldA := n.special.startAnchoredID

	remap := make([]StateID, len(n.states))
	remap[DeadState] = DeadState
	remap[FailState] = FailState

	next := StateID(2)
	for id := int(oldA) + 1; id < len(n.states); id++ {
		if n.states[id].IsMatch() {
			remap[id] = next
			next++
		}
	}
	maxMatch := next - 1 // FailState when there are no match states
	newU := next
	remap[oldU] = newU
	next++
	newA := next
	remap[oldA] = newA
	next++
	for id := int(oldA) + 1; id < len(n.states); id++ {
		if !n.states[id].IsMatch() {
			remap[id] = next
			next++
		}
	}
	if n.states[oldU].IsMatch() {
		// The start states sit directly above the ordinary match states,
		// so when they are themselves match states (empty pattern) the
		// match range simply extends to cover them.
		maxMatch = newA
	}

	relocated := make([]State, len(n.states))
	for old := range n.states {
		s := n.states[old]
		s.fail = remap[s.fail]
		for i := range s.trans {
			s.trans[i].Next = remap[s.trans[i].Next]
		}
		for b := range s.dense {
			s.dense[b] = remap[s.dense[b]]
		}
		relocated[remap[old]] = s
	}
	n.states = relocated
	n.special = special{
		maxSpecialID:      newA,
		maxMatchID:        maxMatch,
		startUnanchoredID: newU,
		startAnchoredID:   newA,
	}
}

// In-array size of a State: three slice headers plus the failure link and
// construction depth.
const stateFixedBytes = 3*24 + 4 + 4

// finalize computes the byte equivalence classes, builds the optional
// prefilter from the literal pattern bytes, and sums the automaton's heap
// footprint.
func (c *Compiler) finalize(patterns [][]byte) {
	n := c.nfa
	n.byteClasses = c.byteset.ByteClasses()

	if c.config.Prefilter {
		pb := prefilter.NewBuilder(prefilter.Config{
			ASCIICaseInsensitive: c.config.ASCIICaseInsensitive,
		})
		for _, pat := range patterns {
			pb.Add(pat)
		}
		n.prefilter = pb.Build()
	}

	usage := cap(n.states)*stateFixedBytes + cap(n.patternLens)*8
	for i := range n.states {
		usage += n.states[i].heapBytes()
	}
	if n.prefilter != nil {
		usage += n.prefilter.HeapBytes()
	}
	n.memoryUsage = usage
}

// oppositeASCIICase returns b with its ASCII case flipped, or b unchanged
// when it is not an ASCII letter.
func oppositeASCIICase(b byte) byte {
	switch {
	case 'A' <= b && b <= 'Z':
		return b + ('a' - 'A')
	case 'a' <= b && b <= 'z':
		return b - ('a' - 'A')
	default:
		return b
	}
}
