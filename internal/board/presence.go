package board

import "fmt"

// PresenceSet tracks which values in 1..length are present, keeping a live
// member count. The board uses one per row, column, and box for placed
// values, and one per cell for candidate notes.
//
// Values outside 1..length are contract violations and panic.
type PresenceSet struct {
	length  int
	count   int
	present []bool
}

// NewPresenceSet returns an empty set over values 1..length.
func NewPresenceSet(length int) *PresenceSet {
	if length <= 0 {
		panic(fmt.Sprintf("board: presence set length %d, want positive", length))
	}
	return &PresenceSet{length: length, present: make([]bool, length)}
}

func (p *PresenceSet) mustValue(val int) {
	if val < 1 || val > p.length {
		panic(fmt.Sprintf("board: value %d out of range 1..%d", val, p.length))
	}
}

// Len returns the value range of the set.
func (p *PresenceSet) Len() int { return p.length }

// Count returns the number of present values.
func (p *PresenceSet) Count() int { return p.count }

// Check reports whether val is present.
func (p *PresenceSet) Check(val int) bool {
	p.mustValue(val)
	return p.present[val-1]
}

// Flip toggles val's membership and returns the prior membership.
func (p *PresenceSet) Flip(val int) bool {
	p.mustValue(val)
	was := p.present[val-1]
	if was {
		p.count--
	} else {
		p.count++
	}
	p.present[val-1] = !was
	return was
}

// On forces val present.
func (p *PresenceSet) On(val int) {
	p.mustValue(val)
	if !p.present[val-1] {
		p.present[val-1] = true
		p.count++
	}
}

// Off forces val absent.
func (p *PresenceSet) Off(val int) {
	p.mustValue(val)
	if p.present[val-1] {
		p.present[val-1] = false
		p.count--
	}
}

// CopyFrom clears p and reproduces src's members one by one. Lengths must
// match; the two sets share no storage afterwards.
func (p *PresenceSet) CopyFrom(src *PresenceSet) {
	if p.length != src.length {
		panic(fmt.Sprintf("board: presence set length mismatch %d != %d", p.length, src.length))
	}
	for v := 1; v <= p.length; v++ {
		p.Off(v)
		if src.Check(v) {
			p.On(v)
		}
	}
}

// Clone returns an independent copy of p.
func (p *PresenceSet) Clone() *PresenceSet {
	q := NewPresenceSet(p.length)
	q.CopyFrom(p)
	return q
}
