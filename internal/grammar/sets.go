package grammar

// stringSet is a plain set of grammar symbols; the grammar package
// avoids generics deliberately so table construction stays easy to
// audit by inspection alone.
type stringSet map[string]bool

func (s stringSet) add(sym string) bool {
	if s[sym] {
		return false
	}
	s[sym] = true
	return true
}

func (s stringSet) addAll(other stringSet) bool {
	changed := false
	for sym := range other {
		if s.add(sym) {
			changed = true
		}
	}
	return changed
}

func (s stringSet) has(sym string) bool { return s[sym] }

func (s stringSet) slice() []string {
	out := make([]string, 0, len(s))
	for sym := range s {
		out = append(out, sym)
	}
	return out
}

// Sets bundles the FIRST and FOLLOW tables computed for a finalized
// grammar.
type Sets struct {
	first  map[string]stringSet
	follow map[string]stringSet
	g      *Grammar
}

// ComputeSets runs the classical worklist fixpoint for FIRST and FOLLOW
// (purple dragon book, algorithms 4.28/4.29). g must be finalized.
func ComputeSets(g *Grammar) *Sets {
	s := &Sets{first: make(map[string]stringSet), follow: make(map[string]stringSet), g: g}
	s.computeFirst()
	s.computeFollow()
	return s
}

func (s *Sets) computeFirst() {
	for t := range s.g.terminals {
		s.first[t] = stringSet{t: true}
	}
	for _, nt := range s.g.ntOrder {
		s.first[nt] = stringSet{}
	}

	changed := true
	for changed {
		changed = false
		for _, p := range s.g.byID {
			target := s.first[p.NonTerminal]
			if len(p.RHS) == 0 {
				if target.add(Epsilon) {
					changed = true
				}
				continue
			}
			nullableSoFar := true
			for _, sym := range p.RHS {
				if !nullableSoFar {
					break
				}
				symFirst := s.first[sym]
				for x := range symFirst {
					if x == Epsilon {
						continue
					}
					if target.add(x) {
						changed = true
					}
				}
				if !symFirst.has(Epsilon) {
					nullableSoFar = false
				}
			}
			if nullableSoFar {
				if target.add(Epsilon) {
					changed = true
				}
			}
		}
	}
}

// firstOfSeq computes FIRST of a symbol sequence (used for FOLLOW
// computation and, later, for lookahead-sensitive error reporting).
func (s *Sets) firstOfSeq(seq []string) stringSet {
	out := stringSet{}
	nullable := true
	for _, sym := range seq {
		if !nullable {
			break
		}
		symFirst := s.first[sym]
		for x := range symFirst {
			if x != Epsilon {
				out.add(x)
			}
		}
		if !symFirst.has(Epsilon) {
			nullable = false
		}
	}
	if nullable {
		out.add(Epsilon)
	}
	return out
}

func (s *Sets) computeFollow() {
	for _, nt := range s.g.ntOrder {
		s.follow[nt] = stringSet{}
	}
	s.follow[s.g.Start].add(EndMarker)

	changed := true
	for changed {
		changed = false
		for _, p := range s.g.byID {
			for i, sym := range p.RHS {
				if !s.g.IsNonTerminal(sym) {
					continue
				}
				rest := p.RHS[i+1:]
				restFirst := s.firstOfSeq(rest)
				for x := range restFirst {
					if x == Epsilon {
						continue
					}
					if s.follow[sym].add(x) {
						changed = true
					}
				}
				if restFirst.has(Epsilon) {
					if s.follow[sym].addAll(s.follow[p.NonTerminal]) {
						changed = true
					}
				}
			}
		}
	}
}

// First returns FIRST(sym) (sym may be a terminal or nonterminal).
func (s *Sets) First(sym string) []string { return s.first[sym].slice() }

// Follow returns FOLLOW(nt).
func (s *Sets) Follow(nt string) []string { return s.follow[nt].slice() }

// FollowHas reports whether term is in FOLLOW(nt).
func (s *Sets) FollowHas(nt, term string) bool { return s.follow[nt].has(term) }

// IsNullable reports whether sym can derive the empty string.
func (s *Sets) IsNullable(sym string) bool { return s.first[sym].has(Epsilon) }
