package searcher

// Move is a single placement together with the net score the search
// assigned to it at its ply.
type Move struct {
	Row   int
	Col   int
	Score int
}

// Chain is a principal variation: the move chosen at the current ply
// followed by the alternating best responses down to the depth limit.
// A chain is owned by the search call that produced it until it is
// released back to the pool or handed to the caller.
type Chain []Move

// chainPool recycles chain backing storage between move trials. The
// search acquires and releases chains profusely, one trial per empty
// cell per ply, and reuse keeps that churn off the allocator. Reuse is
// purely an optimization; nothing depends on it.
type chainPool struct {
	free []Chain
	hits int64
}

func (p *chainPool) acquire() Chain {
	if n := len(p.free); n > 0 {
		c := p.free[n-1]
		p.free = p.free[:n-1]
		p.hits++
		return c[:0]
	}
	return make(Chain, 0, 8)
}

func (p *chainPool) release(c Chain) {
	if c == nil {
		return
	}
	p.free = append(p.free, c)
}
