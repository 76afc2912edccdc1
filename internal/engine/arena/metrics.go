package arena

// SizeInUse returns the total number of bytes bumped across all regions,
// including per-allocation headers and alignment padding.
func (a *Arena) SizeInUse() int {
	sum := 0
	for r := a.cur; r != nil; r = r.prev {
		sum += r.used
	}
	return sum
}

// Capacity returns the total storage held by all regions in the chain.
func (a *Arena) Capacity() int {
	sum := 0
	for r := a.cur; r != nil; r = r.prev {
		sum += len(r.buf)
	}
	return sum
}

// NumRegions returns the number of regions currently in the chain.
func (a *Arena) NumRegions() int {
	n := 0
	for r := a.cur; r != nil; r = r.prev {
		n++
	}
	return n
}

// Utilization returns the ratio of bytes in use to total capacity,
// or 0 for an empty arena.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}
