package blocks

// arena stores slots of type S addressed by int32 handles.
//
// Slot 0 is never handed out and serves as the nil handle. gens[h] is odd
// while slot h is in use; releasing a slot makes it even again, touching a
// slot advances it by two, keeping it odd.
type arena[S any] struct {
	slots []S
	gens  []uint32
	free  []int32
	inUse int
}

func newArena[S any](capacity int) arena[S] {
	return arena[S]{
		slots: make([]S, 1, capacity+1),
		gens:  make([]uint32, 1, capacity+1),
	}
}

// alloc hands out a zeroed slot. Pointers obtained by at are invalid after
// alloc returns.
func (a *arena[S]) alloc() int32 {
	var h int32
	if n := len(a.free); n > 0 {
		h = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		var zero S
		a.slots = append(a.slots, zero)
		a.gens = append(a.gens, 0)
		h = int32(len(a.slots) - 1)
	}
	a.gens[h]++
	a.inUse++
	return h
}

func (a *arena[S]) release(h int32) {
	assert(a.live(h), "arena: release of a slot not in use")
	var zero S
	a.slots[h] = zero
	a.gens[h]++
	a.free = append(a.free, h)
	a.inUse--
}

func (a *arena[S]) at(h int32) *S {
	return &a.slots[h]
}

func (a *arena[S]) live(h int32) bool {
	return h > 0 && int(h) < len(a.gens) && a.gens[h]&1 == 1
}

func (a *arena[S]) gen(h int32) uint32 {
	if h <= 0 || int(h) >= len(a.gens) {
		return 0
	}
	return a.gens[h]
}

// touch invalidates outstanding references to a live slot.
func (a *arena[S]) touch(h int32) {
	assert(a.live(h), "arena: touch of a slot not in use")
	a.gens[h] += 2
}

// capacity is the number of slots, including the reserved nil slot.
func (a *arena[S]) capacity() int {
	return len(a.slots)
}
