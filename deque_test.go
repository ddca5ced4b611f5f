package deque

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/deque/blocks"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestZeroValueDeque(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "deque")
	defer teardown()
	//
	var d Deque[int]
	if d.Len() != 0 || !d.IsEmpty() {
		t.Fatalf("zero deque must be empty, has length %d", d.Len())
	}
	if _, err := d.Front(); !errors.Is(err, ErrEmptyContainer) {
		t.Fatalf("expected ErrEmptyContainer for Front, got %v", err)
	}
	if _, err := d.PopBack(); !errors.Is(err, ErrEmptyContainer) {
		t.Fatalf("expected ErrEmptyContainer for PopBack, got %v", err)
	}
	if !d.Begin().Equal(d.End()) {
		t.Fatalf("Begin() of an empty deque must equal End()")
	}
	d.PushBack(1)
	d.PushFront(0)
	if got := d.Values(); !slices.Equal(got, []int{0, 1}) {
		t.Fatalf("unexpected values %v", got)
	}
	if err := d.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestNewWithConfigRejectsInvalidThresholds(t *testing.T) {
	_, err := NewWithConfig[int](blocks.Config{SplitFactor: 1, MergeFactor: 2})
	if !errors.Is(err, blocks.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	d, err := NewWithConfig[int](blocks.Config{SplitFactor: 3})
	if err != nil {
		t.Fatalf("NewWithConfig failed: %v", err)
	}
	if cfg := d.Config(); cfg.SplitFactor != 3 || cfg.MergeFactor != blocks.DefaultMergeFactor {
		t.Fatalf("unexpected effective config %+v", cfg)
	}
}

func TestBasicScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "deque")
	defer teardown()
	//
	d := New[int]()
	d.PushBack(0)
	d.PushBack(1)
	d.PushBack(2)
	it, err := d.Erase(d.Begin().Add(1))
	if err != nil {
		t.Fatalf("Erase failed: %v", err)
	}
	if v, _ := it.Value(); v != 2 {
		t.Fatalf("Erase must return an iterator to the following element, got %d", v)
	}
	if got := d.Values(); !slices.Equal(got, []int{0, 2}) {
		t.Fatalf("expected [0 2], have %v", got)
	}
	if _, err := d.At(5); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds for At(5), got %v", err)
	}
	if _, err := d.At(-1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds for At(-1), got %v", err)
	}
	if v, _ := d.PopBack(); v != 2 {
		t.Fatalf("PopBack returned %d", v)
	}
	if v, _ := d.PopFront(); v != 0 {
		t.Fatalf("PopFront returned %d", v)
	}
	if !d.IsEmpty() {
		t.Fatalf("deque should be empty, has %v", d)
	}
	if _, err := d.PopFront(); !errors.Is(err, ErrEmptyContainer) {
		t.Fatalf("expected ErrEmptyContainer, got %v", err)
	}
}

func TestPushPopMatchesModel(t *testing.T) {
	d := New[int]()
	var model []int
	pushes, pops := 0, 0
	for i := range 500 {
		switch i % 5 {
		case 0, 1:
			d.PushBack(i)
			model = append(model, i)
			pushes++
		case 2:
			d.PushFront(i)
			model = slices.Insert(model, 0, i)
			pushes++
		case 3:
			v, err := d.PopFront()
			if err != nil || v != model[0] {
				t.Fatalf("PopFront = %d, %v; want %d", v, err, model[0])
			}
			model = model[1:]
			pops++
		case 4:
			v, err := d.PopBack()
			if err != nil || v != model[len(model)-1] {
				t.Fatalf("PopBack = %d, %v; want %d", v, err, model[len(model)-1])
			}
			model = model[:len(model)-1]
			pops++
		}
		if d.Len() != pushes-pops {
			t.Fatalf("Len = %d, want %d", d.Len(), pushes-pops)
		}
	}
	for i, want := range model {
		if v, err := d.At(i); err != nil || v != want {
			t.Fatalf("At(%d) = %d, %v; want %d", i, v, err, want)
		}
	}
	if err := d.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestSetReplacesValue(t *testing.T) {
	d := FromSlice("a", "b", "c")
	if err := d.Set(1, "x"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := d.Set(3, "y"); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if d.String() != "[a x c]" {
		t.Fatalf("unexpected deque %s", d)
	}
}

func TestInsertThenEraseRestoresSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "deque")
	defer teardown()
	//
	d := New[int]()
	for i := range 60 {
		d.PushBack(i)
	}
	want := d.Values()
	for _, pos := range []int{0, 1, 17, 30, 59, 60} {
		it, err := d.Insert(d.Begin().Add(pos), -1)
		if err != nil {
			t.Fatalf("Insert at %d failed: %v", pos, err)
		}
		if i, _ := it.Index(); i != pos {
			t.Fatalf("inserted element has index %d, want %d", i, pos)
		}
		if _, err := d.Erase(it); err != nil {
			t.Fatalf("Erase at %d failed: %v", pos, err)
		}
		if got := d.Values(); !slices.Equal(got, want) {
			t.Fatalf("insert/erase at %d changed sequence to %v", pos, got)
		}
	}
	if err := d.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestInsertAtEndAppends(t *testing.T) {
	d := New[string]()
	if _, err := d.Insert(d.End(), "a"); err != nil {
		t.Fatalf("Insert at End() of empty deque failed: %v", err)
	}
	if _, err := d.Insert(d.End(), "b"); err != nil {
		t.Fatalf("Insert at End() failed: %v", err)
	}
	if d.String() != "[a b]" {
		t.Fatalf("unexpected deque %s", d)
	}
}

func TestIteratorErrors(t *testing.T) {
	d := FromSlice(1, 2, 3)
	other := FromSlice(1, 2, 3)
	if _, err := d.Insert(other.Begin(), 0); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("expected ErrInvalidIterator for foreign iterator, got %v", err)
	}
	if _, err := d.Insert(Iterator[int]{}, 0); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("expected ErrInvalidIterator for zero iterator, got %v", err)
	}
	if _, err := d.Insert(d.Begin().Prev(), 0); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("expected ErrInvalidIterator for before-begin, got %v", err)
	}
	if _, err := d.Erase(d.End()); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("expected ErrInvalidIterator for Erase(End()), got %v", err)
	}
	if _, err := d.End().Value(); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("expected ErrInvalidIterator for dereferencing End(), got %v", err)
	}
	if _, err := d.Begin().Prev().Value(); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("expected ErrInvalidIterator for dereferencing before-begin, got %v", err)
	}
	if _, err := d.Begin().Distance(other.Begin()); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("expected ErrInvalidIterator for distance across deques, got %v", err)
	}
	if got := d.Values(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("failed operations modified the deque: %v", got)
	}
}

func TestStaleIteratorIsDetected(t *testing.T) {
	d := FromSlice(1, 2, 3, 4)
	it := d.Begin().Add(2)
	if _, err := d.Erase(it); err != nil {
		t.Fatalf("Erase failed: %v", err)
	}
	if _, err := it.Value(); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("expected ErrInvalidIterator for erased position, got %v", err)
	}
	if err := it.Set(7); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("expected ErrInvalidIterator for Set, got %v", err)
	}
	if _, err := d.Erase(it); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("expected ErrInvalidIterator for second Erase, got %v", err)
	}
	if _, err := d.Insert(it, 0); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("expected ErrInvalidIterator for Insert, got %v", err)
	}
	if _, err := it.Distance(d.Begin()); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("expected ErrInvalidIterator for Distance, got %v", err)
	}
	if got := d.Values(); !slices.Equal(got, []int{1, 2, 4}) {
		t.Fatalf("unexpected values %v", got)
	}
}

func TestEraseOnEmptyDeque(t *testing.T) {
	d := New[int]()
	if _, err := d.Erase(d.Begin()); !errors.Is(err, ErrEmptyContainer) {
		t.Fatalf("expected ErrEmptyContainer, got %v", err)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	d := FromSlice(1, 2, 3, 4, 5, 6, 7, 8, 9)
	d.Clear()
	d.Clear()
	if !d.IsEmpty() || len(d.BlockSizes()) != 0 {
		t.Fatalf("deque not empty after Clear: %v", d)
	}
	if err := d.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	d.PushBack(10)
	if d.String() != "[10]" {
		t.Fatalf("deque not usable after Clear: %v", d)
	}
}

func TestCopiesAreIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "deque")
	defer teardown()
	//
	src := New[int]()
	for i := range 40 {
		src.PushBack(i)
	}
	clone := src.Clone()
	var assigned Deque[int]
	assigned.PushBack(99)
	assigned.Assign(src)
	if !slices.Equal(clone.BlockSizes(), src.BlockSizes()) {
		t.Fatalf("clone has layout %v, source %v", clone.BlockSizes(), src.BlockSizes())
	}
	src.Set(0, -1)
	src.PopBack()
	clone.PushFront(-2)
	assigned.Set(1, -3)
	if v, _ := clone.At(1); v != 0 || clone.Len() != 41 {
		t.Fatalf("clone was affected by source or itself broken: %v", clone)
	}
	if v, _ := assigned.At(0); v != 0 || assigned.Len() != 40 {
		t.Fatalf("assigned deque was affected by source: %v", assigned)
	}
	if v, _ := src.At(1); v != 1 || src.Len() != 39 {
		t.Fatalf("source was affected by copies: %v", src)
	}
	for _, d := range []*Deque[int]{src, clone, &assigned} {
		if err := d.Check(); err != nil {
			t.Fatalf("invariant check failed: %v", err)
		}
	}
}

func TestSelfAssignIsNoOp(t *testing.T) {
	d := FromSlice(1, 2, 3)
	it := d.Begin()
	d.Assign(d)
	if v, err := it.Value(); err != nil || v != 1 {
		t.Fatalf("self assignment invalidated iterators: %d, %v", v, err)
	}
	var empty Deque[int]
	d.Assign(&empty)
	if !d.IsEmpty() {
		t.Fatalf("assigning an empty deque must clear, have %v", d)
	}
}

func TestForwardAndBackwardTraversal(t *testing.T) {
	d := New[int]()
	for i := range 100 {
		d.PushBack(i)
	}
	n := 0
	for it := d.Begin(); !it.IsEnd(); it = it.Next() {
		if v, _ := it.Value(); v != n {
			t.Fatalf("forward traversal visits %d at index %d", v, n)
		}
		n++
	}
	if n != d.Len() {
		t.Fatalf("forward traversal visited %d elements", n)
	}
	n = d.Len() - 1
	for it := d.End().Prev(); it.Valid(); it = it.Prev() {
		if v, _ := it.Value(); v != n {
			t.Fatalf("backward traversal visits %d, want %d", v, n)
		}
		n--
	}
	if n != -1 {
		t.Fatalf("backward traversal stopped at %d", n)
	}
	for i, v := range d.Backward() {
		if i != v {
			t.Fatalf("Backward yields %d at index %d", v, i)
		}
	}
	for i, v := range d.All() {
		if i != v {
			t.Fatalf("All yields %d at index %d", v, i)
		}
	}
}

func TestDistanceLaw(t *testing.T) {
	d := New[int]()
	for i := range 50 {
		d.PushFront(i)
	}
	positions := []int{0, 1, 7, 25, 49, 50}
	for _, i := range positions {
		for _, j := range positions {
			x, y := d.Begin().Add(i), d.Begin().Add(j)
			n, err := y.Distance(x)
			if err != nil {
				t.Fatalf("Distance failed: %v", err)
			}
			if n != j-i {
				t.Fatalf("distance from %d to %d is %d", i, j, n)
			}
			if !x.Add(n).Equal(y) {
				t.Fatalf("x.Add(y.Distance(x)) != y for %d, %d", i, j)
			}
		}
	}
	if n, _ := d.End().Distance(d.Begin()); n != d.Len() {
		t.Fatalf("End() - Begin() = %d, want %d", n, d.Len())
	}
}

func TestConstIterator(t *testing.T) {
	d := FromSlice("x", "y", "z")
	var got []string
	for c := d.CBegin(); !c.IsEnd(); c = c.Next() {
		v, _ := c.Value()
		got = append(got, v)
	}
	if strings.Join(got, "") != "xyz" {
		t.Fatalf("const traversal yields %v", got)
	}
	if n, _ := d.CEnd().Distance(d.CBegin()); n != 3 {
		t.Fatalf("CEnd() - CBegin() = %d", n)
	}
	if !d.CBegin().Add(3).Equal(d.CEnd()) {
		t.Fatalf("CBegin()+3 must equal CEnd()")
	}
}

func TestMixedIteratorComparison(t *testing.T) {
	d := FromSlice(1, 2, 3)
	it := d.Begin().Next()
	c := d.CBegin().Next()
	if !it.EqualConst(c) || !c.EqualIterator(it) {
		t.Fatalf("iterator and read-only iterator to the same element must compare equal")
	}
	if it.EqualConst(d.CEnd()) || d.CEnd().EqualIterator(it) {
		t.Fatalf("iterators to different positions must not compare equal")
	}
	if !d.End().EqualConst(d.CEnd()) {
		t.Fatalf("End() must equal CEnd()")
	}
	other := d.Clone()
	if other.Begin().EqualConst(d.CBegin()) {
		t.Fatalf("iterators of different deques must not compare equal")
	}
}

func TestFrontInsertionKeepsSqrtBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "deque")
	defer teardown()
	//
	d := New[int]()
	for i := range 1000 {
		if _, err := d.Insert(d.Begin(), i); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		n := float64(d.Len())
		stats := d.Stats()
		if float64(len(stats.Sizes)) > 2*math.Sqrt(n)+2 {
			t.Fatalf("after %d inserts: %d blocks", i+1, len(stats.Sizes))
		}
		if float64(stats.MaxBlockSize()) > 2*math.Sqrt(n)+1 {
			t.Fatalf("after %d inserts: block of size %d", i+1, stats.MaxBlockSize())
		}
	}
	values := d.Values()
	for i, v := range values {
		if v != 999-i {
			t.Fatalf("expected reverse order, found %d at index %d", v, i)
		}
	}
	if err := d.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestDeque2Dot(t *testing.T) {
	d := FromSlice("a", "b|c")
	var sb strings.Builder
	Deque2Dot(d, &sb)
	dot := sb.String()
	for _, want := range []string{"strict digraph {", `b\|c`, "shape=record", "\"1\" ->", "-> \"2\""} {
		if !strings.Contains(dot, want) {
			t.Fatalf("DOT output lacks %q:\n%s", want, dot)
		}
	}
}
