package patricia

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestEmptyTree(t *testing.T) {
	var tree Tree[string]
	if !tree.IsEmpty() || tree.Size() != 0 {
		t.Fatalf("zero value tree should be empty")
	}
	if _, found := tree.Lookup(42); found {
		t.Errorf("lookup on empty tree found a value")
	}
	if err := tree.Check(); err != nil {
		t.Errorf("empty tree fails invariant check: %v", err)
	}
}

func TestSingleton(t *testing.T) {
	tree := Singleton(7, "seven")
	if tree.Size() != 1 {
		t.Fatalf("singleton size = %d, want 1", tree.Size())
	}
	if v, found := tree.Lookup(7); !found || v != "seven" {
		t.Errorf("lookup(7) = (%q, %v), want (seven, true)", v, found)
	}
	if _, found := tree.Lookup(8); found {
		t.Errorf("lookup(8) found a value in a singleton for key 7")
	}
}

func TestInsertLookupRoundTrip(t *testing.T) {
	keys := []int64{0, 1, 2, 3, 5, 8, 13, 21, -1, -34, 1 << 40, -(1 << 62)}
	var tree Tree[int64]
	for _, k := range keys {
		tree = tree.Insert(k, k*10)
	}
	if tree.Size() != len(keys) {
		t.Fatalf("size = %d, want %d", tree.Size(), len(keys))
	}
	for _, k := range keys {
		v, found := tree.Lookup(k)
		if !found || v != k*10 {
			t.Errorf("lookup(%d) = (%d, %v), want (%d, true)", k, v, found, k*10)
		}
	}
	if err := tree.Check(); err != nil {
		t.Errorf("invariant check failed: %v", err)
	}
}

func TestInsertReplaces(t *testing.T) {
	tree := Singleton[int](5, 1).Insert(5, 2)
	if tree.Size() != 1 {
		t.Fatalf("replacing insert changed size to %d", tree.Size())
	}
	if v, _ := tree.Lookup(5); v != 2 {
		t.Errorf("lookup(5) = %d, want 2", v)
	}
}

func TestInsertWithCombines(t *testing.T) {
	add := func(a, b int) int { return a + b }
	var tree Tree[int]
	tree = tree.InsertWith(5, 1, add)
	tree = tree.InsertWith(5, 2, add)
	if v, _ := tree.Lookup(5); v != 3 {
		t.Errorf("lookup(5) = %d, want 3", v)
	}
}

func TestInsertWithArgumentOrder(t *testing.T) {
	// combine receives (new, old); with subtraction the order is observable.
	sub := func(newval, old int) int { return newval - old }
	tree := Singleton[int](5, 1).InsertWith(5, 10, sub)
	if v, _ := tree.Lookup(5); v != 9 {
		t.Errorf("lookup(5) = %d, want combine(new=10, old=1) = 9", v)
	}
}

func TestInsertIsPersistent(t *testing.T) {
	t0 := Singleton(1, "one")
	t1 := t0.Insert(2, "two")
	t2 := t1.Insert(1, "ONE")
	if t0.Size() != 1 || t1.Size() != 2 || t2.Size() != 2 {
		t.Fatalf("sizes = %d/%d/%d, want 1/2/2", t0.Size(), t1.Size(), t2.Size())
	}
	if v, _ := t1.Lookup(1); v != "one" {
		t.Errorf("old version changed: lookup(1) = %q", v)
	}
	if v, _ := t2.Lookup(1); v != "ONE" {
		t.Errorf("new version missing update: lookup(1) = %q", v)
	}
}

func TestRemove(t *testing.T) {
	var tree Tree[int]
	for k := int64(0); k < 16; k++ {
		tree = tree.Insert(k, int(k))
	}
	for k := int64(0); k < 16; k += 2 {
		tree = tree.Remove(k)
	}
	if tree.Size() != 8 {
		t.Fatalf("size after removals = %d, want 8", tree.Size())
	}
	for k := int64(0); k < 16; k++ {
		_, found := tree.Lookup(k)
		if k%2 == 0 && found {
			t.Errorf("removed key %d still present", k)
		}
		if k%2 == 1 && !found {
			t.Errorf("surviving key %d missing", k)
		}
	}
	if err := tree.Check(); err != nil {
		t.Errorf("invariant check failed: %v", err)
	}
}

func TestRemoveAbsentKeySharesTree(t *testing.T) {
	tree := Singleton(1, "one").Insert(2, "two")
	pruned := tree.Remove(99)
	if pruned.root != tree.root {
		t.Errorf("removing an absent key must return the input tree unchanged")
	}
}

func TestRemoveLastKey(t *testing.T) {
	tree := Singleton(1, "one").Remove(1)
	if !tree.IsEmpty() {
		t.Errorf("tree should be empty after removing its only key")
	}
}

func TestBuildOrderIndependence(t *testing.T) {
	keys := []int64{9, -3, 127, 0, 64, -128, 5}
	forward := Tree[int64]{}
	backward := Tree[int64]{}
	for i, k := range keys {
		forward = forward.Insert(k, k)
		backward = backward.Insert(keys[len(keys)-1-i], keys[len(keys)-1-i])
	}
	eq := func(a, b int64) bool { return a == b }
	if !Equal(forward, backward, eq) {
		t.Errorf("insertion order changed the resulting map")
	}
}

func TestEachVisitsEveryPair(t *testing.T) {
	var empty Tree[string]
	empty.Each(func(key int64, _ string) {
		t.Errorf("visit called on an empty tree with key %d", key)
	})

	keys := []int64{1, -7, 0, 1 << 40, -(1 << 63), 42}
	var tree Tree[string]
	want := make(map[int64]string)
	for _, k := range keys {
		v := fmt.Sprintf("v%d", k)
		tree = tree.Insert(k, v)
		want[k] = v
	}
	got := make(map[int64]string)
	tree.Each(func(key int64, value string) {
		if _, dup := got[key]; dup {
			t.Errorf("key %d visited twice", key)
		}
		got[key] = value
	})
	if len(got) != len(want) {
		t.Fatalf("visited %d pairs, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("key %d: visited value %q, want %q", k, got[k], v)
		}
	}
}

func TestEqual(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	t1 := Tree[int]{}.Insert(1, 10).Insert(2, 20)
	t2 := Tree[int]{}.Insert(2, 20).Insert(1, 10)
	if !Equal(t1, t2, eq) {
		t.Errorf("equal trees reported unequal")
	}
	if Equal(t1, t1.Insert(3, 30), eq) {
		t.Errorf("trees of different size reported equal")
	}
	if Equal(t1, t1.Insert(2, 21), eq) {
		t.Errorf("trees with different values reported equal")
	}
	// A derived version shares almost everything with its ancestor.
	if !Equal(t1, t1.Insert(2, 20), eq) {
		t.Errorf("no-op insert broke equality")
	}
}

func TestInvariantsUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(1234567890))
	var tree Tree[int]
	model := make(map[int64]int)
	for i := 0; i < 2000; i++ {
		key := int64(rng.Uint64()) // full 64-bit range, sign bit included
		switch rng.Intn(3) {
		case 0, 1:
			tree = tree.Insert(key, i)
			model[key] = i
		case 2:
			tree = tree.Remove(key)
			delete(model, key)
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if tree.Size() != len(model) {
		t.Fatalf("size = %d, model has %d keys", tree.Size(), len(model))
	}
	for k, want := range model {
		if v, found := tree.Lookup(k); !found || v != want {
			t.Errorf("lookup(%d) = (%d, %v), want (%d, true)", k, v, found, want)
		}
	}
}
