package splay

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/stretchr/testify/require"
)

// The model tests drive the tree against a plain-array reference model:
// after any interleaving of edits, the in-order sequence of values and
// every range aggregate must match what a simple list would produce.

func modelSum(model *arraylist.List, l, r int) int64 {
	var sum int64
	for i := l; i <= r; i++ {
		v, ok := model.Get(i)
		if ok {
			sum += v.(int64)
		}
	}
	return sum
}

func modelValues(model *arraylist.List) []int64 {
	values := make([]int64, 0, model.Size())
	model.Each(func(_ int, v interface{}) {
		values = append(values, v.(int64))
	})
	return values
}

func TestRandomizedAgainstListModel(t *testing.T) {
	rng := rand.New(rand.NewSource(20260823))
	tree, err := New[int64](Config{Capacity: 1 << 15})
	require.NoError(t, err)
	model := arraylist.New()

	for step := 0; step < 3000; step++ {
		switch op := rng.Intn(10); {
		case op < 3 || model.Size() == 0: // insert
			pos := rng.Intn(model.Size() + 1)
			v := int64(rng.Intn(2001) - 1000)
			require.NoError(t, tree.Insert(pos, v), "insert at step %d", step)
			model.Insert(pos, v)
		case op < 5: // delete
			pos := rng.Intn(model.Size())
			require.NoError(t, tree.Delete(pos), "delete at step %d", step)
			model.Remove(pos)
		case op < 7: // range add
			l, r := rng.Intn(model.Size()), rng.Intn(model.Size())
			if l > r {
				l, r = r, l
			}
			d := int64(rng.Intn(201) - 100)
			require.NoError(t, tree.AddRange(l, r, d), "range add at step %d", step)
			for i := l; i <= r; i++ {
				v, _ := model.Get(i)
				model.Set(i, v.(int64)+d)
			}
		case op < 9: // range sum
			l, r := rng.Intn(model.Size()), rng.Intn(model.Size())
			if l > r {
				l, r = r, l
			}
			got, err := tree.SumRange(l, r)
			require.NoError(t, err, "range sum at step %d", step)
			require.Equal(t, modelSum(model, l, r), got, "sum of [%d,%d] at step %d", l, r, step)
		default: // point read
			pos := rng.Intn(model.Size())
			got, err := tree.At(pos)
			require.NoError(t, err, "point read at step %d", step)
			v, _ := model.Get(pos)
			require.Equal(t, v.(int64), got, "At(%d) at step %d", pos, step)
		}
		require.NoError(t, tree.Check(), "invariants broken at step %d", step)
		require.Equal(t, model.Size(), tree.Len(), "length mismatch at step %d", step)
	}
	require.Equal(t, modelValues(model), tree.Values())
}

func TestBuildMatchesListModel(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tree, err := New[int64](Config{})
	require.NoError(t, err)
	for _, size := range []int{0, 1, 2, 7, 64, 1000} {
		values := make([]int64, size)
		for i := range values {
			values[i] = int64(rng.Intn(1000))
		}
		require.NoError(t, tree.Build(values))
		require.NoError(t, tree.Check())
		require.Equal(t, size+2, tree.Allocated(), "build must reset the arena")
		if size > 0 {
			got, err := tree.SumRange(0, size-1)
			require.NoError(t, err)
			require.Equal(t, modelSum(arraylist.New(toAny(values)...), 0, size-1), got)
		}
		require.Equal(t, values, tree.Values())
	}
}

func toAny(values []int64) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
