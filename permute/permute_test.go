// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package permute

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(g Generator) []Subset {
	var out []Subset
	for g.Next() {
		out = append(out, g.Subset())
	}
	return out
}

func TestCombinationsOrder(t *testing.T) {
	got := collect(NewCombinations(4, 2))
	want := []Subset{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	}
	assert.Equal(t, want, got)
}

func TestCombinationsCount(t *testing.T) {
	for _, tc := range []struct{ n, k int }{
		{1, 1}, {2, 1}, {4, 2}, {5, 0}, {5, 5}, {7, 3}, {10, 4},
	} {
		c := NewCombinations(tc.n, tc.k)
		subsets := collect(c)
		assert.Len(t, subsets, c.Len(), "n=%d k=%d", tc.n, tc.k)
		assert.InDelta(t, Count(tc.n, tc.k), float64(len(subsets)), 1e-6)

		seen := make(map[[16]int]bool)
		for _, s := range subsets {
			require.Len(t, s, tc.k)
			var key [16]int
			copy(key[:], s)
			assert.False(t, seen[key], "duplicate subset %v", s)
			seen[key] = true
		}
	}
}

func TestCombinationsReset(t *testing.T) {
	c := NewCombinations(3, 1)
	first := collect(c)
	assert.False(t, c.Next())
	c.Reset(3, 1)
	assert.Equal(t, first, collect(c))
}

func TestCombinationsSubsetIsCopy(t *testing.T) {
	c := NewCombinations(3, 2)
	require.True(t, c.Next())
	s := c.Subset()
	require.True(t, c.Next())
	assert.Equal(t, Subset{0, 1}, s)
}

func TestSampleIdentityFirst(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	s := NewSample(rng, 10, 4, 50)
	require.True(t, s.Next())
	assert.True(t, s.Subset().IsIdentity())
	assert.Equal(t, Subset{0, 1, 2, 3}, s.Subset())

	n := 1
	for s.Next() {
		sub := s.Subset()
		require.Len(t, sub, 4)
		for i, x := range sub {
			assert.True(t, x >= 0 && x < 10)
			if i > 0 {
				assert.Less(t, sub[i-1], x, "subset %v not sorted or has repeats", sub)
			}
		}
		n++
	}
	assert.Equal(t, 50, n)
	assert.Equal(t, 50, s.Len())
}

func TestSampleSingle(t *testing.T) {
	s := NewSample(rand.New(rand.NewPCG(0, 0)), 5, 2, 1)
	got := collect(s)
	assert.Equal(t, []Subset{{0, 1}}, got)
}

func TestSampleDeterministic(t *testing.T) {
	a := collect(NewSample(rand.New(rand.NewPCG(42, 42)), 12, 5, 200))
	b := collect(NewSample(rand.New(rand.NewPCG(42, 42)), 12, 5, 200))
	assert.Equal(t, a, b)
}

func TestSampleUniform(t *testing.T) {
	// Every index should be chosen about k/n of the time.
	const n, k, count = 6, 3, 60001
	s := NewSample(rand.New(rand.NewPCG(7, 11)), n, k, count)
	s.Next() // skip identity
	var freq [n]int
	for s.Next() {
		for _, x := range s.Subset() {
			freq[x]++
		}
	}
	want := float64(count-1) * k / n
	for i, f := range freq {
		assert.InDelta(t, want, float64(f), want*0.03, "index %d", i)
	}
}

func TestSplit(t *testing.T) {
	s := Subset{1, 3}
	data := []float64{10, 11, 12, 13, 14}
	a, b := s.Split(data, nil, nil)
	assert.Equal(t, []float64{11, 13}, a)
	assert.Equal(t, []float64{10, 12, 14}, b)

	a, b = Identity(2).Split(data, a, b)
	assert.Equal(t, []float64{10, 11}, a)
	assert.Equal(t, []float64{12, 13, 14}, b)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 6.0, Count(4, 2))
	assert.Equal(t, 1.0, Count(9, 0))
	assert.InDelta(t, 184756.0, Count(20, 10), 1e-6)
	assert.Equal(t, 0.0, Count(3, 4))
}
