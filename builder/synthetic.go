// SPDX-License-Identifier: MIT
// Package: costar/builder
//
// synthetic.go - deterministic synthetic record sets for tests, examples and
// benchmarks.
//
// Contract:
//   - Actor names come from ActorName (Excel-style columns: A..Z, AA, AB, ...).
//   - Every generator is pure: same arguments ⇒ same records in the same order.
//   - Generators return []Record so they feed Build directly.
//
// Shapes (co-star graph produced by Build):
//   - ChainCasts(n):         path A–B–C–…, one two-actor movie per hop.
//   - StarCasts(hub, n):     hub co-stars once with each of n-1 leaves.
//   - EnsembleCast(n):       one movie with n names ⇒ complete graph K_n.
//   - GridCasts(rows, cols): rows×cols lattice, one movie per lattice edge.
//   - RandomCasts(seed, m, pool, k): m movies of k names drawn from a pool.

package builder

import (
	"fmt"
	"math/rand"
)

// castRecord is the in-memory Record used by the generators.
type castRecord struct {
	title string
	names []string
}

func (r castRecord) MovieTitle() string           { return r.title }
func (r castRecord) CastNames() ([]string, error) { return r.names, nil }

// ActorName renders idx as an Excel-style column name: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ActorName(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: ActorName(%d)", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// ChainCasts returns n-1 two-actor movies linking ActorName(i) to ActorName(i+1).
// n < 2 yields no records.
func ChainCasts(n int) []Record {
	if n < 2 {
		return nil
	}
	out := make([]Record, 0, n-1)
	for i := 0; i+1 < n; i++ {
		out = append(out, castRecord{
			title: fmt.Sprintf("chain-%d", i),
			names: []string{ActorName(i), ActorName(i + 1)},
		})
	}

	return out
}

// StarCasts returns n-1 movies pairing hub with leaves ActorName(0..n-2).
// n < 2 yields no records.
func StarCasts(hub string, n int) []Record {
	if n < 2 {
		return nil
	}
	out := make([]Record, 0, n-1)
	for i := 0; i < n-1; i++ {
		out = append(out, castRecord{
			title: fmt.Sprintf("star-%d", i),
			names: []string{hub, ActorName(i)},
		})
	}

	return out
}

// EnsembleCast returns one movie whose cast is ActorName(0..n-1).
func EnsembleCast(n int) Record {
	names := make([]string, 0, max(n, 0))
	for i := 0; i < n; i++ {
		names = append(names, ActorName(i))
	}

	return castRecord{title: fmt.Sprintf("ensemble-%d", n), names: names}
}

// GridActor names the lattice cell (r, c) as "r_c".
func GridActor(r, c int) string {
	return fmt.Sprintf("%d_%d", r, c)
}

// GridCasts returns one two-actor movie per edge of a rows×cols lattice,
// right neighbors before down neighbors, row-major.
func GridCasts(rows, cols int) []Record {
	var out []Record
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				out = append(out, castRecord{
					title: fmt.Sprintf("grid-%d-%d-r", r, c),
					names: []string{GridActor(r, c), GridActor(r, c+1)},
				})
			}
			if r+1 < rows {
				out = append(out, castRecord{
					title: fmt.Sprintf("grid-%d-%d-d", r, c),
					names: []string{GridActor(r, c), GridActor(r+1, c)},
				})
			}
		}
	}

	return out
}

// RandomCasts returns movies of castSize names drawn uniformly (with
// replacement) from a pool of ActorName(0..pool-1), seeded for reproducibility.
// Panics if pool < 1 or castSize < 0.
func RandomCasts(seed int64, movies, pool, castSize int) []Record {
	if pool < 1 || castSize < 0 {
		panic(fmt.Sprintf("builder: RandomCasts(pool=%d, castSize=%d)", pool, castSize))
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]Record, 0, max(movies, 0))
	for m := 0; m < movies; m++ {
		names := make([]string, castSize)
		for i := range names {
			names[i] = ActorName(rng.Intn(pool))
		}
		out = append(out, castRecord{title: fmt.Sprintf("random-%d", m), names: names})
	}

	return out
}
