// Bench is a benchmarking tool for measuring fixedset build performance,
// query throughput, and memory usage.
//
// Usage:
//
//	go run ./cmd/bench -keys 1000000 -workers 4
//
// Flags:
//
//	-keys     Number of distinct keys to index (default: 1,000,000)
//	-queries  Number of hit and miss queries to time (default: 10,000,000)
//	-workers  Number of parallel workers for building (default: 1)
//	-seed     Build and key-stream seed (default: 1)
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/spaolacci/murmur3"

	fixedset "github.com/Alex-Andrv/shad-fix-set"
)

// keyStream generates n distinct pseudorandom int32 keys by hashing a
// counter with murmur3. The stream is deterministic for a given seed, so
// runs are comparable; skip lets a second call continue past an earlier
// stream to produce keys guaranteed disjoint from it.
func keyStream(seed uint32, n int, skip int) []int32 {
	keys := make([]int32, 0, n)
	seen := make(map[int32]struct{}, n+skip)
	var buf [8]byte
	for counter := uint64(0); len(keys) < n+skip; counter++ {
		binary.LittleEndian.PutUint64(buf[:], counter)
		key := int32(murmur3.Sum32WithSeed(buf[:], seed))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys[skip:]
}

func main() {
	keysFlag := flag.Int("keys", 1_000_000, "number of distinct keys")
	queriesFlag := flag.Int("queries", 10_000_000, "number of hit and miss queries")
	workersFlag := flag.Int("workers", 1, "number of parallel workers for building")
	seedFlag := flag.Uint64("seed", 1, "build and key-stream seed")
	flag.Parse()

	numKeys := *keysFlag
	numQueries := *queriesFlag

	fmt.Printf("generating %d keys...\n", numKeys)
	members := keyStream(uint32(*seedFlag), numKeys, 0)
	nonMembers := keyStream(uint32(*seedFlag), numKeys, numKeys)

	set := fixedset.New(
		fixedset.WithSeed(*seedFlag),
		fixedset.WithWorkers(*workersFlag),
	)

	buildStart := time.Now()
	if err := set.Initialize(members); err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}
	buildElapsed := time.Since(buildStart)
	fmt.Printf("build: %v (%.2f Mkeys/s, workers=%d)\n",
		buildElapsed, float64(numKeys)/buildElapsed.Seconds()/1e6, *workersFlag)

	// Query throughput: hits and misses separately, cycling through the
	// generated streams. hits/misses counters keep the loops from being
	// optimized away.
	hits := 0
	queryStart := time.Now()
	for i := 0; i < numQueries; i++ {
		if set.Contains(members[i%numKeys]) {
			hits++
		}
	}
	hitElapsed := time.Since(queryStart)

	misses := 0
	queryStart = time.Now()
	for i := 0; i < numQueries; i++ {
		if !set.Contains(nonMembers[i%numKeys]) {
			misses++
		}
	}
	missElapsed := time.Since(queryStart)

	if hits != numQueries || misses != numQueries {
		fmt.Fprintf(os.Stderr, "membership mismatch: %d/%d hits, %d/%d misses\n",
			hits, numQueries, misses, numQueries)
		os.Exit(1)
	}

	fmt.Printf("query (hit):  %.1f ns/op (%.2f Mops/s)\n",
		float64(hitElapsed.Nanoseconds())/float64(numQueries),
		float64(numQueries)/hitElapsed.Seconds()/1e6)
	fmt.Printf("query (miss): %.1f ns/op (%.2f Mops/s)\n",
		float64(missElapsed.Nanoseconds())/float64(numQueries),
		float64(numQueries)/missElapsed.Seconds()/1e6)

	if rss := maxRSS(); rss > 0 {
		fmt.Printf("peak RSS: %.1f MiB\n", float64(rss)/(1<<20))
	}
}
