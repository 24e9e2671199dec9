package scratch

import (
	"sync"
	"testing"
)

func TestEnsure(t *testing.T) {
	buf, grown := Ensure[uint32](nil, 16)
	if !grown || len(buf) != 16 {
		t.Fatalf("Ensure(nil, 16) = len %d, grown %v", len(buf), grown)
	}
	buf[3] = 7

	smaller, grown := Ensure(buf, 8)
	if grown || len(smaller) != 8 || smaller[3] != 7 {
		t.Errorf("shrink reallocated or lost contents: len %d, grown %v", len(smaller), grown)
	}

	again, grown := Ensure(smaller, 16)
	if grown || len(again) != 16 {
		t.Errorf("regrow within capacity allocated: grown %v", grown)
	}

	if b, _ := Ensure(buf, -1); len(b) != 0 {
		t.Errorf("Ensure(-1) len = %d, want 0", len(b))
	}
}

func TestSetReuse(t *testing.T) {
	var s Set
	s.Source(100)
	s.Dest(400)
	s.Bloom(400, 20)
	s.ErrorRows(6 * 20)
	if got := s.Allocs(); got != 6 {
		t.Fatalf("Allocs() = %d, want 6", got)
	}

	for i := 0; i < 10; i++ {
		s.Source(100)
		s.Dest(400)
		s.Bloom(400, 20)
		s.ErrorRows(6 * 20)
	}
	if got := s.Allocs(); got != 6 {
		t.Errorf("Allocs() after reuse = %d, want 6", got)
	}

	s.Dest(800)
	if got := s.Allocs(); got != 7 {
		t.Errorf("Allocs() after growth = %d, want 7", got)
	}

	want := 4 * (100 + 800 + 400 + 400 + 20 + 120)
	if got := s.Bytes(); got != want {
		t.Errorf("Bytes() = %d, want %d", got, want)
	}

	s.Release()
	if s.Bytes() != 0 || s.Allocs() != 7 {
		t.Errorf("after Release: Bytes %d, Allocs %d", s.Bytes(), s.Allocs())
	}
}

func TestSetSteadyStateAllocs(t *testing.T) {
	var s Set
	s.Dest(64 * 64)
	s.Bloom(64*64, 64)
	allocs := testing.AllocsPerRun(100, func() {
		s.Dest(64 * 64)
		s.Bloom(64*64, 64)
	})
	if allocs != 0 {
		t.Errorf("AllocsPerRun = %v, want 0", allocs)
	}
}

type worker struct{ id int }

func TestPoolSameValue(t *testing.T) {
	created := 0
	p := NewPool(0, IntHasher, func(id int) *worker {
		created++
		return &worker{id: id}
	})

	a := p.Get(1)
	b := p.Get(1)
	c := p.Get(2)
	if a != b {
		t.Error("Get(1) returned different values")
	}
	if a == c || c.id != 2 {
		t.Error("Get(2) returned the wrong value")
	}
	if created != 2 {
		t.Errorf("created = %d, want 2", created)
	}

	st := p.Stats()
	if st.Hits != 1 || st.Misses != 2 || st.Len != 2 {
		t.Errorf("Stats() = %+v, want 1 hit, 2 misses, len 2", st)
	}
	if st.Capacity != DefaultCapacity*ShardCount {
		t.Errorf("Capacity = %d, want %d", st.Capacity, DefaultCapacity*ShardCount)
	}

	p.ResetStats()
	if st := p.Stats(); st.Hits != 0 || st.Misses != 0 {
		t.Errorf("after ResetStats: %+v", st)
	}
}

func TestPoolHitAllocs(t *testing.T) {
	p := NewPool(4, IntHasher, func(id int) *worker { return &worker{id: id} })
	p.Get(7)
	allocs := testing.AllocsPerRun(100, func() {
		_ = p.Get(7)
	})
	if allocs != 0 {
		t.Errorf("AllocsPerRun = %v, want 0", allocs)
	}
}

func TestPoolEviction(t *testing.T) {
	// A constant hasher puts every key in one shard.
	p := NewPool(2, func(int) uint64 { return 0 }, func(id int) *worker { return &worker{id: id} })

	p.Get(1)
	p.Get(2)
	p.Get(1) // 2 is now the least recently used
	p.Get(3)

	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	seen := map[int]bool{}
	p.Each(func(k int, _ *worker) { seen[k] = true })
	if !seen[1] || !seen[3] || seen[2] {
		t.Errorf("entries = %v, want 1 and 3", seen)
	}
	if ev := p.Stats().Evictions; ev != 1 {
		t.Errorf("Evictions = %d, want 1", ev)
	}
}

func TestPoolDelete(t *testing.T) {
	p := NewPool(0, IntHasher, func(id int) *worker { return &worker{id: id} })
	first := p.Get(5)
	if !p.Delete(5) {
		t.Fatal("Delete(5) = false")
	}
	if p.Delete(5) {
		t.Error("second Delete(5) = true")
	}
	if p.Get(5) == first {
		t.Error("Get after Delete returned the old value")
	}
}

func TestPoolConcurrent(t *testing.T) {
	var mu sync.Mutex
	created := map[int]int{}
	p := NewPool(0, IntHasher, func(id int) *worker {
		mu.Lock()
		created[id]++
		mu.Unlock()
		return &worker{id: id}
	})

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if w := p.Get(i % 32); w.id != i%32 {
					t.Errorf("Get(%d).id = %d", i%32, w.id)
					return
				}
			}
		}()
	}
	wg.Wait()

	for id, n := range created {
		if n != 1 {
			t.Errorf("key %d created %d times", id, n)
		}
	}
}
