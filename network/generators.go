package network

import (
	"evogamesim/interfaces"
	"fmt"
)

const maxRegularAttempts = 100

// FromConfig builds the configured network type, randomness comes from rng only.
func FromConfig(config interfaces.INetworkConfig, rng interfaces.IRandom) (*Graph, error) {
	n := config.Nodes()
	switch config.Type() {
	case interfaces.COMPLETE_NETWORK:
		return Complete(n)
	case interfaces.ERDOS_RENYI_NETWORK:
		edges := config.Edges()
		if edges == 0 {
			edges = n * config.Degree() / 2
		}
		return ErdosRenyi(n, edges, rng)
	case interfaces.RANDOM_REGULAR_NETWORK:
		return RandomRegular(n, config.Degree(), rng)
	case interfaces.BARABASI_ALBERT_NETWORK:
		return BarabasiAlbert(n, config.Degree(), rng)
	case interfaces.WATTS_STROGATZ_NETWORK:
		return WattsStrogatz(n, config.Degree(), config.Rewiring(), rng)
	case interfaces.COMMUNITY_NETWORK:
		return Community(n, config.Degree(), config.PIn(), config.POut(), config.Communities(), rng)
	}
	return nil, fmt.Errorf("%w: %v", interfaces.ErrUnknownNetwork, config.Type())
}

func Complete(n int) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: complete graph needs at least one node, got %v", interfaces.ErrInvalidParameters, n)
	}
	b := newBuilder(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			b.connect(int64(i), int64(j))
		}
	}
	return b.freeze(), nil
}

// ErdosRenyi draws a G(n, m) graph with exactly m edges chosen uniformly.
func ErdosRenyi(n int, m int, rng interfaces.IRandom) (*Graph, error) {
	if n < 1 || m < 0 || m > n*(n-1)/2 {
		return nil, fmt.Errorf("%w: G(n,m) with n=%v m=%v", interfaces.ErrInvalidParameters, n, m)
	}
	b := newBuilder(n)
	for added := 0; added < m; {
		if b.connect(int64(rng.Intn(n)), int64(rng.Intn(n))) {
			added++
		}
	}
	return b.freeze(), nil
}

// RandomRegular pairs degree stubs at random, rejecting self loops and parallel edges,
// and restarts when the remaining stubs cannot be paired.
func RandomRegular(n int, d int, rng interfaces.IRandom) (*Graph, error) {
	if n < 1 || d < 0 || d >= n || (n*d)%2 != 0 {
		return nil, fmt.Errorf("%w: random regular graph with n=%v d=%v", interfaces.ErrInvalidParameters, n, d)
	}
	for attempt := 0; attempt < maxRegularAttempts; attempt++ {
		b := newBuilder(n)
		if b.pairStubs(n, d, rng) {
			return b.freeze(), nil
		}
	}
	return nil, fmt.Errorf("%w: no random regular graph with n=%v d=%v after %v attempts", interfaces.ErrInvalidParameters, n, d, maxRegularAttempts)
}

func (b *builder) pairStubs(n int, d int, rng interfaces.IRandom) bool {
	stubs := make([]int64, 0, n*d)
	for i := 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs = append(stubs, int64(i))
		}
	}
	for len(stubs) > 0 {
		paired := false
		for tries := 0; tries < 10*len(stubs); tries++ {
			i, j := rng.Intn(len(stubs)), rng.Intn(len(stubs))
			if i == j || !b.connect(stubs[i], stubs[j]) {
				continue
			}
			if i < j {
				i, j = j, i
			}
			stubs[i] = stubs[len(stubs)-1]
			stubs = stubs[:len(stubs)-1]
			stubs[j] = stubs[len(stubs)-1]
			stubs = stubs[:len(stubs)-1]
			paired = true
			break
		}
		if !paired {
			return false
		}
	}
	return true
}

// BarabasiAlbert grows a graph by preferential attachment, every new node brings m edges.
func BarabasiAlbert(n int, m int, rng interfaces.IRandom) (*Graph, error) {
	if m < 1 || m >= n {
		return nil, fmt.Errorf("%w: Barabasi-Albert graph with n=%v m=%v", interfaces.ErrInvalidParameters, n, m)
	}
	b := newBuilder(n)
	targets := make([]int64, 0, m)
	for i := 0; i < m; i++ {
		targets = append(targets, int64(i))
	}
	repeated := make([]int64, 0, 2*n*m)
	for source := int64(m); source < int64(n); source++ {
		for _, target := range targets {
			b.connect(source, target)
		}
		repeated = append(repeated, targets...)
		for i := 0; i < m; i++ {
			repeated = append(repeated, source)
		}
		targets = chooseDistinct(repeated, m, rng)
	}
	return b.freeze(), nil
}

// chooseDistinct picks m different values from a multiset, so frequent values are preferred
func chooseDistinct(pool []int64, m int, rng interfaces.IRandom) []int64 {
	chosen := make([]int64, 0, m)
	seen := make(map[int64]bool, m)
	for len(chosen) < m {
		v := pool[rng.Intn(len(pool))]
		if !seen[v] {
			seen[v] = true
			chosen = append(chosen, v)
		}
	}
	return chosen
}

// WattsStrogatz builds a ring lattice with k/2 neighbors per side and rewires every edge with probability p.
func WattsStrogatz(n int, k int, p float64, rng interfaces.IRandom) (*Graph, error) {
	if n < 1 || k < 0 || k >= n || p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: Watts-Strogatz graph with n=%v k=%v p=%v", interfaces.ErrInvalidParameters, n, k, p)
	}
	b := newBuilder(n)
	b.ring(0, n, k, p, rng)
	return b.freeze(), nil
}

// ring lays a rewired ring lattice over the nodes offset..offset+n-1
func (b *builder) ring(offset int64, n int, k int, p float64, rng interfaces.IRandom) {
	for j := 1; j <= k/2; j++ {
		for u := 0; u < n; u++ {
			b.connect(offset+int64(u), offset+int64((u+j)%n))
		}
	}
	for j := 1; j <= k/2; j++ {
		for u := 0; u < n; u++ {
			if rng.Uniform() >= p {
				continue
			}
			from, to := offset+int64(u), offset+int64((u+j)%n)
			if !b.g.HasEdgeBetween(from, to) || b.degree(from) >= n-1 {
				continue
			}
			w := offset + int64(rng.Intn(n))
			for w == from || b.g.HasEdgeBetween(from, w) {
				w = offset + int64(rng.Intn(n))
			}
			b.disconnect(from, to)
			b.connect(from, w)
		}
	}
}

// Community joins Watts-Strogatz blocks, every pair of blocks gets one random bridge with probability pOut.
// Nodes that do not fit evenly into the blocks are dropped.
func Community(n int, k int, pIn float64, pOut float64, communities int, rng interfaces.IRandom) (*Graph, error) {
	if communities < 1 || n < communities || pOut < 0 || pOut > 1 {
		return nil, fmt.Errorf("%w: community graph with n=%v communities=%v pOut=%v", interfaces.ErrInvalidParameters, n, communities, pOut)
	}
	size := n / communities
	if k >= size || k < 0 || pIn < 0 || pIn > 1 {
		return nil, fmt.Errorf("%w: community blocks of %v nodes with k=%v pIn=%v", interfaces.ErrInvalidParameters, size, k, pIn)
	}
	b := newBuilder(size * communities)
	for c := 0; c < communities; c++ {
		b.ring(int64(c*size), size, k, pIn, rng)
	}
	for i := 0; i < communities; i++ {
		for j := i + 1; j < communities; j++ {
			if rng.Uniform() < pOut {
				b.connect(int64(i*size+rng.Intn(size)), int64(j*size+rng.Intn(size)))
			}
		}
	}
	return b.freeze(), nil
}
