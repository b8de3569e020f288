// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deporder/core"
)

// TestConcurrentAddDependency ensures that concurrent AddDependency calls
// are safe and every recorded edge appears.
func TestConcurrentAddDependency(t *testing.T) {
	// Implicit mode so endpoints declare themselves on the fly.
	g := core.NewGraph(core.WithImplicitNodes())
	var wg sync.WaitGroup
	wg.Add(NConcurrentAdds)

	// Launch goroutines recording X → V{i}.
	for i := 0; i < NConcurrentAdds; i++ {
		go func(id int) {
			defer wg.Done() // signal completion
			_ = g.AddDependency("X", fmt.Sprintf("V%d", id))
		}(i)
	}
	wg.Wait() // wait for all adds to finish

	// Retrieve dependencies of X; expect every edge present.
	ds, err := g.DependenciesOf("X")
	require.NoError(t, err)
	require.Len(t, ds, NConcurrentAdds, "expected %d unique dependencies", NConcurrentAdds)
	require.Equal(t, NConcurrentAdds, g.DependencyCount())
}

// TestConcurrentReadersAndCloners mixes readers with cloners on a fixed graph
// to verify read paths and snapshotting never race with each other.
func TestConcurrentReadersAndCloners(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))
	require.NoError(t, g.AddNode("C"))
	require.NoError(t, g.AddDependency("A", "B"))
	require.NoError(t, g.AddDependency("B", "C"))

	var wg sync.WaitGroup
	wg.Add(NReaders + NCloners)

	errCh := make(chan error, NReaders+NCloners)

	for i := 0; i < NReaders; i++ {
		go func() {
			defer wg.Done()
			for r := 0; r < NConcurrentRounds; r++ {
				_ = g.Nodes()
				_ = g.DependencyMap()
				if _, err := g.DependenciesOf("A"); err != nil {
					errCh <- err
					return
				}
			}
		}()
	}
	for i := 0; i < NCloners; i++ {
		go func() {
			defer wg.Done()
			for r := 0; r < NConcurrentRounds; r++ {
				c := g.Clone()
				if c.DependencyCount() != 2 {
					errCh <- fmt.Errorf("clone lost edges: %d", c.DependencyCount())
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}
}
