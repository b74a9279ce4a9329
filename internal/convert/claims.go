package convert

import (
	"fmt"
	"sync"

	"lyricpro/internal/failure"
)

// OutputClaims hands each output path to at most one input. Runs sharing a
// set fail instead of overwriting each other's documents.
type OutputClaims struct {
	mu     sync.Mutex
	owners map[string]string
}

// NewOutputClaims returns an empty claim set.
func NewOutputClaims() *OutputClaims {
	return &OutputClaims{owners: make(map[string]string)}
}

// claim reserves output for input. Claiming the same output again, from any
// input, is an output write error.
func (c *OutputClaims) claim(output, input string) error {
	key := absPath(output)
	c.mu.Lock()
	defer c.mu.Unlock()
	if owner, taken := c.owners[key]; taken {
		return failure.Wrap(failure.ErrOutputWrite, "write", "claim output", output,
			fmt.Errorf("already written from %s", owner))
	}
	c.owners[key] = input
	return nil
}

// release gives output back after a failed write.
func (c *OutputClaims) release(output string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.owners, absPath(output))
}
