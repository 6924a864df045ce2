package parser

import (
	"sync"

	"github.com/minio/highwayhash"
	"github.com/viant/yamlast/ast"
)

var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// cache memoizes built programs by a content hash of the source.
type cache struct {
	mu       sync.RWMutex
	programs map[uint64]*ast.Program
}

func newCache() *cache {
	return &cache{programs: map[uint64]*ast.Program{}}
}

func hash(data []byte) (uint64, error) {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	_, err = h.Write(data)
	return h.Sum64(), err
}

func (c *cache) lookup(src []byte) (*ast.Program, bool) {
	sum, err := hash(src)
	if err != nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	program, ok := c.programs[sum]
	return program, ok
}

func (c *cache) store(src []byte, program *ast.Program) {
	sum, err := hash(src)
	if err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.programs[sum] = program
}
