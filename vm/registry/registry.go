package registry

import (
	"fmt"

	"github.com/spacemeshos/go-checkpointvm/vm/core"
)

// New creates Registry instance.
func New() *Registry {
	return &Registry{scripts: map[core.Hash32]core.Handler{}}
}

// Registry stores mapping from code hash to script handler.
type Registry struct {
	scripts map[core.Hash32]core.Handler
}

// Get script handler for the code hash if it exists.
func (r *Registry) Get(codeHash core.Hash32) core.Handler {
	return r.scripts[codeHash]
}

// Register handler for the code hash. Panics if code hash is already taken.
func (r *Registry) Register(codeHash core.Hash32, handler core.Handler) {
	if _, exist := r.scripts[codeHash]; exist {
		panic(fmt.Sprintf("%x already register", codeHash))
	}
	r.scripts[codeHash] = handler
}

// CodeHashes returns every registered code hash.
func (r *Registry) CodeHashes() []core.Hash32 {
	rst := make([]core.Hash32, 0, len(r.scripts))
	for codeHash := range r.scripts {
		rst = append(rst, codeHash)
	}
	return rst
}
