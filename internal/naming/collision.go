package naming

import (
	"fmt"
	"path/filepath"
)

// CollisionResolver tracks output paths claimed by input files and resolves
// duplicates by appending " - dupN" suffixes. Collisions happen when -o
// rebases inputs with the same base name from different directories (or
// differing only in extension case) into one output directory. The pipeline
// is strictly sequential, so no locking is needed.
type CollisionResolver struct {
	owners   map[string]string // output path -> input path that owns it
	counters map[string]int    // base output path -> next suffix counter
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{
		owners:   make(map[string]string),
		counters: make(map[string]int),
	}
}

// Resolve returns the final output path for input. If requestedOutput is
// unclaimed (or already owned by input), it is returned as-is; otherwise a
// " - dupN" variant is generated.
func (cr *CollisionResolver) Resolve(input, requestedOutput string) string {
	owner, exists := cr.owners[requestedOutput]
	if !exists || owner == input {
		cr.owners[requestedOutput] = input
		return requestedOutput
	}

	dir, stem, ext := SplitPath(requestedOutput)

	counter := cr.counters[requestedOutput]
	if counter == 0 {
		counter = 1
	}

	for {
		candidate := filepath.Join(dir, fmt.Sprintf("%s - dup%d%s", stem, counter, ext))
		cOwner, cExists := cr.owners[candidate]
		if !cExists || cOwner == input {
			cr.counters[requestedOutput] = counter + 1
			cr.owners[candidate] = input
			return candidate
		}
		counter++
	}
}
