package ecs

import "fmt"

// Entity is an opaque handle identifying one logical object in a World.
// Two entities are equal iff their indices are equal; there is no generation
// counter, so an index recycled after a despawn aliases its predecessor.
type Entity uint32

// Index returns the raw index backing the handle.
func (e Entity) Index() uint32 {
	return uint32(e)
}

func (e Entity) String() string {
	return fmt.Sprintf("entity(%d)", uint32(e))
}
