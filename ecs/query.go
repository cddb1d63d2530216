package ecs

// Entry pairs an entity with a copy of one of its component values.
type Entry[T any] struct {
	Entity Entity
	Value  T
}

// Query returns every live entity currently holding a T, paired with a copy
// of its value, in ascending entity order. The snapshot is taken under T's
// table read lock against a snapshot of the live set: no duplicates, no rows
// for entities that were dead at the instant the snapshot was taken.
// Entities may of course die immediately after Query returns; callers must
// tolerate that, as with any live concurrent store.
func Query[T any](w *World) []Entry[T] {
	t, ok := tableOf[T](w.components)
	if !ok {
		return nil
	}
	live := w.entities.Alive()

	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Entry[T], 0, min(len(live), t.rows.Len()))
	for _, e := range live {
		if v, ok := t.rows.Get(e); ok {
			out = append(out, Entry[T]{Entity: e, Value: v})
		}
	}
	return out
}

// QueryEntities returns just the live entities currently holding a T.
func QueryEntities[T any](w *World) []Entity {
	entries := Query[T](w)
	out := make([]Entity, len(entries))
	for i, entry := range entries {
		out[i] = entry.Entity
	}
	return out
}
