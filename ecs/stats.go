package ecs

// TableStats describes one component table.
type TableStats struct {
	Type string
	Rows int
}

// WorldStats is a point-in-time snapshot of the World's storage, used by
// diagnostics such as the debug UI and the stress harness. Counts from
// different structures are each taken under their own lock, so they can be
// mutually slightly stale.
type WorldStats struct {
	EntityCount   int
	TableCount    int
	ResourceCount int
	Tables        []TableStats
	ResourceTypes []string
}

// Stats collects a storage snapshot.
func (w *World) Stats() WorldStats {
	stats := WorldStats{
		EntityCount: w.entities.AliveCount(),
		TableCount:  w.components.TableCount(),
	}

	for _, key := range w.components.Types() {
		t, ok := w.components.lookup(key)
		if !ok {
			continue
		}
		stats.Tables = append(stats.Tables, TableStats{
			Type: key.String(),
			Rows: t.rowCount(),
		})
	}

	for _, key := range w.resources.Types() {
		stats.ResourceTypes = append(stats.ResourceTypes, key.String())
	}
	stats.ResourceCount = len(stats.ResourceTypes)
	return stats
}
