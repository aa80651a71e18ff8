package planner

import "github.com/kalehq/kale/internal/domain/catalog"

// pickRecipe deterministically selects the next recipe for a slot.
//
// Unused candidates are preferred; the index rotates with the size of the
// used set, so distinct recipes are cycled through before any repeats.
// For vetoed slots, exclusions carries every recipe id vetoed anywhere in
// the plan so far. Once the pool is exhausted the full candidate list is
// reused, still honoring exclusions unless that would empty the pool.
//
// The usedCount-mod-pool index is a deliberate substitute for explicit
// history tracking; changing it breaks reproducibility of generated
// plans.
func pickRecipe(candidates []catalog.Recipe, usedIDs map[uint]struct{}, exclusions map[uint]struct{}) *catalog.Recipe {
	if len(candidates) == 0 {
		return nil
	}

	available := make([]catalog.Recipe, 0, len(candidates))
	for _, r := range candidates {
		if _, used := usedIDs[r.ID]; used {
			continue
		}
		if exclusions != nil {
			if _, excluded := exclusions[r.ID]; excluded {
				continue
			}
		}
		available = append(available, r)
	}

	if len(available) > 0 {
		picked := available[len(usedIDs)%len(available)]
		return &picked
	}

	// Pool exhausted: wrap around the full candidate list.
	fallback := make([]catalog.Recipe, 0, len(candidates))
	for _, r := range candidates {
		if exclusions != nil {
			if _, excluded := exclusions[r.ID]; excluded {
				continue
			}
		}
		fallback = append(fallback, r)
	}
	if len(fallback) == 0 {
		fallback = candidates
	}
	picked := fallback[len(usedIDs)%len(fallback)]
	return &picked
}
