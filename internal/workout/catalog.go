package workout

import (
	"maps"
	"slices"
)

// Catalog is the read-only exercise lookup the engine depends on. Implementations must be safe for concurrent
// reads.
type Catalog interface {
	// Tag returns the descriptive tag for an exercise, if the catalog has one.
	Tag(exerciseID string) (ExerciseTag, bool)
	// ExercisesByCategory lists exercises in a catalog category in a stable order.
	ExercisesByCategory(category string) []Exercise
}

// CatalogEntry is one exercise and its optional tag, used to build a [MemoryCatalog].
type CatalogEntry struct {
	Exercise Exercise
	Tag      *ExerciseTag
}

// MemoryCatalog is an immutable in-memory [Catalog].
type MemoryCatalog struct {
	tags       map[string]ExerciseTag
	byCategory map[string][]Exercise
}

// NewMemoryCatalog indexes entries. Category listings keep the order of entries; a repeated exercise id
// keeps its first occurrence.
func NewMemoryCatalog(entries []CatalogEntry) *MemoryCatalog {
	c := &MemoryCatalog{
		tags:       make(map[string]ExerciseTag, len(entries)),
		byCategory: make(map[string][]Exercise),
	}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Exercise.ID] {
			continue
		}
		seen[e.Exercise.ID] = true
		c.byCategory[e.Exercise.Category] = append(c.byCategory[e.Exercise.Category], e.Exercise)
		if e.Tag != nil {
			c.tags[e.Exercise.ID] = cloneTag(*e.Tag)
		}
	}
	return c
}

// Tag implements [Catalog].
func (c *MemoryCatalog) Tag(exerciseID string) (ExerciseTag, bool) {
	t, ok := c.tags[exerciseID]
	if !ok {
		return ExerciseTag{}, false
	}
	return cloneTag(t), true
}

// ExercisesByCategory implements [Catalog]. The returned slice is a copy.
func (c *MemoryCatalog) ExercisesByCategory(category string) []Exercise {
	return slices.Clone(c.byCategory[category])
}

// Len returns the number of exercises in the catalog.
func (c *MemoryCatalog) Len() int {
	n := 0
	for _, exs := range c.byCategory {
		n += len(exs)
	}
	return n
}

func cloneTag(t ExerciseTag) ExerciseTag {
	t.PositionRelevance = maps.Clone(t.PositionRelevance)
	t.SideRelevance = maps.Clone(t.SideRelevance)
	return t
}
