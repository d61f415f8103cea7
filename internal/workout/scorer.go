package workout

import (
	"cmp"
	"fmt"
	"slices"
)

// slotCatalogCategories maps each slot to the catalog categories searched for candidates, in search order.
func slotCatalogCategories(slot SlotCategory) []string {
	switch slot {
	case SlotPrimarySquat, SlotAccessorySquat:
		return []string{"squat"}
	case SlotUnilateralSquat:
		return []string{"lunge", "squat"}
	case SlotPrimaryHinge, SlotAccessoryHinge, SlotUnilateralHinge:
		return []string{"hinge"}
	case SlotPrimaryPress, SlotHorizontalPress, SlotVerticalPress, SlotUnilateralPress:
		return []string{"press"}
	case SlotPrimaryPull, SlotHorizontalPull, SlotVerticalPull, SlotUnilateralPull:
		return []string{"pull"}
	case SlotCoreVariation, SlotIsoHold, SlotAntiRotation:
		return []string{"core"}
	case SlotConditioning:
		return []string{"conditioning"}
	case SlotSprint:
		return []string{"sprint", "conditioning"}
	case SlotPlyometric:
		return []string{"plyometric"}
	case SlotLoadedCarry:
		return []string{"carry"}
	case SlotMobility:
		return []string{"mobility"}
	case SlotActivation:
		return []string{"activation", "mobility"}
	default:
		return []string{"squat"}
	}
}

// slotPatterns lists the movement patterns that fit a slot.
func slotPatterns(slot SlotCategory) []MovementPattern {
	switch slot {
	case SlotPrimarySquat, SlotAccessorySquat:
		return []MovementPattern{PatternSquat}
	case SlotUnilateralSquat:
		return []MovementPattern{PatternLunge, PatternSquat}
	case SlotPrimaryHinge, SlotAccessoryHinge, SlotUnilateralHinge:
		return []MovementPattern{PatternHinge}
	case SlotPrimaryPress, SlotHorizontalPress, SlotVerticalPress, SlotUnilateralPress:
		return []MovementPattern{PatternPush}
	case SlotPrimaryPull, SlotHorizontalPull, SlotVerticalPull, SlotUnilateralPull:
		return []MovementPattern{PatternPull}
	case SlotCoreVariation, SlotIsoHold, SlotAntiRotation:
		return []MovementPattern{PatternCore}
	case SlotConditioning:
		return []MovementPattern{PatternConditioning, PatternSprint}
	case SlotSprint:
		return []MovementPattern{PatternSprint}
	case SlotPlyometric:
		return []MovementPattern{PatternPlyometric}
	case SlotLoadedCarry:
		return []MovementPattern{PatternCarry}
	case SlotMobility, SlotActivation:
		return []MovementPattern{PatternMobility}
	default:
		return nil
	}
}

// DefaultExerciseIDs are the fallback picks when no tagged candidate qualifies for a slot. They are chosen
// to be complexity 1 so that every experience band may receive them.
//
//nolint:gochecknoglobals // static rule table.
var DefaultExerciseIDs = map[SlotCategory]string{
	SlotPrimarySquat:    "goblet-squat",
	SlotAccessorySquat:  "goblet-squat",
	SlotUnilateralSquat: "reverse-lunge",
	SlotPrimaryHinge:    "kettlebell-deadlift",
	SlotAccessoryHinge:  "glute-bridge",
	SlotUnilateralHinge: "single-leg-glute-bridge",
	SlotPrimaryPress:    "push-up",
	SlotHorizontalPress: "push-up",
	SlotVerticalPress:   "half-kneeling-db-press",
	SlotUnilateralPress: "half-kneeling-db-press",
	SlotPrimaryPull:     "inverted-row",
	SlotHorizontalPull:  "inverted-row",
	SlotVerticalPull:    "band-pulldown",
	SlotUnilateralPull:  "single-arm-db-row",
	SlotCoreVariation:   "dead-bug",
	SlotIsoHold:         "front-plank",
	SlotAntiRotation:    "pallof-press",
	SlotConditioning:    "bike-intervals",
	SlotSprint:          "10m-sprint",
	SlotPlyometric:      "pogo-hops",
	SlotLoadedCarry:     "farmer-carry",
	SlotMobility:        "worlds-greatest-stretch",
	SlotActivation:      "glute-bridge",
}

// complexityCeiling is the one place experience gates anything: selection never offers exercises above it.
func complexityCeiling(level ExperienceLevel) int {
	switch level {
	case ExperienceBeginner:
		return 1
	case ExperienceIntermediate:
		return 2 //nolint:mnd // complexity level
	case ExperienceAdvanced:
		return maxComplexity
	default:
		return 1
	}
}

// tagComplexity treats an unset complexity as the simplest level.
func tagComplexity(t ExerciseTag) int {
	return max(t.Complexity, 1)
}

// Selector ranks catalog exercises for a slot against a player profile.
type Selector struct {
	catalog  Catalog
	defaults map[SlotCategory]string
}

// NewSelector constructs a Selector over catalog using [DefaultExerciseIDs] as fallbacks.
func NewSelector(catalog Catalog) *Selector {
	return &Selector{catalog: catalog, defaults: DefaultExerciseIDs}
}

// ResolveCategory turns a slot category name or a raw category-slot string into a slot category.
func ResolveCategory(category string) SlotCategory {
	return ClassifySlot("", WorkoutExercise{CategorySlot: category}, nil)
}

// Select returns the best-scoring exercise for category that is not in exclude. When nothing qualifies it
// falls back to the slot's default exercise, and returns nil if there is none or it is excluded.
func (s *Selector) Select(category string, profile PlayerProfile, exclude []string) *ExerciseRecommendation {
	slot := ResolveCategory(category)
	for _, rec := range s.rank(slot, profile) {
		if !slices.Contains(exclude, rec.ExerciseID) {
			return &rec
		}
	}
	return s.fallback(slot, profile, exclude)
}

// Alternatives returns up to n candidates after the one [Selector.Select] would pick, for substitution.
func (s *Selector) Alternatives(category string, profile PlayerProfile, exclude []string, n int) []ExerciseRecommendation {
	if n <= 0 {
		return nil
	}
	slot := ResolveCategory(category)
	var (
		out     []ExerciseRecommendation
		skipped bool
	)
	for _, rec := range s.rank(slot, profile) {
		if slices.Contains(exclude, rec.ExerciseID) {
			continue
		}
		if !skipped {
			skipped = true
			continue
		}
		out = append(out, rec)
		if len(out) == n {
			break
		}
	}
	return out
}

// rank scores every tagged candidate within the complexity ceiling, best first. Ties keep catalog order:
// categories in slotCatalogCategories order, exercises in the order the catalog lists them.
func (s *Selector) rank(slot SlotCategory, profile PlayerProfile) []ExerciseRecommendation {
	profile = profile.normalized()
	ceiling := complexityCeiling(ExperienceFor(profile))

	var (
		recs []ExerciseRecommendation
		seen = make(map[string]bool)
	)
	for _, category := range slotCatalogCategories(slot) {
		for _, ex := range s.catalog.ExercisesByCategory(category) {
			if seen[ex.ID] {
				continue
			}
			seen[ex.ID] = true

			tag, ok := s.catalog.Tag(ex.ID)
			if !ok || tagComplexity(tag) > ceiling {
				continue
			}
			score, reasons := scoreExercise(slot, tag, profile)
			recs = append(recs, ExerciseRecommendation{
				ExerciseID: ex.ID,
				Exercise:   ex,
				Score:      score,
				Reasons:    reasons,
			})
		}
	}

	slices.SortStableFunc(recs, func(a, b ExerciseRecommendation) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return recs
}

func (s *Selector) fallback(slot SlotCategory, profile PlayerProfile, exclude []string) *ExerciseRecommendation {
	id, ok := s.defaults[slot]
	if !ok || slices.Contains(exclude, id) {
		return nil
	}
	if tag, tagged := s.catalog.Tag(id); tagged &&
		tagComplexity(tag) > complexityCeiling(ExperienceFor(profile.normalized())) {
		return nil
	}

	exercise := Exercise{ID: id, Name: id, Category: ""}
	for _, category := range slotCatalogCategories(slot) {
		idx := slices.IndexFunc(s.catalog.ExercisesByCategory(category), func(ex Exercise) bool {
			return ex.ID == id
		})
		if idx >= 0 {
			exercise = s.catalog.ExercisesByCategory(category)[idx]
			break
		}
	}
	return &ExerciseRecommendation{
		ExerciseID: id,
		Exercise:   exercise,
		Score:      0,
		Reasons:    []string{fmt.Sprintf("default pick for %s", slot)},
	}
}

const (
	patternBonus = 0.2
	planeBonus   = 0.1
	energyBonus  = 0.1
)

// scoreExercise is position relevance plus side relevance, weighted by pattern, plane and energy-system
// affinity.
func scoreExercise(slot SlotCategory, tag ExerciseTag, profile PlayerProfile) (float64, []string) {
	pos := tag.positionScore(profile.Position)
	side := tag.sideScore(profile.SideBias)
	reasons := []string{
		fmt.Sprintf("%s fit %d/5", profile.Position, pos),
		fmt.Sprintf("%s side fit %d/5", profile.SideBias, side),
	}

	affinity := 1.0
	if slices.Contains(slotPatterns(slot), tag.Pattern) {
		affinity += patternBonus
		reasons = append(reasons, fmt.Sprintf("%s pattern", tag.Pattern))
	}
	if plane, ok := preferredPlane(profile.SideBias); ok && tag.Plane == plane {
		affinity += planeBonus
		reasons = append(reasons, fmt.Sprintf("%s plane suits %s play", plane, profile.SideBias))
	}
	if slot.Kind() == KindConditioning && slices.Contains(preferredEnergySystems(profile.Position), tag.EnergySystem) {
		affinity += energyBonus
		reasons = append(reasons, fmt.Sprintf("%s work suits %s players", tag.EnergySystem, profile.Position))
	}

	return float64(pos+side) * affinity, reasons
}
