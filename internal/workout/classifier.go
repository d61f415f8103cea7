package workout

import "strings"

// SlotCategory is the structural role an exercise plays in a day.
type SlotCategory string

const (
	SlotPrimarySquat     SlotCategory = "primary_squat"
	SlotPrimaryHinge     SlotCategory = "primary_hinge"
	SlotPrimaryPress     SlotCategory = "primary_press"
	SlotPrimaryPull      SlotCategory = "primary_pull"
	SlotAccessorySquat   SlotCategory = "accessory_squat"
	SlotAccessoryHinge   SlotCategory = "accessory_hinge"
	SlotUnilateralSquat  SlotCategory = "unilateral_squat"
	SlotUnilateralHinge  SlotCategory = "unilateral_hinge"
	SlotHorizontalPress  SlotCategory = "horizontal_press"
	SlotVerticalPress    SlotCategory = "vertical_press"
	SlotUnilateralPress  SlotCategory = "unilateral_press"
	SlotHorizontalPull   SlotCategory = "horizontal_pull"
	SlotVerticalPull     SlotCategory = "vertical_pull"
	SlotUnilateralPull   SlotCategory = "unilateral_pull"
	SlotCoreVariation    SlotCategory = "core_variation"
	SlotIsoHold          SlotCategory = "iso_hold"
	SlotAntiRotation     SlotCategory = "anti_rotation"
	SlotConditioning     SlotCategory = "conditioning"
	SlotSprint           SlotCategory = "sprint"
	SlotPlyometric       SlotCategory = "plyometric"
	SlotLoadedCarry      SlotCategory = "loaded_carry"
	SlotMobility         SlotCategory = "mobility"
	SlotActivation       SlotCategory = "activation"
)

// defaultSlotCategory is where exercises land when no rule matches.
const defaultSlotCategory = SlotAccessorySquat

// AllSlotCategories lists every slot category in declaration order.
//
//nolint:gochecknoglobals // closed enumeration.
var AllSlotCategories = []SlotCategory{
	SlotPrimarySquat, SlotPrimaryHinge, SlotPrimaryPress, SlotPrimaryPull,
	SlotAccessorySquat, SlotAccessoryHinge, SlotUnilateralSquat, SlotUnilateralHinge,
	SlotHorizontalPress, SlotVerticalPress, SlotUnilateralPress,
	SlotHorizontalPull, SlotVerticalPull, SlotUnilateralPull,
	SlotCoreVariation, SlotIsoHold, SlotAntiRotation,
	SlotConditioning, SlotSprint, SlotPlyometric, SlotLoadedCarry,
	SlotMobility, SlotActivation,
}

// SlotKind is the coarse grouping used for time estimation.
type SlotKind string

const (
	KindActivation   SlotKind = "activation"
	KindPrimary      SlotKind = "primary"
	KindSecondary    SlotKind = "secondary"
	KindAccessory    SlotKind = "accessory"
	KindConditioning SlotKind = "conditioning"
	KindCore         SlotKind = "core"
)

// Kind maps a slot category to its time-estimation kind.
func (s SlotCategory) Kind() SlotKind {
	switch s {
	case SlotPrimarySquat, SlotPrimaryHinge, SlotPrimaryPress, SlotPrimaryPull:
		return KindPrimary
	case SlotAccessorySquat, SlotAccessoryHinge, SlotUnilateralSquat, SlotUnilateralHinge, SlotPlyometric:
		return KindSecondary
	case SlotHorizontalPress, SlotVerticalPress, SlotUnilateralPress,
		SlotHorizontalPull, SlotVerticalPull, SlotUnilateralPull, SlotLoadedCarry:
		return KindAccessory
	case SlotCoreVariation, SlotIsoHold, SlotAntiRotation:
		return KindCore
	case SlotConditioning, SlotSprint:
		return KindConditioning
	case SlotMobility, SlotActivation:
		return KindActivation
	default:
		return KindAccessory
	}
}

// IsValid reports whether s is one of the known slot categories.
func (s SlotCategory) IsValid() bool {
	for _, c := range AllSlotCategories {
		if c == s {
			return true
		}
	}
	return false
}

// SectionKind is the role of a whole template section.
type SectionKind string

const (
	SectionActivation   SectionKind = "activation"
	SectionStrength     SectionKind = "strength"
	SectionConditioning SectionKind = "conditioning"
)

//nolint:gochecknoglobals // keyword tables.
var (
	activationSectionKeywords   = []string{"warm", "activation", "prep", "mobility"}
	conditioningSectionKeywords = []string{"conditioning", "energy", "cardio"}
)

// SectionKindFor classifies a section by its name.
func SectionKindFor(name string) SectionKind {
	lower := strings.ToLower(name)
	switch {
	case containsAny(lower, activationSectionKeywords...):
		return SectionActivation
	case containsAny(lower, conditioningSectionKeywords...):
		return SectionConditioning
	default:
		return SectionStrength
	}
}

// ClassifySlot maps a template exercise to exactly one slot category. It never fails: the rules are tried in a
// fixed priority order and the last one always matches.
//
//  1. Section name: activation/prep/mobility and conditioning/energy/cardio sections.
//  2. Catalog tag movement pattern, refined by substrings of the category slot and exercise id.
//  3. Category slot naming a slot category outright, then keyword heuristics on the exercise text.
//  4. Section name defaults, then accessory squat.
func ClassifySlot(sectionName string, ex WorkoutExercise, tag *ExerciseTag) SlotCategory {
	text := strings.ToLower(ex.CategorySlot + " " + ex.ExerciseID)

	switch SectionKindFor(sectionName) {
	case SectionActivation:
		if strings.Contains(strings.ToLower(sectionName), "mobility") || strings.Contains(text, "mobility") {
			return SlotMobility
		}
		return SlotActivation
	case SectionConditioning:
		if (tag != nil && tag.Pattern == PatternSprint) || strings.Contains(text, "sprint") {
			return SlotSprint
		}
		return SlotConditioning
	case SectionStrength:
	}

	if tag != nil {
		if slot, ok := classifyByPattern(tag.Pattern, text); ok {
			return slot
		}
	}

	if slot := SlotCategory(strings.ToLower(strings.TrimSpace(ex.CategorySlot))); slot.IsValid() {
		return slot
	}
	if slot, ok := classifyByText(text); ok {
		return slot
	}
	return classifyBySectionName(sectionName)
}

func classifyByPattern(pattern MovementPattern, text string) (SlotCategory, bool) {
	unilateral := isUnilateral(text)
	primary := isPrimary(text)

	switch pattern {
	case PatternSquat:
		switch {
		case unilateral:
			return SlotUnilateralSquat, true
		case primary:
			return SlotPrimarySquat, true
		default:
			return SlotAccessorySquat, true
		}
	case PatternHinge:
		switch {
		case unilateral:
			return SlotUnilateralHinge, true
		case primary:
			return SlotPrimaryHinge, true
		default:
			return SlotAccessoryHinge, true
		}
	case PatternLunge:
		return SlotUnilateralSquat, true
	case PatternPush:
		switch {
		case unilateral:
			return SlotUnilateralPress, true
		case containsAny(text, "overhead", "vertical", "ohp", "landmine"):
			return SlotVerticalPress, true
		case primary:
			return SlotPrimaryPress, true
		default:
			return SlotHorizontalPress, true
		}
	case PatternPull:
		switch {
		case unilateral:
			return SlotUnilateralPull, true
		case containsAny(text, "pull-up", "pullup", "chin", "pulldown", "vertical"):
			return SlotVerticalPull, true
		case primary:
			return SlotPrimaryPull, true
		default:
			return SlotHorizontalPull, true
		}
	case PatternCore:
		return classifyCore(text), true
	case PatternCarry:
		return SlotLoadedCarry, true
	case PatternPlyometric:
		return SlotPlyometric, true
	case PatternSprint:
		return SlotSprint, true
	case PatternConditioning:
		return SlotConditioning, true
	case PatternMobility:
		return SlotMobility, true
	default:
		return "", false
	}
}

func classifyCore(text string) SlotCategory {
	switch {
	case containsAny(text, "plank", "hold", "iso", "hollow"):
		return SlotIsoHold
	case containsAny(text, "pallof", "rotation", "anti", "chop"):
		return SlotAntiRotation
	default:
		return SlotCoreVariation
	}
}

// classifyByText is the heuristic layer for untagged exercises.
func classifyByText(text string) (SlotCategory, bool) {
	switch {
	case containsAny(text, "sprint", "shuttle", "bunker run"):
		return SlotSprint, true
	case containsAny(text, "conditioning", "bike", "erg", "interval"):
		return SlotConditioning, true
	case containsAny(text, "jump", "bound", "plyo", "hop"):
		return SlotPlyometric, true
	case containsAny(text, "carry", "farmer", "suitcase"):
		return SlotLoadedCarry, true
	case containsAny(text, "lunge", "split squat", "step-up", "step up"):
		return SlotUnilateralSquat, true
	case containsAny(text, "squat"):
		return classifyByPattern(PatternSquat, text)
	case containsAny(text, "hinge", "deadlift", "rdl", "hip thrust", "good morning"):
		return classifyByPattern(PatternHinge, text)
	case containsAny(text, "press", "push"):
		return classifyByPattern(PatternPush, text)
	case containsAny(text, "row", "pull", "chin"):
		return classifyByPattern(PatternPull, text)
	case containsAny(text, "core", "plank", "pallof", "dead bug", "hollow"):
		return classifyCore(text), true
	default:
		return "", false
	}
}

func classifyBySectionName(sectionName string) SlotCategory {
	lower := strings.ToLower(sectionName)
	switch {
	case containsAny(lower, "core", "trunk"):
		return SlotCoreVariation
	case containsAny(lower, "power", "plyo", "speed"):
		return SlotPlyometric
	case containsAny(lower, "upper"):
		return SlotHorizontalPress
	case containsAny(lower, "finisher"):
		return SlotConditioning
	default:
		return defaultSlotCategory
	}
}

func isUnilateral(text string) bool {
	return containsAny(text, "single", "s/a", "s/l", "unilateral", "split", "pistol", "one-arm", "one arm")
}

func isPrimary(text string) bool {
	return containsAny(text, "primary", "main")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
