package workout

import (
	"testing"
)

func TestClassifySlot(t *testing.T) {
	t.Parallel()
	cat := newTestCatalog()
	tagOf := func(id string) *ExerciseTag {
		tag, ok := cat.Tag(id)
		if !ok {
			return nil
		}
		return &tag
	}

	tests := []struct {
		name    string
		section string
		ex      WorkoutExercise
		tagged  bool
		want    SlotCategory
	}{
		{"warm-up drill", "Warm-up", WorkoutExercise{ExerciseID: "band-walk"}, false, SlotActivation},
		{"mobility section", "Mobility flow", WorkoutExercise{ExerciseID: "cat-cow"}, false, SlotMobility},
		{"sprint in conditioning", "Conditioning", WorkoutExercise{ExerciseID: "10m-sprint"}, true, SlotSprint},
		{"bike in conditioning", "Energy systems", WorkoutExercise{ExerciseID: "bike-intervals"}, true, SlotConditioning},
		{
			"primary squat from tag and slot text", "Strength",
			WorkoutExercise{ExerciseID: "back-squat", CategorySlot: "primary_squat"}, true, SlotPrimarySquat,
		},
		{"squat tag without primary hint", "Strength", WorkoutExercise{ExerciseID: "goblet-squat"}, true, SlotAccessorySquat},
		{"lunge tag", "Strength", WorkoutExercise{ExerciseID: "reverse-lunge"}, true, SlotUnilateralSquat},
		{"single-leg hinge", "Strength", WorkoutExercise{ExerciseID: "single-leg-glute-bridge"}, true, SlotUnilateralHinge},
		{"plank is an iso hold", "Strength", WorkoutExercise{ExerciseID: "front-plank"}, true, SlotIsoHold},
		{"pallof is anti-rotation", "Strength", WorkoutExercise{ExerciseID: "pallof-press"}, true, SlotAntiRotation},
		{"pulldown is a vertical pull", "Strength", WorkoutExercise{ExerciseID: "band-pulldown"}, true, SlotVerticalPull},
		{"single-arm row", "Strength", WorkoutExercise{ExerciseID: "single-arm-db-row"}, true, SlotUnilateralPull},
		{"explicit category slot", "Strength", WorkoutExercise{CategorySlot: "vertical_pull"}, false, SlotVerticalPull},
		{"text heuristic for erg", "Strength", WorkoutExercise{ExerciseID: "rower-erg"}, false, SlotConditioning},
		{"text heuristic for carry", "Strength", WorkoutExercise{ExerciseID: "suitcase-carry"}, false, SlotLoadedCarry},
		{"text heuristic for press", "Strength", WorkoutExercise{ExerciseID: "landmine-press"}, false, SlotVerticalPress},
		{"text heuristic for split squat", "Strength", WorkoutExercise{ExerciseID: "split squat"}, false, SlotUnilateralSquat},
		{"core section default", "Core", WorkoutExercise{ExerciseID: "mystery"}, false, SlotCoreVariation},
		{"upper section default", "Upper body", WorkoutExercise{ExerciseID: "mystery"}, false, SlotHorizontalPress},
		{"fallback", "Strength", WorkoutExercise{ExerciseID: "mystery"}, false, SlotAccessorySquat},
		{"empty everything", "", WorkoutExercise{}, false, SlotAccessorySquat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var tag *ExerciseTag
			if tt.tagged {
				tag = tagOf(tt.ex.ExerciseID)
				if tag == nil {
					t.Fatalf("test catalog has no tag for %q", tt.ex.ExerciseID)
				}
			}
			if got := ClassifySlot(tt.section, tt.ex, tag); got != tt.want {
				t.Errorf("ClassifySlot() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifySlot_isTotal(t *testing.T) {
	t.Parallel()
	sections := []string{"", "Warm-up", "Strength", "Conditioning", "Power", "Finisher", "???"}
	texts := []string{"", "x", "primary", "single squat", "OHP", "chin", "hollow", "bunker run", "Mobility"}
	patterns := []MovementPattern{
		"", PatternSquat, PatternHinge, PatternLunge, PatternPush, PatternPull, PatternCore,
		PatternCarry, PatternPlyometric, PatternSprint, PatternConditioning, PatternMobility, "unknown",
	}
	for _, section := range sections {
		for _, text := range texts {
			for _, p := range patterns {
				ex := WorkoutExercise{ExerciseID: text, CategorySlot: text}
				tag := &ExerciseTag{Pattern: p}
				if got := ClassifySlot(section, ex, tag); !got.IsValid() {
					t.Errorf("ClassifySlot(%q, %q, %q) = %q", section, text, p, got)
				}
				if got := ClassifySlot(section, ex, nil); !got.IsValid() {
					t.Errorf("ClassifySlot(%q, %q, nil) = %q", section, text, got)
				}
			}
		}
	}
}

func TestSlotCategory_Kind(t *testing.T) {
	t.Parallel()
	want := map[SlotKind]int{
		KindPrimary:      4,
		KindSecondary:    5,
		KindAccessory:    7,
		KindCore:         3,
		KindConditioning: 2,
		KindActivation:   2,
	}
	got := make(map[SlotKind]int)
	for _, s := range AllSlotCategories {
		got[s.Kind()]++
	}
	for kind, n := range want {
		if got[kind] != n {
			t.Errorf("%s has %d slots, want %d", kind, got[kind], n)
		}
	}
}

func TestSectionKindFor(t *testing.T) {
	t.Parallel()
	tests := map[string]SectionKind{
		"Warm-up":           SectionActivation,
		"Movement prep":     SectionActivation,
		"Conditioning":      SectionConditioning,
		"Cardio finisher":   SectionConditioning,
		"Strength":          SectionStrength,
		"":                  SectionStrength,
		"ACTIVATION + CORE": SectionActivation,
	}
	for name, want := range tests {
		if got := SectionKindFor(name); got != want {
			t.Errorf("SectionKindFor(%q) = %s, want %s", name, got, want)
		}
	}
}
