package workout

const (
	// maxComplexity stays at the ceiling regardless of experience. Experience gates exercise selection in
	// [Selector] instead; the modifier value is kept so the complexity filter in assembly has a real bound.
	maxComplexity = 3
	// defaultExerciseVariety is likewise independent of experience.
	defaultExerciseVariety = 2
)

// CalculateModifiers derives the flat multiplier set for a day.
//
// experience is accepted but intentionally not applied: volume and complexity do not depend on it here.
// A nil cycle leaves rest untouched and omits the cycle fields.
func CalculateModifiers(
	phase SeasonPhase,
	experience ExperienceLevel,
	daysUntil *int,
	cycle *TrainingCycle,
) WorkoutModifiers {
	_ = experience

	base := seasonBaseFor(phase)
	mods := WorkoutModifiers{
		VolumeMultiplier:        base.volume,
		IntensityMultiplier:     base.intensity,
		RestMultiplier:          base.rest,
		SessionLengthMultiplier: base.sessionLength,
		MaxComplexity:           maxComplexity,
		ExerciseVariety:         defaultExerciseVariety,
		CyclePhase:              nil,
		TempoFocus:              "",
		PrimaryExerciseEmphasis: "",
	}

	if phase == PhasePreTournament {
		mods.VolumeMultiplier *= TaperMultiplier(daysUntil)
	}

	if cycle != nil {
		rule := PhaseRuleFor(cycle.Phase)
		cp := cycle.Phase
		mods.RestMultiplier *= rule.RestMultiplier
		mods.CyclePhase = &cp
		mods.TempoFocus = rule.Tempo
		mods.PrimaryExerciseEmphasis = rule.Emphasis
	}

	return mods
}
