package workout

import (
	"io"
	"log/slog"

	"github.com/myrjola/fieldprep/internal/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTemplate is returned when a template or profile document cannot be used.
var ErrInvalidTemplate = errors.NewSentinel("invalid template")

// DecodeWorkoutDay reads a YAML (or JSON) workout day. Unknown fields are rejected so that typos in authored
// templates do not silently drop data.
func DecodeWorkoutDay(r io.Reader) (WorkoutDay, error) {
	var day WorkoutDay
	if err := decodeStrict(r, &day); err != nil {
		return WorkoutDay{}, errors.Wrap(errors.Join(ErrInvalidTemplate, err), "decode workout day")
	}
	if err := validateDay(day); err != nil {
		return WorkoutDay{}, errors.Wrap(err, "validate workout day", slog.String("day_id", day.ID))
	}
	return day, nil
}

// DecodeProfile reads a YAML (or JSON) player profile. Enumerations outside the known values are rejected;
// empty values are allowed and fall back to defaults during assembly.
func DecodeProfile(r io.Reader) (PlayerProfile, error) {
	var p PlayerProfile
	if err := decodeStrict(r, &p); err != nil {
		return PlayerProfile{}, errors.Wrap(errors.Join(ErrInvalidTemplate, err), "decode profile")
	}
	switch {
	case p.Position != "" && !p.Position.IsValid():
		return PlayerProfile{}, errors.Wrap(ErrInvalidTemplate, "unknown position",
			slog.String("position", string(p.Position)))
	case p.SideBias != "" && !p.SideBias.IsValid():
		return PlayerProfile{}, errors.Wrap(ErrInvalidTemplate, "unknown side bias",
			slog.String("side_bias", string(p.SideBias)))
	case p.Phase != "" && !p.Phase.IsValid():
		return PlayerProfile{}, errors.Wrap(ErrInvalidTemplate, "unknown season phase",
			slog.String("phase", string(p.Phase)))
	}
	return p, nil
}

func decodeStrict(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty document")
		}
		return errors.Wrap(err, "yaml")
	}
	return nil
}

func validateDay(day WorkoutDay) error {
	if len(day.Sections) == 0 {
		return errors.Wrap(ErrInvalidTemplate, "day has no sections")
	}
	for i, s := range day.Sections {
		if s.Name == "" {
			return errors.Wrap(ErrInvalidTemplate, "section has no name", slog.Int("section", i))
		}
		for j, ex := range s.Exercises {
			if len(ex.Sets) == 0 {
				return errors.Wrap(ErrInvalidTemplate, "exercise has no sets",
					slog.String("section", s.Name), slog.Int("exercise", j))
			}
			for _, set := range ex.Sets {
				if set.RestSeconds < 0 {
					return errors.Wrap(ErrInvalidTemplate, "negative rest",
						slog.String("section", s.Name), slog.Int("exercise", j))
				}
			}
		}
	}
	return nil
}
