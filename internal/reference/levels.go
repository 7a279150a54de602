package reference

import "github.com/cosyll/cosyll-web/internal/models"

var levelLabels = map[models.AcademicLevel]string{
	models.LevelOther:    "Other",
	models.LevelBachelor: "Bachelor",
	models.LevelMaster:   "Master",
	models.LevelDoctoral: "Doctoral",
}

// LevelLabel renders an academic level.
func LevelLabel(level models.AcademicLevel) string {
	if label, ok := levelLabels[level]; ok {
		return label
	}
	return fallbackLabel(int(level))
}

// Levels returns the academic levels as selectable options.
func Levels() []Option {
	ordered := []models.AcademicLevel{models.LevelBachelor, models.LevelMaster, models.LevelDoctoral, models.LevelOther}
	out := make([]Option, 0, len(ordered))
	for _, l := range ordered {
		out = append(out, Option{Value: l.String(), Label: levelLabels[l]})
	}
	return out
}
