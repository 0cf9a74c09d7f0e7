package dex

// natures maps each nature to its boosted and hindered stat ids. Neutral
// natures map to empty strings.
var natures = map[string][2]string{
	"Adamant": {"atk", "spa"},
	"Bashful": {"", ""},
	"Bold":    {"def", "atk"},
	"Brave":   {"atk", "spe"},
	"Calm":    {"spd", "atk"},
	"Careful": {"spd", "spa"},
	"Docile":  {"", ""},
	"Gentle":  {"spd", "def"},
	"Hardy":   {"", ""},
	"Hasty":   {"spe", "def"},
	"Impish":  {"def", "spa"},
	"Jolly":   {"spe", "spa"},
	"Lax":     {"def", "spd"},
	"Lonely":  {"atk", "def"},
	"Mild":    {"spa", "def"},
	"Modest":  {"spa", "atk"},
	"Naive":   {"spe", "spd"},
	"Naughty": {"atk", "spd"},
	"Quiet":   {"spa", "spe"},
	"Quirky":  {"", ""},
	"Rash":    {"spa", "spd"},
	"Relaxed": {"def", "spe"},
	"Sassy":   {"spd", "spe"},
	"Serious": {"", ""},
	"Timid":   {"spe", "atk"},
}

// IsNature reports whether the name is one of the twenty-five natures.
func IsNature(name string) bool {
	_, ok := natures[name]
	return ok
}
