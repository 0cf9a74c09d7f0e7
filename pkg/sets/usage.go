package sets

// UsageStatistics is one format's usage-statistics page.
type UsageStatistics struct {
	Info UsageInfo              `json:"info"`
	Data map[string]UsageBucket `json:"data"`
}

// UsageInfo is the page-level metadata block, found once per format.
type UsageInfo struct {
	Metagame        string `json:"metagame"`
	NumberOfBattles int    `json:"number of battles"`
}

// UsageBucket aggregates how one species was actually configured in a
// format: weighted-frequency maps per field plus the species' overall
// weighted usage share.
type UsageBucket struct {
	Abilities map[string]float64 `json:"Abilities"`
	Items     map[string]float64 `json:"Items"`
	Moves     map[string]float64 `json:"Moves"`

	// Spreads keys are "Nature:hp/atk/def/spa/spd/spe".
	Spreads map[string]float64 `json:"Spreads"`

	RawCount float64 `json:"Raw count"`
	Usage    float64 `json:"usage"`
}
