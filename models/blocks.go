package models

// Block letters used by the rotation templates, plus a few named blocks.
const (
	BlockLunch    = "lunch"
	BlockAdvisory = "advisory"
	BlockActivity = "activity"
	BlockOther    = "other"
)

// BlockDescriptor is one entry of a rotation-day block template. Start and
// End are "HH:MM" times of day. The lunch-variant flags group entries into
// alternative layouts for the lunch span: entries with no flags are common
// to every variant, flagged entries belong only to their variant, and
// exactly one variant carries DefaultVariant.
type BlockDescriptor struct {
	Block string `json:"block"`
	Start string `json:"start"`
	End   string `json:"end"`

	EarlyLunch     bool `json:"earlyLunch,omitempty"`
	LateLunch      bool `json:"lateLunch,omitempty"`
	DefaultVariant bool `json:"defaultVariant,omitempty"`

	// Class-standing restrictions for upper school blocks (e.g. senior
	// privilege free periods).
	UnderclassOnly bool `json:"underclassOnly,omitempty"`
	UpperclassOnly bool `json:"upperclassOnly,omitempty"`
}

// Variant reports which lunch variant this descriptor belongs to, or ""
// when it is common to all variants.
func (b BlockDescriptor) Variant() string {
	switch {
	case b.EarlyLunch:
		return "early"
	case b.LateLunch:
		return "late"
	default:
		return ""
	}
}
