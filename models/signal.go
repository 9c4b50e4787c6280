package models

// SignalSet is the structured result of analyzing one pain-point description.
// The detection lists keep lexicon table order; Sources, Actions and Outputs
// are guaranteed non-empty by the analyzer's fallback rules.
type SignalSet struct {
	Keywords      []string `json:"keywords"`
	Sources       []string `json:"data_sources"`
	Actions       []string `json:"actions"`
	Outputs       []string `json:"outputs"`
	Complexity    []string `json:"complexity"`
	IndustryFocus string   `json:"industry_focus"`
	Summary       string   `json:"pain_summary"`
}

// HasComplexity reports whether the given complexity label was detected.
func (s SignalSet) HasComplexity(label string) bool {
	for _, c := range s.Complexity {
		if c == label {
			return true
		}
	}
	return false
}

// HasOutput reports whether the given output label was detected.
func (s SignalSet) HasOutput(label string) bool {
	for _, o := range s.Outputs {
		if o == label {
			return true
		}
	}
	return false
}

// HasAction reports whether the given action label was detected.
func (s SignalSet) HasAction(label string) bool {
	for _, a := range s.Actions {
		if a == label {
			return true
		}
	}
	return false
}
