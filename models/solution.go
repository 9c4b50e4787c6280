package models

// Solution is one record of the reference solution corpus. The corpus is
// loaded once at process start and never mutated.
type Solution struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Keywords          []string `json:"keywords"`
	PainPoints        []string `json:"pain_points"`
	Dimensions        []string `json:"dimensions"`
	Difficulty        int      `json:"difficulty"`
	DifficultyReasons []string `json:"difficulty_reasons"`
	Workflow          Workflow `json:"workflow"`
	Steps             []Step   `json:"steps"`
}

// DimensionWeights is a fixed-size weight vector over the four capability
// dimensions used to bias retrieval. Components sum to 1.0 within rounding.
type DimensionWeights struct {
	Perception float64 `json:"perception"`
	Cognition  float64 `json:"cognition"`
	Prediction float64 `json:"prediction"`
	Automation float64 `json:"automation"`
}

// Of returns the weight of a named dimension, 0 for unknown names.
func (w DimensionWeights) Of(dim string) float64 {
	switch dim {
	case "perception":
		return w.Perception
	case "cognition":
		return w.Cognition
	case "prediction":
		return w.Prediction
	case "automation":
		return w.Automation
	}
	return 0
}

// Sum returns the total of all four components.
func (w DimensionWeights) Sum() float64 {
	return w.Perception + w.Cognition + w.Prediction + w.Automation
}

// EqualWeights is the fallback vector for unrecognized industries.
func EqualWeights() DimensionWeights {
	return DimensionWeights{Perception: 0.25, Cognition: 0.25, Prediction: 0.25, Automation: 0.25}
}
