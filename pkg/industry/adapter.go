// Package industry resolves industry and department names to capability
// dimension weights and retrieval context text. The mapping table is loaded
// once at process start and read-only afterwards.
package industry

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/yhlin/n8n-consultant/models"
)

//go:embed data/industry_mapping.json
var embeddedMapping []byte

// Department describes one department of an industry.
type Department struct {
	Description       string                  `json:"description"`
	TypicalPainPoints []string                `json:"typical_pain_points"`
	PrimaryDimensions []string                `json:"primary_dimensions"`
	Weights           models.DimensionWeights `json:"dimension_weights"`
}

// Industry groups the departments of one industry. DeptOrder preserves the
// JSON declaration order for menus and context text.
type Industry struct {
	NameEN      string
	Departments map[string]Department
	DeptOrder   []string
}

// Adapter answers weight and context lookups. Safe for concurrent use.
type Adapter struct {
	industries map[string]Industry
	order      []string
}

type rawDepartment struct {
	Description       string                  `json:"description"`
	TypicalPainPoints []string                `json:"typical_pain_points"`
	PrimaryDimensions []string                `json:"primary_dimensions"`
	Weights           models.DimensionWeights `json:"dimension_weights"`
}

type rawIndustry struct {
	NameEN      string                   `json:"name_en"`
	Departments map[string]rawDepartment `json:"departments"`
}

type rawMapping struct {
	Industries map[string]rawIndustry `json:"industries"`
}

// Load builds the adapter from the embedded mapping table, or from path when
// non-empty. Malformed tables are fatal: the pipeline must not start without
// valid reference data.
func Load(path string) (*Adapter, error) {
	data := embeddedMapping
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read industry mapping %s: %w", path, err)
		}
		data = fileData
	}

	var raw rawMapping
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse industry mapping: %w", err)
	}
	if len(raw.Industries) == 0 {
		return nil, fmt.Errorf("industry mapping contains no industries")
	}

	// Map unmarshalling discards declaration order and silently keeps the
	// last of any duplicate key, so the raw tokens are walked once to
	// recover the order and to reject shadowed entries outright.
	order, deptOrder, err := tableOrder(data)
	if err != nil {
		return nil, fmt.Errorf("invalid industry mapping: %w", err)
	}

	a := &Adapter{industries: make(map[string]Industry, len(raw.Industries))}
	for name, ri := range raw.Industries {
		if len(ri.Departments) == 0 {
			return nil, fmt.Errorf("industry %s has no departments", name)
		}
		ind := Industry{
			NameEN:      ri.NameEN,
			Departments: make(map[string]Department, len(ri.Departments)),
			DeptOrder:   deptOrder[name],
		}
		for deptName, rd := range ri.Departments {
			sum := rd.Weights.Sum()
			if math.Abs(sum-1.0) > 0.02 {
				return nil, fmt.Errorf("industry %s department %s: weights sum to %.4f, want 1.0", name, deptName, sum)
			}
			ind.Departments[deptName] = Department(rd)
		}
		a.industries[name] = ind
	}
	a.order = order
	return a, nil
}

// tableOrder walks the raw JSON tokens and records industry and department
// key declaration order. A repeated key is a configuration error, not a
// silent override.
func tableOrder(data []byte) ([]string, map[string][]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := nextDelim(dec, '{'); err != nil {
		return nil, nil, err
	}

	var order []string
	deptOrder := make(map[string][]string)
	for dec.More() {
		key, err := nextKey(dec)
		if err != nil {
			return nil, nil, err
		}
		if key != "industries" {
			if err := skipValue(dec); err != nil {
				return nil, nil, err
			}
			continue
		}
		if err := nextDelim(dec, '{'); err != nil {
			return nil, nil, err
		}
		for dec.More() {
			name, err := nextKey(dec)
			if err != nil {
				return nil, nil, err
			}
			if _, dup := deptOrder[name]; dup {
				return nil, nil, fmt.Errorf("duplicate industry key %s", name)
			}
			depts, err := departmentOrder(dec)
			if err != nil {
				return nil, nil, fmt.Errorf("industry %s: %w", name, err)
			}
			order = append(order, name)
			deptOrder[name] = depts
		}
		if err := nextDelim(dec, '}'); err != nil {
			return nil, nil, err
		}
	}
	return order, deptOrder, nil
}

// departmentOrder consumes one industry object and returns its department
// keys in declaration order, rejecting duplicates.
func departmentOrder(dec *json.Decoder) ([]string, error) {
	if err := nextDelim(dec, '{'); err != nil {
		return nil, err
	}
	var depts []string
	seen := make(map[string]struct{})
	for dec.More() {
		key, err := nextKey(dec)
		if err != nil {
			return nil, err
		}
		if key != "departments" {
			if err := skipValue(dec); err != nil {
				return nil, err
			}
			continue
		}
		if err := nextDelim(dec, '{'); err != nil {
			return nil, err
		}
		for dec.More() {
			name, err := nextKey(dec)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[name]; dup {
				return nil, fmt.Errorf("duplicate department key %s", name)
			}
			seen[name] = struct{}{}
			depts = append(depts, name)
			if err := skipValue(dec); err != nil {
				return nil, err
			}
		}
		if err := nextDelim(dec, '}'); err != nil {
			return nil, err
		}
	}
	if err := nextDelim(dec, '}'); err != nil {
		return nil, err
	}
	return depts, nil
}

func nextDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("unexpected token %v, want %v", tok, want)
	}
	return nil
}

func nextKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("unexpected token %v, want object key", tok)
	}
	return s, nil
}

// skipValue consumes one JSON value of any shape.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

// Industries lists supported industry names in table order.
func (a *Adapter) Industries() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Departments lists the departments of an industry in table order, nil for
// unknown industries.
func (a *Adapter) Departments(industry string) []string {
	ind, ok := a.industries[industry]
	if !ok {
		return nil
	}
	out := make([]string, len(ind.DeptOrder))
	copy(out, ind.DeptOrder)
	return out
}

// DepartmentInfo returns details of one department.
func (a *Adapter) DepartmentInfo(industry, department string) (Department, bool) {
	ind, ok := a.industries[industry]
	if !ok {
		return Department{}, false
	}
	d, ok := ind.Departments[department]
	return d, ok
}

// Weights resolves the dimension weight vector for a scope. A known
// department returns its vector verbatim; a known industry without a
// department returns the per-dimension mean over all its departments rounded
// to 4 decimals; an unknown industry returns the equal-weight vector. Pure
// and total, no error path.
func (a *Adapter) Weights(industry, department string) models.DimensionWeights {
	ind, ok := a.industries[industry]
	if !ok {
		return models.EqualWeights()
	}
	if department != "" {
		if d, ok := ind.Departments[department]; ok {
			return d.Weights
		}
	}

	var sum models.DimensionWeights
	for _, d := range ind.Departments {
		sum.Perception += d.Weights.Perception
		sum.Cognition += d.Weights.Cognition
		sum.Prediction += d.Weights.Prediction
		sum.Automation += d.Weights.Automation
	}
	n := float64(len(ind.Departments))
	return models.DimensionWeights{
		Perception: round4(sum.Perception / n),
		Cognition:  round4(sum.Cognition / n),
		Prediction: round4(sum.Prediction / n),
		Automation: round4(sum.Automation / n),
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// ContextText concatenates department descriptions and typical pain points
// for the resolved scope, used to enrich the retrieval query. Unknown
// industries yield the empty string.
func (a *Adapter) ContextText(industry, department string) string {
	ind, ok := a.industries[industry]
	if !ok {
		return ""
	}

	var parts []string
	if department != "" {
		if d, ok := ind.Departments[department]; ok {
			parts = append(parts, d.Description)
			parts = append(parts, d.TypicalPainPoints...)
			return strings.Join(parts, " ")
		}
	}
	for _, name := range ind.DeptOrder {
		d := ind.Departments[name]
		parts = append(parts, name, d.Description)
		parts = append(parts, d.TypicalPainPoints...)
	}
	return strings.Join(parts, " ")
}
