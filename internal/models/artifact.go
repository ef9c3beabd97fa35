package models

// Checklist is a generated inspection-prep checklist grouped by category.
type Checklist struct {
	Categories []ChecklistCategory `json:"categories"`
}

type ChecklistCategory struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// Empty reports whether the checklist carries nothing usable. A checklist
// with zero categories is an absent result, not a malformed one.
func (c *Checklist) Empty() bool {
	if c == nil || len(c.Categories) == 0 {
		return true
	}
	for _, cat := range c.Categories {
		if len(cat.Items) > 0 {
			return false
		}
	}
	return true
}

// CostEstimate is a generated repair cost range with a materials list.
type CostEstimate struct {
	MinCost    float64  `json:"minCost"`
	MaxCost    float64  `json:"maxCost"`
	Materials  []string `json:"materials,omitempty"`
	Disclaimer string   `json:"disclaimer"`
}
