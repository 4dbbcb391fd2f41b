package loop

import (
	"github.com/agegold/driveralert/pkg/models"
)

// FiredAlert pins one fired alert to the cycle it fired in.
type FiredAlert struct {
	Cycle    int             `json:"cycle"`
	Tag      string          `json:"tag"`
	Severity models.Severity `json:"severity"`
	Text1    string          `json:"text1,omitempty"`
	Text2    string          `json:"text2,omitempty"`
}

// Summary accumulates run statistics frame by frame.
type Summary struct {
	Scenario     string         `json:"scenario"`
	Cycles       int            `json:"cycles"`
	AlertsFired  int            `json:"alerts_fired"`
	BySeverity   map[string]int `json:"by_severity"`
	ByType       map[string]int `json:"by_type"`
	ByTag        map[string]int `json:"by_tag"`
	First        *FiredAlert    `json:"first,omitempty"`
	MostCritical *FiredAlert    `json:"most_critical,omitempty"`
}

// NewSummary returns an empty summary for one scenario run.
func NewSummary(scenario string) *Summary {
	return &Summary{
		Scenario:   scenario,
		BySeverity: make(map[string]int),
		ByType:     make(map[string]int),
		ByTag:      make(map[string]int),
	}
}

// Observe folds one frame into the summary. Ties on severity keep the
// earliest alert as most critical.
func (s *Summary) Observe(f Frame) {
	s.Cycles++
	for _, a := range f.Alerts {
		s.AlertsFired++
		s.BySeverity[a.Severity.String()]++
		s.ByType[string(a.EventType)]++
		s.ByTag[a.Tag]++

		fired := &FiredAlert{
			Cycle:    f.Cycle,
			Tag:      a.Tag,
			Severity: a.Severity,
			Text1:    a.Text1,
			Text2:    a.Text2,
		}
		if s.First == nil {
			s.First = fired
		}
		if s.MostCritical == nil || a.Severity > s.MostCritical.Severity {
			s.MostCritical = fired
		}
	}
}
