package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Phase identifies one step of the five-step strategy workflow.
type Phase string

const (
	PhaseMarketResearch   Phase = "market_research"
	PhaseCustomerAnalysis Phase = "customer_analysis"
	PhaseStrategy         Phase = "strategy"
	PhaseCampaigns        Phase = "campaigns"
	PhaseQuality          Phase = "quality"
)

// PhaseOrder returns the fixed execution order of the workflow phases.
func PhaseOrder() []Phase {
	return []Phase{
		PhaseMarketResearch,
		PhaseCustomerAnalysis,
		PhaseStrategy,
		PhaseCampaigns,
		PhaseQuality,
	}
}

// Outputs is the insertion-ordered mapping of phase to generated text.
// It grows as phases complete and is owned by a single workflow run.
type Outputs struct {
	order   []Phase
	entries map[Phase]string
}

// NewOutputs creates an empty accumulator.
func NewOutputs() *Outputs {
	return &Outputs{entries: make(map[Phase]string)}
}

// Set records the generated text for a phase, preserving insertion order.
func (o *Outputs) Set(phase Phase, text string) {
	if _, ok := o.entries[phase]; !ok {
		o.order = append(o.order, phase)
	}
	o.entries[phase] = text
}

// Get returns the text recorded for a phase, if any.
func (o *Outputs) Get(phase Phase) (string, bool) {
	text, ok := o.entries[phase]
	return text, ok
}

// Phases returns the recorded phases in insertion order.
func (o *Outputs) Phases() []Phase {
	phases := make([]Phase, len(o.order))
	copy(phases, o.order)
	return phases
}

// Len returns the number of completed phases.
func (o *Outputs) Len() int {
	return len(o.order)
}

// outputEntry is the wire form of one completed phase.
type outputEntry struct {
	Phase   Phase  `json:"phase"`
	Content string `json:"content"`
}

// MarshalJSON serializes the outputs as an ordered array so the phase
// order survives the round trip through JSON objects.
func (o *Outputs) MarshalJSON() ([]byte, error) {
	entries := make([]outputEntry, 0, len(o.order))
	for _, phase := range o.order {
		entries = append(entries, outputEntry{Phase: phase, Content: o.entries[phase]})
	}
	return json.Marshal(entries)
}

// UnmarshalJSON restores the ordered outputs from the array form.
func (o *Outputs) UnmarshalJSON(data []byte) error {
	var entries []outputEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to unmarshal outputs: %w", err)
	}
	o.order = nil
	o.entries = make(map[Phase]string, len(entries))
	for _, entry := range entries {
		o.Set(entry.Phase, entry.Content)
	}
	return nil
}

// Report is the structured result of one workflow run.
type Report struct {
	Product   string    `json:"product"`
	Model     string    `json:"model"`
	StartedAt time.Time `json:"started_at"`
	Outputs   *Outputs  `json:"outputs"`
}

// NewReport creates a report with an empty accumulator.
func NewReport(product, model string) *Report {
	return &Report{
		Product:   product,
		Model:     model,
		StartedAt: time.Now(),
		Outputs:   NewOutputs(),
	}
}

// StrategyRequest is the request structure for starting a workflow run.
type StrategyRequest struct {
	ProductName string `json:"product_name"`
}
