package application

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"strategy-commander/internal/config"
	configdomain "strategy-commander/internal/features/config/domain"
	"strategy-commander/internal/features/strategy/domain"
	"strategy-commander/internal/features/strategy/infrastructure"
)

const banner = "================================================================================"

// PipelineService defines the interface for the strategy workflow.
type PipelineService interface {
	// Run executes the five phases in order and returns the report.
	// On failure the report carries the phases completed so far.
	Run(ctx context.Context, productName string, overrides *configdomain.AppConfig) (*domain.Report, error)
}

// pipelineService is the implementation of PipelineService.
type pipelineService struct {
	generator infrastructure.Generator
	settings  config.Settings
	out       io.Writer
}

// NewPipelineService creates a new instance of pipelineService. A nil
// out writes the console report to stdout.
func NewPipelineService(generator infrastructure.Generator, settings config.Settings, out io.Writer) PipelineService {
	if out == nil {
		out = os.Stdout
	}
	return &pipelineService{
		generator: generator,
		settings:  settings,
		out:       out,
	}
}

// Run validates the configuration, then executes each phase in the
// fixed order, threading the accumulated outputs forward. The first
// failed generation aborts the run; later phases never execute.
func (s *pipelineService) Run(ctx context.Context, productName string, overrides *configdomain.AppConfig) (*domain.Report, error) {
	if err := s.settings.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if productName == "" {
		productName = s.settings.DefaultProduct
		if overrides != nil && overrides.DefaultProduct != "" {
			productName = overrides.DefaultProduct
		}
	}

	report := domain.NewReport(productName, s.settings.Model)

	fmt.Fprintln(s.out, "\n"+banner)
	fmt.Fprintln(s.out, "MARKETING STRATEGY WORKFLOW")
	fmt.Fprintln(s.out, banner)
	fmt.Fprintf(s.out, "Product: %s\n", report.Product)
	fmt.Fprintf(s.out, "Model: %s\n", report.Model)
	fmt.Fprintf(s.out, "Start Time: %s\n", report.StartedAt.Format("2006-01-02 15:04:05"))

	for i, descriptor := range domain.Descriptors() {
		descriptor = applyOverrides(descriptor, overrides)

		fmt.Fprintln(s.out, "\n"+banner)
		fmt.Fprintf(s.out, "PHASE %d: %s\n", i+1, descriptor.Title)
		fmt.Fprintln(s.out, banner)

		text, err := s.executePhase(ctx, descriptor, report.Outputs, report.Product)
		if err != nil {
			return report, fmt.Errorf("phase %s failed: %w", descriptor.Phase, err)
		}

		report.Outputs.Set(descriptor.Phase, text)
		fmt.Fprintln(s.out, text)
	}

	s.printSummary(report)
	return report, nil
}

// executePhase issues exactly one generation request built from the
// descriptor and the outputs of earlier phases.
func (s *pipelineService) executePhase(ctx context.Context, descriptor domain.PhaseDescriptor, prior *domain.Outputs, product string) (string, error) {
	req := infrastructure.GenerationRequest{
		Model:       s.settings.Model,
		Temperature: descriptor.Temperature,
		MaxTokens:   descriptor.MaxTokens,
		Messages: []infrastructure.Message{
			{Role: infrastructure.RoleSystem, Content: descriptor.SystemPrompt(product)},
			{Role: infrastructure.RoleUser, Content: descriptor.UserPrompt(prior)},
		},
	}
	return s.generator.Generate(ctx, req)
}

// printSummary renders all phase outputs labeled by phase name, in
// insertion order.
func (s *pipelineService) printSummary(report *domain.Report) {
	fmt.Fprintln(s.out, "\n"+banner)
	fmt.Fprintln(s.out, "FINAL SUMMARY - MARKETING STRATEGY")
	fmt.Fprintln(s.out, banner)

	for _, phase := range report.Outputs.Phases() {
		text, _ := report.Outputs.Get(phase)
		fmt.Fprintf(s.out, "\n--- %s ---\n\n", strings.ToUpper(string(phase)))
		fmt.Fprintln(s.out, text)
	}
}

// applyOverrides merges the optional app-config overrides into a phase
// descriptor. Only the system instructions and generation parameters
// are overridable; the prompt threading structure is fixed.
func applyOverrides(descriptor domain.PhaseDescriptor, overrides *configdomain.AppConfig) domain.PhaseDescriptor {
	if overrides == nil {
		return descriptor
	}

	if prompt, ok := overrides.PhasePrompts[string(descriptor.Phase)]; ok && prompt != "" {
		descriptor.SystemPrompt = func(product string) string {
			return strings.ReplaceAll(prompt, "{product}", product)
		}
	}

	if params, ok := overrides.PhaseParams[string(descriptor.Phase)]; ok {
		if params.Temperature > 0 {
			descriptor.Temperature = params.Temperature
		}
		if params.MaxTokens > 0 {
			descriptor.MaxTokens = params.MaxTokens
		}
	}

	return descriptor
}
