package domain

import (
	"fmt"
	"strings"
)

// System prompts for each phase. The %s slots take the product name.
const (
	marketResearchSystemPrompt = `You are a senior market research analyst.
Analyze the wearable technology market for the product: %s.

Provide:
- Top 3 competitors
- Their positioning
- Pricing
- Key features
- Market trends
Limit to 150-200 words.`

	customerAnalysisSystemPrompt = `You are a consumer behavior expert.
Based on the market research, identify:

- Target customer segments
- User pain points
- Motivations
- Purchase triggers
- Unmet needs

Limit to 150 words.`

	strategySystemPrompt = `You are a marketing strategist.
Create a marketing strategy for: %s

Include:
- Positioning statement
- Value proposition
- Key messaging pillars
- Channels to target
- Pricing strategy
- Brand voice direction

Limit to 200 words.`

	campaignsSystemPrompt = `You are a creative campaign director.
Design 3 marketing campaigns:

1. Digital campaign
2. Influencer campaign
3. Content/SEO campaign

Include:
- Goal
- Target channels
- Creative concept
- KPIs
Keep each campaign short and crisp.`

	qualitySystemPrompt = `You are a quality editor. Improve clarity, flow, and formatting.
Combine all sections into a polished executive summary.
Max 250 words.`
)

// PhaseDescriptor is the static specification of one phase: its fixed
// instructions, how its user prompt is assembled from earlier outputs,
// and the generation parameters for the call.
type PhaseDescriptor struct {
	Phase        Phase
	Title        string
	Temperature  float32
	MaxTokens    int
	SystemPrompt func(product string) string
	UserPrompt   func(prior *Outputs) string
}

// Descriptors returns the five phase descriptors in execution order.
// Each user prompt is a pure function of the outputs of strictly
// earlier phases.
func Descriptors() []PhaseDescriptor {
	return []PhaseDescriptor{
		{
			Phase:       PhaseMarketResearch,
			Title:       "MARKET RESEARCH",
			Temperature: 0.7,
			MaxTokens:   500,
			SystemPrompt: func(product string) string {
				return fmt.Sprintf(marketResearchSystemPrompt, product)
			},
			UserPrompt: func(*Outputs) string {
				return "Provide competitor analysis."
			},
		},
		{
			Phase:       PhaseCustomerAnalysis,
			Title:       "CUSTOMER INSIGHTS",
			Temperature: 0.7,
			MaxTokens:   400,
			SystemPrompt: func(string) string {
				return customerAnalysisSystemPrompt
			},
			UserPrompt: func(prior *Outputs) string {
				research, _ := prior.Get(PhaseMarketResearch)
				return fmt.Sprintf("Here is the market research:\n%s\n\nAnalyze customers.", research)
			},
		},
		{
			Phase:       PhaseStrategy,
			Title:       "MARKETING STRATEGY",
			Temperature: 0.7,
			MaxTokens:   500,
			SystemPrompt: func(product string) string {
				return fmt.Sprintf(strategySystemPrompt, product)
			},
			UserPrompt: func(prior *Outputs) string {
				return labeledSections(prior, []labeledPhase{
					{PhaseMarketResearch, "Market Research"},
					{PhaseCustomerAnalysis, "Customer Insights"},
				})
			},
		},
		{
			Phase:       PhaseCampaigns,
			Title:       "CAMPAIGN DESIGN",
			Temperature: 0.7,
			MaxTokens:   500,
			SystemPrompt: func(string) string {
				return campaignsSystemPrompt
			},
			UserPrompt: func(prior *Outputs) string {
				strategy, _ := prior.Get(PhaseStrategy)
				return fmt.Sprintf("Based on the marketing strategy:\n\n%s\n\nGenerate the 3 campaigns.", strategy)
			},
		},
		{
			Phase:       PhaseQuality,
			Title:       "QUALITY REVIEW",
			Temperature: 0.5,
			MaxTokens:   500,
			SystemPrompt: func(string) string {
				return qualitySystemPrompt
			},
			UserPrompt: func(prior *Outputs) string {
				return labeledSections(prior, []labeledPhase{
					{PhaseMarketResearch, "Market Research"},
					{PhaseCustomerAnalysis, "Customer Insights"},
					{PhaseStrategy, "Marketing Strategy"},
					{PhaseCampaigns, "Campaigns"},
				})
			},
		},
	}
}

type labeledPhase struct {
	phase Phase
	label string
}

// labeledSections concatenates the named prior outputs under their labels.
func labeledSections(prior *Outputs, sections []labeledPhase) string {
	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		text, _ := prior.Get(section.phase)
		fmt.Fprintf(&b, "%s:\n%s", section.label, text)
	}
	return b.String()
}
