// Package ai asks a generative text service to assess violation reports.
package ai

import "context"

const (
	// EmptyResponseText is returned when the service answers without text.
	EmptyResponseText = "تعذر تحليل البيانات حالياً."
	// UnavailableText is returned when the service cannot be reached or understood.
	UnavailableText = "حدث خطأ أثناء الاتصال بالمساعد الذكي."
)

// Result is either an assessment written by the service or a fixed fallback message.
type Result struct {
	Text     string
	Fallback bool
}

func Ok(text string) Result {
	return Result{Text: text}
}

func FallbackResult(text string) Result {
	return Result{Text: text, Fallback: true}
}

// ViolationInput describes one price report to assess.
type ViolationInput struct {
	ProductName   string
	ReportedPrice float64
	OfficialPrice int
	Description   string
}

// Analyzer never fails: every error path resolves to a fallback Result.
type Analyzer interface {
	AnalyzeViolation(ctx context.Context, in ViolationInput) Result
}

// AnalyzerFunc adapts a plain function to Analyzer.
type AnalyzerFunc func(ctx context.Context, in ViolationInput) Result

func (f AnalyzerFunc) AnalyzeViolation(ctx context.Context, in ViolationInput) Result {
	return f(ctx, in)
}
