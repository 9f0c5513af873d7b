package assistant

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vishwas-tech29/Smart-Research-Assistant/internal/document"
	"github.com/vishwas-tech29/Smart-Research-Assistant/internal/session"
)

const (
	defaultUploadDelay = 2 * time.Second
	defaultAnswerDelay = 3 * time.Second
)

// ErrQueryFailed is the query-side failure, reachable only with injection.
var ErrQueryFailed = errors.New("query failed: simulated processing error")

// Client is the collaborator surface a real backend would implement: an
// upload endpoint accepting a document and a query endpoint returning a
// report. Both calls block for the duration of the operation and honor ctx
// cancellation.
type Client interface {
	Upload(ctx context.Context, file document.File) (session.Outcome, error)
	Answer(ctx context.Context, question string) (string, error)
	Name() string
}

// Config describes how to build a simulated client.
type Config struct {
	// UploadDelay and AnswerDelay default to 2s and 3s when zero.
	UploadDelay time.Duration
	AnswerDelay time.Duration
	// FailureRate in [0,1] makes the otherwise-unreachable error branches
	// fire. Zero keeps every operation succeeding.
	FailureRate float64
	// Rand overrides the failure roll, for deterministic tests.
	Rand func() float64
}

// Simulator stands in for the real assistant backend. Every operation waits
// a fixed delay and produces a canned result; no network call ever leaves
// the process.
type Simulator struct {
	uploadDelay time.Duration
	answerDelay time.Duration
	failureRate float64
	roll        func() float64
}

// NewSimulator builds a simulated client from cfg, filling in defaults.
func NewSimulator(cfg Config) *Simulator {
	uploadDelay := cfg.UploadDelay
	if uploadDelay <= 0 {
		uploadDelay = defaultUploadDelay
	}
	answerDelay := cfg.AnswerDelay
	if answerDelay <= 0 {
		answerDelay = defaultAnswerDelay
	}
	roll := cfg.Rand
	if roll == nil {
		roll = rand.Float64
	}
	return &Simulator{
		uploadDelay: uploadDelay,
		answerDelay: answerDelay,
		failureRate: cfg.FailureRate,
		roll:        roll,
	}
}

func (s *Simulator) Name() string {
	return "simulator"
}

// Upload simulates sending a document to the backend. The outcome is always
// produced at the end of the wait; an injected failure still yields an
// outcome, it just carries the error status.
func (s *Simulator) Upload(ctx context.Context, file document.File) (session.Outcome, error) {
	if err := wait(ctx, s.uploadDelay); err != nil {
		return session.Outcome{}, err
	}
	if s.shouldFail() {
		return session.Failure(fmt.Sprintf("upload of %s failed: simulated network error", file.Name)), nil
	}
	return session.Success(fmt.Sprintf("%s uploaded and processed successfully.", file.Name)), nil
}

// Answer simulates the query endpoint: it waits, then returns a templated
// report that echoes the submitted question verbatim.
func (s *Simulator) Answer(ctx context.Context, question string) (string, error) {
	if err := wait(ctx, s.answerDelay); err != nil {
		return "", err
	}
	if s.shouldFail() {
		return "", ErrQueryFailed
	}
	return buildReport(question), nil
}

func (s *Simulator) shouldFail() bool {
	return s.failureRate > 0 && s.roll() < s.failureRate
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// buildReport renders the canned multi-line report. The shape mirrors what a
// real query endpoint would return: answer text, a confidence figure, and a
// citation list.
func buildReport(question string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\n", question)
	fmt.Fprintf(&b, "Research on %q shows multiple validated methodologies with consistent results. ", question)
	b.WriteString("Comparative analysis across recent publications points to several effective approaches worth a closer read.\n\n")
	b.WriteString("Confidence: 0.85\n\n")
	b.WriteString("Citations:\n")
	b.WriteString(`  1. "Comprehensive analysis shows multiple effective approaches to this research question." (Journal of Advanced Research, pp. 42-45)`)
	b.WriteString("\n")
	fmt.Fprintf(&b, "\nQuery ID: %s\n", uuid.New().String())
	return b.String()
}
