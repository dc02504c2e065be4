package testutil

import (
	"fmt"
	"time"
)

// TestTimer measures how long a test case takes.
type TestTimer struct {
	start time.Time
	name  string
}

func NewTestTimer(name string) *TestTimer {
	return &TestTimer{start: time.Now(), name: name}
}

func (t *TestTimer) Stop() time.Duration {
	return time.Since(t.start)
}

type TestResult struct {
	Name     string
	Duration time.Duration
	Passed   bool
}

// TestSuiteResult collects results of a group of sub-tests.
type TestSuiteResult struct {
	SuiteName   string
	TotalTests  int
	PassedTests int
	FailedTests int
	TotalTime   time.Duration
	Results     []TestResult
}

func NewTestSuiteResult(suiteName string) *TestSuiteResult {
	return &TestSuiteResult{SuiteName: suiteName}
}

func (s *TestSuiteResult) AddResult(result TestResult) {
	s.Results = append(s.Results, result)
	s.TotalTests++
	s.TotalTime += result.Duration
	if result.Passed {
		s.PassedTests++
	} else {
		s.FailedTests++
	}
}

// Track times a named case and records it when the returned func runs.
func (s *TestSuiteResult) Track(name string, passed func() bool) func() {
	timer := NewTestTimer(name)
	return func() {
		s.AddResult(TestResult{Name: name, Duration: timer.Stop(), Passed: passed()})
	}
}

func (s *TestSuiteResult) PrintSummary() {
	fmt.Printf("\n📊 Test Suite Summary: %s\n", s.SuiteName)
	fmt.Printf("   Total Tests: %d\n", s.TotalTests)
	fmt.Printf("   Passed: %d ✅\n", s.PassedTests)
	fmt.Printf("   Failed: %d ❌\n", s.FailedTests)
	fmt.Printf("   Total Time: %v\n", s.TotalTime)
	for _, r := range s.Results {
		status := "✅"
		if !r.Passed {
			status = "❌"
		}
		fmt.Printf("   %s %s: %v\n", status, r.Name, r.Duration)
	}
}
