package doctor

import (
	"context"
	"testing"
)

// stubCheck returns a fixed result.
type stubCheck struct {
	name   string
	status Severity
	ran    int
}

func (s *stubCheck) Name() string     { return s.name }
func (s *stubCheck) Category() string { return "test" }
func (s *stubCheck) Run(context.Context) *CheckResult {
	s.ran++
	return &CheckResult{Name: s.name, Category: "test", Status: s.status}
}

func TestNewRunner(t *testing.T) {
	r := NewRunner()
	if r == nil {
		t.Fatal("NewRunner returned nil")
	}
	if len(r.Checks()) != 0 {
		t.Errorf("NewRunner().Checks() = %d, want 0", len(r.Checks()))
	}
}

func TestRunner_Run(t *testing.T) {
	tests := []struct {
		name         string
		statuses     []Severity
		wantPassed   int
		wantInfo     int
		wantWarnings int
		wantErrors   int
	}{
		{
			name: "empty runner",
		},
		{
			name:       "all pass",
			statuses:   []Severity{SeverityPass, SeverityPass},
			wantPassed: 2,
		},
		{
			name:         "mixed",
			statuses:     []Severity{SeverityPass, SeverityInfo, SeverityWarning, SeverityError, SeverityWarning},
			wantPassed:   1,
			wantInfo:     1,
			wantWarnings: 2,
			wantErrors:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner()
			for i, s := range tt.statuses {
				r.AddCheck(&stubCheck{name: string(rune('a' + i)), status: s})
			}

			report := r.Run(t.Context())

			if len(report.Results) != len(tt.statuses) {
				t.Errorf("Results = %d, want %d", len(report.Results), len(tt.statuses))
			}
			want := Summary{Passed: tt.wantPassed, Info: tt.wantInfo, Warnings: tt.wantWarnings, Errors: tt.wantErrors}
			if report.Summary != want {
				t.Errorf("Summary = %+v, want %+v", report.Summary, want)
			}
			if report.HasErrors() != (tt.wantErrors > 0) {
				t.Errorf("HasErrors() = %v", report.HasErrors())
			}
			if report.HasWarnings() != (tt.wantWarnings > 0) {
				t.Errorf("HasWarnings() = %v", report.HasWarnings())
			}
			if report.Timestamp.IsZero() {
				t.Error("Timestamp not set")
			}
		})
	}
}

func TestRunner_Run_ResultsOrder(t *testing.T) {
	r := NewRunner()
	names := []string{"first", "second", "third"}
	checks := make([]*stubCheck, len(names))
	for i, n := range names {
		checks[i] = &stubCheck{name: n}
		r.AddCheck(checks[i])
	}

	report := r.Run(t.Context())
	for i, want := range names {
		if report.Results[i].Name != want {
			t.Errorf("Results[%d].Name = %q, want %q", i, report.Results[i].Name, want)
		}
		if checks[i].ran != 1 {
			t.Errorf("check %q ran %d times, want 1", want, checks[i].ran)
		}
	}
}

func TestSeverity_String(t *testing.T) {
	tests := map[Severity]string{
		SeverityPass:    "pass",
		SeverityInfo:    "info",
		SeverityWarning: "warning",
		SeverityError:   "error",
		Severity(42):    "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", s, got, want)
		}
		text, _ := s.MarshalText()
		if string(text) != want {
			t.Errorf("Severity(%d).MarshalText() = %q, want %q", s, text, want)
		}
	}
}
