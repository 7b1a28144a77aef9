package testutil

import (
	"fmt"
	"strings"
	"testing"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

// recordingT captures failures instead of failing the running test.
type recordingT struct {
	testing.TB
	failures []string
}

func (r *recordingT) Helper() {}

func (r *recordingT) Error(args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprint(args...))
}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestAssertions(t *testing.T) {
	illegal := &chesserrors.MoveError{Err: chesserrors.ErrInvalidMove, Move: "e2e5", Turn: "White", Reason: "not a legal move"}
	badSquare := &chesserrors.ParseError{Err: chesserrors.ErrParseFailure, Input: "z9", Expected: "square a1-h8"}

	tests := []struct {
		name   string
		assert func(tb testing.TB)
		want   string // substring of the single failure; empty means pass
	}{
		{"equal moves", func(tb testing.TB) { AssertEqual(tb, []string{"e2e4"}, []string{"e2e4"}) }, ""},
		{"unequal moves", func(tb testing.TB) { AssertEqual(tb, []string{"e2e3"}, []string{"e2e4"}) }, "mismatch (-want +got)"},
		{"no error", func(tb testing.TB) { AssertNoError(tb, nil) }, ""},
		{"unexpected error", func(tb testing.TB) { AssertNoError(tb, illegal) }, "unexpected error: move \"e2e5\""},
		{"error present", func(tb testing.TB) { AssertError(tb, badSquare) }, ""},
		{"error missing", func(tb testing.TB) { AssertError(tb, nil) }, "expected error but got nil"},
		{"move error chain", func(tb testing.TB) {
			AssertErrorIs(tb, fmt.Errorf("session: %w", illegal), chesserrors.ErrInvalidMove)
		}, ""},
		{"parse error chain", func(tb testing.TB) {
			AssertErrorIs(tb, chesserrors.Wrap(badSquare, "line 3"), chesserrors.ErrParseFailure)
		}, ""},
		{"wrong sentinel", func(tb testing.TB) { AssertErrorIs(tb, illegal, chesserrors.ErrParseFailure) }, "want parse failure"},
		{"nil is nil", func(tb testing.TB) { AssertErrorIs(tb, nil, nil) }, ""},
		{"contains", func(tb testing.TB) { AssertContains(tb, "alice moved e2 to e4", "e4") }, ""},
		{"does not contain", func(tb testing.TB) { AssertContains(tb, "White to move", "Black") }, `does not contain "Black"`},
		{"not contains", func(tb testing.TB) { AssertNotContains(tb, "White to move", "check") }, ""},
		{"unwanted substring", func(tb testing.TB) { AssertNotContains(tb, "White to move, in check", "check") }, `should not contain "check"`},
		{"true", func(tb testing.TB) { AssertTrue(tb, true) }, ""},
		{"not true", func(tb testing.TB) { AssertTrue(tb, false) }, "expected true but got false"},
		{"false", func(tb testing.TB) { AssertFalse(tb, false) }, ""},
		{"not false", func(tb testing.TB) { AssertFalse(tb, true) }, "expected false but got true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingT{TB: t}
			tt.assert(rec)
			if tt.want == "" {
				if len(rec.failures) != 0 {
					t.Errorf("unexpected failures: %q", rec.failures)
				}
				return
			}
			if len(rec.failures) != 1 || !strings.Contains(rec.failures[0], tt.want) {
				t.Errorf("failures = %q, want one containing %q", rec.failures, tt.want)
			}
		})
	}
}

func TestReportMessagePrefix(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no message", nil, "expected true but got false"},
		{"plain message", []interface{}{"seat freed"}, "seat freed: expected true but got false"},
		{"formatted message", []interface{}{"ply %d of %s", 3, "mate.txt"}, "ply 3 of mate.txt: expected true but got false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingT{TB: t}
			AssertTrue(rec, false, tt.args...)
			AssertEqual(t, rec.failures, []string{tt.want})
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single non-string", []interface{}{42}, "42"},
		{"format string", []interface{}{"move %s", "e2e4"}, "move e2e4"},
		{"non-string first with args", []interface{}{7, "ignored"}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
