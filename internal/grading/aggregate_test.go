package grading_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/signalnine/autograde-notify/internal/grading"
	"github.com/signalnine/autograde-notify/internal/result"
)

func runner(name string, max *float64, scores ...float64) result.RunnerResult {
	tests := make([]result.Test, len(scores))
	for i, s := range scores {
		tests[i] = result.Test{Score: s}
	}
	return result.RunnerResult{Runner: name, Results: result.Results{MaxScore: max, Tests: tests}}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name       string
		in         []result.RunnerResult
		wantReport grading.Report
		wantOK     bool
	}{
		{
			name:   "empty",
			in:     nil,
			wantOK: false,
		},
		{
			name:   "zero max drops tests",
			in:     []result.RunnerResult{runner("a", result.MaxScore(0), 5)},
			wantOK: false,
		},
		{
			name:   "absent max drops tests",
			in:     []result.RunnerResult{runner("a", nil, 5)},
			wantOK: false,
		},
		{
			name:       "single runner",
			in:         []result.RunnerResult{runner("a", result.MaxScore(10), 7, 3)},
			wantReport: grading.Report{EarnedPoints: 10, MaxPoints: 10},
			wantOK:     true,
		},
		{
			name: "mixed runners",
			in: []result.RunnerResult{
				runner("a", result.MaxScore(5), 2),
				runner("b", result.MaxScore(0), 100),
				runner("c", result.MaxScore(15), 15),
			},
			wantReport: grading.Report{EarnedPoints: 17, MaxPoints: 20},
			wantOK:     true,
		},
		{
			name:       "earned may exceed max",
			in:         []result.RunnerResult{runner("a", result.MaxScore(1), 3, -1, 2)},
			wantReport: grading.Report{EarnedPoints: 4, MaxPoints: 1},
			wantOK:     true,
		},
		{
			name:   "nan max is ungraded",
			in:     []result.RunnerResult{runner("a", result.MaxScore(math.NaN()), 1)},
			wantOK: false,
		},
		{
			name: "negative max is summed",
			in: []result.RunnerResult{
				runner("a", result.MaxScore(10), 4),
				runner("b", result.MaxScore(-2), 1),
			},
			wantReport: grading.Report{EarnedPoints: 5, MaxPoints: 8},
			wantOK:     true,
		},
		{
			name: "negatives cancelling to zero report nothing",
			in: []result.RunnerResult{
				runner("a", result.MaxScore(2), 1),
				runner("b", result.MaxScore(-2), 1),
			},
			wantReport: grading.Report{EarnedPoints: 2, MaxPoints: 0},
			wantOK:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := grading.Aggregate(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantReport, got)
		})
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	in := []result.RunnerResult{
		runner("a", result.MaxScore(5), 2),
		runner("b", result.MaxScore(0), 100),
		runner("c", result.MaxScore(15), 15),
	}
	reversed := []result.RunnerResult{in[2], in[1], in[0]}

	want, _ := grading.Aggregate(in)
	got, _ := grading.Aggregate(reversed)
	assert.Equal(t, want, got)
}

func TestAggregateIdempotent(t *testing.T) {
	in := []result.RunnerResult{runner("a", result.MaxScore(3), 1, 1)}
	first, ok1 := grading.Aggregate(in)
	second, ok2 := grading.Aggregate(in)
	assert.Equal(t, first, second)
	assert.Equal(t, ok1, ok2)
}

func TestReportComplete(t *testing.T) {
	assert.True(t, grading.Report{EarnedPoints: 10, MaxPoints: 10}.Complete())
	assert.True(t, grading.Report{EarnedPoints: 11, MaxPoints: 10}.Complete())
	assert.False(t, grading.Report{EarnedPoints: 9.5, MaxPoints: 10}.Complete())
}

func TestBreakdown(t *testing.T) {
	got := grading.Breakdown([]result.RunnerResult{
		runner("unit", result.MaxScore(5), 2, 1),
		runner("lint", nil, 9),
	})
	assert.Equal(t, []grading.RunnerTotal{
		{Runner: "unit", Graded: true, EarnedPoints: 3, MaxPoints: 5},
		{Runner: "lint", Graded: false},
	}, got)
}
