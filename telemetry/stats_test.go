package telemetry

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		flock    int
		alive    []int
		captures []int
		want     Summary
	}{
		{
			name:  "no rounds",
			flock: 4,
			want:  Summary{FlockSize: 4, FinalAlive: 4},
		},
		{
			name:  "single round no capture",
			flock: 2,
			alive: []int{2},
			want:  Summary{Rounds: 1, FlockSize: 2, FinalAlive: 2, AliveMean: 2},
		},
		{
			name:     "captures",
			flock:    3,
			alive:    []int{3, 2, 2, 2, 1, 0},
			captures: []int{2, 5, 6},
			want: Summary{
				Rounds:       6,
				FlockSize:    3,
				Eaten:        3,
				FinalAlive:   0,
				AliveMean:    10.0 / 6.0,
				FirstCapture: 2,
				LastCapture:  6,
				CaptureGap:   2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.flock, tt.alive, tt.captures)

			if got.Rounds != tt.want.Rounds || got.FlockSize != tt.want.FlockSize ||
				got.Eaten != tt.want.Eaten || got.FinalAlive != tt.want.FinalAlive ||
				got.FirstCapture != tt.want.FirstCapture || got.LastCapture != tt.want.LastCapture {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
			if math.Abs(got.AliveMean-tt.want.AliveMean) > 1e-9 {
				t.Errorf("AliveMean = %v, want %v", got.AliveMean, tt.want.AliveMean)
			}
			if math.Abs(got.CaptureGap-tt.want.CaptureGap) > 1e-9 {
				t.Errorf("CaptureGap = %v, want %v", got.CaptureGap, tt.want.CaptureGap)
			}
		})
	}
}

func TestSummarizeStdDev(t *testing.T) {
	// Sample standard deviation of {2, 4, 4, 4, 5, 5, 7, 9} is sqrt(32/7)
	s := Summarize(9, []int{2, 4, 4, 4, 5, 5, 7, 9}, nil)

	if math.Abs(s.AliveMean-5) > 1e-9 {
		t.Errorf("AliveMean = %v, want 5", s.AliveMean)
	}
	if want := math.Sqrt(32.0 / 7.0); math.Abs(s.AliveStd-want) > 1e-9 {
		t.Errorf("AliveStd = %v, want %v", s.AliveStd, want)
	}
	if s.Eaten != 0 || s.FirstCapture != 0 || s.CaptureGap != 0 {
		t.Errorf("capture fields should be zero: %+v", s)
	}
}

func TestCollector(t *testing.T) {
	c := NewCollector(2)
	c.Record(1, pos(1, 0), []P{pos(2, 0), pos(5, 5)}, 2, false)
	c.Record(2, pos(1, 0), []P{pos(1.5, 0), pos(5, 5.5)}, 1, true)

	if got := c.Alive(); len(got) != 2 || got[1] != (AliveRecord{Round: 2, Alive: 1}) {
		t.Errorf("Alive() = %+v", got)
	}
	if got := c.CaptureRounds(); len(got) != 1 || got[0] != 2 {
		t.Errorf("CaptureRounds() = %v, want [2]", got)
	}
	pr := c.Positions()
	if len(pr) != 2 || pr[1].Sheep[1] != [2]float64{5, 5.5} || pr[0].Wolf != [2]float64{1, 0} {
		t.Errorf("Positions() = %+v", pr)
	}

	s := c.Summary()
	if s.Rounds != 2 || s.Eaten != 1 || s.FinalAlive != 1 || s.FirstCapture != 2 {
		t.Errorf("Summary() = %+v", s)
	}
	if math.Abs(s.AliveMean-1.5) > 1e-9 {
		t.Errorf("AliveMean = %v, want 1.5", s.AliveMean)
	}
}
