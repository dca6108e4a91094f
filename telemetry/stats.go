package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// Summary holds aggregated statistics for a finished chase.
type Summary struct {
	Rounds       int     `json:"rounds"`
	FlockSize    int     `json:"flock_size"`
	Eaten        int     `json:"eaten"`
	FinalAlive   int     `json:"final_alive"`
	AliveMean    float64 `json:"alive_mean"`
	AliveStd     float64 `json:"alive_std"`
	FirstCapture int     `json:"first_capture"` // round of the first capture, 0 if none
	LastCapture  int     `json:"last_capture"`  // round of the last capture, 0 if none
	CaptureGap   float64 `json:"capture_gap"`   // mean rounds between consecutive captures
}

// Summarize computes a Summary from the alive count after each round and the
// rounds in which captures happened (ascending).
func Summarize(flockSize int, alive []int, captureRounds []int) Summary {
	s := Summary{
		Rounds:     len(alive),
		FlockSize:  flockSize,
		Eaten:      len(captureRounds),
		FinalAlive: flockSize,
	}

	if n := len(alive); n > 0 {
		s.FinalAlive = alive[n-1]
		values := make([]float64, n)
		for i, v := range alive {
			values[i] = float64(v)
		}
		s.AliveMean = stat.Mean(values, nil)
		if n > 1 {
			s.AliveStd = stat.StdDev(values, nil)
		}
	}

	if n := len(captureRounds); n > 0 {
		s.FirstCapture = captureRounds[0]
		s.LastCapture = captureRounds[n-1]
		if n > 1 {
			gaps := make([]float64, n-1)
			for i := 1; i < n; i++ {
				gaps[i-1] = float64(captureRounds[i] - captureRounds[i-1])
			}
			s.CaptureGap = stat.Mean(gaps, nil)
		}
	}

	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("rounds", s.Rounds),
		slog.Int("flock_size", s.FlockSize),
		slog.Int("eaten", s.Eaten),
		slog.Int("final_alive", s.FinalAlive),
		slog.Float64("alive_mean", s.AliveMean),
		slog.Float64("alive_std", s.AliveStd),
		slog.Int("first_capture", s.FirstCapture),
		slog.Int("last_capture", s.LastCapture),
		slog.Float64("capture_gap", s.CaptureGap),
	)
}

// LogStats logs the summary using slog.
func (s Summary) LogStats() {
	slog.Info("summary", "summary", s)
}
