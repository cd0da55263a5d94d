package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	FramesPerSecond   float64
	AveragePopulation float64
	TotalFrames       int
	Births            int
	Deaths            int
	Resets            int
	StartTime         time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one frame and how long it took
func (s *Stats) Update(frame, population, births, deaths int, duration time.Duration) {
	s.TotalFrames = frame
	s.Births += births
	s.Deaths += deaths
	if duration > 0 {
		s.FramesPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
