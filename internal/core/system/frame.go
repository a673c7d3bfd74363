package system

import "time"

// Frame describes the loop's progress. A snapshot is taken after every tick.
type Frame struct {
	DeltaTime  time.Duration
	TotalTime  time.Duration
	FrameCount int64
}

func (f Frame) advance(dt time.Duration) Frame {
	return Frame{DeltaTime: dt, TotalTime: f.TotalTime + dt, FrameCount: f.FrameCount + 1}
}
