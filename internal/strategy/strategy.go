package strategy

import "battery-sim/internal/model"

// Strategy computes a full dispatch outcome for one battery over a
// flattened timeline. Implementations own their running SoC and output
// trace; nothing is shared, so strategies can run in any order (or
// concurrently) on the same inputs.
type Strategy interface {
	Name() string
	Run(tl model.Timeline, b model.Bounds) model.StrategyResult
}
