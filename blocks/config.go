package blocks

import (
	"fmt"
	"math"
)

const (
	// DefaultSplitFactor: a boundary block is halved once its size reaches
	// DefaultSplitFactor·sqrt(n).
	DefaultSplitFactor = 2.0
	// DefaultMergeFactor: adjacent blocks are merged while their combined size
	// is at most DefaultMergeFactor·sqrt(n).
	DefaultMergeFactor = 1.0
)

// Config configures a block graph. The zero value is a valid configuration
// and selects the default factors.
type Config struct {
	// SplitFactor scales the split threshold SplitFactor·sqrt(n).
	SplitFactor float64
	// MergeFactor scales the merge threshold MergeFactor·sqrt(n).
	// It has to be smaller than SplitFactor.
	MergeFactor float64
	// Observer, if set, is called synchronously for every structural change
	// the rebalancer performs.
	Observer func(Event)
}

func (cfg Config) normalized() Config {
	if cfg.SplitFactor == 0 {
		cfg.SplitFactor = DefaultSplitFactor
	}
	if cfg.MergeFactor == 0 {
		cfg.MergeFactor = DefaultMergeFactor
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if !(cfg.SplitFactor > 0) || math.IsInf(cfg.SplitFactor, 0) {
		return fmt.Errorf("%w: split factor must be positive, is %v", ErrInvalidConfig, cfg.SplitFactor)
	}
	if !(cfg.MergeFactor > 0) || math.IsInf(cfg.MergeFactor, 0) {
		return fmt.Errorf("%w: merge factor must be positive, is %v", ErrInvalidConfig, cfg.MergeFactor)
	}
	if cfg.MergeFactor >= cfg.SplitFactor {
		return fmt.Errorf("%w: merge factor %v must be smaller than split factor %v",
			ErrInvalidConfig, cfg.MergeFactor, cfg.SplitFactor)
	}
	return nil
}
