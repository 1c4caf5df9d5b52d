package splay

import "fmt"

// DefaultCapacity is the arena capacity used when Config.Capacity is zero.
//
// Capacity bounds the number of nodes ever allocated over the lifetime of
// one built sequence, including the two guard nodes and nodes later
// detached by Delete.
const DefaultCapacity = 1 << 18

// Config configures a sequence tree.
type Config struct {
	// Capacity is the fixed maximum number of arena nodes. Zero selects
	// DefaultCapacity.
	Capacity int
}

func (cfg Config) normalized() Config {
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCapacity
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Capacity < 2 {
		return fmt.Errorf("%w: capacity %d cannot hold the guard nodes", ErrInvalidConfig, cfg.Capacity)
	}
	return nil
}
