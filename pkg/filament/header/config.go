package header

import (
	"go.uber.org/zap"
)

// Defaults used by the zero Map and by DefaultConfig.
const (
	DefaultCapacity              = 8
	DefaultMaxEntries            = 1 << 15
	DefaultMaxValues             = 1 << 16
	DefaultDisplacementThreshold = 128
	DefaultForwardShiftThreshold = 512
	DefaultRedPressure           = 512
)

// Config holds tuning knobs for a Map.
//
// The zero value of every numeric field means "use the default", so a
// partially filled Config (for example one decoded from a TOML file) is valid
// after Validate.
type Config struct {
	// InitialCapacity is a hint for the number of distinct names the map
	// should hold before its first growth (default: 6, i.e. 8 slots).
	InitialCapacity int `toml:"initial_capacity"`

	// MaxEntries caps the number of distinct names (default: 32768).
	MaxEntries int `toml:"max_entries"`

	// MaxValues caps the total number of values across all names (default: 65536).
	MaxValues int `toml:"max_values"`

	// DisplacementThreshold is the distance from its home slot at which an
	// inserted name counts as a long probe (default: 128).
	DisplacementThreshold int `toml:"displacement_threshold"`

	// ForwardShiftThreshold is the number of entries an insertion may push
	// forward before it counts as a long probe (default: 512).
	ForwardShiftThreshold int `toml:"forward_shift_threshold"`

	// RedPressure is the accumulated displacement and shift of long probes
	// in a sparse table that switches the map to the keyed hash (default: 512).
	RedPressure int `toml:"red_pressure"`

	// Logger receives growth and escalation events. nil disables logging.
	Logger *zap.Logger `toml:"-"`

	// Metrics receives growth and escalation counters. nil disables metrics.
	Metrics *Metrics `toml:"-"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxEntries:            DefaultMaxEntries,
		MaxValues:             DefaultMaxValues,
		DisplacementThreshold: DefaultDisplacementThreshold,
		ForwardShiftThreshold: DefaultForwardShiftThreshold,
		RedPressure:           DefaultRedPressure,
	}
}

// Validate fills unset fields with defaults and rejects negative or
// contradictory settings.
func (c *Config) Validate() error {
	if c.InitialCapacity < 0 || c.MaxEntries < 0 || c.MaxValues < 0 ||
		c.DisplacementThreshold < 0 || c.ForwardShiftThreshold < 0 || c.RedPressure < 0 {
		return ErrInvalidConfig
	}
	if c.MaxEntries == 0 {
		c.MaxEntries = DefaultMaxEntries
	}
	if c.MaxValues == 0 {
		c.MaxValues = DefaultMaxValues
	}
	if c.DisplacementThreshold == 0 {
		c.DisplacementThreshold = DefaultDisplacementThreshold
	}
	if c.ForwardShiftThreshold == 0 {
		c.ForwardShiftThreshold = DefaultForwardShiftThreshold
	}
	if c.RedPressure == 0 {
		c.RedPressure = DefaultRedPressure
	}
	if c.MaxEntries > maxEntriesCeiling {
		return ErrInvalidConfig
	}
	if c.MaxValues < c.MaxEntries {
		return ErrInvalidConfig
	}
	if c.RedPressure < c.DisplacementThreshold {
		return ErrInvalidConfig
	}
	if c.InitialCapacity > c.MaxEntries {
		c.InitialCapacity = c.MaxEntries
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return nil
}

// defaultConfig is shared by every Map created without an explicit Config.
var defaultConfig = func() *Config {
	c := DefaultConfig()
	_ = c.Validate()
	return c
}()
