package header

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Level is the hash-flooding danger level of a Map.
//
// Every Map starts Green and hashes names with xxhash. An insertion is a long
// probe when its displacement reaches Config.DisplacementThreshold or it
// pushes Config.ForwardShiftThreshold entries forward. In a densely loaded
// table a long probe only makes the table grow. In a sparse table (under 1/5
// full) it cannot come from ordinary clustering: the map moves to Yellow and
// accumulates the probe as pressure. When that pressure reaches
// Config.RedPressure the map moves to Red: it draws a private maphash seed
// and rehashes every entry with it. Red is permanent for the lifetime of the
// map.
type Level uint8

const (
	Green Level = iota
	Yellow
	Red
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}

// danger is owned by a single Map. It is never shared between maps, so an
// attack against one table does not affect any other.
type danger struct {
	level    Level
	pressure int
	seed     maphash.Seed

	// fast overrides the Green/Yellow hash. Only tests set it.
	fast func(string) uint64
}

// hash returns the hash of n under the currently active function.
func (d *danger) hash(n Name) uint64 {
	if d.level == Red {
		return maphash.String(d.seed, n.name)
	}
	if d.fast != nil {
		return d.fast(n.name)
	}
	return xxhash.Sum64String(n.name)
}

// sparseLoadDivisor defines a sparse table: fewer than 1/sparseLoadDivisor
// of its slots are in use.
const sparseLoadDivisor = 5

// observe classifies one insertion. grow asks the map to double its table
// instead of escalating; toYellow reports the move from Green, which observe
// performs itself; toRed asks the map to switch to the keyed hash.
func (d *danger) observe(disp, shift int, sparse bool, c *Config) (grow, toYellow, toRed bool) {
	if d.level == Red {
		return false, false, false
	}
	if disp < c.DisplacementThreshold && shift < c.ForwardShiftThreshold {
		return false, false, false
	}
	if !sparse {
		return true, false, false
	}
	if d.level == Green {
		d.level = Yellow
		toYellow = true
	}
	d.pressure += disp + shift
	return false, toYellow, d.pressure >= c.RedPressure
}

// escalate switches to the keyed hash with a fresh per-map seed.
func (d *danger) escalate() {
	d.level = Red
	d.seed = maphash.MakeSeed()
}
