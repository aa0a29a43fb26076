// Package adapter converts filament message heads to and from the request and
// response types of net/http and fasthttp.
//
// Conversions into filament validate every header field: a name or value that
// header.ParseName or header.ParseValue would reject fails the conversion.
// Conversions out of filament cannot fail on headers.
package adapter

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/yourusername/filament/pkg/filament/header"
)

// Converter holds the header map configuration applied to every map built
// from foreign headers, so limits such as MaxEntries also bound untrusted
// input. A Converter is safe for concurrent use.
type Converter struct {
	cfg *header.Config
	log *zap.Logger
}

// NewConverter validates cfg and returns a Converter using it.
// A nil cfg uses header.DefaultConfig.
func NewConverter(cfg *header.Config) (*Converter, error) {
	if cfg == nil {
		cfg = header.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Converter{cfg: cfg, log: cfg.Logger}, nil
}

// Default is a Converter with the default configuration.
var Default = func() *Converter {
	c, _ := NewConverter(nil)
	return c
}()

func (c *Converter) newMap() *header.Map {
	// cfg was validated by NewConverter, so this cannot fail.
	m, _ := header.NewWithConfig(c.cfg)
	return m
}

// appendField validates one foreign field and appends it to m.
func (c *Converter) appendField(m *header.Map, name, value []byte) error {
	n, err := header.NameFromBytes(name)
	if err != nil {
		c.log.Debug("rejected header name", zap.ByteString("name", name))
		return fmt.Errorf("adapter: header %q: %w", name, err)
	}
	v, err := header.ValueFromBytes(value)
	if err != nil {
		c.log.Debug("rejected header value", zap.Stringer("name", n))
		return fmt.Errorf("adapter: header %s: %w", n, err)
	}
	if err := m.Append(n, v); err != nil {
		return fmt.Errorf("adapter: header %s: %w", n, err)
	}
	return nil
}
