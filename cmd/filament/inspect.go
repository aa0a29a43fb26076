package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/valyala/bytebufferpool"

	"github.com/yourusername/filament/pkg/filament/header"
)

type inspectOptions struct {
	asJSON bool
	stats  bool
}

func newInspectCommand(root *rootOptions) *cobra.Command {
	opts := &inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Load a header block and print it back",
		Long: "Read \"Name: value\" lines from a file (or stdin) into a header map and " +
			"print the map as a header block or as JSON. Blank lines and lines " +
			"starting with '#' are skipped.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			defer cfg.Logger.Sync() //nolint:errcheck

			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			m, err := header.NewWithConfig(cfg)
			if err != nil {
				return err
			}
			if err := readBlock(in, m); err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), m)
		},
	}
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the map as a JSON object")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print name, value and danger counts after the map")
	return cmd
}

func (o *inspectOptions) print(w io.Writer, m *header.Map) error {
	if o.asJSON {
		out, err := json.Marshal(m)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", out); err != nil {
			return err
		}
	} else if err := writeBlock(w, m); err != nil {
		return err
	}
	if o.stats {
		_, err := fmt.Fprintf(w, "names=%d values=%d capacity=%d danger=%s\n",
			m.Len(), m.ValuesLen(), m.Capacity(), m.DangerLevel())
		return err
	}
	return nil
}

// readBlock appends every "Name: value" line of r to m. Optional whitespace
// around the value is trimmed.
func readBlock(r io.Reader, m *header.Map) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), header.MaxNameLen+1<<16)
	line := 0
	for sc.Scan() {
		line++
		b := bytes.TrimRight(sc.Bytes(), "\r")
		if len(b) == 0 || b[0] == '#' {
			continue
		}
		colon := bytes.IndexByte(b, ':')
		if colon < 0 {
			return fmt.Errorf("line %d: missing ':'", line)
		}
		name, err := header.NameFromBytes(b[:colon])
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		value, err := header.ValueFromBytes(bytes.TrimSpace(b[colon+1:]))
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := m.Append(name, value); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return sc.Err()
}

// writeBlock renders m as "name: value" lines, one per value, in map order.
func writeBlock(w io.Writer, m *header.Map) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	m.VisitAll(func(name header.Name, v *header.Value) bool {
		buf.WriteString(name.String())
		buf.WriteString(": ")
		buf.Write(v.Bytes())
		buf.WriteByte('\n')
		return true
	})
	_, err := buf.WriteTo(w)
	return err
}
