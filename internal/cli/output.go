package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/identifiers/doi"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var outputFormats = []string{formatText, formatJSON, formatYAML}

// record is one DOI in json and yaml output.
type record struct {
	DOI    string `json:"doi" yaml:"doi"`
	Prefix string `json:"prefix" yaml:"prefix"`
	Suffix string `json:"suffix" yaml:"suffix"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

func newRecord(d doi.DOI, source string) record {
	return record{
		DOI:    d.String(),
		Prefix: d.Prefix(),
		Suffix: d.Suffix(),
		Source: source,
	}
}

// writeRecords prints records in the requested format. Text output is one
// DOI per line, ready for piping.
func writeRecords(w io.Writer, format string, records []record) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if records == nil {
			records = []record{}
		}
		return enc.Encode(records)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if records == nil {
			records = []record{}
		}
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	case formatText, "":
		for _, r := range records {
			if _, err := fmt.Fprintln(w, r.DOI); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output %q (expected text|json|yaml)", format)
	}
}

// writeRecord prints a single record; json and yaml emit an object rather
// than a one-element list.
func writeRecord(w io.Writer, format string, r record) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeRecords(w, format, []record{r})
	}
}
