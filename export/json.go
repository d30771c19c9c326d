package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tsawler/grille/format"
	"github.com/tsawler/grille/model"
)

// Options controls how a registry is written.
type Options struct {
	// Coerce writes margins that parse as finite numbers as numbers.
	Coerce bool
}

// Write writes reg to w in the given format.
func Write(w io.Writer, f format.Format, reg *model.Registry, opts Options) error {
	switch f {
	case format.JSON:
		return WriteJSON(w, reg, opts)
	case format.YAML:
		return WriteYAML(w, reg, opts)
	case format.XLSX:
		return WriteXLSX(w, reg)
	default:
		return fmt.Errorf("unsupported output format: %s", f)
	}
}

// WriteJSON writes reg as an indented JSON object keyed by zone code.
func WriteJSON(w io.Writer, reg *model.Registry, opts Options) error {
	var data any = reg
	if opts.Coerce {
		data = Document(reg, true)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// Document converts reg into plain maps keyed by the JSON field names,
// suitable for generic encoders and schema validation.
func Document(reg *model.Registry, coerce bool) map[string]map[string]any {
	doc := make(map[string]map[string]any, reg.Len())
	for _, z := range reg.Records() {
		_, values := recordFields(z, coerce, model.MarginKind.Key)
		doc[z.Code] = values
	}
	return doc
}
