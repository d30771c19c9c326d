package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/grille/model"
)

// WriteYAML writes reg as a YAML mapping keyed by zone code, zones in
// natural order and fields in a fixed order.
func WriteYAML(w io.Writer, reg *model.Registry, opts Options) error {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, z := range sortedRecords(reg) {
		names, values := recordFields(z, opts.Coerce, model.MarginKind.Key)

		fields := &yaml.Node{Kind: yaml.MappingNode}
		for _, name := range names {
			value := &yaml.Node{}
			if err := value.Encode(values[name]); err != nil {
				return fmt.Errorf("failed to encode %s.%s: %w", z.Code, name, err)
			}
			fields.Content = append(fields.Content, stringNode(name), value)
		}
		root.Content = append(root.Content, stringNode(z.Code), fields)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}

// stringNode returns a scalar node that always reads back as a string,
// so codes like "204" are not turned into integers.
func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
