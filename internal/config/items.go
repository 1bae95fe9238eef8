package config

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ruminaider/selectkit/internal/selector"
	"go.yaml.in/yaml/v3"
)

// itemEntry accepts either a bare scalar ("apple") or a full mapping.
type itemEntry selector.Item

func (e *itemEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*e = itemEntry{Value: node.Value}
		return nil
	}
	var it selector.Item
	if err := node.Decode(&it); err != nil {
		return err
	}
	*e = itemEntry(it)
	return nil
}

type itemsDoc struct {
	Items []itemEntry `yaml:"items"`
}

// LoadItems reads an items file. A path of "-" reads stdin instead.
func LoadItems(path string, stdin io.Reader) ([]selector.Item, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}
	return ParseItems(data)
}

// ParseItems decodes items from YAML (an "items:" list or a bare list) or,
// when the data is not a YAML list, from plain text with one
// value[\tlabel[\tgroup]] per line.
func ParseItems(data []byte) ([]selector.Item, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err == nil && len(root.Content) > 0 {
		doc := root.Content[0]
		switch {
		case doc.Kind == yaml.SequenceNode:
			var entries []itemEntry
			if err := doc.Decode(&entries); err != nil {
				return nil, fmt.Errorf("parsing items: %w", err)
			}
			return finishItems(entries)
		case doc.Kind == yaml.MappingNode && hasKey(doc, "items"):
			var parsed itemsDoc
			if err := doc.Decode(&parsed); err != nil {
				return nil, fmt.Errorf("parsing items: %w", err)
			}
			return finishItems(parsed.Items)
		}
	}
	return parseLines(data)
}

func hasKey(mapping *yaml.Node, key string) bool {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return true
		}
	}
	return false
}

func finishItems(entries []itemEntry) ([]selector.Item, error) {
	items := make([]selector.Item, 0, len(entries))
	for i, e := range entries {
		if e.Value == "" {
			return nil, fmt.Errorf("item %d has no value", i+1)
		}
		items = append(items, selector.Item(e))
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	return items, nil
}

func parseLines(data []byte) ([]selector.Item, error) {
	var items []selector.Item
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		it := selector.Item{Value: strings.TrimSpace(fields[0])}
		if len(fields) > 1 {
			it.Label = strings.TrimSpace(fields[1])
		}
		if len(fields) > 2 {
			it.Group = strings.TrimSpace(fields[2])
		}
		if it.Value == "" {
			continue
		}
		items = append(items, it)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	return items, nil
}

// MarshalItems serializes items as an "items:" YAML document.
func MarshalItems(items []selector.Item) ([]byte, error) {
	return yaml.Marshal(struct {
		Items []selector.Item `yaml:"items"`
	}{items})
}
