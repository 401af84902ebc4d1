package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/gofcat/internal/log"
)

// ErrInvalidKey is returned for a setting key that is empty or malformed.
var ErrInvalidKey = errors.New("setting key must be a dotted path like ui.markdown_style")

// SaveSetting sets a single dotted key (e.g. "output.format") in the config file.
// Comments and formatting in the rest of the file are preserved by editing the
// yaml.Node tree. Missing intermediate mappings are created.
func SaveSetting(configPath, key, value string) error {
	parts := strings.Split(key, ".")
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	if doc.Kind == 0 {
		// Empty or new file - create document structure
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("parsing config: top level must be a mapping")
	}

	if err := setPath(doc.Content[0], parts, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(configPath, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	log.Info(log.CatConfig, "Saved setting", "path", configPath, "key", key)
	return nil
}

// setPath walks (and creates) mapping nodes along parts and sets the final scalar.
func setPath(node *yaml.Node, parts []string, value string) error {
	key := parts[0]

	var child *yaml.Node
	for i := 0; i < len(node.Content)-1; i += 2 {
		if node.Content[i].Value == key {
			child = node.Content[i+1]
			break
		}
	}

	if len(parts) == 1 {
		scalar := &yaml.Node{Kind: yaml.ScalarNode, Value: value}
		if child == nil {
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, scalar)
			return nil
		}
		if child.Kind != yaml.ScalarNode {
			return fmt.Errorf("%s is a section, not a value", key)
		}
		// Keep the line comment, replace the value
		child.Value = value
		child.Tag = ""
		child.Style = 0
		return nil
	}

	if child == nil {
		child = &yaml.Node{Kind: yaml.MappingNode}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, child)
	}
	if child.Kind != yaml.MappingNode {
		return fmt.Errorf("%s is a value, not a section", key)
	}
	return setPath(child, parts[1:], value)
}
