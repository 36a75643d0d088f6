package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/codebrowser/internal/log"
)

// SaveLanguage sets languages.<ext> in the config file.
// This preserves comments and formatting in other sections by using yaml.Node.
func SaveLanguage(configPath, ext, language string) error {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if ext == "" {
		return fmt.Errorf("extension is required")
	}
	if err := ValidateLanguages(map[string]string{ext: language}); err != nil {
		return err
	}
	return saveValue(configPath, []string{"languages", ext}, language)
}

// SaveBinding sets keymap.bindings.<key> in the config file. An empty opID
// unbinds the key.
func SaveBinding(configPath, key, opID string) error {
	if opID != "" {
		if err := ValidateKeymap(KeymapConfig{Bindings: map[string]string{key: opID}}); err != nil {
			return err
		}
	}
	return saveValue(configPath, []string{"keymap", "bindings", key}, opID)
}

// saveValue sets the scalar at path, creating intermediate mappings.
func saveValue(configPath string, path []string, value string) error {
	// Read existing file content
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	// Parse into yaml.Node to preserve comments
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

	node := doc.Content[0]
	for i, key := range path {
		last := i == len(path)-1
		child := lookupKey(node, key)
		switch {
		case child == nil && last:
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: key},
				scalarNode(value),
			)
		case child == nil:
			child = &yaml.Node{Kind: yaml.MappingNode}
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, child)
			node = child
		case last:
			replaceScalar(child, value)
		case child.Kind != yaml.MappingNode:
			// "languages:" with no entries parses as a null scalar
			child.Kind = yaml.MappingNode
			child.Tag = ""
			child.Value = ""
			node = child
		default:
			node = child
		}
	}

	// Marshal back to YAML
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	if err := writeAtomic(configPath, buf.Bytes()); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to save config", err, "path", configPath, "key", strings.Join(path, "."))
		return err
	}
	log.Info(log.CatConfig, "Saved config value", "path", configPath, "key", strings.Join(path, "."), "value", value)
	return nil
}

// lookupKey returns the value node for key in a mapping node.
func lookupKey(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i < len(mapping.Content)-1; i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func scalarNode(value string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Value: value}
	if value == "" {
		n.Style = yaml.DoubleQuotedStyle
	}
	return n
}

// replaceScalar overwrites n in place so attached comments survive.
func replaceScalar(n *yaml.Node, value string) {
	repl := scalarNode(value)
	n.Kind = repl.Kind
	n.Style = repl.Style
	n.Tag = ""
	n.Value = repl.Value
	n.Content = nil
}

// writeAtomic writes data to path via a temp file and rename.
func writeAtomic(configPath string, data []byte) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".codebrowser.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
