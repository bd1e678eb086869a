package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultConfigYAML renders Defaults() as a commented YAML document.
func DefaultConfigYAML() ([]byte, error) {
	d := Defaults()

	names := make([]string, 0, len(d.Flags))
	for name := range d.Flags {
		names = append(names, name)
	}
	slices.Sort(names)
	flagsNode := mapping()
	for _, name := range names {
		flagsNode.Content = append(flagsNode.Content, scalar(name, ""), boolNode(d.Flags[name]))
	}

	root := mapping(
		pair("debug", boolNode(d.Debug), "Write a debug log (also --debug or CAMARIM_DEBUG=1)"),
		pair("log_path", scalar(d.LogPath, ""), ""),
		pair("log_level", scalar(d.LogLevel, ""), "debug, info, warn or error"),
		pair("seed_file", scalar(d.SeedFile, "!!str"), "YAML venue preloaded at startup (also --seed)"),
		pair("report_cache", mapping(
			pair("enabled", boolNode(d.ReportCache.Enabled), ""),
			pair("ttl", scalar(d.ReportCache.TTL.String(), ""), ""),
			pair("sliding", boolNode(d.ReportCache.Sliding), "Restart the TTL on every hit"),
		), "Rendered reports are cached until a change touches them"),
		pair("audit", mapping(
			pair("capacity", intNode(d.Audit.Capacity), "0 disables the history"),
		), "Change history shown by menu option 7"),
		pair("tracing", mapping(
			pair("enabled", boolNode(d.Tracing.Enabled), ""),
			pair("exporter", scalar(d.Tracing.Exporter, ""), "none, file, stdout or otlp"),
			pair("file_path", scalar(d.Tracing.FilePath, ""), ""),
			pair("otlp_endpoint", scalar(d.Tracing.OTLPEndpoint, ""), ""),
			pair("sample_rate", scalar(strconv.FormatFloat(d.Tracing.SampleRate, 'f', 1, 64), "!!float"), ""),
			pair("service_name", scalar(d.Tracing.ServiceName, ""), ""),
		), "OpenTelemetry spans for every venue operation"),
		pair("flags", flagsNode, "Feature flags"),
	)
	doc := &yaml.Node{
		Kind:        yaml.DocumentNode,
		HeadComment: "Camarim configuration",
		Content:     []*yaml.Node{root},
	}
	return encode(doc)
}

// SetFlag writes flags.<name> into the config file, keeping everything else
// (comments included). The file is created when missing.
func SetFlag(configPath, name string, enabled bool) error {
	var doc yaml.Node
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}
	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{mapping()}}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("parsing config: top level is not a mapping")
	}

	flagsNode := lookup(root, "flags")
	if flagsNode == nil || flagsNode.Kind != yaml.MappingNode {
		flagsNode = mapping()
		setKey(root, "flags", flagsNode)
	}
	setKey(flagsNode, name, boolNode(enabled))

	out, err := encode(&doc)
	if err != nil {
		return err
	}
	return writeAtomic(configPath, out)
}

func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func setKey(m *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content[i+1] = value
			return
		}
	}
	m.Content = append(m.Content, scalar(key, ""), value)
}

func encode(doc *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return buf.Bytes(), nil
}

// writeAtomic writes to a temp file in the same directory, then renames.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".camarim.yaml.tmp.*")
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
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

type kv struct {
	key     string
	value   *yaml.Node
	comment string
}

func pair(key string, value *yaml.Node, comment string) kv {
	return kv{key: key, value: value, comment: comment}
}

func mapping(pairs ...kv) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range pairs {
		k := scalar(p.key, "")
		k.HeadComment = p.comment
		n.Content = append(n.Content, k, p.value)
	}
	return n
}

func scalar(value, tag string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: tag}
}

func boolNode(b bool) *yaml.Node {
	return scalar(strconv.FormatBool(b), "!!bool")
}

func intNode(i int) *yaml.Node {
	return scalar(strconv.Itoa(i), "!!int")
}
