package almanac

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlDocument struct {
	Seeds    []int64   `yaml:"seeds"`
	Start    string    `yaml:"start"`
	Terminal string    `yaml:"terminal"`
	Maps     []yamlMap `yaml:"maps"`
}

type yamlMap struct {
	From  string     `yaml:"from"`
	To    string     `yaml:"to"`
	Rules []yamlRule `yaml:"rules"`
	line  int
}

type yamlRule RuleSpec

func (m *yamlMap) UnmarshalYAML(n *yaml.Node) error {
	type plain yamlMap
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	if p.From == "" || p.To == "" {
		return &ParseError{Line: n.Line, Err: errors.New("map needs both from and to")}
	}
	*m = yamlMap(p)
	m.line = n.Line
	return nil
}

func (r *yamlRule) UnmarshalYAML(n *yaml.Node) error {
	var f []int64
	if err := n.Decode(&f); err != nil {
		return &ParseError{Line: n.Line, Err: err}
	}
	if len(f) != 3 {
		return &ParseError{Line: n.Line, Err: fmt.Errorf("rule needs [dest, src, length], got %d values", len(f))}
	}
	*r = yamlRule{Dest: f[0], Src: f[1], Length: f[2]}
	return nil
}

// ParseYAML reads the YAML layout. Unknown top-level keys are rejected.
func ParseYAML(r io.Reader, name string) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var y yamlDocument
	if err := dec.Decode(&y); err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = name
			return nil, pe
		}
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: name, Err: errors.New("empty document")}
		}
		return nil, &ParseError{Path: name, Err: err}
	}

	doc := &Document{Seeds: y.Seeds, Start: y.Start, Terminal: y.Terminal}
	for _, m := range y.Maps {
		rules := make([]RuleSpec, len(m.Rules))
		for i, r := range m.Rules {
			rules[i] = RuleSpec(r)
		}
		doc.Maps = append(doc.Maps, Map{From: m.From, To: m.To, Rules: rules, Line: m.line})
	}
	return doc, nil
}
