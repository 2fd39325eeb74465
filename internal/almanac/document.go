package almanac

import (
	"almanac/internal/engine"
)

// RuleSpec is one "dest src length" line.
type RuleSpec struct {
	Dest   int64
	Src    int64
	Length int64
}

// Map is one "<From>-to-<To> map:" block.
type Map struct {
	From  string
	To    string
	Rules []RuleSpec
	Line  int // header line, 0 when unknown
}

// Document is a parsed almanac. Start and Terminal are empty unless the
// source set them.
type Document struct {
	Seeds    []int64
	Start    string
	Terminal string
	Maps     []Map
}

// Stages validates every map and returns one engine.Stage per map, in file
// order.
func (d *Document) Stages() ([]*engine.Stage, error) {
	out := make([]*engine.Stage, 0, len(d.Maps))
	for _, m := range d.Maps {
		rules := make([]engine.Rule, 0, len(m.Rules))
		for _, r := range m.Rules {
			rules = append(rules, engine.Rule{SourceStart: r.Src, SourceLength: r.Length, Offset: r.Dest - r.Src})
		}
		s, err := engine.NewStage(m.From, m.To, rules...)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
