package timestamps

import (
	"time"

	"gopkg.in/yaml.v3"
)

type yamlStamp struct {
	Name      string    `yaml:"name,omitempty"`
	Time      time.Time `yaml:"time"`
	FromStart string    `yaml:"from_start"`
}

type yamlDoc struct {
	RunID  string      `yaml:"run_id"`
	Stamps []yamlStamp `yaml:"stamps"`
}

// MarshalYAML implements yaml.Marshaler.
func (ts *Timestamps) MarshalYAML() (any, error) {
	doc := yamlDoc{RunID: ts.runID, Stamps: make([]yamlStamp, len(ts.times))}
	for i, at := range ts.times {
		doc.Stamps[i] = yamlStamp{
			Name:      nameAt(ts.names, i),
			Time:      at,
			FromStart: FormatHHMMSS(at.Sub(ts.times[0])),
		}
	}
	return doc, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (ts *Timestamps) UnmarshalYAML(node *yaml.Node) error {
	var doc yamlDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}
	ts.runID = doc.RunID
	ts.times = make([]time.Time, len(doc.Stamps))
	ts.names = make(map[string]int)
	if ts.clock == nil {
		ts.clock = time.Now
	}
	for i, s := range doc.Stamps {
		ts.times[i] = s.Time
		if s.Name != "" {
			ts.names[s.Name] = i
		}
	}
	return nil
}
