// Package pipeline wires analysis stages to documents as named, lazily
// computed attributes. A stage runs at most once per document; its result
// is cached on the document until the text changes.
package pipeline

import (
	"fmt"

	"github.com/dtnitsch/readscore/pkg/readability"
	"github.com/dtnitsch/readscore/pkg/textstat"
)

// Attribute names for the built-in stages.
const (
	AttrStatistics  = "statistics"
	AttrReadability = "readability"
)

// Stage computes one named derived attribute for a document.
type Stage struct {
	Name    string
	Compute func(doc *Document) (interface{}, error)
}

// Pipeline holds the registered stages. Registration happens once at
// construction time; per-call registration guards are not needed.
type Pipeline struct {
	stages []Stage
	index  map[string]int
}

// New returns a pipeline with the standard statistics and readability
// stages registered.
func New() *Pipeline {
	p := &Pipeline{index: make(map[string]int)}

	p.Register(Stage{
		Name: AttrStatistics,
		Compute: func(doc *Document) (interface{}, error) {
			return textstat.Describe(doc.Text()), nil
		},
	})
	p.Register(Stage{
		Name: AttrReadability,
		Compute: func(doc *Document) (interface{}, error) {
			stats, err := doc.Statistics()
			if err != nil {
				return nil, err
			}
			return readability.Compute(stats), nil
		},
	})

	return p
}

// Register adds a stage. Registering an already-present name is a no-op,
// so repeated initialization is safe.
func (p *Pipeline) Register(stage Stage) {
	if _, exists := p.index[stage.Name]; exists {
		return
	}
	p.index[stage.Name] = len(p.stages)
	p.stages = append(p.stages, stage)
}

// Lookup returns the stage registered under name.
func (p *Pipeline) Lookup(name string) (Stage, bool) {
	i, ok := p.index[name]
	if !ok {
		return Stage{}, false
	}
	return p.stages[i], true
}

// StageNames returns registered stage names in registration order.
func (p *Pipeline) StageNames() []string {
	names := make([]string, len(p.stages))
	for i, stage := range p.stages {
		names[i] = stage.Name
	}
	return names
}

// Document is a single text under analysis plus its cached attributes.
// A document is not safe for concurrent use; score each document on its
// own goroutine instead.
type Document struct {
	pipeline *Pipeline
	text     string
	attrs    map[string]attrCell
}

type attrCell struct {
	value interface{}
	err   error
}

// NewDocument wraps text for analysis by p.
func (p *Pipeline) NewDocument(text string) *Document {
	return &Document{
		pipeline: p,
		text:     text,
		attrs:    make(map[string]attrCell),
	}
}

// Text returns the document's current text.
func (d *Document) Text() string {
	return d.text
}

// SetText replaces the text and invalidates all cached attributes.
func (d *Document) SetText(text string) {
	d.text = text
	d.Invalidate()
}

// Invalidate drops every cached attribute so the next access recomputes.
func (d *Document) Invalidate() {
	d.attrs = make(map[string]attrCell)
}

// Attr returns the named attribute, computing and caching it on first
// access. An unknown attribute name is a contract violation by the
// caller and surfaces as an error, never a silent zero value.
func (d *Document) Attr(name string) (interface{}, error) {
	if cell, ok := d.attrs[name]; ok {
		return cell.value, cell.err
	}

	stage, ok := d.pipeline.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("no stage registered for attribute %q", name)
	}

	value, err := stage.Compute(d)
	d.attrs[name] = attrCell{value: value, err: err}
	return value, err
}

// Statistics returns the document's descriptive statistics attribute.
func (d *Document) Statistics() (readability.DocumentStatistics, error) {
	value, err := d.Attr(AttrStatistics)
	if err != nil {
		return readability.DocumentStatistics{}, err
	}
	stats, ok := value.(readability.DocumentStatistics)
	if !ok {
		return readability.DocumentStatistics{}, fmt.Errorf("attribute %q has unexpected type %T", AttrStatistics, value)
	}
	return stats, nil
}

// Readability returns the document's readability scores attribute.
func (d *Document) Readability() (readability.Scores, error) {
	value, err := d.Attr(AttrReadability)
	if err != nil {
		return readability.Scores{}, err
	}
	scores, ok := value.(readability.Scores)
	if !ok {
		return readability.Scores{}, fmt.Errorf("attribute %q has unexpected type %T", AttrReadability, value)
	}
	return scores, nil
}
