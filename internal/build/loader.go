package build

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docfxgen/internal/doctree"
)

// EventSpec is the on-disk form of one discovery event. The file is an
// ordered list; authors must list modules and classes before their members,
// matching the pipeline ordering contract.
type EventSpec struct {
	Kind      string      `yaml:"kind"`
	Name      string      `yaml:"name"`
	Bases     []string    `yaml:"bases,omitempty"`
	Summary   []string    `yaml:"summary,omitempty"`
	Docstring string      `yaml:"docstring,omitempty"`
	Source    *SourceSpec `yaml:"source,omitempty"`
}

// SourceSpec locates the symbol in its source file.
type SourceSpec struct {
	Path string `yaml:"path"`
	Line int    `yaml:"line"`
}

// fileObject backs ObjectRef for events loaded from a file.
type fileObject struct {
	name   string
	source *SourceSpec
}

func (o *fileObject) FullName() string { return o.name }

func (o *fileObject) Source() (string, int, bool) {
	if o.source == nil {
		return "", 0, false
	}
	return o.source.Path, o.source.Line, true
}

// classObject additionally exposes declared bases.
type classObject struct {
	fileObject
	bases []ObjectRef
}

func (o *classObject) Bases() []ObjectRef { return o.bases }

// LoadEvents reads a discovery-event file and materializes events in file
// order. Base-class names are linked across events so multi-level chains
// resolve; a base that is not itself an event becomes a leaf class reference.
func LoadEvents(path string) ([]Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read events file %s: %w", path, err)
	}
	var specs []EventSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parse events file %s: %w", path, err)
	}

	// Names that must expose bases: declared classes/exceptions and anything
	// referenced as a base.
	classNames := map[string]bool{}
	for _, sp := range specs {
		if sp.Kind == string(KindClass) || sp.Kind == string(KindException) {
			classNames[sp.Name] = true
		}
		for _, b := range sp.Bases {
			classNames[b] = true
		}
	}

	objects := map[string]ObjectRef{}
	ensure := func(name string) ObjectRef {
		if o, ok := objects[name]; ok {
			return o
		}
		var o ObjectRef
		if classNames[name] {
			o = &classObject{fileObject: fileObject{name: name}}
		} else {
			o = &fileObject{name: name}
		}
		objects[name] = o
		return o
	}
	for _, sp := range specs {
		o := ensure(sp.Name)
		switch ref := o.(type) {
		case *classObject:
			ref.source = sp.Source
		case *fileObject:
			ref.source = sp.Source
		}
	}
	for _, sp := range specs {
		if len(sp.Bases) == 0 {
			continue
		}
		cls, ok := objects[sp.Name].(*classObject)
		if !ok {
			continue
		}
		for _, b := range sp.Bases {
			cls.bases = append(cls.bases, ensure(b))
		}
	}

	events := make([]Event, 0, len(specs))
	for _, sp := range specs {
		ev := Event{
			Kind:   Kind(sp.Kind),
			Name:   sp.Name,
			Object: objects[sp.Name],
			Lines:  sp.Summary,
		}
		if sp.Docstring != "" {
			block, err := docstringBlock(sp)
			if err != nil {
				return nil, fmt.Errorf("parse docstring of %s: %w", sp.Name, err)
			}
			ev.Content = block
		}
		events = append(events, ev)
	}
	return events, nil
}

// docstringBlock parses an event's raw docstring and wraps it in the content
// block shape the transformer expects, exactly as an external pipeline would
// hand it over.
func docstringBlock(sp EventSpec) (*doctree.Node, error) {
	content, err := doctree.ParseDocstring([]byte(sp.Docstring))
	if err != nil {
		return nil, err
	}
	_, module, _ := splitOwner(Kind(sp.Kind), sp.Name)
	sig := &doctree.Node{
		Kind:     doctree.KindSignature,
		Module:   module,
		FullName: sp.Name,
		IDs:      []string{sp.Name},
	}
	sig.Append(doctree.NewText(lastSegment(sp.Name)))
	block := &doctree.Node{
		Kind:      doctree.KindBlock,
		Domain:    contentDomain,
		BlockType: sp.Kind,
		Module:    module,
		FullName:  sp.Name,
		IDs:       []string{sp.Name},
	}
	block.Append(sig, content)
	return block, nil
}
