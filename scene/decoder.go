package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/anchormark"
	"gopkg.in/yaml.v3"
)

// Item kinds recognized in scene files. Host-style names such as
// "PathItem" are accepted as aliases.
const (
	KindPath     = "path"
	KindCompound = "compound"
	KindGroup    = "group"
)

var kindAliases = map[string]string{
	"path":             KindPath,
	"pathitem":         KindPath,
	"compound":         KindCompound,
	"compound-path":    KindCompound,
	"compoundpath":     KindCompound,
	"compoundpathitem": KindCompound,
	"group":            KindGroup,
	"groupitem":        KindGroup,
}

// fileDocument is the on-disk layout of a scene.
type fileDocument struct {
	Name      string     `yaml:"name"`
	Selection []fileItem `yaml:"selection"`
}

type fileItem struct {
	Kind     string      `yaml:"kind"`
	Name     string      `yaml:"name"`
	Points   []filePoint `yaml:"points"`
	Paths    []fileItem  `yaml:"paths"`
	Children []fileItem  `yaml:"children"`
}

type filePoint struct {
	Anchor *coord `yaml:"anchor"`
	In     *coord `yaml:"in"`
	Out    *coord `yaml:"out"`
}

// coord is a point written as a two-element sequence, [x, y].
type coord anchormark.Point

func (c *coord) UnmarshalYAML(node *yaml.Node) error {
	var v []float64
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("line %d: coordinate must be [x, y]: %w", node.Line, err)
	}
	if len(v) != 2 {
		return fmt.Errorf("line %d: coordinate must have 2 numbers, got %d", node.Line, len(v))
	}
	*c = coord{X: v[0], Y: v[1]}
	return nil
}

// Load reads one scene document from r.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fd fileDocument
	if err := dec.Decode(&fd); err != nil {
		if errors.Is(err, io.EOF) {
			return NewDocument(""), nil
		}
		return nil, fmt.Errorf("scene: %w", err)
	}

	items := make([]anchormark.Item, 0, len(fd.Selection))
	for i := range fd.Selection {
		it, err := convertItem(&fd.Selection[i], fmt.Sprintf("selection[%d]", i))
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return NewDocument(fd.Name, items...), nil
}

// LoadFile reads a scene document from path. The document name defaults to
// the file name without its extension.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		base := filepath.Base(path)
		doc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	anchormark.Logger().Debug("scene: loaded document",
		"path", path,
		"name", doc.Name,
		"selected", len(doc.selection))
	return doc, nil
}

func convertItem(fi *fileItem, where string) (anchormark.Item, error) {
	kind, ok := kindAliases[strings.ToLower(fi.Kind)]
	if !ok {
		if fi.Kind == "" {
			return nil, fmt.Errorf("scene: %s: missing kind", where)
		}
		return &anchormark.Other{Name: fi.Name, Type: fi.Kind}, nil
	}

	switch kind {
	case KindPath:
		return convertPath(fi, where)
	case KindCompound:
		cp := &anchormark.CompoundPath{Name: fi.Name, Paths: make([]*anchormark.Path, 0, len(fi.Paths))}
		for i := range fi.Paths {
			sub := &fi.Paths[i]
			at := fmt.Sprintf("%s.paths[%d]", where, i)
			if sub.Kind != "" && kindAliases[strings.ToLower(sub.Kind)] != KindPath {
				return nil, fmt.Errorf("scene: %s: compound paths may only hold paths, got %q", at, sub.Kind)
			}
			p, err := convertPath(sub, at)
			if err != nil {
				return nil, err
			}
			cp.Paths = append(cp.Paths, p)
		}
		return cp, nil
	default:
		g := &anchormark.Group{Name: fi.Name, Children: make([]anchormark.Item, 0, len(fi.Children))}
		for i := range fi.Children {
			child, err := convertItem(&fi.Children[i], fmt.Sprintf("%s.children[%d]", where, i))
			if err != nil {
				return nil, err
			}
			g.Children = append(g.Children, child)
		}
		return g, nil
	}
}

func convertPath(fi *fileItem, where string) (*anchormark.Path, error) {
	p := &anchormark.Path{Name: fi.Name, Points: make([]anchormark.AnchorPoint, 0, len(fi.Points))}
	for i, fp := range fi.Points {
		if fp.Anchor == nil {
			return nil, fmt.Errorf("scene: %s.points[%d]: missing anchor", where, i)
		}
		ap := anchormark.CornerPoint(anchormark.Point(*fp.Anchor))
		if fp.In != nil {
			ap.In = anchormark.Point(*fp.In)
		}
		if fp.Out != nil {
			ap.Out = anchormark.Point(*fp.Out)
		}
		p.Points = append(p.Points, ap)
	}
	return p, nil
}
