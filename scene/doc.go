// Package scene is a file-backed host for the annotator.
//
// A scene file describes one document and its current selection as a tree
// of paths, compound paths and groups. It is read with gopkg.in/yaml.v3, so
// both YAML and JSON files are accepted:
//
//	name: glyphs
//	selection:
//	  - kind: path
//	    name: stem
//	    points:
//	      - anchor: [10, 20]
//	        in: [0, 20]
//	        out: [20, 20]
//	      - anchor: [10, 80]     # no handles
//	  - kind: compound
//	    name: o
//	    paths:
//	      - points: [...]
//	      - points: [...]
//	  - kind: group
//	    children: [...]
//	  - kind: text               # skipped by the annotator
//
// An omitted in or out control point equals the anchor, meaning the handle
// is absent. Kinds other than path, compound and group load as
// [anchormark.Other] items.
//
// Documents can also be assembled in code with [Builder].
package scene
