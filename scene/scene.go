package scene

import "github.com/gogpu/anchormark"

// Document is an in-memory document with a fixed selection.
type Document struct {
	Name      string
	selection []anchormark.Item
}

// Ensure Document implements anchormark.Document.
var _ anchormark.Document = (*Document)(nil)

// NewDocument creates a document whose selection is items.
func NewDocument(name string, items ...anchormark.Item) *Document {
	return &Document{Name: name, selection: items}
}

// Selection implements anchormark.Document.
func (d *Document) Selection() []anchormark.Item {
	return d.selection
}

// Workspace holds the open documents. The zero value has no document open.
type Workspace struct {
	docs   []*Document
	active int
}

// Ensure Workspace implements anchormark.Application.
var _ anchormark.Application = (*Workspace)(nil)

// NewWorkspace opens docs; the last one becomes active.
func NewWorkspace(docs ...*Document) *Workspace {
	w := &Workspace{}
	for _, d := range docs {
		w.Open(d)
	}
	return w
}

// Open adds doc to the workspace and makes it the active document.
// A nil doc is ignored.
func (w *Workspace) Open(doc *Document) {
	if doc == nil {
		return
	}
	w.docs = append(w.docs, doc)
	w.active = len(w.docs) - 1
}

// Documents returns the open documents in opening order.
func (w *Workspace) Documents() []*Document {
	return w.docs
}

// ActiveDocument implements anchormark.Application.
func (w *Workspace) ActiveDocument() (anchormark.Document, bool) {
	if w == nil || len(w.docs) == 0 {
		return nil, false
	}
	return w.docs[w.active], true
}
