// Package doctree models a scanned directory as a hierarchy of folders and pages.
package doctree

import (
	"fmt"

	"git.home.luguber.info/inful/uwiki/internal/naming"
)

// RootName is the name given to the root folder of every tree.
const RootName = "root"

// Kind tags a Node as a leaf page or a folder.
type Kind int

const (
	KindPage Kind = iota
	KindFolder
)

func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindFolder:
		return "folder"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Node is an element of the document tree. Folder-only state (children and the
// index page) is empty for pages.
type Node struct {
	Kind        Kind
	Name        string // file or directory name without extension
	Title       string
	LogicalPath string // slash separated, relative to the scan root, no extension
	SourcePath  string // absolute filesystem path
	Depth       int

	parent   *Node // navigational only; ownership runs parent to children
	children []*Node
	byName   map[string]int
	index    *Node
}

func newNode(kind Kind, parent *Node, name, logicalPath, sourcePath string) *Node {
	n := &Node{
		Kind:        kind,
		Name:        name,
		Title:       naming.Titleize(name),
		LogicalPath: logicalPath,
		SourcePath:  sourcePath,
		parent:      parent,
	}
	if parent != nil {
		n.Depth = parent.Depth + 1
	}
	if kind == KindFolder {
		n.byName = make(map[string]int)
	}
	return n
}

func newRoot(sourcePath, title string) *Node {
	root := newNode(KindFolder, nil, RootName, "", sourcePath)
	root.Title = title
	return root
}

// IsFolder reports whether n is a folder.
func (n *Node) IsFolder() bool { return n.Kind == KindFolder }

// IsRoot reports whether n is the root of its tree.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Parent returns the folder that owns n, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the folder's children in scan order.
func (n *Node) Children() []*Node { return n.children }

// Child looks up a direct child by name.
func (n *Node) Child(name string) (*Node, bool) {
	i, ok := n.byName[name]
	if !ok {
		return nil, false
	}
	return n.children[i], true
}

// Index returns the page that represents the folder itself, if any.
func (n *Node) Index() *Node { return n.index }

// attach registers child with the folder. A file matching the folder name, its
// singular or "index" becomes the index page (last match wins); everything else
// is stored by name, replacing an earlier child of the same name in place.
// It reports the node that was displaced, if any.
func (n *Node) attach(child *Node) (displaced *Node) {
	if child.Kind == KindPage && naming.IsIndexFor(n.Name, child.Name) {
		displaced = n.index
		n.index = child
		return displaced
	}
	if i, ok := n.byName[child.Name]; ok {
		displaced = n.children[i]
		n.children[i] = child
		return displaced
	}
	n.byName[child.Name] = len(n.children)
	n.children = append(n.children, child)
	return nil
}

func (n *Node) String() string {
	return fmt.Sprintf("%s(name=%s, title=%s, path=%s)", n.Kind, n.Name, n.Title, n.LogicalPath)
}
