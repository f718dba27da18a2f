package doctree

// Tree is the result of a scan: the folder hierarchy plus a flat name lookup of
// every leaf page, index pages included.
type Tree struct {
	Root  *Node
	Pages map[string]*Node
}

// Lookup finds a leaf page by name.
func (t *Tree) Lookup(name string) (*Node, bool) {
	p, ok := t.Pages[name]
	return p, ok
}

// Walk visits the tree in pre-order: a folder before its children, children in
// scan order. Index pages are not visited on their own; they belong to their folder.
// The first error returned by fn stops the walk.
func (t *Tree) Walk(fn func(*Node) error) error {
	return walk(t.Root, fn)
}

func walk(n *Node, fn func(*Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	for _, child := range n.children {
		if child.IsFolder() {
			if err := walk(child, fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(child); err != nil {
			return err
		}
	}
	return nil
}

// Stats counts folders and pages (index pages included) in the tree.
func (t *Tree) Stats() (folders, pages int) {
	_ = t.Walk(func(n *Node) error {
		if n.IsFolder() {
			folders++
			if n.index != nil {
				pages++
			}
			return nil
		}
		pages++
		return nil
	})
	return folders, pages
}

// forget drops n, and every page below it when n is a folder, from the flat
// lookup. Slots already taken over by other pages are left alone.
func (t *Tree) forget(n *Node) {
	if !n.IsFolder() {
		if t.Pages[n.Name] == n {
			delete(t.Pages, n.Name)
		}
		return
	}
	if n.index != nil {
		t.forget(n.index)
	}
	for _, child := range n.children {
		t.forget(child)
	}
}
