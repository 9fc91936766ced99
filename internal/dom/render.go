package dom

// Element is a virtual element: what a caller asks to have rendered. It is a
// value; rendering it produces or patches a Node.
type Element struct {
	Tag     string
	Content string
	Style   Style
}

// TagName returns the tag, defaulting to "div".
func (e Element) TagName() string { return tagOrDefault(e.Tag) }

// WithStyle returns a copy of e whose style is replaced by s.
func (e Element) WithStyle(s Style) Element {
	e.Style = s.Clone()
	return e
}

// Render renders el into container, replacing whatever was rendered there.
// When the container's first child has the same tag it is patched in place so
// node identity survives re-renders. The rendered root node is returned.
func (d *Document) Render(el Element, container *Node) *Node {
	if root := container.FirstChild(); root != nil && root.tag == el.TagName() {
		for _, extra := range container.Children()[1:] {
			container.RemoveChild(extra)
		}
		Patch(root, el)
		return root
	}
	UnmountAt(container)
	root := d.CreateElement(el.Tag)
	Patch(root, el)
	container.AppendChild(root)
	return root
}

// Patch updates node in place to match el. The tag is left unchanged.
func Patch(node *Node, el Element) {
	node.content = el.Content
	node.style = el.Style.Clone()
}

// UnmountAt removes every child of container.
func UnmountAt(container *Node) {
	if container == nil {
		return
	}
	for _, c := range container.Children() {
		container.RemoveChild(c)
	}
}

func tagOrDefault(tag string) string {
	if tag == "" {
		return "div"
	}
	return tag
}
