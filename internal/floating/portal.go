package floating

import "github.com/LISSConsulting/LISSTech.Floater/internal/dom"

// portalStrategy renders the child into a detached container created at
// construction and moves the rendered root under body once mounted.
type portalStrategy struct {
	host     dom.Host
	detached *dom.Node
	root     *dom.Node
	attached bool
}

func newPortalStrategy(host dom.Host) *portalStrategy {
	return &portalStrategy{
		host:     host,
		detached: host.CreateElement("div"),
	}
}

func (p *portalStrategy) Name() string { return string(ModePortal) }

func (p *portalStrategy) Target() *dom.Node { return p.root }

func (p *portalStrategy) Mount(b binding) {
	if p.detached == nil {
		return
	}
	p.render(b)
	p.attached = true
	if p.root != nil {
		p.host.Body().AppendChild(p.root)
	}
	if b.measure(p.root) {
		p.render(b)
	}
}

func (p *portalStrategy) Update(b binding) {
	if !p.attached {
		return
	}
	p.render(b)
	if b.measure(p.root) {
		p.render(b)
	}
}

// Unmount moves the root back into the detached container before tearing it
// down, then drops every node reference.
func (p *portalStrategy) Unmount() {
	if p.detached != nil {
		if p.root != nil {
			p.detached.AppendChild(p.root)
		}
		dom.UnmountAt(p.detached)
	}
	p.root = nil
	p.detached = nil
	p.attached = false
}

// render patches the root in place, which keeps it wherever it currently
// lives. A new root is rendered into the detached container and moved to
// body if the portal is already attached.
func (p *portalStrategy) render(b binding) {
	el := b.child()
	if el == nil {
		p.dropRoot()
		return
	}
	if p.root != nil && p.root.Tag() == el.TagName() {
		dom.Patch(p.root, *el)
		return
	}
	p.dropRoot()
	p.root = p.host.Render(*el, p.detached)
	if p.attached {
		p.host.Body().AppendChild(p.root)
	}
}

func (p *portalStrategy) dropRoot() {
	if p.root != nil {
		p.root.Detach()
		p.root = nil
	}
}
