package floating

import "github.com/LISSConsulting/LISSTech.Floater/internal/dom"

// measuringStyle keeps the first render laid out but unpainted so it can be
// measured without a visible flash.
var measuringStyle = dom.Style{"display": "block", "opacity": "0"}

// fallbackStrategy owns a container appended to body and re-renders the
// child into it imperatively on every update.
type fallbackStrategy struct {
	host      dom.Host
	container *dom.Node
}

func newFallbackStrategy(host dom.Host) *fallbackStrategy {
	return &fallbackStrategy{host: host}
}

func (f *fallbackStrategy) Name() string { return string(ModeFallback) }

func (f *fallbackStrategy) Target() *dom.Node {
	if f.container == nil {
		return nil
	}
	return f.container.FirstChild()
}

func (f *fallbackStrategy) Mount(b binding) {
	if f.container != nil {
		return
	}
	f.container = f.host.CreateElement("div")
	f.host.Body().AppendChild(f.container)

	if el := b.child(); el != nil {
		f.host.Render(el.WithStyle(measuringStyle), f.container)
	}
	b.measure(f.Target())
	f.render(b)
}

// Update always re-renders, whether or not the position moved.
// TODO: skip the first render when neither props nor position changed.
func (f *fallbackStrategy) Update(b binding) {
	if f.container == nil {
		return
	}
	f.render(b)
	if b.measure(f.Target()) {
		f.render(b)
	}
}

func (f *fallbackStrategy) Unmount() {
	if f.container == nil {
		return
	}
	dom.UnmountAt(f.container)
	f.container.Detach()
	f.container = nil
}

func (f *fallbackStrategy) render(b binding) {
	el := b.child()
	if el == nil {
		dom.UnmountAt(f.container)
		return
	}
	f.host.Render(*el, f.container)
}
