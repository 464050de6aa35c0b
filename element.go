package svg

import (
	"fmt"
	"sort"

	"github.com/beevik/etree"
	"github.com/google/uuid"
)

// attributes the builder owns itself rather than passing through
var ownAttrs = map[string]bool{"d": true, "style": true, "id": true}

// FromElement returns a builder reading its commands from the d attribute
// of el, its style from the style attribute and every other attribute as a
// pass-through value. The builder is bound to el.
func FromElement(el *etree.Element) (*Builder, error) {
	b := NewBuilder()
	if err := b.Parse(el.SelectAttrValue("d", "")); err != nil {
		return nil, fmt.Errorf("error parsing path %q: %w", el.SelectAttrValue("id", ""), err)
	}
	style, err := ParseStyle(el.SelectAttrValue("style", ""))
	if err != nil {
		return nil, err
	}
	b.style = style
	for _, a := range el.Attr {
		key := a.FullKey()
		if ownAttrs[key] {
			continue
		}
		b.attrs[key] = a.Value
	}
	b.node = el
	return b, nil
}

// Node returns the element the builder is bound to, or nil.
func (b *Builder) Node() *etree.Element {
	return b.node
}

// Bind makes el the default target of Commit.
func (b *Builder) Bind(el *etree.Element) {
	b.node = el
}

// Create writes the path below root. When an element with the given id
// already exists it is updated as by CommitTo; otherwise a new path element
// is added to parent, or to root when parent is nil. Either way the builder
// ends up bound to the element. An empty id gets a generated one.
func (b *Builder) Create(root, parent *etree.Element, id string) error {
	if id == "" {
		id = "path-" + uuid.NewString()
	}
	if el := FindByID(root, id); el != nil {
		if err := b.CommitTo(el); err != nil {
			return err
		}
		b.node = el
		return nil
	}
	if parent == nil {
		parent = root
	}
	if parent == nil {
		return ErrNoNode
	}
	b.lazyInit()
	el := parent.CreateElement("path")
	b.writeAttrs(el)
	el.CreateAttr("id", id)
	if b.style.Len() > 0 {
		el.CreateAttr("style", b.style.String())
	}
	el.CreateAttr("d", b.String())
	b.node = el
	return nil
}

// Commit writes the builder state to its bound element.
func (b *Builder) Commit() error {
	return b.CommitTo(nil)
}

// CommitTo writes the builder state to el, or to the bound element when el
// is nil. Only what the builder holds is written: attributes when there are
// any, the style when it is not empty and d when there are commands.
func (b *Builder) CommitTo(el *etree.Element) error {
	if el == nil {
		el = b.node
	}
	if el == nil {
		return ErrNoNode
	}
	b.lazyInit()
	b.writeAttrs(el)
	if b.style.Len() > 0 {
		el.CreateAttr("style", b.style.String())
	}
	if len(b.commands) > 0 {
		el.CreateAttr("d", b.String())
	}
	return nil
}

// lazyInit makes the zero Builder usable.
func (b *Builder) lazyInit() {
	if b.style == nil {
		b.style = &Style{}
	}
	if b.attrs == nil {
		b.attrs = map[string]string{}
	}
}

func (b *Builder) writeAttrs(el *etree.Element) {
	b.lazyInit()
	keys := make([]string, 0, len(b.attrs))
	for k := range b.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		el.CreateAttr(k, b.attrs[k])
	}
}

// Style returns the style of the path. Changes to it are kept.
func (b *Builder) Style() *Style {
	b.lazyInit()
	return b.style
}

// MergeStyle sets the given properties, keeping the others, and returns the style.
func (b *Builder) MergeStyle(props map[string]string) *Style {
	b.lazyInit()
	b.style.Merge(props)
	return b.style
}

// Attr returns a pass-through attribute.
func (b *Builder) Attr(name string) (string, bool) {
	v, ok := b.attrs[name]
	return v, ok
}

// SetAttr sets a pass-through attribute written on commit.
func (b *Builder) SetAttr(name, value string) {
	b.lazyInit()
	b.attrs[name] = value
}

// Attrs returns a copy of the pass-through attributes.
func (b *Builder) Attrs() map[string]string {
	m := make(map[string]string, len(b.attrs))
	for k, v := range b.attrs {
		m[k] = v
	}
	return m
}
