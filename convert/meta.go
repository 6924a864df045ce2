package convert

import (
	"strings"

	"github.com/viant/yamlast/ast"
	"github.com/viant/yamlast/cst"
)

// convertProperties converts the anchor/tag property sub-nodes the upstream
// engine attached to a content node, wires them as children of the owner and
// widens the owner's range to cover them so parent containment holds.
func (c *converter) convertProperties(n *cst.Node, owner ast.Node, base *ast.BaseNode,
	anchor **ast.Anchor, tag **ast.Tag, document *ast.Document) {
	if n.Anchor != nil {
		*anchor = c.anchorNode(n.Anchor, owner, document)
		c.cover(base, (*anchor).Range, (*anchor).Loc)
	}
	if n.Tag != nil {
		*tag = c.tagNode(n.Tag, owner)
		c.cover(base, (*tag).Range, (*tag).Loc)
	}
}

func (c *converter) cover(base *ast.BaseNode, rng ast.Range, loc ast.Location) {
	if rng[0] < base.Range[0] {
		base.Range[0] = rng[0]
		base.Loc.Start = loc.Start
	}
	if rng[1] > base.Range[1] {
		base.Range[1] = rng[1]
		base.Loc.End = loc.End
	}
}

// anchorNode converts an `&name` definition into an Anchor node, emits its
// sigil/name token pair and registers it on the owning document. A later
// definition under the same name silently overwrites the registry entry.
func (c *converter) anchorNode(n *cst.Node, owner ast.Node, document *ast.Document) *ast.Anchor {
	text := n.Text(c.src)
	anchor := &ast.Anchor{}
	anchor.Type = ast.TypeAnchor
	anchor.Range, anchor.Loc = nodeLocations(n)
	anchor.SetParent(owner)

	start := n.Start.Offset
	if strings.HasPrefix(text, "&") {
		anchor.Name = text[1:]
		c.addToken(ast.TokenPunctuator, start, start+1)
		if n.End.Offset > start+1 {
			c.addToken(ast.TokenIdentifier, start+1, n.End.Offset)
		}
	} else {
		// sigil-less anchor text from the engine: whole-range fallback
		anchor.Name = text
		c.addToken(ast.TokenIdentifier, start, n.End.Offset)
	}
	document.RegisterAnchor(anchor)
	return anchor
}

// tagNode converts a `!name`/`!!name` annotation into a Tag node and emits
// its sigil/name token pair. The shorthand `!!` sigil is two characters, the
// local `!` sigil one.
func (c *converter) tagNode(n *cst.Node, owner ast.Node) *ast.Tag {
	text := n.Text(c.src)
	tag := &ast.Tag{Raw: text}
	tag.Type = ast.TypeTag
	tag.Range, tag.Loc = nodeLocations(n)
	tag.SetParent(owner)

	start := n.Start.Offset
	sigil := 0
	if strings.HasPrefix(text, "!!") {
		sigil = 2
	} else if strings.HasPrefix(text, "!") {
		sigil = 1
	}
	if sigil > 0 {
		tag.Tag = resolveTag(text)
		c.addToken(ast.TokenPunctuator, start, start+sigil)
		if n.End.Offset > start+sigil {
			c.addToken(ast.TokenIdentifier, start+sigil, n.End.Offset)
		}
	} else {
		// sigil-less tag text from the engine: whole-range fallback
		tag.Tag = text
		c.addToken(ast.TokenIdentifier, start, n.End.Offset)
	}
	return tag
}

// resolveTag expands the `!!` shorthand into the core-schema tag URI and
// unwraps verbatim `!<uri>` forms; local tags keep their shorthand.
func resolveTag(text string) string {
	switch {
	case strings.HasPrefix(text, "!!"):
		return "tag:yaml.org,2002:" + text[2:]
	case strings.HasPrefix(text, "!<") && strings.HasSuffix(text, ">"):
		return text[2 : len(text)-1]
	}
	return text
}
