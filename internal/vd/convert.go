package vd

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// node is a generic XML element tree used to walk the drawable.
type node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []node     `xml:",any"`
}

// attr returns the value of the attribute with the given local name,
// ignoring namespaces (android:, aapt:, or none).
func (n *node) attr(local string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// Convert transforms VectorDrawable XML into SVG text. It fails on
// malformed XML, on input whose root element is not <vector>, and on
// conversion producing no drawable content.
func Convert(input string, opts Options) (string, error) {
	opts = opts.Resolve()

	var root node
	if err := xml.Unmarshal([]byte(input), &root); err != nil {
		return "", fmt.Errorf("convert vector drawable: %w", err)
	}
	if root.XMLName.Local != "vector" {
		return "", fmt.Errorf("convert vector drawable: root element is <%s>, want <vector>", root.XMLName.Local)
	}

	c := converter{opts: opts}
	var b strings.Builder
	if opts.XMLDeclaration {
		b.WriteString(xml.Header)
	}
	if err := c.writeSVG(&b, &root); err != nil {
		return "", err
	}

	out := b.String()
	if strings.TrimSpace(out) == "" {
		return "", errors.New("convert vector drawable: produced empty output")
	}
	return out, nil
}

type converter struct {
	opts Options
}

func (c *converter) writeSVG(b *strings.Builder, root *node) error {
	vw := root.attr("viewportWidth")
	vh := root.attr("viewportHeight")
	if vw == "" || vh == "" {
		return errors.New("convert vector drawable: missing viewportWidth or viewportHeight")
	}

	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
	if w := dimension(root.attr("width")); w != "" {
		fmt.Fprintf(b, ` width="%s"`, escapeAttr(w))
	}
	if h := dimension(root.attr("height")); h != "" {
		fmt.Fprintf(b, ` height="%s"`, escapeAttr(h))
	}
	fmt.Fprintf(b, ` viewBox="0 0 %s %s">`, c.num(vw), c.num(vh))

	for i := range root.Nodes {
		c.writeNode(b, &root.Nodes[i])
	}
	b.WriteString(`</svg>`)
	return nil
}

func (c *converter) writeNode(b *strings.Builder, n *node) {
	switch n.XMLName.Local {
	case "path":
		c.writePath(b, n)
	case "group":
		c.writeGroup(b, n)
	case "clip-path":
		if d := n.attr("pathData"); d != "" {
			fmt.Fprintf(b, `<clipPath><path d="%s"/></clipPath>`, escapeAttr(d))
		}
	}
	// Other elements (aapt:attr gradients, etc.) are not supported and
	// are dropped from the output.
}

func (c *converter) writePath(b *strings.Builder, n *node) {
	d := n.attr("pathData")
	if d == "" {
		return
	}

	b.WriteString(`<path d="` + escapeAttr(d) + `"`)
	if fill := c.fillColor(n.attr("fillColor")); fill != "" {
		fmt.Fprintf(b, ` fill="%s"`, escapeAttr(fill))
	}
	if v := n.attr("fillAlpha"); v != "" {
		fmt.Fprintf(b, ` fill-opacity="%s"`, c.num(v))
	}
	if n.attr("fillType") == "evenOdd" {
		b.WriteString(` fill-rule="evenodd"`)
	}
	if v := color(n.attr("strokeColor")); v != "" {
		fmt.Fprintf(b, ` stroke="%s"`, escapeAttr(v))
	}
	if v := n.attr("strokeWidth"); v != "" {
		fmt.Fprintf(b, ` stroke-width="%s"`, c.num(v))
	}
	if v := n.attr("strokeAlpha"); v != "" {
		fmt.Fprintf(b, ` stroke-opacity="%s"`, c.num(v))
	}
	b.WriteString(`/>`)
}

func (c *converter) writeGroup(b *strings.Builder, n *node) {
	b.WriteString(`<g`)
	if t := c.groupTransform(n); t != "" {
		fmt.Fprintf(b, ` transform="%s"`, escapeAttr(t))
	}
	b.WriteString(`>`)
	for i := range n.Nodes {
		c.writeNode(b, &n.Nodes[i])
	}
	b.WriteString(`</g>`)
}

// groupTransform assembles an SVG transform list from the group's
// translate/rotate/scale attributes, in that order.
func (c *converter) groupTransform(n *node) string {
	var parts []string

	tx, ty := n.attr("translateX"), n.attr("translateY")
	if tx != "" || ty != "" {
		parts = append(parts, fmt.Sprintf("translate(%s %s)", c.numOr(tx, "0"), c.numOr(ty, "0")))
	}
	if r := n.attr("rotation"); r != "" {
		px, py := n.attr("pivotX"), n.attr("pivotY")
		if px != "" || py != "" {
			parts = append(parts, fmt.Sprintf("rotate(%s %s %s)", c.num(r), c.numOr(px, "0"), c.numOr(py, "0")))
		} else {
			parts = append(parts, fmt.Sprintf("rotate(%s)", c.num(r)))
		}
	}
	sx, sy := n.attr("scaleX"), n.attr("scaleY")
	if sx != "" || sy != "" {
		parts = append(parts, fmt.Sprintf("scale(%s %s)", c.numOr(sx, "1"), c.numOr(sy, "1")))
	}

	return strings.Join(parts, " ")
}

// fillColor resolves a path's fill, honoring Tint and ForceBlackFill.
func (c *converter) fillColor(raw string) string {
	if c.opts.Tint != "" {
		return c.opts.Tint
	}
	if c.opts.ForceBlackFill {
		return "#000000"
	}
	return color(raw)
}

// num formats a numeric attribute with the configured precision,
// trimming trailing zeros. Non-numeric input passes through untouched.
func (c *converter) num(s string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return s
	}
	out := strconv.FormatFloat(f, 'f', c.opts.Precision, 64)
	if strings.Contains(out, ".") {
		out = strings.TrimRight(out, "0")
		out = strings.TrimRight(out, ".")
	}
	return out
}

func (c *converter) numOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return c.num(s)
}

// dimension strips Android density suffixes from a size like "24dp".
func dimension(s string) string {
	s = strings.TrimSpace(s)
	for _, suffix := range []string{"dp", "dip", "px", "sp"} {
		if v, ok := strings.CutSuffix(s, suffix); ok {
			return v
		}
	}
	return s
}

// color maps Android color syntax to SVG. #AARRGGBB drops the alpha
// channel; everything else passes through.
func color(s string) string {
	if len(s) == 9 && s[0] == '#' {
		return "#" + s[3:]
	}
	return s
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
