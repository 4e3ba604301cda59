package content

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// ButtonNode is a call-to-action link in the AST.
type ButtonNode struct {
	ast.BaseInline
	URL     []byte
	Label   []byte
	Variant []byte // empty for the default style
}

func (n *ButtonNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"URL":     string(n.URL),
		"Variant": string(n.Variant),
	}, nil)
}

// KindButton is the node kind for ButtonNode.
var KindButton = ast.NewNodeKind("Button")

func (n *ButtonNode) Kind() ast.NodeKind {
	return KindButton
}

// Class returns the CSS class list for the button.
func (n *ButtonNode) Class() string {
	if len(n.Variant) == 0 {
		return "btn"
	}
	return "btn btn-" + string(n.Variant)
}

const buttonPrefix = "[!button"

// buttonParser parses [!button|Label](URL) and [!button:variant|Label](URL).
type buttonParser struct{}

// NewButtonParser creates the button inline parser.
func NewButtonParser() parser.InlineParser {
	return &buttonParser{}
}

func (s *buttonParser) Trigger() []byte {
	return []byte{'['}
}

func (s *buttonParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if !bytes.HasPrefix(line, []byte(buttonPrefix)) {
		return nil
	}

	rest := line[len(buttonPrefix):]
	var variant []byte
	switch {
	case len(rest) > 0 && rest[0] == '|':
		rest = rest[1:]
	case len(rest) > 0 && rest[0] == ':':
		pipe := bytes.IndexByte(rest, '|')
		if pipe < 2 || !isVariant(rest[1:pipe]) {
			return nil
		}
		variant = rest[1:pipe]
		rest = rest[pipe+1:]
	default:
		return nil
	}

	labelEnd := bytes.IndexByte(rest, ']')
	if labelEnd == -1 || labelEnd+1 >= len(rest) || rest[labelEnd+1] != '(' {
		return nil
	}
	label := rest[:labelEnd]

	urlPart := rest[labelEnd+2:]
	urlEnd := bytes.IndexByte(urlPart, ')')
	if urlEnd == -1 {
		return nil
	}

	consumed := len(line) - len(urlPart) + urlEnd + 1
	block.Advance(consumed)

	return &ButtonNode{
		URL:     urlPart[:urlEnd],
		Label:   label,
		Variant: variant,
	}
}

func isVariant(b []byte) bool {
	for _, c := range b {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

// buttonRenderer renders ButtonNode to HTML.
type buttonRenderer struct {
	html.Config
}

// NewButtonRenderer creates the button node renderer.
func NewButtonRenderer(opts ...html.Option) renderer.NodeRenderer {
	r := &buttonRenderer{
		Config: html.NewConfig(),
	}
	for _, opt := range opts {
		opt.SetHTMLOption(&r.Config)
	}
	return r
}

func (r *buttonRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindButton, r.renderButton)
}

func (r *buttonRenderer) renderButton(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ButtonNode)

	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.URL, false)))
	_, _ = w.WriteString(`" class="`)
	_, _ = w.WriteString(n.Class())
	_, _ = w.WriteString(`">`)
	_, _ = w.Write(util.EscapeHTML(n.Label))
	_, _ = w.WriteString(`</a>`)

	return ast.WalkContinue, nil
}

// ButtonExtension adds button links to goldmark.
type ButtonExtension struct{}

func (e *ButtonExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(NewButtonParser(), 50),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(NewButtonRenderer(), 50),
	))
}

// NewButtonExtension creates the button extension.
func NewButtonExtension() goldmark.Extender {
	return &ButtonExtension{}
}
