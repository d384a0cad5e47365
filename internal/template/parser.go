package template

// node is the template AST. The tagged variants mirror the language:
// literal text, a variable path, an each-block, and an if/else-block.
type node interface{ isNode() }

type textNode struct{ text string }

type variableNode struct {
	path string
	// raw is the literal {{path}} form, re-emitted when the path does not
	// resolve at the top level.
	raw string
}

type eachNode struct {
	path string
	body []node
}

type ifNode struct {
	path     string
	thenBody []node
	elseBody []node
}

func (textNode) isNode()     {}
func (variableNode) isNode() {}
func (eachNode) isNode()     {}
func (ifNode) isNode()       {}

type parser struct {
	tokens []token
	pos    int
}

// parse builds the AST for a token stream. The grammar is forgiving:
// stray else/close tags outside a block and unterminated blocks degrade
// to literal text instead of failing the whole section.
func parse(tokens []token) []node {
	p := &parser{tokens: tokens}
	nodes, _ := p.parseNodes(nil)
	return nodes
}

// parseNodes consumes tokens until one of the stop kinds (or EOF) and
// returns the nodes plus the stop token that ended the run.
func (p *parser) parseNodes(stop map[tokenKind]bool) ([]node, *token) {
	var nodes []node
	for p.pos < len(p.tokens) {
		t := p.tokens[p.pos]
		if stop != nil && stop[t.kind] {
			p.pos++
			return nodes, &t
		}

		p.pos++
		switch t.kind {
		case tokText:
			nodes = append(nodes, textNode{text: t.text})
		case tokVariable:
			nodes = append(nodes, variableNode{path: t.text, raw: t.raw})
		case tokOpenEach:
			body, end := p.parseNodes(map[tokenKind]bool{tokCloseEach: true})
			if end == nil {
				// Unterminated block: keep the opening tag literal and
				// splice the body back in.
				nodes = append(nodes, textNode{text: t.raw})
				nodes = append(nodes, body...)
				continue
			}
			nodes = append(nodes, eachNode{path: t.text, body: body})
		case tokOpenIf:
			thenBody, end := p.parseNodes(map[tokenKind]bool{tokElse: true, tokCloseIf: true})
			var elseBody []node
			if end != nil && end.kind == tokElse {
				elseBody, end = p.parseNodes(map[tokenKind]bool{tokCloseIf: true})
			}
			if end == nil || end.kind != tokCloseIf {
				nodes = append(nodes, textNode{text: t.raw})
				nodes = append(nodes, thenBody...)
				nodes = append(nodes, elseBody...)
				continue
			}
			nodes = append(nodes, ifNode{path: t.text, thenBody: thenBody, elseBody: elseBody})
		default:
			// Stray else or close tag — literal.
			nodes = append(nodes, textNode{text: t.raw})
		}
	}
	return nodes, nil
}
