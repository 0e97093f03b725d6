package leads

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/tidwall/jsonc"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// El parser no guarda estado entre llamadas; Parse crea el estado por documento.
var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New()
	})
	return markdownParserInstance
}

// ExtractPayload localiza el primer bloque ```json del cuerpo y lo parsea.
// Cualquier fallo (sin bloque, JSON roto, no-objeto) devuelve un objeto vacío:
// un ticket corrupto no debe tumbar el export del resto.
func ExtractPayload(body string) map[string]any {
	block, ok := findJSONBlock(body)
	if !ok {
		return map[string]any{}
	}

	var out map[string]any
	if err := json.Unmarshal(jsonc.ToJSON([]byte(block)), &out); err != nil || out == nil {
		return map[string]any{}
	}
	return out
}

func findJSONBlock(body string) (string, bool) {
	if strings.TrimSpace(body) == "" {
		return "", false
	}

	source := []byte(body)
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))

	var (
		code  strings.Builder
		found bool
	)
	_ = ast.Walk(document, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if !strings.EqualFold(string(block.Language(source)), "json") {
			return ast.WalkSkipChildren, nil
		}
		lines := block.Lines()
		for i := 0; i < lines.Len(); i++ {
			segment := lines.At(i)
			code.Write(segment.Value(source))
		}
		found = true
		return ast.WalkStop, nil
	})
	return code.String(), found
}
