package workspace

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/edatools/aedtkit/aedt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "aedtls"

type LSPServer struct {
	workspace *Workspace
	handler   protocol.Handler
	server    *server.Server
	version   string
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		workspace: New(),
		version:   version,
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
		TextDocumentHover:          ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.DocumentSymbolProvider = true
	capabilities.HoverProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	doc := ls.workspace.Update(path, []byte(params.TextDocument.Text))
	ls.publishProblems(ctx, params.TextDocument.URI, doc)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			doc := ls.workspace.Update(path, []byte(textChange.Text))
			ls.publishProblems(ctx, params.TextDocument.URI, doc)
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.workspace.Close(path)
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	var doc *Document
	if params.Text != nil {
		doc = ls.workspace.Update(path, []byte(*params.Text))
	} else {
		doc, err = ls.workspace.Load(path)
		if err != nil {
			return nil
		}
	}
	ls.publishProblems(ctx, params.TextDocument.URI, doc)
	return nil
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	doc := ls.workspace.Get(path)
	if doc == nil {
		return nil, nil
	}
	return blockSymbols(doc.Blocks), nil
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	doc := ls.workspace.Get(path)
	if doc == nil {
		return nil, nil
	}

	lines := strings.Split(string(doc.Content), "\n")
	lineNo := int(params.Position.Line)
	if lineNo < 0 || lineNo >= len(lines) {
		return nil, nil
	}
	text := hoverText(strings.TrimSpace(lines[lineNo]))
	if text == "" {
		return nil, nil
	}

	rng := lineRange(lineNo, len(lines[lineNo]))
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: text,
		},
		Range: &rng,
	}, nil
}

// hoverText renders one line the way the decoder sees it: markers name
// their block, everything else shows the decoded key and value.
func hoverText(line string) string {
	if line == "" {
		return ""
	}
	if name, ok := markerName(line, "$begin '"); ok {
		return fmt.Sprintf("begins block `%s`", name)
	}
	if name, ok := markerName(line, "$end '"); ok {
		return fmt.Sprintf("ends block `%s`", name)
	}
	d := aedt.NewDict()
	aedt.DecodeLine(line, d)
	key := d.Keys()[0]
	value, _ := d.Get(key)
	if value == nil {
		return fmt.Sprintf("marker `%s`", key)
	}
	rendered, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("`%s` = %s (%T)", key, rendered, value)
}

func blockSymbols(blocks []*Block) []protocol.DocumentSymbol {
	symbols := make([]protocol.DocumentSymbol, 0, len(blocks))
	for _, block := range blocks {
		rng := protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(block.StartLine)},
			End:   protocol.Position{Line: protocol.UInteger(block.EndLine + 1)},
		}
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           block.Name,
			Kind:           protocol.SymbolKindObject,
			Range:          rng,
			SelectionRange: lineRange(block.StartLine, 0),
			Children:       blockSymbols(block.Children),
		})
	}
	return symbols
}

func (ls *LSPServer) publishProblems(ctx *glsp.Context, uri protocol.DocumentUri, doc *Document) {
	if doc == nil {
		return
	}
	severity := protocol.DiagnosticSeverityWarning
	source := lsName
	diagnostics := make([]protocol.Diagnostic, 0, len(doc.Problems))
	for _, problem := range doc.Problems {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    lineRange(problem.Line, 0),
			Severity: &severity,
			Source:   &source,
			Message:  problem.Message,
		})
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func lineRange(line, width int) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(line)},
		End:   protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(width)},
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
