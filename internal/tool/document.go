package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/pricofy/azure-translator/internal/chunker"
	"github.com/pricofy/azure-translator/internal/translator"
	"go.uber.org/zap"
)

// DocumentToolName identifies DocumentTool.
const DocumentToolName = "azure_document_translate_tool"

// DocumentLoader returns the text of a document.
type DocumentLoader interface {
	Load(ctx context.Context, location string) (string, error)
}

// DocumentTool translates a text document into an explicit target language.
// A document longer than maxChars is translated piece by piece, one call per piece.
type DocumentTool struct {
	translator translator.Translator
	loader     DocumentLoader
	maxChars   int
	logger     *zap.Logger
}

var _ Tool = (*DocumentTool)(nil)

// NewDocumentTool creates a DocumentTool. A non-positive maxChars uses
// chunker.DefaultMaxChars.
func NewDocumentTool(t translator.Translator, loader DocumentLoader, maxChars int, logger *zap.Logger) *DocumentTool {
	if maxChars <= 0 {
		maxChars = chunker.DefaultMaxChars
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentTool{translator: t, loader: loader, maxChars: maxChars, logger: logger}
}

func (t *DocumentTool) Name() string {
	return DocumentToolName
}

func (t *DocumentTool) Description() string {
	return "This tool can be used if you want to translate a document into a specific language. " +
		"The document has to be a text document."
}

func (t *DocumentTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			ArgFilePath:       stringProperty("Path or s3://bucket/key URI of the text document."),
			ArgTargetLanguage: stringProperty("Target language code, for example \"es\"."),
		},
		"required": []string{ArgFilePath, ArgTargetLanguage},
	}
}

func (t *DocumentTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	location, err := requiredString(args, ArgFilePath)
	if err != nil {
		return "", fmt.Errorf("%s: %w", t.Name(), err)
	}
	target, err := requiredString(args, ArgTargetLanguage)
	if err != nil {
		return "", fmt.Errorf("%s: %w", t.Name(), err)
	}

	text, err := t.loader.Load(ctx, location)
	if err != nil {
		return "", fmt.Errorf("%s: %w", t.Name(), err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: %w: document %s is empty", t.Name(), translator.ErrInvalidInput, location)
	}

	out, err := t.TranslateText(ctx, text, target)
	if err != nil {
		t.logger.Error("Document translation failed",
			zap.String("location", location),
			zap.String("to", target),
			zap.Error(err),
		)
		return "", fmt.Errorf("%s: %w", t.Name(), err)
	}
	return out, nil
}

// TranslateText translates an already loaded document.
// Whitespace-only pieces are kept as they are.
func (t *DocumentTool) TranslateText(ctx context.Context, text, target string) (string, error) {
	pieces := chunker.Split(text, t.maxChars)
	if len(pieces) > 1 {
		t.logger.Info("Document split for translation", zap.Int("pieces", len(pieces)), zap.Int("max_chars", t.maxChars))
	}

	for i, p := range pieces {
		if strings.TrimSpace(p.Text) == "" {
			continue
		}
		translated, err := t.translator.Translate(ctx, p.Text, target)
		if err != nil {
			return "", fmt.Errorf("piece %d of %d: %w", i+1, len(pieces), err)
		}
		pieces[i].Text = translated
	}

	return chunker.Join(pieces), nil
}
