package tool

import (
	"context"
	"fmt"

	"github.com/pricofy/azure-translator/internal/translator"
	"go.uber.org/zap"
)

// TextToolName identifies TextTool.
const TextToolName = "azure_translator_tool"

// TextTool translates free-form text.
type TextTool struct {
	translator    translator.Translator
	defaultTarget string
	logger        *zap.Logger
}

var _ Tool = (*TextTool)(nil)

// NewTextTool creates a TextTool. defaultTarget is used when the call
// carries no target_language.
func NewTextTool(t translator.Translator, defaultTarget string, logger *zap.Logger) *TextTool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TextTool{translator: t, defaultTarget: defaultTarget, logger: logger}
}

func (t *TextTool) Name() string {
	return TextToolName
}

func (t *TextTool) Description() string {
	return "A wrapper around Azure Translator API. " +
		"Useful for translating text between languages. Input must be text (str)."
}

func (t *TextTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			ArgQuery:          stringProperty("The text to translate."),
			ArgTargetLanguage: stringProperty(fmt.Sprintf("Target language code, for example \"es\". Defaults to %q.", t.defaultTarget)),
		},
		"required": []string{ArgQuery},
	}
}

func (t *TextTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	query, err := requiredString(args, ArgQuery)
	if err != nil {
		return "", fmt.Errorf("%s: %w", t.Name(), err)
	}
	target, err := optionalString(args, ArgTargetLanguage, t.defaultTarget)
	if err != nil {
		return "", fmt.Errorf("%s: %w", t.Name(), err)
	}

	out, err := t.translator.Translate(ctx, query, target)
	if err != nil {
		t.logger.Error("Translation failed", zap.String("tool", t.Name()), zap.String("to", target), zap.Error(err))
		return "", fmt.Errorf("%s: %w", t.Name(), err)
	}
	return out, nil
}
