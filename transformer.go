package t2e

// Transformer converts raw input into an enum literal using the extractor
// selected by a Mode.
type Transformer struct {
	// Templates handles ModeTemplates.
	Templates Extractor

	// Lines handles ModeLines. Defaults to LineExtractor when nil.
	Lines Extractor
}

// ExtractorFor returns the extractor for mode.
// Returns EINVALID if the mode is unknown or has no extractor configured.
func (t *Transformer) ExtractorFor(mode Mode) (Extractor, error) {
	switch mode {
	case ModeTemplates:
		if t.Templates == nil {
			return nil, Errorf(EINVALID, "no extractor configured for mode %s", mode)
		}
		return t.Templates, nil
	case ModeLines:
		if t.Lines == nil {
			return LineExtractor{}, nil
		}
		return t.Lines, nil
	default:
		return nil, Errorf(EINVALID, "unknown mode %d", int(mode))
	}
}

// Transform extracts the items of input according to mode and formats them
// with FormatEnum. Extraction errors are returned as is and no output is
// produced.
func (t *Transformer) Transform(mode Mode, input string) (string, error) {
	ext, err := t.ExtractorFor(mode)
	if err != nil {
		return "", err
	}

	items, err := ext.Extract(input)
	if err != nil {
		return "", err
	}

	return FormatEnum(items), nil
}
