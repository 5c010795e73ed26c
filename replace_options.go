package tagtext

// ReplaceOption configures Replace.
type ReplaceOption func(*replaceConfig)

type replaceConfig struct {
	strictBounds   bool
	contentOffsets bool
}

// WithStrictBounds rejects reversed or out-of-range bounds instead of
// swapping and clamping them.
func WithStrictBounds(enabled bool) ReplaceOption {
	return func(cfg *replaceConfig) {
		cfg.strictBounds = enabled
	}
}

// WithContentOffsets interprets Start and End as content positions (offsets
// into the untagged text) instead of tagged offsets.
func WithContentOffsets(enabled bool) ReplaceOption {
	return func(cfg *replaceConfig) {
		cfg.contentOffsets = enabled
	}
}
