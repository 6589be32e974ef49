package textparser

import (
	"context"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/textparser/pkg/textparser/observability"
)

// Default open and close tags.
const (
	DefaultOpenTag  = "["
	DefaultCloseTag = "]"
)

// defaultPattern matches tokens delimited by the default tags.
var defaultPattern = keyPattern(DefaultOpenTag, DefaultCloseTag)

// Reasons reported when a token is left unresolved.
const (
	skipExcluded    = "excluded"
	skipUnresolved  = "unresolved"
	skipUnsupported = "unsupported_type"
)

// Parser replaces tag-delimited tokens in a text with values.
//
// Create with Text() and configure with the chainable setters. Each
// setter replaces the previous setting and returns the same Parser.
// A Parser must not be configured from multiple goroutines at once.
type Parser struct {
	text    string
	values  map[string]any
	tags    []string
	exclude []string
	aliases map[string]string

	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
	runID   string
}

// Text creates a Parser for text.
//
// Default configuration:
//   - Tags: "[" and "]"
//   - Values, Exclude, Aliases: empty
//   - No logging, metrics or tracing
//
// Example:
//
//	out, err := textparser.Text("Hello [user.name]").
//	    Values(map[string]any{"user": map[string]any{"name": "Ann"}}).
//	    Parse()
//	// out: "Hello Ann"
func Text(text string, opts ...Option) *Parser {
	p := &Parser{
		text:    text,
		tags:    DefaultTags(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DefaultTags returns the default open and close tags.
func DefaultTags() []string {
	return []string{DefaultOpenTag, DefaultCloseTag}
}

// Values sets the values tokens are resolved against.
// Keys in a token may use dots to reach into nested values.
func (p *Parser) Values(values map[string]any) *Parser {
	p.values = values
	return p
}

// Tags sets the open and close tags. The tags are checked by Parse:
// anything other than exactly two tags is an error, and an empty tag
// resets both to the defaults.
func (p *Parser) Tags(tags ...string) *Parser {
	p.tags = slices.Clone(tags)
	return p
}

// Exclude sets the keys whose tokens are never replaced.
func (p *Parser) Exclude(keys ...string) *Parser {
	p.exclude = slices.Clone(keys)
	return p
}

// Aliases sets alternate names for keys, as a map of alias to key.
func (p *Parser) Aliases(aliases map[string]string) *Parser {
	p.aliases = aliases
	return p
}

// ResolveAliases maps every alias to the value of its key.
//
// Aliases whose key is excluded or missing from the values are left
// out of the result. A key is looked up as-is first, then as a dotted
// path. The value is returned as stored; deferred values are not
// invoked here.
func (p *Parser) ResolveAliases() map[string]any {
	resolved := make(map[string]any, len(p.aliases))
	for alias, key := range p.aliases {
		if slices.Contains(p.exclude, key) {
			continue
		}
		v, ok := p.values[key]
		if !ok {
			v, ok = walk(p.values, key)
		}
		if !ok {
			continue
		}
		resolved[alias] = v
	}
	return resolved
}

// Parse replaces every resolvable token and returns the result.
//
// Tokens that are excluded, have no value, or whose value is not a
// string, number or boolean are left as-is. The only error is an
// *InvalidTagsError when the tag count is not two.
func (p *Parser) Parse() (string, error) {
	return p.ParseContext(context.Background())
}

// ParseContext is Parse with a context for tracing.
func (p *Parser) ParseContext(ctx context.Context) (string, error) {
	start := time.Now()

	runID := p.runID
	if runID == "" {
		runID = uuid.NewString()
	}

	logger := observability.EnrichLogger(p.logger, runID)

	ctx, span := p.spans.StartParseSpan(ctx, runID)
	result, stats, err := p.parse(ctx, logger)
	elapsed := time.Since(start)
	p.spans.EndSpanWithError(span, err)
	p.metrics.RecordParse(ctx, stats.tokens, stats.substituted, elapsed, err)

	if err != nil {
		observability.LogParseError(logger, err)
		return "", err
	}
	observability.LogParseComplete(logger, stats.substituted, observability.Milliseconds(elapsed))
	return result, nil
}

type parseStats struct {
	tokens      int
	substituted int
}

func (p *Parser) parse(ctx context.Context, logger *slog.Logger) (string, parseStats, error) {
	var stats parseStats

	openTag, closeTag, err := p.validTags()
	if err != nil {
		return "", stats, err
	}

	keys := extractKeys(p.text, openTag, closeTag)
	stats.tokens = len(keys)
	observability.LogParseStart(logger, len(keys))

	values := p.ResolveAliases()
	for k, v := range p.values {
		values[k] = v
	}

	result := p.text
	// Each key resolves once; repeats reuse the outcome but still replace,
	// since an earlier substitution may have brought the token back.
	resolved := make(map[string]string, len(keys))
	skipped := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := skipped[key]; ok {
			continue
		}
		s, ok := resolved[key]
		if !ok {
			var reason string
			s, reason = resolve(values, key, p.exclude)
			if reason != "" {
				skipped[key] = struct{}{}
				p.skip(ctx, logger, key, reason)
				continue
			}
			resolved[key] = s
			stats.substituted++
		}

		result = strings.ReplaceAll(result, openTag+key+closeTag, s)
	}

	return result, stats, nil
}

// resolve returns the substitution text for key, or the reason the
// token is left as-is.
func resolve(values map[string]any, key string, exclude []string) (string, string) {
	if slices.Contains(exclude, key) {
		return "", skipExcluded
	}
	v, ok := lookup(values, key)
	if !ok {
		return "", skipUnresolved
	}
	s, ok := stringify(v)
	if !ok {
		return "", skipUnsupported
	}
	return s, ""
}

// validTags returns the open and close tags to use, falling back to
// the defaults when either is empty.
func (p *Parser) validTags() (string, string, error) {
	if len(p.tags) != 2 {
		return "", "", &InvalidTagsError{Count: len(p.tags)}
	}
	if p.tags[0] == "" || p.tags[1] == "" {
		return DefaultOpenTag, DefaultCloseTag, nil
	}
	return p.tags[0], p.tags[1], nil
}

func (p *Parser) skip(ctx context.Context, logger *slog.Logger, key, reason string) {
	observability.LogTokenSkipped(logger, key, reason)
	p.spans.AddSpanEvent(ctx, "token.skipped", observability.TokenAttrs(key, reason)...)
}

// extractKeys returns the key of every token in text, in order of
// appearance and including repeats.
func extractKeys(text, openTag, closeTag string) []string {
	re := defaultPattern
	if openTag != DefaultOpenTag || closeTag != DefaultCloseTag {
		re = keyPattern(openTag, closeTag)
	}

	matches := re.FindAllStringSubmatch(text, -1)
	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		keys = append(keys, m[1])
	}
	return keys
}

// keyPattern builds the token pattern for a tag pair. Tags match literally.
func keyPattern(openTag, closeTag string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(openTag) + `(.*?)` + regexp.QuoteMeta(closeTag))
}

// Parse replaces "[key]" tokens in text using values and the default tags.
//
// Unresolvable tokens are kept as-is.
//
// Example:
//
//	out := textparser.Parse("port: [port]", map[string]any{"port": 8080})
//	// out: "port: 8080"
func Parse(text string, values map[string]any) string {
	// Default tags never fail validation.
	result, _ := Text(text).Values(values).Parse()
	return result
}
