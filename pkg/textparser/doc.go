/*
Package textparser replaces tag-delimited tokens in text with values.

# Overview

A token is a key wrapped in an open and a close tag, "[user.name]" with
the default tags. Parse looks every key up in a map of values and
replaces the token with the value's string form. Tokens that cannot be
resolved stay in the output untouched, so callers can look for leftover
tokens when they need to detect incomplete substitution.

This is not a template language: there are no conditionals, loops or
expressions.

# Basic Usage

Build a Parser from the text and chain the setters:

	out, err := textparser.Text("Hello [user.name], you are [age]").
	    Values(map[string]any{
	        "user": map[string]any{"name": "Ann"},
	        "age":  42,
	    }).
	    Parse()
	// out: "Hello Ann, you are 42"

For one-off use with the default tags:

	out := textparser.Parse("port: [port]", map[string]any{"port": 8080})

# Values

Only strings, numbers and booleans are substituted. Booleans become
"true" or "false". Anything else (maps, slices, structs, nil) leaves
the token as-is.

Dotted keys walk into nested values one segment at a time:

  - map[string]any and other maps with string keys are indexed by segment
  - slices and arrays are indexed by a decimal segment ("items.0")
  - structs expose exported fields by name, through pointers
  - values implementing Getter expose whatever Get returns

A missing segment, or a segment past a scalar, leaves the token as-is.

A Lazy (or any func() any) reached as the final value is called once
per distinct key and its result is substituted:

	textparser.Text("Generated at [now]").
	    Values(map[string]any{
	        "now": textparser.Lazy(func() any { return time.Now().Format(time.RFC3339) }),
	    })

# Tags

	out, err := textparser.Text("Hi {{user}}").Tags("{{", "}}").
	    Values(map[string]any{"user": "Bo"}).
	    Parse()
	// out: "Hi Bo"

Tags match literally. Keys are matched exactly, so "[ name ]" and
"[name]" are different keys. Parse returns an *InvalidTagsError when
the number of tags is not two. An empty tag resets both tags to
"[" and "]".

# Exclusions and Aliases

Excluded keys are never substituted. Aliases give a key another name:

	textparser.Text("Dear [name]").
	    Values(map[string]any{"user": map[string]any{"name": "Ann"}}).
	    Aliases(map[string]string{"name": "user.name"})

An alias whose key is excluded or has no value is dropped. When an
alias and a value share a name, the value wins. ResolveAliases returns
the alias mapping on its own.

# Observability

Logging, metrics and tracing are off by default. Enable them with
options:

	p := textparser.Text(body,
	    textparser.WithLogger(logger),
	    textparser.WithMetrics(observability.NewMetricsRecorder()),
	    textparser.WithSpanManager(observability.NewSpanManager()),
	)
	out, err := p.ParseContext(ctx)

# Thread Safety

A Parser is configured and parsed by one goroutine. Separate Parsers
can be used in parallel; the package holds no shared mutable state.
*/
package textparser
