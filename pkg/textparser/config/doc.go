/*
Package config builds textparser resolvers from decoded configuration.

# Overview

config wraps a map[string]any and provides typed accessor methods that
handle missing keys and type mismatches by returning default values. A
resolver document uses these keys:

	text: "Dear [name], your order [order.id] has shipped."
	values:
	  user:
	    name: Ann
	  order:
	    id: 1001
	tags: ["[", "]"]
	exclude: [secret]
	aliases:
	  name: user.name

# Basic Usage

	cfg, err := config.FromYAML(doc)
	if err != nil {
	    return err
	}
	out, err := cfg.Parser().Parse()

Any key may be left out. Tags are passed through unchecked, so a
document with one or three tags fails when Parse is called, exactly as
a resolver built in code would.

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation.
*/
package config
