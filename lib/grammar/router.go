// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

import "fmt"

// Grammar bundles everything the router needs to interpret one
// subcommand: its flag schema, group constraints, conditional default
// chains, and the builder that produces the typed Action.
type Grammar struct {
	Schema   *Schema
	Groups   []Group
	Defaults []FlagDefaults
	Build    func(*PresenceMap) (Action, error)
}

// UnknownCommandError reports a subcommand name the router has no
// grammar for.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}

// Router maps subcommand names (and their aliases) to grammars and
// runs the interpretation pipeline. Routers are built once at startup
// and are immutable afterward, so concurrent Route calls are safe.
type Router struct {
	grammars map[string]*Grammar
	aliases  map[string]string
}

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{
		grammars: make(map[string]*Grammar),
		aliases:  make(map[string]string),
	}
}

// Register adds a grammar under its canonical name plus any aliases.
// Panics on duplicate registration: the tables are static data.
func (r *Router) Register(g *Grammar, aliases ...string) {
	name := g.Schema.Command
	if _, dup := r.grammars[name]; dup {
		panic(fmt.Sprintf("grammar.Router: duplicate command %q", name))
	}
	r.grammars[name] = g
	for _, alias := range aliases {
		if _, dup := r.aliases[alias]; dup {
			panic(fmt.Sprintf("grammar.Router: duplicate alias %q", alias))
		}
		r.aliases[alias] = name
	}
}

// Grammar returns the grammar registered for a command name or alias,
// or nil. Callers use this for help output; Route is the interpretation
// entry point.
func (r *Router) Grammar(name string) *Grammar {
	if canonical, ok := r.aliases[name]; ok {
		name = canonical
	}
	return r.grammars[name]
}

// Route interprets one invocation: it looks up the grammar for the
// named subcommand and runs parse, group validation, default
// resolution, the post-default required check, and the action
// builder, short-circuiting on the first failure. Given the same
// name and arguments it always returns the same Action or the same
// error.
func (r *Router) Route(name string, args []string) (Action, error) {
	g := r.Grammar(name)
	if g == nil {
		return nil, &UnknownCommandError{Name: name}
	}

	pm, err := g.Schema.Parse(args)
	if err != nil {
		return nil, err
	}
	if err := validateGroups(pm, g.Groups); err != nil {
		return nil, err
	}
	resolveDefaults(g.Schema, pm, g.Defaults)
	if err := validateRequired(pm, g.Groups); err != nil {
		return nil, err
	}
	return g.Build(pm)
}
