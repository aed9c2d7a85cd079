package treespec

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/napalu/kommando"
	"github.com/napalu/kommando/argument"
	"github.com/napalu/kommando/errs"
	"github.com/napalu/kommando/tree"
)

var log = commonlog.GetLogger("kommando.treespec")

// Registry resolves the names a document refers to: argument types, executors and
// requirements
type Registry struct {
	types        map[string]TypeFunc
	executors    map[string]tree.Executor
	requirements map[string]tree.Requirement
}

// NewRegistry returns a registry knowing the built-in argument types
func NewRegistry() *Registry {
	return &Registry{
		types:        builtinTypes(),
		executors:    map[string]tree.Executor{},
		requirements: map[string]tree.Requirement{},
	}
}

// Type registers an argument type under name
func (r *Registry) Type(name string, fn TypeFunc) *Registry {
	r.types[typeName(name)] = fn
	return r
}

// Executor registers an executor under name
func (r *Registry) Executor(name string, e tree.Executor) *Registry {
	r.executors[name] = e
	return r
}

// Requirement registers a requirement under name
func (r *Registry) Requirement(name string, req tree.Requirement) *Registry {
	r.requirements[name] = req
	return r
}

// Compile creates a dispatcher holding the commands of doc. configs are applied before the
// commands are registered.
func (r *Registry) Compile(doc *Document, configs ...kommando.ConfigureDispatcherFunc) (*kommando.Dispatcher, error) {
	commands, err := r.Commands(doc)
	if err != nil {
		return nil, err
	}

	all := make([]kommando.ConfigureDispatcherFunc, 0, len(configs)+len(commands))
	all = append(all, configs...)
	for _, c := range commands {
		all = append(all, kommando.WithCommandDefinition(c))
	}

	return kommando.NewDispatcher(all...)
}

// Commands builds the command trees of doc
func (r *Registry) Commands(doc *Document) ([]*kommando.Command, error) {
	commands := make([]*kommando.Command, 0, len(doc.Commands))
	for i, spec := range doc.Commands {
		if spec.Name == "" {
			return nil, errs.ErrMissingName.WithArgs(fmt.Sprintf("commands[%d]", i))
		}
		root, err := r.build(spec)
		if err != nil {
			return nil, err
		}
		commands = append(commands, &kommando.Command{
			Name:        spec.Name,
			Aliases:     spec.Aliases,
			Description: spec.Description,
			Root:        root,
		})
		log.Debugf("compiled command '%s'", spec.Name)
	}

	return commands, nil
}

// build turns the panics of the builder, such as duplicate flags or dead ends, into errors
func (r *Registry) build(spec CommandSpec) (root *tree.Node, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &Error{Path: spec.Name, Err: errs.ErrInvalidDocument.Wrap(fmt.Errorf("%v", p))}
		}
	}()

	b := tree.NewBuilder()
	if err := r.node(b, spec.Node, spec.Name); err != nil {
		return nil, err
	}

	return b.Build(), nil
}

func (r *Registry) node(b *tree.Builder, n NodeSpec, path string) error {
	if n.Description != "" {
		b.Description(n.Description)
	}
	if n.Requires != "" {
		req, ok := r.requirements[n.Requires]
		if !ok {
			return &Error{Path: path, Err: errs.ErrUnknownRequirement.WithArgs(n.Requires)}
		}
		b.Requirement(req)
	}

	for _, f := range n.Flags {
		if err := r.flag(b, f, path); err != nil {
			return err
		}
	}
	for i, a := range n.Arguments {
		if a.Name == "" {
			return &Error{Path: path, Err: errs.ErrMissingName.WithArgs(fmt.Sprintf("arguments[%d]", i))}
		}
		argPath := path + " <" + a.Name + ">"
		p, err := r.parser(a)
		if err != nil {
			return &Error{Path: argPath, Err: err}
		}
		tree.BindParser(b, a.Name, p)
	}

	for i, c := range n.Children {
		if c.Literal == "" {
			return &Error{Path: path, Err: errs.ErrMissingName.WithArgs(fmt.Sprintf("children[%d]", i))}
		}
		p := tree.ParsePath(c.Literal)
		if c.BeforeArguments {
			p = tree.BeforeArguments(p)
		}
		var err error
		b.Literal(p, func(sb *tree.Builder) {
			err = r.node(sb, c.Node, path+" "+c.Literal)
		})
		if err != nil {
			return err
		}
	}

	if n.Execute != "" {
		e, ok := r.executors[n.Execute]
		if !ok {
			return &Error{Path: path, Err: errs.ErrUnknownExecutor.WithArgs(n.Execute)}
		}
		b.Executor(e)
	}

	return nil
}

func (r *Registry) flag(b *tree.Builder, f FlagSpec, path string) error {
	if f.Type == "" {
		tree.Switch(b, f.Names...)
		return nil
	}

	flagPath := fmt.Sprintf("%s %v", path, f.Names)
	spec := f.ArgumentSpec
	if spec.Name == "" && len(f.Names) > 0 {
		spec.Name = f.Names[0]
	}
	def := spec.Default
	spec.Default, spec.Optional = "", false

	p, err := r.parser(spec)
	if err != nil {
		return &Error{Path: flagPath, Err: err}
	}
	var value any
	if def != "" {
		spec.Default = def
		if value, err = parseDefault(argument.Unerase(p), spec); err != nil {
			return &Error{Path: flagPath, Err: err}
		}
	}
	tree.FlagParser(b, f.Names, p, value)

	return nil
}

func (r *Registry) parser(s ArgumentSpec) (argument.Parser, error) {
	fn, ok := r.types[typeName(s.Type)]
	if !ok {
		return nil, errs.ErrUnknownArgumentType.WithArgs(s.Type)
	}
	p, err := fn(s)
	if err != nil {
		return nil, err
	}

	return shape(p, s)
}

// Error locates a problem of a document. Path names the command followed by the literals and
// arguments leading to the offending node.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
