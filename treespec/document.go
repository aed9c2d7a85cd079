// Package treespec describes command trees in YAML or TOML documents and compiles them into
// dispatcher commands.
//
// A document lists commands. Each command has a root node holding its arguments, flags,
// the name of the executor to run and literal children:
//
//	commands:
//	  - name: gamemode
//	    aliases: [gm]
//	    node:
//	      flags:
//	        - names: [--force, -f]
//	      children:
//	        - literal: survival|creative
//	          node:
//	            arguments:
//	              - name: target
//	                type: word
//	                optional: true
//	            execute: print
//
// Executors and requirements are referenced by name and supplied through a Registry.
package treespec

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/napalu/kommando/errs"
)

// Document is the root of a command document
type Document struct {
	Commands []CommandSpec `yaml:"commands" toml:"commands"`
}

// CommandSpec describes a command registered under Name and Aliases
type CommandSpec struct {
	Name        string   `yaml:"name" toml:"name"`
	Aliases     []string `yaml:"aliases,omitempty" toml:"aliases,omitempty"`
	Description string   `yaml:"description,omitempty" toml:"description,omitempty"`
	Node        NodeSpec `yaml:"node" toml:"node"`
}

// NodeSpec describes a node of a command tree. Arguments are chained in order and the
// executor and children attach to the last one.
type NodeSpec struct {
	Description string         `yaml:"description,omitempty" toml:"description,omitempty"`
	Requires    string         `yaml:"requires,omitempty" toml:"requires,omitempty"`
	Arguments   []ArgumentSpec `yaml:"arguments,omitempty" toml:"arguments,omitempty"`
	Flags       []FlagSpec     `yaml:"flags,omitempty" toml:"flags,omitempty"`
	Execute     string         `yaml:"execute,omitempty" toml:"execute,omitempty"`
	Children    []ChildSpec    `yaml:"children,omitempty" toml:"children,omitempty"`
}

// ChildSpec is a sub-command reached through Literal, a path such as "tp|teleport here".
// "*" continues without consuming a literal.
type ChildSpec struct {
	Literal         string   `yaml:"literal" toml:"literal"`
	BeforeArguments bool     `yaml:"before_arguments,omitempty" toml:"before_arguments,omitempty"`
	Node            NodeSpec `yaml:"node" toml:"node"`
}

// ArgumentSpec describes a typed argument
type ArgumentSpec struct {
	Name     string   `yaml:"name" toml:"name"`
	Type     string   `yaml:"type,omitempty" toml:"type,omitempty"`
	Optional bool     `yaml:"optional,omitempty" toml:"optional,omitempty"`
	Default  string   `yaml:"default,omitempty" toml:"default,omitempty"`
	Min      *float64 `yaml:"min,omitempty" toml:"min,omitempty"`
	Max      *float64 `yaml:"max,omitempty" toml:"max,omitempty"`
	Choices  []string `yaml:"choices,omitempty" toml:"choices,omitempty"`
	// Times repeats the argument, written as a range such as 1..3 or 2..
	Times   string   `yaml:"times,omitempty" toml:"times,omitempty"`
	Suggest []string `yaml:"suggest,omitempty" toml:"suggest,omitempty"`
}

// FlagSpec describes a flag. A flag without a type is a switch.
type FlagSpec struct {
	Names        []string `yaml:"names" toml:"names"`
	ArgumentSpec `yaml:",inline"`
}

// Load reads the document at path. The format is chosen by the file extension.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Decode(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// Decode parses data in format, one of yaml, yml or toml
func Decode(data []byte, format string) (*Document, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return DecodeYAML(data)
	case "toml":
		return DecodeTOML(data)
	default:
		return nil, errs.ErrUnsupportedFormat.WithArgs(format)
	}
}

// DecodeYAML parses a YAML document. Unknown keys are rejected.
func DecodeYAML(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errs.ErrInvalidDocument.Wrap(err)
	}

	return &doc, nil
}

// DecodeTOML parses a TOML document. Unknown keys are rejected.
func DecodeTOML(data []byte) (*Document, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, errs.ErrInvalidDocument.Wrap(err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errs.ErrInvalidDocument.Wrap(&unknownKeysError{keys: keys})
	}

	return &doc, nil
}

type unknownKeysError struct {
	keys []string
}

func (e *unknownKeysError) Error() string {
	return "unknown keys " + strings.Join(e.keys, ", ")
}
