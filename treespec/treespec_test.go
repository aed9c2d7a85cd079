package treespec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/kommando"
	"github.com/napalu/kommando/argument"
	"github.com/napalu/kommando/errs"
	"github.com/napalu/kommando/tree"
)

const gameYAML = `
commands:
  - name: give
    description: give items
    node:
      arguments:
        - name: amount
          type: int
          min: 1
          max: 64
        - name: flag
          type: bool
          default: "false"
      execute: record
  - name: gamemode
    aliases: [gm]
    node:
      flags:
        - names: [--force, -f]
        - names: [--seconds]
          type: int
          default: "30"
      children:
        - literal: survival|creative
          node:
            arguments:
              - name: target
                type: word
                optional: true
                suggest: [alice, bob]
            execute: record
  - name: stop
    node:
      requires: admin
      execute: record
`

const gameTOML = `
[[commands]]
name = "give"
description = "give items"

[commands.node]
execute = "record"

[[commands.node.arguments]]
name = "amount"
type = "int"
min = 1.0
max = 64.0

[[commands.node.arguments]]
name = "flag"
type = "bool"
default = "false"
`

type recorder struct {
	calls [][]tree.Value
}

func (r *recorder) registry() *Registry {
	return NewRegistry().
		Executor("record", func(ctx *tree.Context) error {
			r.calls = append(r.calls, ctx.Values())
			return nil
		}).
		Requirement("admin", func(source any) error {
			if source != "admin" {
				return errors.New("not an admin")
			}
			return nil
		})
}

func values(kv ...any) []tree.Value {
	var out []tree.Value
	for i := 0; i < len(kv); i += 2 {
		out = append(out, tree.Value{Name: kv[i].(string), Value: kv[i+1]})
	}
	return out
}

func TestCompileYAML(t *testing.T) {
	doc, err := DecodeYAML([]byte(gameYAML))
	require.NoError(t, err)

	rec := &recorder{}
	d, err := rec.registry().Compile(doc)
	require.NoError(t, err)

	require.NoError(t, d.Execute("give 5", nil))
	require.NoError(t, d.Execute("give 5 true", nil))
	require.NoError(t, d.Execute("gm creative alice -f", nil))
	require.NoError(t, d.Execute("gamemode survival --seconds 60", nil))
	require.NoError(t, d.Execute("stop", "admin"))

	want := [][]tree.Value{
		values("amount", int32(5), "flag", false),
		values("amount", int32(5), "flag", true),
		values("target", "alice", "force", true),
		values("seconds", int32(60), "target", nil),
		{},
	}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("recorded values mismatch (-want +got):\n%s", diff)
	}

	err = d.Execute("give 65", nil)
	assert.True(t, errors.Is(err, errs.ErrRangeViolation))
	err = d.Execute("stop", "guest")
	assert.True(t, errors.Is(err, errs.ErrRequirementFailed))

	var texts []string
	for _, s := range d.Suggest("gm creative ", -1, nil) {
		texts = append(texts, s.Text)
	}
	assert.Equal(t, []string{"alice", "bob"}, texts)
}

func TestCompileTOML(t *testing.T) {
	doc, err := DecodeTOML([]byte(gameTOML))
	require.NoError(t, err)
	require.Len(t, doc.Commands, 1)

	yamlDoc, err := DecodeYAML([]byte(gameYAML))
	require.NoError(t, err)
	if diff := cmp.Diff(yamlDoc.Commands[0], doc.Commands[0]); diff != "" {
		t.Errorf("toml and yaml documents differ (-yaml +toml):\n%s", diff)
	}

	rec := &recorder{}
	d, err := rec.registry().Compile(doc, kommando.WithCommandPrefix('/'))
	require.NoError(t, err)
	require.NoError(t, d.Execute("/give 3", nil))
	assert.Equal(t, [][]tree.Value{values("amount", int32(3), "flag", false)}, rec.calls)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commands.yml")
	require.NoError(t, os.WriteFile(path, []byte(gameYAML), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Commands, 3)

	_, err = Decode(nil, "json")
	assert.True(t, errors.Is(err, errs.ErrUnsupportedFormat))

	_, err = DecodeYAML([]byte("commands:\n  - name: x\n    colour: red\n"))
	assert.True(t, errors.Is(err, errs.ErrInvalidDocument))

	_, err = DecodeTOML([]byte("[[commands]]\nname = \"x\"\ncolour = \"red\"\n"))
	assert.True(t, errors.Is(err, errs.ErrInvalidDocument))
	assert.Contains(t, err.Error(), "commands.colour")
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		sentinel error
		path     string
	}{
		{"unknown type", `
commands:
  - name: c
    node:
      arguments: [{name: a, type: colour}]
      execute: record`, errs.ErrUnknownArgumentType, "c <a>"},
		{"unknown executor", `
commands:
  - name: c
    node:
      children:
        - literal: go
          node: {execute: run}`, errs.ErrUnknownExecutor, "c go"},
		{"unknown requirement", `
commands:
  - name: c
    node: {requires: op, execute: record}`, errs.ErrUnknownRequirement, "c"},
		{"invalid default", `
commands:
  - name: c
    node:
      arguments: [{name: n, type: int, default: five}]
      execute: record`, errs.ErrInvalidDefault, "c <n>"},
		{"invalid times", `
commands:
  - name: c
    node:
      arguments: [{name: n, type: int, times: "3..1"}]
      execute: record`, errs.ErrInvalidRange, "c <n>"},
		{"dead end", `
commands:
  - name: c
    node:
      arguments: [{name: n, type: int}]`, errs.ErrInvalidDocument, "c"},
		{"duplicate flag", `
commands:
  - name: c
    node:
      flags: [{names: [--x]}, {names: [--x]}]
      execute: record`, errs.ErrInvalidDocument, "c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := DecodeYAML([]byte(tt.doc))
			require.NoError(t, err)
			_, err = (&recorder{}).registry().Compile(doc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), err.Error())
			var de *Error
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.path, de.Path)
		})
	}

	_, err := NewRegistry().Compile(&Document{Commands: []CommandSpec{{}}})
	assert.True(t, errors.Is(err, errs.ErrMissingName))
}

func TestTypes(t *testing.T) {
	doc := &Document{Commands: []CommandSpec{{
		Name: "c",
		Node: NodeSpec{
			Arguments: []ArgumentSpec{
				{Name: "range", Type: "intRange"},
				{Name: "mode", Type: "choice", Choices: []string{"fast", "slow"}},
				{Name: "ids", Type: "long", Times: "1..3"},
				{Name: "rest", Type: "greedy", Optional: true},
			},
			Execute: "record",
		},
	}}}

	rec := &recorder{}
	d, err := rec.registry().Compile(doc)
	require.NoError(t, err)

	require.NoError(t, d.Execute("c 1..5 slow 7 8 and the rest", nil))
	require.NoError(t, d.Execute("c ..2 fast 9", nil))
	want := [][]tree.Value{
		values("range", argument.Range[int32]{Min: 1, Max: 5}, "mode", "slow",
			"ids", []any{int64(7), int64(8)}, "rest", "and the rest"),
		values("range", argument.Range[int32]{Min: -2147483648, Max: 2}, "mode", "fast",
			"ids", []any{int64(9)}, "rest", nil),
	}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("recorded values mismatch (-want +got):\n%s", diff)
	}

	lines, err := d.Usage("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"c <int-range> <fast|slow> <long>{1..3} [<text>]"}, lines)
}

func TestTimes(t *testing.T) {
	tests := []struct {
		in       string
		min, max int
		ok       bool
	}{
		{"1..3", 1, 3, true},
		{"2..", 2, -1, true},
		{"4", 4, 4, true},
		{"..2", 0, 2, true},
		{"0", 0, 0, false},
		{"3..1", 0, 0, false},
		{"x", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			min, max, err := times(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.min, min)
			assert.Equal(t, tt.max, max)
		})
	}
}
