// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package fixture

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/wdamron/hm"
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/construct"
	"github.com/wdamron/hm/types"
)

// Load reads and decodes the fixture at path.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read fixture %s", path)
	}
	fx, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load fixture %s", path)
	}
	return fx, nil
}

// Parse decodes a fixture from a YAML document.
func Parse(data []byte) (*Fixture, error) { return Decode(bytes.NewReader(data)) }

// Decode decodes a fixture from the first YAML document read from r.
func Decode(r io.Reader) (*Fixture, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty fixture")
		}
		return nil, errors.Wrap(err, "parse yaml")
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, nodeErrorf(root, "expected a mapping at the top level")
	}

	d := &decoder{fx: &Fixture{Env: hm.NewTypeEnv(nil)}, vars: make(map[string]*types.Var)}
	var examples *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "name":
			if value.Kind != yaml.ScalarNode {
				return nil, nodeErrorf(value, "name must be a string")
			}
			d.fx.Name = value.Value
		case "env":
			if err := d.env(value); err != nil {
				return nil, err
			}
		case "examples":
			examples = value
		default:
			return nil, nodeErrorf(key, "unknown field %q", key.Value)
		}
	}
	// Examples are decoded after the environment, which may follow them in the document.
	if examples != nil {
		if err := d.examples(examples); err != nil {
			return nil, err
		}
	}
	return d.fx, nil
}

type decoder struct {
	fx   *Fixture
	vars map[string]*types.Var
}

func nodeErrorf(n *yaml.Node, format string, args ...interface{}) error {
	return errors.Wrapf(errors.Errorf(format, args...), "line %d, column %d", n.Line, n.Column)
}

// mapping returns the values of a mapping node by key, rejecting keys not in allowed.
func mapping(n *yaml.Node, allowed ...string) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, nodeErrorf(n, "expected a mapping")
	}
	fields := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		known := false
		for _, name := range allowed {
			if key.Value == name {
				known = true
				break
			}
		}
		if !known {
			return nil, nodeErrorf(key, "unknown field %q (expected one of %s)", key.Value, strings.Join(allowed, ", "))
		}
		if _, dup := fields[key.Value]; dup {
			return nil, nodeErrorf(key, "duplicate field %q", key.Value)
		}
		fields[key.Value] = n.Content[i+1]
	}
	return fields, nil
}

func hasKey(n *yaml.Node, key string) bool {
	if n.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return true
		}
	}
	return false
}

// single returns the key and value of a mapping node with exactly one entry.
func single(n *yaml.Node) (string, *yaml.Node, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return "", nil, nodeErrorf(n, "expected a mapping with a single key")
	}
	return n.Content[0].Value, n.Content[1], nil
}

func scalar(n *yaml.Node, what string) (string, error) {
	if n.Kind != yaml.ScalarNode || n.Value == "" {
		return "", nodeErrorf(n, "%s must be a non-empty string", what)
	}
	return n.Value, nil
}

func (d *decoder) env(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return nodeErrorf(n, "env must be a mapping from identifiers to types")
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		name, err := scalar(n.Content[i], "identifier")
		if err != nil {
			return err
		}
		t, err := d.typ(n.Content[i+1])
		if err != nil {
			return errors.Wrapf(err, "type of %s", name)
		}
		d.fx.Env = d.fx.Env.Declare(name, t)
	}
	return nil
}

func (d *decoder) typ(n *yaml.Node) (types.Type, error) {
	if n.Kind == yaml.ScalarNode {
		name, err := scalar(n, "type name")
		if err != nil {
			return nil, err
		}
		if strings.HasPrefix(name, "$") {
			if len(name) == 1 {
				return nil, nodeErrorf(n, "type-variable must be named")
			}
			tv, ok := d.vars[name]
			if !ok {
				tv = d.fx.Env.NewVar()
				d.vars[name] = tv
			}
			return tv, nil
		}
		switch name {
		case types.IntName:
			return types.Int, nil
		case types.BoolName:
			return types.Bool, nil
		}
		return construct.TConst(name), nil
	}

	if hasKey(n, "op") {
		fields, err := mapping(n, "op", "args")
		if err != nil {
			return nil, err
		}
		return d.oper(fields)
	}

	key, value, err := single(n)
	if err != nil {
		return nil, err
	}
	switch key {
	case "fn":
		ts, err := d.typeList(value, 1)
		if err != nil {
			return nil, err
		}
		return construct.TFunc(ts[0], ts[1:]...), nil

	case "product":
		ts, err := d.typeList(value, 2)
		if err != nil {
			return nil, err
		}
		if len(ts) != 2 {
			return nil, nodeErrorf(value, "product must have exactly 2 types")
		}
		return construct.TProduct(ts[0], ts[1]), nil
	}
	return nil, nodeErrorf(n, "unknown type form %q", key)
}

func (d *decoder) oper(fields map[string]*yaml.Node) (types.Type, error) {
	name, err := scalar(fields["op"], "type-operator name")
	if err != nil {
		return nil, err
	}
	var args []types.Type
	if argsNode, ok := fields["args"]; ok {
		if args, err = d.typeList(argsNode, 0); err != nil {
			return nil, err
		}
	}
	return construct.TOper(name, args...), nil
}

func (d *decoder) typeList(n *yaml.Node, min int) ([]types.Type, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, nodeErrorf(n, "expected a list of types")
	}
	if len(n.Content) < min {
		return nil, nodeErrorf(n, "expected at least %d types", min)
	}
	ts := make([]types.Type, len(n.Content))
	for i, item := range n.Content {
		t, err := d.typ(item)
		if err != nil {
			return nil, err
		}
		ts[i] = t
	}
	return ts, nil
}

func (d *decoder) examples(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode {
		return nodeErrorf(n, "examples must be a list")
	}
	for i, item := range n.Content {
		fields, err := mapping(item, "name", "expr", "type", "error")
		if err != nil {
			return errors.Wrapf(err, "example %d", i+1)
		}
		ex := Example{Line: item.Line}
		if name, ok := fields["name"]; ok {
			ex.Name = name.Value
		}
		exprNode, ok := fields["expr"]
		if !ok {
			return nodeErrorf(item, "example %d has no expr", i+1)
		}
		if ex.Expr, err = d.expr(exprNode); err != nil {
			return errors.Wrapf(err, "example %d", i+1)
		}
		if t, ok := fields["type"]; ok {
			if ex.Type, err = scalar(t, "type"); err != nil {
				return err
			}
		}
		if kind, ok := fields["error"]; ok {
			if ex.Error, err = scalar(kind, "error"); err != nil {
				return err
			}
			if _, ok := hm.ParseErrorKind(ex.Error); !ok {
				return nodeErrorf(kind, "unknown error kind %q", ex.Error)
			}
		}
		if ex.Type != "" && ex.Error != "" {
			return nodeErrorf(item, "example %d expects both a type and an error", i+1)
		}
		d.fx.Examples = append(d.fx.Examples, ex)
	}
	return nil
}

func (d *decoder) expr(n *yaml.Node) (ast.Expr, error) {
	if n.Kind == yaml.ScalarNode {
		name, err := scalar(n, "identifier")
		if err != nil {
			return nil, err
		}
		return construct.Ident(name), nil
	}

	key, value, err := single(n)
	if err != nil {
		return nil, err
	}
	switch key {
	case "fn":
		fields, err := mapping(value, "param", "params", "body")
		if err != nil {
			return nil, err
		}
		var params []string
		if p, ok := fields["param"]; ok {
			param, err := scalar(p, "parameter")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
		}
		if ps, ok := fields["params"]; ok {
			if ps.Kind != yaml.SequenceNode {
				return nil, nodeErrorf(ps, "params must be a list")
			}
			for _, p := range ps.Content {
				param, err := scalar(p, "parameter")
				if err != nil {
					return nil, err
				}
				params = append(params, param)
			}
		}
		if len(params) == 0 {
			return nil, nodeErrorf(value, "fn must have at least one parameter")
		}
		body, err := d.requiredExpr(value, fields, "body")
		if err != nil {
			return nil, err
		}
		return construct.Func(params, body), nil

	case "apply":
		if value.Kind != yaml.SequenceNode || len(value.Content) < 2 {
			return nil, nodeErrorf(value, "apply must be a list of a function and at least one argument")
		}
		exprs := make([]ast.Expr, len(value.Content))
		for i, item := range value.Content {
			if exprs[i], err = d.expr(item); err != nil {
				return nil, err
			}
		}
		return construct.Call(exprs[0], exprs[1:]...), nil

	case "let", "letrec":
		fields, err := mapping(value, "name", "value", "body")
		if err != nil {
			return nil, err
		}
		nameNode, ok := fields["name"]
		if !ok {
			return nil, nodeErrorf(value, "%s must have a name", key)
		}
		name, err := scalar(nameNode, "name")
		if err != nil {
			return nil, err
		}
		defn, err := d.requiredExpr(value, fields, "value")
		if err != nil {
			return nil, err
		}
		body, err := d.requiredExpr(value, fields, "body")
		if err != nil {
			return nil, err
		}
		if key == "letrec" {
			return construct.Letrec(name, defn, body), nil
		}
		return construct.Let(name, defn, body), nil
	}
	return nil, nodeErrorf(n, "unknown expression form %q", key)
}

func (d *decoder) requiredExpr(parent *yaml.Node, fields map[string]*yaml.Node, field string) (ast.Expr, error) {
	n, ok := fields[field]
	if !ok {
		return nil, nodeErrorf(parent, "missing %s", field)
	}
	return d.expr(n)
}
