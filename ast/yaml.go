package ast

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// ToYAML converts node into a YAML document tree. Every node becomes a
// mapping whose first key is "kind"; children are nested mappings and
// sequences in source order.
func ToYAML(node Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{yamlValue(node)}}
}

// MarshalYAML encodes node as a YAML document.
func MarshalYAML(node Node) ([]byte, error) {
	return yaml.Marshal(ToYAML(node))
}

type yamlMap struct {
	n *yaml.Node
}

func newYAMLMap(kind string) yamlMap {
	m := yamlMap{n: &yaml.Node{Kind: yaml.MappingNode}}
	m.str("kind", kind)
	return m
}

func (m yamlMap) set(key string, value *yaml.Node) {
	m.n.Content = append(m.n.Content, scalar("!!str", key), value)
}

func (m yamlMap) str(key, value string) {
	m.set(key, scalar("!!str", value))
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func yamlSeq[T Node](items []T) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, item := range items {
		seq.Content = append(seq.Content, yamlValue(item))
	}
	return seq
}

func yamlValue(node Node) *yaml.Node {
	switch n := node.(type) {
	case *IntLiteral:
		m := newYAMLMap("IntLiteral")
		m.set("value", scalar("!!int", strconv.FormatInt(n.Value, 10)))
		return m.n
	case *CharLiteral:
		m := newYAMLMap("CharLiteral")
		m.str("value", n.Value)
		return m.n
	case *Identifier:
		m := newYAMLMap("Identifier")
		m.str("name", n.Name)
		return m.n
	case *Assignment:
		m := newYAMLMap("Assignment")
		m.str("target", n.Target.Name)
		m.set("value", yamlValue(n.Value))
		return m.n
	case *UnaryMinus:
		m := newYAMLMap("UnaryMinus")
		m.set("operand", yamlValue(n.X))
		return m.n
	case *Binary:
		m := newYAMLMap(n.Kind().String())
		m.set("left", yamlValue(n.Left))
		m.set("right", yamlValue(n.Right))
		return m.n
	case *Return:
		m := newYAMLMap("Return")
		m.set("value", yamlValue(n.Value))
		return m.n
	case *ExprStmt:
		m := newYAMLMap("Expression")
		m.set("expr", yamlValue(n.X))
		return m.n
	case *Declaration:
		m := newYAMLMap("Declaration")
		m.str("type", n.Type.String())
		m.set("declarators", yamlSeq(n.Declarators))
		return m.n
	case *Declarator:
		m := newYAMLMap("Declarator")
		m.str("name", n.Identifier.Name)
		if n.Init != nil {
			m.set("init", yamlValue(n.Init))
		}
		return m.n
	case *FuncDef:
		m := newYAMLMap("FuncDef")
		m.str("name", n.Name)
		m.str("return_type", n.ReturnType.String())
		m.set("body", yamlSeq(n.Body))
		return m.n
	case *Program:
		m := newYAMLMap("Program")
		m.set("funcs", yamlSeq(n.Funcs))
		return m.n
	default:
		return scalar("!!null", "null")
	}
}
