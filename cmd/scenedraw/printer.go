package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benoitkugler/scenedraw/scene"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Styles
var (
	accentFg  = lipgloss.Color("#7C3AED")
	errorFg   = lipgloss.Color("#EF4444")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}

	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(errorFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

func printError(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
}

func printInfo(msg string) {
	fmt.Fprintln(os.Stderr, dimStyle.Render(msg))
}

// printer writes the results as a YAML mapping, one
// top level key at a time.
type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) *printer { return &printer{w: w} }

func (p *printer) key(key string, value interface{}) {
	var node yaml.Node
	if err := node.Encode(value); err != nil {
		node = yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprint(value)}
	}
	p.write(&yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{stringNode(key), &node}})
}

// report writes the scene diagnostics, nesting the keys
// "scene.[i].field" returned by Report.Fields.
func (p *printer) report(r *scene.Report) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range r.Fields() {
		parent := root
		path := strings.Split(f.Key, ".")
		for _, name := range path[:len(path)-1] {
			parent = childMapping(parent, name)
		}
		parent.Content = append(parent.Content, stringNode(path[len(path)-1]), valueNode(f.Value))
	}
	p.write(root)
}

func (p *printer) write(node *yaml.Node) {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		printError(err)
	}
	enc.Close()
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func valueNode(v interface{}) *yaml.Node {
	switch v := v.(type) {
	case fmt.Stringer:
		return stringNode(v.String())
	case string:
		return stringNode(v)
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)}
	}
}

// childMapping returns the mapping stored under `key`, creating it if needed.
func childMapping(parent *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(parent.Content); i += 2 {
		if parent.Content[i].Value == key {
			return parent.Content[i+1]
		}
	}
	child := &yaml.Node{Kind: yaml.MappingNode}
	parent.Content = append(parent.Content, stringNode(key), child)
	return child
}
