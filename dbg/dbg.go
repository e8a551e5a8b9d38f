/*
Package dbg renders debugging views of markup trees: an ASCII tree dump for
test logs and a GraphViz (DOT) digraph for visual inspection.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/markup"
	tp "github.com/xlab/treeprint"
)

// Text returns an ASCII tree dump of a node, suitable for t.Logf.
func Text(n markup.Node) string {
	p := tp.New()
	ppn(p, n)
	return p.String()
}

func ppn(p tp.Tree, n markup.Node) {
	if n.ChildCount() == 0 {
		p.AddNode(label(n))
		return
	}
	branch := p.AddBranch(label(n))
	for _, ch := range n.Children() {
		ppn(branch, ch)
	}
}

func label(n markup.Node) string {
	if n.IsFragment() {
		return "#fragment"
	}
	l := n.Tag()
	for _, a := range n.Attrs() {
		l += fmt.Sprintf(" %s=%q", a.Key, a.Value)
	}
	if n.HasText() {
		l += fmt.Sprintf(" %q", shorten(n.Text()))
	}
	return l
}

func shorten(s string) string {
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	if len(s) > 10 {
		return s[:10] + "..."
	}
	return s
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz writes a digraph of a markup tree in GraphViz (DOT) format.
// Element nodes are drawn as ellipses, text leaves as grey boxes.
func ToGraphViz(n markup.Node, w io.Writer) error {
	tmpl, err := template.New("tree").Parse(graphHeadTmpl)
	if err != nil {
		panic(err) // our own template must parse
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("node").Funcs(
		template.FuncMap{
			"label": label,
		}).Parse(nodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err := tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if _, err := emit(n, "node1", 1, w, &gparams); err != nil {
		return err
	}
	_, err = io.WriteString(w, "}\n")
	return err
}

type gnode struct {
	N    markup.Node
	Name string
}

type gedge struct {
	N1, N2 gnode
}

// emit writes one node and its subtree, numbering nodes depth-first.
// Returns the next free number.
func emit(n markup.Node, name string, next int, w io.Writer,
	gparams *graphParamsType) (int, error) {
	//
	next++
	me := gnode{n, name}
	if err := gparams.NodeTmpl.Execute(w, me); err != nil {
		return next, err
	}
	for _, ch := range n.Children() {
		chName := fmt.Sprintf("node%d", next)
		var err error
		if next, err = emit(ch, chName, next, w, gparams); err != nil {
			return next, err
		}
		if err := gparams.EdgeTmpl.Execute(w, gedge{me, gnode{ch, chName}}); err != nil {
			return next, err
		}
	}
	return next, nil
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  node [fontname = "{{ .Fontname }}" fontsize=14] ;
  edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const nodeTmpl = `{{ if .N.HasText }}
{{ .Name }}	[ label={{ printf "%q" (label .N) }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" (label .N) }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const edgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
