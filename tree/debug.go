package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes a spew dump of the serializable form of the subtree rooted at n.
func (n Node) Dump(w io.Writer) error {
	doc, err := n.document()
	if err != nil {
		return err
	}

	dumpConfig.Fdump(w, doc)

	return nil
}

// Render returns an outline of the subtree rooted at n, one node per line:
//
//	Node 0 (Namespace 0)
//	├── Node 3 (Namespace 3)
//	│   └── Node 9 (Namespace 9)
//	└── Node 4 (Namespace 4)
func (n Node) Render(colored bool) string {
	var b strings.Builder

	_ = n.Fprint(&b, colored)

	return b.String()
}

// Fprint writes the outline produced by Render to w.
func (n Node) Fprint(w io.Writer, colored bool) error {
	if !n.Valid() {
		return ErrStaleReference
	}

	name := color.New(color.FgCyan, color.Bold)
	namespace := color.New(color.FgHiBlack)

	if colored {
		name.EnableColor()
		namespace.EnableColor()
	} else {
		name.DisableColor()
		namespace.DisableColor()
	}

	p := outline{w: w, name: name, namespace: namespace}
	p.line("", n)
	p.children("", n)

	return p.err
}

type outline struct {
	w         io.Writer
	name      *color.Color
	namespace *color.Color
	err       error
}

func (p *outline) line(prefix string, n Node) {
	if p.err != nil {
		return
	}

	it := n.Item()
	_, p.err = fmt.Fprintf(p.w, "%s%s %s\n", prefix, p.name.Sprint(it.Name()), p.namespace.Sprint("("+it.Namespace()+")"))
}

func (p *outline) children(indent string, n Node) {
	kids := n.Children()

	for i, c := range kids {
		branch, next := "├── ", "│   "
		if i == len(kids)-1 {
			branch, next = "└── ", "    "
		}

		p.line(indent+branch, c)
		p.children(indent+next, c)
	}
}
