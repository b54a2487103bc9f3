package build

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"pegen/resolve"
)

// EchoTree builds the tree echoed to the console before generation: every
// component of the PE grouped by kind, together with the derived select widths
func EchoTree(d *resolve.Design) pterm.TreeNode {
	pe := d.PE

	root := pterm.TreeNode{Text: "PE " + pe.Name}
	root.Children = append(root.Children,
		listNode("Inputs", pe.Inputs),
		listNode("Outputs", pe.Outputs),
	)

	muxes := pterm.TreeNode{Text: fmt.Sprintf("Muxes (%d)", len(pe.Muxes))}
	for _, mux := range pe.Muxes {
		muxes.Children = append(muxes.Children, pterm.TreeNode{
			Text: fmt.Sprintf("%s: %d driver(s), %d select bit(s)", mux, len(d.Drivers(mux)), d.MuxBits[mux]),
		})
	}
	root.Children = append(root.Children, muxes, listNode("Registers", pe.Registers))

	fus := pterm.TreeNode{Text: fmt.Sprintf("Functional Units (%d)", len(pe.FUs))}
	for _, fu := range pe.FUs {
		fus.Children = append(fus.Children, pterm.TreeNode{
			Text: fmt.Sprintf("%s: %d op(s) [%s], %d select bit(s)",
				fu.Name, len(fu.Ops), strings.Join(fu.Ops, ", "), d.FUBits[fu.Name]),
		})
	}
	root.Children = append(root.Children, fus)

	conns := pterm.TreeNode{Text: fmt.Sprintf("Connections (%d)", len(pe.Connections))}
	for _, conn := range pe.Connections {
		conns.Children = append(conns.Children, pterm.TreeNode{Text: conn.From + " -> " + conn.To})
	}
	root.Children = append(root.Children, conns)

	return root
}

func listNode(title string, names []string) pterm.TreeNode {
	node := pterm.TreeNode{Text: fmt.Sprintf("%s (%d)", title, len(names))}
	for _, name := range names {
		node.Children = append(node.Children, pterm.TreeNode{Text: name})
	}

	return node
}
