package measure

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	asciitree "github.com/thediveo/go-asciitree"

	"github.com/pavanmanishd/arraylist/internal/config"
)

// Write renders reports in the given format.
func Write(w io.Writer, format string, reports []Report) error {
	switch format {
	case config.FormatText:
		return WriteText(w, reports)
	case config.FormatTree:
		return WriteTree(w, reports)
	default:
		return errors.Errorf("unsupported format %q", format)
	}
}

// WriteText prints one block of timing lines per implementation.
func WriteText(w io.Writer, reports []Report) error {
	for _, r := range reports {
		if _, err := fmt.Fprintf(w, "Timing for %s\nThis list contains n = %d elements.\n", r.Implementation, r.Elements); err != nil {
			return err
		}
		for _, res := range r.Results {
			if _, err := fmt.Fprintf(w, "- %s: %dms.\n", describe(r, res), res.Elapsed.Milliseconds()); err != nil {
				return err
			}
		}
	}
	return nil
}

func describe(r Report, res Result) string {
	switch res.Phase {
	case PhaseFill:
		return fmt.Sprintf("fill with %d random elements", res.Affected)
	case PhaseRandomAccess:
		return fmt.Sprintf("access %d random elements", res.Operations)
	case PhaseRandomRemoval:
		return fmt.Sprintf("remove %d random positions", res.Affected)
	case PhaseIterationRemoval:
		return fmt.Sprintf("remove random %d positions (%.4g%%) via iterator", res.Affected, r.IterationRemovalRate*100)
	default:
		return string(res.Phase)
	}
}

type treeNode struct {
	Label    string     `asciitree:"label"`
	Props    []string   `asciitree:"properties"`
	Children []treeNode `asciitree:"children"`
}

// WriteTree renders the reports as a tree: implementations, then phases.
func WriteTree(w io.Writer, reports []Report) error {
	root := treeNode{Label: "listbench"}
	for _, r := range reports {
		impl := treeNode{
			Label: r.Implementation,
			Props: []string{
				fmt.Sprintf("elements: %d", r.Elements),
				fmt.Sprintf("remaining: %d", r.Len),
				fmt.Sprintf("checksum: %d", r.Checksum),
			},
		}
		for _, res := range r.Results {
			impl.Children = append(impl.Children, treeNode{
				Label: string(res.Phase),
				Props: []string{
					fmt.Sprintf("operations: %d", res.Operations),
					fmt.Sprintf("affected: %d", res.Affected),
					fmt.Sprintf("elapsed: %s", res.Elapsed.Round(time.Microsecond)),
				},
			})
		}
		root.Children = append(root.Children, impl)
	}
	_, err := fmt.Fprintln(w, asciitree.RenderFancy(root))
	return err
}
