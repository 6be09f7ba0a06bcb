package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli"

	"go.lepak.sg/avlmap/tree/avl"
)

func runApply(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	tr := avl.New[string, string]()
	if m.verbose {
		tr.SetLogger(m.log)
	}

	if err := apply(tr, m.r, m.w); nil != err {
		return err
	}

	m.log.Infof("applied, len: %d height: %d", tr.Len(), tr.Height())

	if c.Bool("print") {
		fmt.Fprint(m.w, tr.String())
	}

	return nil
}

// apply runs each line of r against tr and reports the outcome to w.
// Blank lines and lines starting with # are skipped.
func apply(tr *avl.Tree[string, string], r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if "" == text || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.SplitN(text, " ", 3)
		op := strings.ToLower(fields[0])

		switch {
		case "put" == op && 3 == len(fields):
			k, v := fields[1], strings.TrimSpace(fields[2])
			if tr.Put(k, v) {
				fmt.Fprintf(w, "added %s\n", k)
			} else {
				fmt.Fprintf(w, "updated %s\n", k)
			}

		case "get" == op && 2 == len(fields):
			k := fields[1]
			if v, ok := tr.Get(k); ok {
				fmt.Fprintf(w, "%s=%s\n", k, v)
			} else {
				fmt.Fprintf(w, "%s not found\n", k)
			}

		case "del" == op && 2 == len(fields):
			k := fields[1]
			if tr.Delete(k) {
				fmt.Fprintf(w, "deleted %s\n", k)
			} else {
				fmt.Fprintf(w, "%s not found\n", k)
			}

		default:
			return fmt.Errorf("line %d: cannot parse %q", line, text)
		}
	}

	return scanner.Err()
}
