package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"text/tabwriter"

	"github.com/woozymasta/docref"
	"gopkg.in/yaml.v3"
)

var errNotFound = errors.New("no ref matches query")

type VersionsCommand struct {
	ReleaseOnly bool   `short:"r" long:"release-only" description:"Drop prerelease tags"`
	Depth       string `short:"D" long:"depth"        description:"Aggregation depth" choice:"all" choice:"head" choice:"latest" default:"all"`
	SortMode    string `short:"S" long:"sort"         description:"Sort output" choice:"desc" choice:"asc" default:"desc"`
	Limit       int    `short:"n" long:"limit"        description:"Max number of entries, latest always kept (<=0 = unlimited)" default:"0"`
	Include     string `short:"i" long:"include"      description:"Regexp to keep tag names (applied before parsing)"`
	Exclude     string `short:"e" long:"exclude"      description:"Regexp to drop tag names (applied before parsing)"`
	Format      string `short:"f" long:"format"       description:"Output format" choice:"text" choice:"json" choice:"yaml" default:"text"`
}

type ResolveCommand struct {
	LatestBranch string `short:"l" long:"latest-branch" env:"REPO_LATEST_BRANCH" description:"Ref that ranges matching the newest tag resolve to" default:"refs/heads/main"`

	Args struct {
		Query string `positional-arg-name:"QUERY" description:"Version token: full version, v6, 1.2, ^1.2.0 or branch name"`
	} `positional-args:"yes" required:"yes"`
}

type HeadCommand struct {
	Args struct {
		Refs []string `positional-arg-name:"REF" description:"refs/heads/<name> or refs/tags/<name>"`
	} `positional-args:"yes" required:"yes"`
}

func (c *VersionsCommand) Execute([]string) error {
	return c.run(os.Stdin, os.Stdout)
}

func (c *VersionsCommand) run(in io.Reader, out io.Writer) error {
	opt, err := c.options()
	if err != nil {
		return err
	}

	refs, err := readRefs(in)
	if err != nil {
		return err
	}
	slog.Debug("read refs", "count", len(refs))

	list, err := docref.SelectVersions(refs, opt)
	if err != nil {
		return fmt.Errorf("list versions: %w", err)
	}

	return writeVersions(out, list, c.Format)
}

func (c *VersionsCommand) options() (docref.Options, error) {
	opt := docref.DefaultOptions()
	opt.ReleaseOnly = c.ReleaseOnly
	opt.Depth = docref.ParseDepth(c.Depth)
	opt.Sort = docref.ParseSort(c.SortMode)
	opt.Limit = c.Limit

	var err error
	if opt.Include, err = compileOptional(c.Include); err != nil {
		return opt, fmt.Errorf("include regexp: %w", err)
	}
	if opt.Exclude, err = compileOptional(c.Exclude); err != nil {
		return opt, fmt.Errorf("exclude regexp: %w", err)
	}

	return opt, nil
}

func (c *ResolveCommand) Execute([]string) error {
	return c.run(os.Stdin, os.Stdout)
}

func (c *ResolveCommand) run(in io.Reader, out io.Writer) error {
	refs, err := readRefs(in)
	if err != nil {
		return err
	}

	query := strings.TrimSpace(c.Args.Query)
	ref, ok, err := docref.Resolve(query, refs, c.LatestBranch)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", query, err)
	}
	if !ok {
		return fmt.Errorf("%w: %q", errNotFound, query)
	}

	slog.Debug("resolved", "query", query, "ref", ref, "refs", len(refs))
	_, err = fmt.Fprintln(out, ref)

	return err
}

func (c *HeadCommand) Execute([]string) error {
	return c.run(os.Stdout)
}

func (c *HeadCommand) run(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, ref := range c.Args.Refs {
		head, err := docref.RefHead(ref)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\n", ref, head)
	}

	return tw.Flush()
}

// readRefs reads stdin line by line, ignoring empty lines.
func readRefs(r io.Reader) ([]string, error) {
	in := make([]string, 0, 1024)
	sc := bufio.NewScanner(r)
	const maxLine = 10 * 1024 * 1024
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, maxLine)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			in = append(in, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return in, nil
}

func compileOptional(expr string) (*regexp.Regexp, error) {
	if s := strings.TrimSpace(expr); s != "" {
		return regexp.Compile(s)
	}

	return nil, nil
}

func writeVersions(w io.Writer, list []docref.VersionHead, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return err
		}
		return enc.Close()

	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, v := range list {
			if v.IsLatest {
				fmt.Fprintf(tw, "%s\t%s\tlatest\n", v.Head, v.Version)
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\n", v.Head, v.Version)
		}
		return tw.Flush()
	}
}
