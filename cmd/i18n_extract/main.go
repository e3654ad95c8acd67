// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command i18n_extract scans the Go sources and the HTML view templates for
// translatable messages and emits a gettext POT template.
//
// Two sources are scanned:
//   - Go packages, for i18n.Tr, i18n.TrC, i18n.TrN, and i18n.NewUserError
//     calls with constant message arguments
//   - html/template view files, for the tr, trc, and trn template funcs
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template/parse"
	"time"

	"golang.org/x/tools/go/packages"
)

// key models a gettext entry identified by context, singular msgid,
// and optional plural msgid_plural. For non-plural entries, plural is empty.
// NOTE: Comments, flags, or translator notes are currently not modeled.
type key struct {
	ctx    string
	id     string
	plural string
}

type ref struct {
	file string
	line int
}

// extractor holds the shared state and context for AST analysis within a package.
type extractor struct {
	refs        map[key][]ref
	projectRoot string
	fset        *token.FileSet
	info        *types.Info
	i18nPkgs    map[string]struct{}
}

func main() {
	outPath := flag.String("o", "po/visagefe.pot", "output file")
	viewsDir := flag.String("views", "assets/views", "directory of html/template views to scan")
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}

	pkgs, err := packages.Load(&packages.Config{Mode: packages.LoadAllSyntax, Tests: false}, "./...")
	if err != nil {
		log.Fatalf("failed to load packages: %v", err)
	}

	if packages.PrintErrors(pkgs) > 0 {
		log.Fatal("failed to load packages due to errors")
	}

	projectRoot := findProjectRoot(wd)

	refs := extractRefs(pkgs, projectRoot, findI18nPkgPaths(pkgs))

	if err := extractTemplateRefs(refs, *viewsDir, projectRoot); err != nil {
		log.Fatalf("failed to scan templates: %v", err)
	}

	// Emit POT
	keys := make([]key, 0, len(refs))
	for k := range refs {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ctx != keys[j].ctx {
			return keys[i].ctx < keys[j].ctx
		}

		if keys[i].id != keys[j].id {
			return keys[i].id < keys[j].id
		}

		return keys[i].plural < keys[j].plural
	})

	var b strings.Builder
	writeHeader(&b)

	for i, k := range keys {
		rs := refs[k]
		sort.Slice(rs, func(i, j int) bool {
			if rs[i].file != rs[j].file {
				return rs[i].file < rs[j].file
			}

			return rs[i].line < rs[j].line
		})

		// After sorting by file and line, duplicates will be adjacent.
		// Avoid a per-key set while producing identical output.
		fmt.Fprint(&b, "#:")

		lastFile := ""

		lastLine := 0
		for _, r := range rs {
			if r.file != lastFile || r.line != lastLine {
				fmt.Fprintf(&b, " %s:%d", r.file, r.line)

				lastFile = r.file
				lastLine = r.line
			}
		}

		fmt.Fprintln(&b)

		if k.ctx != "" {
			fmt.Fprintf(&b, "msgctxt %q\n", k.ctx)
		}

		// Plural or singular entry
		if k.plural != "" {
			fmt.Fprintf(&b, "msgid %q\n", k.id)
			fmt.Fprintf(&b, "msgid_plural %q\n", k.plural)
			fmt.Fprintf(&b, "msgstr[0] \"\"\n")
			fmt.Fprintf(&b, "msgstr[1] \"\"\n")
		} else {
			fmt.Fprintf(&b, "msgid %q\n", k.id)
			fmt.Fprintf(&b, "msgstr \"\"\n")
		}

		// Add a separating blank line, but not after the very last entry.
		if i < len(keys)-1 {
			fmt.Fprintln(&b)
		}
	}

	// Ensure output directory exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	if err := os.WriteFile(*outPath, []byte(b.String()), 0o644); err != nil {
		log.Fatalf("failed to write output file %s: %v", *outPath, err)
	}
}

// extractRefs traverses all Go source files in the given packages,
// looking for i18n function calls and message keys to extract.
func extractRefs(pkgs []*packages.Package, projectRoot string, i18nPkgPaths map[string]struct{}) map[key][]ref {
	refs := map[key][]ref{}

	for _, p := range pkgs {
		if p.TypesInfo == nil {
			continue
		}

		// Create an extractor with the context for this package's files.
		e := &extractor{
			refs:        refs,
			projectRoot: projectRoot,
			fset:        p.Fset,
			info:        p.TypesInfo,
			i18nPkgs:    i18nPkgPaths,
		}

		for _, f := range p.Syntax {
			ast.Inspect(f, func(n ast.Node) bool {
				if x, ok := n.(*ast.CallExpr); ok {
					e.handleCallExpr(x)
				}

				return true
			})
		}
	}

	return refs
}

// findI18nPkgPaths returns the set of package paths in this build that
// define the i18n package with the Tr translation entry point.
// This lets us require that matched Tr/TrC/TrN calls come from our i18n
// package, regardless of how it is imported or aliased.
func findI18nPkgPaths(pkgs []*packages.Package) map[string]struct{} {
	out := make(map[string]struct{})

	for _, p := range pkgs {
		if p.Name != "i18n" || p.Types == nil {
			continue
		}

		obj := p.Types.Scope().Lookup("Tr")
		if _, ok := obj.(*types.Func); ok {
			out[p.PkgPath] = struct{}{}
		}
	}

	return out
}

// constString evaluates expr to a constant string if possible using types.Info.
// Handles string literals, const identifiers, and constant expressions like "a" + "b".
// Non-constant expressions return false.
func constString(info *types.Info, expr ast.Expr) (string, bool) {
	tv, ok := info.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}

	return constant.StringVal(tv.Value), true
}

// handleCallExpr inspects function calls to find i18n messages.
func (e *extractor) handleCallExpr(x *ast.CallExpr) {
	sel, ok := x.Fun.(*ast.SelectorExpr)
	if !ok {
		return
	}

	fn, ok := e.info.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return
	}

	if _, ok := e.i18nPkgs[fn.Pkg().Path()]; !ok {
		return
	}

	switch fn.Name() {
	case "Tr", "NewUserError": // Tr(ctx, "msg", ...)
		if len(x.Args) >= 2 {
			if msg, ok := constString(e.info, x.Args[1]); ok {
				e.addRef(x.Args[1].Pos(), msg, "", "")
			}
		}
	case "TrC": // TrC(ctx, "ctx", "msg", ...)
		if len(x.Args) >= 3 {
			ctx, ok1 := constString(e.info, x.Args[1])

			msg, ok2 := constString(e.info, x.Args[2])
			if ok1 && ok2 {
				e.addRef(x.Args[2].Pos(), msg, ctx, "")
			}
		}
	case "TrN": // TrN(ctx, "singular", "plural", n, ...)
		if len(x.Args) >= 4 {
			singular, ok1 := constString(e.info, x.Args[1])

			plural, ok2 := constString(e.info, x.Args[2])
			if ok1 && ok2 {
				e.addRef(x.Args[1].Pos(), singular, "", plural)
			}
		}
	}
}

// addRef records a reference to a msgid, normalising the file path relative
// to the computed project root.
func (e *extractor) addRef(pos token.Pos, msg, ctx, plural string) {
	p := e.fset.Position(pos)

	file := p.Filename
	if rel, err := filepath.Rel(e.projectRoot, file); err == nil {
		file = rel
	}

	file = filepath.ToSlash(file)

	k := key{ctx: ctx, id: msg, plural: plural}

	e.refs[k] = append(e.refs[k], ref{file: file, line: p.Line})
}

// extractTemplateRefs parses every view template under dir and records
// the constant string arguments of tr, trc, and trn calls.
func extractTemplateRefs(refs map[key][]ref, dir, projectRoot string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		text := string(raw)

		// SkipFuncCheck lets us parse without registering the FuncMap the
		// server installs at render time.
		trees := map[string]*parse.Tree{}
		t := parse.New(entry.Name())
		t.Mode = parse.SkipFuncCheck

		if _, err := t.Parse(text, "{{", "}}", trees); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		relPath := path
		if rel, err := filepath.Rel(projectRoot, path); err == nil {
			relPath = rel
		}

		relPath = filepath.ToSlash(relPath)

		for _, tree := range trees {
			if tree.Root == nil {
				continue
			}

			walkTemplateNode(refs, tree.Root, text, relPath)
		}
	}

	return nil
}

// walkTemplateNode recursively visits a template parse tree, descending into
// every construct that can carry a pipeline.
func walkTemplateNode(refs map[key][]ref, node parse.Node, text, file string) {
	switch n := node.(type) {
	case *parse.ListNode:
		for _, c := range n.Nodes {
			walkTemplateNode(refs, c, text, file)
		}
	case *parse.ActionNode:
		walkTemplatePipe(refs, n.Pipe, text, file)
	case *parse.IfNode:
		walkTemplateBranch(refs, &n.BranchNode, text, file)
	case *parse.RangeNode:
		walkTemplateBranch(refs, &n.BranchNode, text, file)
	case *parse.WithNode:
		walkTemplateBranch(refs, &n.BranchNode, text, file)
	case *parse.TemplateNode:
		walkTemplatePipe(refs, n.Pipe, text, file)
	}
}

func walkTemplateBranch(refs map[key][]ref, n *parse.BranchNode, text, file string) {
	walkTemplatePipe(refs, n.Pipe, text, file)
	walkTemplateNode(refs, n.List, text, file)

	if n.ElseList != nil {
		walkTemplateNode(refs, n.ElseList, text, file)
	}
}

func walkTemplatePipe(refs map[key][]ref, pipe *parse.PipeNode, text, file string) {
	if pipe == nil {
		return
	}

	for _, cmd := range pipe.Cmds {
		handleTemplateCommand(refs, cmd, text, file)

		// Arguments may themselves be parenthesised pipelines.
		for _, arg := range cmd.Args {
			if p, ok := arg.(*parse.PipeNode); ok {
				walkTemplatePipe(refs, p, text, file)
			}
		}
	}
}

// handleTemplateCommand records a tr, trc, or trn command. The first argument
// of each func is the request context, so string positions are shifted by one
// relative to the Go API.
func handleTemplateCommand(refs map[key][]ref, cmd *parse.CommandNode, text, file string) {
	if len(cmd.Args) == 0 {
		return
	}

	ident, ok := cmd.Args[0].(*parse.IdentifierNode)
	if !ok {
		return
	}

	switch ident.Ident {
	case "tr": // tr ctx "msg" ...
		if msg, ok := templateString(cmd.Args, 2); ok {
			addTemplateRef(refs, key{id: msg}, file, lineAt(text, cmd.Position()))
		}
	case "trc": // trc ctx "ctx" "msg" ...
		msgCtx, ok1 := templateString(cmd.Args, 2)

		msg, ok2 := templateString(cmd.Args, 3)
		if ok1 && ok2 {
			addTemplateRef(refs, key{ctx: msgCtx, id: msg}, file, lineAt(text, cmd.Position()))
		}
	case "trn": // trn ctx "singular" "plural" n ...
		singular, ok1 := templateString(cmd.Args, 2)

		plural, ok2 := templateString(cmd.Args, 3)
		if ok1 && ok2 {
			addTemplateRef(refs, key{id: singular, plural: plural}, file, lineAt(text, cmd.Position()))
		}
	}
}

func templateString(args []parse.Node, i int) (string, bool) {
	if i >= len(args) {
		return "", false
	}

	s, ok := args[i].(*parse.StringNode)
	if !ok {
		return "", false
	}

	return s.Text, true
}

func addTemplateRef(refs map[key][]ref, k key, file string, line int) {
	refs[k] = append(refs[k], ref{file: file, line: line})
}

// lineAt converts a byte offset in text to a 1-based line number.
func lineAt(text string, pos parse.Pos) int {
	offset := int(pos)
	if offset > len(text) {
		offset = len(text)
	}

	return 1 + strings.Count(text[:offset], "\n")
}

// writeHeader emits a POT header.
func writeHeader(b *strings.Builder) {
	fmt.Fprintln(b, `msgid ""`)
	fmt.Fprintln(b, `msgstr ""`)
	fmt.Fprintf(b, "\"Project-Id-Version: VisageFE %s\\n\"\n", detectVersion())
	fmt.Fprintf(b, "\"POT-Creation-Date: %s\\n\"\n", time.Now().UTC().Format("2006-01-02 15:04+0000"))
	fmt.Fprintln(b, `"Language: en\n"`)
	fmt.Fprintln(b, `"Report-Msgid-Bugs-To: https://codeberg.org/visagefe/visagefe/issues\n"`)
	fmt.Fprintln(b, `"MIME-Version: 1.0\n"`)
	fmt.Fprintln(b, `"Content-Type: text/plain; charset=UTF-8\n"`)
	fmt.Fprintln(b, `"Content-Transfer-Encoding: 8bit\n"`)
	fmt.Fprintln(b, `"Plural-Forms: nplurals=2; plural=(n != 1);\n"`)
	fmt.Fprintln(b)
}

// detectVersion resolves a human-friendly version string using git describe.
// Falls back to "dev" when git is unavailable or this is not a git checkout.
func detectVersion() string {
	cmd := exec.Command("git", "describe", "--tags", "--always", "--dirty")

	out, err := cmd.Output()
	if err != nil {
		return "dev"
	}

	return strings.TrimSpace(string(out))
}

// findProjectRoot attempts to find a stable root directory for source references.
// Preference order:
//  1. git toplevel directory
//  2. nearest parent directory that contains go.mod
//  3. the provided working directory
func findProjectRoot(wd string) string {
	if root := gitTopLevel(wd); root != "" {
		return root
	}

	if root := nearestGoModDir(wd); root != "" {
		return root
	}

	return wd
}

func gitTopLevel(wd string) string {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")

	cmd.Dir = wd

	out, err := cmd.Output()
	if err != nil {
		return ""
	}

	root := strings.TrimSpace(string(out))
	if root == "" {
		return ""
	}

	return filepath.Clean(root)
}

func nearestGoModDir(start string) string {
	dir := filepath.Clean(start)
	for {
		if fileExists(filepath.Join(dir, "go.mod")) {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return ""
}

func fileExists(path string) bool {
	if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
		return true
	}

	return false
}
