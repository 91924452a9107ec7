package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/shibukawa/gccopt"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// OutputFormat names a rendering.
type OutputFormat string

const (
	FormatText     OutputFormat = "text"
	FormatJSON     OutputFormat = "json"
	FormatYAML     OutputFormat = "yaml"
	FormatMarkdown OutputFormat = "markdown"
	FormatHTML     OutputFormat = "html"
	FormatXML      OutputFormat = "xml"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(name)); f {
	case FormatText, FormatJSON, FormatYAML, FormatMarkdown, FormatHTML, FormatXML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %s", gccopt.ErrUnsupportedFormat, name)
	}
}

// Formatter renders query results
type Formatter struct {
	Format OutputFormat
}

// NewFormatter creates a new result formatter
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{
		Format: format,
	}
}

var (
	nameColor    = color.New(color.FgCyan, color.Bold)
	warningColor = color.New(color.FgYellow)
	defaultColor = color.New(color.FgGreen)
	aliasColor   = color.New(color.FgMagenta)
	labelColor   = color.New(color.Faint)
)

// Options renders option descriptions.
func (f *Formatter) Options(entries []Entry, output io.Writer) error {
	switch f.Format {
	case FormatText:
		return optionsAsText(entries, output)
	case FormatJSON:
		return formatAsJSON(entries, output)
	case FormatYAML:
		return optionsAsYAML(entries, output)
	case FormatMarkdown:
		_, err := io.WriteString(output, optionsAsMarkdown(entries))
		return err
	case FormatHTML:
		return markdownToHTML(optionsAsMarkdown(entries), output)
	case FormatXML:
		return writeXML(optionsAsXML(entries), output)
	default:
		return fmt.Errorf("%w: %s", gccopt.ErrUnsupportedFormat, f.Format)
	}
}

// Names renders a plain list of option names, printed with their leading '-'.
func (f *Formatter) Names(title string, names []string, output io.Writer) error {
	return f.List(title, names, "-", output)
}

// List renders plain strings. prefix is prepended in text and markdown output
// only.
func (f *Formatter) List(title string, items []string, prefix string, output io.Writer) error {
	if items == nil {
		items = []string{}
	}

	switch f.Format {
	case FormatText:
		for _, item := range items {
			if _, err := fmt.Fprintln(output, prefix+item); err != nil {
				return err
			}
		}

		return nil
	case FormatJSON:
		return formatAsJSON(items, output)
	case FormatYAML:
		return formatAsYAML(items, output)
	case FormatMarkdown:
		_, err := io.WriteString(output, listAsMarkdown(title, items, prefix))
		return err
	case FormatHTML:
		return markdownToHTML(listAsMarkdown(title, items, prefix), output)
	case FormatXML:
		return writeXML(listAsXML(title, items), output)
	default:
		return fmt.Errorf("%w: %s", gccopt.ErrUnsupportedFormat, f.Format)
	}
}

// Enums renders enum descriptions.
func (f *Formatter) Enums(entries []EnumEntry, output io.Writer) error {
	switch f.Format {
	case FormatText:
		for _, e := range entries {
			nameColor.Fprint(output, e.Name)
			fmt.Fprintf(output, " (%s)\n", e.Type)

			for _, v := range e.Values {
				fmt.Fprintf(output, "  %-16s %s\n", v.String, v.Value)
			}
		}

		return nil
	case FormatJSON:
		return formatAsJSON(entries, output)
	case FormatYAML:
		return formatAsYAML(entries, output)
	case FormatMarkdown:
		_, err := io.WriteString(output, enumsAsMarkdown(entries))
		return err
	case FormatHTML:
		return markdownToHTML(enumsAsMarkdown(entries), output)
	case FormatXML:
		return writeXML(enumsAsXML(entries), output)
	default:
		return fmt.Errorf("%w: %s", gccopt.ErrUnsupportedFormat, f.Format)
	}
}

// Summary renders model statistics.
func (f *Formatter) Summary(s Summary, output io.Writer) error {
	rows := summaryRows(s)

	switch f.Format {
	case FormatText:
		for _, r := range rows {
			labelColor.Fprintf(output, "%-12s", r[0]+":")
			fmt.Fprintf(output, " %s\n", r[1])
		}

		return nil
	case FormatJSON:
		return formatAsJSON(s, output)
	case FormatYAML:
		return formatAsYAML(s, output)
	case FormatMarkdown:
		_, err := io.WriteString(output, summaryAsMarkdown(rows))
		return err
	case FormatHTML:
		return markdownToHTML(summaryAsMarkdown(rows), output)
	case FormatXML:
		return writeXML(summaryAsXML(rows), output)
	default:
		return fmt.Errorf("%w: %s", gccopt.ErrUnsupportedFormat, f.Format)
	}
}

func optionsAsText(entries []Entry, output io.Writer) error {
	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(output)
		}

		nameColor.Fprint(output, "-"+e.Name)

		if e.Warning {
			fmt.Fprint(output, " ")
			warningColor.Fprint(output, "[warning]")
		}

		if e.DefaultOn {
			fmt.Fprint(output, " ")
			defaultColor.Fprint(output, "[on by default]")
		}

		if e.AliasOf != "" {
			fmt.Fprint(output, " ")
			aliasColor.Fprintf(output, "[alias of -%s]", e.AliasOf)
		}

		fmt.Fprintln(output)

		textField(output, "properties", e.Raw)
		textField(output, "enabled by", strings.Join(e.EnabledBy, ", "))
		textField(output, "enables", dashed(e.Enables))
		textField(output, "closure", strings.Join(e.Closure, ", "))
		textField(output, "aliases", dashed(e.Aliases))
		textField(output, "languages", strings.Join(e.Langs, " "))
		textField(output, "defined at", e.Position)

		if e.Help != "" {
			if _, err := fmt.Fprintf(output, "  %s\n", e.Help); err != nil {
				return err
			}
		}
	}

	return nil
}

func textField(output io.Writer, label, value string) {
	if value == "" {
		return
	}

	fmt.Fprint(output, "  ")
	labelColor.Fprintf(output, "%-11s", label+":")
	fmt.Fprintf(output, " %s\n", value)
}

func dashed(names []string) string {
	prefixed := make([]string, len(names))
	for i, n := range names {
		prefixed[i] = "-" + n
	}

	return strings.Join(prefixed, ", ")
}

// formatAsJSON formats a value as indented JSON
func formatAsJSON(v any, output io.Writer) error {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// formatAsYAML formats a value as YAML
func formatAsYAML(v any, output io.Writer) error {
	encoder := yaml.NewEncoder(output)
	encoder.SetIndent(2)

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}

// optionsAsYAML keeps properties in declaration order by building the
// document as a node tree.
func optionsAsYAML(entries []Entry, output io.Writer) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode}

	for _, e := range entries {
		var node yaml.Node
		if err := node.Encode(e); err != nil {
			return err
		}

		props := &yaml.Node{Kind: yaml.MappingNode}

		for _, p := range e.Properties {
			value := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
			if p.Payload != nil {
				value = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: *p.Payload}
			}

			props.Content = append(props.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key},
				value)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "properties"},
			props)
		doc.Content = append(doc.Content, &node)
	}

	return formatAsYAML(doc, output)
}

func optionsAsMarkdown(entries []Entry) string {
	var b strings.Builder

	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "## `-%s`\n\n", e.Name)

		if e.Help != "" {
			fmt.Fprintf(&b, "%s\n\n", e.Help)
		}

		b.WriteString("| Attribute | Value |\n")
		b.WriteString("|---|---|\n")
		fmt.Fprintf(&b, "| Warning | %s |\n", yesNo(e.Warning))
		fmt.Fprintf(&b, "| Default on | %s |\n", yesNo(e.DefaultOn))

		if e.AliasOf != "" {
			fmt.Fprintf(&b, "| Alias of | %s |\n", codeList([]string{e.AliasOf}, "-"))
		}

		if len(e.Aliases) > 0 {
			fmt.Fprintf(&b, "| Aliases | %s |\n", codeList(e.Aliases, "-"))
		}

		if len(e.EnabledBy) > 0 {
			fmt.Fprintf(&b, "| Enabled by | %s |\n", codeList(e.EnabledBy, ""))
		}

		if len(e.Enables) > 0 {
			fmt.Fprintf(&b, "| Enables | %s |\n", codeList(e.Enables, "-"))
		}

		if len(e.Langs) > 0 {
			fmt.Fprintf(&b, "| Languages | %s |\n", cell(strings.Join(e.Langs, " ")))
		}

		fmt.Fprintf(&b, "| Properties | %s |\n", codeList([]string{e.Raw}, ""))

		if e.Position != "" {
			fmt.Fprintf(&b, "| Defined at | %s |\n", cell(e.Position))
		}
	}

	return b.String()
}

func listAsMarkdown(title string, items []string, prefix string) string {
	var b strings.Builder

	if title != "" {
		fmt.Fprintf(&b, "## %s\n\n", title)
	}

	for _, item := range items {
		fmt.Fprintf(&b, "- `%s%s`\n", prefix, item)
	}

	return b.String()
}

func enumsAsMarkdown(entries []EnumEntry) string {
	var b strings.Builder

	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "## %s\n\nType: `%s`\n\n", e.Name, cell(e.Type))
		b.WriteString("| String | Value |\n")
		b.WriteString("|---|---|\n")

		for _, v := range e.Values {
			fmt.Fprintf(&b, "| %s | %s |\n", cell(v.String), cell(v.Value))
		}
	}

	return b.String()
}

func summaryAsMarkdown(rows [][2]string) string {
	var b strings.Builder

	b.WriteString("| Record | Count |\n")
	b.WriteString("|---|---|\n")

	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", r[0], r[1])
	}

	return b.String()
}

func summaryRows(s Summary) [][2]string {
	return [][2]string{
		{"languages", fmt.Sprint(s.Languages)},
		{"enums", fmt.Sprint(s.Enums)},
		{"options", fmt.Sprint(s.Options)},
		{"warnings", fmt.Sprint(s.Warnings)},
		{"aliases", fmt.Sprint(s.Aliases)},
		{"default on", fmt.Sprint(s.DefaultOn)},
		{"duplicates", fmt.Sprint(s.Duplicates)},
		{"dangling", fmt.Sprint(s.Dangling)},
	}
}

// markdownToHTML renders GitHub flavored markdown.
func markdownToHTML(src string, output io.Writer) error {
	var buf bytes.Buffer

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(src), &buf); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}

	_, err := buf.WriteTo(output)

	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

// cell escapes the table separator.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func codeList(values []string, prefix string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "`" + cell(prefix+v) + "`"
	}

	return strings.Join(quoted, ", ")
}
