// Package optfile reads option definition files: blank-line separated record
// blocks declaring languages, enums, enum values and options with help text.
//
// A Parser owns the model while it is being built. Lines are fed through a
// small state machine whose meaning depends on the header line of the current
// block; Finish consolidates the result and hands the model over.
package optfile

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shibukawa/gccopt"
	"github.com/shibukawa/gccopt/model"
	"github.com/shibukawa/gccopt/properties"
)

const maxLineLength = 1024 * 1024

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithLogger routes the line trace and diagnostics to logger.
func WithLogger(logger *slog.Logger) ParserOption {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Parser accumulates records from one or more files into a single model.
type Parser struct {
	model  *model.Model
	logger *slog.Logger

	state          State
	file           string
	line           int
	optionName     string
	optionLine     int
	option         *model.Option
	enumHeaderSeen bool

	err      error
	finished bool
}

// NewParser creates a Parser with an empty model.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		model:  model.New(),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// ParseFile reads the file at path.
func (p *Parser) ParseFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open option file: %w", err)
	}
	defer f.Close()

	return p.Parse(path, f)
}

// Parse reads every line of r. name is used in positions and error messages.
// The first error stops the parser; later calls return the same error.
func (p *Parser) Parse(name string, r io.Reader) error {
	if p.err != nil {
		return p.err
	}

	if p.finished {
		return ErrFinished
	}

	p.file = name
	p.line = 0
	p.reset()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	for scanner.Scan() {
		p.line++

		if err := p.processLine(scanner.Text()); err != nil {
			p.err = &LineError{File: p.file, Line: p.line, Text: scanner.Text(), Err: err}
			return p.err
		}
	}

	if err := scanner.Err(); err != nil {
		p.err = fmt.Errorf("failed to read %s: %w", name, err)
		return p.err
	}

	// A trailing block without blank line is complete as it is.
	p.reset()

	return nil
}

// Finish consolidates the model and returns it. No partial model is returned
// on error.
func (p *Parser) Finish() (*model.Model, error) {
	if p.err != nil {
		return nil, p.err
	}

	p.finished = true

	if err := p.model.Consolidate(); err != nil {
		p.err = err
		return nil, err
	}

	for _, d := range p.model.Duplicates() {
		p.logger.Warn("duplicate option definition ignored", "option", d.Name, "position", d.Position.String())
	}

	for _, d := range p.model.Dangling() {
		p.logger.Warn("enabling condition names unknown option", "option", d.Option, "condition", d.Condition)
	}

	return p.model, nil
}

func (p *Parser) reset() {
	p.state = StateInit
	p.optionName = ""
	p.option = nil
	p.enumHeaderSeen = false
}

func (p *Parser) position(line int) model.Position {
	return model.Position{File: p.file, Line: line}
}

func (p *Parser) processLine(l string) error {
	p.logger.Debug("line", "file", p.file, "line", p.line, "state", p.state.String(), "option", p.optionName, "text", l)

	if len(l) > 0 && l[0] == ';' {
		return nil
	}

	if l == "" {
		p.reset()
		return nil
	}

	switch p.state {
	case StateInit:
		p.processHeader(l)
	case StateIgnore:
	case StateLanguage:
		p.model.AddLanguage(l)
	case StateEnum:
		return p.processEnum(l)
	case StateEnumValue:
		return p.processEnumValue(l)
	case StateOption:
		return p.processOption(l)
	case StateOptionHelp:
		p.option.AppendHelp(l)
	default:
		return fmt.Errorf("invalid parser state %d", p.state)
	}

	return nil
}

func (p *Parser) processHeader(l string) {
	switch {
	case ignoredHeaders[l]:
		p.state = StateIgnore
	case l == headerLanguage:
		p.state = StateLanguage
	case l == headerEnum:
		p.state = StateEnum
	case l == headerEnumValue:
		p.state = StateEnumValue
	default:
		p.state = StateOption
		p.optionName = l
		p.optionLine = p.line
	}
}

func (p *Parser) processEnum(l string) error {
	if p.enumHeaderSeen {
		return gccopt.ErrDuplicateEnumHeader
	}

	props, err := properties.Parse(l)
	if err != nil {
		return err
	}

	e, err := model.NewEnum(props, p.position(p.line))
	if err != nil {
		return err
	}

	p.model.AddEnum(e)
	p.enumHeaderSeen = true
	p.logger.Debug("new enum", "name", e.Name, "type", e.Type)

	return nil
}

func (p *Parser) processEnumValue(l string) error {
	props, err := properties.Parse(l)
	if err != nil {
		return err
	}

	values := make(map[string]string, 3)

	for _, key := range []string{"Enum", "String", "Value"} {
		v, ok := props.Payload(key)
		if !ok {
			return fmt.Errorf("%w: EnumValue needs %s(...)", gccopt.ErrMissingProperty, key)
		}

		values[key] = v
	}

	e, err := p.model.Enum(values["Enum"])
	if err != nil {
		return fmt.Errorf("%w: '%s'", gccopt.ErrUnknownEnum, values["Enum"])
	}

	e.AddValue(values["String"], values["Value"])

	return nil
}

func (p *Parser) processOption(l string) error {
	props, err := properties.Parse(l)
	if err != nil {
		return err
	}

	o, err := model.NewOption(p.optionName, l, props, p.position(p.optionLine))
	if err != nil {
		return err
	}

	if !p.model.AddOption(o) {
		p.logger.Debug("skipping duplicate option block", "option", o.Name)
		p.state = StateIgnore

		return nil
	}

	p.option = o
	p.state = StateOptionHelp

	return nil
}

// Parse reads a single option file from r and returns the consolidated model.
func Parse(name string, r io.Reader, opts ...ParserOption) (*model.Model, error) {
	p := NewParser(opts...)

	if err := p.Parse(name, r); err != nil {
		return nil, err
	}

	return p.Finish()
}

// ParseFiles reads every file in paths, in order, into one consolidated model.
func ParseFiles(paths []string, opts ...ParserOption) (*model.Model, error) {
	p := NewParser(opts...)

	for _, path := range paths {
		if err := p.ParseFile(path); err != nil {
			return nil, err
		}
	}

	return p.Finish()
}
