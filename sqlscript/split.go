package sqlscript

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnterminated is returned when a quote, comment or dollar-quoted
// body is still open at the end of the script.
var ErrUnterminated = errors.New("sqlscript: unterminated literal or comment")

// Options tunes the lexer.
type Options struct {
	HashComments bool // treat "#" as a line comment (MySQL)
	Backslash    bool // backslash escapes inside '…' and "…" (MySQL)
	DollarQuotes bool // PostgreSQL $tag$ bodies
	Delimiters   bool // honour "DELIMITER xx" lines
	KeepComments bool // keep comments in statement text
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions enables every dialect feature and drops comments.
func DefaultOptions() Options {
	return Options{HashComments: true, Backslash: true, DollarQuotes: true, Delimiters: true}
}

// PostgreSQL returns options for PostgreSQL scripts: no "#" comments, no
// backslash escapes in standard strings, no DELIMITER.
func PostgreSQL() Option {
	return func(o *Options) {
		o.HashComments, o.Backslash, o.Delimiters, o.DollarQuotes = false, false, false, true
	}
}

// WithHashComments toggles "#" line comments.
func WithHashComments(on bool) Option { return func(o *Options) { o.HashComments = on } }

// WithDollarQuotes toggles PostgreSQL dollar quoting.
func WithDollarQuotes(on bool) Option { return func(o *Options) { o.DollarQuotes = on } }

// WithDelimiters toggles DELIMITER handling.
func WithDelimiters(on bool) Option { return func(o *Options) { o.Delimiters = on } }

// WithComments keeps comments in the statement text.
func WithComments() Option { return func(o *Options) { o.KeepComments = true } }

// Statement is one SQL statement and the 1-based line it starts on.
type Statement struct {
	SQL  string
	Line int
}

// Split returns the statement texts of script.
func Split(script string, opts ...Option) ([]string, error) {
	stmts, err := Statements(script, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(stmts))
	for i, s := range stmts {
		out[i] = s.SQL
	}
	return out, nil
}

// Statements is Split with source line numbers.
func Statements(script string, opts ...Option) ([]Statement, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	l := &lexer{src: script, opts: o, delim: ";", line: 1}
	return l.run()
}

type lexer struct {
	src   string
	opts  Options
	delim string
	pos   int
	line  int

	buf       strings.Builder
	startLine int
	out       []Statement
}

func (l *lexer) run() ([]Statement, error) {
	for l.pos < len(l.src) {
		if l.atLineStart() && l.opts.Delimiters {
			if l.delimiterLine() {
				continue
			}
		}
		if strings.HasPrefix(l.src[l.pos:], l.delim) {
			l.flush()
			l.pos += len(l.delim)
			continue
		}

		c := l.src[l.pos]
		switch {
		case c == '\'' || c == '"' || c == '`':
			if err := l.quoted(c); err != nil {
				return nil, err
			}
		case c == '-' && l.peek(1) == '-':
			l.lineComment()
		case c == '#' && l.opts.HashComments:
			l.lineComment()
		case c == '/' && l.peek(1) == '*':
			if err := l.blockComment(); err != nil {
				return nil, err
			}
		case c == '$' && l.opts.DollarQuotes:
			if err := l.dollar(); err != nil {
				return nil, err
			}
		default:
			l.emit(l.pos + 1)
		}
	}
	l.flush()
	return l.out, nil
}

func (l *lexer) peek(n int) byte {
	if l.pos+n < len(l.src) {
		return l.src[l.pos+n]
	}
	return 0
}

// emit copies src[pos:end] into the current statement.
func (l *lexer) emit(end int) {
	chunk := l.src[l.pos:end]
	if l.buf.Len() == 0 && strings.TrimSpace(chunk) == "" {
		l.line += strings.Count(chunk, "\n")
		l.pos = end
		return
	}
	if l.buf.Len() == 0 {
		l.startLine = l.line
	}
	l.buf.WriteString(chunk)
	l.line += strings.Count(chunk, "\n")
	l.pos = end
}

// skip drops src[pos:end], keeping line accounting.
func (l *lexer) skip(end int) {
	l.line += strings.Count(l.src[l.pos:end], "\n")
	l.pos = end
}

func (l *lexer) flush() {
	sql := strings.TrimSpace(l.buf.String())
	l.buf.Reset()
	if sql != "" {
		l.out = append(l.out, Statement{SQL: sql, Line: l.startLine})
	}
}

func (l *lexer) atLineStart() bool {
	if strings.TrimSpace(l.buf.String()) != "" {
		return false
	}
	return l.pos == 0 || l.src[l.pos-1] == '\n' || strings.TrimLeft(l.lineBefore(), " \t") == ""
}

func (l *lexer) lineBefore() string {
	start := strings.LastIndexByte(l.src[:l.pos], '\n') + 1
	return l.src[start:l.pos]
}

// delimiterLine consumes "DELIMITER xx" and reports whether it did.
func (l *lexer) delimiterLine() bool {
	rest := l.src[l.pos:]
	trimmed := strings.TrimLeft(rest, " \t")
	const kw = "DELIMITER"
	if len(trimmed) <= len(kw) || !strings.EqualFold(trimmed[:len(kw)], kw) {
		return false
	}
	if c := trimmed[len(kw)]; c != ' ' && c != '\t' {
		return false
	}
	end := strings.IndexByte(rest, '\n')
	if end < 0 {
		end = len(rest)
	}
	fields := strings.Fields(rest[:end])
	if len(fields) < 2 {
		return false
	}
	l.delim = fields[1]
	l.skip(l.pos + end)
	return true
}

func (l *lexer) quoted(q byte) error {
	start, startLine := l.pos, l.line
	i := l.pos + 1
	for i < len(l.src) {
		switch l.src[i] {
		case '\\':
			if q != '`' && l.opts.Backslash {
				i += 2
				continue
			}
		case q:
			if i+1 < len(l.src) && l.src[i+1] == q {
				i += 2
				continue
			}
			l.emit(i + 1)
			return nil
		}
		i++
	}
	return fmt.Errorf("%w: %c quote opened on line %d (offset %d)", ErrUnterminated, q, startLine, start)
}

func (l *lexer) lineComment() {
	end := strings.IndexByte(l.src[l.pos:], '\n')
	if end < 0 {
		end = len(l.src)
	} else {
		end += l.pos
	}
	if l.opts.KeepComments {
		l.emit(end)
		return
	}
	l.skip(end)
}

func (l *lexer) blockComment() error {
	end := strings.Index(l.src[l.pos+2:], "*/")
	if end < 0 {
		return fmt.Errorf("%w: block comment opened on line %d", ErrUnterminated, l.line)
	}
	end += l.pos + 4
	if l.opts.KeepComments || l.peek(2) == '!' || l.peek(2) == '+' {
		l.emit(end)
		return nil
	}
	l.skip(end)
	if l.buf.Len() > 0 {
		l.buf.WriteByte(' ')
	}
	return nil
}

// dollar handles $tag$ … $tag$. A "$" that does not open a valid tag
// ($1 placeholders, identifiers containing $) is ordinary text.
func (l *lexer) dollar() error {
	if l.pos > 0 && isTagByte(l.src[l.pos-1], false) {
		l.emit(l.pos + 1) // identifier$part
		return nil
	}
	rest := l.src[l.pos:]
	j := 1
	for j < len(rest) && isTagByte(rest[j], j == 1) {
		j++
	}
	if j >= len(rest) || rest[j] != '$' {
		l.emit(l.pos + 1)
		return nil
	}
	tag := rest[:j+1]
	closeAt := strings.Index(rest[len(tag):], tag)
	if closeAt < 0 {
		return fmt.Errorf("%w: %s body opened on line %d", ErrUnterminated, tag, l.line)
	}
	l.emit(l.pos + len(tag) + closeAt + len(tag))
	return nil
}

func isTagByte(c byte, first bool) bool {
	switch {
	case c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= 0x80:
		return true
	case c >= '0' && c <= '9':
		return !first
	default:
		return false
	}
}
