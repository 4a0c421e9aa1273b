package symbol

import (
	"errors"
	"fmt"
	"strings"
)

// parser is one parse session over one source expression. A session lives
// for a single parse call; no state survives between calls.
//
// Grammar:
//
//	grammar   ::= { expr }
//	expr      ::= '\' '$'                     escaped literal dollar
//	            | '$' call
//	            | { char-not-dollar }         literal run
//	call      ::= identifier '(' [args] ')'
//	args      ::= arg { ',' arg }
//	arg       ::= { esc-seq | '$' call | char-not-comma-not-rparen }
//	esc-seq   ::= '\' any-char
//	identifier::= (letter | '_') { letter | digit | '_' }
//
// The scanner works on bytes: the grammar's active characters are all
// ASCII, and multi-byte UTF-8 sequences in literal runs pass through
// unchanged. Offsets reported in errors are byte offsets.
type parser struct {
	enc    *Encoder
	strict bool

	src    string
	cursor int
	eos    bool
	frags  []string
}

func (p *parser) parse(expr string) (string, error) {
	p.src = expr
	p.cursor = 0
	p.eos = len(expr) == 0
	p.frags = nil

	for !p.eos {
		frag, err := p.parseSubstring()
		if err != nil {
			return "", err
		}
		p.frags = append(p.frags, frag)
	}
	return p.enc.finish(p.frags), nil
}

// parseSubstring dispatches on whether the next byte opens a call.
func (p *parser) parseSubstring() (string, error) {
	if p.peek() == '$' {
		p.next() // eat
		return p.parseCall()
	}
	return p.parseLiteral(), nil
}

// parseCall parses identifier '(' args ')' and invokes the group's
// renderer. In lenient mode an unknown group or a failed lookup yields the
// space-joined arguments instead of an error.
func (p *parser) parseCall() (string, error) {
	name := p.parseIdentifier()
	if name == "" {
		return "", p.errorf(nil, "encoder call missing")
	}

	group, known := p.enc.renderers[name]
	if !known && p.strict {
		return "", p.errorf(ErrUnknownGroup, "encoder call %q not found", name)
	}

	if p.next() != '(' {
		return "", p.errorf(nil, "missing left parenthesis '('")
	}

	args, err := p.parseArgs()
	if err != nil {
		return "", err
	}

	if p.next() != ')' {
		return "", p.errorf(nil, "missing right parenthesis ')'")
	}

	// Unknown call in lenient mode: fall back to the raw arguments.
	if !known {
		return strings.Join(args, " "), nil
	}

	out, err := group.fn(name, args)
	if err == nil {
		return out, nil
	}
	if errors.Is(err, ErrBadArgument) {
		return "", p.errorf(err, "encoder %s(%s): %v", name, strings.Join(args, " "), err)
	}
	if p.strict {
		return "", p.errorf(err, "encoder %s(%s): %v", name, strings.Join(args, " "), err)
	}
	return strings.Join(args, " "), nil
}

// parseArgs collects comma-separated arguments up to (not including) the
// closing parenthesis. Empty arguments are dropped.
func (p *parser) parseArgs() ([]string, error) {
	var args []string
	for !p.eos {
		arg, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		if arg != "" {
			args = append(args, arg)
		}
		if p.peek() == ',' {
			p.next() // eat
		} else {
			break
		}
	}
	return args, nil
}

// parseArg reads one argument, resolving escapes and evaluating nested
// calls in place.
func (p *parser) parseArg() (string, error) {
	var b strings.Builder
	for !p.eos {
		c := p.next()
		switch c {
		case '\\':
			if esc := p.next(); esc != 0 {
				b.WriteByte(esc)
			}
		case '$':
			nested, err := p.parseCall()
			if err != nil {
				return "", err
			}
			b.WriteString(nested)
		case ',', ')':
			p.unget()
			return b.String(), nil
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// parseLiteral reads a run of characters up to the next unescaped '$'.
// A backslash takes the following byte literally.
func (p *parser) parseLiteral() string {
	var b strings.Builder
	for !p.eos {
		c := p.next()
		if c == '$' {
			p.unget()
			break
		}
		if c == '\\' {
			if c = p.next(); c == 0 {
				break
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// parseIdentifier reads a C-style identifier, possibly empty.
func (p *parser) parseIdentifier() string {
	var b strings.Builder
	first := true
	for !p.eos {
		c := p.next()
		if isIdentByte(c, first) {
			b.WriteByte(c)
			first = false
		} else {
			p.unget()
			break
		}
	}
	return b.String()
}

func isIdentByte(c byte, first bool) bool {
	switch {
	case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return !first
	default:
		return false
	}
}

// next consumes and returns the next byte, or 0 at end of source.
func (p *parser) next() byte {
	if p.eos {
		return 0
	}
	c := p.src[p.cursor]
	p.cursor++
	if p.cursor >= len(p.src) {
		p.eos = true
	}
	return c
}

// peek returns the next byte without consuming it, or 0 at end of source.
func (p *parser) peek() byte {
	if p.eos {
		return 0
	}
	return p.src[p.cursor]
}

// unget pushes back the last consumed byte. One byte of pushback is the
// only backtracking the grammar needs.
func (p *parser) unget() {
	if p.cursor > 0 {
		p.cursor--
		p.eos = false
	}
}

func (p *parser) errorf(cause error, format string, a ...any) error {
	return &ParseError{
		Msg:    fmt.Sprintf(format, a...),
		Source: p.src,
		Offset: p.cursor,
		Err:    cause,
	}
}
