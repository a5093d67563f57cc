package dynamodbtest

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokOp
	tokLParen
	tokRParen
	tokComma
	tokEOF
)

type token struct {
	kind tokenKind
	text string
}

func tokenize(s string) ([]token, error) {
	var out []token
	for i := 0; i < len(s); {
		c := rune(s[i])
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '(':
			out = append(out, token{tokLParen, "("})
			i++
		case c == ')':
			out = append(out, token{tokRParen, ")"})
			i++
		case c == ',':
			out = append(out, token{tokComma, ","})
			i++
		case c == '=' || c == '+' || c == '-':
			out = append(out, token{tokOp, string(c)})
			i++
		case c == '<' || c == '>':
			op := string(c)
			if i+1 < len(s) && (s[i+1] == '=' || (c == '<' && s[i+1] == '>')) {
				op += string(s[i+1])
				i++
			}
			out = append(out, token{tokOp, op})
			i++
		case c == '#' || c == ':' || c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c):
			j := i + 1
			for j < len(s) && (s[j] == '_' || s[j] == '.' || unicode.IsLetter(rune(s[j])) || unicode.IsDigit(rune(s[j]))) {
				j++
			}
			out = append(out, token{tokIdent, s[i:j]})
			i = j
		default:
			return nil, fmt.Errorf("dynamodbtest: unexpected character %q in %q", c, s)
		}
	}
	return append(out, token{kind: tokEOF}), nil
}

type parser struct {
	toks   []token
	pos    int
	it     item
	names  map[string]string
	values map[string]types.AttributeValue
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind, text string) error {
	t := p.next()
	if t.kind != kind || (text != "" && t.text != text) {
		return fmt.Errorf("dynamodbtest: expected %q, got %q", text, t.text)
	}
	return nil
}

func (p *parser) keyword(word string) bool {
	t := p.peek()
	if t.kind == tokIdent && strings.EqualFold(t.text, word) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) attrName(ref string) string {
	if strings.HasPrefix(ref, "#") {
		return p.names[ref]
	}
	return ref
}

// operand resolves a path or placeholder; ok=false means the attribute is absent.
func (p *parser) operand() (types.AttributeValue, bool, error) {
	t := p.next()
	if t.kind != tokIdent {
		return nil, false, fmt.Errorf("dynamodbtest: expected operand, got %q", t.text)
	}
	if strings.HasPrefix(t.text, ":") {
		v, ok := p.values[t.text]
		if !ok {
			return nil, false, fmt.Errorf("dynamodbtest: missing value %s", t.text)
		}
		return v, true, nil
	}
	v, ok := p.it[p.attrName(t.text)]
	return v, ok, nil
}

func evalCondition(expr string, it item, names map[string]string, values map[string]types.AttributeValue) (bool, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return false, err
	}
	p := &parser{toks: toks, it: it, names: names, values: values}
	ok, err := p.or()
	if err != nil {
		return false, err
	}
	if p.peek().kind != tokEOF {
		return false, fmt.Errorf("dynamodbtest: trailing input in %q", expr)
	}
	return ok, nil
}

func (p *parser) or() (bool, error) {
	left, err := p.and()
	if err != nil {
		return false, err
	}
	for p.keyword("OR") {
		right, err := p.and()
		if err != nil {
			return false, err
		}
		left = left || right
	}
	return left, nil
}

func (p *parser) and() (bool, error) {
	left, err := p.not()
	if err != nil {
		return false, err
	}
	for p.keyword("AND") {
		right, err := p.not()
		if err != nil {
			return false, err
		}
		left = left && right
	}
	return left, nil
}

func (p *parser) not() (bool, error) {
	if p.keyword("NOT") {
		v, err := p.not()
		return !v, err
	}
	return p.primary()
}

func (p *parser) primary() (bool, error) {
	if p.peek().kind == tokLParen {
		p.next()
		v, err := p.or()
		if err != nil {
			return false, err
		}
		return v, p.expect(tokRParen, ")")
	}

	t := p.peek()
	if t.kind == tokIdent && p.toks[p.pos+1].kind == tokLParen {
		return p.function()
	}

	left, leftOK, err := p.operand()
	if err != nil {
		return false, err
	}
	op := p.next()
	if op.kind != tokOp {
		return false, fmt.Errorf("dynamodbtest: expected comparator, got %q", op.text)
	}
	right, rightOK, err := p.operand()
	if err != nil {
		return false, err
	}
	if !leftOK || !rightOK {
		return op.text == "<>" && leftOK != rightOK, nil
	}
	return compare(left, op.text, right)
}

func (p *parser) function() (bool, error) {
	name := strings.ToLower(p.next().text)
	if err := p.expect(tokLParen, "("); err != nil {
		return false, err
	}
	var result bool
	switch name {
	case "attribute_exists", "attribute_not_exists":
		ref := p.next()
		_, ok := p.it[p.attrName(ref.text)]
		result = ok == (name == "attribute_exists")
	case "begins_with":
		v, ok, err := p.operand()
		if err != nil {
			return false, err
		}
		if err := p.expect(tokComma, ","); err != nil {
			return false, err
		}
		prefix, _, err := p.operand()
		if err != nil {
			return false, err
		}
		s, isStr := v.(*types.AttributeValueMemberS)
		ps, prefixStr := prefix.(*types.AttributeValueMemberS)
		result = ok && isStr && prefixStr && strings.HasPrefix(s.Value, ps.Value)
	default:
		return false, fmt.Errorf("dynamodbtest: unsupported function %s", name)
	}
	return result, p.expect(tokRParen, ")")
}

func compare(a types.AttributeValue, op string, b types.AttributeValue) (bool, error) {
	var cmp int
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		bv, ok := b.(*types.AttributeValueMemberS)
		if !ok {
			return op == "<>", nil
		}
		cmp = strings.Compare(av.Value, bv.Value)
	case *types.AttributeValueMemberN:
		bv, ok := b.(*types.AttributeValueMemberN)
		if !ok {
			return op == "<>", nil
		}
		x, err1 := strconv.ParseFloat(av.Value, 64)
		y, err2 := strconv.ParseFloat(bv.Value, 64)
		if err1 != nil || err2 != nil {
			return false, fmt.Errorf("dynamodbtest: bad number %q/%q", av.Value, bv.Value)
		}
		switch {
		case x < y:
			cmp = -1
		case x > y:
			cmp = 1
		}
	default:
		eq := reflect.DeepEqual(a, b)
		switch op {
		case "=":
			return eq, nil
		case "<>":
			return !eq, nil
		}
		return false, fmt.Errorf("dynamodbtest: cannot order %T", a)
	}

	switch op {
	case "=":
		return cmp == 0, nil
	case "<>":
		return cmp != 0, nil
	case "<":
		return cmp < 0, nil
	case "<=":
		return cmp <= 0, nil
	case ">":
		return cmp > 0, nil
	case ">=":
		return cmp >= 0, nil
	}
	return false, fmt.Errorf("dynamodbtest: unsupported comparator %s", op)
}

// applyUpdate mutates it according to an update expression.
func applyUpdate(expr string, it item, names map[string]string, values map[string]types.AttributeValue) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	toks, err := tokenize(expr)
	if err != nil {
		return err
	}
	p := &parser{toks: toks, it: it, names: names, values: values}

	clause := ""
	for p.peek().kind != tokEOF {
		t := p.peek()
		if t.kind == tokIdent {
			switch strings.ToUpper(t.text) {
			case "SET", "ADD", "REMOVE":
				clause = strings.ToUpper(t.text)
				p.next()
				continue
			}
		}
		if t.kind == tokComma {
			p.next()
			continue
		}

		target := p.attrName(p.next().text)
		switch clause {
		case "SET":
			if err := p.expect(tokOp, "="); err != nil {
				return err
			}
			v, err := p.setValue()
			if err != nil {
				return err
			}
			it[target] = v
		case "ADD":
			delta, _, err := p.operand()
			if err != nil {
				return err
			}
			cur, ok := it[target]
			if !ok {
				it[target] = delta
				continue
			}
			sum, err := arith(cur, "+", delta)
			if err != nil {
				return err
			}
			it[target] = sum
		case "REMOVE":
			delete(it, target)
		default:
			return fmt.Errorf("dynamodbtest: update expression %q has no clause", expr)
		}
	}
	return nil
}

func (p *parser) setValue() (types.AttributeValue, error) {
	if t := p.peek(); t.kind == tokIdent && strings.EqualFold(t.text, "if_not_exists") {
		p.next()
		if err := p.expect(tokLParen, "("); err != nil {
			return nil, err
		}
		existing, ok, err := p.operand()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokComma, ","); err != nil {
			return nil, err
		}
		fallback, _, err := p.operand()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen, ")"); err != nil {
			return nil, err
		}
		if ok {
			return existing, nil
		}
		return fallback, nil
	}

	left, _, err := p.operand()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind == tokOp && (t.text == "+" || t.text == "-") {
		p.next()
		right, _, err := p.operand()
		if err != nil {
			return nil, err
		}
		return arith(left, t.text, right)
	}
	return left, nil
}

func arith(a types.AttributeValue, op string, b types.AttributeValue) (types.AttributeValue, error) {
	an, ok1 := a.(*types.AttributeValueMemberN)
	bn, ok2 := b.(*types.AttributeValueMemberN)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("dynamodbtest: arithmetic on non-number")
	}
	x, err1 := strconv.ParseInt(an.Value, 10, 64)
	y, err2 := strconv.ParseInt(bn.Value, 10, 64)
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("dynamodbtest: only integer arithmetic is supported")
	}
	if op == "-" {
		y = -y
	}
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(x+y, 10)}, nil
}
