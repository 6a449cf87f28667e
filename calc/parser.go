package calc

import (
	"strings"
	"unicode"

	"github.com/dhamidi/parsekit/parser"
)

// Evaluate parses text and evaluates the resulting expression.
func Evaluate(text string) (float64, error) {
	expr, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return Eval(expr), nil
}

// Parse strips all whitespace from text and parses what remains into an
// expression tree. Because of the strip the grammar is whitespace-unaware:
// " - - 1" and "--1" are the same input.
func Parse(text string) (Expr, error) {
	return parser.Parse(parser.Parser[Expr](expression), stripSpace(text))
}

func stripSpace(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

// expression, term and factor are the recursive entry points of the grammar;
// the package-level grammar values below refer to them by name.
func expression(in parser.Input) parser.Result[Expr] { return exprGrammar(in) }
func term(in parser.Input) parser.Result[Expr]       { return termGrammar(in) }
func factor(in parser.Input) parser.Result[Expr]     { return factorGrammar(in) }

func opLit(text string, op Op) parser.Parser[Op] {
	return parser.Map(parser.Lit(text), func(string) Op { return op })
}

// chain parses operand (op operand)* and folds the list to the left, giving
// left associativity.
func chain(operand parser.Parser[Expr], op parser.Parser[Op]) parser.Parser[Expr] {
	return parser.Map(
		parser.Then(operand, parser.Many(parser.Then(op, operand))),
		func(v parser.Pair[Expr, []parser.Pair[Op, Expr]]) Expr {
			e := v.First
			for _, t := range v.Second {
				e = BinOp{Op: t.First, Left: e, Right: t.Second}
			}
			return e
		},
	)
}

// negate encodes unary minus as multiplication by -1.
func negate(e Expr) Expr {
	return BinOp{Op: OpMul, Left: e, Right: Number(-1)}
}

var (
	exprGrammar = chain(parser.Parser[Expr](term), parser.Or(opLit("+", OpAdd), opLit("-", OpSub)))
	termGrammar = chain(parser.Parser[Expr](factor), parser.Or(opLit("*", OpMul), opLit("/", OpDiv)))

	numberExpr = parser.Map(parser.Number, func(f float64) Expr { return Number(f) })

	parenExpr = parser.Between(
		parser.Lit("("),
		parser.Expect(parser.Lit(")"), "expected ')'"),
		parser.Parser[Expr](expression),
	)
)

// factorGrammar closes the expr -> term -> factor -> expr loop, so it cannot
// carry an initializer: the compiler would report an initialization cycle.
var factorGrammar parser.Parser[Expr]

func init() {
	// The minus-prefixed alternatives are tried before the bare recursion,
	// wrapped in Attempt so a consumed '-' does not lock out the next branch.
	factorGrammar = parser.Or(
		numberExpr,
		parenExpr,
		parser.Attempt(parser.Map(parser.SkipThen(parser.Lit("-"), numberExpr), negate)),
		parser.Attempt(parser.Map(parser.SkipThen(parser.Lit("-"), parenExpr), negate)),
		parser.Map(parser.SkipThen(parser.Lit("-"), parser.Parser[Expr](expression)), negate),
	)
}
