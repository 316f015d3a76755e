// Package condition implements the trigger-condition expression engine:
// validation against the sensor vocabulary, decomposition into clauses,
// and an interactive builder.
//
// The grammar is intentionally shallow. Clauses join left to right with
// && and ||, a clause is an optionally negated sensor path or a
// `path <op> number` comparison, and the target engine consumes the
// string verbatim, so validation is strictly syntactic and
// vocabulary-based.
package condition

import (
	"fmt"
	"strings"
)

// Reason categorizes why a condition failed validation
type Reason string

const (
	// ReasonNone means the condition is valid
	ReasonNone Reason = ""

	// ReasonSyntax indicates illegal characters or spacing
	ReasonSyntax Reason = "syntax"

	// ReasonOperator indicates misused or malformed operators
	ReasonOperator Reason = "operator"

	// ReasonParentheses indicates unbalanced parentheses
	ReasonParentheses Reason = "parentheses"

	// ReasonComponent indicates a clause path outside the vocabulary
	ReasonComponent Reason = "component"
)

// Result is the outcome of validating a condition string
type Result struct {
	Valid   bool
	Reason  Reason
	Message string
}

func invalid(reason Reason, message string) Result {
	return Result{Valid: false, Reason: reason, Message: message}
}

// comparisonOperators and logicalOperators are ordered longest-first so
// the scanner munches `>=` before `>`.
var comparisonOperators = []string{">=", "<=", "==", "!=", ">", "<"}

var logicalOperators = []string{"&&", "||"}

// invalidOperatorRuns are rejected outright before spacing checks run
var invalidOperatorRuns = []string{"&&&&", "||||", "!!", "<<", ">>", "==>", "<=="}

const validCharacters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789._()!&|<>= "

// Validator validates condition strings against the vocabulary,
// optionally extended with one class's overlay categories.
type Validator struct {
	className string
}

// NewValidator creates a validator over the global vocabulary only
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorForClass creates a validator that also accepts the named
// class's overlay category (e.g. Druid.solar)
func NewValidatorForClass(className string) *Validator {
	return &Validator{className: className}
}

// Validate checks a condition string. The empty string and the literal
// "true" are trivially valid. It never panics; unexpected scanner states
// are reported as a generic syntax failure.
func (v *Validator) Validate(text string) (result Result) {
	text = strings.TrimSpace(text)
	if text == "" || text == "true" {
		return Result{Valid: true}
	}

	defer func() {
		if r := recover(); r != nil {
			result = invalid(ReasonSyntax, fmt.Sprintf("validation error: %v", r))
		}
	}()

	if res := checkBasicSyntax(text); !res.Valid {
		return res
	}
	if res := checkOperators(text); !res.Valid {
		return res
	}
	if res := checkParentheses(text); !res.Valid {
		return res
	}
	return v.checkComponents(text)
}

// checkBasicSyntax rejects characters outside the condition alphabet and
// doubled spaces
func checkBasicSyntax(text string) Result {
	if strings.Contains(text, "  ") {
		return invalid(ReasonSyntax, "invalid condition syntax: doubled space")
	}

	for _, r := range text {
		if !strings.ContainsRune(validCharacters, r) {
			return invalid(ReasonSyntax, fmt.Sprintf("invalid condition syntax: illegal character %q", r))
		}
	}
	return Result{Valid: true}
}

// checkOperators walks the string once and verifies every operator token
// is properly spaced. Comparison and logical operators need a single
// space before them and a space (or end of string, for the component
// check to flag as a dangling clause) after. A negation needs a clause
// position before it and a clause after.
func checkOperators(text string) Result {
	for _, run := range invalidOperatorRuns {
		if strings.Contains(text, run) {
			return invalid(ReasonOperator, fmt.Sprintf("invalid operator usage: %q", run))
		}
	}

	for i := 0; i < len(text); {
		op := operatorAt(text, i)
		if op == "" {
			i++
			continue
		}

		before := byte(' ')
		if i > 0 {
			before = text[i-1]
		}
		afterIdx := i + len(op)
		after := byte(' ')
		atEnd := afterIdx >= len(text)
		if !atEnd {
			after = text[afterIdx]
		}

		switch op {
		case "!":
			// Negation binds to the next clause: it may open the string,
			// follow a space or parenthesis, and must be followed by a
			// path, a group, or a single space then its clause.
			if i > 0 && before != ' ' && before != '(' {
				return invalid(ReasonOperator, "invalid operator usage: misplaced negation")
			}
			if atEnd || !(after == ' ' || after == '(' || isPathByte(after)) {
				return invalid(ReasonOperator, "invalid operator usage: dangling negation")
			}
		case "=":
			return invalid(ReasonOperator, "invalid operator usage: single =")
		default:
			if before != ' ' {
				return invalid(ReasonOperator, fmt.Sprintf("invalid operator usage: missing space before %q", op))
			}
			if !atEnd && after != ' ' {
				return invalid(ReasonOperator, fmt.Sprintf("invalid operator usage: missing space after %q", op))
			}
		}

		i += len(op)
	}
	return Result{Valid: true}
}

// operatorAt returns the operator token starting at i, longest match
// first, or the empty string
func operatorAt(text string, i int) string {
	rest := text[i:]
	for _, op := range logicalOperators {
		if strings.HasPrefix(rest, op) {
			return op
		}
	}
	for _, op := range comparisonOperators {
		if strings.HasPrefix(rest, op) {
			return op
		}
	}
	// Lone = and bare ! are single-byte cases; != and comparison prefixes
	// were already munched above.
	if rest[0] == '!' {
		return "!"
	}
	if rest[0] == '=' {
		return "="
	}
	return ""
}

func isPathByte(b byte) bool {
	return b == '.' || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// checkParentheses is a stack-based matcher
func checkParentheses(text string) Result {
	depth := 0
	for _, r := range text {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return invalid(ReasonParentheses, "mismatched parentheses: unmatched )")
			}
		}
	}
	if depth != 0 {
		return invalid(ReasonParentheses, "mismatched parentheses: unclosed (")
	}
	return Result{Valid: true}
}

// checkComponents splits the condition into clauses and verifies each
// clause's category.subcategory path exists in the vocabulary
func (v *Validator) checkComponents(text string) Result {
	for _, clause := range splitClauses(text) {
		path := clausePath(clause)

		parts := strings.Split(path, ".")
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return invalid(ReasonComponent, fmt.Sprintf("invalid condition component: %q", clause))
		}

		category, rest := parts[0], strings.Join(parts[1:], ".")
		if !v.knownComponent(category, parts[1], rest) {
			return invalid(ReasonComponent, fmt.Sprintf("unknown condition: %q", path))
		}
	}
	return Result{Valid: true}
}

// knownComponent accepts either the full dotted subcategory (buff.count)
// or its first segment, which covers qualified sensors like
// player.health.actual where only "health" is a vocabulary key.
func (v *Validator) knownComponent(category, first, full string) bool {
	if subs, ok := basicConditions[category]; ok {
		_, okFull := subs[full]
		_, okFirst := subs[first]
		return okFull || okFirst
	}
	if category == v.className {
		if subs, ok := classConditions[category]; ok {
			_, okFull := subs[full]
			_, okFirst := subs[first]
			return okFull || okFirst
		}
	}
	return false
}

// splitClauses cuts the condition on logical operators. Operator spacing
// has already been validated, so a simple scan suffices; a trailing
// operator produces an empty clause for the component check to reject.
func splitClauses(text string) []string {
	var clauses []string
	start := 0
	for i := 0; i < len(text)-1; i++ {
		two := text[i : i+2]
		if two == "&&" || two == "||" {
			clauses = append(clauses, strings.TrimSpace(text[start:i]))
			i++
			start = i + 1
		}
	}
	clauses = append(clauses, strings.TrimSpace(text[start:]))
	return clauses
}

// clausePath strips negation, parentheses, and any comparison suffix
// from a clause, leaving the bare sensor path
func clausePath(clause string) string {
	clause = strings.TrimPrefix(clause, "!")
	clause = strings.TrimSpace(clause)
	clause = strings.Trim(clause, "()")

	for _, op := range comparisonOperators {
		if idx := strings.Index(clause, op); idx >= 0 {
			clause = clause[:idx]
			break
		}
	}
	return strings.TrimSpace(clause)
}
