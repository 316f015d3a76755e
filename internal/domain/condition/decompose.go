package condition

import (
	"regexp"
	"strings"
)

// Clause is one logical component of a condition, as produced by
// Decompose. JoinOperator is the logical operator that joins this clause
// to the next one, empty on the last clause.
type Clause struct {
	Negated      bool
	Path         string
	Operator     string
	Value        string
	JoinOperator string
}

var (
	logicalSplitRe = regexp.MustCompile(`\s*(?:&&|\|\|)\s*`)
	logicalFindRe  = regexp.MustCompile(`&&|\|\|`)
	comparisonRe   = regexp.MustCompile(`^([a-zA-Z_.]+)\s*([<>=!]+)\s*(\d+)$`)
)

// Decompose splits a condition string into its clauses for display and
// editing. It does not re-derive validity: malformed clauses come back as
// bare paths with empty operator and value.
func Decompose(text string) []Clause {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	parts := logicalSplitRe.Split(text, -1)
	joins := logicalFindRe.FindAllString(text, -1)

	clauses := make([]Clause, 0, len(parts))
	for i, part := range parts {
		var clause Clause

		if strings.HasPrefix(part, "!") {
			clause.Negated = true
			part = strings.TrimSpace(part[1:])
		}

		if m := comparisonRe.FindStringSubmatch(part); m != nil {
			clause.Path = m[1]
			clause.Operator = m[2]
			clause.Value = m[3]
		} else {
			clause.Path = part
		}

		if i < len(joins) {
			clause.JoinOperator = joins[i]
		}

		clauses = append(clauses, clause)
	}
	return clauses
}
