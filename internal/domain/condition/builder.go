package condition

import "strings"

// Builder accumulates clause fragments into a condition string through
// interactive editing. Parts are joined with single spaces, so a finished
// builder always produces input that Validate accepts when the fragments
// came from the vocabulary.
type Builder struct {
	parts     []string
	className string
}

// NewBuilder creates a builder over the global vocabulary
func NewBuilder() *Builder {
	return &Builder{}
}

// NewBuilderForClass creates a builder that also offers the named class's
// overlay category
func NewBuilderForClass(className string) *Builder {
	return &Builder{className: className}
}

// AvailableCategories returns the categories this builder can draw from
func (b *Builder) AvailableCategories() []string {
	return CategoriesForClass(b.className)
}

// ConditionsForCategory returns the subcategory -> description map for a
// category offered by this builder
func (b *Builder) ConditionsForCategory(category string) map[string]string {
	if category == b.className || basicConditions[category] != nil {
		return ConditionsForCategory(category)
	}
	return nil
}

// AddClause appends a clause fragment. Operator and value are optional
// and only applied together.
func (b *Builder) AddClause(category, name, operator, value string) {
	clause := category + "." + name
	if operator != "" && value != "" {
		clause += " " + operator + " " + value
	}
	b.parts = append(b.parts, clause)
}

// AddOperator appends a logical operator (&& or ||) between clauses
func (b *Builder) AddOperator(operator string) {
	b.parts = append(b.parts, operator)
}

// AddNot marks the next clause as negated. It only applies at a clause
// position: at the start, or directly after a logical operator.
func (b *Builder) AddNot() {
	if len(b.parts) == 0 {
		b.parts = append(b.parts, "!")
		return
	}
	if last := b.parts[len(b.parts)-1]; last == "&&" || last == "||" {
		b.parts = append(b.parts, "!")
	}
}

// RemoveLast undoes the most recent addition
func (b *Builder) RemoveLast() {
	if len(b.parts) > 0 {
		b.parts = b.parts[:len(b.parts)-1]
	}
}

// Clear resets the builder
func (b *Builder) Clear() {
	b.parts = nil
}

// String returns the condition built so far
func (b *Builder) String() string {
	return strings.Join(b.parts, " ")
}

// Validate runs the full validator over the built condition
func (b *Builder) Validate() Result {
	validator := NewValidatorForClass(b.className)
	return validator.Validate(b.String())
}
