package compute

import "fmt"

// Family groups related functions.
type Family string

// Function families.
const (
	FamilyArithmetic Family = "arithmetic"
	FamilyAggregate  Family = "aggregate"
	FamilySetLookup  Family = "set_lookup"
	FamilyBoolean    Family = "boolean"
	FamilyComparison Family = "comparison"
	FamilyValidity   Family = "validity"
	FamilyTemporal   Family = "temporal"
)

// Arity is the number of arguments a function accepts.
type Arity struct {
	NumArgs int
	VarArgs bool
}

// Common arities.
var (
	Unary   = Arity{NumArgs: 1}
	Binary  = Arity{NumArgs: 2}
	Ternary = Arity{NumArgs: 3}
)

// VarArgs returns an arity accepting at least minArgs arguments.
func VarArgs(minArgs int) Arity {
	return Arity{NumArgs: minArgs, VarArgs: true}
}

// Accepts reports whether n arguments satisfy the arity.
func (a Arity) Accepts(n int) bool {
	if a.VarArgs {
		return n >= a.NumArgs
	}
	return n == a.NumArgs
}

// String renders the arity as "N" or "N+".
func (a Arity) String() string {
	if a.VarArgs {
		return fmt.Sprintf("%d+", a.NumArgs)
	}
	return fmt.Sprintf("%d", a.NumArgs)
}

// FunctionDoc describes one logical operation exposed by the facade.
type FunctionDoc struct {
	// Name is the canonical (unchecked) function name.
	Name string

	// CheckedName is the overflow-checking variant, or empty if the
	// function has none.
	CheckedName string

	Family  Family
	Arity   Arity
	Summary string

	// OptionsType is the TypeName of the options the facade forwards, or
	// empty if the function is invoked without options.
	OptionsType string
}

// Names returns Name followed by CheckedName when present.
func (d FunctionDoc) Names() []string {
	if d.CheckedName == "" {
		return []string{d.Name}
	}
	return []string{d.Name, d.CheckedName}
}

func arithmeticDoc(f ArithmeticFunction, arity Arity, summary string) FunctionDoc {
	return FunctionDoc{
		Name:        f.Name,
		CheckedName: f.CheckedName,
		Family:      FamilyArithmetic,
		Arity:       arity,
		Summary:     summary,
	}
}

func plainDoc(name string, family Family, arity Arity, summary string) FunctionDoc {
	return FunctionDoc{Name: name, Family: family, Arity: arity, Summary: summary}
}

var functionDocs = []FunctionDoc{
	arithmeticDoc(AbsoluteValueFunction, Unary, "Absolute value of each element"),
	arithmeticDoc(NegateFunction, Unary, "Negate each element"),
	arithmeticDoc(AddFunction, Binary, "Add the arguments element-wise"),
	arithmeticDoc(SubtractFunction, Binary, "Subtract the second argument from the first element-wise"),
	arithmeticDoc(MultiplyFunction, Binary, "Multiply the arguments element-wise"),
	arithmeticDoc(DivideFunction, Binary, "Divide the first argument by the second element-wise"),
	arithmeticDoc(PowerFunction, Binary, "Raise the first argument to the power of the second element-wise"),

	{Name: FuncElementWiseMax, Family: FamilyAggregate, Arity: VarArgs(1), Summary: "Element-wise maximum across the arguments", OptionsType: ElementWiseAggregateOptions{}.TypeName()},
	{Name: FuncElementWiseMin, Family: FamilyAggregate, Arity: VarArgs(1), Summary: "Element-wise minimum across the arguments", OptionsType: ElementWiseAggregateOptions{}.TypeName()},

	{Name: FuncIsIn, Family: FamilySetLookup, Arity: Unary, Summary: "Whether each element is contained in the value set", OptionsType: SetLookupOptions{}.TypeName()},
	{Name: FuncIndexIn, Family: FamilySetLookup, Arity: Unary, Summary: "Index of each element in the value set", OptionsType: SetLookupOptions{}.TypeName()},

	plainDoc(FuncInvert, FamilyBoolean, Unary, "Boolean negation"),
	plainDoc(FuncAnd, FamilyBoolean, Binary, "Boolean AND, null if either side is null"),
	plainDoc(FuncAndKleene, FamilyBoolean, Binary, "Boolean AND with Kleene logic"),
	plainDoc(FuncOr, FamilyBoolean, Binary, "Boolean OR, null if either side is null"),
	plainDoc(FuncOrKleene, FamilyBoolean, Binary, "Boolean OR with Kleene logic"),
	plainDoc(FuncXor, FamilyBoolean, Binary, "Boolean XOR"),
	plainDoc(FuncAndNot, FamilyBoolean, Binary, "Boolean AND of the first argument and the negated second"),
	plainDoc(FuncAndNotKleene, FamilyBoolean, Binary, "Boolean AND NOT with Kleene logic"),

	{Name: FuncEqual, Family: FamilyComparison, Arity: Binary, Summary: "Compare for equality", OptionsType: CompareOptions{}.TypeName()},
	{Name: FuncNotEqual, Family: FamilyComparison, Arity: Binary, Summary: "Compare for inequality", OptionsType: CompareOptions{}.TypeName()},
	{Name: FuncGreater, Family: FamilyComparison, Arity: Binary, Summary: "Compare for strictly greater", OptionsType: CompareOptions{}.TypeName()},
	{Name: FuncGreaterEqual, Family: FamilyComparison, Arity: Binary, Summary: "Compare for greater or equal", OptionsType: CompareOptions{}.TypeName()},
	{Name: FuncLess, Family: FamilyComparison, Arity: Binary, Summary: "Compare for strictly less", OptionsType: CompareOptions{}.TypeName()},
	{Name: FuncLessEqual, Family: FamilyComparison, Arity: Binary, Summary: "Compare for less or equal", OptionsType: CompareOptions{}.TypeName()},

	plainDoc(FuncIsValid, FamilyValidity, Unary, "Whether each element is non-null"),
	plainDoc(FuncIsNull, FamilyValidity, Unary, "Whether each element is null"),
	plainDoc(FuncIsNan, FamilyValidity, Unary, "Whether each floating point element is NaN"),
	plainDoc(FuncFillNull, FamilyValidity, Binary, "Replace nulls with a fill value"),
	plainDoc(FuncIfElse, FamilyValidity, Ternary, "Choose between two arguments by a boolean condition"),

	plainDoc(FuncYear, FamilyTemporal, Unary, "Extract the year"),
	plainDoc(FuncMonth, FamilyTemporal, Unary, "Extract the month"),
	plainDoc(FuncDay, FamilyTemporal, Unary, "Extract the day of the month"),
	plainDoc(FuncDayOfWeek, FamilyTemporal, Unary, "Extract the day of the week"),
	plainDoc(FuncDayOfYear, FamilyTemporal, Unary, "Extract the day of the year"),
	plainDoc(FuncISOYear, FamilyTemporal, Unary, "Extract the ISO 8601 year"),
	plainDoc(FuncISOWeek, FamilyTemporal, Unary, "Extract the ISO 8601 week number"),
	plainDoc(FuncISOCalendar, FamilyTemporal, Unary, "Extract the ISO 8601 year, week and weekday"),
	plainDoc(FuncQuarter, FamilyTemporal, Unary, "Extract the quarter of the year"),
	plainDoc(FuncHour, FamilyTemporal, Unary, "Extract the hour"),
	plainDoc(FuncMinute, FamilyTemporal, Unary, "Extract the minute"),
	plainDoc(FuncSecond, FamilyTemporal, Unary, "Extract the second"),
	plainDoc(FuncMillisecond, FamilyTemporal, Unary, "Extract the millisecond"),
	plainDoc(FuncMicrosecond, FamilyTemporal, Unary, "Extract the microsecond"),
	plainDoc(FuncNanosecond, FamilyTemporal, Unary, "Extract the nanosecond"),
	plainDoc(FuncSubsecond, FamilyTemporal, Unary, "Extract the fraction of a second"),
}

// Functions returns the documentation of every operation exposed by the
// facade, in a stable order. The returned slice is a copy.
func Functions() []FunctionDoc {
	out := make([]FunctionDoc, len(functionDocs))
	copy(out, functionDocs)
	return out
}

// LookupFunction returns the documentation for a canonical name, checked
// variants included.
func LookupFunction(name string) (FunctionDoc, bool) {
	for _, d := range functionDocs {
		if d.Name == name || (d.CheckedName != "" && d.CheckedName == name) {
			return d, true
		}
	}
	return FunctionDoc{}, false
}
