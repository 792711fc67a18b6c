package compute

import "fmt"

// Canonical function names. These are the interoperability contract with the
// engine and must not change.
const (
	FuncAbs             = "abs"
	FuncAbsChecked      = "abs_checked"
	FuncNegate          = "negate"
	FuncNegateChecked   = "negate_checked"
	FuncAdd             = "add"
	FuncAddChecked      = "add_checked"
	FuncSubtract        = "subtract"
	FuncSubtractChecked = "subtract_checked"
	FuncMultiply        = "multiply"
	FuncMultiplyChecked = "multiply_checked"
	FuncDivide          = "divide"
	FuncDivideChecked   = "divide_checked"
	FuncPower           = "power"
	FuncPowerChecked    = "power_checked"

	FuncElementWiseMax = "element_wise_max"
	FuncElementWiseMin = "element_wise_min"

	FuncIsIn    = "is_in"
	FuncIndexIn = "index_in"

	FuncInvert       = "invert"
	FuncAnd          = "and"
	FuncAndKleene    = "and_kleene"
	FuncOr           = "or"
	FuncOrKleene     = "or_kleene"
	FuncXor          = "xor"
	FuncAndNot       = "and_not"
	FuncAndNotKleene = "and_not_kleene"

	FuncEqual        = "equal"
	FuncNotEqual     = "not_equal"
	FuncGreater      = "greater"
	FuncGreaterEqual = "greater_equal"
	FuncLess         = "less"
	FuncLessEqual    = "less_equal"

	FuncIsValid  = "is_valid"
	FuncIsNull   = "is_null"
	FuncIsNan    = "is_nan"
	FuncFillNull = "fill_null"
	FuncIfElse   = "if_else"

	FuncYear        = "year"
	FuncMonth       = "month"
	FuncDay         = "day"
	FuncDayOfWeek   = "day_of_week"
	FuncDayOfYear   = "day_of_year"
	FuncISOYear     = "iso_year"
	FuncISOWeek     = "iso_week"
	FuncISOCalendar = "iso_calendar"
	FuncQuarter     = "quarter"
	FuncHour        = "hour"
	FuncMinute      = "minute"
	FuncSecond      = "second"
	FuncMillisecond = "millisecond"
	FuncMicrosecond = "microsecond"
	FuncNanosecond  = "nanosecond"
	FuncSubsecond   = "subsecond"
)

// compareFunctionNames is indexed by CompareOperator.
var compareFunctionNames = [...]string{
	Equal:        FuncEqual,
	NotEqual:     FuncNotEqual,
	Greater:      FuncGreater,
	GreaterEqual: FuncGreaterEqual,
	Less:         FuncLess,
	LessEqual:    FuncLessEqual,
}

// Fails to compile unless there is exactly one entry per operator.
var _ = [1]struct{}{}[len(compareFunctionNames)-int(numCompareOperators)]

// CompareFunctionName returns the canonical function name for op.
// It panics if op is outside the enumeration.
func CompareFunctionName(op CompareOperator) string {
	if !op.valid() || compareFunctionNames[op] == "" {
		panic(fmt.Sprintf("compute: unmapped comparison operator %d", int(op)))
	}
	return compareFunctionNames[op]
}

// ParseCompareOperator returns the operator whose canonical function name is
// name.
func ParseCompareOperator(name string) (CompareOperator, bool) {
	for op, n := range compareFunctionNames {
		if n == name {
			return CompareOperator(op), true
		}
	}
	return 0, false
}

// ArithmeticFunction pairs the unchecked and checked names of an arithmetic
// function.
type ArithmeticFunction struct {
	Name        string
	CheckedName string
}

// Select returns CheckedName when checkOverflow is set and Name otherwise.
func (f ArithmeticFunction) Select(checkOverflow bool) string {
	if checkOverflow {
		return f.CheckedName
	}
	return f.Name
}

// Arithmetic functions.
var (
	AbsoluteValueFunction = ArithmeticFunction{FuncAbs, FuncAbsChecked}
	NegateFunction        = ArithmeticFunction{FuncNegate, FuncNegateChecked}
	AddFunction           = ArithmeticFunction{FuncAdd, FuncAddChecked}
	SubtractFunction      = ArithmeticFunction{FuncSubtract, FuncSubtractChecked}
	MultiplyFunction      = ArithmeticFunction{FuncMultiply, FuncMultiplyChecked}
	DivideFunction        = ArithmeticFunction{FuncDivide, FuncDivideChecked}
	PowerFunction         = ArithmeticFunction{FuncPower, FuncPowerChecked}
)
