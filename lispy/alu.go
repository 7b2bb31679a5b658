/*
Copyright (C) 2024  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package lispy

import "math"

// intOp and decOp implement one binary operator for both number types.
// intOp may report an error, e.g. division by zero.
type intOp func(a, b int64) (int64, Value, bool)
type decOp func(a, b float64) (float64, Value, bool)

var divisionByZero = Error(ErrDivZero, "Division by zero")

// arithmetic folds args from left to right. An integer operand is promoted
// to decimal as soon as the other side is a decimal.
func arithmetic(args []Value, iop intOp, dop decOp) Value {
	acc := toNumber(args[0])
	for _, arg := range args[1:] {
		b := toNumber(arg)
		if acc.kind == KindDecimal || b.kind == KindDecimal {
			r, err, ok := dop(ToDecimal(acc), ToDecimal(b))
			if !ok {
				return err
			}
			acc = Decimal(r)
		} else {
			r, err, ok := iop(acc.num, b.num)
			if !ok {
				return err
			}
			acc = Integer(r)
		}
	}
	return acc
}

// toNumber turns a Boolean into the Integer 0 or 1.
func toNumber(v Value) Value {
	if v.kind == KindBoolean {
		return Integer(v.num)
	}
	return v
}

// ipow raises base to a non-negative exponent by squaring; overflow wraps.
func ipow(base, exp int64) int64 {
	switch base {
	case 0:
		if exp == 0 {
			return 1
		}
		return 0
	case 1:
		return 1
	case -1:
		if exp%2 == 0 {
			return 1
		}
		return -1
	}
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

func compareNumbers(a, b Value) int {
	if a.kind == KindDecimal || b.kind == KindDecimal {
		x, y := ToDecimal(a), ToDecimal(b)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
	switch {
	case a.num < b.num:
		return -1
	case a.num > b.num:
		return 1
	}
	return 0
}

func declareArithmetic(name, desc string, iop intOp, dop decOp) {
	Declare(&Declaration{
		name, desc,
		1, many,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "operands, folded from left to right"},
		}, "number",
		func(in *Interpreter, env *Env, a []Value) Value {
			return arithmetic(a, iop, dop)
		},
	})
}

func declareComparison(name, desc string, test func(c int) bool) {
	Declare(&Declaration{
		name, desc,
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"a", "number", "left operand"},
			DeclarationParameter{"b", "number", "right operand"},
		}, "bool",
		func(in *Interpreter, env *Env, a []Value) Value {
			return Boolean(test(compareNumbers(toNumber(a[0]), toNumber(a[1]))))
		},
	})
}

// operand of && and ||: a q-expression is only evaluated when it is reached
func (in *Interpreter) logicOperand(name string, env *Env, i int, v Value) Value {
	if v.kind == KindQExpr {
		v = in.Eval(env, v.retag(KindSExpr))
		if v.kind == KindError {
			return v
		}
	}
	if !v.IsNumber() {
		return Errorf(ErrType, "Function '%s' passed incorrect type for argument %d. Got %s, Expected Number.", name, i, v.TypeName())
	}
	return v
}

func init_alu() {
	DeclareTitle("Arithmetic")

	declareArithmetic("+", "adds numbers",
		func(a, b int64) (int64, Value, bool) { return a + b, Value{}, true },
		func(a, b float64) (float64, Value, bool) { return a + b, Value{}, true })
	Declare(&Declaration{
		"-", "subtracts all further numbers from the first one; negates a single number",
		1, many,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "minuend followed by subtrahends"},
		}, "number",
		func(in *Interpreter, env *Env, a []Value) Value {
			if len(a) == 1 {
				n := toNumber(a[0])
				if n.kind == KindDecimal {
					return Decimal(-n.dec)
				}
				return Integer(-n.num)
			}
			return arithmetic(a,
				func(a, b int64) (int64, Value, bool) { return a - b, Value{}, true },
				func(a, b float64) (float64, Value, bool) { return a - b, Value{}, true })
		},
	})
	declareArithmetic("*", "multiplies numbers",
		func(a, b int64) (int64, Value, bool) { return a * b, Value{}, true },
		func(a, b float64) (float64, Value, bool) { return a * b, Value{}, true })
	declareArithmetic("/", "divides the first number by all further numbers; integer division truncates",
		func(a, b int64) (int64, Value, bool) {
			if b == 0 {
				return 0, divisionByZero, false
			}
			return a / b, Value{}, true
		},
		func(a, b float64) (float64, Value, bool) {
			if b == 0 {
				return 0, divisionByZero, false
			}
			return a / b, Value{}, true
		})
	declareArithmetic("%", "remainder of a division; decimals use the floating point remainder",
		func(a, b int64) (int64, Value, bool) {
			if b == 0 {
				return 0, divisionByZero, false
			}
			return a % b, Value{}, true
		},
		func(a, b float64) (float64, Value, bool) {
			if b == 0 {
				return 0, divisionByZero, false
			}
			return math.Mod(a, b), Value{}, true
		})
	Declare(&Declaration{
		"^", "raises a number to a power; integer powers with a non-negative exponent stay integers",
		1, many,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "base followed by exponents"},
		}, "number",
		func(in *Interpreter, env *Env, a []Value) Value {
			acc := toNumber(a[0])
			for _, arg := range a[1:] {
				b := toNumber(arg)
				if acc.kind == KindInteger && b.kind == KindInteger && b.num >= 0 {
					acc = Integer(ipow(acc.num, b.num))
				} else {
					acc = Decimal(math.Pow(ToDecimal(acc), ToDecimal(b)))
				}
			}
			return acc
		},
	})
	declareArithmetic("min", "smallest of the numbers",
		func(a, b int64) (int64, Value, bool) { return min(a, b), Value{}, true },
		func(a, b float64) (float64, Value, bool) { return math.Min(a, b), Value{}, true })
	declareArithmetic("max", "largest of the numbers",
		func(a, b int64) (int64, Value, bool) { return max(a, b), Value{}, true },
		func(a, b float64) (float64, Value, bool) { return math.Max(a, b), Value{}, true })

	DeclareTitle("Comparison")

	declareComparison("<", "tells if a is less than b", func(c int) bool { return c < 0 })
	declareComparison("<=", "tells if a is less than or equal to b", func(c int) bool { return c <= 0 })
	declareComparison(">", "tells if a is greater than b", func(c int) bool { return c > 0 })
	declareComparison(">=", "tells if a is greater than or equal to b", func(c int) bool { return c >= 0 })
	Declare(&Declaration{
		"==", "structural equality; integers and decimals are compared by value",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"a", "any", "left operand"},
			DeclarationParameter{"b", "any", "right operand"},
		}, "bool",
		func(in *Interpreter, env *Env, a []Value) Value {
			return Boolean(Equal(a[0], a[1]))
		},
	})
	Declare(&Declaration{
		"!=", "negation of ==",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"a", "any", "left operand"},
			DeclarationParameter{"b", "any", "right operand"},
		}, "bool",
		func(in *Interpreter, env *Env, a []Value) Value {
			return Boolean(!Equal(a[0], a[1]))
		},
	})

	DeclareTitle("Logic")

	Declare(&Declaration{
		"&&", "true if all operands are true. Stops at the first false operand; operands given as q-expressions are only evaluated when reached",
		1, many,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number|qexpr", "condition or quoted condition"},
		}, "bool",
		func(in *Interpreter, env *Env, a []Value) Value {
			for i, arg := range a {
				v := in.logicOperand("&&", env, i, arg)
				if v.kind == KindError {
					return v
				}
				if !Truthy(v) {
					return Boolean(false)
				}
			}
			return Boolean(true)
		},
	})
	Declare(&Declaration{
		"||", "true if any operand is true. Stops at the first true operand; operands given as q-expressions are only evaluated when reached",
		1, many,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number|qexpr", "condition or quoted condition"},
		}, "bool",
		func(in *Interpreter, env *Env, a []Value) Value {
			for i, arg := range a {
				v := in.logicOperand("||", env, i, arg)
				if v.kind == KindError {
					return v
				}
				if Truthy(v) {
					return Boolean(true)
				}
			}
			return Boolean(false)
		},
	})
	Declare(&Declaration{
		"!", "negates a condition",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "number", "condition"},
		}, "bool",
		func(in *Interpreter, env *Env, a []Value) Value {
			return Boolean(!Truthy(a[0]))
		},
	})
}
