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

import "testing"

func TestArithmetic(t *testing.T) {
	in, _ := newTestInterpreter(t, false)
	for code, want := range map[string]string{
		"(+ 1 2 3)":    "6",
		"(- 5)":        "-5",
		"(- 2.5)":      "-2.5",
		"(- 10 1 2)":   "7",
		"(* 2 3 4)":    "24",
		"(/ 7 2)":      "3",
		"(/ 7.0 2)":    "3.5",
		"(% 7 3)":      "1",
		"(% 7.5 2)":    "1.5",
		"(^ 2 10)":     "1024",
		"(^ 2 -1)":     "0.5",
		"(^ 2.0 2)":    "4.0",
		"(^ 3 5)":      "243",
		"(^ 0 0)":      "1",
		"(^ 0 7)":      "0",
		"(^ -2 3)":     "-8",
		"(^ 1 9000000000000)":  "1",
		"(^ -1 9000000000001)": "-1",
		"(^ -1 9000000000000)": "1",
		"(min 3 1 2)":  "1",
		"(max 1 2.5)":  "2.5",
		"(+ true 1)":   "2",
		"(* false 5)":  "0",
		"(+ 0.5 0.25)": "0.75",
	} {
		expect(t, in, want, code)
	}
}

func TestArithmeticErrors(t *testing.T) {
	in, _ := newTestInterpreter(t, false)
	expectError(t, in, ErrDivZero, "Division by zero", "(/ 1 0)")
	expectError(t, in, ErrDivZero, "Division by zero", "(/ 1.0 0)")
	expectError(t, in, ErrDivZero, "Division by zero", "(% 5 0)")
	expectError(t, in, ErrType, "Function '+' passed incorrect type for argument 1. Got String, Expected Number.", `(+ 1 "a")`)
	err, ok := LookupDeclaration("+").check(nil)
	if ok || err.Message() != "Function '+' passed incorrect number of arguments. Got 0, Expected at least 1." {
		t.Fatalf("unexpected arity check result %s", err)
	}
}

func TestComparison(t *testing.T) {
	in, _ := newTestInterpreter(t, false)
	for code, want := range map[string]string{
		"(< 1 2)":           "true",
		"(> 1 2)":           "false",
		"(<= 2 2)":          "true",
		"(>= 2 2.0)":        "true",
		"(< 1.5 1)":         "false",
		"(== 1 1.0)":        "true",
		"(== {1 2} {1 2})":  "true",
		"(== {1 2} {1 3})":  "false",
		"(!= 1 2)":          "true",
		"(== true 1)":       "true",
		`(== "a" "a")`:      "true",
		"(== + +)":          "true",
		"(== + -)":          "false",
		`(== (\ {x} {x}) (\ {x} {x}))`: "true",
		`(== + (\ {x} {x}))`:           "false",
	} {
		expect(t, in, want, code)
	}
	expectError(t, in, ErrType, "Got String", `(< 1 "x")`)
}

func TestLogic(t *testing.T) {
	in, _ := newTestInterpreter(t, false)
	for code, want := range map[string]string{
		"(&& 1 0)":                     "false",
		"(&& 1 2.5 true)":              "true",
		"(|| 0 1)":                     "true",
		"(|| 0 false 0.0)":             "false",
		"(! 0)":                        "true",
		"(! 1.5)":                      "false",
		`(&& false {error "boom"})`:    "false",
		`(|| true {error "boom"})`:     "true",
		"(&& true {(== 1 1)})":         "true",
		"(|| false {(== 1 2)} {1})":    "true",
	} {
		expect(t, in, want, code)
	}
	expectError(t, in, ErrUser, "boom", `(&& true {error "boom"})`)
	expectError(t, in, ErrType, "incorrect type", `(&& 1 "x")`)
	expectError(t, in, ErrType, "Expected Number", `(|| 0 {"x"})`)
}
