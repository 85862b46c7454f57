package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the sentinel for a diagnostic with no assigned code.
	UnknownCode Code = 0

	// Name and module resolution
	TS2304 Code = 2304 // Cannot find name 'X'.
	TS2307 Code = 2307 // Cannot find module 'X' or its corresponding type declarations.
	TS2315 Code = 2315 // Type 'X' is not generic.
	TS2451 Code = 2451 // Cannot redeclare block-scoped variable 'X'.
	TS2493 Code = 2493 // Tuple type has no element at index X.
	TS2694 Code = 2694 // Namespace has no exported member 'X'.

	// Assignability and structural comparisons
	TS2322 Code = 2322 // Type 'X' is not assignable to type 'Y'.
	TS2345 Code = 2345 // Argument of type 'X' is not assignable to parameter of type 'Y'.
	TS2353 Code = 2353 // Object literal may only specify known properties.
	TS2559 Code = 2559 // Type 'X' has no properties in common with type 'Y'.
	TS2740 Code = 2740 // Type 'X' is missing the following properties from type 'Y': ...
	TS2741 Code = 2741 // Property 'X' is missing in type 'Y' but required in type 'Z'.

	// Property access
	TS2339 Code = 2339 // Property 'X' does not exist on type 'Y'.
	TS2532 Code = 2532 // Object is possibly 'undefined'.
	TS18048 Code = 18048 // 'X' is possibly 'undefined'.
	TS18049 Code = 18049 // 'X' is possibly 'null' or 'undefined'.
	TS18050 Code = 18050 // 'X' is possibly 'null'.

	// Operators
	TS2362 Code = 2362 // The left-hand side of an arithmetic operation must be of type 'any', 'number', 'bigint' or an enum type.
	TS2363 Code = 2363 // The right-hand side of an arithmetic operation must be of type 'any', 'number', 'bigint' or an enum type.
	TS2365 Code = 2365 // Operator 'X' cannot be applied to types 'Y' and 'Z'.

	// Calls and overloads
	TS2769 Code = 2769 // No overload matches this call.
	TS2874 Code = 2874 // This module is declared with 'export =', and can only be used with a default import.

	// Depth and resource limits
	TS2589 Code = 2589 // Type instantiation is excessively deep and possibly infinite.

	// Implicit any
	TS7006 Code = 7006 // Parameter 'X' implicitly has an 'any' type.

	// Internal: not a TypeScript-visible code, used for host-side faults
	// (I/O failures, config errors) that never reach the user as TS####.
	InternalError Code = 1
)

var codeDescription = map[Code]string{
	UnknownCode:   "Unknown error",
	InternalError: "Internal error",

	TS2304: "Cannot find name.",
	TS2307: "Cannot find module or its corresponding type declarations.",
	TS2315: "Type is not generic.",
	TS2451: "Cannot redeclare block-scoped variable.",
	TS2493: "Tuple type has no element at this index.",
	TS2694: "Namespace has no exported member.",

	TS2322: "Type is not assignable to type.",
	TS2345: "Argument type is not assignable to parameter type.",
	TS2353: "Object literal may only specify known properties.",
	TS2559: "Type has no properties in common with the other type.",
	TS2740: "Type is missing properties from the target type.",
	TS2741: "Property is missing but required.",

	TS2339:  "Property does not exist on type.",
	TS2532:  "Object is possibly 'undefined'.",
	TS18048: "Value is possibly 'undefined'.",
	TS18049: "Value is possibly 'null' or 'undefined'.",
	TS18050: "Value is possibly 'null'.",

	TS2362: "The left-hand side of an arithmetic operation must be of type 'any', 'number', 'bigint' or an enum type.",
	TS2363: "The right-hand side of an arithmetic operation must be of type 'any', 'number', 'bigint' or an enum type.",
	TS2365: "Operator cannot be applied to these types.",

	TS2769: "No overload matches this call.",
	TS2874: "Module uses 'export =' and can only be used with a default import.",

	TS2589: "Type instantiation is excessively deep and possibly infinite.",

	TS7006: "Parameter implicitly has an 'any' type.",
}

// ID renders the TypeScript-compatible diagnostic code, e.g. "TS2322".
// InternalError and UnknownCode render as a non-TS sentinel since they
// never correspond to a code the upstream compiler would emit.
func (c Code) ID() string {
	switch c {
	case UnknownCode, InternalError:
		return fmt.Sprintf("TSZ%04d", int(c))
	default:
		return fmt.Sprintf("TS%d", int(c))
	}
}

// Title returns the canonical short description for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
