// Package alu interprets the submarine's arithmetic logic unit and searches
// for model numbers that MONAD accepts.
//
// The ALU has four integer registers w, x, y and z and six instructions:
// inp, add, mul, div, mod and eql. Run executes any program.
//
// The model number search is input-specific. MONAD is read as one block of
// BlockLen instructions per digit, each beginning with inp w, where x and y
// are cleared before use so only z carries between blocks. The search walks
// blocks left to right and memoises dead (block, z) states. A state is also
// pruned when z is not below the product of the "div z N" divisors still
// ahead, since no sequence of those blocks can bring it back to zero.
package alu
