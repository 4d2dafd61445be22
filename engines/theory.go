package engines

const Theory = `
# Engine Theory

The engine is a byte-code interpreter for a Brainfuck-derived language.

## 1. Machine
- **Data tape**: a fixed number of single-byte cells (default 1,048,576) with a cursor.
  The cursor wraps around at both ends; cell arithmetic wraps modulo 256.
- **Program tape**: the program's raw bytes with the program counter as its cursor.
  It shares the tape model with the data tape but never wraps: running off the last
  byte ends the program.
- **Return stack**: the positions of entered loops. Its depth always equals the number
  of loops currently open.

## 2. Cycle
Fetch the byte under the program counter, dispatch it, advance by one. Jumping
instructions set the program counter themselves and skip the advance.

## 3. Instructions
  >  <      move the data cursor
  +  -      change the current cell
  .         print the cell: 10 and 13 as newline, 32..176 as a character, else \xHH
  ,         read one raw byte into the cell
  [         enter a loop if the cell is nonzero, else skip to the matching ]
  ]         jump back to the innermost entered [ to evaluate it again
  //  /*    line comment up to the newline, block comment up to the next *
  ?a:b      print cells [a, b) as a table
  ^         break: hands control to the caller, machine state is untouched

Every other byte is ignored.

## 4. Failure
A program that cannot be loaded never starts. A [ skipping forward without a matching ]
stops the run with an unterminated loop error instead of reading past the program.
`
