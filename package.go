// Package gen implements heap-allocated, caller-driven generators: bodies
// of code that pause at explicit yield points, hand a value out to the
// caller at each pause, and resume with a value handed back in.
//
// A generator is created with New, which receives the body as a function.
// The body is given a Co handle; calling its Yield method is the only way
// for the body to suspend. The caller steps the generator with ResumeWith
// (or Resume when the resume type carries no information), obtaining a
// State that is either a yielded value or the body's final return value.
//
// The caller and the body never run concurrently: each step runs the body
// until exactly its next yield point or its completion, then returns. A
// generator is owned by a single caller and must not be shared between
// goroutines.
package gen
