//go:build !nostrictbool

package model

// Value of Options.StrictArgumentTypes in DefaultOptions. Build with the "nostrictbool" tag to disable it
const DefaultStrictArgumentTypes = true
