//go:build nostrictbool

package model

const DefaultStrictArgumentTypes = false
