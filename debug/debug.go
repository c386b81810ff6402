// Package debug provides env-var gated debug logging for the
// engine's internal passes.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Token bool
	Align bool
	Tree  bool
	Patch bool
}

var d *debug

func init() {
	d = &debug{}
	d.Token = boolEnv("YAMLED_DEBUG_TOKEN")
	d.Align = boolEnv("YAMLED_DEBUG_ALIGN")
	d.Tree = boolEnv("YAMLED_DEBUG_TREE")
	d.Patch = boolEnv("YAMLED_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Token() bool {
	return d.Token
}
func Align() bool {
	return d.Align
}
func Tree() bool {
	return d.Tree
}
func Patch() bool {
	return d.Patch
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
