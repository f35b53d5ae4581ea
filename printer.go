package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders an evaluated expression for display. The Lambda and Void
// forms are diagnostic only and do not re-parse.
func Print(val Expr) string {
	switch t := val.(type) {
	case Void:
		return "Void"
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case Symbol:
		return string(t)
	case Lambda:
		var sb strings.Builder
		sb.WriteString("Lambda(")
		for _, param := range t.Params {
			sb.WriteString(string(param))
			sb.WriteString(" ")
		}
		sb.WriteString(")")
		for _, expr := range t.Body {
			sb.WriteString(" ")
			sb.WriteString(Print(expr))
		}
		return sb.String()
	case List:
		arr := make([]string, len(t))
		for i, v := range t {
			arr[i] = Print(v)
		}
		return fmt.Sprintf("(%s)", strings.Join(arr, " "))
	default:
		return fmt.Sprintf("%v", val)
	}
}
