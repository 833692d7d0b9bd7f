package stack

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/ydb-platform/ydb-go-rowset/internal/xstring"
)

type recordOptions struct {
	packagePath bool
	fileName    bool
	line        bool
	lambdas     bool
}

type recordOption func(opts *recordOptions)

func PackagePath(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.packagePath = b
	}
}

func FileName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.fileName = b
	}
}

func Line(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.line = b
	}
}

func Lambda(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.lambdas = b
	}
}

type call struct {
	function uintptr
	file     string
	line     int
}

func Call(depth int) (c call) {
	c.function, c.file, c.line, _ = runtime.Caller(depth + 1)

	return c
}

func (c call) Record(opts ...recordOption) string {
	options := recordOptions{
		packagePath: true,
		fileName:    true,
		line:        true,
		lambdas:     true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	name := strings.ReplaceAll(runtime.FuncForPC(c.function).Name(), "[...]", "")
	pkgPath := ""
	if i := strings.LastIndex(name, "/"); i > -1 {
		pkgPath, name = name[:i], name[i+1:]
	}
	if !options.lambdas {
		name = trimLambdas(name)
	}

	buffer := xstring.Buffer()
	defer buffer.Free()

	if options.packagePath && pkgPath != "" {
		buffer.WriteString(pkgPath)
		buffer.WriteByte('/')
	}
	buffer.WriteString(name)
	if options.fileName {
		file := c.file
		if i := strings.LastIndex(file, "/"); i > -1 {
			file = file[i+1:]
		}
		buffer.WriteByte('(')
		buffer.WriteString(file)
		if options.line {
			fmt.Fprintf(buffer, ":%d", c.line)
		}
		buffer.WriteByte(')')
	}

	return buffer.String()
}

func (c call) FunctionID() string {
	return c.Record(Lambda(false), FileName(false))
}

// trimLambdas cuts anonymous function suffixes like `.func1.2`
func trimLambdas(name string) string {
	parts := strings.Split(name, ".")
	for len(parts) > 1 {
		last := parts[len(parts)-1]
		if !strings.HasPrefix(last, "func") && !isDigits(last) {
			break
		}
		parts = parts[:len(parts)-1]
	}

	return strings.Join(parts, ".")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func Record(depth int, opts ...recordOption) string {
	return Call(depth + 1).Record(opts...)
}
