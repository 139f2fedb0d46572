package routes

import (
	"io"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
)

// Template variables available in output formats.
const (
	TmplAddress   = "address"
	TmplPrefix    = "prefix"
	TmplRoute     = "route"
	TmplGateway   = "gateway"
	TmplInterface = "interface"
	TmplMetric    = "metric"
	TmplSource    = "source"
	TmplBits      = "bits"
)

// Formatter renders a lookup result or a table entry using {{var}} placeholders.
// Spaces inside braces are ignored and unknown placeholders render empty.
type Formatter struct {
	tmpl *fasttemplate.Template
}

// NewFormatter compiles format. It fails on an unterminated placeholder.
func NewFormatter(format string) (*Formatter, error) {
	t, err := fasttemplate.NewTemplate(format, "{{", "}}")
	if err != nil {
		return nil, err
	}
	return &Formatter{tmpl: t}, nil
}

// Format renders route as matched for addr. addr is the network address
// when dumping a table.
func (f *Formatter) Format(addr ipv4.Address, route *Route) string {
	vars := templateVars(addr, route)
	return f.tmpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		return w.Write([]byte(vars[strings.TrimSpace(tag)]))
	})
}

func templateVars(addr ipv4.Address, route *Route) map[string]string {
	vars := map[string]string{
		TmplAddress: addr.String(),
		TmplBits:    addr.BitString(),
	}
	if route == nil {
		return vars
	}

	vars[TmplPrefix] = route.Prefix.String()
	vars[TmplRoute] = route.Name
	vars[TmplInterface] = route.Interface
	vars[TmplMetric] = strconv.Itoa(route.Metric)
	vars[TmplSource] = route.Source
	if route.HasGateway() {
		vars[TmplGateway] = route.Gateway.String()
	}
	return vars
}
