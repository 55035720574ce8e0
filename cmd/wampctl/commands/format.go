package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/xconnio/wampproto-go/wampproto"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

// errUnsupportedFormat is returned when the requested output format is not supported.
var errUnsupportedFormat = errors.New("unsupported output format")

// formatSessionDetails renders the details captured from WELCOME.
func formatSessionDetails(d *wampproto.SessionDetails, format string) (string, error) {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(sessionDetailsView{
			SessionID: d.SessionID,
			Realm:     d.Realm,
			AuthID:    d.AuthID,
			AuthRole:  d.AuthRole,
		}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal session details to JSON: %w", err)
		}

		return string(data), nil

	case formatTable:
		var buf strings.Builder
		w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Session ID:\t%d\n", d.SessionID)
		fmt.Fprintf(w, "Realm:\t%s\n", d.Realm)
		fmt.Fprintf(w, "Auth ID:\t%s\n", d.AuthID)
		fmt.Fprintf(w, "Auth Role:\t%s\n", d.AuthRole)
		if err := w.Flush(); err != nil {
			return "", fmt.Errorf("flush tabwriter: %w", err)
		}

		return buf.String(), nil

	default:
		return "", fmt.Errorf("%w: %q", errUnsupportedFormat, format)
	}
}

type sessionDetailsView struct {
	SessionID int64  `json:"session_id"`
	Realm     string `json:"realm"`
	AuthID    string `json:"authid"`
	AuthRole  string `json:"authrole"`
}

// formatValues renders a reply's args/kwargs for display: JSON always;
// table falls back to a line-per-item rendering since args/kwargs have no
// fixed column shape.
func formatValues(args []wampproto.Value, kwargs map[string]wampproto.Value, format string) (string, error) {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(valuesView{Args: valueList(args), Kwargs: valueDict(kwargs)}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal values to JSON: %w", err)
		}

		return string(data), nil

	case formatTable:
		var buf strings.Builder
		for i, a := range args {
			fmt.Fprintf(&buf, "arg[%d]: %s\n", i, a.String())
		}
		for k, v := range kwargs {
			fmt.Fprintf(&buf, "kwarg[%s]: %s\n", k, v.String())
		}

		return buf.String(), nil

	default:
		return "", fmt.Errorf("%w: %q", errUnsupportedFormat, format)
	}
}

type valuesView struct {
	Args   []any          `json:"args,omitempty"`
	Kwargs map[string]any `json:"kwargs,omitempty"`
}

func valueList(vs []wampproto.Value) []any {
	out := make([]any, 0, len(vs))
	for _, v := range vs {
		out = append(out, valueToAny(v))
	}

	return out
}

func valueDict(vs map[string]wampproto.Value) map[string]any {
	out := make(map[string]any, len(vs))
	for k, v := range vs {
		out[k] = valueToAny(v)
	}

	return out
}

func valueToAny(v wampproto.Value) any {
	switch v.Kind() {
	case wampproto.KindInt:
		n, _ := v.Int()
		return n
	case wampproto.KindFloat:
		f, _ := v.Float()
		return f
	case wampproto.KindBool:
		b, _ := v.Bool()
		return b
	case wampproto.KindString:
		s, _ := v.Str()
		return s
	case wampproto.KindList:
		l, _ := v.List()
		return valueList(l)
	case wampproto.KindDict:
		d, _ := v.Dict()
		return valueDict(d)
	case wampproto.KindBytes:
		b, _ := v.Bytes()
		return b
	default:
		return nil
	}
}
