package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/staticpress/variant"
)

// ButtonVariants is the class table of Button.
var ButtonVariants = variant.MustNew(variant.Config{
	Base: variant.Split("inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50"),
	Axes: []variant.Axis{
		{
			Name:    "variant",
			Default: "default",
			Values: []variant.Value{
				{Name: "default", Tokens: variant.Split("bg-accent text-muted hover:bg-accent-is-default")},
				{Name: "destructive", Tokens: variant.Split("bg-destructive-is-solid text-destructive-foreground hover:bg-destructive-is-default")},
				{Name: "outline", Tokens: variant.Split("border border-input bg-muted hover:bg-accent hover:text-muted")},
				{Name: "secondary", Tokens: variant.Split("bg-muted text-muted-is-default hover:bg-border")},
				{Name: "ghost", Tokens: variant.Split("hover:bg-muted hover:text-muted-is-default")},
				{Name: "link", Tokens: variant.Split("text-accent underline-offset-4 hover:underline")},
			},
		},
		{
			Name:    "size",
			Default: "default",
			Values: []variant.Value{
				{Name: "default", Tokens: variant.Split("h-10 px-4 py-2")},
				{Name: "sm", Tokens: variant.Split("h-9 rounded-md px-3")},
				{Name: "lg", Tokens: variant.Split("h-11 rounded-md px-8")},
				{Name: "icon", Tokens: variant.Split("h-10 w-10")},
			},
		},
	},
	Compounds: []variant.Compound{
		// Links have no box.
		{When: variant.Selection{"variant": "link", "size": "default"}, Tokens: variant.Split("h-auto px-0 py-0")},
	},
})

// ButtonProps configures a Button. With Href set the button renders as a
// link.
type ButtonProps struct {
	Variant  string
	Size     string
	Class    string
	Type     string
	Href     string
	Disabled bool
	Attrs    map[string]string
}

// ButtonClass returns the class attribute for props.
func ButtonClass(props ButtonProps) (string, error) {
	return ButtonVariants.Class(variant.Selection{
		"variant": props.Variant,
		"size":    props.Size,
	}, nil, props.Class)
}

// Button renders a <button>, or an <a> when Href is set.
func Button(props ButtonProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class, err := ButtonClass(props)
		if err != nil {
			return err
		}
		attrs := make(map[string]string, len(props.Attrs)+2)
		for k, v := range props.Attrs {
			attrs[k] = v
		}
		if props.Href != "" {
			attrs["href"] = props.Href
			return element(ctx, w, "a", class, attrs, children)
		}
		typ := props.Type
		if typ == "" {
			typ = "button"
		}
		attrs["type"] = typ
		if props.Disabled {
			attrs["disabled"] = ""
		}
		return element(ctx, w, "button", class, attrs, children)
	})
}
