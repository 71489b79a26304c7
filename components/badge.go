package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/staticpress/variant"
)

// BadgeVariants is the class table of Badge.
//
// Variants: soft, solid, surface, outline.
// Colors: default, destructive, success, warning, info.
var BadgeVariants = variant.MustNew(variant.Config{
	Base: variant.Split("inline-flex items-center rounded-sm px-2.5 py-0.5 text-xs font-semibold transition-colors focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2"),
	Axes: []variant.Axis{
		{
			Name:    "variant",
			Default: "soft",
			Values: []variant.Value{
				{Name: "soft", Tokens: variant.Split("bg-muted text-muted-is-default")},
				{Name: "solid", Tokens: variant.Split("bg-solid text-solid-is-default")},
				{Name: "surface", Tokens: variant.Split("bg-surface text-surface-is-default border border-surface-border")},
				{Name: "outline", Tokens: variant.Split("border border-outline text-outline-is-default")},
			},
		},
		{
			Name:    "color",
			Default: "default",
			Values: []variant.Value{
				{Name: "default"},
				{Name: "destructive"},
				{Name: "success"},
				{Name: "warning"},
				{Name: "info"},
			},
		},
	},
	Compounds: []variant.Compound{
		badgeCompound("soft", "destructive", "bg-destructive text-destructive-is-default"),
		badgeCompound("soft", "success", "bg-success text-success-is-default"),
		badgeCompound("soft", "warning", "bg-warning text-warning-is-default"),
		badgeCompound("soft", "info", "bg-info text-info-is-default"),

		badgeCompound("solid", "destructive", "bg-destructive-is-solid text-destructive-foreground"),
		badgeCompound("solid", "success", "bg-success-is-solid text-success-is-default"),
		badgeCompound("solid", "warning", "bg-warning-is-solid text-warning-is-default"),
		badgeCompound("solid", "info", "bg-info-is-default text-info hover:bg-info-is-default"),

		badgeCompound("surface", "destructive", "bg-destructive border-destructive text-destructive-is-default"),
		badgeCompound("surface", "success", "bg-success border-success text-success-is-default"),
		badgeCompound("surface", "warning", "bg-warning border-warning text-warning-is-default"),
		badgeCompound("surface", "info", "bg-info border-info text-info-is-default"),

		badgeCompound("outline", "destructive", "border-destructive text-destructive-is-default hover:bg-destructive"),
		badgeCompound("outline", "success", "border-success text-success-is-default hover:bg-success"),
		badgeCompound("outline", "warning", "border-warning text-warning-is-default hover:bg-warning"),
		badgeCompound("outline", "info", "border-info text-info-is-default hover:bg-info"),
	},
})

func badgeCompound(v, color, class string) variant.Compound {
	return variant.Compound{
		When:   variant.Selection{"variant": v, "color": color},
		Tokens: variant.Split(class),
	}
}

// BadgeProps configures a Badge. Empty Variant and Color use the defaults;
// Class is merged last and wins over conflicting variant classes.
type BadgeProps struct {
	Variant string
	Color   string
	Class   string
	Attrs   map[string]string
}

// BadgeClass returns the class attribute for props.
func BadgeClass(props BadgeProps) (string, error) {
	return BadgeVariants.Class(variant.Selection{
		"variant": props.Variant,
		"color":   props.Color,
	}, nil, props.Class)
}

// Badge renders a small labelled pill. An unknown variant or color is
// returned as the render error.
func Badge(props BadgeProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class, err := BadgeClass(props)
		if err != nil {
			return err
		}
		return element(ctx, w, "div", class, props.Attrs, children)
	})
}
