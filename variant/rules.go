package variant

import "sync"

var (
	defaultMergerOnce sync.Once
	defaultMerger     *Merger
)

// DefaultMerger returns the shared Merger for the Tailwind utilities used by
// the components and the theme. The exact prefix equivalences are listed in
// DefaultRules.
func DefaultMerger() *Merger {
	defaultMergerOnce.Do(func() {
		defaultMerger = NewMerger(DefaultRules(), DefaultOverrides())
	})
	return defaultMerger
}

var (
	sizeScale   = []string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl", "7xl", "8xl", "9xl"}
	widthScale  = []string{"0", "1", "2", "4", "8"}
	radiusScale = []string{"none", "sm", "md", "lg", "xl", "2xl", "3xl", "full"}
	borderSides = []string{"x", "y", "t", "r", "b", "l", "s", "e"}
	boxSides    = []string{"x", "y", "t", "r", "b", "l", "s", "e"}
	radiusSides = []string{"t", "r", "b", "l", "s", "e", "tl", "tr", "br", "bl", "ss", "se", "ee", "es"}
)

// DefaultRules returns the default conflict table. Narrow rules precede the
// catch-all colour rules that share their prefix:
//
//	rounded, rounded-{size}   rounded       (rounded-{side}[-size]: rounded-{side})
//	text-{xs..9xl}            font-size
//	text-{left,center,...}    text-align
//	text-*                    text-color
//	border, border-{0,2,4,8}  border-w      (border-{side}[-n]: border-w-{side})
//	border-{solid,...}        border-style
//	border-*                  border-color  (border-{side}-*: border-color-{side})
//	ring, ring-{0,1,2,4,8}    ring-w
//	ring-offset-{0,1,2,4,8}   ring-offset-w, ring-offset-* ring-offset-color
//	ring-*                    ring-color
//	bg-{fixed,cover,...}      background layout groups, bg-* bg-color
func DefaultRules() []ConflictRule {
	rules := []ConflictRule{
		{Group: "display", Tokens: []string{"block", "inline-block", "inline", "flex", "inline-flex", "grid", "inline-grid", "table", "contents", "flow-root", "hidden"}},
		{Group: "position", Tokens: []string{"static", "fixed", "absolute", "relative", "sticky"}},
		{Group: "visibility", Tokens: []string{"visible", "invisible", "collapse"}},
		{Group: "flex-direction", Prefix: "flex-", Values: []string{"row", "row-reverse", "col", "col-reverse"}},
		{Group: "flex-wrap", Prefix: "flex-", Values: []string{"wrap", "wrap-reverse", "nowrap"}},
		{Group: "flex", Prefix: "flex-"},
		{Group: "align-items", Prefix: "items-", Values: []string{"start", "end", "center", "baseline", "stretch"}},
		{Group: "justify-content", Prefix: "justify-", Values: []string{"normal", "start", "end", "center", "between", "around", "evenly", "stretch"}},
		{Group: "gap-x", Prefix: "gap-x-"},
		{Group: "gap-y", Prefix: "gap-y-"},
		{Group: "gap", Prefix: "gap-"},

		{Group: "rounded", Tokens: []string{"rounded"}, Prefix: "rounded-", Values: radiusScale},

		{Group: "p", Prefix: "p-"},
		{Group: "m", Prefix: "m-"},
	}
	for _, s := range radiusSides {
		rules = append(rules, ConflictRule{Group: "rounded-" + s, Tokens: []string{"rounded-" + s}, Prefix: "rounded-" + s + "-", Values: radiusScale})
	}
	for _, s := range boxSides {
		rules = append(rules,
			ConflictRule{Group: "p" + s, Prefix: "p" + s + "-"},
			ConflictRule{Group: "m" + s, Prefix: "m" + s + "-"},
		)
	}

	rules = append(rules,
		ConflictRule{Group: "w", Prefix: "w-"},
		ConflictRule{Group: "h", Prefix: "h-"},
		ConflictRule{Group: "size", Prefix: "size-"},
		ConflictRule{Group: "min-w", Prefix: "min-w-"},
		ConflictRule{Group: "max-w", Prefix: "max-w-"},
		ConflictRule{Group: "min-h", Prefix: "min-h-"},
		ConflictRule{Group: "max-h", Prefix: "max-h-"},

		ConflictRule{Group: "font-size", Prefix: "text-", Values: sizeScale},
		ConflictRule{Group: "text-align", Prefix: "text-", Values: []string{"left", "center", "right", "justify", "start", "end"}},
		ConflictRule{Group: "text-overflow", Tokens: []string{"truncate", "text-ellipsis", "text-clip"}},
		ConflictRule{Group: "text-wrap", Tokens: []string{"text-wrap", "text-nowrap", "text-balance", "text-pretty"}},
		ConflictRule{Group: "text-color", Prefix: "text-"},
		ConflictRule{Group: "font-weight", Prefix: "font-", Values: []string{"thin", "extralight", "light", "normal", "medium", "semibold", "bold", "extrabold", "black"}},
		ConflictRule{Group: "font-family", Prefix: "font-", Values: []string{"sans", "serif", "mono"}},
		ConflictRule{Group: "font-style", Tokens: []string{"italic", "not-italic"}},
		ConflictRule{Group: "text-decoration", Tokens: []string{"underline", "overline", "line-through", "no-underline"}},
		ConflictRule{Group: "underline-offset", Prefix: "underline-offset-"},
		ConflictRule{Group: "text-transform", Tokens: []string{"uppercase", "lowercase", "capitalize", "normal-case"}},
		ConflictRule{Group: "tracking", Prefix: "tracking-"},
		ConflictRule{Group: "leading", Prefix: "leading-"},
		ConflictRule{Group: "whitespace", Prefix: "whitespace-"},

		ConflictRule{Group: "bg-attachment", Tokens: []string{"bg-fixed", "bg-local", "bg-scroll"}},
		ConflictRule{Group: "bg-size", Tokens: []string{"bg-auto", "bg-cover", "bg-contain"}},
		ConflictRule{Group: "bg-repeat", Tokens: []string{"bg-repeat", "bg-no-repeat", "bg-repeat-x", "bg-repeat-y", "bg-repeat-round", "bg-repeat-space"}},
		ConflictRule{Group: "bg-position", Prefix: "bg-", Values: []string{"bottom", "center", "left", "left-bottom", "left-top", "right", "right-bottom", "right-top", "top"}},
		ConflictRule{Group: "bg-image", Tokens: []string{"bg-none"}, Prefix: "bg-gradient-to-"},
		ConflictRule{Group: "bg-clip", Prefix: "bg-clip-"},
		ConflictRule{Group: "bg-origin", Prefix: "bg-origin-"},
		ConflictRule{Group: "bg-color", Prefix: "bg-"},
	)

	for _, s := range borderSides {
		rules = append(rules,
			ConflictRule{Group: "border-w-" + s, Tokens: []string{"border-" + s}, Prefix: "border-" + s + "-", Values: widthScale},
			ConflictRule{Group: "border-color-" + s, Prefix: "border-" + s + "-"},
		)
	}
	rules = append(rules,
		ConflictRule{Group: "border-w", Tokens: []string{"border"}, Prefix: "border-", Values: widthScale},
		ConflictRule{Group: "border-style", Prefix: "border-", Values: []string{"solid", "dashed", "dotted", "double", "hidden", "none"}},
		ConflictRule{Group: "border-color", Prefix: "border-"},

		ConflictRule{Group: "ring-offset-w", Prefix: "ring-offset-", Values: widthScale},
		ConflictRule{Group: "ring-offset-color", Prefix: "ring-offset-"},
		ConflictRule{Group: "ring-inset", Tokens: []string{"ring-inset"}},
		ConflictRule{Group: "ring-w", Tokens: []string{"ring"}, Prefix: "ring-", Values: widthScale},
		ConflictRule{Group: "ring-color", Prefix: "ring-"},

		ConflictRule{Group: "outline-style", Tokens: []string{"outline", "outline-none", "outline-dashed", "outline-dotted", "outline-double"}},
		ConflictRule{Group: "outline-offset", Prefix: "outline-offset-"},
		ConflictRule{Group: "outline-w", Prefix: "outline-", Values: widthScale},
		ConflictRule{Group: "outline-color", Prefix: "outline-"},

		ConflictRule{Group: "shadow", Tokens: []string{"shadow"}, Prefix: "shadow-", Values: []string{"sm", "md", "lg", "xl", "2xl", "inner", "none"}},
		ConflictRule{Group: "shadow-color", Prefix: "shadow-"},
		ConflictRule{Group: "opacity", Prefix: "opacity-"},
		ConflictRule{Group: "transition", Tokens: []string{"transition"}, Prefix: "transition-", Values: []string{"none", "all", "colors", "opacity", "shadow", "transform"}},
		ConflictRule{Group: "duration", Prefix: "duration-"},
		ConflictRule{Group: "cursor", Prefix: "cursor-"},
		ConflictRule{Group: "pointer-events", Prefix: "pointer-events-"},
		ConflictRule{Group: "select", Prefix: "select-"},
	)
	return rules
}

// DefaultOverrides returns the cross-group replacements of the default
// table: a shorthand replaces its longhands.
func DefaultOverrides() map[string][]string {
	o := map[string][]string{
		"p":            {"px", "py", "pt", "pr", "pb", "pl", "ps", "pe"},
		"px":           {"pr", "pl", "ps", "pe"},
		"py":           {"pt", "pb"},
		"m":            {"mx", "my", "mt", "mr", "mb", "ml", "ms", "me"},
		"mx":           {"mr", "ml", "ms", "me"},
		"my":           {"mt", "mb"},
		"gap":          {"gap-x", "gap-y"},
		"size":         {"w", "h"},
		"border-w":     nil,
		"border-color": nil,
	}
	for _, s := range borderSides {
		o["border-w"] = append(o["border-w"], "border-w-"+s)
		o["border-color"] = append(o["border-color"], "border-color-"+s)
	}
	o["border-w-x"] = []string{"border-w-r", "border-w-l"}
	o["border-w-y"] = []string{"border-w-t", "border-w-b"}
	o["border-color-x"] = []string{"border-color-r", "border-color-l"}
	o["border-color-y"] = []string{"border-color-t", "border-color-b"}

	for _, s := range radiusSides {
		o["rounded"] = append(o["rounded"], "rounded-"+s)
	}
	o["rounded-t"] = []string{"rounded-tl", "rounded-tr"}
	o["rounded-r"] = []string{"rounded-tr", "rounded-br"}
	o["rounded-b"] = []string{"rounded-br", "rounded-bl"}
	o["rounded-l"] = []string{"rounded-tl", "rounded-bl"}
	o["rounded-s"] = []string{"rounded-ss", "rounded-es"}
	o["rounded-e"] = []string{"rounded-se", "rounded-ee"}
	return o
}
