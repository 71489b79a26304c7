package theme

// Radix colour scales, steps 1..12. Steps 1-2 are app backgrounds, 3-5
// component backgrounds, 6-8 borders, 9-10 solid fills, 11-12 text.
var (
	Mauve  = Scale{"#fdfcfd", "#faf9fb", "#f2eff3", "#eae7ec", "#e3dfe6", "#dbd8e0", "#d0cdd7", "#bcbac7", "#8e8c99", "#84828e", "#65636d", "#211f26"}
	Violet = Scale{"#fdfcfe", "#faf8ff", "#f4f0fe", "#ebe4ff", "#e1d9ff", "#d4cafe", "#c2b5f5", "#aa99ec", "#6e56cf", "#654dc4", "#6550b9", "#2f265f"}
	Red    = Scale{"#fffcfc", "#fff7f7", "#feebec", "#ffdbdc", "#ffcdce", "#fdbdbe", "#f4a9aa", "#eb8e90", "#e5484d", "#dc3e42", "#ce2c31", "#641723"}
	Green  = Scale{"#fbfefc", "#f4fbf6", "#e6f6eb", "#d6f1df", "#c4e8d1", "#adddc0", "#8eceaa", "#5bb98b", "#30a46c", "#2b9a66", "#218358", "#193b2d"}
	Blue   = Scale{"#fbfdff", "#f4faff", "#e6f4fe", "#d5efff", "#c2e5ff", "#acd8fc", "#8ec8f6", "#5eb1ef", "#0090ff", "#0588f0", "#0d74ce", "#113264"}
	Orange = Scale{"#fefcfb", "#fff7ed", "#ffefd6", "#ffdfb5", "#ffd19a", "#ffc182", "#f5ae73", "#ec9455", "#f76b15", "#ef5f00", "#cc4e00", "#582d1d"}

	MauveDark  = Scale{"#121113", "#1a191b", "#232225", "#2b292d", "#323035", "#3c393f", "#49474e", "#625f69", "#6f6d78", "#7c7a85", "#b5b2bc", "#eeeef0"}
	VioletDark = Scale{"#14121f", "#1b1525", "#291f43", "#33255b", "#3c2e69", "#473876", "#56468b", "#6958ad", "#6e56cf", "#7d66d9", "#baa7ff", "#e2ddfe"}
	RedDark    = Scale{"#191111", "#201314", "#3b1219", "#500f1c", "#611623", "#72232d", "#8c333a", "#b54548", "#e5484d", "#ec5d5e", "#ff9592", "#ffd1d9"}
	GreenDark  = Scale{"#0e1512", "#121b17", "#132d21", "#113b29", "#174933", "#20573e", "#28684a", "#2f7c57", "#30a46c", "#33b074", "#3dd68c", "#b1f1cb"}
	BlueDark   = Scale{"#0d1520", "#111927", "#0d2847", "#003362", "#004074", "#104d87", "#205d9e", "#2870bd", "#0090ff", "#3b9eff", "#70b8ff", "#c2e6ff"}
	OrangeDark = Scale{"#17120e", "#1e160f", "#331e0b", "#462100", "#562800", "#66350c", "#7e451d", "#a35829", "#f76b15", "#ff801f", "#ffa057", "#ffe0c2"}

	// Alpha scales blend over the page background.
	RedA        = Scale{"#ff000003", "#ff000008", "#f3000d14", "#ff000824", "#ff000632", "#f8000442", "#df000356", "#d2000571", "#db0007b7", "#d10005c1", "#c40006d3", "#55000de8"}
	RedDarkA    = Scale{"#f4121209", "#f22f3e11", "#ff173f2d", "#fe0a3b44", "#ff204756", "#ff3e5668", "#ff536184", "#ff5d61b0", "#fe4e54e4", "#ff6465eb", "#ff9592", "#ffd1d9"}
	GreenDarkA  = Scale{"#00de4505", "#29f99d0b", "#22ff991e", "#11ff992d", "#2bffa23c", "#44ffaa4b", "#50fdac5e", "#54ffad73", "#44ffa49e", "#43fea4ab", "#46fea5d4", "#bbffd7f0"}
	BlueDarkA   = Scale{"#004df211", "#1166fb18", "#0077ff3a", "#0075ff57", "#0081fd6b", "#0f89fd7f", "#2a91fe98", "#3094feb9", "#0090ff", "#3b9eff", "#70b8ff", "#c2e6ff"}
	OrangeDarkA = Scale{"#ec360007", "#fe6d000e", "#fb6a0025", "#ff590039", "#ff61004a", "#fd75045c", "#ff832c75", "#fe84389d", "#fe6d15f7", "#ff801f", "#ffa057", "#ffe0c2"}
)

// Scales maps scale names to scales, for config files that pick scales by
// name.
var Scales = map[string]Scale{
	"mauve":      Mauve,
	"violet":     Violet,
	"red":        Red,
	"green":      Green,
	"blue":       Blue,
	"orange":     Orange,
	"mauveDark":  MauveDark,
	"violetDark": VioletDark,
	"redDark":    RedDark,
	"greenDark":  GreenDark,
	"blueDark":   BlueDark,
	"orangeDark": OrangeDark,

	"redA":        RedA,
	"redDarkA":    RedDarkA,
	"greenDarkA":  GreenDarkA,
	"blueDarkA":   BlueDarkA,
	"orangeDarkA": OrangeDarkA,
}
