package termcolor

import (
	"github.com/tyama/commentx/internal/colorutil"
	"github.com/tyama/commentx/internal/model"
)

func HeaderStyle() Style {
	return Style{Bold: true, Underline: true}
}

func LocationStyle() Style {
	color := 6
	return Style{FGBasic: &color}
}

// Per-scheme truecolor palette. Dark values come from the One Dark
// syntax palette, light values from the GitHub light palette; both meet
// WCAG AA contrast against the matching background.
var styleRGB = map[Scheme]map[model.Style][3]uint8{
	SchemeDark: {
		model.StyleC:   {97, 175, 239},
		model.StylePy:  {152, 195, 121},
		model.StyleXML: {198, 120, 221},
	},
	SchemeLight: {
		model.StyleC:   {5, 80, 174},
		model.StylePy:  {26, 127, 55},
		model.StyleXML: {130, 80, 223},
	},
}

var styleBasic = map[model.Style]int{
	model.StyleC:   4,
	model.StylePy:  2,
	model.StyleXML: 5,
}

var schemeBG = map[Scheme]colorutil.RGB{
	SchemeDark:  {R: 40, G: 44, B: 52},
	SchemeLight: {R: 249, G: 250, B: 251},
}

// StyleFor maps a comment style to a terminal style for the given
// scheme and color profile. Unknown styles stay uncolored.
func StyleFor(style model.Style, scheme Scheme, profile Profile) Style {
	palette, ok := styleRGB[scheme]
	if !ok {
		palette = styleRGB[SchemeDark]
	}
	rgb, ok := palette[style]
	if !ok {
		return Style{}
	}
	switch profile {
	case ProfileTrueColor:
		fg := colorutil.EnsureContrast(
			colorutil.RGB{R: rgb[0], G: rgb[1], B: rgb[2]},
			schemeBG[scheme], 4.5,
		)
		v := [3]uint8{fg.R, fg.G, fg.B}
		return Style{FGTrue: &v}
	case ProfileANSI256:
		idx := rgbToANSI256(rgb[0], rgb[1], rgb[2])
		return Style{FG256: &idx}
	default:
		color := styleBasic[style]
		return Style{FGBasic: &color}
	}
}

func rgbToANSI256(r, g, b uint8) int {
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return 232 + (int(r)-8)*24/247
	}
	rr := int(r) * 5 / 255
	gg := int(g) * 5 / 255
	bb := int(b) * 5 / 255
	return 16 + 36*rr + 6*gg + bb
}
