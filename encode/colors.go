package encode

import "github.com/fatih/color"

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	KeyColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			CommentColor: color.BlueString,
			KeyColor:     color.RGB(196, 96, 16).SprintfFunc(),
			ValueColor:   color.RGB(128, 216, 236).SprintfFunc(),
			SepColor:     color.RGB(255, 0, 196).SprintfFunc(),
		},
	}
}

func (c *Colors) Color(attr ColorAttr, v string) string {
	f, ok := c.Map[attr]
	if !ok {
		f = c.Default
	}
	if f == nil {
		return v
	}
	return f("%s", v)
}

func colorDefault(msg string, args ...any) string {
	return color.WhiteString(msg, args...)
}
