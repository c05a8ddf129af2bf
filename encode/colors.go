package encode

import (
	"strings"

	"github.com/fatih/color"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Class]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Class]func(string, ...any) string{},
	}
	colors.Map[TextClass] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[NewlineClass] = color.RGB(96, 96, 96).SprintfFunc()
	colors.Map[LeadingWSClass] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[TrailingWSClass] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[FormClass] = color.RGB(168, 0, 196).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Get(cls Class) func(string, ...any) string {
	f := c.Map[cls]
	if f == nil {
		return c.Default
	}
	return f
}
