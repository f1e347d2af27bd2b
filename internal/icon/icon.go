// Пакет icon генерирует простые буквенные иконки закладок в виде
// data-URI с SVG.
package icon

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultBackground — цвет подложки по умолчанию.
const DefaultBackground = "#3b82f6"

// Backgrounds — палитра подложек для редактора иконок.
var Backgrounds = []string{
	"#3b82f6", "#8b5cf6", "#ec4899", "#ef4444", "#f97316",
	"#eab308", "#22c55e", "#06b6d4", "#6366f1", "#10b981",
	"#f59e0b", "#84cc16", "#0ea5e9",
}

const svgTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="128" height="128" viewBox="0 0 128 128">
      <rect width="128" height="128" fill="%s" rx="24" />
      <text x="64" y="80" font-family="Arial, sans-serif" font-size="48" font-weight="bold" text-anchor="middle" fill="white">%s</text>
    </svg>`

// Generate строит data-URI со 128×128 SVG-иконкой: скруглённый квадрат
// цвета background и до двух заглавных букв текста поверх. Пустой
// background заменяется на DefaultBackground.
func Generate(text, background string) string {
	if background == "" {
		background = DefaultBackground
	}
	letters := []rune(strings.ToUpper(strings.TrimSpace(text)))
	if len(letters) > 2 {
		letters = letters[:2]
	}
	svg := fmt.Sprintf(svgTemplate, background, string(letters))
	// PathEscape, а не QueryEscape: пробелы должны стать %20, а не «+»
	return "data:image/svg+xml;utf8," + url.PathEscape(svg)
}
