package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
//
// 换行规则:
//   - 按字符测量，超出宽度时断行（韩文/中文没有空格也能断行）
//   - 单个字符超宽时强制单独成行
//   - 已有的换行符保留
func WrapText(textStr string, face text.Face, maxWidth float64) []string {
	if textStr == "" || face == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapLine(paragraph, face, maxWidth)...)
	}
	return lines
}

func wrapLine(line string, face text.Face, maxWidth float64) []string {
	if MeasureText(line, face) <= maxWidth {
		return []string{line}
	}

	var lines []string
	current := ""
	for len(line) > 0 {
		r, size := utf8.DecodeRuneInString(line)
		char := string(r)
		line = line[size:]

		candidate := current + char
		if MeasureText(candidate, face) <= maxWidth {
			current = candidate
			continue
		}
		if current == "" {
			lines = append(lines, char)
			continue
		}
		lines = append(lines, strings.TrimSpace(current))
		current = strings.TrimLeft(char, " ")
	}
	if current != "" {
		lines = append(lines, strings.TrimSpace(current))
	}
	return lines
}

// MeasureText 测量单行文本宽度
func MeasureText(textStr string, face text.Face) float64 {
	if textStr == "" || face == nil {
		return 0
	}
	width, _ := text.Measure(textStr, face, 0)
	return width
}
