package util

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripTags 去除 HTML 标签，仅保留文本内容
func StripTags(content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}
	return strings.TrimSpace(doc.Text())
}

// ExtractExcerpt 从正文生成摘要：去标签后按字符截断，超长补省略号
func ExtractExcerpt(content string, maxLen int) string {
	text := StripTags(content)
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}

// NormalizeTags 将逗号分隔字符串或列表归一为去重后的标签列表
// 保留大小写，去除首尾空白，丢弃空项
func NormalizeTags(raw string, list []string) []string {
	var candidates []string
	if raw != "" {
		candidates = strings.Split(raw, ",")
	} else {
		candidates = list
	}

	tagSet := make(map[string]struct{})
	tags := make([]string, 0, len(candidates))

	for _, t := range candidates {
		name := strings.TrimSpace(t)
		if name == "" {
			continue
		}
		if _, exists := tagSet[name]; exists {
			continue
		}
		tagSet[name] = struct{}{}
		tags = append(tags, name)
	}

	return tags
}
