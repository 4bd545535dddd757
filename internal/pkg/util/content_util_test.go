package util

import (
	"strings"
	"testing"
)

func TestStripTags(t *testing.T) {
	got := StripTags(`<p>你好 <b>世界</b></p>`)
	if got != "你好 世界" {
		t.Errorf("StripTags() = %q, want %q", got, "你好 世界")
	}

	if got = StripTags("纯文本"); got != "纯文本" {
		t.Errorf("StripTags() = %q, want %q", got, "纯文本")
	}
}

func TestExtractExcerpt(t *testing.T) {
	short := ExtractExcerpt("<p>短内容</p>", 200)
	if short != "短内容" {
		t.Errorf("ExtractExcerpt() = %q, want %q", short, "短内容")
	}

	long := strings.Repeat("测", 300)
	got := ExtractExcerpt(long, 200)
	if len([]rune(got)) != 203 {
		t.Errorf("ExtractExcerpt() rune length = %d, want 203", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("ExtractExcerpt() = %q, want trailing ellipsis", got)
	}
	if !strings.HasPrefix(got, strings.Repeat("测", 200)) {
		t.Errorf("ExtractExcerpt() truncated at wrong boundary")
	}
}

func TestExtractExcerptExactLimit(t *testing.T) {
	exact := strings.Repeat("a", 200)
	if got := ExtractExcerpt(exact, 200); got != exact {
		t.Errorf("ExtractExcerpt() on exact-length input should not add ellipsis, got %q", got)
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		list []string
		want []string
	}{
		{"逗号分隔", "美妆, 穿搭 ,美妆", nil, []string{"美妆", "穿搭"}},
		{"列表输入", "", []string{"A", " B ", "", "A"}, []string{"A", "B"}},
		{"保留大小写", "Tag,tag", nil, []string{"Tag", "tag"}},
		{"全空", "", nil, []string{}},
		{"字符串优先", "x,y", []string{"z"}, []string{"x", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTags(tt.raw, tt.list)
			if len(got) != len(tt.want) {
				t.Fatalf("NormalizeTags() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("NormalizeTags()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalizePage(t *testing.T) {
	if p, s := NormalizePage(0, 0); p != 1 || s != 20 {
		t.Errorf("NormalizePage(0, 0) = (%d, %d), want (1, 20)", p, s)
	}
	if p, s := NormalizePage(3, 500); p != 3 || s != 100 {
		t.Errorf("NormalizePage(3, 500) = (%d, %d), want (3, 100)", p, s)
	}
}

func TestClampTrustLevel(t *testing.T) {
	if got := ClampTrustLevel(-1, 0, 4); got != 0 {
		t.Errorf("ClampTrustLevel(-1) = %d, want 0", got)
	}
	if got := ClampTrustLevel(9, 0, 4); got != 4 {
		t.Errorf("ClampTrustLevel(9) = %d, want 4", got)
	}
	if got := ClampTrustLevel(2, 0, 4); got != 2 {
		t.Errorf("ClampTrustLevel(2) = %d, want 2", got)
	}
}
