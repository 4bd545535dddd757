package collector

import "testing"

func TestParseTopicURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		ok      bool
		slug    string
		topicID uint64
		postNum int
	}{
		{"标准链接", "https://linux.do/t/topic/123456", true, "topic", 123456, 0},
		{"带楼层号", "https://linux.do/t/my-topic/123456/7", true, "my-topic", 123456, 7},
		{"中文 slug", "https://linux.do/t/%E5%88%86%E4%BA%AB/99", true, "%E5%88%86%E4%BA%AB", 99, 0},
		{"带查询参数", "https://linux.do/t/topic/42?u=someone", true, "topic", 42, 0},
		{"http 协议", "http://linux.do/t/topic/123", false, "", 0, 0},
		{"其他站点", "https://meta.discourse.org/t/topic/123", false, "", 0, 0},
		{"缺少帖子 ID", "https://linux.do/t/topic", false, "", 0, 0},
		{"ID 非数字", "https://linux.do/t/topic/abc", false, "", 0, 0},
		{"空字符串", "", false, "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, ok := ParseTopicURL(tt.url)
			if ok != tt.ok {
				t.Fatalf("ParseTopicURL(%q) ok = %v, want %v", tt.url, ok, tt.ok)
			}
			if !ok {
				return
			}
			if ref.Slug != tt.slug || ref.TopicID != tt.topicID || ref.PostNum != tt.postNum {
				t.Errorf("ParseTopicURL(%q) = %+v, want slug=%q topicID=%d postNum=%d",
					tt.url, ref, tt.slug, tt.topicID, tt.postNum)
			}
		})
	}
}
