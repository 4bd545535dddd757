package collector

import (
	"regexp"
	"strconv"
)

var topicURLPattern = regexp.MustCompile(`^https://linux\.do/t/([^/]+)/(\d+)(?:/(\d+))?`)

// TopicRef 从帖子链接中解析出的定位信息
type TopicRef struct {
	Slug    string
	TopicID uint64
	PostNum int
}

// ParseTopicURL 校验并解析一个 linux.do 帖子链接。
// 不匹配时返回 ok=false。
func ParseTopicURL(rawURL string) (TopicRef, bool) {
	matches := topicURLPattern.FindStringSubmatch(rawURL)
	if matches == nil {
		return TopicRef{}, false
	}

	topicID, err := strconv.ParseUint(matches[2], 10, 64)
	if err != nil {
		return TopicRef{}, false
	}

	ref := TopicRef{Slug: matches[1], TopicID: topicID}
	if matches[3] != "" {
		ref.PostNum, _ = strconv.Atoi(matches[3])
	}
	return ref, true
}
