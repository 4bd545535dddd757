package collector

import (
	"Camellia/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// TopicPost 抓取到的源帖子内容
type TopicPost struct {
	TopicID    uint64
	Title      string
	CookedHTML string
	Author     TopicAuthor
	Tags       []string
	Images     []TopicImage
	Views      int
	LikeCount  int
	ReplyCount int
	CreatedAt  time.Time
}

// TopicAuthor 源帖子作者
type TopicAuthor struct {
	ID         uint64
	Username   string
	Name       string
	AvatarURL  string
	TrustLevel int
	IsStaff    bool
	BadgeCount int
}

// TopicImage 正文中的图片
type TopicImage struct {
	URL          string
	ThumbnailURL string
	Alt          string
	Width        int
	Height       int
}

type topicJSON struct {
	ID         uint64   `json:"id"`
	Title      string   `json:"title"`
	Tags       []string `json:"tags"`
	Views      int      `json:"views"`
	LikeCount  int      `json:"like_count"`
	ReplyCount int      `json:"reply_count"`
	CreatedAt  string   `json:"created_at"`
	PostStream struct {
		Posts []struct {
			ID             uint64 `json:"id"`
			UserID         uint64 `json:"user_id"`
			Username       string `json:"username"`
			Name           string `json:"name"`
			AvatarTemplate string `json:"avatar_template"`
			TrustLevel     int    `json:"trust_level"`
			Staff          bool   `json:"staff"`
			BadgesGranted  int    `json:"badges_granted"`
			Cooked         string `json:"cooked"`
			PostNumber     int    `json:"post_number"`
		} `json:"posts"`
	} `json:"post_stream"`
}

// Fetcher linux.do 帖子抓取器
type Fetcher struct {
	httpClient *resty.Client
}

func NewFetcher() *Fetcher {
	cfg := config.Cfg.Collector
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(time.Second)

	return &Fetcher{httpClient: client}
}

// FetchTopic 拉取帖子的 JSON 表示并提取首楼内容。
// JSON 接口不可用时回退到抓取 HTML 页面做正文提取。
func (f *Fetcher) FetchTopic(ctx context.Context, ref TopicRef) (*TopicPost, error) {
	var topic topicJSON
	resp, err := f.httpClient.R().
		SetContext(ctx).
		SetResult(&topic).
		Get(fmt.Sprintf("/t/%d.json", ref.TopicID))
	if err != nil {
		return nil, errors.Wrap(err, "请求帖子 JSON 接口失败")
	}
	if resp.IsError() || len(topic.PostStream.Posts) == 0 {
		log.WarnContext(ctx, "帖子 JSON 接口不可用，回退到页面抓取",
			"topic_id", ref.TopicID, "status", resp.StatusCode())
		return f.fetchByReadability(ctx, ref)
	}

	first := topic.PostStream.Posts[0]
	post := &TopicPost{
		TopicID:    topic.ID,
		Title:      topic.Title,
		CookedHTML: first.Cooked,
		Tags:       topic.Tags,
		Views:      topic.Views,
		LikeCount:  topic.LikeCount,
		ReplyCount: topic.ReplyCount,
		Author: TopicAuthor{
			ID:         first.UserID,
			Username:   first.Username,
			Name:       first.Name,
			AvatarURL:  expandAvatar(first.AvatarTemplate),
			TrustLevel: first.TrustLevel,
			IsStaff:    first.Staff,
			BadgeCount: first.BadgesGranted,
		},
	}
	if t, err := time.Parse(time.RFC3339, topic.CreatedAt); err == nil {
		post.CreatedAt = t
	}
	post.Images = ExtractImages(first.Cooked)

	return post, nil
}

// fetchByReadability 抓取 HTML 页面并用正文提取算法兜底
func (f *Fetcher) fetchByReadability(ctx context.Context, ref TopicRef) (*TopicPost, error) {
	pageURL := fmt.Sprintf("%s/t/%s/%d", config.Cfg.Collector.BaseURL, ref.Slug, ref.TopicID)
	resp, err := f.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html").
		Get(pageURL)
	if err != nil {
		return nil, errors.Wrap(err, "请求帖子页面失败")
	}
	if resp.IsError() {
		return nil, errors.Errorf("帖子页面返回异常: status=%d", resp.StatusCode())
	}

	parsedURL, _ := url.Parse(pageURL)
	article, err := readability.FromReader(strings.NewReader(resp.String()), parsedURL)
	if err != nil {
		return nil, errors.Wrap(err, "正文提取失败")
	}

	return &TopicPost{
		TopicID:    ref.TopicID,
		Title:      article.Title,
		CookedHTML: article.Content,
		Images:     ExtractImages(article.Content),
		CreatedAt:  time.Now(),
	}, nil
}

// ExtractImages 从正文 HTML 中提取图片
func ExtractImages(cookedHTML string) []TopicImage {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(cookedHTML))
	if err != nil {
		return nil
	}

	var images []TopicImage
	seen := make(map[string]struct{})
	doc.Find("img").Each(func(i int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if src == "" || strings.Contains(src, "emoji") {
			return
		}
		if _, ok := seen[src]; ok {
			return
		}
		seen[src] = struct{}{}

		img := TopicImage{URL: src}
		img.Alt, _ = sel.Attr("alt")
		if w, ok := sel.Attr("width"); ok {
			fmt.Sscanf(w, "%d", &img.Width)
		}
		if h, ok := sel.Attr("height"); ok {
			fmt.Sscanf(h, "%d", &img.Height)
		}
		// Discourse 缩略图链接挂在外层 lightbox 锚点上
		if parent := sel.ParentsFiltered("a.lightbox"); parent.Length() > 0 {
			if full, ok := parent.Attr("href"); ok {
				img.ThumbnailURL = src
				img.URL = full
			}
		}
		images = append(images, img)
	})

	return images
}

func expandAvatar(template string) string {
	if template == "" {
		return ""
	}
	avatar := strings.ReplaceAll(template, "{size}", "144")
	if strings.HasPrefix(avatar, "/") {
		return config.Cfg.Collector.BaseURL + avatar
	}
	return avatar
}
