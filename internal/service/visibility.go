package service

import (
	"Camellia/internal/model"
	"Camellia/internal/pkg/consts"
	"sort"
)

// CanView 观察者是否可见该帖子。
// 只有已发布且信任等级门槛不高于观察者等级的帖子对外可见。
func CanView(post *model.Post, viewerTrustLevel int) bool {
	return post.Status == consts.PostStatusPublished && post.MinTrustLevel <= viewerTrustLevel
}

// FilterVisible 过滤出观察者可见的帖子，按创建时间倒序返回。
// 不修改入参切片。
func FilterVisible(posts []*model.Post, viewerTrustLevel int) []*model.Post {
	visible := make([]*model.Post, 0, len(posts))
	for _, post := range posts {
		if CanView(post, viewerTrustLevel) {
			visible = append(visible, post)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		if !visible[i].CreatedAt.Equal(visible[j].CreatedAt) {
			return visible[i].CreatedAt.After(visible[j].CreatedAt)
		}
		// 同一时刻按 ID 保证顺序稳定
		return visible[i].ID < visible[j].ID
	})
	return visible
}
