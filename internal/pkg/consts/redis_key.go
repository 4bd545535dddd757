package consts

const (
	TokenBlacklistKey = "auth:token:blacklist:"
	OAuthStateKey     = "auth:oauth:state:"
	TagCountKey       = "tag:count:"
	TagDirtyKey       = "tag:dirty"
	PostViewKey       = "post:view:"
)

const (
	CollectLock = "lock:collect:topic:"
)
