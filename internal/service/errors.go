package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrPostNotFound            = errors.New("帖子不存在")
	ErrCategoryNotFound        = errors.New("分类不存在")
	ErrTaskNotFound            = errors.New("采集任务不存在")
	ErrConflictingState        = errors.New("帖子状态不允许此操作")
	ErrInvalidAction           = errors.New("无效的审核动作")
	ErrInvalidSourceURL        = errors.New("链接格式不正确，仅支持 linux.do 帖子链接")
	ErrCollectInProgress       = errors.New("该帖子正在采集中")
	ErrCollectFetch            = errors.New("抓取源帖子失败")
	ErrOAuthStateMismatch      = errors.New("OAuth state 校验失败")
	ErrOAuthExchange           = errors.New("OAuth 授权码换取失败")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")
	UnauthorizedError          = errors.New("权限不足")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrPostNotFound:            NotFound,
	ErrCategoryNotFound:        NotFound,
	ErrTaskNotFound:            NotFound,
	ErrConflictingState:        Conflict,
	ErrInvalidAction:           BadRequest,
	ErrInvalidSourceURL:        BadRequest,
	ErrCollectInProgress:       Conflict,
	ErrCollectFetch:            InternalServerError,
	ErrOAuthStateMismatch:      Unauthorized,
	ErrOAuthExchange:           Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	UnauthorizedError:          Forbidden,
	UnExpectedError:            InternalServerError,
}
