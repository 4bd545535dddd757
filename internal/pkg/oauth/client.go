package oauth

import (
	"Camellia/internal/api/config"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// UserInfo linux.do 社区返回的用户信息
type UserInfo struct {
	ID         uint64 `json:"id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	AvatarURL  string `json:"avatar_url"`
	TrustLevel int    `json:"trust_level"`
	Active     bool   `json:"active"`
	Silenced   bool   `json:"silenced"`
	IsStaff    bool   `json:"is_staff"`
	Email      string `json:"email"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Error       string `json:"error"`
}

// Client linux.do OAuth2 授权客户端
type Client struct {
	httpClient *resty.Client
}

func NewClient() *Client {
	client := resty.New().
		SetTimeout(15 * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{httpClient: client}
}

// AuthorizeURL 构造授权跳转地址，state 用于回调校验
func (c *Client) AuthorizeURL(state string) string {
	cfg := config.Cfg.OAuth
	query := url.Values{}
	query.Set("client_id", cfg.ClientID)
	query.Set("response_type", "code")
	query.Set("redirect_uri", cfg.RedirectURL)
	query.Set("state", state)
	return fmt.Sprintf("%s?%s", cfg.AuthorizeURL, query.Encode())
}

// ExchangeCode 用授权码换取 access token
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	cfg := config.Cfg.OAuth

	var token tokenResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "authorization_code",
			"code":          code,
			"client_id":     cfg.ClientID,
			"client_secret": cfg.ClientSecret,
			"redirect_uri":  cfg.RedirectURL,
		}).
		SetResult(&token).
		Post(cfg.TokenURL)
	if err != nil {
		return "", errors.Wrap(err, "请求 token 接口失败")
	}
	if resp.IsError() || token.Error != "" || token.AccessToken == "" {
		return "", errors.Errorf("token 接口返回异常: status=%d error=%s", resp.StatusCode(), token.Error)
	}

	return token.AccessToken, nil
}

// FetchUserInfo 用 access token 拉取用户信息
func (c *Client) FetchUserInfo(ctx context.Context, accessToken string) (*UserInfo, error) {
	var info UserInfo
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&info).
		Get(config.Cfg.OAuth.UserInfoURL)
	if err != nil {
		return nil, errors.Wrap(err, "请求用户信息接口失败")
	}
	if resp.IsError() {
		return nil, errors.Errorf("用户信息接口返回异常: status=%d", resp.StatusCode())
	}
	if info.Username == "" {
		return nil, errors.New("用户信息缺少 username 字段")
	}

	return &info, nil
}
