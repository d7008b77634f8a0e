package auth

import (
	"fmt"

	"sober-october-system/config"
	"sober-october-system/internal/global/httpclient"
)

// googleTokenResp Google token 端点响应
type googleTokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// googleUserInfo Google userinfo 端点响应
type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// exchangeCodeForToken 用授权码换取 Google access token
func exchangeCodeForToken(code, redirectURI string) (*googleTokenResp, error) {
	cfg := config.Get().Google
	var token googleTokenResp
	resp, err := httpclient.Client.R().
		SetFormData(map[string]string{
			"code":          code,
			"client_id":     cfg.ClientID,
			"client_secret": cfg.ClientSecret,
			"redirect_uri":  redirectURI,
			"grant_type":    "authorization_code",
		}).
		SetResult(&token).
		Post(cfg.TokenURL)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("google token 端点返回 %d: %s", resp.StatusCode(), resp.String())
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("google token 端点未返回 access_token")
	}
	return &token, nil
}

// fetchGoogleUserInfo 用 access token 拉取 Google 用户信息
func fetchGoogleUserInfo(accessToken string) (*googleUserInfo, error) {
	cfg := config.Get().Google
	var info googleUserInfo
	resp, err := httpclient.Client.R().
		SetAuthToken(accessToken).
		SetResult(&info).
		Get(cfg.UserInfoURL)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("google userinfo 端点返回 %d: %s", resp.StatusCode(), resp.String())
	}
	if info.ID == "" || info.Email == "" {
		return nil, fmt.Errorf("google userinfo 缺少必要字段")
	}
	return &info, nil
}
