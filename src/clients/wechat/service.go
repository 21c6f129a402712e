package wechat

import (
	"context"
	"crypto/sha1"
	"fmt"
	"net/url"
	"time"

	"timevalue/src/config"
	"timevalue/src/utils"
	"timevalue/src/utils/requests"

	"github.com/google/uuid"
)

const (
	defaultAuthBaseURL = "https://open.weixin.qq.com"
	defaultAPIBaseURL  = "https://api.weixin.qq.com"
)

type ServiceI interface {
	BuildAuthorizeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*OAuthToken, error)
	GetUserInfo(ctx context.Context, accessToken, openID string) (*UserProfile, error)
	SignJSSDK(ctx context.Context, pageURL string) (*JSSDKSignature, error)
}

// Service wraps the WeChat open platform endpoints the app depends on:
// the OAuth web login flow and the JS-SDK signature for in-app pages.
// The app access token and jsapi ticket are cached for their server-side
// validity window minus a safety margin.
type Service struct {
	api         *requests.ExternalAPIService
	cfg         config.WeChatConfig
	authBaseURL string
	apiBaseURL  string
	tokenCache  *utils.Cache[string]
	ticketCache *utils.Cache[string]
}

func NewService(api *requests.ExternalAPIService, cfg config.WeChatConfig) *Service {
	authBase := cfg.AuthBaseURL
	if authBase == "" {
		authBase = defaultAuthBaseURL
	}
	apiBase := cfg.APIBaseURL
	if apiBase == "" {
		apiBase = defaultAPIBaseURL
	}
	return &Service{
		api:         api,
		cfg:         cfg,
		authBaseURL: authBase,
		apiBaseURL:  apiBase,
		tokenCache:  utils.NewCache[string](),
		ticketCache: utils.NewCache[string](),
	}
}

// BuildAuthorizeURL assembles the OAuth authorize redirect. The state is
// round-tripped by WeChat and checked on callback.
func (s *Service) BuildAuthorizeURL(state string) string {
	params := url.Values{}
	params.Set("appid", s.cfg.AppID)
	params.Set("redirect_uri", s.cfg.RedirectURI)
	params.Set("response_type", "code")
	params.Set("scope", "snsapi_userinfo")
	params.Set("state", state)
	return s.authBaseURL + "/connect/oauth2/authorize?" + params.Encode() + "#wechat_redirect"
}

// ExchangeCode trades the callback code for an OAuth token bound to the
// visiting user's open id.
func (s *Service) ExchangeCode(ctx context.Context, code string) (*OAuthToken, error) {
	params := url.Values{}
	params.Set("appid", s.cfg.AppID)
	params.Set("secret", s.cfg.AppSecret)
	params.Set("code", code)
	params.Set("grant_type", "authorization_code")

	var token OAuthToken
	if err := s.api.GetJSON(ctx, s.apiBaseURL+"/sns/oauth2/access_token", params, &token); err != nil {
		return nil, err
	}
	if token.ErrCode != 0 {
		return nil, fmt.Errorf("wechat oauth exchange failed: %d %s", token.ErrCode, token.ErrMsg)
	}
	return &token, nil
}

func (s *Service) GetUserInfo(ctx context.Context, accessToken, openID string) (*UserProfile, error) {
	params := url.Values{}
	params.Set("access_token", accessToken)
	params.Set("openid", openID)
	params.Set("lang", "zh_CN")

	var profile UserProfile
	if err := s.api.GetJSON(ctx, s.apiBaseURL+"/sns/userinfo", params, &profile); err != nil {
		return nil, err
	}
	if profile.ErrCode != 0 {
		return nil, fmt.Errorf("wechat userinfo failed: %d %s", profile.ErrCode, profile.ErrMsg)
	}
	return &profile, nil
}

// appAccessToken is the server credential token, distinct from per-user OAuth
// tokens. WeChat invalidates the previous one on refresh, so it is cached.
func (s *Service) appAccessToken(ctx context.Context) (string, error) {
	if token, ok := s.tokenCache.Get(); ok {
		return token, nil
	}

	params := url.Values{}
	params.Set("grant_type", "client_credential")
	params.Set("appid", s.cfg.AppID)
	params.Set("secret", s.cfg.AppSecret)

	var resp accessTokenResponse
	if err := s.api.GetJSON(ctx, s.apiBaseURL+"/cgi-bin/token", params, &resp); err != nil {
		return "", err
	}
	if resp.ErrCode != 0 {
		return "", fmt.Errorf("wechat access token failed: %d %s", resp.ErrCode, resp.ErrMsg)
	}

	s.tokenCache.Set(resp.AccessToken, time.Duration(resp.ExpiresIn-300)*time.Second)
	return resp.AccessToken, nil
}

func (s *Service) jsapiTicket(ctx context.Context) (string, error) {
	if ticket, ok := s.ticketCache.Get(); ok {
		return ticket, nil
	}

	token, err := s.appAccessToken(ctx)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("access_token", token)
	params.Set("type", "jsapi")

	var resp jsapiTicketResponse
	if err := s.api.GetJSON(ctx, s.apiBaseURL+"/cgi-bin/ticket/getticket", params, &resp); err != nil {
		return "", err
	}
	if resp.ErrCode != 0 {
		return "", fmt.Errorf("wechat jsapi ticket failed: %d %s", resp.ErrCode, resp.ErrMsg)
	}

	s.ticketCache.Set(resp.Ticket, time.Duration(resp.ExpiresIn-300)*time.Second)
	return resp.Ticket, nil
}

// SignJSSDK produces the wx.config signature for a page URL. The string to
// sign concatenates the sorted fields exactly as the platform documents.
func (s *Service) SignJSSDK(ctx context.Context, pageURL string) (*JSSDKSignature, error) {
	ticket, err := s.jsapiTicket(ctx)
	if err != nil {
		return nil, err
	}

	nonce := uuid.NewString()
	timestamp := time.Now().Unix()
	raw := fmt.Sprintf("jsapi_ticket=%s&noncestr=%s&timestamp=%d&url=%s", ticket, nonce, timestamp, pageURL)
	signature := fmt.Sprintf("%x", sha1.Sum([]byte(raw)))

	return &JSSDKSignature{
		AppID:     s.cfg.AppID,
		Timestamp: timestamp,
		NonceStr:  nonce,
		Signature: signature,
	}, nil
}
