package schemas

type AuthorizeURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

type WeChatCallbackRequest struct {
	Code  string `json:"code"`
	State string `json:"state"`
}

type QRSessionResponse struct {
	SceneID   string `json:"sceneId"`
	Status    string `json:"status"`
	ExpiresIn int    `json:"expiresIn"`
}

type QRStatusResponse struct {
	Status string         `json:"status"`
	Token  *TokenResponse `json:"token,omitempty"`
}

type QRScanRequest struct {
	OpenID string `json:"openId"`
}

type JSSDKConfigRequest struct {
	URL string `json:"url"`
}

type JSSDKConfigResponse struct {
	AppID     string `json:"appId"`
	Timestamp int64  `json:"timestamp"`
	NonceStr  string `json:"nonceStr"`
	Signature string `json:"signature"`
}
