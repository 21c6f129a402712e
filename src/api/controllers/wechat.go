package controllers

import (
	"context"
	"errors"

	"timevalue/src/schemas"
	"timevalue/src/services"
	"timevalue/src/utils"

	"github.com/google/uuid"
)

func (c *Controller) WeChatAuthorizeURL(_ context.Context) *schemas.AuthorizeURLResponse {
	state := uuid.NewString()
	return &schemas.AuthorizeURLResponse{
		URL:   c.WeChat.BuildAuthorizeURL(state),
		State: state,
	}
}

// WeChatCallback completes the OAuth flow: exchanges the code, pulls the
// profile and logs the open id in, creating the account on first visit.
func (c *Controller) WeChatCallback(ctx context.Context, req schemas.WeChatCallbackRequest) (*schemas.TokenResponse, error) {
	if req.Code == "" {
		return nil, utils.BadRequest("missing oauth code")
	}

	oauthToken, err := c.WeChat.ExchangeCode(ctx, req.Code)
	if err != nil {
		return nil, utils.Unauthorized(err.Error())
	}

	var nickname, avatarURL string
	if profile, err := c.WeChat.GetUserInfo(ctx, oauthToken.AccessToken, oauthToken.OpenID); err == nil {
		nickname = profile.Nickname
		avatarURL = profile.HeadImgURL
	}

	return c.Auth.LoginWithOpenID(ctx, oauthToken.OpenID, nickname, avatarURL)
}

func (c *Controller) WeChatJSSDKConfig(ctx context.Context, req schemas.JSSDKConfigRequest) (*schemas.JSSDKConfigResponse, error) {
	if req.URL == "" {
		return nil, utils.BadRequest("missing page url")
	}
	signature, err := c.WeChat.SignJSSDK(ctx, req.URL)
	if err != nil {
		return nil, err
	}
	return &schemas.JSSDKConfigResponse{
		AppID:     signature.AppID,
		Timestamp: signature.Timestamp,
		NonceStr:  signature.NonceStr,
		Signature: signature.Signature,
	}, nil
}

func (c *Controller) CreateQRSession(ctx context.Context) (*schemas.QRSessionResponse, error) {
	session, expiresIn, err := c.QRLogin.CreateSession(ctx)
	if err != nil {
		return nil, err
	}
	return &schemas.QRSessionResponse{
		SceneID:   session.SceneID,
		Status:    session.Status,
		ExpiresIn: expiresIn,
	}, nil
}

// GetQRStatus is the polling endpoint behind the web login page. An expired
// or unknown scene reads as an expired status rather than an error so the
// poller can stop cleanly. Confirmation carries the issued token.
func (c *Controller) GetQRStatus(ctx context.Context, sceneID string) (*schemas.QRStatusResponse, error) {
	session, err := c.QRLogin.GetSession(ctx, sceneID)
	if errors.Is(err, services.ErrSessionExpired) {
		return &schemas.QRStatusResponse{Status: services.QRStatusExpired}, nil
	}
	if err != nil {
		return nil, err
	}

	response := &schemas.QRStatusResponse{Status: session.Status}
	if session.Status == services.QRStatusConfirmed {
		token, err := c.Auth.LoginWithOpenID(ctx, session.OpenID, "", "")
		if err != nil {
			return nil, err
		}
		response.Token = token
	}
	return response, nil
}

func (c *Controller) ScanQRSession(ctx context.Context, sceneID string, req schemas.QRScanRequest) error {
	if req.OpenID == "" {
		return utils.BadRequest("missing open id")
	}
	return c.translateQRError(c.QRLogin.MarkScanned(ctx, sceneID, req.OpenID))
}

func (c *Controller) ConfirmQRSession(ctx context.Context, sceneID string) error {
	_, err := c.QRLogin.Confirm(ctx, sceneID)
	return c.translateQRError(err)
}

func (c *Controller) CancelQRSession(ctx context.Context, sceneID string) error {
	return c.translateQRError(c.QRLogin.Cancel(ctx, sceneID))
}

func (c *Controller) translateQRError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, services.ErrSessionExpired):
		return utils.NotFound("qr session expired")
	case errors.Is(err, services.ErrInvalidTransition):
		return utils.UnprocessableEntity(err.Error())
	default:
		return err
	}
}
