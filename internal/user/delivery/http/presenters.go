package http

import (
	"time"

	"student-productivity/internal/user"
	"student-productivity/pkg/response"
)

// --- Request DTOs ---

type registerReq struct {
	Username string `json:"username" binding:"required,notblank,min=3,max=32,alphanum"`
	Email    string `json:"email"    binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,max=72"`
}

func (r registerReq) validate() error { return nil }

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

type loginReq struct {
	Login    string `json:"login"    binding:"required,notblank"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) validate() error { return nil }

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{Login: r.Login, Password: r.Password}
}

// --- Response DTOs ---

type userResp struct {
	ID        string            `json:"id"`
	Username  string            `json:"username"`
	Email     string            `json:"email"`
	CreatedAt response.DateTime `json:"created_at"`
	LastLogin response.DateTime `json:"last_login"`
}

func newUserResp(u user.User) userResp {
	resp := userResp{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: response.DateTime(u.CreatedAt),
	}
	if u.LastLogin != nil {
		resp.LastLogin = response.DateTime(*u.LastLogin)
	}
	return resp
}

type authResp struct {
	User        userResp  `json:"user"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (h *handler) newAuthResp(out user.AuthOutput) authResp {
	return authResp{
		User:        newUserResp(out.User),
		AccessToken: out.Token,
		TokenType:   "Bearer",
		ExpiresAt:   out.ExpiresAt,
	}
}

type meResp struct {
	User userResp `json:"user"`
}

func (h *handler) newMeResp(out user.DetailOutput) meResp {
	return meResp{User: newUserResp(out.User)}
}
