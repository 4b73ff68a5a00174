package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"

	"internlink-gateway/internal/domain"
)

type LoginResult struct {
	Token   string      `json:"token"`
	User    domain.User `json:"user"`
	Message string      `json:"message"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var out LoginResult
	err := c.post(ctx, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	return out, err
}

// RegisterInput carries the signup form. Document is required by the backend
// for company/college roles; the web layer validates that before calling here.
type RegisterInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
	Role                 string

	DocumentName string
	Document     io.Reader
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":                  in.Name,
		"email":                 in.Email,
		"password":              in.Password,
		"password_confirmation": in.PasswordConfirmation,
		"role":                  in.Role,
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return domain.User{}, err
		}
	}
	if in.Document != nil {
		fw, err := mw.CreateFormFile("verification_document_path", in.DocumentName)
		if err != nil {
			return domain.User{}, err
		}
		if _, err := io.Copy(fw, in.Document); err != nil {
			return domain.User{}, fmt.Errorf("register: copy document: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return domain.User{}, err
	}

	var env dataEnvelope[domain.User]
	err := c.doMultipart(ctx, "/api/v1/auth/register", &buf, mw.FormDataContentType(), &env)
	return env.Data, err
}

// VerifyEmail follows the signed verification link: id/hash in the path,
// expires and signature preserved as query params exactly as mailed out.
func (c *Client) VerifyEmail(ctx context.Context, id, hash, expires, signature string) (string, error) {
	q := url.Values{}
	q.Set("expires", expires)
	q.Set("signature", signature)

	var out struct {
		Message string `json:"message"`
	}
	path := fmt.Sprintf("/api/v1/email/verify/%s/%s?%s", url.PathEscape(id), url.PathEscape(hash), q.Encode())
	err := c.get(ctx, path, &out)
	return out.Message, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/api/v1/auth/logout", nil, nil)
}
