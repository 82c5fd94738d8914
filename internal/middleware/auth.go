// internal/middleware/auth.go
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go_5_level_reader/internal/model"
	"go_5_level_reader/internal/webutil"
)

type adminSubjectKey struct{}

// AdminAuthMiddleware は管理APIを共有シークレットで署名されたJWTで保護します。
// Authorization: Bearer <token> （HS256のみ受理）
func AdminAuthMiddleware(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			if secret == "" {
				// シークレット未設定時は全拒否（設定ミスを静かに通さない）
				logger.Error("Admin auth rejected: auth secret is not configured")
				appErr := model.NewAppError("AUTH_NOT_CONFIGURED", "管理APIが構成されていません。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			authHeader := r.Header.Get("Authorization")
			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || tokenString == "" {
				logger.Warn("Admin auth failed: missing bearer token")
				appErr := model.NewAppError("UNAUTHORIZED", "認証トークンがありません。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				logger.Warn("Admin auth failed: invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			subject := ""
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				subject, _ = claims.GetSubject()
			}
			ctx := context.WithValue(r.Context(), adminSubjectKey{}, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminSubjectFromContext は認証済み管理者のsubjectを返します
func GetAdminSubjectFromContext(ctx context.Context) (string, error) {
	value, ok := ctx.Value(adminSubjectKey{}).(string)
	if !ok {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "コンテキストから認証情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return value, nil
}

// MintAdminToken は運用ツール用に管理JWTを発行します
func MintAdminToken(secret, subject string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
