package test

import (
	"errors"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var errNoSession = errors.New("测试环境没有设置 session")

// 初始化一下 session
func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

var _ session.Provider = &SessionProvider{}

// SessionProvider 只从 gin 的上下文里面读写内存 session
type SessionProvider struct {
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	sess := session.NewMemorySession(session.Claims{Uid: uid, Data: jwtData})
	for k, v := range sessData {
		_ = sess.Set(ctx, k, v)
	}
	ctx.Set(session.CtxSessionKey, sess)
	return sess, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, ok := ctx.Get(session.CtxSessionKey)
	if !ok {
		return nil, errNoSession
	}
	sess, ok := val.(session.Session)
	if !ok {
		return nil, errNoSession
	}
	return sess, nil
}

func (s *SessionProvider) Destroy(ctx *gctx.Context) error {
	ctx.Set(session.CtxSessionKey, nil)
	return nil
}

func (s *SessionProvider) UpdateClaims(ctx *gctx.Context, claims session.Claims) error {
	ctx.Set(session.CtxSessionKey, session.NewMemorySession(claims))
	return nil
}

func (s *SessionProvider) RenewAccessToken(ctx *gctx.Context) error {
	return nil
}

// SessionMiddleware 每个请求都用 uid() 的返回值登录
func SessionMiddleware(uid func() int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid: uid(),
		}))
	}
}
