package test

import (
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionProvider(t *testing.T) {
	ginCtx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx := &gctx.Context{Context: ginCtx}
	p := &SessionProvider{}

	_, err := p.Get(ctx)
	assert.ErrorIs(t, err, errNoSession)

	ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: 123}))
	sess, err := p.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(123), sess.Claims().Uid)

	assert.NoError(t, p.UpdateClaims(ctx, session.Claims{Uid: 456}))
	assert.NoError(t, p.RenewAccessToken(ctx))
	assert.NoError(t, p.Destroy(ctx))
}
