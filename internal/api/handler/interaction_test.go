package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Zhangyi-cn/toursim/config"
	"github.com/Zhangyi-cn/toursim/internal/api/middleware"
	"github.com/Zhangyi-cn/toursim/internal/model/dto"
	"github.com/Zhangyi-cn/toursim/internal/pkg/response"
	"github.com/Zhangyi-cn/toursim/internal/repository"
	"github.com/Zhangyi-cn/toursim/internal/service"
	"github.com/Zhangyi-cn/toursim/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testContext 本地测试上下文
type testContext struct {
	DB *gorm.DB
}

func setupInteractionHandler(t *testing.T) (*InteractionHandler, *testContext, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := &config.Config{}

	interactionService := service.NewInteractionService(
		repository.NewInteractionRepository(db),
		repository.NewContentRepository(db),
		cfg,
	)
	handler := NewInteractionHandler(interactionService)

	ctx := &testContext{DB: db}
	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}
	return handler, ctx, cleanup
}

// mockAuth 模拟认证中间件
func mockAuth(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp
}

func TestInteractionHandler_ToggleLike(t *testing.T) {
	handler, ctx, cleanup := setupInteractionHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, ctx.DB)
	attraction := testutil.TestAttraction(t, ctx.DB)

	router := gin.New()
	router.POST("/interactions/likes", mockAuth(user.ID), handler.ToggleLike)

	body := dto.ToggleRequest{TargetID: attraction.ID, TargetType: "attraction"}

	// Toggle on
	w := performRequest(router, "POST", "/interactions/likes", body)
	resp := parseResponse(t, w)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.CodeSuccess, resp.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["is_liked"])
	assert.Equal(t, float64(1), data["count"])

	// Toggle off
	w = performRequest(router, "POST", "/interactions/likes", body)
	resp = parseResponse(t, w)
	data, ok = resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, data["is_liked"])
	assert.Equal(t, float64(0), data["count"])
}

func TestInteractionHandler_ToggleLike_InvalidBody(t *testing.T) {
	handler, ctx, cleanup := setupInteractionHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, ctx.DB)

	router := gin.New()
	router.POST("/interactions/likes", mockAuth(user.ID), handler.ToggleLike)

	w := performRequest(router, "POST", "/interactions/likes", map[string]interface{}{"target_id": 1})
	resp := parseResponse(t, w)
	assert.Equal(t, response.CodeParamError, resp.Code)
}

func TestInteractionHandler_ToggleLike_TargetNotFound(t *testing.T) {
	handler, ctx, cleanup := setupInteractionHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, ctx.DB)

	router := gin.New()
	router.POST("/interactions/likes", mockAuth(user.ID), handler.ToggleLike)

	w := performRequest(router, "POST", "/interactions/likes",
		dto.ToggleRequest{TargetID: 99999, TargetType: "attraction"})
	resp := parseResponse(t, w)
	assert.Equal(t, response.CodeResourceNotFound, resp.Code)
}

func TestInteractionHandler_ToggleCollection_UnsupportedType(t *testing.T) {
	handler, ctx, cleanup := setupInteractionHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, ctx.DB)
	attraction := testutil.TestAttraction(t, ctx.DB)
	comment := testutil.TestComment(t, ctx.DB, user.ID, "attraction", attraction.ID)

	router := gin.New()
	router.POST("/interactions/collections", mockAuth(user.ID), handler.ToggleCollection)

	// Comments cannot be collected
	w := performRequest(router, "POST", "/interactions/collections",
		dto.ToggleRequest{TargetID: comment.ID, TargetType: "comment"})
	resp := parseResponse(t, w)
	assert.Equal(t, response.CodeParamError, resp.Code)
}

func TestInteractionHandler_LikeStatus(t *testing.T) {
	handler, ctx, cleanup := setupInteractionHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, ctx.DB)
	a1 := testutil.TestAttraction(t, ctx.DB)
	a2 := testutil.TestAttraction(t, ctx.DB)

	router := gin.New()
	router.POST("/interactions/likes", mockAuth(user.ID), handler.ToggleLike)
	router.POST("/interactions/likes/status", mockAuth(user.ID), handler.LikeStatus)

	performRequest(router, "POST", "/interactions/likes",
		dto.ToggleRequest{TargetID: a1.ID, TargetType: "attraction"})

	w := performRequest(router, "POST", "/interactions/likes/status",
		dto.BatchStatusRequest{TargetType: "attraction", TargetIDs: []int64{a1.ID, a2.ID}})
	resp := parseResponse(t, w)
	assert.Equal(t, response.CodeSuccess, resp.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	status, ok := data["status"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, status, 2)
}

func TestInteractionHandler_MyCollections(t *testing.T) {
	handler, ctx, cleanup := setupInteractionHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, ctx.DB)
	a1 := testutil.TestAttraction(t, ctx.DB)
	a2 := testutil.TestAttraction(t, ctx.DB)

	router := gin.New()
	router.POST("/interactions/collections", mockAuth(user.ID), handler.ToggleCollection)
	router.GET("/user/collections", mockAuth(user.ID), handler.MyCollections)

	performRequest(router, "POST", "/interactions/collections",
		dto.ToggleRequest{TargetID: a1.ID, TargetType: "attraction"})
	performRequest(router, "POST", "/interactions/collections",
		dto.ToggleRequest{TargetID: a2.ID, TargetType: "attraction"})

	w := performRequest(router, "GET", "/user/collections?target_type=attraction&page=1&page_size=10", nil)
	resp := parseResponse(t, w)
	assert.Equal(t, response.CodeSuccess, resp.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), data["total"])
}
