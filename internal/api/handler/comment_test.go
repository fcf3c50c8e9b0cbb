package handler

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zhangyi-cn/toursim/config"
	"github.com/Zhangyi-cn/toursim/internal/model/dto"
	"github.com/Zhangyi-cn/toursim/internal/pkg/response"
	"github.com/Zhangyi-cn/toursim/internal/repository"
	"github.com/Zhangyi-cn/toursim/internal/service"
	"github.com/Zhangyi-cn/toursim/internal/testutil"
)

func setupCommentHandler(t *testing.T) (*CommentHandler, *testContext, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := &config.Config{}

	contentRepo := repository.NewContentRepository(db)
	interactionService := service.NewInteractionService(
		repository.NewInteractionRepository(db), contentRepo, cfg)
	commentService := service.NewCommentService(
		repository.NewCommentRepository(db),
		contentRepo,
		repository.NewUserRepository(db),
		interactionService,
		cfg,
	)
	handler := NewCommentHandler(commentService)

	ctx := &testContext{DB: db}
	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}
	return handler, ctx, cleanup
}

func TestCommentHandler_Create(t *testing.T) {
	handler, ctx, cleanup := setupCommentHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, ctx.DB)
	attraction := testutil.TestAttraction(t, ctx.DB)

	router := gin.New()
	router.POST("/comments", mockAuth(user.ID), handler.Create)

	w := performRequest(router, "POST", "/comments", dto.CreateCommentRequest{
		TargetType: "attraction",
		TargetID:   attraction.ID,
		Content:    "值得一去",
	})
	resp := parseResponse(t, w)
	assert.Equal(t, response.CodeSuccess, resp.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "值得一去", data["content"])
}

func TestCommentHandler_Create_TargetMissing(t *testing.T) {
	handler, ctx, cleanup := setupCommentHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, ctx.DB)

	router := gin.New()
	router.POST("/comments", mockAuth(user.ID), handler.Create)

	w := performRequest(router, "POST", "/comments", dto.CreateCommentRequest{
		TargetType: "attraction",
		TargetID:   99999,
		Content:    "x",
	})
	resp := parseResponse(t, w)
	assert.Equal(t, response.CodeResourceNotFound, resp.Code)
}

func TestCommentHandler_List(t *testing.T) {
	handler, ctx, cleanup := setupCommentHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, ctx.DB)
	attraction := testutil.TestAttraction(t, ctx.DB)
	parent := testutil.TestComment(t, ctx.DB, user.ID, "attraction", attraction.ID)
	testutil.TestComment(t, ctx.DB, user.ID, "attraction", attraction.ID, testutil.WithParent(parent.ID))

	router := gin.New()
	router.GET("/comments", handler.List)

	path := fmt.Sprintf("/comments?target_type=attraction&target_id=%d", attraction.ID)
	w := performRequest(router, "GET", path, nil)
	resp := parseResponse(t, w)
	assert.Equal(t, response.CodeSuccess, resp.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["total"])
}

func TestCommentHandler_List_BadTargetID(t *testing.T) {
	handler, _, cleanup := setupCommentHandler(t)
	defer cleanup()

	router := gin.New()
	router.GET("/comments", handler.List)

	w := performRequest(router, "GET", "/comments?target_type=attraction&target_id=abc", nil)
	resp := parseResponse(t, w)
	assert.Equal(t, response.CodeParamError, resp.Code)
}

func TestCommentHandler_Delete(t *testing.T) {
	handler, ctx, cleanup := setupCommentHandler(t)
	defer cleanup()

	owner := testutil.TestUser(t, ctx.DB)
	intruder := testutil.TestUser(t, ctx.DB)
	attraction := testutil.TestAttraction(t, ctx.DB)
	comment := testutil.TestComment(t, ctx.DB, owner.ID, "attraction", attraction.ID)

	// Someone else's comment is off limits
	router := gin.New()
	router.DELETE("/comments/:id", mockAuth(intruder.ID), handler.Delete)
	w := performRequest(router, "DELETE", fmt.Sprintf("/comments/%d", comment.ID), nil)
	resp := parseResponse(t, w)
	assert.Equal(t, response.CodePermissionDenied, resp.Code)

	// The owner can delete
	router = gin.New()
	router.DELETE("/comments/:id", mockAuth(owner.ID), handler.Delete)
	w = performRequest(router, "DELETE", fmt.Sprintf("/comments/%d", comment.ID), nil)
	resp = parseResponse(t, w)
	assert.Equal(t, response.CodeSuccess, resp.Code)

	w = performRequest(router, "DELETE", fmt.Sprintf("/comments/%d", comment.ID), nil)
	resp = parseResponse(t, w)
	assert.Equal(t, response.CodeResourceNotFound, resp.Code)
}
