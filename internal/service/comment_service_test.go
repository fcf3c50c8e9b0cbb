package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Zhangyi-cn/toursim/config"
	"github.com/Zhangyi-cn/toursim/internal/model"
	"github.com/Zhangyi-cn/toursim/internal/model/dto"
	"github.com/Zhangyi-cn/toursim/internal/repository"
	"github.com/Zhangyi-cn/toursim/internal/testutil"
)

func newCommentService(db *gorm.DB) *CommentService {
	cfg := &config.Config{}
	return NewCommentService(
		repository.NewCommentRepository(db),
		repository.NewContentRepository(db),
		repository.NewUserRepository(db),
		NewInteractionService(repository.NewInteractionRepository(db), repository.NewContentRepository(db), cfg),
		cfg,
	)
}

func TestCommentService_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := newCommentService(db)
	user := testutil.TestUser(t, db)
	attraction := testutil.TestAttraction(t, db)

	item, err := svc.Create(user.ID, &dto.CreateCommentRequest{
		TargetType: "attraction",
		TargetID:   attraction.ID,
		Content:    "风景不错",
	})
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, "风景不错", item.Content)
	require.NotNil(t, item.User)
	assert.Equal(t, user.ID, item.User.ID)

	// Comment counter on the target is bumped
	var got model.Attraction
	require.NoError(t, db.First(&got, attraction.ID).Error)
	assert.Equal(t, int64(1), got.CommentCount)
}

func TestCommentService_Create_TargetMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := newCommentService(db)
	user := testutil.TestUser(t, db)

	_, err := svc.Create(user.ID, &dto.CreateCommentRequest{
		TargetType: "attraction",
		TargetID:   99999,
		Content:    "hello",
	})
	assert.ErrorIs(t, err, ErrTargetNotFound)

	_, err = svc.Create(user.ID, &dto.CreateCommentRequest{
		TargetType: "comment",
		TargetID:   1,
		Content:    "hello",
	})
	assert.ErrorIs(t, err, ErrInvalidTargetType)
}

func TestCommentService_Create_ReplyFlattened(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := newCommentService(db)
	user := testutil.TestUser(t, db)
	attraction := testutil.TestAttraction(t, db)

	parent, err := svc.Create(user.ID, &dto.CreateCommentRequest{
		TargetType: "attraction", TargetID: attraction.ID, Content: "一级评论",
	})
	require.NoError(t, err)

	reply, err := svc.Create(user.ID, &dto.CreateCommentRequest{
		TargetType: "attraction", TargetID: attraction.ID, Content: "回复", ParentID: &parent.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)

	// Replying to a reply hangs off the original top-level comment
	nested, err := svc.Create(user.ID, &dto.CreateCommentRequest{
		TargetType: "attraction", TargetID: attraction.ID, Content: "回复的回复", ParentID: &reply.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, nested.ParentID)
	assert.Equal(t, parent.ID, *nested.ParentID)
}

func TestCommentService_Create_ParentValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := newCommentService(db)
	user := testutil.TestUser(t, db)
	a1 := testutil.TestAttraction(t, db)
	a2 := testutil.TestAttraction(t, db)

	parent := testutil.TestComment(t, db, user.ID, "attraction", a1.ID)

	missing := int64(99999)
	_, err := svc.Create(user.ID, &dto.CreateCommentRequest{
		TargetType: "attraction", TargetID: a1.ID, Content: "x", ParentID: &missing,
	})
	assert.ErrorIs(t, err, ErrParentNotFound)

	// Parent belongs to a different target
	_, err = svc.Create(user.ID, &dto.CreateCommentRequest{
		TargetType: "attraction", TargetID: a2.ID, Content: "x", ParentID: &parent.ID,
	})
	assert.ErrorIs(t, err, ErrParentMismatch)
}

func TestCommentService_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := newCommentService(db)
	user := testutil.TestUser(t, db)
	attraction := testutil.TestAttraction(t, db)

	parent, err := svc.Create(user.ID, &dto.CreateCommentRequest{
		TargetType: "attraction", TargetID: attraction.ID, Content: "一级",
	})
	require.NoError(t, err)
	_, err = svc.Create(user.ID, &dto.CreateCommentRequest{
		TargetType: "attraction", TargetID: attraction.ID, Content: "回复1", ParentID: &parent.ID,
	})
	require.NoError(t, err)
	_, err = svc.Create(user.ID, &dto.CreateCommentRequest{
		TargetType: "attraction", TargetID: attraction.ID, Content: "回复2", ParentID: &parent.ID,
	})
	require.NoError(t, err)

	// Deleting the parent removes replies and rolls the counter back
	require.NoError(t, svc.Delete(user.ID, parent.ID))

	var remaining int64
	require.NoError(t, db.Model(&model.Comment{}).Count(&remaining).Error)
	assert.Equal(t, int64(0), remaining)

	var got model.Attraction
	require.NoError(t, db.First(&got, attraction.ID).Error)
	assert.Equal(t, int64(0), got.CommentCount)
}

func TestCommentService_Delete_Permission(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := newCommentService(db)
	owner := testutil.TestUser(t, db)
	intruder := testutil.TestUser(t, db)
	attraction := testutil.TestAttraction(t, db)

	comment := testutil.TestComment(t, db, owner.ID, "attraction", attraction.ID)

	err := svc.Delete(intruder.ID, comment.ID)
	assert.ErrorIs(t, err, ErrCommentPermission)

	err = svc.Delete(owner.ID, 99999)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestCommentService_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := newCommentService(db)
	user := testutil.TestUser(t, db)
	attraction := testutil.TestAttraction(t, db)

	parent := testutil.TestComment(t, db, user.ID, "attraction", attraction.ID)
	testutil.TestComment(t, db, user.ID, "attraction", attraction.ID, testutil.WithParent(parent.ID))
	testutil.TestComment(t, db, user.ID, "attraction", attraction.ID)

	items, total, err := svc.List("attraction", attraction.ID, nil, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)

	// The reply is attached to its parent, not listed at top level
	var withReplies *dto.CommentItem
	for _, item := range items {
		if item.ID == parent.ID {
			withReplies = item
		}
	}
	require.NotNil(t, withReplies)
	assert.Len(t, withReplies.Replies, 1)
}

func TestCommentService_List_MarksLiked(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := newCommentService(db)
	user := testutil.TestUser(t, db)
	attraction := testutil.TestAttraction(t, db)

	liked := testutil.TestComment(t, db, user.ID, "attraction", attraction.ID)
	testutil.TestComment(t, db, user.ID, "attraction", attraction.ID)

	interactionSvc := NewInteractionService(
		repository.NewInteractionRepository(db), repository.NewContentRepository(db), &config.Config{})
	_, _, err := interactionSvc.Toggle(user.ID, liked.ID, "comment", model.KindLike)
	require.NoError(t, err)

	items, _, err := svc.List("attraction", attraction.ID, &user.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)

	for _, item := range items {
		if item.ID == liked.ID {
			assert.True(t, item.IsLiked)
		} else {
			assert.False(t, item.IsLiked)
		}
	}
}
