package structs

import (
	"encoding/json"
	"testing"

	"github.com/ncobase/boardfront/paging"
	"github.com/ncobase/boardfront/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommentTree(t *testing.T) {
	page := paging.Envelope[Comment]{
		Data: []Comment{
			{ID: "c1"},
			{ID: "c2"},
			{ID: "c3", ParentID: types.ToPointer("c1")},
			{ID: "c4", ParentID: types.ToPointer("c1")},
			{ID: "c5", ParentID: types.ToPointer("c2")},
		},
		CurrentPage: 1,
		TotalItems:  5,
		TotalPages:  1,
	}

	tree := BuildCommentTree(page)

	ids := func(cs []Comment) []string {
		out := make([]string, 0, len(cs))
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}
	assert.Equal(t, []string{"c1", "c2"}, ids(tree.Parents))
	assert.Equal(t, []string{"c3", "c4"}, ids(tree.Children["c1"]))
	assert.Equal(t, []string{"c5"}, ids(tree.Children["c2"]))
	assert.Equal(t, 5, tree.TotalItems)
}

func TestCommentDecodesNullParent(t *testing.T) {
	var c Comment
	require.NoError(t, json.Unmarshal([]byte(`{"id":"c1","content":"(deleted)","parentId":null,"hasReplies":true}`), &c))
	assert.Equal(t, "", c.GetParentID())
	assert.True(t, c.HasReplies)
}

func TestUserProfile(t *testing.T) {
	admin := User{Name: "Kim", Nickname: "kim", Email: "kim@example.com", Role: RoleAdmin}
	p := admin.Profile()
	require.NotNil(t, p.Role)
	assert.True(t, p.IsAdmin())

	unknown := User{Name: "x", Role: Role("root")}
	assert.Nil(t, unknown.Profile().Role)
	assert.False(t, Anonymous().IsAdmin())
}

func TestTokenPairComplete(t *testing.T) {
	assert.True(t, TokenPair{AccessToken: "a", RefreshToken: "r"}.Complete())
	assert.False(t, TokenPair{AccessToken: "a"}.Complete())
}
