package service

// Cache tags fired by mutations and attached to anonymous reads.
const (
	TagBoards     = "boards"
	TagCategories = "categories"
	TagUsers      = "users"
)

// TagBoard tags one board.
func TagBoard(slug string) string { return "board:" + slug }

// TagPosts tags the post list of a board.
func TagPosts(slug string) string { return "posts:" + slug }

// TagPost tags one post.
func TagPost(id string) string { return "post:" + id }

// TagComments tags the comments of a post.
func TagComments(postID string) string { return "comments:" + postID }
