package engagementRepository

const (
	queryListAllReviews = `
		SELECT
			r.id,
			r.blog_id,
			b.title AS blog_title,
			r.user_id,
			r.user_name,
			r.user_image,
			r.comment,
			r.rating,
			r.created_at
		FROM blog_reviews r
		JOIN blogs b ON b.id = r.blog_id
		ORDER BY r.created_at DESC, r.id DESC
	`

	queryCountBlogs = `
		SELECT COUNT(*) FROM blogs
	`

	queryCountUsers = `
		SELECT COUNT(*) FROM users
	`

	queryMostLikedBlog = `
		SELECT
			id,
			title,
			likes
		FROM blogs
		ORDER BY likes DESC, created_at ASC
		LIMIT 1
	`
)
