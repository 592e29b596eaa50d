package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			content,
			category,
			image_url,
			author_uid,
			author_email,
			likes,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:content,
			:category,
			:image_url,
			:author_uid,
			:author_email,
			0,
			:created_at,
			:updated_at
		)
	`

	queryGetBlogByID = `
		SELECT
			id,
			title,
			content,
			category,
			image_url,
			author_uid,
			author_email,
			likes,
			created_at,
			updated_at
		FROM blogs
		WHERE id = :id
	`

	queryGetAllBlogs = `
		SELECT
			id,
			title,
			content,
			category,
			image_url,
			author_uid,
			author_email,
			likes,
			created_at,
			updated_at
		FROM blogs
		ORDER BY created_at DESC
	`

	queryGetBlogsByAuthorEmail = `
		SELECT
			id,
			title,
			content,
			category,
			image_url,
			author_uid,
			author_email,
			likes,
			created_at,
			updated_at
		FROM blogs
		WHERE author_email = :author_email
		ORDER BY created_at DESC
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = CASE WHEN :title = '' THEN title ELSE :title END,
			content = CASE WHEN :content = '' THEN content ELSE :content END,
			category = CASE WHEN :category = '' THEN category ELSE :category END,
			image_url = CASE WHEN :image_url = '' THEN image_url ELSE :image_url END,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryClearBlogImage = `
		UPDATE blogs
		SET
			image_url = '',
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBlog = `
		DELETE FROM blogs
		WHERE id = :id
	`

	queryAddLike = `
		INSERT INTO blog_likes (
			blog_id,
			user_id,
			created_at
		) VALUES (
			:blog_id,
			:user_id,
			:created_at
		)
	`

	queryIncrementLikes = `
		UPDATE blogs
		SET likes = likes + 1
		WHERE id = :id
		RETURNING likes
	`

	queryListLikeUserIDs = `
		SELECT user_id
		FROM blog_likes
		WHERE blog_id = :blog_id
		ORDER BY created_at ASC, user_id ASC
	`

	queryCreateReview = `
		INSERT INTO blog_reviews (
			id,
			blog_id,
			user_id,
			user_name,
			user_image,
			comment,
			rating,
			created_at
		) VALUES (
			:id,
			:blog_id,
			:user_id,
			:user_name,
			:user_image,
			:comment,
			:rating,
			:created_at
		)
	`

	queryListReviewsByBlog = `
		SELECT
			id,
			blog_id,
			user_id,
			user_name,
			user_image,
			comment,
			rating,
			created_at
		FROM blog_reviews
		WHERE blog_id = :blog_id
		ORDER BY created_at ASC, id ASC
	`

	queryDeleteReview = `
		DELETE FROM blog_reviews
		WHERE id = :id AND blog_id = :blog_id
	`
)
