package userRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			uid,
			display_name,
			email,
			photo_url,
			role,
			created_at,
			last_login
		) VALUES (
			:id,
			:uid,
			:display_name,
			:email,
			:photo_url,
			:role,
			:created_at,
			:last_login
		)
	`

	queryGetUserByEmail = `
		SELECT
			id,
			uid,
			display_name,
			email,
			photo_url,
			role,
			created_at,
			last_login
		FROM users
		WHERE email = :email
	`

	queryUpdateUserOnLogin = `
		UPDATE users
		SET
			uid = :uid,
			display_name = CASE WHEN :display_name = '' THEN display_name ELSE :display_name END,
			photo_url = CASE WHEN :photo_url = '' THEN photo_url ELSE :photo_url END,
			last_login = :last_login
		WHERE email = :email
	`
)
