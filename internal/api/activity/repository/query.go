package activityRepository

const (
	queryCreateActivity = `
		INSERT INTO activities (
			id,
			user_uid,
			user_email,
			type,
			message,
			blog_id,
			created_at
		) VALUES (
			:id,
			:user_uid,
			:user_email,
			:type,
			:message,
			:blog_id,
			:created_at
		)
	`

	queryListActivitiesByUID = `
		SELECT
			id,
			user_uid,
			user_email,
			type,
			message,
			blog_id,
			created_at
		FROM activities
		WHERE user_uid = :user_uid
		ORDER BY created_at DESC, id DESC
	`
)
