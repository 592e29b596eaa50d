package outreachRepository

const (
	queryCreateSubscriber = `
		INSERT INTO subscribers (
			email,
			created_at
		) VALUES (
			:email,
			:created_at
		)
	`

	queryListSubscribers = `
		SELECT
			email,
			created_at
		FROM subscribers
		ORDER BY created_at DESC
	`

	queryDeleteSubscriber = `
		DELETE FROM subscribers
		WHERE email = :email
	`

	queryCreateContact = `
		INSERT INTO contacts (
			id,
			name,
			email,
			message,
			created_at
		) VALUES (
			:id,
			:name,
			:email,
			:message,
			:created_at
		)
	`

	queryListContacts = `
		SELECT
			id,
			name,
			email,
			message,
			created_at
		FROM contacts
		ORDER BY created_at DESC
	`

	queryDeleteContact = `
		DELETE FROM contacts
		WHERE id = :id
	`
)
