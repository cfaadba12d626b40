package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Card queries.
const (
	// title_norm is a generated column; the unique index on it makes the
	// database the authoritative dedup barrier under concurrent imports.
	queryInsertCard = `
		INSERT INTO cards (
			id, kind, title, team, set_name, condition, numbering, notes,
			price, vinted, vendora, ebay, status,
			image_url_front, image_url_back, extra_image_urls, created_at
		) VALUES (
			@id, @kind, @title, @team, @set_name, @condition, @numbering, @notes,
			@price, @vinted, @vendora, @ebay, @status,
			@image_url_front, @image_url_back, @extra_image_urls, @created_at
		)
		ON CONFLICT (title_norm) DO NOTHING
		RETURNING id, created_at`

	// Reduced column set for backends missing the newer optional columns.
	queryInsertCardReduced = `
		INSERT INTO cards (
			id, title, set_name, condition, notes,
			price, vinted, vendora, ebay, status,
			image_url_front, image_url_back, extra_image_urls, created_at
		) VALUES (
			@id, @title, @set_name, @condition, @notes,
			@price, @vinted, @vendora, @ebay, @status,
			@image_url_front, @image_url_back, @extra_image_urls, @created_at
		)
		ON CONFLICT (title_norm) DO NOTHING
		RETURNING id, created_at`

	queryGetCard = `
		SELECT id, COALESCE(kind, ''), title, COALESCE(team, ''), COALESCE(set_name, ''),
			COALESCE(condition, ''), COALESCE(numbering, ''), COALESCE(notes, ''),
			price, vinted, vendora, ebay, status,
			COALESCE(image_url_front, ''), COALESCE(image_url_back, ''),
			COALESCE(extra_image_urls, '{}'), created_at
		FROM cards
		WHERE id = $1`

	queryListCardTitles = `SELECT title FROM cards`

	queryUpdateCard = `
		UPDATE cards SET
			kind = @kind,
			title = @title,
			team = @team,
			set_name = @set_name,
			condition = @condition,
			numbering = @numbering,
			notes = @notes,
			price = @price,
			vinted = @vinted,
			vendora = @vendora,
			ebay = @ebay,
			status = @status,
			image_url_front = @image_url_front,
			image_url_back = @image_url_back,
			extra_image_urls = @extra_image_urls
		WHERE id = @id`

	queryDeleteCard = `DELETE FROM cards WHERE id = $1`
)

// Image queue queries.
const (
	queryEnqueueImage = `
		INSERT INTO image_queue (path, status, enqueued_at)
		VALUES ($1, 'pending', now())
		ON CONFLICT (path) DO NOTHING
		RETURNING id, path, status, COALESCE(error_text, ''), enqueued_at, processed_at`

	queryListPendingImages = `
		SELECT id, path, status, COALESCE(error_text, ''), enqueued_at, processed_at
		FROM image_queue
		WHERE status = 'pending'
		ORDER BY enqueued_at
		LIMIT $1`

	queryMarkImagesDone = `
		UPDATE image_queue SET status = 'done', processed_at = now()
		WHERE id = ANY($1)`

	queryMarkImagesError = `
		UPDATE image_queue SET status = 'error', error_text = $2, processed_at = now()
		WHERE id = ANY($1)`

	queryCountPendingImages = `SELECT COUNT(*) FROM image_queue WHERE status = 'pending'`
)
